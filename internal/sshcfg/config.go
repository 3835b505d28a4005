// Package sshcfg emits OpenSSH client configuration text from filtered PuTTY
// session values, one Host block per session.
package sshcfg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/putty-tools/putty2ssh/pkg/types"
)

// Directive indentation: two spaces under an unindented Host line.
const indent = "  "

// PuTTY session value names consumed by the generator.
const (
	valueHostName       = "HostName"
	valuePortNumber     = "PortNumber"
	valueUserName       = "UserName"
	valuePublicKeyFile  = "PublicKeyFile"
	valueAgentFwd       = "AgentFwd"
	valueCompression    = "Compression"
	valueX11Forward     = "X11Forward"
	valuePortForwarding = "PortForwardings"
)

const defaultSSHPort = 22

// Build assembles the complete config document. Blocks are sorted by session
// name (plain byte-wise comparison) and separated by exactly one blank line,
// with no blank line before the first or after the last block. The sort makes
// output deterministic regardless of map iteration order.
func Build(sessions map[string]types.ValueMap) string {
	names := make([]string, 0, len(sessions))
	for name := range sessions {
		names = append(names, name)
	}
	sort.Strings(names)

	blocks := make([]string, 0, len(names))
	for _, name := range names {
		blocks = append(blocks, BuildHostBlock(name, sessions[name]))
	}
	return strings.Join(blocks, "\n\n")
}

// BuildHostBlock emits one Host block. Directives appear in a fixed order:
// HostName, Port, User, IdentityFile, proxy, port forwardings, then the
// boolean feature flags.
func BuildHostBlock(name string, values types.ValueMap) string {
	lines := []string{"Host " + quoteValue(name)}
	add := func(directive, value string) {
		lines = append(lines, indent+directive+" "+value)
	}

	if hostname := values.Text(valueHostName); hostname != "" {
		add("HostName", hostname)
	}

	// Port 22 is emitted even though it is the default; explicit output is
	// stable under diffing and costs one line.
	add("Port", fmt.Sprintf("%d", values.Integer(valuePortNumber, defaultSSHPort)))

	if user := values.Text(valueUserName); user != "" {
		add("User", user)
	}

	if identity := values.Text(valuePublicKeyFile); identity != "" {
		add("IdentityFile", quoteValue(identityFilePath(identity)))
	}

	if directive, value, ok := proxyDirective(values); ok {
		add(directive, value)
	}

	for _, fwd := range parsePortForwardings(values.Text(valuePortForwarding)) {
		add(fwd.Keyword, fwd.Value)
	}

	if values.Integer(valueAgentFwd, 0) != 0 {
		add("ForwardAgent", "yes")
	}
	if values.Integer(valueCompression, 0) != 0 {
		add("Compression", "yes")
	}
	if values.Integer(valueX11Forward, 0) != 0 {
		add("ForwardX11", "yes")
	}

	return strings.Join(lines, "\n")
}

// identityFilePath converts backslashes to forward slashes so the Windows
// path PuTTY stored stays usable as a portable path hint.
func identityFilePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
