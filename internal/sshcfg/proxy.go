package sshcfg

import (
	"fmt"
	"strings"

	"github.com/putty-tools/putty2ssh/pkg/types"
)

// PuTTY ProxyMethod codes.
const (
	proxyMethodNone   = 0
	proxyMethodSOCKS  = 1
	proxyMethodHTTP   = 2
	proxyMethodTelnet = 3
	proxyMethodLocal  = 4
	proxyMethodSSH    = 5
)

// defaultProxyPort applies when a session configures a proxy host without a
// port, mirroring PuTTY's own default.
const defaultProxyPort = 80

const (
	valueProxyMethod        = "ProxyMethod"
	valueProxyHost          = "ProxyHost"
	valueProxyPort          = "ProxyPort"
	valueProxyUsername      = "ProxyUsername"
	valueProxyTelnetCommand = "ProxyTelnetCommand"
)

// proxyDirective translates a session's proxy settings into at most one
// directive. Method 5 (SSH) becomes ProxyJump; SOCKS and HTTP CONNECT become
// relay ProxyCommands with %h %p standing in for the real target; Telnet and
// Local reuse the session's custom command with PuTTY's %host/%port
// placeholders rewritten. Method 0, unknown codes, and a missing proxy host
// produce nothing.
func proxyDirective(values types.ValueMap) (directive, value string, ok bool) {
	method := values.Integer(valueProxyMethod, proxyMethodNone)
	host := values.Text(valueProxyHost)
	if method == proxyMethodNone || host == "" {
		return "", "", false
	}
	port := values.Integer(valueProxyPort, defaultProxyPort)
	username := values.Text(valueProxyUsername)

	switch method {
	case proxyMethodSSH:
		if username != "" {
			return "ProxyJump", username + "@" + host, true
		}
		return "ProxyJump", host, true

	case proxyMethodSOCKS:
		return "ProxyCommand", fmt.Sprintf("nc -x %s:%d %%h %%p", host, port), true

	case proxyMethodHTTP:
		return "ProxyCommand", fmt.Sprintf("connect -H %s:%d %%h %%p", host, port), true

	case proxyMethodTelnet, proxyMethodLocal:
		cmd := values.Text(valueProxyTelnetCommand)
		if cmd == "" {
			return "", "", false
		}
		cmd = strings.ReplaceAll(cmd, "%host", "%h")
		cmd = strings.ReplaceAll(cmd, "%port", "%p")
		return "ProxyCommand", cmd, true
	}
	return "", "", false
}
