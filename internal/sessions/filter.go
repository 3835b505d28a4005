// Package sessions selects the PuTTY sessions worth exporting from a parsed
// registry tree: keys under the Sessions container whose protocol is SSH and
// whose hostname is usable.
package sessions

import (
	"net/url"
	"strings"

	"github.com/putty-tools/putty2ssh/pkg/types"
)

// SessionsPrefix is the registry container PuTTY stores sessions under.
const SessionsPrefix = `\Software\SimonTatham\PuTTY\Sessions`

// TemplateName is the session PuTTY uses as the base profile for new
// sessions. It is excluded unless explicitly requested.
const TemplateName = "Default Settings"

const (
	protocolName = "Protocol"
	hostnameName = "HostName"
	protocolSSH  = "ssh"
)

// Normalized once at init; session-name derivation runs per key.
var normalizedPrefix = normalizeKey(SessionsPrefix)

// Options controls session selection.
type Options struct {
	// IncludeTemplate keeps the "Default Settings" template session when it
	// otherwise qualifies.
	IncludeTemplate bool
}

// SessionMap maps a percent-decoded session name to that session's values.
type SessionMap map[string]types.ValueMap

// Filter returns the SSH sessions found in tree. A key qualifies when it is
// a proper child of the Sessions container, its Protocol text value is "ssh"
// (case-insensitive), and its HostName text value is non-empty. When two
// keys derive the same session name, the key later in the tree wins; the
// tree preserves source order, so the tie-break follows file order.
func Filter(tree *types.Tree, opts Options) SessionMap {
	result := make(SessionMap)

	tree.Each(func(path string, values types.ValueMap) {
		name, ok := sessionName(path)
		if !ok {
			return
		}
		if !opts.IncludeTemplate && name == TemplateName {
			return
		}
		if !strings.EqualFold(values.Text(protocolName), protocolSSH) {
			return
		}
		if values.Text(hostnameName) == "" {
			return
		}
		result[name] = values.Clone()
	})

	return result
}

// sessionName derives the session name from a key path: the last segment of
// the original path, percent-decoded. It reports false for paths outside the
// Sessions container and for the bare container key itself.
func sessionName(path string) (string, bool) {
	prefix := normalizedPrefix
	norm := normalizeKey(path)
	if !strings.HasPrefix(norm, prefix) {
		return "", false
	}
	if strings.Trim(norm[len(prefix):], `\`) == "" {
		return "", false
	}

	// The name keeps the original casing, so split the raw path rather than
	// the normalized one.
	segments := strings.Split(strings.Trim(strings.ReplaceAll(path, "/", `\`), `\`), `\`)
	if len(segments) < 2 {
		return "", false
	}
	name := segments[len(segments)-1]

	// PuTTY percent-encodes characters it cannot store in a key name
	// (my%20session -> my session). Malformed escapes keep the raw name,
	// matching the forgiving stance of the rest of the pipeline.
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name, true
}

// normalizeKey unifies slash direction, trims enclosing separators, and
// lowercases, so container matching is case- and slash-insensitive.
func normalizeKey(path string) string {
	return strings.ToLower(strings.Trim(strings.ReplaceAll(path, "/", `\`), `\`))
}
