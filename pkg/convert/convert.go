// Package convert ties the pipeline together: raw .reg export bytes in,
// OpenSSH client config text out.
//
// Each stage is a pure function over its predecessor's output, so Convert is
// deterministic and safe to call concurrently; callers own their inputs.
package convert

import (
	"github.com/putty-tools/putty2ssh/internal/regtext"
	"github.com/putty-tools/putty2ssh/internal/sessions"
	"github.com/putty-tools/putty2ssh/internal/sshcfg"
)

// Options controls conversion behavior.
type Options struct {
	// IncludeTemplate keeps PuTTY's "Default Settings" template session in
	// the output when it qualifies as an SSH session.
	IncludeTemplate bool
}

// Convert parses an exported PuTTY registry document and renders the config
// blocks for its SSH sessions. Malformed content degrades per value or per
// line, never into an error; an export with no usable sessions converts to
// the empty string.
func Convert(data []byte, opts Options) string {
	tree := regtext.Parse(data)
	selected := sessions.Filter(tree, sessions.Options{IncludeTemplate: opts.IncludeTemplate})
	return sshcfg.Build(selected)
}
