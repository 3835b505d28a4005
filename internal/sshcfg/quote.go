package sshcfg

import (
	"regexp"
	"strings"
)

// needsQuoting matches values OpenSSH would misread unquoted: whitespace,
// comment markers, quotes, and backslashes.
var needsQuoting = regexp.MustCompile(`[\s#"\\]`)

// quoteValue wraps s in double quotes — escaping backslashes and embedded
// quotes — when it contains a character that needs protection. An empty
// value quotes to an explicit "" token so the directive stays parseable.
func quoteValue(s string) string {
	if s == "" {
		return `""`
	}
	if !needsQuoting.MatchString(s) {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
