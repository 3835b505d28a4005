package regtext

import (
	"bufio"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/putty-tools/putty2ssh/pkg/types"
)

// Line shapes recognized by the scanner. Anything that matches neither is
// skipped, which covers the version header, comments, blank lines, and value
// tags this tool does not decode.
var (
	// keyLinePattern matches [\Software\SimonTatham\PuTTY\Sessions\Name]
	keyLinePattern = regexp.MustCompile(`^\[(.*)\]$`)

	// valueLinePattern matches "Name"=dword:00000016 or "Name"=hex(1):73,00,...
	valueLinePattern = regexp.MustCompile(`^"([^"]+)"=(dword|hex\(1\)):(.+)$`)
)

// Parse decodes raw .reg file bytes into a key/value tree.
//
// The encoding is taken from the leading byte-order mark: FF FE selects
// UTF-16LE, FE FF selects UTF-16BE, anything else falls back to UTF-8 with
// those bytes treated as content. Undecodable sequences become U+FFFD.
//
// Parse never fails: content-level anomalies degrade to skipped lines or
// default values, and file access is the caller's concern.
func Parse(data []byte) *types.Tree {
	text := decodeInput(data)
	tree := types.NewTree()

	scanner := bufio.NewScanner(strings.NewReader(text))
	// Hex(1) payloads put a whole string on one line; size the scanner so no
	// line of the (already in-memory) input can overflow it.
	scanner.Buffer(make([]byte, 0, ScannerInitialBufferSize), len(text)+1)

	var currentKey string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")

		if m := keyLinePattern.FindStringSubmatch(line); m != nil {
			currentKey = strings.TrimSpace(m[1])
			if currentKey != "" {
				tree.Ensure(currentKey)
			}
			continue
		}

		// Value lines are meaningless without a key context.
		if currentKey == "" {
			continue
		}

		m := valueLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, tag, payload := m[1], m[2], m[3]

		values := tree.Ensure(currentKey)
		switch tag {
		case ValueTagDword:
			values[name] = types.Integer(DecodeDword(payload))
		case ValueTagHex1:
			values[name] = types.Text(DecodeHexString(payload))
		}
	}
	// The scanner reads an in-memory string through a substituting decoder
	// and its buffer covers the longest possible line, so Err is always nil.

	return tree
}

// decodeInput converts raw file bytes to UTF-8 text, honoring a UTF-16
// byte-order mark when present.
func decodeInput(data []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.String(decoder, string(data))
	if err != nil {
		// A replacing decoder does not error; fall back to the raw bytes.
		return string(data)
	}
	return text
}
