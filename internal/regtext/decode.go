package regtext

import (
	"encoding/binary"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Compiled once at package init; both decoders are hot when an export carries
// thousands of sessions.
var (
	hexTokenSeparator = regexp.MustCompile(`[\s,]+`)
	dwordPattern      = regexp.MustCompile(`^[0-9a-fA-F]{1,8}$`)
)

// DecodeHexString decodes a hex(1) payload — comma- and/or whitespace-
// separated hex byte tokens — as a UTF-16LE string.
//
// The decode is fail-closed per value: any token that is not 1–2 hex digits
// in 0x00–0xFF invalidates the whole payload and yields "". Within a valid
// byte sequence the decode is fail-open per character: a malformed UTF-16
// unit becomes U+FFFD instead of discarding the value. A single trailing NUL
// (the C-string terminator baked into the export) is stripped; internal and
// repeated NULs are kept.
func DecodeHexString(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	tokens := hexTokenSeparator.Split(raw, -1)
	data := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if len(tok) > 2 {
			return ""
		}
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return ""
		}
		data = append(data, byte(b))
	}
	if len(data) == 0 {
		return ""
	}

	return strings.TrimSuffix(decodeUTF16LE(data), "\x00")
}

// decodeUTF16LE interprets data as UTF-16 little-endian code units.
// Unpaired surrogates decode to U+FFFD, and a dangling odd byte at the end
// contributes one U+FFFD rather than being dropped.
func decodeUTF16LE(data []byte) string {
	words := make([]uint16, len(data)/UTF16CodeUnitSize)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(data[i*UTF16CodeUnitSize:])
	}
	s := string(utf16.Decode(words))
	if len(data)%UTF16CodeUnitSize != 0 {
		s += string(utf8.RuneError)
	}
	return s
}

// DecodeDword decodes a dword payload: exactly 1–8 hex digits after trimming,
// anchored at both ends. Anything else — surrounding text, a ninth digit, a
// non-hex character — yields 0.
func DecodeDword(raw string) uint32 {
	raw = strings.TrimSpace(raw)
	if !dwordPattern.MatchString(raw) {
		return 0
	}
	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}
