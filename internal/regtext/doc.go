// Package regtext parses Windows Registry Editor (.reg) export text into a
// key/value tree.
//
// Only the two value tags a PuTTY session export produces are decoded:
//
//	"Name"=dword:00000016          -> integer
//	"Name"=hex(1):73,00,68,00,...  -> UTF-16LE string
//
// Everything else — the version header, comments, other value tags, lines
// before the first key — is skipped without error. The input is machine
// exported, so partial corruption must not block the keys that are intact:
// malformed payloads decode to "" or 0, undecodable bytes become U+FFFD, and
// no content-level condition is ever surfaced as an error.
package regtext
