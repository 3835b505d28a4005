package sshcfg

import "strings"

// forwardDirective is one parsed tunnel definition.
type forwardDirective struct {
	Keyword string // LocalForward, RemoteForward, or DynamicForward
	Value   string
}

// parsePortForwardings expands a PuTTY PortForwardings specification into
// directives. The string is comma-separated; each token's leading character
// selects the kind:
//
//	L<listen>=<host:port>  -> LocalForward <listen> <host:port>
//	R<listen>=<host:port>  -> RemoteForward <listen> <host:port>
//	D<port>                -> DynamicForward <port>
//
// <listen> may be a bare port or bindaddress:port. Tokens with an unknown
// leading character are skipped; an L/R token missing its "=" falls back to
// emitting the remainder verbatim rather than failing the session.
func parsePortForwardings(raw string) []forwardDirective {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var result []forwardDirective
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		rest := token[1:]
		switch token[0] {
		case 'L':
			result = append(result, forwardDirective{"LocalForward", forwardValue(rest)})
		case 'R':
			result = append(result, forwardDirective{"RemoteForward", forwardValue(rest)})
		case 'D':
			if port := strings.TrimSpace(rest); port != "" {
				result = append(result, forwardDirective{"DynamicForward", port})
			}
		}
	}
	return result
}

// forwardValue joins the listen and target halves of an L/R token with a
// single space, the form OpenSSH expects.
func forwardValue(rest string) string {
	left, right, found := strings.Cut(rest, "=")
	if !found {
		return rest
	}
	return strings.TrimSpace(left) + " " + strings.TrimSpace(right)
}
