// Package validate holds the syntactic input checks the engine delegates to.
package validate

import "strings"

// Email reports whether candidate is a syntactically plausible address:
// exactly one "@", non-empty local and domain parts, and at least one dot
// with a non-empty label on each side in the domain. Purely syntactic — no
// DNS or mailbox check.
func Email(candidate string) bool {
	at := strings.IndexByte(candidate, '@')
	if at <= 0 || at != strings.LastIndexByte(candidate, '@') {
		return false
	}
	local, dom := candidate[:at], candidate[at+1:]
	if strings.ContainsAny(local, " \t") || strings.ContainsAny(dom, " \t") {
		return false
	}
	// The last dot decides: it rejects both ".com" and "domain." shapes.
	dot := strings.LastIndexByte(dom, '.')
	if dot <= 0 || dot == len(dom)-1 {
		return false
	}
	return true
}
