// Package guestlist manages the pending guest-invite list: an ordered set of
// distinct, lower-cased, validated email addresses. All operations are pure
// transformations; callers own surfacing the error kinds as messages.
package guestlist

import (
	"slices"
	"strings"

	"github.com/plannit/tripkit/internal/domain"
)

// Validator reports whether a candidate string is a syntactically valid
// email address. The engine treats its verdict as authoritative and final.
type Validator func(candidate string) bool

// Add appends candidate to the list, lower-cased, preserving existing order.
// Returns domain.ErrInvalidEmail if the candidate fails validation and
// domain.ErrDuplicateEmail if a case-insensitively equal entry exists.
// The input slice is never mutated; on success a new slice is returned.
func Add(list []string, candidate string, valid Validator) ([]string, error) {
	email := strings.ToLower(strings.TrimSpace(candidate))
	if !valid(email) {
		return nil, domain.ErrInvalidEmail
	}
	if slices.Contains(list, email) {
		return nil, domain.ErrDuplicateEmail
	}
	return append(slices.Clone(list), email), nil
}

// Remove returns the list without the first case-insensitive match of email.
// Removing an absent email is a no-op, not an error.
func Remove(list []string, email string) []string {
	target := strings.ToLower(strings.TrimSpace(email))
	for i, entry := range list {
		if entry == target {
			return append(slices.Clone(list[:i]), list[i+1:]...)
		}
	}
	return list
}
