package order

import (
	"net/mail"
	"strings"
)

// NormalizeEmail trims the address and validates it. The empty string is
// allowed because the buyer email may only become known at payment time.
func NormalizeEmail(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", nil
	}
	addr, err := mail.ParseAddress(t)
	if err != nil || addr.Address != t {
		return "", ErrInvalidEmail
	}
	return t, nil
}

// ResolveRecipient picks the first usable address in priority order.
func ResolveRecipient(candidates ...string) string {
	for _, c := range candidates {
		if e, err := NormalizeEmail(c); err == nil && e != "" {
			return e
		}
	}
	return ""
}
