package phone

import (
	"errors"
	"strings"
)

// ErrNotDialable is returned when a number cannot be normalized
var ErrNotDialable = errors.New("phone number is not dialable")

// Normalize converts a raw phone number into the dialable international
// form the SMS gateway expects. Separators are dropped, a leading "00"
// international prefix becomes "+", and bare national numbers get the
// configured default country prefix (e.g. "+1").
func Normalize(raw, defaultPrefix string) (string, error) {
	var b strings.Builder
	hasPlus := false
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			hasPlus = true
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			// separator, drop
		default:
			return "", ErrNotDialable
		}
	}

	digits := b.String()
	if len(digits) < 7 {
		return "", ErrNotDialable
	}

	if hasPlus {
		return "+" + digits, nil
	}
	if strings.HasPrefix(digits, "00") {
		return "+" + digits[2:], nil
	}
	return defaultPrefix + digits, nil
}
