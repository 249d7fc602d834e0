package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail fails unless the value parses as an RFC 5322 address with a
// dotted domain. The extra domain check rejects addresses like "user@localhost"
// that the mail parser accepts but no signup form should.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := mail.ParseAddress(strings.TrimSpace(value))
			if err != nil || addr.Address != strings.TrimSpace(value) {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			return strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") &&
				!strings.HasSuffix(domain, ".")
		},
		Error: fieldError(field, "must be a valid email address"),
	}
}

// ValidObjectIDHex fails unless the value is a 24-character hex string, the
// textual form of a MongoDB ObjectID.
func ValidObjectIDHex(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != 24 {
				return false
			}
			for _, c := range value {
				switch {
				case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
				default:
					return false
				}
			}
			return true
		},
		Error: fieldError(field, "must be a valid object id"),
	}
}
