package validator

import (
	"strings"
	"unicode"
)

// commonPasswords is a small deny-list of passwords seen at the top of breach
// corpora. It is intentionally short; strength checks do the heavy lifting.
var commonPasswords = map[string]bool{
	"password":    true,
	"password1":   true,
	"password123": true,
	"123456":      true,
	"12345678":    true,
	"123456789":   true,
	"qwerty":      true,
	"qwerty123":   true,
	"abc123":      true,
	"letmein":     true,
	"welcome":     true,
	"admin":       true,
	"iloveyou":    true,
	"monkey":      true,
	"dragon":      true,
}

// PasswordStrengthConfig controls the requirements applied by StrongPassword.
type PasswordStrengthConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int
}

// StrongPassword fails unless the value satisfies the length and character
// class requirements of config.
func StrongPassword(field, value string, config PasswordStrengthConfig) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < config.MinLength || len(value) > config.MaxLength {
				return false
			}

			var hasUpper, hasLower, hasDigit, hasSpecial bool
			for _, c := range value {
				switch {
				case unicode.IsUpper(c):
					hasUpper = true
				case unicode.IsLower(c):
					hasLower = true
				case unicode.IsDigit(c):
					hasDigit = true
				default:
					hasSpecial = true
				}
			}

			if config.RequireUppercase && !hasUpper {
				return false
			}
			if config.RequireLowercase && !hasLower {
				return false
			}
			if config.RequireDigits && !hasDigit {
				return false
			}
			if config.RequireSpecial && !hasSpecial {
				return false
			}

			classes := 0
			for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
				if present {
					classes++
				}
			}
			return classes >= config.MinCharClasses
		},
		Error: fieldError(field, "must be %d-%d characters and mix character classes",
			config.MinLength, config.MaxLength),
	}
}

// NotCommonPassword rejects passwords found in the deny-list above.
func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool { return !commonPasswords[strings.ToLower(value)] },
		Error: fieldError(field, "password is too common, please choose a different one"),
	}
}
