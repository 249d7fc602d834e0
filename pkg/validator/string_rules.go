package validator

import "strings"

// RequiredString fails when the value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: fieldError(field, "field is required"),
	}
}

// MinLenString fails when the value is shorter than min bytes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min },
		Error: fieldError(field, "must be at least %d characters long", min),
	}
}

// MaxLenString fails when the value is longer than max bytes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) <= max },
		Error: fieldError(field, "must be at most %d characters long", max),
	}
}
