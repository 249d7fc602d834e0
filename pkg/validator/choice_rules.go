package validator

// InList fails unless the value is one of the allowed choices.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, choice := range allowed {
				if value == choice {
					return true
				}
			}
			return false
		},
		Error: fieldError(field, "must be one of: %v", allowed),
	}
}
