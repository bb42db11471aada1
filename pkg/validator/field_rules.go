package validator

// Required fails when empty is true.
func Required(field string, empty bool) Rule {
	return Rule{
		Check: func() bool {
			return !empty
		},
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
			Cause:             ErrFieldRequired,
		},
	}
}

// Format fails when ok is false; the raw value had the wrong shape or could not be parsed.
func Format(field string, ok bool) Rule {
	return Rule{
		Check: func() bool {
			return ok
		},
		Error: ValidationError{
			Field:             field,
			Message:           "invalid format",
			TranslationKey:    "validation.format",
			TranslationValues: map[string]any{"field": field},
			Cause:             ErrInvalidFormat,
		},
	}
}

// Exists fails when found is false; used for references to persisted entities.
func Exists(field string, raw any, found bool) Rule {
	return Rule{
		Check: func() bool {
			return found
		},
		Error: ValidationError{
			Field:          field,
			Message:        "referenced object does not exist",
			TranslationKey: "validation.not_found",
			TranslationValues: map[string]any{
				"field": field,
				"value": raw,
			},
			Cause: ErrNotFound,
		},
	}
}

// Invalid always fails. It reports a value that was rejected for an unclassified reason.
func Invalid(field string) Rule {
	return Rule{
		Check: func() bool {
			return false
		},
		Error: ValidationError{
			Field:             field,
			Message:           "invalid value",
			TranslationKey:    "validation.invalid",
			TranslationValues: map[string]any{"field": field},
			Cause:             ErrInvalidValue,
		},
	}
}
