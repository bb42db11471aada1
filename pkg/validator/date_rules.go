package validator

import (
	"fmt"

	"github.com/ruFelix/hesper/pkg/calendar"
)

// DateInRange checks lower <= value <= upper by absolute time. A nil bound is unbounded.
func DateInRange(field string, value, lower, upper calendar.Value) Rule {
	values := map[string]any{"field": field}
	msg := "date is out of range"
	switch {
	case lower != nil && upper != nil:
		msg = fmt.Sprintf("date must be between %s and %s", lower.String(), upper.String())
		values["min"], values["max"] = lower.String(), upper.String()
	case lower != nil:
		msg = fmt.Sprintf("date must not be before %s", lower.String())
		values["min"] = lower.String()
	case upper != nil:
		msg = fmt.Sprintf("date must not be after %s", upper.String())
		values["max"] = upper.String()
	}

	return Rule{
		Check: func() bool {
			if lower != nil && lower.Stamp() > value.Stamp() {
				return false
			}
			return upper == nil || upper.Stamp() >= value.Stamp()
		},
		Error: ValidationError{
			Field:             field,
			Message:           msg,
			TranslationKey:    "validation.date_range",
			TranslationValues: values,
			Cause:             ErrOutOfRange,
		},
	}
}

// ValidCalendarDate checks that the components form a real calendar date, leap years included.
func ValidCalendarDate(field string, year, month, day int) Rule {
	return Rule{
		Check: func() bool {
			return calendar.ValidDate(year, month, day)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%04d-%02d-%02d is not a valid date", year, month, day),
			TranslationKey: "validation.date_invalid",
			TranslationValues: map[string]any{
				"field": field,
				"year":  year,
				"month": month,
				"day":   day,
			},
			Cause: ErrInvalidDate,
		},
	}
}
