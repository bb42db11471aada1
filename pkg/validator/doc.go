// Package validator provides small declarative validation rules and the
// ValidationErrors type used to report field-level failures.
//
// A Rule couples a Check function with translation-friendly error metadata.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// satisfies the error interface:
//
//	err := validator.Apply(
//		validator.ValidCalendarDate("due", 2024, 2, 30),
//		validator.DateInRange("due", value, min, max),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, e := range verrs {
//			// e.Field, e.Message, e.TranslationKey
//		}
//	}
//
// Every ValidationError carries a sentinel Cause (ErrOutOfRange, ErrInvalidFormat, ...)
// so callers can use errors.Is on a single entry.
package validator
