// Package primitive binds raw, loosely structured input to typed domain values.
//
// A primitive is a named form field. Import reads the field's entry from a
// Scope (request parameters folded into a map), coerces and validates it, and
// stores the typed value. Export turns the stored value back into the raw shape
// for re-display.
//
// Two primitives are provided:
//
//   - Date binds a calendar.Date or, when built with NewTimestamp, a
//     calendar.Timestamp. It understands a single composed string
//     ("2024-02-29") and a married mapping of day/month/year (plus
//     hours/minutes/seconds for timestamps), selected by Mode.
//   - Identifier binds a dao.Entity by resolving a raw identifier through a
//     Resolver; the default resolver is the class DAO's GetByID.
//
// # Outcomes
//
// Import returns a Result and an error. The Result describes the submitted
// data: ResultImported, ResultEmpty (left blank) or ResultFailed (rejected,
// see Reason). The error is reserved for misuse of the API, such as an
// Identifier used before Of, and for backend faults during resolution. A
// failed or empty import always clears the stored value.
//
// # Usage
//
//	due := primitive.NewDate("due")
//	due.SetMode(primitive.ModeMarried)
//	_ = due.SetMin(lower)
//
//	res, err := due.Import(ctx, primitive.Scope{
//		"due": map[string]any{"day": "29", "month": "2", "year": "2024"},
//	})
//
//	owner := primitive.NewIdentifier("owner")
//	if err := owner.Of("User"); err != nil {
//		// class not registered or not DAO-connected
//	}
//	res, err = owner.Import(ctx, primitive.Scope{"owner": "42"})
//
// Primitives are not safe for concurrent use; each one is owned by a single
// in-flight form.
package primitive
