// Package form groups primitives into a named set that is imported from one raw
// scope and exported back to one.
//
// A Form collects per-field failures into validator.ValidationErrors so callers can
// render them, while programming faults (an identifier without a class, a broken
// data-access backend) abort the import and are returned unchanged.
//
// Forms are usually built from YAML declarations:
//
//	name: signup
//	fields:
//	  - name: birthday
//	    kind: date
//	    mode: married
//	    required: true
//	    min: "1900-01-01"
//	  - name: referrer
//	    kind: identifier
//	    class: User
//	    method: GetByEmail
//
//	decl, err := form.LoadFile("forms/signup.yaml")
//	f, err := decl.Build(dao.Default, form.WithLogger(log))
//	if err := f.Import(ctx, scope); err != nil {
//		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//			// render verrs.Map()
//		}
//	}
//
// A Form is not safe for concurrent use; build one per request from a shared Declaration.
package form
