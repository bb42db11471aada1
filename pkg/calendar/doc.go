// Package calendar provides the domain date and timestamp values bound by form
// primitives.
//
// A Date is a calendar day with no time of day. A Timestamp refines a Date with
// hours, minutes and seconds. Both satisfy Value, which exposes the calendar
// components, a canonical string form and a unix stamp used for ordering.
//
// # Usage
//
//	d, err := calendar.ParseDate("2024-02-29")
//	if err != nil {
//		// errors.Is(err, calendar.ErrInvalidArgument)
//	}
//
//	ts, _ := calendar.NewTimestamp(2024, 2, 29, 13, 30, 0)
//	ts.String() // "2024-02-29 13:30:00"
//
// All values are expressed in UTC.
package calendar
