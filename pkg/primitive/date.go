package primitive

import (
	"context"
	"fmt"

	"github.com/ruFelix/hesper/pkg/calendar"
	"github.com/ruFelix/hesper/pkg/validator"
)

// Kind is the calendar type a Date primitive produces.
type Kind uint8

const (
	KindDate Kind = iota
	KindTimestamp
)

func (k Kind) String() string {
	if k == KindTimestamp {
		return "timestamp"
	}
	return "date"
}

// Date binds a calendar date or timestamp.
type Date struct {
	Base
	kind  Kind
	value calendar.Value
	min   calendar.Value
	max   calendar.Value
	def   calendar.Value
}

// NewDate returns a primitive producing calendar.Date values.
func NewDate(name string) *Date {
	return &Date{Base: Base{name: name}, kind: KindDate}
}

// NewTimestamp returns a primitive producing calendar.Timestamp values.
// Its married shape also carries hours, minutes and seconds.
func NewTimestamp(name string) *Date {
	return &Date{Base: Base{name: name}, kind: KindTimestamp}
}

func (d *Date) Kind() Kind {
	return d.kind
}

// Value returns the imported value, nil when none.
func (d *Date) Value() calendar.Value {
	return d.value
}

// SafeValue returns the imported value, or the default when nothing was imported.
func (d *Date) SafeValue() calendar.Value {
	if d.value != nil {
		return d.value
	}
	return d.def
}

func (d *Date) Min() calendar.Value {
	return d.min
}

func (d *Date) Max() calendar.Value {
	return d.max
}

func (d *Date) Default() calendar.Value {
	return d.def
}

// SetValue stores v directly. It must have the primitive's type and fit the bounds.
func (d *Date) SetValue(v calendar.Value) error {
	if v == nil {
		d.value = nil
		return nil
	}
	if err := d.checkType(v); err != nil {
		return err
	}
	if !d.inRange(v) {
		return fmt.Errorf("%w: %s is outside the bounds of %q", ErrInvalidRange, v, d.name)
	}
	d.value = v
	return nil
}

// SetMin sets the inclusive lower bound. A nil v removes it.
func (d *Date) SetMin(v calendar.Value) error {
	if v != nil {
		if err := d.checkType(v); err != nil {
			return err
		}
		if d.max != nil && calendar.Compare(v, d.max) > 0 {
			return fmt.Errorf("%w: min %s is after max %s", ErrInvalidRange, v, d.max)
		}
	}
	d.min = v
	return nil
}

// SetMax sets the inclusive upper bound. A nil v removes it.
func (d *Date) SetMax(v calendar.Value) error {
	if v != nil {
		if err := d.checkType(v); err != nil {
			return err
		}
		if d.min != nil && calendar.Compare(d.min, v) > 0 {
			return fmt.Errorf("%w: max %s is before min %s", ErrInvalidRange, v, d.min)
		}
	}
	d.max = v
	return nil
}

// SetDefault sets the value returned by SafeValue when nothing was imported.
func (d *Date) SetDefault(v calendar.Value) error {
	if v != nil {
		if err := d.checkType(v); err != nil {
			return err
		}
	}
	d.def = v
	return nil
}

// Clean drops the imported value and raw input.
func (d *Date) Clean() {
	d.clean()
	d.value = nil
}

// Import binds the field's entry in scope according to the mode.
// The error is always nil; it exists so Date and Identifier share a signature.
func (d *Date) Import(_ context.Context, scope Scope) (Result, error) {
	d.Clean()

	var r Result
	switch d.mode {
	case ModeSingle:
		r = d.importSingle(scope)
	case ModeMarried:
		r = d.importMarried(scope)
	default:
		r = d.importAuto(scope)
	}
	return d.settle(r), nil
}

// ImportValue binds an already typed value by synthesizing the raw shapes the mode expects.
// A nil v clears the field and reports ResultEmpty. A value of the wrong type is a misuse
// and returns ErrWrongType.
func (d *Date) ImportValue(_ context.Context, v calendar.Value) (Result, error) {
	d.Clean()
	if v == nil {
		return ResultEmpty, nil
	}
	if err := d.checkType(v); err != nil {
		return ResultFailed, err
	}

	single := Scope{d.name: v.String()}
	married := Scope{d.name: marriedShape(v)}

	var r Result
	switch d.mode {
	case ModeSingle:
		r = d.importSingle(single)
	case ModeMarried:
		r = d.importMarried(married)
	default:
		if r = d.importMarried(married); r == ResultFailed {
			d.reason = nil
			r = d.importSingle(single)
		}
	}
	return d.settle(r), nil
}

// Export returns the raw shape of the stored value for the current mode.
// Married and auto modes produce a map[string]any with nil components when empty.
func (d *Date) Export() any {
	if d.value == nil {
		if d.mode == ModeSingle {
			return nil
		}
		return map[string]any{Day: nil, Month: nil, Year: nil}
	}

	if d.mode == ModeSingle {
		return d.value.String()
	}
	return marriedShape(d.value)
}

func (d *Date) importAuto(scope Scope) Result {
	r := d.importMarried(scope)
	if r != ResultFailed {
		return r
	}

	marriedReason := d.reason
	d.reason = nil
	r = d.importSingle(scope)
	if _, isMap := subScope(scope[d.name]); r == ResultFailed && isMap {
		d.reason = marriedReason
	}
	return r
}

func (d *Date) importSingle(scope Scope) Result {
	if raw, ok := scope[d.name]; ok && !isBlank(raw) {
		if s, ok := scalar(raw); ok {
			d.raw = raw
			v, err := d.parse(s)
			if err != nil {
				return d.fail(err)
			}
			return d.accept(v)
		}
	}

	if d.isEmpty(scope) {
		return ResultEmpty
	}
	return d.fail(fmt.Errorf("%w: %q expects a string", validator.ErrInvalidFormat, d.name))
}

func (d *Date) importMarried(scope Scope) Result {
	raw := scope[d.name]
	parts, ok := subScope(raw)
	if !ok || !hasAll(parts, Day, Month, Year) {
		return d.fail(fmt.Errorf("%w: %q expects %s, %s and %s", validator.ErrInvalidFormat, d.name, Day, Month, Year))
	}
	d.raw = raw

	if d.isEmpty(scope) {
		if d.required {
			return d.fail(validator.ErrFieldRequired)
		}
		return ResultEmpty
	}

	year, okY := component(parts[Year])
	month, okM := component(parts[Month])
	day, okD := component(parts[Day])
	if !okY || !okM || !okD {
		return d.fail(fmt.Errorf("%w: %q has non-numeric date components", validator.ErrInvalidFormat, d.name))
	}

	if err := validator.Apply(validator.ValidCalendarDate(d.name, year, month, day)); err != nil {
		return d.fail(err)
	}

	if d.kind == KindDate {
		v, err := calendar.NewDate(year, month, day)
		if err != nil {
			return d.fail(err)
		}
		return d.accept(v)
	}

	var clock [3]int
	for i, key := range []string{Hours, Minutes, Seconds} {
		if sub := parts[key]; !isBlank(sub) {
			n, ok := component(sub)
			if !ok {
				return d.fail(fmt.Errorf("%w: %q has a non-numeric %s", validator.ErrInvalidFormat, d.name, key))
			}
			clock[i] = n
		}
	}

	v, err := calendar.NewTimestamp(year, month, day, clock[0], clock[1], clock[2])
	if err != nil {
		return d.fail(err)
	}
	return d.accept(v)
}

// isEmpty: married and auto modes look at the day, month and year sub-values; single mode at the scalar.
func (d *Date) isEmpty(scope Scope) bool {
	raw := scope[d.name]
	if d.mode != ModeSingle {
		if parts, ok := subScope(raw); ok {
			return isBlank(parts[Day]) && isBlank(parts[Month]) && isBlank(parts[Year])
		}
	}
	return isBlank(raw)
}

func (d *Date) accept(v calendar.Value) Result {
	if err := validator.Apply(validator.DateInRange(d.name, v, d.min, d.max)); err != nil {
		return d.fail(err)
	}
	d.value = v
	d.imported = true
	return ResultImported
}

// settle clears the candidate on anything but a successful import.
func (d *Date) settle(r Result) Result {
	if r != ResultImported {
		d.value = nil
		d.imported = false
	}
	return r
}

func (d *Date) inRange(v calendar.Value) bool {
	return validator.Apply(validator.DateInRange(d.name, v, d.min, d.max)) == nil
}

func (d *Date) parse(s string) (calendar.Value, error) {
	if d.kind == KindTimestamp {
		return calendar.ParseTimestamp(s)
	}
	return calendar.ParseDate(s)
}

// checkType accepts timestamps everywhere and plain dates only for KindDate.
func (d *Date) checkType(v calendar.Value) error {
	switch v.(type) {
	case calendar.Timestamp:
		return nil
	case calendar.Date:
		if d.kind == KindDate {
			return nil
		}
	}
	return fmt.Errorf("%w: %q expects a %s, got %T", ErrWrongType, d.name, d.kind, v)
}

func marriedShape(v calendar.Value) map[string]any {
	out := map[string]any{
		Day:   v.Day(),
		Month: v.Month(),
		Year:  v.Year(),
	}
	if ts, ok := v.(calendar.Timestamp); ok {
		out[Hours] = ts.Hour()
		out[Minutes] = ts.Minute()
		out[Seconds] = ts.Second()
	}
	return out
}
