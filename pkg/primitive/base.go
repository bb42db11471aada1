package primitive

// Base holds the state shared by all primitives.
type Base struct {
	name     string
	required bool
	imported bool
	mode     Mode
	raw      any
	reason   error
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) Required() bool {
	return b.required
}

func (b *Base) SetRequired(required bool) {
	b.required = required
}

// Mode returns the representation mode. The zero value is ModeAuto.
func (b *Base) Mode() Mode {
	return b.mode
}

func (b *Base) SetMode(m Mode) {
	b.mode = m
}

// IsImported reports whether the last import stored a value.
func (b *Base) IsImported() bool {
	return b.imported
}

// Raw returns the raw input seen by the last import, kept for re-display.
func (b *Base) Raw() any {
	return b.raw
}

// Reason explains the last ResultFailed, nil otherwise.
func (b *Base) Reason() error {
	return b.reason
}

func (b *Base) clean() {
	b.imported = false
	b.raw = nil
	b.reason = nil
}

func (b *Base) fail(reason error) Result {
	b.reason = reason
	return ResultFailed
}

// importRaw is the generic scalar import: a present, non-blank entry becomes the raw value.
func (b *Base) importRaw(scope Scope) (any, Result) {
	v, ok := scope[b.name]
	if !ok || isBlank(v) {
		return nil, ResultEmpty
	}
	b.raw = v
	return v, ResultImported
}
