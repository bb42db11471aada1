package primitive

// Result is the outcome of importing submitted data into a primitive.
type Result uint8

const (
	// ResultFailed means the data was rejected; Reason explains why.
	ResultFailed Result = iota
	// ResultImported means a typed value was stored.
	ResultImported
	// ResultEmpty means the field was left blank.
	ResultEmpty
)

func (r Result) String() string {
	switch r {
	case ResultImported:
		return "imported"
	case ResultEmpty:
		return "empty"
	default:
		return "failed"
	}
}

// OK reports whether the import did not fail.
func (r Result) OK() bool {
	return r != ResultFailed
}
