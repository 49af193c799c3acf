package pokegpt

import "errors"

// Sentinel errors for the hard failure classes. Soft violations (out-of-range
// IVs, EVs and stages) are clamped and logged rather than returned.
var (
	// ErrFormat reports a generation value or range expression that could not
	// be parsed: bad Roman numeral grammar, an out-of-range ordinal, or a
	// malformed range form.
	ErrFormat = errors.New("malformed generation value")

	// ErrEvTotal reports an EV spread whose per-stat values are legal but
	// whose total exceeds the cap.
	ErrEvTotal = errors.New("ev total above cap")

	// ErrUnknownType reports an elemental type argument that is not one of
	// the declared type constants.
	ErrUnknownType = errors.New("unknown elemental type")

	// ErrUnknownStat reports a stat argument that is not one of the declared
	// stat constants.
	ErrUnknownStat = errors.New("unknown stat")

	// ErrStage reports a stage request no table can answer: a non-finite or
	// unrepresentable stage value, a stage for HP, or a crit stage in an era
	// that had no crit stages.
	ErrStage = errors.New("unsupported stage")
)

// Returns the value passed in if there is no error, otherwise it will panic
// Very similar to Rust's Unwrap method on an Option or Err enum
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
