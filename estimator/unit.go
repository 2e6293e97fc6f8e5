package estimator

import "fmt"

// Unit wraps an estimator's numeric result together with the name of the
// measurement unit it was computed in (e.g. "ms", "ops/sec"). The
// estimator functions themselves return plain float64 — Unit exists for
// callers that print results back to a human and want the unit to travel
// with the number instead of being tracked separately by convention.
type Unit struct {
	Value float64
	Name  string
}

// NewUnit pairs a value with a unit name.
func NewUnit(value float64, name string) Unit {
	return Unit{Value: value, Name: name}
}

// String renders "<value> <name>", or the bare value when Name is empty.
func (u Unit) String() string {
	if u.Name == "" {
		return fmt.Sprintf("%g", u.Value)
	}
	return fmt.Sprintf("%g %s", u.Value, u.Name)
}
