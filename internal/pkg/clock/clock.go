package clock

import "time"

// Clock abstracts wall time so command handlers stamp entities from one source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewRealClock returns a Clock backed by the system clock, normalized to UTC
// to match the timestamptz columns everything is persisted into.
func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
