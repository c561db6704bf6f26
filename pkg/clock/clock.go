package clock

import "time"

// Clock abstracts the current time so that competition expiry can be tested
// without sleeping.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// Fake is a Clock whose current time is set by the test.
type Fake struct {
	Current time.Time
}

func NewFake(current time.Time) *Fake {
	return &Fake{Current: current}
}

func (f *Fake) Now() time.Time {
	if f.Current.IsZero() {
		return time.Now()
	}
	return f.Current
}

// Advance moves the fake time forward.
func (f *Fake) Advance(d time.Duration) {
	f.Current = f.Current.Add(d)
}
