package adapter

import "time"

// Clock supplies the current time in UTC
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current time in UTC
	Now() time.Time
}

type utcClock struct{}

// NewClock creates a clock backed by the system time
func NewClock() Clock {
	return utcClock{}
}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}
