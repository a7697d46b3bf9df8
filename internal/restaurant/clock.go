package restaurant

import "time"

// Clock supplies the current time to the open/closed check.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the local wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// fixedDay is a UTC date with no DST transitions.
var fixedDay = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// FixedClock always reports t.
func FixedClock(t TimeOfDay) Clock {
	at := t.On(fixedDay)
	return ClockFunc(func() time.Time { return at })
}
