package restaurant

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time without a date, stored as the offset from
// midnight.
type TimeOfDay time.Duration

const (
	// Midnight is the earliest representable time of day.
	Midnight TimeOfDay = 0
	// EndOfDay is the latest representable time of day, one nanosecond
	// before the next midnight.
	EndOfDay TimeOfDay = TimeOfDay(24*time.Hour - time.Nanosecond)
)

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// NewTimeOfDay builds a TimeOfDay from hour, minute and second.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, fmt.Errorf("invalid time of day %02d:%02d:%02d", hour, minute, second)
	}
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second
	return TimeOfDay(d), nil
}

// MustTimeOfDay is NewTimeOfDay for values known to be valid.
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay accepts "HH:MM", "HH:MM:SS" and "HH:MM:SS.fffffffff".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return 0, fmt.Errorf("parse time of day %q: want HH:MM or HH:MM:SS", s)
}

// TimeOfDayOf drops the date part of t, keeping its wall clock in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	d := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
	return TimeOfDay(d)
}

func (t TimeOfDay) Before(u TimeOfDay) bool { return t < u }
func (t TimeOfDay) After(u TimeOfDay) bool  { return t > u }
func (t TimeOfDay) Equal(u TimeOfDay) bool  { return t == u }

// On returns t placed on the calendar day of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, day.Location()).Add(time.Duration(t))
}

// String prints HH:MM, adding seconds and a fraction only when they are set.
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	ns := d - s*time.Second

	switch {
	case s == 0 && ns == 0:
		return fmt.Sprintf("%02d:%02d", h, m)
	case ns == 0:
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	default:
		frac := strings.TrimRight(fmt.Sprintf("%09d", ns), "0")
		return fmt.Sprintf("%02d:%02d:%02d.%s", h, m, s, frac)
	}
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
