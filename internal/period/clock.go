package period

import "time"

// Clock reads the current local time at seconds precision.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{loc: loc, now: time.Now}
}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c Clock) Now() time.Time {
	return c.now().In(c.loc).Truncate(time.Second)
}

func (c Clock) Location() *time.Location {
	return c.loc
}
