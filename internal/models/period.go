package models

import "time"

// DateRange bounds a reporting query to [From, To). A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) IsOpen() bool {
	return r.From.IsZero() && r.To.IsZero()
}
