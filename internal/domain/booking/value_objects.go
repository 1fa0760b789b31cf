package booking

import (
	"time"
)

const DateLayout = "2006-01-02"

// StayPeriod is the half-open night range [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in, out := DateOf(checkIn), DateOf(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidRange
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return StayPeriod{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return StayPeriod{}, err
	}
	return NewStayPeriod(in, out)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DateOf drops the clock part and keeps the calendar date as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the calendar date of now in the hotel's zone.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(now.In(loc))
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

const secondsPerDay = 24 * 60 * 60

// Nights counts calendar days. Both ends are UTC midnights, so Unix seconds
// divide evenly at any range length.
func (p StayPeriod) Nights() int64 {
	return (p.checkOut.Unix() - p.checkIn.Unix()) / secondsPerDay
}

func (p StayPeriod) Equal(other StayPeriod) bool {
	return p.checkIn.Equal(other.checkIn) && p.checkOut.Equal(other.checkOut)
}

// Overlaps uses a1 < b2 && a2 < b1, so adjacent stays do not collide.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

func (p StayPeriod) Covers(day time.Time) bool {
	day = DateOf(day)
	return !day.Before(p.checkIn) && day.Before(p.checkOut)
}

// EndedBefore reports whether checkout is strictly before day.
func (p StayPeriod) EndedBefore(day time.Time) bool {
	return p.checkOut.Before(DateOf(day))
}

func (p StayPeriod) String() string {
	return "[" + p.checkIn.Format(DateLayout) + "," + p.checkOut.Format(DateLayout) + ")"
}
