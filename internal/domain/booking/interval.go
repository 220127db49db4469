package booking

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Interval is a half-open stay [CheckIn, CheckOut). The check-out day is not occupied.
type Interval struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// CivilDate drops the clock part of t and pins the date to UTC midnight.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func NewInterval(checkIn, checkOut time.Time) (Interval, error) {
	i := Interval{CheckIn: CivilDate(checkIn), CheckOut: CivilDate(checkOut)}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

func (i Interval) Validate() error {
	if i.CheckIn.IsZero() || i.CheckOut.IsZero() || i.Nights() < 1 {
		return ErrInvalidInterval
	}
	return nil
}

// Complete reports whether both dates are set. Order is not checked.
func (i Interval) Complete() bool {
	return !i.CheckIn.IsZero() && !i.CheckOut.IsZero()
}

func (i Interval) Nights() int {
	return int(i.CheckOut.Sub(i.CheckIn).Hours() / 24)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.CheckIn.Format(dateLayout), i.CheckOut.Format(dateLayout))
}

// Overlaps is the only overlap test in the system. Adjacent stays do not overlap.
func Overlaps(a, b Interval) bool {
	return a.CheckIn.Before(b.CheckOut) && b.CheckIn.Before(a.CheckOut)
}
