package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrEmptyLicense     = errors.New("license number must not be empty")
)

// DateRange is a closed interval of calendar days. Both endpoints are
// rental days, so a range ending on day D and one starting on day D overlap.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Overlaps reports whether two closed intervals intersect:
// start1 <= end2 && start2 <= end1.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// Days returns the number of rental days, endpoints inclusive.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start)/(24*time.Hour)) + 1
}

// EachDay calls fn for every calendar day in the range, in order.
func (r DateRange) EachDay(fn func(day time.Time)) {
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// License is the customer's rental-eligibility document as presented at
// booking time. It is snapshotted onto the booking and never updated.
type License struct {
	number     string
	validUntil time.Time
}

func NewLicense(number string, validUntil time.Time) (License, error) {
	if number == "" {
		return License{}, ErrEmptyLicense
	}
	return License{number: number, validUntil: truncateToDay(validUntil)}, nil
}

func (l License) Number() string {
	return l.number
}

func (l License) ValidUntil() time.Time {
	return l.validUntil
}

// Covers reports whether the license remains valid through the last day of
// the range. Validity at the start date alone is not enough.
func (l License) Covers(r DateRange) bool {
	return !l.validUntil.Before(r.end)
}

type Money struct {
	cents int32
}

func NewMoney(cents int32) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int32 {
	return m.cents
}
