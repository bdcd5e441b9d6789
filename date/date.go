// Package date provides a day-granular civil date.
//
// Market data is daily: a trading day is identified by its calendar date,
// never by an instant. Using a dedicated value type instead of time.Time
// removes timezone and clock noise from the whole engine.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical string representation, ISO-8601.
const Format = "2006-01-02"

// readFormat is more permissive and accepts single digit month and day.
const readFormat = "2006-1-2"

// Date represents a calendar day. The zero value is usable and sorts before
// any real market date.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month and day.
// Out-of-range values are carried over, as time.Date does.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime returns the Date of t, evaluated in UTC.
func FromTime(t time.Time) Date { return New(t.UTC().Date()) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns the canonical instant of the day, midnight UTC. Two equal
// dates always return the same comparable time.Time.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the calendar year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// DaysSince returns the number of calendar days elapsed since x.
// It is negative when x is after d.
func (d Date) DaysSince(x Date) int { return int(d.time().Sub(x.time()) / (24 * time.Hour)) }

// SameMonth reports whether both dates fall in the same calendar month.
func SameMonth(a, b Date) bool { return a.y == b.y && a.m == b.m }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date in its canonical format.
func (d Date) String() string { return d.time().Format(Format) }

// Format formats the date with any time layout, for display purposes.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Parse parses a Date from a string. It is lenient and accepts "2025-7-1"
// as well as "2025-07-01".
func Parse(str string) (Date, error) {
	t, err := time.Parse(readFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", str, Format, err)
	}
	return New(t.Date()), nil
}

// MustParse is like Parse but panics on error. For tests and fixtures.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON encodes the date as its canonical string.
func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// UnmarshalJSON decodes a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Contains reports whether day falls inside the range, bounds included.
// A zero From or To leaves that side unbounded.
func (r Range) Contains(day Date) bool {
	if !r.From.IsZero() && day.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && day.After(r.To) {
		return false
	}
	return true
}
