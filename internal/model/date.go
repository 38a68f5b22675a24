package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date in YYYY-MM-DD form. The zero value means the
// date is unknown, not that the person is alive or dead.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses a "YYYY-MM-DD" string. Empty input yields the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// IsZero reports whether the date is unknown.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns the date as a UTC time at midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalJSON encodes the date as "YYYY-MM-DD", or "" when unknown.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", "" or null.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// yearDays approximates a calendar year for age arithmetic.
const yearDays = 365.25

// AgeYears returns whole years between birth and end using a 365.25-day
// year. A zero end date means "now".
func AgeYears(birth, end Date) int {
	if birth.IsZero() {
		return 0
	}
	endT := time.Now().UTC()
	if !end.IsZero() {
		endT = end.Time()
	}
	days := endT.Sub(birth.Time()).Hours() / 24
	if days < 0 {
		return 0
	}
	return int(days / yearDays)
}
