// Package coerce holds JSON scalar types that accept form-encoded strings
// ("42", "2001-09-03") as well as native JSON values.
package coerce

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotNumber  = errors.New("must be a number")
	ErrNotInteger = errors.New("must be an integer")
	ErrNotDate    = errors.New("must be a date (YYYY-MM-DD or RFC 3339)")
)

// dateLayouts are tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// scalar returns the raw literal, unquoting JSON strings.
func scalar(b []byte) (string, error) {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return "", err
		}
		return strings.TrimSpace(str), nil
	}
	return s, nil
}

// Float is a float64 that also decodes from a numeric string.
type Float float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(b []byte) error {
	s, err := scalar(b)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%q %w", s, ErrNotNumber)
	}
	*f = Float(v)
	return nil
}

// Int is an int that also decodes from a numeric string. Fractional values are rejected.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(b []byte) error {
	s, err := scalar(b)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%q %w", s, ErrNotNumber)
	}
	if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return fmt.Errorf("%q %w", s, ErrNotInteger)
	}
	*i = Int(v)
	return nil
}

// Date is a calendar date or timestamp decoded from a JSON string.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := scalar(b)
	if err != nil {
		return err
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDate parses s with the accepted layouts and returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q %w", s, ErrNotDate)
}
