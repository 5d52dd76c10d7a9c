// AngelaMos | 2026
// date.go

package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateError is returned for input that is not a YYYY-MM-DD day.
type DateError struct {
	Raw string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q", e.Raw)
}

func (e *DateError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Date is a calendar day without a time zone. It travels as "YYYY-MM-DD" in
// JSON and as a DATE column in Postgres.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	// Accept full timestamps too; only the calendar day is kept.
	if len(s) > len(DateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return NewDate(t.Year(), t.Month(), t.Day()), nil
		}
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &DateError{Raw: s}
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DateError{Raw: string(data)}
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
	return nil
}
