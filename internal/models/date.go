package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dateLayouts covers the backend's date serializations: full RFC 3339,
// the offset-less form some fields arrive in, and bare dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is a time.Time that tolerates the backend's date formats.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time.Time.
func NewDate(t time.Time) Date { return Date{Time: t} }

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

// MarshalJSON implements json.Marshaler, emitting a bare date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}
