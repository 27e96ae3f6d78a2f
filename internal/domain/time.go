package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the wire format for every timestamp the API accepts or
// returns: second granularity, no timezone.
const TimeLayout = "2006-01-02 15:04:05"

// Time wraps time.Time so that JSON round-trips use the fixed wire format.
type Time struct {
	time.Time
}

// ParseTime parses a wire-format timestamp.
func ParseTime(s string) (Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return Time{}, fmt.Errorf("invalid timestamp %q: expected format %s", s, TimeLayout)
	}
	return Time{Time: t}, nil
}

// String renders the timestamp in the wire format.
func (t Time) String() string {
	return t.Format(TimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid timestamp %s: expected a JSON string", s)
	}
	parsed, err := ParseTime(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
