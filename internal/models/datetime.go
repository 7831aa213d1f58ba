package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

var inputLocation atomic.Pointer[time.Location]

// SetInputLocation sets the zone offsetless request timestamps are read in.
// A nil loc restores UTC.
func SetInputLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	inputLocation.Store(loc)
}

// InputLocation returns the zone set by SetInputLocation, UTC by default.
func InputLocation() *time.Location {
	if loc := inputLocation.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime accepts RFC3339 timestamps plus the offsetless forms browsers send from
// date and datetime-local inputs. Offsetless values are read in loc.
func ParseTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

// DateTime is a request timestamp that tolerates the formats ParseTime accepts.
// Offsetless values are read in InputLocation, the same zone list filters use.
type DateTime time.Time

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime { return DateTime(t) }

// Time returns the wrapped time.
func (d DateTime) Time() time.Time { return time.Time(d) }

// Ptr returns a pointer to the wrapped time.
func (d DateTime) Ptr() *time.Time {
	t := time.Time(d)
	return &t
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	t, err := ParseTime(raw, InputLocation())
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(time.RFC3339Nano))
}
