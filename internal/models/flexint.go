package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer request field that also accepts a numeric string, as number
// inputs in browser forms produce once edited.
type FlexInt int

// Int returns the plain integer.
func (n FlexInt) Int() int { return int(n) }

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	var num int
	if err := json.Unmarshal(data, &num); err == nil {
		*n = FlexInt(num)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("must be an integer")
	}
	num, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("must be an integer, got %q", raw)
	}
	*n = FlexInt(num)
	return nil
}
