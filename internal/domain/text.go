package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Text is an upstream field that may arrive as a JSON string, number, or boolean.
// It always re-encodes as a JSON string.
type Text string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Text(n.String())
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*t = Text(strconv.FormatBool(b))
	return nil
}

// String returns the raw value.
func (t Text) String() string {
	return string(t)
}

// Int parses the value as a base-10 integer, ignoring surrounding whitespace.
func (t Text) Int() (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(string(t)))
	if err != nil {
		return 0, false
	}
	return v, true
}
