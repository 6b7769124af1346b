package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCast is returned when a payload field cannot be stored as a string.
var ErrCast = errors.New("cast to string failed")

// Text is a string field that also accepts JSON numbers and booleans,
// storing their literal form. Objects and arrays are rejected.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		return fmt.Errorf("%w: value %s", ErrCast, b)
	default:
		// numbers, true, false
		*t = Text(b)
	}
	return nil
}

func (t Text) String() string { return string(t) }

// textPtr returns the string behind p, or "" for an absent field.
func textPtr(p *Text) string {
	if p == nil {
		return ""
	}
	return string(*p)
}
