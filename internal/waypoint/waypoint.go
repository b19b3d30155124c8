// Package waypoint converts the heterogeneous waypoint encodings accepted at
// the API boundary into canonical 3-coordinate records. Clients submit
// waypoints as objects ({x,y,z} with any subset of keys) or as arrays
// ([x,y] or [x,y,z]); everything else is rejected. Coercion is pure: no I/O,
// same input always yields the same output.
package waypoint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"waypath-be/internal/entities"
)

// MalformedError reports a submitted waypoint that matches none of the
// accepted shapes. Index is the position in the submitted list, or -1 when
// the value was coerced on its own.
type MalformedError struct {
	Index  int
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid waypoint: %s", e.Reason)
	}
	return fmt.Sprintf("invalid waypoint at index %d: %s", e.Index, e.Reason)
}

// Coerce converts a single raw JSON value into a canonical Waypoint.
//
// Accepted shapes:
//   - object: optional numeric x/y/z fields, missing fields default to 0
//   - array of at least 2 numbers: [x, y] or [x, y, z], z defaults to 0
//
// Numeric strings ("3.5") coerce; anything else fails with *MalformedError.
func Coerce(raw json.RawMessage) (entities.Waypoint, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return entities.Waypoint{}, &MalformedError{Index: -1, Reason: "not a valid JSON value"}
	}

	switch val := v.(type) {
	case map[string]any:
		return coerceObject(val)
	case []any:
		return coerceArray(val)
	default:
		return entities.Waypoint{}, &MalformedError{Index: -1, Reason: "unsupported waypoint shape"}
	}
}

// CoerceAll normalizes every element of raw in order. The first failure
// aborts the whole conversion; the returned error carries the index of the
// offending element.
func CoerceAll(raw []json.RawMessage) ([]entities.Waypoint, error) {
	out := make([]entities.Waypoint, 0, len(raw))
	for i, r := range raw {
		wp, err := Coerce(r)
		if err != nil {
			if me, ok := err.(*MalformedError); ok {
				return nil, &MalformedError{Index: i, Reason: me.Reason}
			}
			return nil, err
		}
		out = append(out, wp)
	}
	return out, nil
}

func coerceObject(obj map[string]any) (entities.Waypoint, error) {
	var wp entities.Waypoint
	for _, c := range []struct {
		key string
		dst *float64
	}{
		{"x", &wp.X},
		{"y", &wp.Y},
		{"z", &wp.Z},
	} {
		v, ok := obj[c.key]
		if !ok {
			continue // missing component defaults to 0
		}
		f, ok := toFloat(v)
		if !ok {
			return entities.Waypoint{}, &MalformedError{Index: -1, Reason: fmt.Sprintf("field %q is not numeric", c.key)}
		}
		*c.dst = f
	}
	return wp, nil
}

func coerceArray(arr []any) (entities.Waypoint, error) {
	if len(arr) < 2 {
		return entities.Waypoint{}, &MalformedError{Index: -1, Reason: "waypoint needs at least [x, y]"}
	}

	var wp entities.Waypoint
	for i, dst := range []*float64{&wp.X, &wp.Y, &wp.Z} {
		if i >= len(arr) {
			break // z defaults to 0
		}
		f, ok := toFloat(arr[i])
		if !ok {
			return entities.Waypoint{}, &MalformedError{Index: -1, Reason: fmt.Sprintf("element %d is not numeric", i)}
		}
		*dst = f
	}
	return wp, nil
}

// toFloat coerces a decoded JSON value to a finite float64. Accepts numbers
// and numeric strings; rejects everything else (null, bool, nested values).
func toFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
