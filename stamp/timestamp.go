package stamp

import (
	"fmt"
	"strings"
)

// Timestamp is a partially assigned date and hour. Every assignment made
// through TrySet is checked against the fields already known, so a
// Timestamp never holds a combination that cannot occur on the calendar.
//
// The zero value has no known fields.
type Timestamp struct {
	fields [FieldCount]int
	known  [FieldCount]bool
}

// New returns a complete Timestamp, validating the fields in
// year, month, day, hour order.
func New(year, month, day, hour int) (Timestamp, error) {
	var ts Timestamp
	values := [FieldCount]int{Year: year, Month: month, Day: day, Hour: hour}
	for f := Year; f < numFields; f++ {
		if !ts.TrySet(f, values[f]) {
			return Timestamp{}, invalidTimestampError(
				fmt.Sprintf("%s %d in %04d-%02d-%02d %02d", f, values[f], year, month, day, hour))
		}
	}
	return ts, nil
}

// MustNew is like New but panics on an invalid timestamp.
// It is intended for fixtures and tests.
func MustNew(year, month, day, hour int) Timestamp {
	ts, err := New(year, month, day, hour)
	if err != nil {
		panic(err)
	}
	return ts
}

// TrySet assigns value to field f if it is in range and compatible with
// the fields already known. It reports whether the assignment was made;
// on failure the Timestamp is left unchanged.
func (t *Timestamp) TrySet(f Field, value int) bool {
	switch f {
	case Day:
		if !inScope(value, 1, 31) {
			return false
		}
		if t.known[Month] && !fitsMonth(value, t.fields[Month]) {
			return false
		}
		if t.known[Month] && t.known[Year] && !fitsYear(value, t.fields[Month], t.fields[Year]) {
			return false
		}
	case Month:
		if !inScope(value, 1, 12) {
			return false
		}
		if t.known[Day] && !fitsMonth(t.fields[Day], value) {
			return false
		}
		if t.known[Day] && t.known[Year] && !fitsYear(t.fields[Day], value, t.fields[Year]) {
			return false
		}
	case Year:
		if value < 0 {
			return false
		}
		if t.known[Day] && t.known[Month] && !fitsYear(t.fields[Day], t.fields[Month], value) {
			return false
		}
	case Hour:
		if !inScope(value, 0, 23) {
			return false
		}
	default:
		return false
	}

	t.fields[f] = value
	t.known[f] = true
	return true
}

// Unset marks field f as unknown. The stale value stays in place but is
// not observable until the field is assigned again.
func (t *Timestamp) Unset(f Field) {
	t.known[f] = false
}

// Value returns the value of field f and whether it is known.
func (t *Timestamp) Value(f Field) (int, bool) {
	if !t.known[f] {
		return 0, false
	}
	return t.fields[f], true
}

// Complete reports whether all fields are known.
func (t *Timestamp) Complete() bool {
	for _, k := range t.known {
		if !k {
			return false
		}
	}
	return true
}

// String renders the timestamp as YYYY-MM-DD HH, with ? for unknown fields.
func (t Timestamp) String() string {
	var b strings.Builder
	for f := Year; f < numFields; f++ {
		switch f {
		case Month, Day:
			b.WriteByte('-')
		case Hour:
			b.WriteByte(' ')
		}
		if !t.known[f] {
			b.WriteByte('?')
			continue
		}
		if f == Year {
			fmt.Fprintf(&b, "%04d", t.fields[f])
		} else {
			fmt.Fprintf(&b, "%02d", t.fields[f])
		}
	}
	return b.String()
}

// LessOrEqual compares two complete timestamps field by field in
// year, month, day, hour order. Comparing incomplete timestamps is
// meaningless.
func LessOrEqual(a, b Timestamp) bool {
	for f := Year; f < numFields; f++ {
		if a.fields[f] < b.fields[f] {
			return true
		}
		if a.fields[f] > b.fields[f] {
			return false
		}
	}
	return true
}
