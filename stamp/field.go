package stamp

// Field identifies one component of a timestamp.
type Field int

// Timestamp fields.
const (
	Year Field = iota
	Month
	Day
	Hour

	numFields
)

// FieldCount is the number of fields in a complete timestamp.
const FieldCount = int(numFields)

// Width selects one of the two admissible digit encodings of a field.
type Width int

const (
	// Short is the abbreviated encoding: two digits for the year,
	// one digit for the other fields.
	Short Width = iota

	// Long is the fully qualified encoding: four digits for the year,
	// two digits for the other fields.
	Long
)

// Widths lists the encodings in the order they are tried.
var Widths = [...]Width{Short, Long}

// MinWidth is the number of digits in the narrowest complete timestamp.
const MinWidth = 2 + 1 + 1 + 1

// shortYearBase is added to a year read with the short width.
const shortYearBase = 2000

var fieldNames = [FieldCount]string{"year", "month", "day", "hour"}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "unknown"
	}
	return fieldNames[f]
}

// Width returns the number of digits field f occupies when encoded with w.
func (f Field) Width(w Width) int {
	switch f {
	case Year:
		if w == Short {
			return 2
		}
		return 4
	case Month, Day, Hour:
		if w == Short {
			return 1
		}
		return 2
	}
	return 0
}

// Decode converts raw digits read with width w into the field value.
// Short years always land in 2000-2099.
func (f Field) Decode(w Width, raw int) int {
	if f == Year && w == Short {
		return shortYearBase + raw
	}
	return raw
}
