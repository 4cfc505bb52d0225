package stamp

import "strings"

// Order is a permutation of the timestamp fields describing how they
// appear in a run of digits.
type Order [FieldCount]Field

// Supported field orders.
var (
	DMYH = Order{Day, Month, Year, Hour}
	MDYH = Order{Month, Day, Year, Hour}
	YMDH = Order{Year, Month, Day, Hour}
)

// Orders lists the field orders tried at every message offset.
var Orders = []Order{DMYH, MDYH, YMDH}

func (o Order) String() string {
	var b strings.Builder
	for _, f := range o {
		b.WriteString(strings.ToUpper(f.String()[:1]))
	}
	return b.String()
}
