package trial

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	textmsg "golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// Snapshot is a point-in-time copy of the simulation counters.
type Snapshot struct {
	Trials uint64
	Hits   []uint64
}

// Percent returns the hit rate of interval i as a percentage in
// [0, 100]. It is zero before the first trial.
func (s Snapshot) Percent(i int) decimal.Decimal {
	if s.Trials == 0 {
		return decimal.Zero
	}
	hits := decimal.NewFromInt(int64(s.Hits[i]))
	return hits.Mul(hundred).Div(decimal.NewFromInt(int64(s.Trials)))
}

// Reporter writes single-line progress reports, overwriting the previous
// line with a carriage return.
type Reporter struct {
	w       io.Writer
	counts  bool
	printer *textmsg.Printer
}

// NewReporter returns a Reporter writing to w. When counts is set the
// raw hit counts are printed instead of percentages.
func NewReporter(w io.Writer, counts bool) *Reporter {
	return &Reporter{
		w:       w,
		counts:  counts,
		printer: textmsg.NewPrinter(language.English),
	}
}

// Report writes the progress line for snap.
func (r *Reporter) Report(snap Snapshot) error {
	_, err := io.WriteString(r.w, r.Format(snap))
	return err
}

// Format renders the progress line for snap.
func (r *Reporter) Format(snap Snapshot) string {
	var b strings.Builder
	b.WriteString("\rTests: ")
	b.WriteString(r.printer.Sprintf("%d", snap.Trials))
	if r.counts {
		b.WriteString(". Found: ")
		for _, hits := range snap.Hits {
			fmt.Fprintf(&b, "%d ", hits)
		}
		return b.String()
	}
	b.WriteString(". Chances: ")
	for i := range snap.Hits {
		fmt.Fprintf(&b, "%s%% ", snap.Percent(i).StringFixed(3))
	}
	return b.String()
}
