// Package search finds calendar timestamps hidden in digit messages.
//
// A Searcher walks every start offset of a message and, for each supported
// field order, tries the short and long encodings of every field in turn.
// Partial assignments are validated as they are made, so sub-trees that
// cannot produce a valid date are never explored. Each complete timestamp
// is tested against the configured intervals and the matching intervals
// are flagged for the current message.
package search

import (
	"github.com/chiller/stampsim/message"
	"github.com/chiller/stampsim/stamp"
)

// Visitor is called with every complete timestamp found in a message,
// along with the offset and field order it was decoded with.
type Visitor func(offset int, order stamp.Order, ts stamp.Timestamp)

// Option configures a Searcher.
type Option func(*Searcher)

// WithVisitor registers a Visitor for complete timestamps.
func WithVisitor(v Visitor) Option {
	return func(s *Searcher) {
		s.visit = v
	}
}

// Searcher holds the scratch state of a timestamp search and the
// per-message interval hit flags.
//
// A Searcher is not safe for concurrent use.
type Searcher struct {
	intervals stamp.IntervalSet
	hits      []bool
	current   stamp.Timestamp
	offset    int
	order     stamp.Order
	visit     Visitor
}

// New returns a Searcher matching candidates against intervals.
func New(intervals stamp.IntervalSet, opts ...Option) *Searcher {
	s := &Searcher{
		intervals: intervals,
		hits:      make([]bool, len(intervals)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan searches msg from every offset that leaves room for the
// narrowest timestamp, in every supported field order.
func (s *Searcher) Scan(msg message.Message) {
	for offset := 0; offset <= msg.Len()-stamp.MinWidth; offset++ {
		for _, order := range stamp.Orders {
			s.Search(msg, offset, order)
		}
	}
}

// Search decodes every timestamp that starts at offset in msg with its
// fields laid out in order.
func (s *Searcher) Search(msg message.Message, offset int, order stamp.Order) {
	s.offset = offset
	s.order = order
	s.search(msg, offset, 0)
}

func (s *Searcher) search(msg message.Message, pos, fieldIndex int) {
	if fieldIndex == stamp.FieldCount {
		s.intervals.Match(s.current, s.hits)
		if s.visit != nil {
			s.visit(s.offset, s.order, s.current)
		}
		return
	}

	field := s.order[fieldIndex]
	for _, width := range stamp.Widths {
		size := field.Width(width)
		raw, ok := msg.ReadInt(pos, size)
		if !ok {
			continue
		}
		if !s.current.TrySet(field, field.Decode(width, raw)) {
			continue
		}
		s.search(msg, pos+size, fieldIndex+1)
		s.current.Unset(field)
	}
}

// Hits returns the interval hit flags collected since the last Reset.
// The slice is owned by the Searcher.
func (s *Searcher) Hits() []bool {
	return s.hits
}

// Reset clears the interval hit flags.
func (s *Searcher) Reset() {
	for i := range s.hits {
		s.hits[i] = false
	}
}
