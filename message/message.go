package message

import (
	"fmt"
	"strings"
)

// Message is an immutable sequence of decimal digits.
type Message struct {
	digits []byte
}

// Parse returns the Message spelled by a string of decimal digits.
func Parse(s string) (Message, error) {
	digits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Message{}, fmt.Errorf("%w: non-digit %q at position %d",
				ErrInvalidMessage, c, i)
		}
		digits[i] = c - '0'
	}
	return Message{digits: digits}, nil
}

// Encode returns the A1Z26 encoding of letters: every letter is replaced
// by its 1-based alphabet position written as two digits. Letters are
// case-insensitive; any other character is rejected.
func Encode(letters string) (Message, error) {
	digits := make([]byte, 0, 2*len(letters))
	for i, r := range strings.ToUpper(letters) {
		if r < 'A' || r > 'Z' {
			return Message{}, fmt.Errorf("%w: non-letter %q at position %d",
				ErrInvalidMessage, r, i)
		}
		digits = appendSymbol(digits, int(r-'A')+1)
	}
	return Message{digits: digits}, nil
}

// appendSymbol appends the two-digit form of symbol s in [1, 26].
func appendSymbol(digits []byte, s int) []byte {
	return append(digits, byte(s/10), byte(s%10))
}

// Len returns the number of digits in the message.
func (m Message) Len() int {
	return len(m.digits)
}

// ReadInt interprets the width digits starting at pos as a base-10
// integer. It returns false if the run does not fit in the message.
func (m Message) ReadInt(pos, width int) (int, bool) {
	if pos < 0 || width < 1 || pos+width > len(m.digits) {
		return 0, false
	}
	value := 0
	for _, d := range m.digits[pos : pos+width] {
		value = value*10 + int(d)
	}
	return value, true
}

func (m Message) String() string {
	var b strings.Builder
	b.Grow(len(m.digits))
	for _, d := range m.digits {
		b.WriteByte('0' + d)
	}
	return b.String()
}
