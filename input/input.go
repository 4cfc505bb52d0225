// Package input reads the letter-frequency table and the interval list
// that drive a simulation. Both formats are whitespace-separated numbers.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/chiller/stampsim/logger"
	"github.com/chiller/stampsim/message"
	"github.com/chiller/stampsim/stamp"
)

// ErrMalformedInput is returned when a token cannot be parsed.
var ErrMalformedInput = errors.New("malformed input")

// errTruncated marks an interval cut short by the end of input.
var errTruncated = errors.New("unexpected end of input")

func malformedInputError(message string) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, message)
}

// ReadFrequencies reads up to message.Letters non-negative weights, one
// per letter from A to Z. Missing trailing weights are zero and extra
// tokens are ignored.
func ReadFrequencies(r io.Reader) ([message.Letters]float64, error) {
	var weights [message.Letters]float64
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for i := 0; i < message.Letters && scanner.Scan(); i++ {
		w, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return weights, malformedInputError(
				fmt.Sprintf("letter weight #%d %q", i+1, scanner.Text()))
		}
		weights[i] = w
	}
	if err := scanner.Err(); err != nil {
		return weights, fmt.Errorf("read letter frequencies: %w", err)
	}
	return weights, nil
}

// ReadIntervals reads intervals given as two year, month, day, hour
// quadruples each, low bound first. Reading stops cleanly at the end of
// input between intervals. Any invalid or truncated interval aborts with
// an error naming its 1-based position. Reversed intervals are reported
// to log and kept.
func ReadIntervals(r io.Reader, log logger.Logger) (stamp.IntervalSet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var set stamp.IntervalSet
	for {
		index := len(set) + 1
		low, err := readTimestamp(scanner)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stamp.IntervalError(index, err)
		}
		high, err := readTimestamp(scanner)
		if errors.Is(err, io.EOF) {
			err = errTruncated
		}
		if err != nil {
			return nil, stamp.IntervalError(index, err)
		}

		interval, err := stamp.NewInterval(low, high)
		if err != nil {
			return nil, stamp.IntervalError(index, err)
		}
		if interval.Reversed() {
			log.Warn("Interval has reversed endpoints.", "interval", index,
				"low", interval.Low.String(), "high", interval.High.String())
		}
		set = append(set, interval)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read intervals: %w", err)
	}
	return set, nil
}

// readTimestamp reads one quadruple. It returns io.EOF only if the input
// ends before the first number.
func readTimestamp(scanner *bufio.Scanner) (stamp.Timestamp, error) {
	var values [stamp.FieldCount]int
	for i := range values {
		if !scanner.Scan() {
			if i == 0 {
				return stamp.Timestamp{}, io.EOF
			}
			return stamp.Timestamp{}, errTruncated
		}
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return stamp.Timestamp{}, malformedInputError(fmt.Sprintf("%q is not an integer", scanner.Text()))
		}
		values[i] = v
	}
	return stamp.New(values[stamp.Year], values[stamp.Month], values[stamp.Day], values[stamp.Hour])
}

// LoadFrequencies reads the letter-frequency file at path.
func LoadFrequencies(path string) ([message.Letters]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return [message.Letters]float64{}, fmt.Errorf("open letter frequencies: %w", err)
	}
	defer f.Close()
	return ReadFrequencies(f)
}

// LoadIntervals reads the interval file at path.
func LoadIntervals(path string, log logger.Logger) (stamp.IntervalSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open intervals: %w", err)
	}
	defer f.Close()
	return ReadIntervals(f, log)
}
