package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrMalformedFrequency = errors.New("words: malformed frequency table")

// Frequencies maps a word to its real-world usage count.
// Words missing from the table rank lowest (count 0).
type Frequencies map[string]uint64

// ParseFrequencies reads a tab-separated "word\tcount" table.
// Blank lines are skipped; any other line must have exactly two fields.
func ParseFrequencies(r io.Reader) (Frequencies, error) {
	freq := make(Frequencies)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		parts := strings.Split(text, "\t")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformedFrequency, line, len(parts))
		}
		n, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedFrequency, line, err)
		}
		freq[strings.ToLower(strings.TrimSpace(parts[0]))] = n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read frequency table: %w", err)
	}
	return freq, nil
}

// Of returns the count for w, or 0 when unknown.
func (f Frequencies) Of(w string) uint64 {
	return f[w]
}
