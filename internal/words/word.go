// internal/words/word.go
//
// Letter and Word value types.
//
//   - Letter is a lowercase a–z letter stored as its alphabet index 0..25.
//   - Word is a fixed-length sequence of Letters held inline, so it is
//     comparable with == and usable as a map key.
//
// Text → Word → text round-trips for any valid lowercase string of
// length 1..MaxLength.

package words

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLength is the longest word a Word can hold.
const MaxLength = 15

// AlphabetSize is the number of distinct letters.
const AlphabetSize = 26

var (
	ErrWordLength = errors.New("words: invalid word length")
	ErrWordChar   = errors.New("words: invalid letter")
)

// Letter is a lowercase ASCII letter stored as 0..25.
type Letter uint8

// ParseLetter maps 'a'..'z' to a Letter.
func ParseLetter(b byte) (Letter, error) {
	if b < 'a' || b > 'z' {
		return 0, fmt.Errorf("%w: %q", ErrWordChar, b)
	}
	return Letter(b - 'a'), nil
}

// Index returns the alphabet position 0..25.
func (l Letter) Index() int { return int(l) }

// Byte returns the lowercase ASCII byte.
func (l Letter) Byte() byte { return byte(l) + 'a' }

func (l Letter) String() string { return string(l.Byte()) }

// Word is an immutable sequence of letters.
type Word struct {
	letters [MaxLength]Letter
	n       uint8
}

// ParseWord converts lowercase text into a Word.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) == 0 || len(s) > MaxLength {
		return w, fmt.Errorf("%w: %q has %d letters", ErrWordLength, s, len(s))
	}
	for i := 0; i < len(s); i++ {
		l, err := ParseLetter(s[i])
		if err != nil {
			return Word{}, fmt.Errorf("word %q: %w", s, err)
		}
		w.letters[i] = l
	}
	w.n = uint8(len(s))
	return w, nil
}

// MustParseWord is ParseWord for literals known to be valid.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Len returns the number of letters.
func (w Word) Len() int { return int(w.n) }

// At returns the letter at position i.
func (w Word) At(i int) Letter { return w.letters[i] }

// Letters returns a copy of the letters.
func (w Word) Letters() []Letter {
	out := make([]Letter, w.n)
	copy(out, w.letters[:w.n])
	return out
}

// IsZero reports whether w is the empty Word.
func (w Word) IsZero() bool { return w.n == 0 }

func (w Word) String() string {
	var b strings.Builder
	b.Grow(int(w.n))
	for i := 0; i < int(w.n); i++ {
		b.WriteByte(w.letters[i].Byte())
	}
	return b.String()
}
