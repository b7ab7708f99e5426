// internal/words/source.go
//
// Word sources for each game variant.
//
//   - Source:     one of the embedded lists (wordle, scrabble, dictionary).
//   - FileSource: a newline-delimited word file plus an optional
//     tab-separated frequency table, read from disk.
//
// Both satisfy Loader and produce a frequency-ranked *WordList.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordsmith/assets"
)

// WordleSolutions is the size of the Wordle answer pool. The embedded
// assets/wordle.txt is shorter than this, so with Source{Kind: Wordle}
// every word is also a possible answer and there are no guess-only words.
// Use a FileSource with TopN set to WordleSolutions to play the full list
// of allowed guesses against the real answer pool.
const WordleSolutions = 2315

// Loader supplies the word list for one variant.
type Loader interface {
	LetterCount() int
	Load() (*WordList, error)
}

// Kind selects an embedded word list.
type Kind int

const (
	Wordle Kind = iota
	Scrabble
	Dictionary
)

func (k Kind) String() string {
	switch k {
	case Wordle:
		return "wordle"
	case Scrabble:
		return "scrabble"
	case Dictionary:
		return "dictionary"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Source is an embedded word list. Letters and TopN are ignored for Wordle,
// which is always 5 letters with WordleSolutions answers.
type Source struct {
	Kind    Kind
	Letters int
	TopN    int
}

var _ Loader = Source{}

// ParseSource builds a Source from its name.
func ParseSource(name string, letters, topN int) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "wordle":
		return Source{Kind: Wordle}, nil
	case "scrabble":
		return Source{Kind: Scrabble, Letters: letters, TopN: topN}, nil
	case "dictionary":
		return Source{Kind: Dictionary, Letters: letters, TopN: topN}, nil
	default:
		return Source{}, fmt.Errorf("words: unknown source %q", name)
	}
}

// LetterCount returns the word length for this source.
func (s Source) LetterCount() int {
	if s.Kind == Wordle {
		return 5
	}
	return s.Letters
}

// Load reads the embedded list and ranks it by the embedded frequency table.
func (s Source) Load() (*WordList, error) {
	var (
		list []string
		err  error
		topN = s.TopN
	)
	switch s.Kind {
	case Wordle:
		list, err = assets.WordleList()
		topN = WordleSolutions
	case Scrabble:
		list, err = assets.ScrabbleList()
	case Dictionary:
		list, err = assets.DictionaryList()
	default:
		return nil, fmt.Errorf("words: unknown source %v", s.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("words: load %s: %w", s.Kind, err)
	}

	f, err := assets.FrequencyTable()
	if err != nil {
		return nil, fmt.Errorf("words: open frequency table: %w", err)
	}
	defer f.Close()
	freq, err := ParseFrequencies(f)
	if err != nil {
		return nil, err
	}
	return New(s.LetterCount(), list, freq, topN)
}

// FileSource loads a variant from files on disk.
type FileSource struct {
	Letters       int
	TopN          int
	WordsPath     string
	FrequencyPath string // optional
}

var _ Loader = FileSource{}

func (s FileSource) LetterCount() int { return s.Letters }

func (s FileSource) Load() (*WordList, error) {
	list, err := readWordFile(s.WordsPath)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", s.WordsPath, err)
	}
	freq := Frequencies{}
	if s.FrequencyPath != "" {
		f, err := os.Open(s.FrequencyPath)
		if err != nil {
			return nil, fmt.Errorf("words: open %s: %w", s.FrequencyPath, err)
		}
		defer f.Close()
		if freq, err = ParseFrequencies(f); err != nil {
			return nil, fmt.Errorf("words: %s: %w", s.FrequencyPath, err)
		}
	}
	return New(s.Letters, list, freq, s.TopN)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWords(f)
}

func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}
