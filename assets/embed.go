// assets/embed.go
//
// Embedded word data.
//
//   - wordle.txt:     5-letter Wordle vocabulary.
//   - scrabble.txt:   tournament-style list, mixed lengths, many rare words.
//   - dictionary.txt: common English words, mixed lengths.
//   - frequency.txt:  "word<TAB>count" usage table shared by all lists.
//
// List files hold one word per line; blank lines and "#" comments are skipped.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed wordle.txt scrabble.txt dictionary.txt frequency.txt
var FS embed.FS

const (
	wordleFile     = "wordle.txt"
	scrabbleFile   = "scrabble.txt"
	dictionaryFile = "dictionary.txt"
	frequencyFile  = "frequency.txt"
)

// wordList reads an embedded list, lowercased.
func wordList(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		out = append(out, strings.ToLower(line))
	}
	return out, sc.Err()
}

func WordleList() ([]string, error)     { return wordList(wordleFile) }
func ScrabbleList() ([]string, error)   { return wordList(scrabbleFile) }
func DictionaryList() ([]string, error) { return wordList(dictionaryFile) }

// FrequencyTable opens the embedded word<TAB>count table.
func FrequencyTable() (io.ReadCloser, error) {
	return FS.Open(frequencyFile)
}
