// internal/words/wordlist.go
//
// WordList is the immutable vocabulary for one game variant.
//
//   - Words():     every acceptable guess.
//   - Solutions(): the top-N most frequent words, eligible as hidden answers.
//
// Both slices share one deterministic order: descending usage frequency,
// ties broken lexicographically. Solvers iterate in this order, so it is
// part of the contract (it decides ties between equally scored guesses).
//
// A *WordList is read-only after New returns and may be shared freely
// between games and solvers, including across goroutines.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var ErrEmptyWordList = errors.New("words: word list is empty")

// WordList holds the guess vocabulary and the solution pool.
type WordList struct {
	letterCount int

	words     []Word
	solutions []Word

	guessIndex    map[Word]int // position in words
	solutionIndex map[Word]int // position in solutions
}

// New builds a WordList from raw vocabulary text.
// Entries are lowercased and trimmed; anything that is not exactly
// letterCount letters a–z is dropped, as are duplicates. topN <= 0 or
// larger than the vocabulary makes every word a solution.
func New(letterCount int, vocabulary []string, freq Frequencies, topN int) (*WordList, error) {
	if letterCount <= 0 || letterCount > MaxLength {
		return nil, fmt.Errorf("%w: letter count %d", ErrWordLength, letterCount)
	}

	texts := normalize(vocabulary, letterCount)
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w (%d letters)", ErrEmptyWordList, letterCount)
	}
	sortByFrequency(texts, freq)

	wl := &WordList{
		letterCount: letterCount,
		words:       make([]Word, 0, len(texts)),
		guessIndex:  make(map[Word]int, len(texts)),
	}
	for _, t := range texts {
		w, err := ParseWord(t)
		if err != nil {
			return nil, err
		}
		wl.guessIndex[w] = len(wl.words)
		wl.words = append(wl.words, w)
	}

	if topN <= 0 || topN > len(wl.words) {
		topN = len(wl.words)
	}
	wl.solutions = wl.words[:topN:topN]
	wl.solutionIndex = make(map[Word]int, topN)
	for i, w := range wl.solutions {
		wl.solutionIndex[w] = i
	}
	return wl, nil
}

// normalize lowercases, filters by length/alphabet and removes duplicates.
func normalize(vocabulary []string, letterCount int) []string {
	cleaned := lo.Map(vocabulary, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	valid := lo.Filter(cleaned, func(s string, _ int) bool {
		return len(s) == letterCount && isAlpha(s)
	})
	return lo.Uniq(valid)
}

// sortByFrequency orders most frequent first, then alphabetically.
func sortByFrequency(texts []string, freq Frequencies) {
	sort.SliceStable(texts, func(i, j int) bool {
		fi, fj := freq.Of(texts[i]), freq.Of(texts[j])
		if fi != fj {
			return fi > fj
		}
		return texts[i] < texts[j]
	})
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// LetterCount is the fixed word length of this variant.
func (wl *WordList) LetterCount() int { return wl.letterCount }

// Words returns the guess vocabulary in contract order. Do not modify.
func (wl *WordList) Words() []Word { return wl.words }

// Solutions returns the solution pool in contract order. Do not modify.
func (wl *WordList) Solutions() []Word { return wl.solutions }

// IsValidGuess reports whether text is in the guess vocabulary.
func (wl *WordList) IsValidGuess(text string) bool {
	w, err := ParseWord(text)
	if err != nil {
		return false
	}
	_, ok := wl.guessIndex[w]
	return ok
}

// IsValidSolution reports whether text is in the solution pool.
func (wl *WordList) IsValidSolution(text string) bool {
	w, err := ParseWord(text)
	if err != nil {
		return false
	}
	_, ok := wl.solutionIndex[w]
	return ok
}

// SolutionIndex returns the position of w in Solutions().
func (wl *WordList) SolutionIndex(w Word) (int, bool) {
	i, ok := wl.solutionIndex[w]
	return i, ok
}

// RandomSolution returns a cryptographically random solution.
func (wl *WordList) RandomSolution() Word {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(wl.solutions))))
	if err != nil {
		return wl.solutions[0]
	}
	return wl.solutions[nBig.Int64()]
}

// Stats returns counts of loaded words: (solutions, guesses).
func (wl *WordList) Stats() (solutionCount int, guessCount int) {
	return len(wl.solutions), len(wl.words)
}
