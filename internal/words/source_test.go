package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsmith/assets"
)

func embeddedFreq(t *testing.T) Frequencies {
	t.Helper()
	f, err := assets.FrequencyTable()
	require.NoError(t, err)
	defer f.Close()
	freq, err := ParseFrequencies(f)
	require.NoError(t, err)
	return freq
}

func TestParseSource(t *testing.T) {
	t.Parallel()

	s, err := ParseSource("", 7, 100)
	require.NoError(t, err)
	assert.Equal(t, Wordle, s.Kind)
	assert.Equal(t, 5, s.LetterCount(), "wordle ignores the letter count")

	s, err = ParseSource("Scrabble", 6, 300)
	require.NoError(t, err)
	assert.Equal(t, Source{Kind: Scrabble, Letters: 6, TopN: 300}, s)
	assert.Equal(t, "scrabble", s.Kind.String())

	_, err = ParseSource("klingon", 5, 0)
	assert.Error(t, err)
}

func TestSource_LoadEmbedded(t *testing.T) {
	t.Parallel()

	wl, err := Source{Kind: Wordle}.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, wl.LetterCount())
	assert.LessOrEqual(t, len(wl.Solutions()), WordleSolutions)
	assert.True(t, wl.IsValidGuess("roast"))
	if len(wl.Words()) <= WordleSolutions {
		assert.Len(t, wl.Solutions(), len(wl.Words()), "short list: every word is an answer")
		assert.True(t, wl.IsValidSolution(wl.Words()[len(wl.Words())-1].String()))
	}

	for _, kind := range []Kind{Scrabble, Dictionary} {
		wl, err := Source{Kind: kind, Letters: 6, TopN: 100}.Load()
		require.NoError(t, err, kind.String())
		assert.Equal(t, 6, wl.LetterCount())
		assert.Len(t, wl.Solutions(), 100)
		assert.Greater(t, len(wl.Words()), 100)
		for _, w := range wl.Words() {
			require.Equal(t, 6, w.Len())
		}
	}
}

func TestSource_RanksByFrequency(t *testing.T) {
	t.Parallel()

	wl, err := Source{Kind: Dictionary, Letters: 5, TopN: 50}.Load()
	require.NoError(t, err)

	freq := embeddedFreq(t)
	ws := wl.Words()
	for i := 1; i < len(ws); i++ {
		a, b := ws[i-1].String(), ws[i].String()
		fa, fb := freq.Of(a), freq.Of(b)
		if fa == fb {
			require.Less(t, a, b)
		} else {
			require.Greater(t, fa, fb, "%s before %s", a, b)
		}
	}
}

func TestFileSource_WordlePoolBelowVocabulary(t *testing.T) {
	t.Parallel()

	vocab, err := assets.WordleList()
	require.NoError(t, err)
	require.Less(t, len(vocab), WordleSolutions)

	path := filepath.Join(t.TempDir(), "wordle.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(vocab, "\n")), 0o600))

	topN := len(vocab) / 2
	wl, err := FileSource{Letters: 5, TopN: topN, WordsPath: path}.Load()
	require.NoError(t, err)
	assert.Len(t, wl.Solutions(), topN)
	assert.Len(t, wl.Words(), len(vocab))

	last := wl.Words()[len(vocab)-1].String()
	assert.True(t, wl.IsValidGuess(last))
	assert.False(t, wl.IsValidSolution(last), "guess-only word")
}

func TestFileSource_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	freqPath := filepath.Join(dir, "freq.tsv")
	require.NoError(t, os.WriteFile(wordsPath, []byte("relax\n\ntoast\nBOAST\nnope\n"), 0o600))
	require.NoError(t, os.WriteFile(freqPath, []byte("toast\t9\nrelax\t3\n"), 0o600))

	wl, err := FileSource{Letters: 5, TopN: 2, WordsPath: wordsPath, FrequencyPath: freqPath}.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"toast", "relax", "boast"}, texts(wl.Words()))
	assert.Equal(t, []string{"toast", "relax"}, texts(wl.Solutions()))

	_, err = FileSource{Letters: 5, WordsPath: filepath.Join(dir, "missing.txt")}.Load()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(freqPath, []byte("toast 9\n"), 0o600))
	_, err = FileSource{Letters: 5, WordsPath: wordsPath, FrequencyPath: freqPath}.Load()
	assert.ErrorIs(t, err, ErrMalformedFrequency)
}
