package wordpattern_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlkata/wordpattern"
)

// goldenCase is one entry of testdata/cases.yaml.
type goldenCase struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	S       string `yaml:"s"`
	Want    bool   `yaml:"want"`
}

func loadCases(t *testing.T) []goldenCase {
	t.Helper()
	raw, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)

	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	return cases
}

func TestWordPattern_Golden(t *testing.T) {
	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, wordpattern.WordPattern(tc.Pattern, tc.S))
		})
	}
}

func TestMatch_Bijection(t *testing.T) {
	bij, err := wordpattern.Match("abba", "dog cat cat dog")
	require.NoError(t, err)
	assert.Equal(t, wordpattern.Bijection{"dog": 'a', "cat": 'b'}, bij)

	w, ok := bij.Word('b')
	assert.True(t, ok)
	assert.Equal(t, "cat", w)

	r, ok := bij.Symbol("dog")
	assert.True(t, ok)
	assert.Equal(t, 'a', r)

	_, ok = bij.Word('z')
	assert.False(t, ok)
	_, ok = bij.Symbol("fish")
	assert.False(t, ok)
}

func TestMatch_Errors(t *testing.T) {
	_, err := wordpattern.Match("abc", "dog cat")
	assert.ErrorIs(t, err, wordpattern.ErrLengthMismatch)

	// "fish" is new but 'a' already belongs to "dog".
	_, err = wordpattern.Match("abba", "dog cat cat fish")
	assert.ErrorIs(t, err, wordpattern.ErrSymbolTaken)
	assert.Contains(t, err.Error(), "position 3")

	// "cat" is new but 'a' already belongs to "dog".
	_, err = wordpattern.Match("aaaa", "dog cat cat dog")
	assert.ErrorIs(t, err, wordpattern.ErrSymbolTaken)

	_, err = wordpattern.Match("abba", "dog dog dog dog")
	assert.ErrorIs(t, err, wordpattern.ErrWordConflict)
	assert.Contains(t, err.Error(), "position 1")
}

// TestMatch_LengthCountsRunes makes sure a multibyte pattern is measured in
// symbols, not bytes.
func TestMatch_LengthCountsRunes(t *testing.T) {
	bij, err := wordpattern.Match("日月日", "sun moon sun")
	require.NoError(t, err)
	assert.Len(t, bij, 2)
}

func TestMatch_FoldCase(t *testing.T) {
	assert.False(t, wordpattern.WordPattern("aa", "Dog dog"), "case-sensitive by default")

	bij, err := wordpattern.Match("abba", "Dog CAT cat DOG", wordpattern.WithFoldCase())
	require.NoError(t, err)
	assert.Equal(t, wordpattern.Bijection{"dog": 'a', "cat": 'b'}, bij)
}

// TestWordPattern_InformationSeparators splits words on U+001C..U+001F too.
func TestWordPattern_InformationSeparators(t *testing.T) {
	assert.True(t, wordpattern.WordPattern("ab", "dog\x1fcat"))
	assert.True(t, wordpattern.WordPattern("abcd", "w\x1cx\x1dy\x1ez"))
	assert.False(t, wordpattern.WordPattern("a", "dog\x1ecat"), "two words, one symbol")
}
