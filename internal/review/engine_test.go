package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordnest/api/internal/model"
)

func testWords() []model.Word {
	return []model.Word{
		{ID: 1, Word: "cat", Meaning: "n. 猫"},
		{ID: 2, Word: "dog", Meaning: "n. 狗"},
	}
}

func TestNewSessionRequiresWords(t *testing.T) {
	_, err := NewSession("r1", nil, ModeBrowse)
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestBrowseFlow(t *testing.T) {
	s, err := NewSession("r1", testWords(), ModeBrowse)
	require.NoError(t, err)

	word, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "cat", word.Word)
	assert.Equal(t, "cat", s.Prompt())
	assert.Equal(t, "n. 猫", s.Answer())

	s = s.Reveal()
	assert.Equal(t, PhaseRevealed, s.Phase)

	s = s.MarkResult(true)
	assert.Equal(t, 1, s.Cursor)
	assert.Equal(t, PhasePresenting, s.Phase)

	s = s.MarkResult(false)
	assert.True(t, s.Completed())
	assert.Equal(t, 1, s.CorrectCount)
	assert.InDelta(t, 0.5, s.Accuracy(), 1e-9)

	// A completed session is inert.
	assert.Equal(t, s, s.MarkResult(true))
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestDictateToMeaning(t *testing.T) {
	s, err := NewSession("r1", testWords(), ModeDictateToMeaning)
	require.NoError(t, err)
	assert.Equal(t, "cat", s.Prompt())

	s, correct := s.Submit("猫")
	assert.True(t, correct)
	assert.Equal(t, PhaseRevealed, s.Phase)
	assert.Equal(t, 1, s.CorrectCount)

	// Submitting again after reveal is ignored.
	s, correct = s.Submit("猫")
	assert.False(t, correct)
	assert.Equal(t, 1, s.CorrectCount)

	s = s.Advance()
	s, correct = s.Submit("wrong")
	assert.False(t, correct)

	s = s.Advance()
	assert.True(t, s.Completed())
}

func TestDictateToEnglishSwapsPromptAndAnswer(t *testing.T) {
	s, err := NewSession("r1", testWords(), ModeDictateToEnglish)
	require.NoError(t, err)
	assert.Equal(t, "n. 猫", s.Prompt())
	assert.Equal(t, "cat", s.Answer())

	s, correct := s.Submit("  CAT ")
	assert.True(t, correct)
	assert.Equal(t, PhaseRevealed, s.Phase)
}

func TestSubmitIgnoredInBrowseMode(t *testing.T) {
	s, err := NewSession("r1", testWords(), ModeBrowse)
	require.NoError(t, err)

	next, correct := s.Submit("cat")
	assert.False(t, correct)
	assert.Equal(t, s, next)
}

func TestWordIDs(t *testing.T) {
	s, err := NewSession("r1", testWords(), ModeBrowse)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, s.WordIDs())
}

func TestLenientEqual(t *testing.T) {
	assert.True(t, LenientEqual("cat", "cat"))
	assert.True(t, LenientEqual("  CAT ", "cat"))
	assert.True(t, LenientEqual("ca", "cat"))   // answer inside target
	assert.True(t, LenientEqual("cats", "cat")) // target inside answer
	assert.False(t, LenientEqual("dog", "cat"))
	assert.False(t, LenientEqual("", "cat"))
	assert.False(t, LenientEqual("   ", "cat"))
	assert.False(t, LenientEqual("cat", ""))
}
