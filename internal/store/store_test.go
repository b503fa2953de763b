package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordnest/api/internal/database"
	"github.com/wordnest/api/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive for the
	// whole test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return New(db)
}

func TestUpsertCreatesThenIncrements(t *testing.T) {
	s := newTestStore(t)

	entry, created, err := s.Upsert("Hello", Meta{Meaning: "int. 你好"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "hello", entry.Word)
	assert.Equal(t, 1, entry.SelectionCount)
	assert.Equal(t, "int. 你好", entry.Meaning)

	// Re-submitting bumps the selection count and keeps the stored
	// metadata, ignoring whatever came with the resubmission.
	entry, created, err = s.Upsert("  HELLO  ", Meta{Meaning: "something else"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 2, entry.SelectionCount)
	assert.Equal(t, "int. 你好", entry.Meaning)
}

func TestUpsertRejectsEmptyWord(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.Upsert("   ", Meta{})
	assert.ErrorIs(t, err, ErrEmptyWord)
}

func TestBatchUpsertCounts(t *testing.T) {
	s := newTestStore(t)

	newCount, updatedCount, err := s.BatchUpsert([]string{"Cat", "cat", "dog", "  "})
	require.NoError(t, err)
	assert.Equal(t, 2, newCount)
	assert.Equal(t, 1, updatedCount)

	entry, err := s.FindByWord("cat")
	require.NoError(t, err)
	assert.Equal(t, 2, entry.SelectionCount)
}

func TestListOrders(t *testing.T) {
	s := newTestStore(t)

	mustUpsert(t, s, "zebra")
	mustUpsert(t, s, "apple")
	mustUpsert(t, s, "mango")
	mustUpsert(t, s, "mango") // selection_count 2

	words, err := s.List(SortAlphabetical)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "mango", "zebra"}, wordTexts(words))

	words, err = s.List(SortHighFrequency)
	require.NoError(t, err)
	assert.Equal(t, "mango", words[0].Word)

	// Never printed words come first in the print queue; ties break
	// alphabetically.
	apple, err := s.FindByWord("apple")
	require.NoError(t, err)
	require.NoError(t, s.IncrementPrintCount([]uint{apple.ID}))

	words, err = s.List(SortPrintQueue)
	require.NoError(t, err)
	assert.Equal(t, []string{"mango", "zebra", "apple"}, wordTexts(words))
}

func TestSearchMatchesWordAndMeaning(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.Upsert("apple", Meta{Meaning: "n. 苹果"})
	require.NoError(t, err)
	_, _, err = s.Upsert("pineapple", Meta{Meaning: "n. 菠萝"})
	require.NoError(t, err)
	_, _, err = s.Upsert("banana", Meta{Meaning: "n. 香蕉"})
	require.NoError(t, err)

	words, err := s.Search("APPLE")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "pineapple"}, wordTexts(words))

	words, err = s.Search("苹果")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple"}, wordTexts(words))
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	entry := mustUpsert(t, s, "walk")

	meaning := "v. 走路"
	require.NoError(t, s.Update(entry.ID, UpdateFields{Meaning: &meaning}))

	got, err := s.Find(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "v. 走路", got.Meaning)
	assert.Equal(t, "walk", got.Word)

	empty := "  "
	assert.ErrorIs(t, s.Update(entry.ID, UpdateFields{Word: &empty}), ErrEmptyWord)
	assert.ErrorIs(t, s.Update(9999, UpdateFields{Meaning: &meaning}), ErrNotFound)

	// No fields set is a no-op, not an error.
	require.NoError(t, s.Update(entry.ID, UpdateFields{}))
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	entry := mustUpsert(t, s, "gone")

	require.NoError(t, s.Delete(entry.ID))
	_, err := s.Find(entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(entry.ID), ErrNotFound)
}

func TestIncrementCountersSkipUnknownIDs(t *testing.T) {
	s := newTestStore(t)
	entry := mustUpsert(t, s, "known")

	require.NoError(t, s.IncrementRecitationCount([]uint{entry.ID, 4242}))
	require.NoError(t, s.IncrementPrintCount(nil))

	got, err := s.Find(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RecitationCount)
	assert.Equal(t, 0, got.PrintCount)
}

func TestStatistics(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.Statistics()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalWords)
	assert.Zero(t, stats.TotalSelections)
	assert.Zero(t, stats.TotalPrints)
	assert.Zero(t, stats.TotalRecitations)

	mustUpsert(t, s, "one")
	mustUpsert(t, s, "one")
	two := mustUpsert(t, s, "two")
	require.NoError(t, s.IncrementPrintCount([]uint{two.ID}))

	stats, err = s.Statistics()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalWords)
	assert.EqualValues(t, 3, stats.TotalSelections)
	assert.EqualValues(t, 1, stats.TotalPrints)
}

func TestForReview(t *testing.T) {
	s := newTestStore(t)

	mustUpsert(t, s, "rare")
	mustUpsert(t, s, "common")
	mustUpsert(t, s, "common")
	mustUpsert(t, s, "common")
	mustUpsert(t, s, "middling")
	mustUpsert(t, s, "middling")

	words, err := s.ForReview(PolicyHighFrequency, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"common", "middling"}, wordTexts(words))

	words, err = s.ForReview(PolicyRandom, 10)
	require.NoError(t, err)
	assert.Len(t, words, 3)
}

func TestForGameRequiresMeanings(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.Upsert("cat", Meta{Meaning: "n. 猫"})
	require.NoError(t, err)
	_, _, err = s.Upsert("dog", Meta{Meaning: "n. 狗"})
	require.NoError(t, err)
	mustUpsert(t, s, "bare") // no meaning, never sampled

	words, err := s.ForGame(4)
	require.NoError(t, err)
	assert.Len(t, words, 2)
	for _, word := range words {
		assert.NotEmpty(t, word.Meaning)
	}
}

func TestMissingMeaning(t *testing.T) {
	s := newTestStore(t)

	mustUpsert(t, s, "empty")
	_, _, err := s.Upsert("full", Meta{Meaning: "adj. 满的"})
	require.NoError(t, err)

	words, err := s.MissingMeaning(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"empty"}, wordTexts(words))
}

func mustUpsert(t *testing.T, s *Store, word string) *model.Word {
	t.Helper()
	entry, _, err := s.Upsert(word, Meta{})
	require.NoError(t, err)
	return entry
}

func wordTexts(words []model.Word) []string {
	texts := make([]string, len(words))
	for i, word := range words {
		texts[i] = word.Word
	}
	return texts
}
