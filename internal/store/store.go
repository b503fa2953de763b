// Package store wraps all persistence for vocabulary entries. Callers get
// explicit errors; nothing in here panics or half-applies a write beyond
// single-row atomicity.
package store

import (
	"errors"
	"strings"
	"time"

	"github.com/wordnest/api/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrEmptyWord is returned when a word normalizes to the empty string.
	ErrEmptyWord = errors.New("word is empty after normalization")
	// ErrNotFound is returned when no entry matches the given id or text.
	ErrNotFound = errors.New("word not found")
)

// SortOrder selects one of the supported list orders. The values match
// the original UI's sort dropdown.
type SortOrder string

const (
	SortAlphabetical  SortOrder = "alphabetical"
	SortHighFrequency SortOrder = "selection_desc"
	SortPrintQueue    SortOrder = "print_asc"
)

// ReviewPolicy selects how words are picked for a review session.
type ReviewPolicy string

const (
	PolicyHighFrequency ReviewPolicy = "high_frequency"
	PolicyRandom        ReviewPolicy = "random"
)

// Meta carries the optional metadata fields accepted on first insertion.
type Meta struct {
	Meaning         string
	Phonetic        string
	PartOfSpeech    string
	ExampleSentence string
}

// UpdateFields names the mutable columns. Nil pointers are left untouched.
type UpdateFields struct {
	Word            *string
	Meaning         *string
	Phonetic        *string
	PartOfSpeech    *string
	ExampleSentence *string
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Normalize trims and lowercases a word; this is the stored form and the
// lookup key everywhere.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Upsert creates a new entry for an unseen word, or bumps the selection
// count of an existing one. Metadata is only applied on creation; a
// re-submission keeps whatever the entry already holds. The returned bool
// reports whether a new row was created.
func (s *Store) Upsert(word string, meta Meta) (*model.Word, bool, error) {
	normalized := Normalize(word)
	if normalized == "" {
		return nil, false, ErrEmptyWord
	}

	var existing model.Word
	err := s.db.Where("word = ?", normalized).First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{
			"selection_count": gorm.Expr("selection_count + 1"),
			"updated_at":      time.Now(),
		}
		if err := s.db.Model(&existing).UpdateColumns(updates).Error; err != nil {
			return nil, false, err
		}
		if err := s.db.First(&existing, existing.ID).Error; err != nil {
			return nil, false, err
		}
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	entry := model.Word{
		Word:            normalized,
		Meaning:         meta.Meaning,
		Phonetic:        meta.Phonetic,
		PartOfSpeech:    meta.PartOfSpeech,
		ExampleSentence: meta.ExampleSentence,
		SelectionCount:  1,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, false, err
	}
	return &entry, true, nil
}

// BatchUpsert applies Upsert per word and reports how many entries were
// created versus incremented. Empty words are skipped; a duplicate within
// the batch counts once per occurrence.
func (s *Store) BatchUpsert(words []string) (newCount, updatedCount int, err error) {
	for _, word := range words {
		if Normalize(word) == "" {
			continue
		}
		_, created, err := s.Upsert(word, Meta{})
		if err != nil {
			return newCount, updatedCount, err
		}
		if created {
			newCount++
		} else {
			updatedCount++
		}
	}
	return newCount, updatedCount, nil
}

func (s *Store) Find(id uint) (*model.Word, error) {
	var entry model.Word
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *Store) FindByWord(text string) (*model.Word, error) {
	var entry model.Word
	if err := s.db.Where("word = ?", Normalize(text)).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// List returns every entry in the requested order. Ties always break
// alphabetically by word.
func (s *Store) List(order SortOrder) ([]model.Word, error) {
	clause := "word ASC"
	switch order {
	case SortHighFrequency:
		clause = "selection_count DESC, word ASC"
	case SortPrintQueue:
		clause = "print_count ASC, word ASC"
	}

	var words []model.Word
	if err := s.db.Order(clause).Find(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

// Search matches the keyword as a case-insensitive substring of either the
// word or its meaning, ordered alphabetically.
func (s *Store) Search(keyword string) ([]model.Word, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
	var words []model.Word
	err := s.db.
		Where("LOWER(word) LIKE ? OR LOWER(meaning) LIKE ?", pattern, pattern).
		Order("word ASC").
		Find(&words).Error
	if err != nil {
		return nil, err
	}
	return words, nil
}

// Update mutates the whitelisted fields of an entry and refreshes its
// updated_at. With no fields set it is a no-op.
func (s *Store) Update(id uint, fields UpdateFields) error {
	updates := map[string]interface{}{}
	if fields.Word != nil {
		normalized := Normalize(*fields.Word)
		if normalized == "" {
			return ErrEmptyWord
		}
		updates["word"] = normalized
	}
	if fields.Meaning != nil {
		updates["meaning"] = *fields.Meaning
	}
	if fields.Phonetic != nil {
		updates["phonetic"] = *fields.Phonetic
	}
	if fields.PartOfSpeech != nil {
		updates["part_of_speech"] = *fields.PartOfSpeech
	}
	if fields.ExampleSentence != nil {
		updates["example_sentence"] = *fields.ExampleSentence
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	result := s.db.Model(&model.Word{}).Where("id = ?", id).UpdateColumns(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(id uint) error {
	result := s.db.Delete(&model.Word{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementPrintCount adds one print to each named entry. Unknown ids are
// silently skipped.
func (s *Store) IncrementPrintCount(ids []uint) error {
	return s.incrementCounter("print_count", ids)
}

// IncrementRecitationCount adds one recitation to each named entry.
// Unknown ids are silently skipped.
func (s *Store) IncrementRecitationCount(ids []uint) error {
	return s.incrementCounter("recitation_count", ids)
}

func (s *Store) incrementCounter(column string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Model(&model.Word{}).
		Where("id IN ?", ids).
		UpdateColumns(map[string]interface{}{
			column:       gorm.Expr(column + " + 1"),
			"updated_at": time.Now(),
		}).Error
}

// Statistics sums the counters across every entry; all zeroes on an empty
// store.
func (s *Store) Statistics() (*model.Statistics, error) {
	var stats model.Statistics
	err := s.db.Raw(`SELECT
		COUNT(*) AS total_words,
		COALESCE(SUM(selection_count), 0) AS total_selections,
		COALESCE(SUM(print_count), 0) AS total_prints,
		COALESCE(SUM(recitation_count), 0) AS total_recitations
	FROM words`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ForReview picks the words for a rehearsal session: the most-selected
// first, or a uniform random sample without replacement.
func (s *Store) ForReview(policy ReviewPolicy, limit int) ([]model.Word, error) {
	var words []model.Word
	query := s.db.Limit(limit)
	if policy == PolicyHighFrequency {
		query = query.Order("selection_count DESC, word ASC")
	} else {
		query = query.Order("RANDOM()")
	}
	if err := query.Find(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

// ForGame samples entries that carry a meaning, in random order. The game
// engine validates that enough came back.
func (s *Store) ForGame(pairCount int) ([]model.Word, error) {
	var words []model.Word
	err := s.db.
		Where("meaning <> ''").
		Order("RANDOM()").
		Limit(pairCount).
		Find(&words).Error
	if err != nil {
		return nil, err
	}
	return words, nil
}

// MissingMeaning returns up to limit entries whose meaning is still empty,
// oldest first. Used by the background enrichment loop.
func (s *Store) MissingMeaning(limit int) ([]model.Word, error) {
	var words []model.Word
	err := s.db.
		Where("meaning = ''").
		Order("created_at ASC").
		Limit(limit).
		Find(&words).Error
	if err != nil {
		return nil, err
	}
	return words, nil
}
