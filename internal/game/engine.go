// Package game implements the connect-the-pairs matching board. Like the
// review engine, transitions are value in, value out; the caller applies
// recitation counters when a board completes.
package game

import (
	"errors"
	"math/rand"

	"github.com/wordnest/api/internal/model"
)

// ErrInsufficientPairs is returned when fewer words with meanings exist
// than the requested pair count.
var ErrInsufficientPairs = errors.New("not enough words with meanings for the requested pair count")

const (
	matchReward     = 10
	mismatchPenalty = 2
	// meaningDisplayRunes caps the target tile text; longer meanings get
	// an ellipsis marker.
	meaningDisplayRunes = 15
)

// Kind distinguishes the two halves of a pair.
type Kind string

const (
	KindSource Kind = "source" // the word itself
	KindTarget Kind = "target" // its (truncated) meaning
)

// Tile is one clickable board cell.
type Tile struct {
	Display string `json:"display"`
	PairID  uint   `json:"pairId"`
	Kind    Kind   `json:"kind"`
	Matched bool   `json:"matched"`
}

// Outcome describes what a tile selection did.
type Outcome string

const (
	OutcomeIgnored    Outcome = "ignored"
	OutcomeArmed      Outcome = "armed"
	OutcomeDisarmed   Outcome = "disarmed"
	OutcomeMatched    Outcome = "matched"
	OutcomeMismatched Outcome = "mismatched"
	OutcomeCompleted  Outcome = "completed"
)

// Session is the ephemeral board state for one game.
type Session struct {
	ID           string `json:"id"`
	Tiles        []Tile `json:"tiles"`
	Selected     int    `json:"selected"` // index of the armed tile, -1 for none
	Score        int    `json:"score"`
	MatchedPairs int    `json:"matchedPairs"`
	TotalPairs   int    `json:"totalPairs"`
	PairCount    int    `json:"pairCount"`
	WordIDs      []uint `json:"-"`
}

// NewSession builds a shuffled board of two tiles per word. Every word
// must carry a non-empty meaning and at least pairCount words must be
// given. A nil rng falls back to the shared source.
func NewSession(id string, words []model.Word, pairCount int, rng *rand.Rand) (Session, error) {
	if pairCount < 1 {
		return Session{}, ErrInsufficientPairs
	}
	withMeaning := make([]model.Word, 0, len(words))
	for _, word := range words {
		if word.Meaning != "" {
			withMeaning = append(withMeaning, word)
		}
	}
	if len(withMeaning) < pairCount {
		return Session{}, ErrInsufficientPairs
	}
	picked := withMeaning[:pairCount]

	tiles := make([]Tile, 0, 2*pairCount)
	ids := make([]uint, 0, pairCount)
	for _, word := range picked {
		tiles = append(tiles, Tile{Display: word.Word, PairID: word.ID, Kind: KindSource})
		tiles = append(tiles, Tile{Display: truncateMeaning(word.Meaning), PairID: word.ID, Kind: KindTarget})
		ids = append(ids, word.ID)
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	return Session{
		ID:         id,
		Tiles:      tiles,
		Selected:   -1,
		TotalPairs: pairCount,
		PairCount:  pairCount,
		WordIDs:    ids,
	}, nil
}

// Select processes a click on the tile at index. Matched tiles are inert;
// the first click arms a tile, clicking it again disarms, and a second
// distinct tile resolves the pair: same pairId with different kinds scores
// +10 and flags both matched, anything else costs 2 points (clamped at 0).
func (s Session) Select(index int) (Session, Outcome) {
	if index < 0 || index >= len(s.Tiles) || s.Tiles[index].Matched || s.Completed() {
		return s, OutcomeIgnored
	}

	if s.Selected == -1 {
		s.Selected = index
		return s, OutcomeArmed
	}

	if s.Selected == index {
		s.Selected = -1
		return s, OutcomeDisarmed
	}

	armed := s.Tiles[s.Selected]
	tapped := s.Tiles[index]

	tiles := make([]Tile, len(s.Tiles))
	copy(tiles, s.Tiles)
	s.Tiles = tiles

	if armed.PairID == tapped.PairID && armed.Kind != tapped.Kind {
		s.Tiles[s.Selected].Matched = true
		s.Tiles[index].Matched = true
		s.Score += matchReward
		s.MatchedPairs++
		s.Selected = -1
		if s.Completed() {
			return s, OutcomeCompleted
		}
		return s, OutcomeMatched
	}

	s.Score -= mismatchPenalty
	if s.Score < 0 {
		s.Score = 0
	}
	s.Selected = -1
	return s, OutcomeMismatched
}

// Completed reports whether every pair has been matched.
func (s Session) Completed() bool {
	return s.TotalPairs > 0 && s.MatchedPairs == s.TotalPairs
}

func truncateMeaning(meaning string) string {
	runes := []rune(meaning)
	if len(runes) <= meaningDisplayRunes {
		return meaning
	}
	return string(runes[:meaningDisplayRunes]) + "..."
}
