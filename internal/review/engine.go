// Package review drives a rehearsal session over a snapshot of words.
// Transitions take a session by value and return the next state, so the
// HTTP layer can hold the latest snapshot and the engine stays trivially
// testable. Side effects (recitation counters) belong to the caller when a
// session reaches completion.
package review

import (
	"errors"
	"strings"

	"github.com/wordnest/api/internal/model"
)

// ErrNoWords is returned when a session would start with zero words.
var ErrNoWords = errors.New("no words available for review")

// Mode selects how each word is rehearsed.
type Mode string

const (
	// ModeBrowse shows the word, reveals the meaning, and asks the user
	// to self-grade.
	ModeBrowse Mode = "browse"
	// ModeDictateToEnglish shows the meaning and expects the word typed.
	ModeDictateToEnglish Mode = "dictate_to_english"
	// ModeDictateToMeaning shows the word and expects the meaning typed.
	ModeDictateToMeaning Mode = "dictate_to_meaning"
)

// Phase is the per-word position in the transition skeleton.
type Phase string

const (
	PhasePresenting Phase = "presenting"
	PhaseRevealed   Phase = "revealed"
	PhaseCompleted  Phase = "completed"
)

// Session is the ephemeral state of one rehearsal run. It is never
// persisted; word snapshots are taken at session start.
type Session struct {
	ID           string       `json:"id"`
	Mode         Mode         `json:"mode"`
	Words        []model.Word `json:"-"`
	Cursor       int          `json:"cursor"`
	CorrectCount int          `json:"correctCount"`
	Phase        Phase        `json:"phase"`
}

// NewSession starts a session over the given snapshot.
func NewSession(id string, words []model.Word, mode Mode) (Session, error) {
	if len(words) == 0 {
		return Session{}, ErrNoWords
	}
	return Session{
		ID:    id,
		Mode:  mode,
		Words: words,
		Phase: PhasePresenting,
	}, nil
}

// Current returns the word under the cursor; ok is false once completed.
func (s Session) Current() (model.Word, bool) {
	if s.Phase == PhaseCompleted || s.Cursor >= len(s.Words) {
		return model.Word{}, false
	}
	return s.Words[s.Cursor], true
}

// Prompt is the text shown to the user for the current word.
func (s Session) Prompt() string {
	word, ok := s.Current()
	if !ok {
		return ""
	}
	if s.Mode == ModeDictateToEnglish {
		return word.Meaning
	}
	return word.Word
}

// Answer is the text revealed (and, in dictation modes, graded against).
func (s Session) Answer() string {
	word, ok := s.Current()
	if !ok {
		return ""
	}
	if s.Mode == ModeDictateToEnglish {
		return word.Word
	}
	return word.Meaning
}

// Reveal moves the current word from presenting to revealed.
func (s Session) Reveal() Session {
	if s.Phase == PhasePresenting {
		s.Phase = PhaseRevealed
	}
	return s
}

// Submit grades a dictation answer against the target field, reveals the
// word, and tallies a correct result. The match is lenient: exact, or
// either string contained in the other, after trim and lowercase.
func (s Session) Submit(answer string) (Session, bool) {
	if s.Phase != PhasePresenting || s.Mode == ModeBrowse {
		return s, false
	}
	correct := LenientEqual(answer, s.Answer())
	if correct {
		s.CorrectCount++
	}
	s.Phase = PhaseRevealed
	return s, correct
}

// MarkResult records a self-graded browse answer and advances.
func (s Session) MarkResult(correct bool) Session {
	if s.Phase == PhaseCompleted {
		return s
	}
	if correct {
		s.CorrectCount++
	}
	return s.Advance()
}

// Advance moves the cursor to the next word, or completes the session when
// it passes the last index.
func (s Session) Advance() Session {
	if s.Phase == PhaseCompleted {
		return s
	}
	s.Cursor++
	if s.Cursor >= len(s.Words) {
		s.Phase = PhaseCompleted
	} else {
		s.Phase = PhasePresenting
	}
	return s
}

// Completed reports whether the session reached its natural end.
func (s Session) Completed() bool {
	return s.Phase == PhaseCompleted
}

// Accuracy is correct answers over total words, in [0, 1].
func (s Session) Accuracy() float64 {
	if len(s.Words) == 0 {
		return 0
	}
	return float64(s.CorrectCount) / float64(len(s.Words))
}

// WordIDs lists the ids of every word in the session, for the recitation
// counter bump on completion.
func (s Session) WordIDs() []uint {
	ids := make([]uint, len(s.Words))
	for i, word := range s.Words {
		ids[i] = word.ID
	}
	return ids
}

// LenientEqual implements the forgiving dictation match: normalized exact
// equality, or either string being a substring of the other. Empty strings
// never match anything.
func LenientEqual(answer, target string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	b := strings.ToLower(strings.TrimSpace(target))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
