package handler

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wordnest/api/internal/middleware"
	"github.com/wordnest/api/internal/review"
	"github.com/wordnest/api/internal/store"
)

const defaultReviewLimit = 10

// ReviewHandler keeps rehearsal sessions in memory, keyed by uuid. Sessions
// are ephemeral; only the recitation counters of a naturally completed
// session are written back to the store.
type ReviewHandler struct {
	store    *store.Store
	mu       sync.Mutex
	sessions map[string]review.Session
}

func NewReviewHandler(wordStore *store.Store) *ReviewHandler {
	return &ReviewHandler{
		store:    wordStore,
		sessions: make(map[string]review.Session),
	}
}

type CreateReviewRequest struct {
	Policy string `json:"policy"`
	Limit  int    `json:"limit"`
	Mode   string `json:"mode"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Limit <= 0 {
		req.Limit = defaultReviewLimit
	}
	policy := store.ReviewPolicy(req.Policy)
	if policy == "" {
		policy = store.PolicyHighFrequency
	}
	mode := review.Mode(req.Mode)
	if mode == "" {
		mode = review.ModeBrowse
	}
	switch mode {
	case review.ModeBrowse, review.ModeDictateToEnglish, review.ModeDictateToMeaning:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown review mode"})
		return
	}

	words, err := h.store.ForReview(policy, req.Limit)
	if err != nil {
		log.Printf("Failed to pick review words: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start review"})
		return
	}

	session, err := review.NewSession(uuid.NewString(), words, mode)
	if err != nil {
		if errors.Is(err, review.ErrNoWords) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start review"})
		return
	}

	h.mu.Lock()
	h.sessions[session.ID] = session
	h.mu.Unlock()

	c.JSON(http.StatusCreated, h.view(session))
}

func (h *ReviewHandler) Get(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.view(session))
}

// Reveal flips the current card over without grading anything.
func (h *ReviewHandler) Reveal(c *gin.Context) {
	h.transition(c, func(s review.Session) (review.Session, gin.H) {
		return s.Reveal(), nil
	})
}

type AnswerRequest struct {
	Text string `json:"text"`
}

// Answer grades a typed dictation answer and reveals the card.
func (h *ReviewHandler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.transition(c, func(s review.Session) (review.Session, gin.H) {
		next, correct := s.Submit(req.Text)
		return next, gin.H{"correct": correct}
	})
}

type ResultRequest struct {
	Correct bool `json:"correct"`
}

// Result records a self-graded browse answer and moves on.
func (h *ReviewHandler) Result(c *gin.Context) {
	var req ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.transition(c, func(s review.Session) (review.Session, gin.H) {
		return s.MarkResult(req.Correct), nil
	})
}

// Next advances past the current card.
func (h *ReviewHandler) Next(c *gin.Context) {
	h.transition(c, func(s review.Session) (review.Session, gin.H) {
		return s.Advance(), nil
	})
}

// End discards a session early. No recitation counters are written.
func (h *ReviewHandler) End(c *gin.Context) {
	id := c.Param("id")
	h.mu.Lock()
	_, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
}

// transition applies one engine step under the lock and handles the
// completion side effect exactly once.
func (h *ReviewHandler) transition(c *gin.Context, step func(review.Session) (review.Session, gin.H)) {
	id := c.Param("id")

	h.mu.Lock()
	session, ok := h.sessions[id]
	if !ok {
		h.mu.Unlock()
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	wasCompleted := session.Completed()
	next, extra := step(session)
	h.sessions[id] = next
	h.mu.Unlock()

	if next.Completed() && !wasCompleted {
		if err := h.store.IncrementRecitationCount(next.WordIDs()); err != nil {
			log.Printf("Failed to bump recitation counts: %v", err)
		}
		middleware.RecordSessionCompleted("review")
	}

	body := h.view(next)
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func (h *ReviewHandler) lookup(c *gin.Context) (review.Session, bool) {
	h.mu.Lock()
	session, ok := h.sessions[c.Param("id")]
	h.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return review.Session{}, false
	}
	return session, true
}

// view is the wire shape of a session; the answer only appears once the
// card is revealed, and accuracy only once the run is over.
func (h *ReviewHandler) view(s review.Session) gin.H {
	body := gin.H{
		"id":           s.ID,
		"mode":         s.Mode,
		"cursor":       s.Cursor,
		"total":        len(s.Words),
		"correctCount": s.CorrectCount,
		"phase":        s.Phase,
		"completed":    s.Completed(),
	}
	if s.Completed() {
		body["accuracy"] = s.Accuracy()
		return body
	}
	body["prompt"] = s.Prompt()
	if s.Phase == review.PhaseRevealed {
		body["answer"] = s.Answer()
		if word, ok := s.Current(); ok {
			body["word"] = word
		}
	}
	return body
}
