package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wordnest/api/internal/game"
	"github.com/wordnest/api/internal/middleware"
	"github.com/wordnest/api/internal/store"
)

const defaultPairCount = 4

// GameHandler keeps matching boards in memory, keyed by uuid.
type GameHandler struct {
	store    *store.Store
	mu       sync.Mutex
	sessions map[string]game.Session
}

func NewGameHandler(wordStore *store.Store) *GameHandler {
	return &GameHandler{
		store:    wordStore,
		sessions: make(map[string]game.Session),
	}
}

type CreateGameRequest struct {
	Pairs int `json:"pairs"`
}

func (h *GameHandler) Create(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Pairs <= 0 {
		req.Pairs = defaultPairCount
	}

	session, err := h.newBoard(uuid.NewString(), req.Pairs)
	if err != nil {
		h.respondBoardError(c, err, req.Pairs)
		return
	}

	h.mu.Lock()
	h.sessions[session.ID] = session
	h.mu.Unlock()

	c.JSON(http.StatusCreated, session)
}

func (h *GameHandler) Get(c *gin.Context) {
	h.mu.Lock()
	session, ok := h.sessions[c.Param("id")]
	h.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

type SelectRequest struct {
	Index int `json:"index"`
}

// Select applies one tile click; a board that just completed bumps the
// recitation counters for its words.
func (h *GameHandler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id := c.Param("id")
	h.mu.Lock()
	session, ok := h.sessions[id]
	if !ok {
		h.mu.Unlock()
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	next, outcome := session.Select(req.Index)
	h.sessions[id] = next
	h.mu.Unlock()

	if outcome == game.OutcomeCompleted {
		if err := h.store.IncrementRecitationCount(next.WordIDs); err != nil {
			log.Printf("Failed to bump recitation counts: %v", err)
		}
		middleware.RecordSessionCompleted("game")
	}

	c.JSON(http.StatusOK, gin.H{"outcome": outcome, "session": next})
}

// Restart deals a fresh board with the same pair count under the same id.
func (h *GameHandler) Restart(c *gin.Context) {
	id := c.Param("id")
	h.mu.Lock()
	session, ok := h.sessions[id]
	h.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	next, err := h.newBoard(id, session.PairCount)
	if err != nil {
		h.respondBoardError(c, err, session.PairCount)
		return
	}

	h.mu.Lock()
	h.sessions[id] = next
	h.mu.Unlock()

	c.JSON(http.StatusOK, next)
}

func (h *GameHandler) newBoard(id string, pairs int) (game.Session, error) {
	words, err := h.store.ForGame(pairs)
	if err != nil {
		return game.Session{}, err
	}
	return game.NewSession(id, words, pairs, nil)
}

func (h *GameHandler) respondBoardError(c *gin.Context, err error, pairs int) {
	if errors.Is(err, game.ErrInsufficientPairs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("need at least %d words with meanings", pairs),
		})
		return
	}
	log.Printf("Failed to start game: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start game"})
}
