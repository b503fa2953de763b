package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wordnest/api/internal/dict"
	"github.com/wordnest/api/internal/middleware"
	"github.com/wordnest/api/internal/store"
)

type WordHandler struct {
	store *store.Store
	dict  *dict.Client
}

func NewWordHandler(wordStore *store.Store, dictClient *dict.Client) *WordHandler {
	return &WordHandler{store: wordStore, dict: dictClient}
}

type CreateWordRequest struct {
	Word            string `json:"word" binding:"required"`
	Meaning         string `json:"meaning"`
	Phonetic        string `json:"phonetic"`
	PartOfSpeech    string `json:"partOfSpeech"`
	ExampleSentence string `json:"exampleSentence"`
}

// Create upserts a single word. Re-submitting an existing word bumps its
// selection count and ignores the supplied metadata.
func (h *WordHandler) Create(c *gin.Context) {
	var req CreateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
		return
	}

	entry, created, err := h.store.Upsert(req.Word, store.Meta{
		Meaning:         req.Meaning,
		Phonetic:        req.Phonetic,
		PartOfSpeech:    req.PartOfSpeech,
		ExampleSentence: req.ExampleSentence,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmptyWord) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "word is empty"})
			return
		}
		log.Printf("Failed to upsert word: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save word"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"word": entry, "created": created})
}

// List returns all words in the requested sort order, or the search
// results when a keyword is given.
func (h *WordHandler) List(c *gin.Context) {
	if keyword := c.Query("q"); keyword != "" {
		words, err := h.store.Search(keyword)
		if err != nil {
			log.Printf("Search failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"words": words, "total": len(words)})
		return
	}

	order := store.SortOrder(c.DefaultQuery("sort", string(store.SortAlphabetical)))
	words, err := h.store.List(order)
	if err != nil {
		log.Printf("List failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list words"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": words, "total": len(words)})
}

func (h *WordHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.store.Find(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load word"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

type UpdateWordRequest struct {
	Word            *string `json:"word"`
	Meaning         *string `json:"meaning"`
	Phonetic        *string `json:"phonetic"`
	PartOfSpeech    *string `json:"partOfSpeech"`
	ExampleSentence *string `json:"exampleSentence"`
}

func (h *WordHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.store.Update(id, store.UpdateFields{
		Word:            req.Word,
		Meaning:         req.Meaning,
		Phonetic:        req.Phonetic,
		PartOfSpeech:    req.PartOfSpeech,
		ExampleSentence: req.ExampleSentence,
	})
	switch {
	case errors.Is(err, store.ErrEmptyWord):
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is empty"})
		return
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
		return
	case err != nil:
		log.Printf("Update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update word"})
		return
	}

	entry, err := h.store.Find(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload word"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *WordHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
			return
		}
		log.Printf("Delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete word"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Word deleted"})
}

// Lookup fetches dictionary data for a stored word and persists whatever
// the dictionary returned.
func (h *WordHandler) Lookup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.store.Find(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load word"})
		return
	}

	result := h.dict.Lookup(c.Request.Context(), entry.Word)
	middleware.RecordDictionaryLookup(string(result.Source))

	if !result.Found() {
		c.JSON(http.StatusOK, gin.H{"found": false, "source": result.Source})
		return
	}

	err = h.store.Update(id, store.UpdateFields{
		Meaning:         &result.Meaning,
		Phonetic:        &result.Phonetic,
		PartOfSpeech:    &result.PartOfSpeech,
		ExampleSentence: &result.Example,
	})
	if err != nil {
		log.Printf("Failed to store lookup result: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save lookup result"})
		return
	}

	updated, err := h.store.Find(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload word"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "source": result.Source, "word": updated})
}

// Stats returns the aggregate counters; all zeroes on an empty store.
func (h *WordHandler) Stats(c *gin.Context) {
	stats, err := h.store.Statistics()
	if err != nil {
		log.Printf("Statistics failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid word ID"})
		return 0, false
	}
	return uint(id), true
}
