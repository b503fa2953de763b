package handler

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/wordnest/api/internal/extract"
	"github.com/wordnest/api/internal/middleware"
	"github.com/wordnest/api/internal/ocr"
	"github.com/wordnest/api/internal/store"
)

// IngestHandler covers the two ways words enter the system: pasted text
// and photographed text.
type IngestHandler struct {
	store *store.Store
	ocr   *ocr.Engine
}

func NewIngestHandler(wordStore *store.Store, engine *ocr.Engine) *IngestHandler {
	return &IngestHandler{store: wordStore, ocr: engine}
}

type ExtractRequest struct {
	Text  string `json:"text"`
	Smart bool   `json:"smart"`
}

// Extract tokenizes pasted text without touching the store. Smart mode
// keeps document order and picks up Chinese runs alongside English words.
func (h *IngestHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	if req.Smart {
		tokens := extract.Tokens(req.Text)
		c.JSON(http.StatusOK, gin.H{"tokens": tokens, "total": len(tokens)})
		return
	}

	words := extract.Words(req.Text)
	c.JSON(http.StatusOK, gin.H{"words": words, "total": len(words)})
}

type BatchRequest struct {
	Words []string `json:"words" binding:"required"`
}

// Batch upserts a list of extracted words in one call.
func (h *IngestHandler) Batch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Words) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "words is required"})
		return
	}

	created, updated, err := h.store.BatchUpsert(req.Words)
	if err != nil {
		log.Printf("Batch upsert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save words"})
		return
	}
	middleware.RecordIngestedWords(created, updated)
	c.JSON(http.StatusOK, gin.H{"new": created, "updated": updated})
}

// Recognize accepts a multipart image upload, runs it through the OCR
// engine, and returns the recognized text with its extracted words. The
// upload is staged to a temp file because tesseract reads from a path.
func (h *IngestHandler) Recognize(c *gin.Context) {
	if available, reason := h.ocr.Available(); !available {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": reason})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		log.Printf("Failed to stage upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save uploaded image"})
		return
	}
	defer os.Remove(tmpPath)

	text, err := h.ocr.Recognize(c.Request.Context(), tmpPath)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text, "words": extract.Words(text)})
}

// Status reports whether the OCR collaborator can be used.
func (h *IngestHandler) Status(c *gin.Context) {
	available, reason := h.ocr.Available()
	c.JSON(http.StatusOK, gin.H{"available": available, "message": reason})
}
