package handler

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/wordnest/api/internal/middleware"
	"github.com/wordnest/api/internal/model"
	"github.com/wordnest/api/internal/pdf"
	"github.com/wordnest/api/internal/store"
)

// ExportHandler turns a word selection into a printable PDF.
type ExportHandler struct {
	store     *store.Store
	renderer  *pdf.Renderer
	outputDir string
}

func NewExportHandler(wordStore *store.Store, renderer *pdf.Renderer, outputDir string) *ExportHandler {
	return &ExportHandler{store: wordStore, renderer: renderer, outputDir: outputDir}
}

type ExportRequest struct {
	IDs   []uint `json:"ids"`
	Title string `json:"title"`
}

// Export renders the selected words (or every word when ids is empty) to a
// PDF file. Print counters move only after the file is written.
func (h *ExportHandler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	words, err := h.collect(req.IDs)
	if err != nil {
		log.Printf("Failed to collect words for export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load words"})
		return
	}

	title := req.Title
	if title == "" {
		title = "Vocabulary List"
	}

	outputPath := filepath.Join(h.outputDir, "vocabulary.pdf")
	path, err := h.renderer.Render(words, outputPath, title)
	if err != nil {
		middleware.RecordExport(false)
		if errors.Is(err, pdf.ErrNoWords) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ids := make([]uint, len(words))
	for i, word := range words {
		ids[i] = word.ID
	}
	if err := h.store.IncrementPrintCount(ids); err != nil {
		log.Printf("Failed to bump print counts: %v", err)
	}
	middleware.RecordExport(true)

	c.JSON(http.StatusOK, gin.H{"path": path, "exported": len(words)})
}

// collect resolves the requested ids, silently skipping unknown ones; an
// empty selection means the whole collection in print-queue order.
func (h *ExportHandler) collect(ids []uint) ([]model.Word, error) {
	if len(ids) == 0 {
		return h.store.List(store.SortPrintQueue)
	}
	words := make([]model.Word, 0, len(ids))
	for _, id := range ids {
		word, err := h.store.Find(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		words = append(words, *word)
	}
	return words, nil
}
