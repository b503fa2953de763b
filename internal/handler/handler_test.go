package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordnest/api/internal/database"
	"github.com/wordnest/api/internal/pdf"
	"github.com/wordnest/api/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return store.New(db)
}

func newReviewRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	wordStore := newTestStore(t)
	h := NewReviewHandler(wordStore)

	r := gin.New()
	r.POST("/api/review/sessions", h.Create)
	r.GET("/api/review/sessions/:id", h.Get)
	r.POST("/api/review/sessions/:id/result", h.Result)
	r.DELETE("/api/review/sessions/:id", h.End)
	return r, wordStore
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestReviewSessionLifecycle(t *testing.T) {
	r, wordStore := newReviewRouter(t)

	_, _, err := wordStore.Upsert("cat", store.Meta{Meaning: "n. 猫"})
	require.NoError(t, err)
	_, _, err = wordStore.Upsert("dog", store.Meta{Meaning: "n. 狗"})
	require.NoError(t, err)

	w, body := doJSON(t, r, http.MethodPost, "/api/review/sessions", gin.H{
		"policy": "high_frequency",
		"limit":  2,
		"mode":   "browse",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["id"].(string)
	assert.Equal(t, float64(2), body["total"])

	sessionPath := "/api/review/sessions/" + id
	w, body = doJSON(t, r, http.MethodPost, sessionPath+"/result", gin.H{"correct": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["completed"])

	w, body = doJSON(t, r, http.MethodPost, sessionPath+"/result", gin.H{"correct": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["completed"])
	assert.Equal(t, 0.5, body["accuracy"])

	// Natural completion bumps recitation counts for every session word.
	stats, err := wordStore.Statistics()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalRecitations)
}

func TestReviewEarlyEndSkipsCounters(t *testing.T) {
	r, wordStore := newReviewRouter(t)

	_, _, err := wordStore.Upsert("cat", store.Meta{Meaning: "n. 猫"})
	require.NoError(t, err)

	w, body := doJSON(t, r, http.MethodPost, "/api/review/sessions", gin.H{"mode": "browse"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["id"].(string)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/review/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats, err := wordStore.Statistics()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRecitations)

	w, _ = doJSON(t, r, http.MethodGet, "/api/review/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewSessionNeedsWords(t *testing.T) {
	r, _ := newReviewRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/review/sessions", gin.H{"mode": "browse"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGameSessionLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	wordStore := newTestStore(t)
	h := NewGameHandler(wordStore)

	r := gin.New()
	r.POST("/api/game/sessions", h.Create)
	r.POST("/api/game/sessions/:id/select", h.Select)
	r.POST("/api/game/sessions/:id/restart", h.Restart)

	_, _, err := wordStore.Upsert("cat", store.Meta{Meaning: "n. 猫"})
	require.NoError(t, err)

	w, body := doJSON(t, r, http.MethodPost, "/api/game/sessions", gin.H{"pairs": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, _, err = wordStore.Upsert("dog", store.Meta{Meaning: "n. 狗"})
	require.NoError(t, err)

	w, body = doJSON(t, r, http.MethodPost, "/api/game/sessions", gin.H{"pairs": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["id"].(string)
	tiles := body["tiles"].([]interface{})
	assert.Len(t, tiles, 4)

	w, body = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/game/sessions/%s/select", id), gin.H{"index": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "armed", body["outcome"])

	w, body = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/game/sessions/%s/restart", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["score"])
}

func TestExportEmptyStoreFails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	wordStore := newTestStore(t)
	h := NewExportHandler(wordStore, pdf.NewRenderer(), t.TempDir())

	r := gin.New()
	r.POST("/api/export", h.Export)

	w, body := doJSON(t, r, http.MethodPost, "/api/export", gin.H{"ids": []uint{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, body["error"])
}

func TestExportBumpsPrintCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	wordStore := newTestStore(t)
	outputDir := t.TempDir()
	h := NewExportHandler(wordStore, pdf.NewRenderer(), outputDir)

	r := gin.New()
	r.POST("/api/export", h.Export)

	entry, _, err := wordStore.Upsert("apple", store.Meta{Meaning: "a round fruit"})
	require.NoError(t, err)
	skipped, _, err := wordStore.Upsert("pear", store.Meta{Meaning: "another fruit"})
	require.NoError(t, err)

	// Unknown ids are skipped; only the exported word moves its counter.
	w, body := doJSON(t, r, http.MethodPost, "/api/export", gin.H{"ids": []uint{entry.ID, 9999}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["exported"])
	assert.Equal(t, filepath.Join(outputDir, "vocabulary.pdf"), body["path"])

	got, err := wordStore.Find(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PrintCount)

	got, err = wordStore.Find(skipped.ID)
	require.NoError(t, err)
	assert.Zero(t, got.PrintCount)
}

func TestExtractEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewIngestHandler(newTestStore(t), nil)

	r := gin.New()
	r.POST("/api/extract", h.Extract)

	w, body := doJSON(t, r, http.MethodPost, "/api/extract", gin.H{"text": "Hello, world! Hello."})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["total"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/extract", gin.H{"text": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	wordStore := newTestStore(t)
	h := NewIngestHandler(wordStore, nil)

	r := gin.New()
	r.POST("/api/words/batch", h.Batch)

	w, body := doJSON(t, r, http.MethodPost, "/api/words/batch", gin.H{"words": []string{"Cat", "cat", "dog"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["new"])
	assert.Equal(t, float64(1), body["updated"])
}
