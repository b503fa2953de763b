// Package scheduler runs the optional background backfill that fills in
// missing meanings from the dictionary, one word per tick. It is disabled
// by default and purely additive: the UI flow works identically without it.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/wordnest/api/internal/dict"
	"github.com/wordnest/api/internal/middleware"
	"github.com/wordnest/api/internal/store"
)

type EnrichScheduler struct {
	store    *store.Store
	dict     *dict.Client
	interval time.Duration

	mu        sync.Mutex
	running   bool
	processed int
	enriched  int
	lastWord  string
	stopChan  chan struct{}
}

func New(wordStore *store.Store, dictClient *dict.Client, interval time.Duration) *EnrichScheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &EnrichScheduler{
		store:    wordStore,
		dict:     dictClient,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start runs the backfill loop until the context is cancelled or Stop is
// called.
func (s *EnrichScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.setRunning(false)
			return
		case <-s.stopChan:
			s.setRunning(false)
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *EnrichScheduler) Stop() {
	close(s.stopChan)
}

func (s *EnrichScheduler) tick(ctx context.Context) {
	words, err := s.store.MissingMeaning(1)
	if err != nil {
		log.Printf("[Enrich] Failed to fetch candidates: %v", err)
		return
	}
	if len(words) == 0 {
		return
	}

	word := words[0]
	entry := s.dict.Lookup(ctx, word.Word)
	middleware.RecordDictionaryLookup(string(entry.Source))

	s.mu.Lock()
	s.processed++
	s.lastWord = word.Word
	s.mu.Unlock()

	if !entry.Found() {
		return
	}

	fields := store.UpdateFields{
		Meaning:         &entry.Meaning,
		Phonetic:        &entry.Phonetic,
		PartOfSpeech:    &entry.PartOfSpeech,
		ExampleSentence: &entry.Example,
	}
	if err := s.store.Update(word.ID, fields); err != nil {
		log.Printf("[Enrich] Failed to update %q: %v", word.Word, err)
		return
	}

	s.mu.Lock()
	s.enriched++
	s.mu.Unlock()
	log.Printf("[Enrich] Filled meaning for %q from %s", word.Word, entry.Source)
}

// Status reports the loop's progress for the status endpoint.
func (s *EnrichScheduler) Status() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]interface{}{
		"enabled":   true,
		"running":   s.running,
		"processed": s.processed,
		"enriched":  s.enriched,
		"lastWord":  s.lastWord,
		"interval":  s.interval.String(),
	}
}

func (s *EnrichScheduler) setRunning(running bool) {
	s.mu.Lock()
	s.running = running
	s.mu.Unlock()
}
