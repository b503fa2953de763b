// Package dict looks up word metadata: a small built-in glossary first,
// then the primary suggest API (native-language meanings), then the
// fallback English-definition API. One attempt per source, no retries; a
// failed source just falls through to the next.
package dict

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wordnest/api/internal/cache"
	"github.com/wordnest/api/internal/store"
)

// Source tags where an entry's data came from.
type Source string

const (
	SourceNone      Source = "none"
	SourceLocal     Source = "local"
	SourcePrimary   Source = "primary"
	SourceSecondary Source = "secondary"
)

// Entry is a dictionary lookup result. Fields are empty strings when the
// source did not provide them.
type Entry struct {
	Word         string `json:"word"`
	Meaning      string `json:"meaning"`
	Phonetic     string `json:"phonetic"`
	PartOfSpeech string `json:"partOfSpeech"`
	Example      string `json:"example"`
	Source       Source `json:"source"`
}

// Found reports whether the lookup produced a usable meaning.
func (e Entry) Found() bool {
	return e.Source != SourceNone && e.Meaning != ""
}

type Client struct {
	primaryURL  string
	fallbackURL string
	httpClient  *http.Client
	cache       *cache.RedisCache
	cacheTTL    time.Duration
}

// NewClient builds a lookup client. cache may be nil.
func NewClient(primaryURL, fallbackURL string, timeout time.Duration, redisCache *cache.RedisCache) *Client {
	return &Client{
		primaryURL:  primaryURL,
		fallbackURL: fallbackURL,
		httpClient:  &http.Client{Timeout: timeout},
		cache:       redisCache,
		cacheTTL:    24 * time.Hour,
	}
}

// Lookup resolves a word against the glossary and the two HTTP sources in
// order. It never returns an error: a word nothing knows about comes back
// tagged SourceNone.
func (c *Client) Lookup(ctx context.Context, word string) Entry {
	normalized := store.Normalize(word)
	if normalized == "" {
		return Entry{Source: SourceNone}
	}

	if meaning, ok := glossary[normalized]; ok {
		return Entry{Word: normalized, Meaning: meaning, Source: SourceLocal}
	}

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cache.LookupKey(normalized)); err == nil {
			var entry Entry
			if err := json.Unmarshal(cached, &entry); err == nil {
				return entry
			}
		}
	}

	entry := c.lookupPrimary(ctx, normalized)
	if !entry.Found() {
		entry = c.lookupFallback(ctx, normalized)
	}
	if !entry.Found() {
		return Entry{Word: normalized, Source: SourceNone}
	}

	if c.cache != nil {
		if payload, err := json.Marshal(entry); err == nil {
			if err := c.cache.Set(ctx, cache.LookupKey(normalized), payload, c.cacheTTL); err != nil {
				log.Printf("Warning: failed to cache lookup for %q: %v", normalized, err)
			}
		}
	}
	return entry
}

type suggestResponse struct {
	Data struct {
		Entries []struct {
			Entry   string `json:"entry"`
			Explain string `json:"explain"`
		} `json:"entries"`
	} `json:"data"`
}

// lookupPrimary queries the suggest endpoint. The explain field usually
// reads "word [phonetic] meaning"; everything after the first space is
// taken as the meaning.
func (c *Client) lookupPrimary(ctx context.Context, word string) Entry {
	lookupURL := fmt.Sprintf("%s?num=1&doctype=json&q=%s", c.primaryURL, url.QueryEscape(word))

	var parsed suggestResponse
	if err := c.getJSON(ctx, lookupURL, &parsed); err != nil {
		log.Printf("Primary dictionary lookup failed for %q: %v", word, err)
		return Entry{Source: SourceNone}
	}

	if len(parsed.Data.Entries) == 0 {
		return Entry{Source: SourceNone}
	}
	explain := parsed.Data.Entries[0].Explain
	if explain == "" {
		return Entry{Source: SourceNone}
	}

	meaning := explain
	if parts := strings.SplitN(explain, " ", 2); len(parts) == 2 {
		meaning = parts[1]
	}

	return Entry{Word: word, Meaning: meaning, Source: SourcePrimary}
}

type definitionResponse []struct {
	Phonetic  string `json:"phonetic"`
	Phonetics []struct {
		Text string `json:"text"`
	} `json:"phonetics"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

func (c *Client) lookupFallback(ctx context.Context, word string) Entry {
	lookupURL := fmt.Sprintf("%s/%s", c.fallbackURL, url.PathEscape(word))

	var parsed definitionResponse
	if err := c.getJSON(ctx, lookupURL, &parsed); err != nil {
		log.Printf("Fallback dictionary lookup failed for %q: %v", word, err)
		return Entry{Source: SourceNone}
	}
	if len(parsed) == 0 {
		return Entry{Source: SourceNone}
	}

	first := parsed[0]
	entry := Entry{Word: word, Source: SourceSecondary}

	entry.Phonetic = first.Phonetic
	if entry.Phonetic == "" {
		for _, p := range first.Phonetics {
			if p.Text != "" {
				entry.Phonetic = p.Text
				break
			}
		}
	}

	var definitions []string
	for _, meaning := range first.Meanings {
		for _, def := range meaning.Definitions {
			if def.Definition == "" {
				continue
			}
			if len(definitions) < 2 {
				definitions = append(definitions, fmt.Sprintf("[%s] %s", meaning.PartOfSpeech, def.Definition))
			}
			if entry.PartOfSpeech == "" {
				entry.PartOfSpeech = meaning.PartOfSpeech
			}
			if entry.Example == "" && def.Example != "" {
				entry.Example = def.Example
			}
		}
	}
	entry.Meaning = strings.Join(definitions, "; ")

	if entry.Meaning == "" {
		return Entry{Source: SourceNone}
	}
	return entry
}

func (c *Client) getJSON(ctx context.Context, lookupURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dictionary endpoint returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
