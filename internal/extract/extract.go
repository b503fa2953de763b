// Package extract pulls candidate vocabulary out of raw text. OCR output
// is piped through the same functions; there is no OCR dependency here.
package extract

import (
	"regexp"
	"sort"
	"strings"
)

// englishWord matches letter runs optionally joined by a single hyphen or
// apostrophe ("well-known", "don't").
var englishWord = regexp.MustCompile(`[a-zA-Z]+(?:[-'][a-zA-Z]+)*`)

// hanRun matches consecutive CJK ideographs.
var hanRun = regexp.MustCompile(`[\p{Han}]+`)

// Script tags which writing system a token came from.
type Script string

const (
	ScriptEnglish Script = "english"
	ScriptChinese Script = "chinese"
)

// Token is one extracted word with its script and dedup key.
type Token struct {
	Text   string `json:"text"`
	Script Script `json:"script"`
	Key    string `json:"key"`
}

// Words extracts the set of English words from text: lowercased,
// single-character tokens dropped, deduplicated, sorted alphabetically.
func Words(text string) []string {
	seen := make(map[string]struct{})
	for _, match := range englishWord.FindAllString(text, -1) {
		if len(match) < 2 {
			continue
		}
		seen[strings.ToLower(match)] = struct{}{}
	}

	words := make([]string, 0, len(seen))
	for word := range seen {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Tokens extracts English and Chinese tokens in document order, tagged by
// script and deduplicated by key (lowercase for English, raw for Chinese)
// keeping the first occurrence. English runs come before Han runs, each in
// their own document order, matching the plain-then-CJK pass of the
// original extractor.
func Tokens(text string) []Token {
	var tokens []Token
	seen := make(map[string]struct{})

	for _, match := range englishWord.FindAllString(text, -1) {
		if len(match) < 2 {
			continue
		}
		key := strings.ToLower(match)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tokens = append(tokens, Token{Text: match, Script: ScriptEnglish, Key: key})
	}

	for _, match := range hanRun.FindAllString(text, -1) {
		if _, ok := seen[match]; ok {
			continue
		}
		seen[match] = struct{}{}
		tokens = append(tokens, Token{Text: match, Script: ScriptChinese, Key: match})
	}

	return tokens
}
