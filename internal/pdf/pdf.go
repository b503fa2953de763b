// Package pdf renders a word list into a printable A4 table.
package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/wordnest/api/internal/model"
)

// ErrNoWords is returned when an export is requested for an empty list.
var ErrNoWords = errors.New("no words to export")

const (
	rowsPerPage = 30
	// meaningBudget caps the meaning column; longer text is cut to 32
	// characters plus an ellipsis marker.
	meaningBudget = 35

	marginMM = 20.0
)

// cjkFontCandidates are tried in order; the first readable TrueType file
// wins. Without one the built-in Helvetica is used and non-Latin glyphs
// will not render.
var cjkFontCandidates = []string{
	"C:/Windows/Fonts/simhei.ttf",
	"C:/Windows/Fonts/msyh.ttf",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttf",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/System/Library/Fonts/STHeiti Light.ttc",
}

// Renderer produces vocabulary-table PDFs.
type Renderer struct {
	fontPath string
}

// NewRenderer resolves the CJK font once up front.
func NewRenderer() *Renderer {
	r := &Renderer{}
	for _, candidate := range cjkFontCandidates {
		if !strings.HasSuffix(strings.ToLower(candidate), ".ttf") {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			r.fontPath = candidate
			break
		}
	}
	return r
}

// Render writes the word table to outputPath and returns that path. The
// layout is fixed: index, word, phonetic, part of speech, truncated
// meaning; 30 rows per page.
func (r *Renderer) Render(words []model.Word, outputPath, title string) (string, error) {
	if len(words) == 0 {
		return "", ErrNoWords
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginMM, marginMM, marginMM)
	doc.SetAutoPageBreak(false, marginMM)

	fontName := "Helvetica"
	if r.fontPath != "" {
		doc.AddUTF8Font("vocab", "", r.fontPath)
		if doc.Err() {
			// Unusable font file: start over on the built-in font.
			doc = gofpdf.New("P", "mm", "A4", "")
			doc.SetMargins(marginMM, marginMM, marginMM)
			doc.SetAutoPageBreak(false, marginMM)
		} else {
			fontName = "vocab"
		}
	}

	colWidths := []float64{15, 35, 30, 15, 75}
	headers := []string{"#", "Word", "Phonetic", "POS", "Meaning"}

	writeHeader := func() {
		doc.SetFont(fontName, "", 11)
		doc.SetFillColor(220, 220, 220)
		for i, header := range headers {
			doc.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
		}
		doc.Ln(-1)
		doc.SetFont(fontName, "", 10)
	}

	doc.AddPage()
	doc.SetFont(fontName, "", 18)
	doc.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	doc.SetFont(fontName, "", 10)
	subtitle := fmt.Sprintf("Generated %s - %d words", time.Now().Format("2006-01-02 15:04"), len(words))
	doc.CellFormat(0, 8, subtitle, "", 1, "L", false, 0, "")
	doc.Ln(4)
	writeHeader()

	for i, word := range words {
		if i > 0 && i%rowsPerPage == 0 {
			doc.AddPage()
			writeHeader()
		}

		fill := i%2 == 1
		doc.SetFillColor(242, 242, 242)
		doc.CellFormat(colWidths[0], 7, fmt.Sprintf("%d", i+1), "1", 0, "C", fill, 0, "")
		doc.CellFormat(colWidths[1], 7, word.Word, "1", 0, "L", fill, 0, "")
		doc.CellFormat(colWidths[2], 7, word.Phonetic, "1", 0, "L", fill, 0, "")
		doc.CellFormat(colWidths[3], 7, word.PartOfSpeech, "1", 0, "C", fill, 0, "")
		doc.CellFormat(colWidths[4], 7, truncateMeaning(word.Meaning), "1", 0, "L", fill, 0, "")
		doc.Ln(-1)
	}

	if err := doc.OutputFileAndClose(outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

func truncateMeaning(meaning string) string {
	runes := []rune(meaning)
	if len(runes) <= meaningBudget {
		return meaning
	}
	return string(runes[:meaningBudget-3]) + "..."
}
