// Package ocr shells out to the system tesseract binary. OCR is strictly
// optional: when the binary is missing every caller gets a single
// human-readable failure message and the text-only workflows keep working.
package ocr

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

type Engine struct {
	cmd string

	once      sync.Once
	available bool
	reason    string
}

// New returns an engine that will invoke the given command (normally
// "tesseract"). Availability is probed lazily, once.
func New(cmd string) *Engine {
	return &Engine{cmd: cmd}
}

// Available reports whether the OCR binary can be found on PATH. The
// probe runs once and the result is cached for the process lifetime.
func (e *Engine) Available() (bool, string) {
	e.once.Do(func() {
		if _, err := exec.LookPath(e.cmd); err != nil {
			e.reason = fmt.Sprintf("OCR engine %q not found: install tesseract to enable image recognition", e.cmd)
			return
		}
		e.available = true
	})
	return e.available, e.reason
}

// Recognize runs OCR over the image at path and returns the extracted
// text. Engine absence, a missing file, and a decode failure all surface
// as one error case with a readable message.
func (e *Engine) Recognize(ctx context.Context, path string) (string, error) {
	if ok, reason := e.Available(); !ok {
		return "", fmt.Errorf("%s", reason)
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("image file not found: %s", path)
	}

	cmd := exec.CommandContext(ctx, e.cmd, path, "stdout", "-l", "eng")
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("image recognition failed: %s", detail)
	}

	return strings.TrimSpace(stdout.String()), nil
}
