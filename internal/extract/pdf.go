package extract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrPDFToolNotFound is returned when pdftotext is not installed.
// Install poppler-utils (apt) or poppler (brew).
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// pdfExtractor shells out to pdftotext, reading the converted text from
// stdout.
type pdfExtractor struct {
	runner CommandRunner
}

func (p *pdfExtractor) extract(ctx context.Context, path string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", ErrPDFToolNotFound
	}

	out, err := p.runner.Run(ctx, "pdftotext", "-layout", "-nopgbrk", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	return string(out), nil
}
