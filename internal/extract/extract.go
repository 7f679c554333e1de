// Package extract turns downloaded document files into plain text. A
// capability table maps each canonical type to its extractor, so adding a
// format never touches call sites.
package extract

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"drivemind/internal/filemeta"
)

// UnsupportedMarker is returned in place of content for types no
// extractor handles.
const UnsupportedMarker = "⚠️ Unsupported file type"

// CommandRunner executes an external command and returns its stdout.
// Injected so tests can fake pdftotext.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Func extracts plain text from the file at path.
type Func func(ctx context.Context, path string) (string, error)

// Registry dispatches extraction by canonical type. The table is keyed by
// the type of the content as acquired: Google-native docs arrive exported
// to plain text, sheets to CSV, slides to PDF.
type Registry struct {
	table map[filemeta.Type]Func
}

// NewRegistry builds the capability table. A nil runner uses the real
// command runner.
func NewRegistry(runner CommandRunner) *Registry {
	if runner == nil {
		runner = execRunner{}
	}
	pdf := &pdfExtractor{runner: runner}
	md := newMarkdownExtractor()

	return &Registry{table: map[filemeta.Type]Func{
		filemeta.TypePDF:          pdf.extract,
		filemeta.TypeGoogleSlide:  pdf.extract, // exported as PDF
		filemeta.TypeGoogleDoc:    readPlainText, // exported as text/plain
		filemeta.TypeText:         readPlainText,
		filemeta.TypeGoogleSheet:  readCSV, // exported as text/csv
		filemeta.TypeCSV:          readCSV,
		filemeta.TypeSpreadsheet:  readXLSX,
		filemeta.TypeXlsx:         readXLSX,
		filemeta.TypeDocx:         readDOCX,
		filemeta.TypePresentation: readPPTX,
		filemeta.TypePptx:         readPPTX,
		filemeta.TypeMarkdown:     md.extract,
	}}
}

// Supported reports whether the type has an extractor.
func (r *Registry) Supported(ftype filemeta.Type) bool {
	_, ok := r.table[ftype]
	return ok
}

// Extract returns the file's plain text. It never fails: unsupported types
// yield UnsupportedMarker and extraction errors yield an inline warning
// string, so one corrupt document cannot abort a multi-document assembly.
func (r *Registry) Extract(ctx context.Context, ftype filemeta.Type, path string) string {
	fn, ok := r.table[ftype]
	if !ok {
		return UnsupportedMarker
	}
	text, err := fn(ctx, path)
	if err != nil {
		return fmt.Sprintf("(⚠️ %s read error: %v)", strings.ToUpper(ftype), err)
	}
	return text
}
