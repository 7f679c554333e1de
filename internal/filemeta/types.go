// Package filemeta defines the metadata record for a Drive file and the
// pure functions that turn raw provider metadata into the canonical form
// used for indexing and retrieval: type normalization, filename
// tokenization, and the canonical sentence template fed to the embedder.
package filemeta

import "encoding/json"

// Type is a canonical file-type tag from a closed vocabulary, decoupling
// provider MIME strings from search logic.
type Type = string

// Canonical types produced by Normalize and NormalizeHint.
const (
	TypeGoogleDoc    Type = "google_doc"
	TypeGoogleSheet  Type = "google_sheet"
	TypeGoogleSlide  Type = "google_slide"
	TypeSpreadsheet  Type = "spreadsheet"
	TypePresentation Type = "presentation"
	TypePDF          Type = "pdf"
	TypeDocx         Type = "docx"
	TypeXlsx         Type = "xlsx"
	TypePptx         Type = "pptx"
	TypeCSV          Type = "csv"
	TypeJSON         Type = "json"
	TypeText         Type = "text"
	TypeMarkdown     Type = "markdown"
	TypeCode         Type = "code"
	TypeEbook        Type = "ebook"
	TypeArchive      Type = "archive"
	TypeFont         Type = "font"
	TypeForm         Type = "form"
	TypeDrawing      Type = "drawing"
	TypeScript       Type = "script"
	TypeImage        Type = "image"
	TypeVideo        Type = "video"
	TypeAudio        Type = "audio"
	TypeFolder       Type = "folder"
)

// Record is the immutable metadata record built for one file or folder
// during indexing. The embedding matrix, the flat index and the inverted
// index all reference records by their position in the mapping list.
type Record struct {
	// ID is the provider's opaque file identifier.
	ID string `json:"id"`
	// Name is the file or folder name.
	Name string `json:"name"`
	// Type is the canonical type tag.
	Type Type `json:"type"`
	// Date is the modification date truncated to day precision (YYYY-MM-DD).
	Date string `json:"date"`
	// Link is the provider's view URL, if any.
	Link string `json:"link,omitempty"`
	// Raw is the original provider payload, passed through opaquely.
	Raw json.RawMessage `json:"raw,omitempty"`
}

// Clone returns an independent copy of the record. Search results hand out
// clones so callers cannot corrupt the persisted mapping.
func (r Record) Clone() Record {
	c := r
	if r.Raw != nil {
		c.Raw = make(json.RawMessage, len(r.Raw))
		copy(c.Raw, r.Raw)
	}
	return c
}

// textTypes are the canonical types whose content can be extracted as text.
var textTypes = map[Type]struct{}{
	TypePDF:          {},
	TypeGoogleDoc:    {},
	TypeGoogleSheet:  {},
	TypeGoogleSlide:  {},
	TypeSpreadsheet:  {},
	TypePresentation: {},
	TypePptx:         {},
	TypeText:         {},
	TypeMarkdown:     {},
	TypeXlsx:         {},
	TypeDocx:         {},
	TypeCSV:          {},
}

// IsText reports whether content extraction is supported for the type.
func IsText(t Type) bool {
	_, ok := textTypes[t]
	return ok
}

// MediaTypes are acknowledged without content extraction.
var mediaTypes = map[Type]struct{}{
	TypeImage: {},
	TypeVideo: {},
	TypeAudio: {},
}

// IsMedia reports whether the type is an image, video or audio file.
func IsMedia(t Type) bool {
	_, ok := mediaTypes[t]
	return ok
}

// Icon returns a display icon for folder listings.
func Icon(t Type) string {
	switch t {
	case TypePDF, TypeGoogleDoc, TypeText, TypeDocx, TypeMarkdown:
		return "📄"
	case TypeSpreadsheet, TypeGoogleSheet, TypeXlsx, TypeCSV:
		return "📊"
	case TypePresentation, TypeGoogleSlide, TypePptx:
		return "📽️"
	case TypeImage:
		return "🖼️"
	case TypeVideo:
		return "🎞️"
	case TypeAudio:
		return "🎧"
	case TypeFolder:
		return "📁"
	default:
		return "📦"
	}
}
