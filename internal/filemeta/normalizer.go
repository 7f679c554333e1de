package filemeta

import "strings"

// hintSynonyms maps free-text type hints (as extracted from a user query by
// the language model) to canonical types. Unmatched hints pass through
// lowercased and trimmed.
var hintSynonyms = map[string]Type{
	// Google Docs equivalents
	"word":          TypeGoogleDoc,
	"word doc":      TypeGoogleDoc,
	"doc":           TypeGoogleDoc,
	"docx":          TypeGoogleDoc,
	"google doc":    TypeGoogleDoc,
	"google docs":   TypeGoogleDoc,
	"text document": TypeGoogleDoc,

	// Spreadsheets
	"excel":        TypeSpreadsheet,
	"xls":          TypeSpreadsheet,
	"xlsx":         TypeSpreadsheet,
	"sheet":        TypeSpreadsheet,
	"google sheet": TypeSpreadsheet,

	// Presentations
	"powerpoint":    TypePresentation,
	"ppt":           TypePresentation,
	"pptx":          TypePresentation,
	"google slides": TypePresentation,
	"slides":        TypePresentation,

	// PDFs
	"pdf": TypePDF,

	// Images
	"image":      TypeImage,
	"photo":      TypeImage,
	"picture":    TypeImage,
	"screenshot": TypeImage,

	// Videos
	"video": TypeVideo,
	"clip":  TypeVideo,

	// Folders
	"folder": TypeFolder,
}

// NormalizeHint maps a free-text type hint to a canonical type. Empty input
// yields the empty string; anything unrecognized passes through lowercased.
// Never fails.
func NormalizeHint(hint string) Type {
	h := strings.ToLower(strings.TrimSpace(hint))
	if h == "" {
		return ""
	}
	if t, ok := hintSynonyms[h]; ok {
		return t
	}
	return h
}

// Normalize maps a provider MIME type string to a canonical type. Rules are
// applied in priority order: exact Google-native matches, office-format
// substring/suffix matches, common formats, generic prefixes, extension
// suffix fallbacks, and finally the last path segment of the MIME string.
// Pure and total: always returns a string, empty only for empty input.
func Normalize(mime string) Type {
	m := strings.ToLower(strings.TrimSpace(mime))
	if m == "" {
		return ""
	}

	// Google-native applications
	switch m {
	case "application/vnd.google-apps.document":
		return TypeGoogleDoc
	case "application/vnd.google-apps.spreadsheet":
		return TypeGoogleSheet
	case "application/vnd.google-apps.presentation":
		return TypeGoogleSlide
	case "application/vnd.google-apps.folder":
		return TypeFolder
	case "application/vnd.google-apps.form":
		return TypeForm
	case "application/vnd.google-apps.drawing":
		return TypeDrawing
	case "application/vnd.google-apps.script":
		return TypeScript
	}

	// Office formats
	switch {
	case strings.Contains(m, "spreadsheetml.sheet") || strings.HasSuffix(m, "xlsx"):
		return TypeXlsx
	case strings.Contains(m, "presentationml.presentation") || strings.HasSuffix(m, "pptx"):
		return TypePptx
	case strings.Contains(m, "msword") || strings.Contains(m, "wordprocessingml.document") || strings.HasSuffix(m, "docx"):
		return TypeDocx
	}

	// Common formats
	switch {
	case m == "application/pdf":
		return TypePDF
	case strings.Contains(m, "csv"):
		return TypeCSV
	case strings.Contains(m, "json"):
		return TypeJSON
	case strings.Contains(m, "markdown"):
		return TypeMarkdown
	case strings.HasPrefix(m, "text/"):
		return TypeText
	case strings.Contains(m, "code") || strings.Contains(m, "python"):
		return TypeCode
	case strings.Contains(m, "epub") || strings.Contains(m, "mobi"):
		return TypeEbook
	case strings.Contains(m, "zip") || strings.Contains(m, "compressed"):
		return TypeArchive
	case strings.Contains(m, "font"):
		return TypeFont
	}

	// Generic media prefixes
	switch {
	case strings.HasPrefix(m, "image/"):
		return TypeImage
	case strings.HasPrefix(m, "video/"):
		return TypeVideo
	case strings.HasPrefix(m, "audio/"):
		return TypeAudio
	}

	// Extension suffix fallbacks
	switch {
	case hasAnySuffix(m, "png", "jpg", "jpeg", "webp"):
		return TypeImage
	case hasAnySuffix(m, "mp4", "mkv", "avi", "mov", "webm"):
		return TypeVideo
	case hasAnySuffix(m, "mp3", "wav", "ogg"):
		return TypeAudio
	}

	// Ultimate fallback: last path segment of the MIME string. A trailing
	// slash leaves no segment to take; the whole input wins over an empty
	// result.
	if i := strings.LastIndex(m, "/"); i >= 0 && i+1 < len(m) {
		return m[i+1:]
	}
	return m
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
