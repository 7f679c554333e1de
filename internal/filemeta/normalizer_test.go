package filemeta

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		mime string
		want Type
	}{
		{"application/vnd.google-apps.document", TypeGoogleDoc},
		{"application/vnd.google-apps.spreadsheet", TypeGoogleSheet},
		{"application/vnd.google-apps.presentation", TypeGoogleSlide},
		{"application/vnd.google-apps.folder", TypeFolder},
		{"application/vnd.google-apps.form", TypeForm},
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", TypeXlsx},
		{"application/vnd.openxmlformats-officedocument.presentationml.presentation", TypePptx},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", TypeDocx},
		{"application/msword", TypeDocx},
		{"application/pdf", TypePDF},
		{"text/csv", TypeCSV},
		{"application/json", TypeJSON},
		{"text/plain", TypeText},
		{"text/markdown", TypeMarkdown},
		{"image/jpeg", TypeImage},
		{"video/mp4", TypeVideo},
		{"audio/mpeg", TypeAudio},
		{"application/zip", TypeArchive},
		{"application/epub+zip", TypeEbook},
		{"something/png", TypeImage},
		{"something/mp3", TypeAudio},
		// Ultimate fallback: last path segment.
		{"application/x-frobnicator", "x-frobnicator"},
		{"APPLICATION/PDF", TypePDF},
		// No segment after the final slash: the input passes through
		// rather than collapsing to the empty string.
		{"/", "/"},
		{"trailing/", "trailing/"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.mime); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

// Totality: every reachable input returns a non-empty string except the
// empty input itself.
func TestNormalizeTotality(t *testing.T) {
	inputs := []string{"a", "/", "a/b", "weird", "x/y/z", "   application/pdf  "}
	for _, in := range inputs {
		if got := Normalize(in); got == "" {
			t.Errorf("Normalize(%q) returned empty string", in)
		}
	}
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
}

func TestNormalizeHint(t *testing.T) {
	tests := []struct {
		hint string
		want Type
	}{
		{"excel", TypeSpreadsheet},
		{"xls", TypeSpreadsheet},
		{"Sheet", TypeSpreadsheet},
		{"  PowerPoint  ", TypePresentation},
		{"pdf", TypePDF},
		{"word doc", TypeGoogleDoc},
		{"screenshot", TypeImage},
		{"clip", TypeVideo},
		{"folder", TypeFolder},
		// Unmatched hints pass through lowercased and trimmed.
		{"  Quarterly Report ", "quarterly report"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeHint(tt.hint); got != tt.want {
			t.Errorf("NormalizeHint(%q) = %q, want %q", tt.hint, got, tt.want)
		}
	}
}

func TestIsTextAndIsMedia(t *testing.T) {
	for _, typ := range []Type{TypePDF, TypeGoogleDoc, TypeSpreadsheet, TypeXlsx, TypeDocx, TypeCSV, TypePptx} {
		if !IsText(typ) {
			t.Errorf("IsText(%q) = false, want true", typ)
		}
	}
	for _, typ := range []Type{TypeImage, TypeVideo, TypeAudio} {
		if IsText(typ) {
			t.Errorf("IsText(%q) = true, want false", typ)
		}
		if !IsMedia(typ) {
			t.Errorf("IsMedia(%q) = false, want true", typ)
		}
	}
	if IsMedia(TypeFolder) {
		t.Error("IsMedia(folder) = true, want false")
	}
}
