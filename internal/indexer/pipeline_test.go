package indexer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"drivemind/internal/artifact"
	"drivemind/internal/drive"
	"drivemind/internal/llm/mocks"

	"go.uber.org/mock/gomock"
)

func testListings() []drive.Listing {
	return []drive.Listing{
		{
			ID:           "f1",
			Name:         "Resume.pdf",
			MimeType:     "application/pdf",
			ModifiedTime: "2024-06-01T10:30:00.000Z",
			WebViewLink:  "https://drive.example/f1",
		},
		{
			ID:           "f2",
			Name:         "Q1_Report.xlsx",
			MimeType:     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			ModifiedTime: "2024-03-15T08:00:00.000Z",
			WebViewLink:  "https://drive.example/f2",
		},
		{
			ID:       "f3",
			Name:     "Projects",
			MimeType: "application/vnd.google-apps.folder",
		},
	}
}

func TestRebuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var captured []string
	embedder := mocks.NewMockEmbeddingService(ctrl)
	embedder.EXPECT().
		EmbedBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, texts []string) ([][]float32, error) {
			captured = texts
			vecs := make([][]float32, len(texts))
			for i := range texts {
				vecs[i] = []float32{float32(i), float32(i) + 0.5, 0}
			}
			return vecs, nil
		})

	store := artifact.NewStore(t.TempDir())
	p := NewPipeline(embedder, store)

	count, err := p.Rebuild(context.Background(), "user-1", testListings())
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if count != 3 {
		t.Fatalf("Rebuild() count = %d, want 3", count)
	}

	if len(captured) != 3 {
		t.Fatalf("embedded %d sentences, want 3", len(captured))
	}
	if !strings.HasPrefix(captured[0], "File: Resume.pdf; Type: pdf; Modified: 2024-06-01;") {
		t.Errorf("unexpected sentence for first record: %q", captured[0])
	}

	set, err := store.Load("user-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if set.Mapping[0].ID != "f1" || set.Mapping[0].Type != "pdf" || set.Mapping[0].Date != "2024-06-01" {
		t.Errorf("unexpected first record: %+v", set.Mapping[0])
	}
	if set.Mapping[2].Type != "folder" || set.Mapping[2].Date != "" {
		t.Errorf("unexpected folder record: %+v", set.Mapping[2])
	}
	if set.Index.Len() != 3 {
		t.Errorf("index has %d vectors, want 3", set.Index.Len())
	}

	// "report" comes from Q1_Report.xlsx at position 1.
	if got := set.Inverted["report"]; len(got) != 1 || got[0] != 1 {
		t.Errorf("postings for \"report\" = %v, want [1]", got)
	}
	if got := set.Inverted["resume"]; len(got) != 1 || got[0] != 0 {
		t.Errorf("postings for \"resume\" = %v, want [0]", got)
	}
}

func TestRebuildEmptyListings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := NewPipeline(mocks.NewMockEmbeddingService(ctrl), artifact.NewStore(t.TempDir()))
	if _, err := p.Rebuild(context.Background(), "user-1", nil); err == nil {
		t.Fatal("Rebuild() with no listings should fail")
	}
}

func TestRebuildEmbedderFailureLeavesNoArtifacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := mocks.NewMockEmbeddingService(ctrl)
	embedder.EXPECT().
		EmbedBatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("rate limited"))

	store := artifact.NewStore(t.TempDir())
	p := NewPipeline(embedder, store)

	if _, err := p.Rebuild(context.Background(), "user-1", testListings()); err == nil {
		t.Fatal("Rebuild() should propagate embedder failure")
	}
	if store.Exists("user-1") {
		t.Error("failed rebuild must not leave artifacts behind")
	}
}

func TestTruncateToDay(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-06-01T10:30:00.000Z", "2024-06-01"},
		{"2024-06-01", "2024-06-01"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := truncateToDay(tt.in); got != tt.want {
			t.Errorf("truncateToDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
