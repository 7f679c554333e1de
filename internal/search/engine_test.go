package search

import (
	"context"
	"testing"

	"drivemind/internal/artifact"
	"drivemind/internal/filemeta"
	"drivemind/internal/vecindex"
)

// saveFixture persists a three-record artifact set with 2-dimensional
// embeddings chosen so squared distances are easy to reason about.
func saveFixture(t *testing.T) *artifact.Store {
	t.Helper()

	matrix := [][]float32{
		{0, 0}, // Resume.pdf
		{1, 0}, // Q1_Report.xlsx
		{0, 3}, // vacation_photo.jpg
	}
	index, err := vecindex.New(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := index.Add(matrix...); err != nil {
		t.Fatal(err)
	}

	set := &artifact.Set{
		Mapping: []filemeta.Record{
			{ID: "f1", Name: "Resume.pdf", Type: "pdf", Date: "2024-06-01"},
			{ID: "f2", Name: "Q1_Report.xlsx", Type: "xlsx", Date: "2024-03-15"},
			{ID: "f3", Name: "vacation_photo.jpg", Type: "image", Date: "2023-08-20"},
		},
		Matrix: matrix,
		Index:  index,
		Inverted: map[string][]int{
			"resume":   {0},
			"report":   {1},
			"vacation": {2},
			"photo":    {2},
		},
	}

	store := artifact.NewStore(t.TempDir())
	if err := store.Save("user-1", set); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestSearchFullIndexNoKeywords(t *testing.T) {
	e := NewEngine(saveFixture(t), 0.5, 0.7)

	hits, err := e.Search(context.Background(), "user-1", []float32{0, 0}, nil, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 1 || hits[0].Record.ID != "f1" {
		t.Fatalf("hits = %+v, want single f1", hits)
	}
	if hits[0].Distance != 0 {
		t.Errorf("distance = %v, want 0", hits[0].Distance)
	}
}

func TestSearchKeywordNarrowing(t *testing.T) {
	e := NewEngine(saveFixture(t), 0.5, 0.7)

	// Restricted to Q1_Report.xlsx: distance 1 fails both thresholds even
	// though Resume.pdf sits at distance 0 in the full index.
	hits, err := e.Search(context.Background(), "user-1", []float32{0, 0}, []string{"report"}, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("hits = %+v, want none", hits)
	}

	// Same keywords, query near the report's embedding.
	hits, err = e.Search(context.Background(), "user-1", []float32{1, 0.1}, []string{"Report"}, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 1 || hits[0].Record.ID != "f2" {
		t.Fatalf("hits = %+v, want single f2", hits)
	}
}

func TestSearchUnmatchedKeywordsFallBackToFullIndex(t *testing.T) {
	e := NewEngine(saveFixture(t), 0.5, 0.7)

	hits, err := e.Search(context.Background(), "user-1", []float32{0, 0}, []string{"xylophone", "penguin"}, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 1 || hits[0].Record.ID != "f1" {
		t.Fatalf("hits = %+v, want single f1 from full index", hits)
	}
}

func TestSearchFallbackThreshold(t *testing.T) {
	e := NewEngine(saveFixture(t), 0.5, 0.7)

	// Best squared distance ~0.6: above threshold, within fallback.
	hits, err := e.Search(context.Background(), "user-1", []float32{0.7745967, 0}, []string{"resume"}, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 1 || hits[0].Record.ID != "f1" {
		t.Fatalf("hits = %+v, want single fallback hit f1", hits)
	}

	// Best squared distance ~0.75: above fallback too.
	hits, err = e.Search(context.Background(), "user-1", []float32{0.8660254, 0}, []string{"resume"}, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("hits = %+v, want none past fallback threshold", hits)
	}
}

func TestSearchNotIndexed(t *testing.T) {
	e := NewEngine(artifact.NewStore(t.TempDir()), 0.5, 0.7)

	hits, err := e.Search(context.Background(), "nobody", []float32{0, 0}, nil, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("hits = %+v, want empty for unindexed user", hits)
	}
}

func TestSearchReturnsIndependentCopies(t *testing.T) {
	store := saveFixture(t)
	e := NewEngine(store, 0.5, 0.7)

	hits, err := e.Search(context.Background(), "user-1", []float32{0, 0}, nil, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	hits[0].Record.Name = "mutated"

	again, err := e.Search(context.Background(), "user-1", []float32{0, 0}, nil, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if again[0].Record.Name != "Resume.pdf" {
		t.Errorf("persisted mapping was mutated through a search result")
	}
}

func TestCandidatePositions(t *testing.T) {
	inverted := map[string][]int{
		"report": {1, 4},
		"photo":  {2, 4},
	}
	got := candidatePositions(inverted, []string{" Report ", "PHOTO", "missing"})
	want := []int{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("candidatePositions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidatePositions() = %v, want %v", got, want)
		}
	}
}
