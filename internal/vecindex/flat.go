// Package vecindex provides a flat, brute-force nearest-neighbor index over
// fixed-dimension float32 vectors using squared Euclidean (L2) distance.
// The index is exact, append-only, and small enough to be read fully into
// memory per request; the distance thresholds used by metadata search are
// defined against the squared metric.
package vecindex

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"sort"
)

// Hit is one nearest-neighbor result: the row position of the vector in
// insertion order and its squared L2 distance from the query.
type Hit struct {
	Position int
	Distance float32
}

// Flat is a brute-force L2 index. The zero value is unusable; construct
// with New or Load.
type Flat struct {
	dim  int
	rows [][]float32
}

// New creates an empty index for vectors of the given dimension.
func New(dim int) (*Flat, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("vecindex: dimension must be positive, got %d", dim)
	}
	return &Flat{dim: dim}, nil
}

// Dim returns the vector dimension.
func (f *Flat) Dim() int { return f.dim }

// Len returns the number of indexed vectors.
func (f *Flat) Len() int { return len(f.rows) }

// Add appends vectors to the index in order. Every vector must match the
// index dimension.
func (f *Flat) Add(vectors ...[]float32) error {
	for i, v := range vectors {
		if len(v) != f.dim {
			return fmt.Errorf("vecindex: vector %d has dimension %d, want %d", i, len(v), f.dim)
		}
	}
	f.rows = append(f.rows, vectors...)
	return nil
}

// Row returns the vector stored at the given position.
func (f *Flat) Row(pos int) ([]float32, error) {
	if pos < 0 || pos >= len(f.rows) {
		return nil, fmt.Errorf("vecindex: position %d out of range [0,%d)", pos, len(f.rows))
	}
	return f.rows[pos], nil
}

// Search returns up to k nearest neighbors of the query, ordered by
// non-decreasing squared L2 distance. Fewer than k hits are returned when
// the index holds fewer vectors.
func (f *Flat) Search(query []float32, k int) ([]Hit, error) {
	if len(query) != f.dim {
		return nil, fmt.Errorf("vecindex: query has dimension %d, want %d", len(query), f.dim)
	}
	if k <= 0 || len(f.rows) == 0 {
		return nil, nil
	}

	hits := make([]Hit, len(f.rows))
	for i, row := range f.rows {
		hits[i] = Hit{Position: i, Distance: SquaredL2(query, row)}
	}
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].Distance != hits[b].Distance {
			return hits[a].Distance < hits[b].Distance
		}
		return hits[a].Position < hits[b].Position
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

// SquaredL2 computes the squared Euclidean distance between two vectors of
// equal length.
func SquaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// flatOnDisk is the gob persistence form.
type flatOnDisk struct {
	Dim  int
	Rows [][]float32
}

// WriteTo serializes the index.
func (f *Flat) WriteTo(w io.Writer) error {
	return gob.NewEncoder(w).Encode(flatOnDisk{Dim: f.dim, Rows: f.rows})
}

// ReadFrom deserializes an index.
func ReadFrom(r io.Reader) (*Flat, error) {
	var d flatOnDisk
	if err := gob.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("vecindex: decode: %w", err)
	}
	if d.Dim <= 0 {
		return nil, fmt.Errorf("vecindex: decoded dimension %d is invalid", d.Dim)
	}
	return &Flat{dim: d.Dim, rows: d.Rows}, nil
}

// Save writes the index to a file.
func (f *Flat) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vecindex: create %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	if err := f.WriteTo(file); err != nil {
		return fmt.Errorf("vecindex: write %s: %w", path, err)
	}
	return file.Close()
}

// Load reads an index from a file.
func Load(path string) (*Flat, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vecindex: open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	return ReadFrom(file)
}
