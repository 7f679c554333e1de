// Package artifact persists the per-user index artifact set: the record
// mapping, the embedding matrix, the flat vector index and the inverted
// keyword index. The four artifacts are positionally aligned and only ever
// rebuilt together; Save is all-or-nothing so a failed rebuild can never
// leave a partially updated set behind.
package artifact

import (
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"drivemind/internal/filemeta"
	"drivemind/internal/vecindex"
)

// Artifact file names inside a user's index directory.
const (
	mappingFile  = "metadata_mapping.json"
	invertedFile = "inverted_index.json"
	matrixFile   = "embeddings.gob"
	indexFile    = "metadata.index"
)

// ErrNotIndexed is returned when a user has no persisted artifact set.
var ErrNotIndexed = errors.New("no index artifacts for user")

// Set is a complete, mutually consistent artifact set for one user.
type Set struct {
	// Mapping lists records in input order; position i everywhere else
	// refers to Mapping[i].
	Mapping []filemeta.Record
	// Matrix holds one embedding row per record, in mapping order.
	Matrix [][]float32
	// Index is the flat L2 index built over Matrix.
	Index *vecindex.Flat
	// Inverted maps a lowercase name token to the positions of the records
	// whose name produced it.
	Inverted map[string][]int
}

// Validate checks the positional-alignment invariant. A violation is a
// programming error in the rebuild path, not a runtime condition.
func (s *Set) Validate() error {
	if s.Index == nil {
		return errors.New("artifact: nil vector index")
	}
	n := len(s.Mapping)
	if len(s.Matrix) != n {
		return fmt.Errorf("artifact: mapping has %d records but matrix has %d rows", n, len(s.Matrix))
	}
	if s.Index.Len() != n {
		return fmt.Errorf("artifact: mapping has %d records but index has %d vectors", n, s.Index.Len())
	}
	for token, postings := range s.Inverted {
		for _, pos := range postings {
			if pos < 0 || pos >= n {
				return fmt.Errorf("artifact: token %q references position %d outside mapping of length %d", token, pos, n)
			}
		}
	}
	return nil
}

// Store reads and writes artifact sets under a base data directory, one
// subdirectory per user.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// UserDir returns the per-user data directory.
func (s *Store) UserDir(userID string) string {
	return filepath.Join(s.baseDir, "user_data", userID)
}

// DownloadDir returns the user's content cache directory.
func (s *Store) DownloadDir(userID string) string {
	return filepath.Join(s.UserDir(userID), "downloads")
}

// ClearDownloads removes the user's entire content cache. Called on login
// and on force reindex; eviction is wholesale by design.
func (s *Store) ClearDownloads(userID string) error {
	dir := s.DownloadDir(userID)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("artifact: clear downloads: %w", err)
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *Store) indexDir(userID string) string {
	return filepath.Join(s.UserDir(userID), "index")
}

// Exists reports whether a persisted artifact set is present for the user.
func (s *Store) Exists(userID string) bool {
	dir := s.indexDir(userID)
	for _, name := range []string{mappingFile, invertedFile, matrixFile, indexFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}

// Save persists the set for the user. All four artifacts are written into a
// staging directory which then replaces the live one, so readers either see
// the complete previous set, no set at all, or the complete new set.
func (s *Store) Save(userID string, set *Set) error {
	if err := set.Validate(); err != nil {
		return err
	}

	userDir := s.UserDir(userID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return fmt.Errorf("artifact: create user dir: %w", err)
	}

	staging, err := os.MkdirTemp(userDir, "index-rebuild-")
	if err != nil {
		return fmt.Errorf("artifact: create staging dir: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(staging)
	}()

	if err := writeJSON(filepath.Join(staging, mappingFile), set.Mapping); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(staging, invertedFile), set.Inverted); err != nil {
		return err
	}
	if err := writeGob(filepath.Join(staging, matrixFile), set.Matrix); err != nil {
		return err
	}
	if err := set.Index.Save(filepath.Join(staging, indexFile)); err != nil {
		return err
	}

	live := s.indexDir(userID)
	if err := os.RemoveAll(live); err != nil {
		return fmt.Errorf("artifact: remove previous index: %w", err)
	}
	if err := os.Rename(staging, live); err != nil {
		return fmt.Errorf("artifact: activate new index: %w", err)
	}
	return nil
}

// Load reads the complete artifact set for a user. Returns ErrNotIndexed
// when any artifact is missing.
func (s *Store) Load(userID string) (*Set, error) {
	if !s.Exists(userID) {
		return nil, ErrNotIndexed
	}
	dir := s.indexDir(userID)

	var set Set
	if err := readJSON(filepath.Join(dir, mappingFile), &set.Mapping); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, invertedFile), &set.Inverted); err != nil {
		return nil, err
	}
	if err := readGob(filepath.Join(dir, matrixFile), &set.Matrix); err != nil {
		return nil, err
	}
	idx, err := vecindex.Load(filepath.Join(dir, indexFile))
	if err != nil {
		return nil, err
	}
	set.Index = idx

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("artifact: marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("artifact: write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("artifact: read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("artifact: parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeGob(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("artifact: create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		_ = file.Close()
	}()
	if err := gob.NewEncoder(file).Encode(v); err != nil {
		return fmt.Errorf("artifact: encode %s: %w", filepath.Base(path), err)
	}
	return file.Close()
}

func readGob(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("artifact: open %s: %w", filepath.Base(path), err)
	}
	defer func() {
		_ = file.Close()
	}()
	if err := gob.NewDecoder(file).Decode(v); err != nil {
		return fmt.Errorf("artifact: decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
