package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/cetd"
)

// Store writes documents with atomic update semantics. Documents go to a
// temporary directory and move into place on Commit, so an interrupted
// batch run never leaves a half-written output tree behind.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a new Store. baseDir is the parent directory, name the
// output directory name. Files are written to baseDir/name.tmp and moved
// to baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// CreateDocument writes a document into the staging directory.
func (s *Store) CreateDocument(ctx context.Context, doc *cetd.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(doc.SourceURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}

// Commit replaces the final directory with the staged one.
func (s *Store) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staging directory.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// Ensure Store implements cetd.DocumentWriter at compile time.
var _ cetd.DocumentWriter = (*Store)(nil)
