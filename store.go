package balance

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Store owns the on-disk location of one ledger document.
//
// Saves go through a sibling temporary file followed by an atomic rename, so
// a crash mid-write never leaves a half-written document: the previous
// document stays intact until the replace succeeds.
type Store struct {
	Path string
	rec  Recorder
}

// NewStore returns a store for the document at path. rec may be nil.
func NewStore(path string, rec Recorder) *Store {
	if rec == nil {
		rec = NopRecorder()
	}
	return &Store{Path: path, rec: rec}
}

// Load reads and decodes the document. A missing file is reported with an
// error wrapping fs.ErrNotExist so callers can start the initialization flow
// instead of failing.
func (s *Store) Load() (*Ledger, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open document: %w", err)
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode document %q: %w", s.Path, err)
	}
	s.rec.Record(fmt.Sprintf("read document %s", s.Path))
	return l, nil
}

// Save encodes the ledger to a sibling "<path>.tmp" file, closes it, and
// atomically renames it onto the target path. The temporary file is removed
// on every error path and never survives a successful save.
func (s *Store) Save(l *Ledger) error {
	tmp := s.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", tmp, err)
	}
	if err := Encode(f, l); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not encode document: %w", err)
	}
	// The handle must be closed before the rename.
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not close %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not replace %q: %w", s.Path, err)
	}
	s.rec.Record(fmt.Sprintf("wrote document %s", s.Path))
	return nil
}

// Backup copies the current document byte-for-byte to "<path>.bak",
// overwriting the previous generation. It is a no-op when the document does
// not exist yet.
func (s *Store) Backup() error {
	src, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		s.rec.Record(fmt.Sprintf("no document to back up at %s", s.Path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open %q: %w", s.Path, err)
	}
	defer src.Close()

	bak := s.Path + ".bak"
	dst, err := os.Create(bak)
	if err != nil {
		return fmt.Errorf("could not create backup %q: %w", bak, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("could not write backup %q: %w", bak, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("could not close backup %q: %w", bak, err)
	}
	s.rec.Record(fmt.Sprintf("backed up document to %s", bak))
	return nil
}
