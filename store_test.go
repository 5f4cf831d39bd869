package balance

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_SaveLoad(t *testing.T) {
	stubClock(t)
	s := NewStore(filepath.Join(t.TempDir(), "balance.yaml"), nil)

	l := newTestLedger(t)
	if _, err := l.ApplyExpense("cash", "lunch-10"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(l); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(l) {
		t.Error("loaded ledger differs from the saved one")
	}

	// The temporary file never survives a successful save.
	if _, err := os.Stat(s.Path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("stat %s.tmp = %v, want not exist", s.Path, err)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "balance.yaml"), nil)
	if _, err := s.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load error = %v, want fs.ErrNotExist", err)
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	stubClock(t)
	s := NewStore(filepath.Join(t.TempDir(), "balance.yaml"), nil)

	l := newTestLedger(t)
	if err := s.Save(l); err != nil {
		t.Fatal(err)
	}
	if _, err := l.ApplySalary("bank", "5000"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(l); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.GrandTotal().String() != "5150.00" {
		t.Errorf("grand total = %s, want 5150.00", got.GrandTotal())
	}
}

func TestStore_Backup(t *testing.T) {
	stubClock(t)
	s := NewStore(filepath.Join(t.TempDir(), "balance.yaml"), nil)

	l := newTestLedger(t)
	if err := s.Save(l); err != nil {
		t.Fatal(err)
	}
	if err := s.Backup(); err != nil {
		t.Fatal(err)
	}

	doc, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}
	bak, err := os.ReadFile(s.Path + ".bak")
	if err != nil {
		t.Fatal(err)
	}
	if string(doc) != string(bak) {
		t.Error("backup differs from the document")
	}

	// A second backup overwrites the first with identical content.
	if err := s.Backup(); err != nil {
		t.Fatal(err)
	}
	again, err := os.ReadFile(s.Path + ".bak")
	if err != nil {
		t.Fatal(err)
	}
	if string(bak) != string(again) {
		t.Error("repeated backup changed the backup file")
	}
}

func TestStore_BackupMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "balance.yaml"), nil)
	if err := s.Backup(); err != nil {
		t.Fatalf("Backup of a missing document = %v, want nil", err)
	}
	if _, err := os.Stat(s.Path + ".bak"); !errors.Is(err, fs.ErrNotExist) {
		t.Error("backup file created for a missing document")
	}
}
