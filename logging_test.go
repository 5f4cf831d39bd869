package balance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileRecorder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	rec, err := NewFileRecorder(dir, "finance")
	if err != nil {
		t.Fatal(err)
	}
	rec.Record("first event")
	rec.Record("second event")
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	name := filepath.Join(dir, fmt.Sprintf("finance_%s.log", time.Now().Format("2006-01-02")))
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"first event", "second event", `"level":"debug"`} {
		if !strings.Contains(string(content), want) {
			t.Errorf("log is missing %q:\n%s", want, content)
		}
	}
}

func TestFileRecorder_Appends(t *testing.T) {
	dir := t.TempDir()
	for range 2 {
		rec, err := NewFileRecorder(dir, "finance")
		if err != nil {
			t.Fatal(err)
		}
		rec.Record("event")
		rec.Close()
	}

	name := filepath.Join(dir, fmt.Sprintf("finance_%s.log", time.Now().Format("2006-01-02")))
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(content), "event"); got != 2 {
		t.Errorf("log holds %d events, want 2", got)
	}
}
