package balance

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Recorder receives best-effort diagnostic events around ledger operations.
// Nothing in this package depends on recording succeeding: a recorder may
// drop events, and the nop recorder always applies when none is given.
type Recorder interface {
	Record(event string)
}

// NopRecorder returns a Recorder discarding every event.
func NopRecorder() Recorder { return nopRecorder{} }

type nopRecorder struct{}

func (nopRecorder) Record(string) {}

// FileRecorder appends events to a dated log file, one file per task and day.
type FileRecorder struct {
	log  zerolog.Logger
	file *os.File
}

// NewFileRecorder opens "<dir>/<task>_<YYYY-MM-DD>.log" for appending,
// creating the directory when needed. The recorder is constructed once at
// process start and passed to the store and the ledger.
func NewFileRecorder(dir, task string) (*FileRecorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create log directory %q: %w", dir, err)
	}
	name := filepath.Join(dir, fmt.Sprintf("%s_%s.log", task, time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %q: %w", name, err)
	}
	return &FileRecorder{
		log:  zerolog.New(f).With().Timestamp().Logger(),
		file: f,
	}, nil
}

// Record writes one event line. Write failures are swallowed: recording is
// fire-and-forget.
func (r *FileRecorder) Record(event string) {
	r.log.Debug().Msg(event)
}

// Close closes the underlying log file.
func (r *FileRecorder) Close() error {
	return r.file.Close()
}
