package querylog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Recorder appends consultation queries to an external sink.
type Recorder interface {
	Record(query string) error
}

type FileRecorder struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewFileRecorder(path string) *FileRecorder {
	return &FileRecorder{path: path, now: time.Now}
}

// Record appends one line per consultation: timestamp plus the raw query,
// with line breaks flattened so the log stays line-oriented.
func (r *FileRecorder) Record(query string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open query log: %w", err)
	}
	defer f.Close()

	query = strings.ReplaceAll(query, "\r", " ")
	query = strings.ReplaceAll(query, "\n", " ")

	line := fmt.Sprintf("%s - %s\n", r.now().Format("2006-01-02 15:04:05"), query)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append query log: %w", err)
	}
	return nil
}

// Dump returns the accumulated log text. A log that was never written reads
// as empty.
func (r *FileRecorder) Dump() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read query log: %w", err)
	}
	return string(data), nil
}
