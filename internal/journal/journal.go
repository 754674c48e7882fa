package journal

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Actions recorded in the journal. The log line format is a contract
// with external readers of lightbulb.log, so these are fixed strings.
const (
	ActionOn  = "ON"
	ActionOff = "OFF"
)

// timestampLayout matches RFC3339 with nanosecond precision and a
// numeric UTC offset, e.g. 2025-06-01T12:34:56.789012345+00:00.
// time.RFC3339Nano is not used because it trims trailing zeros and
// prints "Z" for UTC.
const timestampLayout = "2006-01-02T15:04:05.000000000-07:00"

// Journal records lightbulb activity as an append-only sequence of
// timestamped entries.
type Journal interface {
	// Append records one action ("ON" or "OFF") with the current time.
	Append(action string) error
	// ReadAll returns the full journal contents, one entry per line.
	ReadAll() (string, error)
}

// FileJournal appends entries to a text file. The file is opened in
// append/create mode for each write; callers serialize writes (the
// bulb lock does this), so no locking is needed here.
type FileJournal struct {
	path string
}

// NewFileJournal creates a journal backed by the file at path.
func NewFileJournal(path string) *FileJournal {
	return &FileJournal{path: path}
}

// Append writes one entry of the form
// "[<timestamp>] Lightbulb turned <action>\n" to the journal file.
func (j *FileJournal) Append(action string) error {
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening journal file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatEntry(time.Now(), action) + "\n"); err != nil {
		return fmt.Errorf("writing journal entry: %w", err)
	}
	return nil
}

// ReadAll returns the journal file contents. A missing file reads as
// empty: no activity has been recorded yet.
func (j *FileJournal) ReadAll() (string, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading journal file: %w", err)
	}
	return string(data), nil
}

// Memory is an in-memory journal for tests.
type Memory struct {
	mu      sync.Mutex
	entries []string
}

// NewMemory creates an empty in-memory journal.
func NewMemory() *Memory {
	return &Memory{}
}

// Append records the entry in memory.
func (m *Memory) Append(action string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, formatEntry(time.Now(), action))
	return nil
}

// ReadAll returns the recorded entries, one per line.
func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return "", nil
	}
	return strings.Join(m.entries, "\n") + "\n", nil
}

// Entries returns a copy of the recorded entries.
func (m *Memory) Entries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

func formatEntry(t time.Time, action string) string {
	return fmt.Sprintf("[%s] Lightbulb turned %s", t.UTC().Format(timestampLayout), action)
}
