package bulb

import (
	"errors"
	"fmt"
	"sync"

	"github.com/glowstack/lightbulb-mcp-go/internal/events"
	"github.com/glowstack/lightbulb-mcp-go/internal/journal"
)

// Domain errors for rejected transitions. No mutation and no journal
// write happens when these are returned.
var (
	ErrAlreadyOn  = errors.New("the lightbulb is already on")
	ErrAlreadyOff = errors.New("the lightbulb is already off")
)

// Status messages returned to callers.
const (
	StatusOnMessage  = "The lightbulb is on"
	StatusOffMessage = "The lightbulb is off"
)

// Bulb is the simulated lightbulb: a single on/off flag guarded by a
// mutex. It starts off, lives for the process lifetime, and is never
// persisted across restarts. Every successful transition appends one
// entry to the journal.
type Bulb struct {
	mu          sync.Mutex
	on          bool
	journal     journal.Journal
	broadcaster *events.Broadcaster
}

// New creates a bulb in the off state.
func New(j journal.Journal, broadcaster *events.Broadcaster) *Bulb {
	return &Bulb{
		journal:     j,
		broadcaster: broadcaster,
	}
}

// IsOn reports whether the bulb is currently on.
func (b *Bulb) IsOn() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.on
}

// StatusText returns the human-readable status message.
func (b *Bulb) StatusText() string {
	if b.IsOn() {
		return StatusOnMessage
	}
	return StatusOffMessage
}

// TurnOn switches the bulb on. Returns ErrAlreadyOn if it already is.
// A journal write failure is returned to the caller, but the state
// change is kept: the bulb is on even though the entry is missing.
func (b *Bulb) TurnOn() error {
	return b.transition(true, ErrAlreadyOn, journal.ActionOn)
}

// TurnOff switches the bulb off. Symmetric to TurnOn.
func (b *Bulb) TurnOff() error {
	return b.transition(false, ErrAlreadyOff, journal.ActionOff)
}

// transition performs the check-and-set and the journal write under
// the same lock, so journal order always matches transition order.
func (b *Bulb) transition(target bool, alreadyErr error, action string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.on == target {
		return alreadyErr
	}
	b.on = target
	b.broadcaster.PublishStateChanged(target)

	if err := b.journal.Append(action); err != nil {
		b.broadcaster.PublishJournalError(action, err)
		// State is intentionally not rolled back; the divergence is
		// surfaced to the caller instead.
		return fmt.Errorf("recording %s transition: %w", action, err)
	}
	return nil
}

// ActivityLog returns the full journal contents.
func (b *Bulb) ActivityLog() (string, error) {
	return b.journal.ReadAll()
}

// UsageSummary aggregates the journal into usage statistics.
func (b *Bulb) UsageSummary() string {
	content, err := b.journal.ReadAll()
	if err != nil {
		return "Lightbulb Usage Summary:\n\nLog file not found. No activity recorded yet."
	}
	return journal.Summarize(content, b.IsOn())
}
