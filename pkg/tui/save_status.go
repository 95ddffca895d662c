package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SaveStatus is the user-visible editing state of the open draft.
type SaveStatus int

const (
	StatusSaved SaveStatus = iota
	StatusEditing
)

func (s SaveStatus) String() string {
	if s == StatusEditing {
		return "Editing"
	}
	return "Saved"
}

// SaveDebounce is the quiet period after the last edit before the
// indicator settles back to Saved.
const SaveDebounce = 900 * time.Millisecond

// SaveSettledMsg fires when a debounce window elapses. Seq ties the
// message to the edit that scheduled it; a stale Seq means the window
// was superseded and the message must be dropped.
type SaveSettledMsg struct {
	Seq int
}

// SaveStatusTracker debounces a stream of content-change events into a
// flicker-free Editing/Saved indicator. Every edit flips the status to
// Editing on the spot; only the settle back to Saved is delayed, and
// rapid edits coalesce into a single settle.
type SaveStatusTracker struct {
	status   SaveStatus
	seq      int
	pending  bool
	disposed bool
}

// NewSaveStatusTracker returns a tracker in the Saved state.
func NewSaveStatusTracker() *SaveStatusTracker {
	return &SaveStatusTracker{status: StatusSaved}
}

// Status returns the current indicator value.
func (t *SaveStatusTracker) Status() SaveStatus {
	return t.status
}

// Pending reports whether a debounce window is outstanding.
func (t *SaveStatusTracker) Pending() bool {
	return t.pending
}

// OnContentChanged records a document change carrying the new total
// character count and returns the command for the fresh debounce
// window. A zero length schedules nothing, cancels nothing, and leaves
// the status untouched; clearing all text while a window is pending
// therefore still settles to Saved when that window fires.
func (t *SaveStatusTracker) OnContentChanged(newLength int) tea.Cmd {
	if t.disposed || newLength == 0 {
		return nil
	}

	t.status = StatusEditing
	t.pending = true
	t.seq++ // supersedes any window still in flight

	seq := t.seq
	return tea.Tick(SaveDebounce, func(time.Time) tea.Msg {
		return SaveSettledMsg{Seq: seq}
	})
}

// OnSettled resolves a debounce window. Superseded windows are dropped,
// which is how cancellation works here; resolving twice is a no-op.
// Reports whether the status actually changed.
func (t *SaveStatusTracker) OnSettled(msg SaveSettledMsg) bool {
	if t.disposed || msg.Seq != t.seq || !t.pending {
		return false
	}

	t.pending = false
	if t.status == StatusSaved {
		return false
	}
	t.status = StatusSaved
	return true
}

// Dispose ends the tracker's session: every outstanding window becomes
// stale and no status mutation can happen afterwards. Safe to call more
// than once.
func (t *SaveStatusTracker) Dispose() {
	t.disposed = true
	t.pending = false
}
