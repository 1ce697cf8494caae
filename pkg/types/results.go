package types

import "time"

// LinkAction describes what apply did for one mapping entry.
type LinkAction string

const (
	ActionLinked   LinkAction = "linked"    // fresh symlink created
	ActionRelinked LinkAction = "relinked"  // existing symlink replaced
	ActionBackedUp LinkAction = "backed-up" // real file moved aside, then linked
	ActionSkipped  LinkAction = "skipped"   // source missing, nothing touched
	ActionFailed   LinkAction = "failed"    // filesystem error, run continues
)

// LinkState describes how a target currently relates to its mapping entry.
type LinkState string

const (
	StateLinked   LinkState = "linked"    // symlink in place, points at source
	StateStale    LinkState = "stale"     // symlink in place, points elsewhere
	StateConflict LinkState = "conflict"  // regular file or directory occupies target
	StateMissing  LinkState = "missing"   // nothing at target yet
	StateBroken   LinkState = "broken"    // symlink points at source, but source is gone
	StateNoSource LinkState = "no-source" // neither target link nor source exist
)

// EntryResult records the outcome of applying a single mapping entry.
type EntryResult struct {
	Entry  Entry      `json:"entry"`
	Action LinkAction `json:"action"`
	Backup string     `json:"backup,omitempty"` // set when a file was moved aside
	Error  error      `json:"-"`
}

// LinkResult aggregates per-entry outcomes for one apply run.
type LinkResult struct {
	Entries   []EntryResult `json:"entries"`
	Timestamp time.Time     `json:"timestamp"`
}

// Count returns how many entries finished with the given action.
func (r *LinkResult) Count(action LinkAction) int {
	n := 0
	for _, e := range r.Entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

// HasWarnings reports whether any entry was skipped or failed. Warnings do
// not change the exit code.
func (r *LinkResult) HasWarnings() bool {
	for _, e := range r.Entries {
		if e.Action == ActionSkipped || e.Action == ActionFailed {
			return true
		}
	}
	return false
}

// StatusEntry describes the current state of one mapping entry.
type StatusEntry struct {
	Entry  Entry     `json:"entry"`
	State  LinkState `json:"state"`
	Detail string    `json:"detail,omitempty"` // e.g. where a stale link points
}

// StatusReport is the result of the 'status' command.
type StatusReport struct {
	Entries   []StatusEntry `json:"entries"`
	Timestamp time.Time     `json:"timestamp"`
}

// CountState returns how many entries are in the given state.
func (r *StatusReport) CountState(state LinkState) int {
	n := 0
	for _, e := range r.Entries {
		if e.State == state {
			n++
		}
	}
	return n
}

// Healthy reports whether every entry is linked.
func (r *StatusReport) Healthy() bool {
	for _, e := range r.Entries {
		if e.State != StateLinked {
			return false
		}
	}
	return true
}
