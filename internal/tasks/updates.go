package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	QueueTitles Phase = iota
	FindSongs
	LookupComplete
)

func (p Phase) String() string {
	switch p {
	case QueueTitles:
		return "queue_titles"
	case FindSongs:
		return "find_songs"
	case LookupComplete:
		return "lookup_complete"
	default:
		return ""
	}
}

func queuedUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   QueueTitles,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Queued %q", title),
	}
}

func foundUpdate(step, total int, res LookupResult) ProgressUpdate {
	msg := fmt.Sprintf("Found %q", res.Title)
	switch {
	case res.Missing():
		msg = fmt.Sprintf("No song titled %q", res.Title)
	case res.Error != nil:
		msg = fmt.Sprintf("Lookup failed for %q: %v", res.Title, res.Error)
	}
	return ProgressUpdate{
		Phase:   FindSongs,
		Step:    step,
		Total:   total,
		Message: msg,
		Data:    res,
	}
}

func completeUpdate(r *BulkLookupResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LookupComplete,
		Step:    r.Total,
		Total:   r.Total,
		Message: fmt.Sprintf("Found %d of %d titles (%d missing, %d failed)", r.Found, r.Total, r.Missing, r.Failed),
	}
}

func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
		// Channel full, skip this update
	}
}
