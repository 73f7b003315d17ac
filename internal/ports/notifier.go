package ports

// Cue identifies a feedback event the interactive views emit.
type Cue int

const (
	// CueNavigate fires when the focus moves between selectable entries.
	CueNavigate Cue = iota
	// CueSelect fires when an entry or action is confirmed.
	CueSelect
	// CuePageSwitch fires when the active date or calendar month changes.
	CuePageSwitch
)

// Notifier delivers fire-and-forget user feedback. Calls never block and
// never fail observably to the caller.
type Notifier interface {
	// Cue plays the feedback for the given event, if enabled.
	Cue(c Cue)

	// Alert raises a non-fatal attention message, e.g. a failed save.
	Alert(title, message string)
}
