// Package notification provides audio and desktop feedback for the
// interactive views.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/Hambart471/caltrack/internal/config"
	"github.com/Hambart471/caltrack/internal/ports"
)

// Tone frequencies for the three cue kinds, in Hz.
const (
	freqPageSwitch = 600
	freqNavigate   = 700
	freqSelect     = 800

	toneMillis = 150
)

// Notifier implements ports.Notifier on top of beeep. All failures are
// swallowed: feedback never fails observably to the core.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Cue plays the tone for the given event when sound is enabled.
func (n *Notifier) Cue(c ports.Cue) {
	if n.cfg == nil || !n.cfg.Sound {
		return
	}
	freq := float64(freqNavigate)
	switch c {
	case ports.CueSelect:
		freq = freqSelect
	case ports.CuePageSwitch:
		freq = freqPageSwitch
	}
	_ = beeep.Beep(freq, toneMillis)
}

// Alert raises a desktop notification when notifications are enabled.
func (n *Notifier) Alert(title, message string) {
	if n.cfg == nil || !n.cfg.Enabled {
		return
	}
	_ = beeep.Notify(title, message, "")
}

// IsEnabled reports whether desktop notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

var _ ports.Notifier = (*Notifier)(nil)
