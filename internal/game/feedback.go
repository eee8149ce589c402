package game

import (
	"github.com/rs/zerolog"

	"wordrush.gg/wordrush/internal/selection"
)

// logFeedback is the desktop stand-in for a haptic device: it just logs
// the abstract feedback events. A mobile build would map kinds and
// intensities to vibration patterns behind the same interface.
type logFeedback struct {
	log zerolog.Logger
}

func (f *logFeedback) Feedback(kind selection.FeedbackKind, intensity float64) {
	f.log.Debug().
		Int("kind", int(kind)).
		Float64("intensity", intensity).
		Msg("feedback")
}
