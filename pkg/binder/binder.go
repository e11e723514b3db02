// Package binder turns parsed content records into fully-resolved in-memory
// structures: every sound, image and actor name is late-bound against the
// pools the host supplies. Binders are stateless; each call recomputes its
// output from its inputs and retains nothing.
package binder

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

// Diagnostics receives non-fatal content failures (missing files, malformed
// records). The concrete sink is a host concern: a log line, an on-screen
// overlay, a test recorder.
type Diagnostics interface {
	Report(message string)
}

// DiagnosticFunc adapts a plain function to the Diagnostics interface.
type DiagnosticFunc func(message string)

func (f DiagnosticFunc) Report(message string) { f(message) }

// Binder binds content records against asset pools. Construct once and
// share freely; it holds only injected collaborators.
type Binder struct {
	log  *slog.Logger
	diag Diagnostics
}

// New creates a Binder. A nil diag falls back to warning-level log lines.
func New(log *slog.Logger, diag Diagnostics) *Binder {
	b := &Binder{log: log, diag: diag}
	if b.diag == nil {
		b.diag = DiagnosticFunc(func(message string) {
			log.Warn("content diagnostic", "message", message)
		})
	}
	return b
}

// report surfaces a failed read exactly once per bind.
func (b *Binder) report(st content.Status) {
	if !st.OK {
		b.diag.Report(st.Message)
	}
}

// bindNarration assembles a Narration from authored keys and sound names.
// Caption order is preserved; sound lists are deduplicated by FindSounds.
func bindNarration(titleKey string, captionKeys, enNames, frNames []string, english, french []assets.Sound) tour.Narration {
	return tour.Narration{
		TitleKey:    titleKey,
		CaptionKeys: captionKeys,
		Sounds: map[language.Tag][]assets.Sound{
			language.English: assets.FindSounds(enNames, english),
			language.French:  assets.FindSounds(frNames, french),
		},
	}
}
