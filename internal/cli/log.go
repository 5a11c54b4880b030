package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/periodix/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Simulated 4 transitions (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// transitionLog reports scene transitions through the CLI logger.
// Ticks are too frequent to log.
type transitionLog struct {
	logger *log.Logger
}

var _ observability.TransitionHooks = transitionLog{}

func newTransitionLog(l *log.Logger) transitionLog {
	return transitionLog{logger: l}
}

func (t transitionLog) OnTransitionStart(layout string, elements int, base time.Duration) {
	t.logger.Debug("Transition started", "layout", layout, "elements", elements, "base", base)
}

func (t transitionLog) OnTransitionCancel(previous string, cancelled int) {
	t.logger.Debug("Transition redirected", "previous", previous, "cancelled", cancelled)
}

func (t transitionLog) OnTransitionSettled(layout string, elapsed time.Duration) {
	t.logger.Info("Settled", "layout", layout, "elapsed", elapsed.Round(time.Millisecond))
}

func (transitionLog) OnTick(time.Duration, int) {}
