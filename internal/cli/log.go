// Package cli implements the mazeroute command-line interface.
//
// The commands are:
//   - solve: print the lowest score and seat count for one maze file
//   - run: solve every configured part of a day and check the test answers
//   - render: draw a solved maze as text, DOT, SVG or PNG
//   - view: browse a solved maze in a full-screen terminal viewer
//   - cache: clear or locate the result cache
//
// Answers and tables go to the command's output stream. Progress lines go
// through a charmbracelet/log logger carried in the command context, so
// --verbose only changes what reaches stderr.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger: level-filtered, with a
// centisecond wall-clock prefix such as "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time in milliseconds, e.g.
// "Ran 4 parts of day16 (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger set by the root command, or
// log.Default() outside a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
