package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/mazeroute/pkg/render"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates "Rendering <format> to <path>" on w while an artifact is
// drawn. It stops on its own when ctx is cancelled.
type spinner struct {
	w       io.Writer
	format  render.Format
	output  string
	message string

	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
	mu      sync.Mutex
}

func newRenderSpinner(ctx context.Context, w io.Writer, format render.Format, output string) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &spinner{
		w:       w,
		format:  format,
		output:  output,
		message: fmt.Sprintf("Rendering %s to %s", format, output),
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

func (s *spinner) start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				fmt.Fprintf(s.w, "\r%s %s", styleSpinner.Render(spinnerFrames[i%len(spinnerFrames)]), styleDim.Render(s.message))
				s.mu.Unlock()
			}
		}
	}()
}

// stop ends the animation and blanks the line. It may be called more than
// once, but only after start.
func (s *spinner) stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.stopped
		s.mu.Lock()
		defer s.mu.Unlock()
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", ansi.StringWidth(s.message)+2))
	})
}

// finish stops the spinner and reports the written artifact through p.
func (s *spinner) finish(p printer) {
	s.stop()
	p.success("Rendered %s", s.format)
	p.file(s.output)
}
