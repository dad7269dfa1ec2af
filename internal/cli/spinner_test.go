package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/mazeroute/pkg/render"
)

func TestRenderSpinnerMessage(t *testing.T) {
	var buf bytes.Buffer
	s := newRenderSpinner(context.Background(), &buf, render.FormatSVG, "sample1.svg")
	s.start()
	time.Sleep(200 * time.Millisecond)
	s.stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering svg to sample1.svg") {
		t.Errorf("spinner output %q lacks the render message", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner should leave a cleared line, got %q", out)
	}
}

func TestRenderSpinnerStopIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := newRenderSpinner(context.Background(), &buf, render.FormatPNG, "maze.png")
	s.start()
	s.stop()
	n := buf.Len()
	s.stop()
	if buf.Len() != n {
		t.Error("second stop wrote to the terminal again")
	}
}

func TestRenderSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf bytes.Buffer
	s := newRenderSpinner(ctx, &buf, render.FormatSVG, "maze.svg")
	s.start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after cancellation")
	}
	s.stop()
}

func TestRenderSpinnerFinish(t *testing.T) {
	var status, out bytes.Buffer
	s := newRenderSpinner(context.Background(), &status, render.FormatPNG, "routes.png")
	s.start()
	s.finish(newPrinter(&out))

	got := out.String()
	for _, want := range []string{"Rendered png", iconArrow, "routes.png"} {
		if !strings.Contains(got, want) {
			t.Errorf("finish output %q lacks %q", got, want)
		}
	}
	if strings.Contains(status.String(), "Rendered") {
		t.Error("success line belongs on the output stream, not the spinner's")
	}
}

func TestRenderCommandFileOutput(t *testing.T) {
	isolate(t)
	output := filepath.Join(t.TempDir(), "routes.dot")

	out, err := execute(t, "render", filepath.Join("testdata", "sample1.txt"), "--format", "dot", "--output", output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Rendered dot") || !strings.Contains(out, output) {
		t.Errorf("render output = %q, want the written path", out)
	}
}
