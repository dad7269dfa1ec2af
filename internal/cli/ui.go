package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mazeroute/pkg/pipeline"
)

// =============================================================================
// Colors & Styles
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleActiveTab = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleAnswer    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel     = lipgloss.NewStyle().Foreground(colorGray).Width(13)
	stylePath      = lipgloss.NewStyle().Foreground(colorWhite)
	styleCommand   = lipgloss.NewStyle().Foreground(colorBlue)
	styleSpinner   = lipgloss.NewStyle().Foreground(colorCyan)

	styleOK   = lipgloss.NewStyle().Foreground(colorGreen)
	styleFail = lipgloss.NewStyle().Foreground(colorRed)
	styleWarn = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// printer - Human-readable command output
// =============================================================================

// printer writes status lines and answers to a command's output stream.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) printer {
	return printer{w: w}
}

func (p printer) line(icon lipgloss.Style, mark, format string, args ...any) {
	fmt.Fprintln(p.w, icon.Render(mark)+" "+fmt.Sprintf(format, args...))
}

func (p printer) success(format string, args ...any) {
	p.line(styleOK, iconSuccess, format, args...)
}

func (p printer) failure(format string, args ...any) {
	p.line(styleFail, iconError, format, args...)
}

func (p printer) warning(format string, args ...any) {
	fmt.Fprintln(p.w, styleWarn.Render(iconWarning+" "+fmt.Sprintf(format, args...)))
}

func (p printer) info(format string, args ...any) {
	p.line(styleDim, iconInfo, format, args...)
}

// detail prints an indented, muted line below a status line.
func (p printer) detail(format string, args ...any) {
	fmt.Fprintln(p.w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// file prints the "→ path" line that follows a written artifact.
func (p printer) file(path string) {
	fmt.Fprintln(p.w, "  "+styleDim.Render(iconArrow)+" "+stylePath.Render(path))
}

// answers prints both puzzle answers followed by a one-line summary of the
// route graph and where the result came from.
//
//	Lowest score  7036
//	Best seats    45
//	  84 routes · 130 connections · 212µs · fresh
func (p printer) answers(res *pipeline.Result) {
	fmt.Fprintln(p.w, styleLabel.Render("Lowest score")+" "+styleAnswer.Render(strconv.FormatInt(res.BestCost, 10)))
	fmt.Fprintln(p.w, styleLabel.Render("Best seats")+" "+styleAnswer.Render(strconv.Itoa(res.Seats)))
	fmt.Fprintln(p.w, "  "+solveStats(res))
}

func solveStats(res *pipeline.Result) string {
	parts := []string{
		styleDim.Render(fmt.Sprintf("%d routes", res.Nodes)),
		styleDim.Render(fmt.Sprintf("%d connections", res.Edges)),
	}
	if d := res.Stats.Total(); d > 0 {
		parts = append(parts, styleDim.Render(d.Round(time.Microsecond).String()))
	}
	if res.CacheHit {
		parts = append(parts, styleOK.Render(iconCached))
	} else {
		parts = append(parts, styleDim.Render(iconFresh))
	}
	return strings.Join(parts, styleDim.Render(" · "))
}

// nextStep prints a blank line and a suggested follow-up command.
func (p printer) nextStep(description, cmd string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
