package render

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/mazeroute/pkg/maze"
	"github.com/matzehuels/mazeroute/pkg/routegraph"
	"github.com/matzehuels/mazeroute/pkg/solve"
)

const oneTurn = `######
####E#
####.#
#S...#
######
`

func solved(t testing.TB, text string) (*routegraph.Graph, *maze.Maze) {
	t.Helper()
	m, err := maze.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, g, err := solve.SolveMaze(m)
	if err != nil {
		t.Fatalf("SolveMaze: %v", err)
	}
	return g, m
}

func TestPlain(t *testing.T) {
	g, m := solved(t, oneTurn)
	want := `######
####E#
####O#
#SOOO#
######
`
	if got := Plain(g, m); got != want {
		t.Errorf("Plain() =\n%s\nwant\n%s", got, want)
	}
}

func TestTightNoColor(t *testing.T) {
	g, m := solved(t, oneTurn)
	got := Tight(g, m, NoColor())
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != m.Height() {
		t.Fatalf("Tight() has %d lines, want %d", len(lines), m.Height())
	}
	if !strings.Contains(lines[3], "S") || !strings.Contains(lines[1], "E") {
		t.Errorf("endpoints missing:\n%s", got)
	}
	if !strings.Contains(lines[0], wallGlyph) {
		t.Errorf("walls should use %q:\n%s", wallGlyph, got)
	}
}

func TestTightFixedPalette(t *testing.T) {
	g, m := solved(t, oneTurn)
	got := Tight(g, m, FixedPalette())
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("FixedPalette() drew no ANSI sequences:\n%q", got)
	}
	if again := Tight(g, m, FixedPalette()); again != got {
		t.Error("FixedPalette() output is not stable")
	}
	if strings.Contains(Tight(g, m, NoColor()), "\x1b[") {
		t.Error("NoColor() drew ANSI sequences")
	}
}

func TestCosts(t *testing.T) {
	g, m := solved(t, oneTurn)
	got := Costs(g, m, NoColor())

	for _, want := range []string{"START", " END ", "1005", "3,2", wallBlock} {
		if !strings.Contains(got, want) {
			t.Errorf("Costs() missing %q", want)
		}
	}
	// four text lines per maze row
	if n := strings.Count(got, "\n"); n != 4*m.Height() {
		t.Errorf("Costs() has %d lines, want %d", n, 4*m.Height())
	}
}

func TestCostsUnreached(t *testing.T) {
	m, err := maze.Parse("#####\n#S#E#\n#####\n")
	if err != nil {
		t.Fatal(err)
	}
	g := routegraph.New(m)
	if err := g.IdentifyShortestConnections(m.Start()); err != nil {
		t.Fatal(err)
	}
	if got := Costs(g, m, NoColor()); !strings.Contains(got, " MAX ") {
		t.Errorf("unreached routes should print MAX:\n%s", got)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "  0  "},
		{"12", " 12  "},
		{"1005", "1005 "},
		{"12345", "12345"},
		{"123456", "123456"},
	}
	for _, tt := range tests {
		if got := center(tt.in, 5); got != tt.want {
			t.Errorf("center(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToDOT(t *testing.T) {
	g, m := solved(t, oneTurn)
	dot := ToDOT(g, m)

	for _, want := range []string{
		"digraph routes {",
		`"1_3_E" [label=`,
		`"1_3_E" -> "2_3_E" [label="forward", penwidth=2];`,
		`"4_3_E" -> "4_3_N" [label="left", penwidth=2];`,
		"fillcolor=gold",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"4_3_S"`) {
		t.Error("routes off the cheapest paths should not be exported")
	}
}

func TestRenderSVG(t *testing.T) {
	g, m := solved(t, oneTurn)
	svg, err := RenderSVG(context.Background(), ToDOT(g, m))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("SVG header not normalized: %.200s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s", got)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox should be unchanged")
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		if _, err := ParseFormat(string(f)); err != nil {
			t.Errorf("ParseFormat(%q): %v", f, err)
		}
	}
	for _, bad := range []string{"", "SVG", "pdf"} {
		if _, err := ParseFormat(bad); err == nil {
			t.Errorf("ParseFormat(%q) should fail", bad)
		}
	}
}

func TestArtifactText(t *testing.T) {
	g, m := solved(t, oneTurn)
	data, err := Artifact(context.Background(), FormatPlain, g, m, NoColor())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Plain(g, m) {
		t.Error("Artifact(plain) should match Plain")
	}
	if _, err := Artifact(context.Background(), Format("bogus"), g, m, NoColor()); err == nil {
		t.Error("unknown format should fail")
	}
}

func ExamplePlain() {
	m, _ := maze.Parse("#######\n#.....#\n#.###.#\n#S###E#\n#.###.#\n#.....#\n#######")
	_, g, _ := solve.SolveMaze(m)
	fmt.Print(Plain(g, m))
	// Output:
	// #######
	// #OOOOO#
	// #O###O#
	// #S###E#
	// #O###O#
	// #OOOOO#
	// #######
}
