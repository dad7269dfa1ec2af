package maze

import (
	"errors"
	"strings"
	"testing"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/grid"
)

const small = `#####
#S.E#
#.#.#
#####
`

func TestParse(t *testing.T) {
	m, err := Parse(small)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.Width() != 5 || m.Height() != 4 {
		t.Errorf("size = %dx%d, want 5x4", m.Width(), m.Height())
	}
	if m.Start() != grid.New(1, 1) {
		t.Errorf("Start() = %v", m.Start())
	}
	if m.End() != grid.New(3, 1) {
		t.Errorf("End() = %v", m.End())
	}
	if m.FloorCount() != 5 {
		t.Errorf("FloorCount() = %d, want 5", m.FloorCount())
	}
	if !m.IsFloor(m.Start()) || !m.IsFloor(m.End()) {
		t.Error("start and end must be floor")
	}
	if m.At(grid.New(2, 2)) != Wall {
		t.Error("(2,2) should be a wall")
	}
	if m.IsFloor(grid.New(-1, 0)) || m.At(grid.New(9, 9)) != Wall {
		t.Error("off-grid positions should read as walls")
	}
}

func TestParseRoundTrip(t *testing.T) {
	m, err := Parse(small)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := m.String(); got != small {
		t.Errorf("String() =\n%s\nwant\n%s", got, small)
	}
}

func TestParseCRLF(t *testing.T) {
	m, err := Parse("####\r\n#SE#\r\n####\r\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.Width() != 4 || m.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", m.Width(), m.Height())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmpty},
		{"blank lines", "\n\n", ErrEmpty},
		{"unknown character", "#S.x.E#", ErrUnknownCharacter},
		{"missing start", "#..E#", ErrMissingStart},
		{"missing end", "#S..#", ErrMissingEnd},
		{"duplicate start", "#S.S.E#", ErrDuplicateStart},
		{"duplicate end", "#SE.E#", ErrDuplicateEnd},
		{"ragged rows", "####\n#SE#\n###", grid.ErrRaggedRow},
		{"whitespace-only last line", "####\n#SE#\n####\n  \n", ErrUnknownCharacter},
		{"trailing space", "####\n#SE# \n####", ErrUnknownCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.want)
			}
			if !mrerrors.Is(err, mrerrors.ErrCodeInvalidInput) {
				t.Errorf("Parse() error code = %q, want INVALID_INPUT", mrerrors.GetCode(err))
			}
		})
	}
}

func TestParseTrailingEmptyLines(t *testing.T) {
	m, err := Parse("####\r\n#SE#\r\n####\r\n\r\n\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.Height() != 3 {
		t.Errorf("Height() = %d, want 3", m.Height())
	}
}

func TestParseErrorColumn(t *testing.T) {
	_, err := Parse("#S.é.E#")
	if err == nil {
		t.Fatal("Parse() should reject 'é'")
	}
	if !strings.Contains(err.Error(), "row 0, column 3") {
		t.Errorf("error %q should name row 0, column 3", err)
	}
}

func TestDescribe(t *testing.T) {
	m, err := Parse(small)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := "5x4 maze, 5 floor tiles, start (1,1), end (3,1)"
	if got := m.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}
