package config

import (
	"os"
	"path/filepath"
	"testing"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
)

const sampleTOML = `
day = "day16"
input_dir = "input"

[[part]]
part = 1
mode = "test"
file = "day16-test1.txt"
expected = 7036

[[part]]
part = 2
mode = "t"
file = "day16-test2.txt"
expected = 64

[[part]]
part = 1
mode = "real"
file = "day16.txt"

[[part]]
part = 2
mode = "real"
file = "day16.txt"
disabled = true
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleTOML), "/puzzles")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Day != "day16" {
		t.Errorf("Day = %q, want day16", cfg.Day)
	}
	if len(cfg.Part) != 4 {
		t.Fatalf("len(Part) = %d, want 4", len(cfg.Part))
	}

	tests := cfg.Parts(Test)
	if len(tests) != 2 {
		t.Fatalf("Parts(Test) = %d entries, want 2", len(tests))
	}
	if tests[1].Part != 2 || tests[1].Expected != 64 {
		t.Errorf("second test part = %+v", tests[1])
	}

	reals := cfg.Parts(Real)
	if len(reals) != 1 {
		t.Errorf("Parts(Real) = %d entries, want 1 (one is disabled)", len(reals))
	}

	want := filepath.Join("/puzzles", "input", "day16-test1.txt")
	if got := cfg.InputPath(tests[0]); got != want {
		t.Errorf("InputPath = %q, want %q", got, want)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"bad mode", "[[part]]\npart = 1\nmode = \"x\"\nfile = \"a.txt\"\n"},
		{"bad part", "[[part]]\npart = 3\nmode = \"t\"\nfile = \"a.txt\"\n"},
		{"missing file", "[[part]]\npart = 1\nmode = \"t\"\n"},
		{"traversal", "[[part]]\npart = 1\nmode = \"t\"\nfile = \"../secret.txt\"\n"},
		{"unknown key", "day = \"day16\"\ncolour = \"red\"\n"},
		{"not toml", "day = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml), ".")
			if err == nil {
				t.Fatal("expected error")
			}
			if !mrerrors.Is(err, mrerrors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %q, want INVALID_CONFIG (%v)", mrerrors.GetCode(err), err)
			}
		})
	}
}

func TestParseLegacy(t *testing.T) {
	data := []byte(`// part,mode,file,expected
1,t,day16-test1.txt,7036

 2 , t , day16-test2.txt , 64
//2,r,day16.txt,0
1,r,day16.txt,0
`)
	cfg, err := ParseLegacy(data, "input")
	if err != nil {
		t.Fatalf("ParseLegacy: %v", err)
	}
	if len(cfg.Part) != 3 {
		t.Fatalf("len(Part) = %d, want 3", len(cfg.Part))
	}
	p := cfg.Part[1]
	if p.Part != 2 || p.Mode != Test || p.File != "day16-test2.txt" || p.Expected != 64 {
		t.Errorf("Part[1] = %+v", p)
	}
	if cfg.Part[2].Mode != Real {
		t.Errorf("Part[2].Mode = %v, want Real", cfg.Part[2].Mode)
	}
	if got, want := cfg.InputPath(p), filepath.Join("input", "day16-test2.txt"); got != want {
		t.Errorf("InputPath = %q, want %q", got, want)
	}
}

func TestParseLegacy_Invalid(t *testing.T) {
	for _, line := range []string{
		"1,t,day16.txt",
		"one,t,day16.txt,5",
		"1,q,day16.txt,5",
		"1,t,day16.txt,many",
		"4,t,day16.txt,5",
	} {
		t.Run(line, func(t *testing.T) {
			if _, err := ParseLegacy([]byte(line), "."); err == nil {
				t.Errorf("ParseLegacy(%q) succeeded", line)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "day16.toml")
	if err := os.WriteFile(tomlPath, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load toml: %v", err)
	}
	if got, want := cfg.InputPath(cfg.Part[0]), filepath.Join(dir, "input", "day16-test1.txt"); got != want {
		t.Errorf("InputPath = %q, want %q", got, want)
	}

	legacyPath := filepath.Join(dir, "day16.config")
	if err := os.WriteFile(legacyPath, []byte("1,t,day16-test1.txt,7036\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(legacyPath)
	if err != nil {
		t.Fatalf("Load legacy: %v", err)
	}
	if cfg.Day != "day16" {
		t.Errorf("Day = %q, want day16", cfg.Day)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !mrerrors.Is(err, mrerrors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"t", Test, true},
		{"Test", Test, true},
		{"r", Real, true},
		{" real ", Real, true},
		{"x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseMode(%q) error = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if Real.String() != "Real" || Test.String() != "Test" {
		t.Errorf("Mode.String() = %q/%q", Test, Real)
	}
}
