// Package config loads puzzle run configurations.
//
// A run configuration names the inputs to solve for a puzzle day and, for
// test inputs, the answers they are expected to produce. Real answers are
// kept out of source control this way.
//
// The preferred format is TOML:
//
//	day = "day16"
//	input_dir = "input"
//
//	[[part]]
//	part = 1
//	mode = "test"
//	file = "day16-test1.txt"
//	expected = 7036
//
// Files ending in ".config" are read in the older line format instead, one
// "part,mode,file,expected" entry per line. See [ParseLegacy].
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
)

// EnvCache names the environment variable selecting the result cache
// backend: "file" (default), "none", or a redis:// or mongodb:// URL.
const EnvCache = "MAZEROUTE_CACHE"

// Mode selects which inputs a run uses.
type Mode uint8

const (
	Test Mode = iota
	Real
)

// ParseMode accepts "t", "test", "r" and "real", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "test":
		return Test, nil
	case "r", "real":
		return Real, nil
	}
	return 0, mrerrors.New(mrerrors.ErrCodeInvalidConfig, "unknown mode %q", s)
}

func (m Mode) String() string {
	if m == Real {
		return "Real"
	}
	return "Test"
}

// UnmarshalText lets TOML decode modes from strings.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

// Part is one configured run.
type Part struct {
	Part     int    `toml:"part"`
	Mode     Mode   `toml:"mode"`
	File     string `toml:"file"`
	Expected int64  `toml:"expected"`
	Disabled bool   `toml:"disabled"`
}

// Config is a loaded run configuration.
type Config struct {
	Day      string `toml:"day"`
	InputDir string `toml:"input_dir"`
	Part     []Part `toml:"part"`

	// baseDir is the directory input_dir is resolved against.
	baseDir string
}

// Load reads the configuration at path. Relative input directories are
// resolved against the directory holding the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mrerrors.Wrap(mrerrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, mrerrors.Wrap(mrerrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	baseDir := filepath.Dir(path)
	if filepath.Ext(path) == ".config" {
		cfg, err := ParseLegacy(data, baseDir)
		if err != nil {
			return nil, err
		}
		cfg.Day = strings.TrimSuffix(filepath.Base(path), ".config")
		return cfg, nil
	}
	return Parse(data, baseDir)
}

// Parse decodes a TOML configuration and validates it.
func Parse(data []byte, baseDir string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, mrerrors.Wrap(mrerrors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, mrerrors.New(mrerrors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	cfg.baseDir = baseDir
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every part entry.
func (c *Config) Validate() error {
	for i, p := range c.Part {
		if err := mrerrors.ValidatePart(p.Part); err != nil {
			return mrerrors.Wrap(mrerrors.ErrCodeInvalidConfig, err, "part entry %d", i+1)
		}
		if err := mrerrors.ValidateInputPath(p.File); err != nil {
			return mrerrors.Wrap(mrerrors.ErrCodeInvalidConfig, err, "part entry %d", i+1)
		}
	}
	return nil
}

// Parts returns the enabled parts for mode in file order.
func (c *Config) Parts(mode Mode) []Part {
	var out []Part
	for _, p := range c.Part {
		if !p.Disabled && p.Mode == mode {
			out = append(out, p)
		}
	}
	return out
}

// InputPath returns the path of the input file for p.
func (c *Config) InputPath(p Part) string {
	dir := c.InputDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.baseDir, dir)
	}
	return filepath.Join(dir, p.File)
}
