package config

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
)

// ParseLegacy reads the line-oriented format:
//
//	// part,mode,file,expected
//	1,t,day16-test1.txt,7036
//	2,r,day16.txt,0
//
// Blank lines and lines starting with "//" are skipped, which is also how
// an entry is disabled. Input files live next to the config file.
func ParseLegacy(data []byte, baseDir string) (*Config, error) {
	cfg := &Config{baseDir: baseDir}

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		p, err := parseLegacyLine(line)
		if err != nil {
			return nil, mrerrors.Wrap(mrerrors.ErrCodeInvalidConfig, err, "line %d", lineNo)
		}
		cfg.Part = append(cfg.Part, p)
	}
	if err := sc.Err(); err != nil {
		return nil, mrerrors.Wrap(mrerrors.ErrCodeInvalidConfig, err, "read config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseLegacyLine(line string) (Part, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return Part{}, mrerrors.New(mrerrors.ErrCodeInvalidFormat, "want 4 comma-separated fields, got %d", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	part, err := strconv.Atoi(fields[0])
	if err != nil {
		return Part{}, mrerrors.Wrap(mrerrors.ErrCodeInvalidFormat, err, "part")
	}
	mode, err := ParseMode(fields[1])
	if err != nil {
		return Part{}, err
	}
	expected, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Part{}, mrerrors.Wrap(mrerrors.ErrCodeInvalidFormat, err, "expected")
	}
	return Part{Part: part, Mode: mode, File: fields[2], Expected: expected}, nil
}
