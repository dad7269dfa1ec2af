package cache

import (
	"context"
	"fmt"
	"strings"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
)

// Backend spec values accepted by Open besides URLs.
const (
	BackendFile = "file"
	BackendNone = "none"
)

// Open returns the backend named by spec:
//
//	""  or "file"                  FileCache in dir
//	"none" or "off"                NullCache
//	redis://... or rediss://...    RedisCache
//	mongodb://... or mongodb+srv:// MongoCache
//
// Failures carry the CACHE_ERROR code.
func Open(ctx context.Context, spec, dir string) (Cache, error) {
	var (
		c   Cache
		err error
	)
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "" || spec == BackendFile:
		var fc *FileCache
		if fc, err = NewFileCache(dir); err == nil {
			c = fc
		}
	case spec == BackendNone || spec == "off":
		c = NewNullCache()
	case strings.HasPrefix(spec, "redis://"), strings.HasPrefix(spec, "rediss://"):
		var rc *RedisCache
		if rc, err = NewRedisCache(ctx, spec); err == nil {
			c = rc
		}
	case strings.HasPrefix(spec, "mongodb://"), strings.HasPrefix(spec, "mongodb+srv://"):
		var mc *MongoCache
		if mc, err = NewMongoCache(ctx, spec); err == nil {
			c = mc
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownBackend, spec)
	}
	if err != nil {
		return nil, mrerrors.Wrap(mrerrors.ErrCodeCache, err, "open cache %q", spec)
	}
	return c, nil
}
