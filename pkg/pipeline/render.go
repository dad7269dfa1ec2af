package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/mazeroute/pkg/cache"
	"github.com/matzehuels/mazeroute/pkg/observability"
	"github.com/matzehuels/mazeroute/pkg/render"
)

// Render draws the solved maze in opts.Format. Artifacts are cached per
// maze hash, format and colour setting; coloured artifacts always use the
// 256-colour [render.FixedPalette]. The second result reports a cache hit.
func (r *Runner) Render(ctx context.Context, opts RenderOptions) ([]byte, bool, error) {
	format, err := render.ParseFormat(string(opts.Format))
	if err != nil {
		return nil, false, err
	}

	key := r.Keyer.ArtifactKey(cache.Hash([]byte(opts.Input)), cache.ArtifactKeyOpts{
		Format: string(format),
		Color:  opts.Color,
	})
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	m, g, _, err := r.Solve(ctx, opts.Input)
	if err != nil {
		return nil, false, err
	}

	palette := render.NoColor()
	if opts.Color {
		palette = render.FixedPalette()
	}
	start := time.Now()
	data, err := render.Artifact(ctx, format, g, m, palette)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("rendered maze", "format", format, "bytes", len(data), "duration", time.Since(start))

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}
