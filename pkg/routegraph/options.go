package routegraph

import "github.com/matzehuels/mazeroute/pkg/grid"

// RelaxHook observes every cost decrease made during relaxation.
type RelaxHook func(id RouteID, oldCost, newCost int64)

type options struct {
	startDir grid.Direction
	onRelax  RelaxHook
}

func defaultOptions() options {
	return options{startDir: grid.East}
}

// Option configures a [Graph].
type Option func(*options)

// WithStartDirection sets the heading of the start route. The puzzle always
// starts facing east, which is the default.
func WithStartDirection(d grid.Direction) Option {
	return func(o *options) { o.startDir = d }
}

// WithRelaxHook registers fn to be called on every cost decrease.
func WithRelaxHook(fn RelaxHook) Option {
	return func(o *options) { o.onRelax = fn }
}
