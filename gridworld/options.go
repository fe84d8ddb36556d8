package gridworld

// Options configures a Grid constructed by New or Load, mirroring
// lpastar.Options/lpastar.Option in the surrounding module.
type Options struct {
	// DefaultCost replaces any missing or non-positive cell, and is
	// returned by CostOracle for any out-of-bounds destination.
	DefaultCost float64
	// BlockedThreshold is the per-cell cost at or above which IsBlocked
	// reports true.
	BlockedThreshold float64
}

// Option is a functional option for configuring a Grid, following the
// same pattern as lpastar.Option.
type Option func(*Options)

// WithDefaultCost overrides the cost substituted for missing or
// non-positive cells.
func WithDefaultCost(cost float64) Option {
	return func(o *Options) {
		o.DefaultCost = cost
	}
}

// WithBlockedThreshold overrides the cost at or above which a cell is
// considered an impassable obstacle.
func WithBlockedThreshold(threshold float64) Option {
	return func(o *Options) {
		o.BlockedThreshold = threshold
	}
}

// defaultOptions returns the Options a bare New/Load call uses absent
// any overrides.
func defaultOptions() Options {
	return Options{
		DefaultCost:      DefaultCost,
		BlockedThreshold: BlockedThreshold,
	}
}
