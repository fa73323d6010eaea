package region

import "github.com/katalvlaran/gomoc/healpix"

// Option customizes region construction: which Rasterizer backs the
// geometric shapes, and how many workers MultiCone may use.
type Option func(cfg *config)

type config struct {
	rasterizer healpix.Rasterizer
	workers    int
}

// newConfig returns a config initialized with defaults (healpix.Reference{},
// 1 worker), then applies each option in order.
func newConfig(opts ...Option) *config {
	cfg := &config{
		rasterizer: healpix.Reference{},
		workers:    1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRasterizer injects a custom healpix.Rasterizer. A nil rasterizer is
// a no-op, leaving the default Reference in place.
func WithRasterizer(rz healpix.Rasterizer) Option {
	return func(cfg *config) {
		if rz != nil {
			cfg.rasterizer = rz
		}
	}
}

// WithWorkers sets the fan-out width for MultiCone. Values
// less than 1 are a no-op, leaving the default of 1 (sequential) in place.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.workers = n
		}
	}
}
