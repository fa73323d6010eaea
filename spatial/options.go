package spatial

import "github.com/katalvlaran/gomoc/healpix"

// Option customizes which Rasterizer backs neighbour enumeration.
type Option func(cfg *config)

type config struct {
	rasterizer healpix.Rasterizer
}

func newConfig(opts ...Option) *config {
	cfg := &config{rasterizer: healpix.Reference{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRasterizer injects a custom healpix.Rasterizer; nil is a no-op.
func WithRasterizer(rz healpix.Rasterizer) Option {
	return func(cfg *config) {
		if rz != nil {
			cfg.rasterizer = rz
		}
	}
}
