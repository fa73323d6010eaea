package region

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/gomoc/healpix"
	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// MultiCone rasterizes one cone per center, fanning the work out across
// WithWorkers(n) goroutines pulled from a bounded job channel, and unions
// the results. Grounded on flow's options-struct-driven bounded
// concurrency shape rather than a new scheduling dependency: a fixed pool
// of workers drains a channel of job indices, each writing its own result
// slot, joined with a sync.WaitGroup — matching the teacher's own
// zero-extra-dep concurrency style (plain sync primitives, no goroutine
// framework).
func MultiCone[T qty.Index](depth uint8, centers []healpix.LonLat, radius float64, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	var zero moc.RangeMOC[T, qty.Space]
	if err := validateDepth(depth); err != nil {
		return zero, fmt.Errorf("region.MultiCone: %w", err)
	}
	if len(centers) == 0 {
		return zero, fmt.Errorf("region.MultiCone: %w", ErrNoPositions)
	}
	cfg := newConfig(opts...)

	results := make([]moc.RangeMOC[T, qty.Space], len(centers))
	errs := make([]error, len(centers))
	jobs := make(chan int)

	var wg sync.WaitGroup
	workers := cfg.workers
	if workers > len(centers) {
		workers = len(centers)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				m, err := Cone[T](depth, centers[i], radius, WithRasterizer(cfg.rasterizer))
				if err != nil {
					errs[i] = err
					continue
				}
				results[i] = m
			}
		}()
	}
	for i := range centers {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return zero, fmt.Errorf("region.MultiCone: %w", err)
		}
	}
	return moc.UnionAll(results), nil
}
