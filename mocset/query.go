package mocset

import (
	"fmt"
	"os"
	"sync"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// QueryOption configures Query.
type QueryOption func(*queryConfig)

type queryConfig struct {
	includeDeprecated bool
	workers           int
}

func newQueryConfig(opts ...QueryOption) *queryConfig {
	cfg := &queryConfig{workers: 1}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithDeprecated makes Query also scan Deprecated slots, not just Valid ones.
func WithDeprecated() QueryOption {
	return func(cfg *queryConfig) { cfg.includeDeprecated = true }
}

// WithWorkers fans slot scans out over n goroutines (intended for SSD-backed
// stores). n <= 1 runs sequentially.
func WithWorkers(n int) QueryOption {
	return func(cfg *queryConfig) { cfg.workers = n }
}

// Query scans Valid (and, with WithDeprecated, Deprecated) slots, decodes
// each payload into a RangeMOC of Quantity Q, and returns the ids of those
// for which predicate returns true.
func Query[T qty.Index, Q qty.Quantity](path string, q Q, predicate func(moc.RangeMOC[T, Q]) bool, opts ...QueryOption) ([]uint64, error) {
	cfg := newQueryConfig(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mocset.Query: %w", err)
	}
	defer f.Close()

	n, err := readN(f)
	if err != nil {
		return nil, fmt.Errorf("mocset.Query: %w", err)
	}

	var candidates []Listing
	for i := 1; i < n; i++ {
		s, err := readSlot(f, i)
		if err != nil {
			return nil, fmt.Errorf("mocset.Query: %w", err)
		}
		if s.status == StatusFree {
			break
		}
		if s.status != StatusValid && !(cfg.includeDeprecated && s.status == StatusDeprecated) {
			continue
		}
		prev, err := readIndexEntry(f, n, i-1)
		if err != nil {
			return nil, fmt.Errorf("mocset.Query: %w", err)
		}
		cur, err := readIndexEntry(f, n, i)
		if err != nil {
			return nil, fmt.Errorf("mocset.Query: %w", err)
		}
		candidates = append(candidates, Listing{Slot: i, ID: s.id, Status: s.status, Depth: s.depth, ByteSize: cur - prev})
	}

	workers := cfg.workers
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers < 1 {
		workers = 1
	}

	matches := make([]bool, len(candidates))
	errs := make([]error, len(candidates))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				c := candidates[idx]
				payload := make([]byte, c.ByteSize)
				prev, err := readIndexEntry(f, n, c.Slot-1)
				if err != nil {
					errs[idx] = err
					continue
				}
				if _, err := f.ReadAt(payload, prev); err != nil {
					errs[idx] = err
					continue
				}
				ranges := decodeRanges[T](payload, widthFor(c.Depth))
				m, err := moc.FromRanges[T, Q](q, c.Depth, ranges, false)
				if err != nil {
					errs[idx] = err
					continue
				}
				matches[idx] = predicate(m)
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("mocset.Query: %w", err)
		}
	}

	var ids []uint64
	for i, c := range candidates {
		if matches[i] {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}
