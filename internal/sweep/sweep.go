package sweep

import (
	"context"
	"sync"

	"pingsweep/internal/config"
	"pingsweep/internal/models"
)

// Coordinator fans one probe per address out to a bounded worker pool
// and reassembles the results in input order.
type Coordinator struct {
	prober   models.Prober
	poolSize int
}

// New creates a Coordinator. A poolSize of zero means one worker per
// address, capped at config.DefaultPoolCap.
func New(prober models.Prober, poolSize int) *Coordinator {
	return &Coordinator{
		prober:   prober,
		poolSize: poolSize,
	}
}

// Run probes every address concurrently and blocks until all probes
// have been classified. The returned report has exactly one result
// per address, in the original input order regardless of completion
// order. Probes are never retried. If ctx is cancelled the remaining
// work is abandoned and Run returns ctx.Err() with no report.
func (c *Coordinator) Run(ctx context.Context, addresses []string) (models.Report, error) {
	if len(addresses) == 0 {
		return models.Report{}, nil
	}

	workers := c.poolSize
	if workers <= 0 {
		workers = len(addresses)
		if workers > config.DefaultPoolCap {
			workers = config.DefaultPoolCap
		}
	}
	if workers > len(addresses) {
		workers = len(addresses)
	}

	results := make(models.Report, len(addresses))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				// Each worker writes only to its own slot, so no locking.
				results[idx] = c.prober.Probe(ctx, addresses[idx])
			}
		}()
	}

dispatch:
	for i := range addresses {
		select {
		case <-ctx.Done():
			break dispatch
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	// In-flight probes were cut short by the shared context, so their
	// classifications cannot be trusted.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
