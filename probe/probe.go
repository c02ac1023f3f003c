// Package probe measures round-trip latency of web3 JSON-RPC endpoints.
package probe

import (
	"context"
	"sync"
	"time"
)

// Pinger performs one latency-measuring round trip to a provider endpoint.
type Pinger interface {
	Ping(ctx context.Context, url string) (time.Duration, error)
}

// Result holds the outcome of probing one provider in one round.
type Result struct {
	URL     string
	Index   int
	Latency time.Duration
	Err     error
}

// Round probes all URLs in parallel, each bounded by timeout, and returns
// one Result per URL in input order. It returns once every probe has either
// finished or timed out; cancelling ctx aborts the outstanding probes.
func Round(ctx context.Context, p Pinger, urls []string, timeout time.Duration) []Result {
	results := make([]Result, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(idx int, u string) {
			defer wg.Done()
			probeCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			latency, err := p.Ping(probeCtx, u)
			results[idx] = Result{
				URL:     u,
				Index:   idx,
				Latency: latency,
				Err:     err,
			}
		}(i, url)
	}

	wg.Wait()
	return results
}
