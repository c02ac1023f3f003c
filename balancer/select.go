package balancer

import "github.com/Mohsinsiddi/w3pick/probe"

// selectFastest derives the next snapshot from one round's results. Among
// successful probes the minimum latency wins, ties broken by the lowest
// index so selection is deterministic for equal measurements. When no probe
// succeeded the previous snapshot is returned untouched and winner is nil.
func selectFastest(results []probe.Result, prev *Snapshot) (next *Snapshot, winner *probe.Result) {
	best := -1
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		if best == -1 || r.Latency < results[best].Latency {
			best = i
		}
	}

	if best == -1 {
		return prev, nil
	}

	var gen uint64
	if prev != nil {
		gen = prev.Generation
	}
	return &Snapshot{
		FastestURL: results[best].URL,
		Generation: gen + 1,
	}, &results[best]
}
