// Package balancer continuously measures the response latency of a set of
// web3 JSON-RPC providers and exposes the currently-fastest one.
//
// A Balancer probes every configured URL once per checking interval in the
// background and publishes the winner as an atomically-replaced snapshot.
// Callers pick the endpoint with FastestProvider and send their own traffic
// to it directly — the balancer never proxies or retries requests.
package balancer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mohsinsiddi/w3pick/probe"
)

// Per-probe timeout is interval divided by this, so a stuck probe cannot
// overrun into the next round.
const probeTimeoutDivisor = 2

// Provider is the latest measurement state of one configured endpoint.
// Duplicated URLs in the input are kept as independent entries; list order
// is preserved.
type Provider struct {
	URL                 string
	Latency             time.Duration
	Err                 error
	ConsecutiveFailures int
	Checked             bool // true once at least one round has measured this endpoint
}

// Snapshot is the published "current fastest" view. FastestURL is always one
// of the configured URLs; Generation grows by one per round that produced a
// successful measurement, never regressing.
type Snapshot struct {
	FastestURL string
	Generation uint64
}

// Balancer drives the background measurement loop and holds the shared
// selection state. Create one with New and release it with Destroy.
type Balancer struct {
	urls         []string
	interval     time.Duration
	probeTimeout time.Duration
	pinger       probe.Pinger
	log          zerolog.Logger

	mu        sync.Mutex
	providers []Provider

	snapshot atomic.Pointer[Snapshot]

	ready     chan struct{}
	readyOnce sync.Once

	cancel      context.CancelFunc
	done        chan struct{}
	destroyOnce sync.Once
}

// New validates urls, starts the background measurement loop, and returns
// immediately without waiting for the first round. The first round starts
// right away; subsequent rounds run every interval until Destroy.
func New(urls []string, interval time.Duration, opts ...Option) (*Balancer, error) {
	if len(urls) == 0 {
		return nil, ErrNoProviders
	}
	if interval <= 0 {
		return nil, ErrNoInterval
	}

	b := &Balancer{
		urls:      append([]string(nil), urls...),
		interval:  interval,
		pinger:    probe.ClientVersionPinger{},
		log:       zerolog.Nop(),
		providers: make([]Provider, len(urls)),
		ready:     make(chan struct{}),
		done:      make(chan struct{}),
	}
	for i, u := range b.urls {
		b.providers[i].URL = u
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.probeTimeout <= 0 {
		b.probeTimeout = interval / probeTimeoutDivisor
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	go b.run(ctx)

	return b, nil
}

// IsReady reports whether at least one full round has completed.
func (b *Balancer) IsReady() bool {
	select {
	case <-b.ready:
		return true
	default:
		return false
	}
}

// WaitUntilReady blocks until the first round completes or ctx is done.
// Any number of concurrent waiters are all released together; calling it
// after the balancer is ready returns immediately.
func (b *Balancer) WaitUntilReady(ctx context.Context) error {
	select {
	case <-b.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FastestProvider returns the URL with the lowest measured latency in the
// most recent round that had any success. Before the first successful
// measurement it returns ErrNotReady. After Destroy it keeps returning the
// last published value.
func (b *Balancer) FastestProvider() (string, error) {
	snap := b.snapshot.Load()
	if snap == nil {
		return "", ErrNotReady
	}
	return snap.FastestURL, nil
}

// Current returns the published snapshot, or ok=false before the first
// successful measurement.
func (b *Balancer) Current() (Snapshot, bool) {
	snap := b.snapshot.Load()
	if snap == nil {
		return Snapshot{}, false
	}
	return *snap, true
}

// Providers returns a copy of the per-provider measurement records, in the
// order the URLs were configured.
func (b *Balancer) Providers() []Provider {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Provider, len(b.providers))
	copy(out, b.providers)
	return out
}

// Destroy stops the measurement loop and cancels any in-flight probes. It
// returns once the loop has exited, after which no further probes, snapshot
// writes, or log events occur. Destroy is idempotent and safe to call
// concurrently with reads; FastestProvider keeps serving the last snapshot.
func (b *Balancer) Destroy() {
	b.destroyOnce.Do(func() {
		b.cancel()
		<-b.done
	})
}

// run drives the round timer: round 1 immediately, then one round per
// interval. The timer for round N+1 is armed only after round N has
// published, so rounds never overlap and generations never regress.
func (b *Balancer) run(ctx context.Context) {
	defer close(b.done)

	b.runRound(ctx)

	timer := time.NewTimer(b.interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			b.runRound(ctx)
			timer.Reset(b.interval)
		}
	}
}

// runRound measures every provider once and publishes the result. A round
// interrupted by Destroy publishes nothing: its late results are discarded
// and the readiness gate stays untouched.
func (b *Balancer) runRound(ctx context.Context) {
	results := probe.Round(ctx, b.pinger, b.urls, b.probeTimeout)
	if ctx.Err() != nil {
		return
	}

	b.record(results)

	prev := b.snapshot.Load()
	next, winner := selectFastest(results, prev)
	if winner != nil {
		b.snapshot.Store(next)
		b.log.Info().
			Str("url", next.FastestURL).
			Dur("latency", winner.Latency).
			Uint64("generation", next.Generation).
			Msg("fastest provider selected")
	} else {
		var gen uint64
		if prev != nil {
			gen = prev.Generation
		}
		b.log.Error().
			Uint64("generation", gen).
			Msg("all providers failed, keeping previous selection")
	}

	// First full round completed, success or not.
	b.readyOnce.Do(func() { close(b.ready) })
}

// record folds one round's results into the provider records.
func (b *Balancer) record(results []probe.Result) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range results {
		p := &b.providers[r.Index]
		p.Checked = true
		p.Latency = r.Latency
		p.Err = r.Err
		if r.Err != nil {
			p.ConsecutiveFailures++
			b.log.Warn().
				Str("url", p.URL).
				Err(r.Err).
				Int("consecutive_failures", p.ConsecutiveFailures).
				Msg("probe failed")
		} else {
			p.ConsecutiveFailures = 0
		}
	}
}
