package balancer

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Mohsinsiddi/w3pick/probe"
)

// Option customizes a Balancer at construction time.
type Option func(*Balancer)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Balancer) { b.log = log }
}

// WithPinger replaces the probe transport (by default web3_clientVersion
// over the geth rpc client). Mostly useful for tests.
func WithPinger(p probe.Pinger) Option {
	return func(b *Balancer) { b.pinger = p }
}

// WithProbeTimeout overrides the per-probe timeout, which otherwise is half
// the checking interval.
func WithProbeTimeout(d time.Duration) Option {
	return func(b *Balancer) { b.probeTimeout = d }
}
