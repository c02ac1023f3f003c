package balancer

import "errors"

var (
	// ErrNoProviders is returned by New when the provider list is empty.
	ErrNoProviders = errors.New("provider list is empty")

	// ErrNoInterval is returned by New when the checking interval is not positive.
	ErrNoInterval = errors.New("checking interval must be positive")

	// ErrNotReady is returned by FastestProvider before any round has
	// produced a successful measurement.
	ErrNotReady = errors.New("no provider measured yet")
)
