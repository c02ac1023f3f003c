package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/w3pick/balancer"
)

// fakeProvider is a JSON-RPC server whose response delay can be changed
// while the balancer keeps probing it.
type fakeProvider struct {
	srv *httptest.Server

	mu    sync.Mutex
	delay time.Duration
}

func newFakeProvider(t *testing.T, delay time.Duration) *fakeProvider {
	t.Helper()
	p := &fakeProvider{delay: delay}
	p.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		d := p.delay
		p.mu.Unlock()
		time.Sleep(d)

		var req struct {
			ID int `json:"id"`
		}
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  "Geth/v1.17.0-integration/linux-amd64/go1.25",
		})
	}))
	t.Cleanup(p.srv.Close)
	return p
}

func (p *fakeProvider) setDelay(d time.Duration) {
	p.mu.Lock()
	p.delay = d
	p.mu.Unlock()
}

func (p *fakeProvider) URL() string { return p.srv.URL }

// Full stack over real HTTP: the default web3_clientVersion probe, the
// round fan-out, selection, and the structured log.
func TestBalancerOverRealProviders(t *testing.T) {
	fast := newFakeProvider(t, 0)
	slow := newFakeProvider(t, 120*time.Millisecond)
	dead := "http://127.0.0.1:19996"

	// SyncWriter serializes the loop's writes; the buffer is only read after
	// Destroy has stopped the loop.
	var logBuf bytes.Buffer
	logger := zerolog.New(zerolog.SyncWriter(&logBuf))

	b, err := balancer.New(
		[]string{slow.URL(), fast.URL(), dead},
		400*time.Millisecond,
		balancer.WithLogger(logger),
	)
	require.NoError(t, err)
	defer b.Destroy()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, b.WaitUntilReady(ctx))

	url, err := b.FastestProvider()
	require.NoError(t, err)
	assert.Equal(t, fast.URL(), url)

	// The previously-fastest provider grinds to a halt: selection must move.
	fast.setDelay(300 * time.Millisecond)
	require.Eventually(t, func() bool {
		u, err := b.FastestProvider()
		return err == nil && u == slow.URL()
	}, 5*time.Second, 100*time.Millisecond)

	providers := b.Providers()
	require.Len(t, providers, 3)
	assert.NoError(t, providers[0].Err)
	assert.Error(t, providers[2].Err, "unreachable provider must carry its failure")
	assert.Greater(t, providers[2].ConsecutiveFailures, 0)

	b.Destroy()

	logs := logBuf.String()
	assert.Contains(t, logs, "fastest provider selected")
	assert.Contains(t, logs, "probe failed")
	assert.Contains(t, logs, dead)
}
