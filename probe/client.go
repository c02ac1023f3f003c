package probe

import (
	"context"
	"time"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// ClientVersionPinger measures an endpoint with a single web3_clientVersion
// call — the cheapest request every provider answers — over the same
// transport real traffic uses (http, https, ws, wss).
type ClientVersionPinger struct{}

// Ping dials url and measures the wall-clock round trip of one
// web3_clientVersion call. A transport error, a JSON-RPC error response, or
// a non-success HTTP status all count as failure.
func (ClientVersionPinger) Ping(ctx context.Context, url string) (time.Duration, error) {
	start := time.Now()

	client, err := gethrpc.DialContext(ctx, url)
	if err != nil {
		return time.Since(start), err
	}
	defer client.Close()

	var version string
	if err := client.CallContext(ctx, &version, "web3_clientVersion"); err != nil {
		return time.Since(start), err
	}

	return time.Since(start), nil
}
