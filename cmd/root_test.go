package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProvidersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveProvidersFromArgs(t *testing.T) {
	urls, interval, err := resolveProviders([]string{"http://a.rpc", "http://b.rpc"}, "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.rpc", "http://b.rpc"}, urls)
	assert.Equal(t, 10*time.Second, interval)
}

func TestResolveProvidersMergesFile(t *testing.T) {
	path := writeProvidersFile(t, `
providers:
  - http://c.rpc
interval: 3s
`)

	urls, interval, err := resolveProviders([]string{"http://a.rpc"}, path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.rpc", "http://c.rpc"}, urls)
	assert.Equal(t, 3*time.Second, interval)
}

func TestResolveProvidersFlagBeatsFile(t *testing.T) {
	path := writeProvidersFile(t, `
providers:
  - http://c.rpc
interval: 3s
`)

	_, interval, err := resolveProviders(nil, path, 7*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, interval)
}

func TestResolveProvidersEmpty(t *testing.T) {
	_, _, err := resolveProviders(nil, "", 0)
	require.Error(t, err)
}

func TestResolveProvidersBadFile(t *testing.T) {
	_, _, err := resolveProviders(nil, filepath.Join(t.TempDir(), "nope.yaml"), 0)
	require.Error(t, err)
}
