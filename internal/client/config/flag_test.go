package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFlagsOverlay(t *testing.T) {
	withArgs(t, "-e", "wss://flag.example/rpc", "-t", "20", "-w", "3")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "wss://flag.example/rpc", cfg.EndpointURL)
	require.Equal(t, 20*time.Second, cfg.RequestTimeout)
	require.Equal(t, 3, cfg.UpcomingWindowDays)
	require.Equal(t, "capnote", cfg.Namespace)
}

func TestParseFlagsIgnoresForeignFlags(t *testing.T) {
	withArgs(t, "-v", "--unknown=1", "-n", "other")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "other", cfg.Namespace)
	require.Equal(t, "ws://127.0.0.1:8000/rpc", cfg.EndpointURL)
}
