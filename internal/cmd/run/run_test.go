package run

import (
	"bytes"
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"
)

func newConfig(t *testing.T, config string) *viper.Viper {
	t.Helper()
	cfg := viper.New()
	cfg.SetConfigType("yaml")
	require.NoError(t, cfg.ReadConfig(bytes.NewBufferString(config)))
	cfg.Set("preferences.file", filepath.Join(t.TempDir(), "preferences.json"))
	cfg.SetDefault("scheduler.interval", time.Minute)
	cfg.SetDefault("status.interval", time.Minute)
	return cfg
}

func Test_makeTasks(t *testing.T) {
	testCases := []struct {
		name   string
		config string
		length int
	}{
		{
			name: "minimal",
			config: `
control:
  addr: ""
`,
			length: 3,
		},
		{
			name: "servers",
			config: `
control:
  addr: 127.0.0.1:8080
exporter:
  addr: :9090
status:
  file: /tmp/workbell.status
webhook:
  url: http://localhost:8888/alarms
`,
			length: 5,
		},
		{
			name: "slack",
			config: `
control:
  addr: 127.0.0.1:8080
exporter:
  addr: :9090
slack:
  token: 1234
`,
			length: 6,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := newConfig(t, tt.config)
			tasks, err := makeTasks(cfg, "1.0", func() {}, prometheus.NewPedanticRegistry(), slog.New(slog.DiscardHandler))
			require.NoError(t, err)
			assert.Len(t, tasks, tt.length)
		})
	}
}

func TestRun(t *testing.T) {
	cfg := newConfig(t, `
control:
  addr: 127.0.0.1:0
sounds:
  dir: /nonexistent
`)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- Run(ctx, cfg, "1.0", prometheus.NewPedanticRegistry(), slog.New(slog.DiscardHandler)) }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	assert.NoError(t, <-errCh)
}

func TestRun_InvalidInterval(t *testing.T) {
	testCases := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name: "scheduler",
			config: `
scheduler:
  interval: 0
`,
			wantErr: "invalid scheduler.interval",
		},
		{
			name: "status",
			config: `
status:
  interval: -1m
`,
			wantErr: "invalid status.interval",
		},
		{
			name: "unparsable",
			config: `
scheduler:
  interval: 30x
`,
			wantErr: "invalid scheduler.interval",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(t, tt.config)
			cfg.Set("control.addr", "")

			err := Run(context.Background(), cfg, "1.0", prometheus.NewPedanticRegistry(), slog.New(slog.DiscardHandler))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRun_AddressInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	cfg := newConfig(t, "")
	cfg.Set("control.addr", l.Addr().String())

	err = Run(context.Background(), cfg, "1.0", prometheus.NewPedanticRegistry(), slog.New(slog.DiscardHandler))
	assert.ErrorContains(t, err, "address already in use")
}
