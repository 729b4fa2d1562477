package queue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/c360/ringqueue/errors"
	"github.com/c360/ringqueue/metric"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultCapacity, cfg.Capacity)
	assert.Empty(t, cfg.Name)
	assert.Zero(t, cfg.MemoryLimit)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero capacity", Config{Capacity: 0}, false},
		{"max capacity", Config{Capacity: MaxCapacity}, false},
		{"negative capacity", Config{Capacity: -1}, true},
		{"above max", Config{Capacity: MaxCapacity + 1}, true},
		{"negative memory limit", Config{Capacity: 10, MemoryLimit: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, cerrors.ErrInvalidConfig)
			assert.True(t, cerrors.IsInvalid(err))
		})
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
name: orders
capacity: 256
metrics_prefix: orders_queue
memory_limit: 65536
`))
		require.NoError(t, err)
		assert.Equal(t, Config{
			Name:          "orders",
			Capacity:      256,
			MetricsPrefix: "orders_queue",
			MemoryLimit:   65536,
		}, cfg)
	})

	t.Run("json", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`{"name": "events", "capacity": 8}`))
		require.NoError(t, err)
		assert.Equal(t, "events", cfg.Name)
		assert.Equal(t, 8, cfg.Capacity)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("name: sparse\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultCapacity, cfg.Capacity)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})
}

func TestParseConfigRejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"malformed yaml", "capacity: [1, 2\n", cerrors.ErrParsingFailed},
		{"not a mapping", "- 1\n- 2\n", cerrors.ErrParsingFailed},
		{"unknown field", "capacity: 4\nresize: true\n", cerrors.ErrInvalidConfig},
		{"negative capacity", "capacity: -3\n", cerrors.ErrInvalidConfig},
		{"capacity above max", "capacity: 100000001\n", cerrors.ErrInvalidConfig},
		{"fractional capacity", "capacity: 2.5\n", cerrors.ErrInvalidConfig},
		{"capacity as string", "capacity: ten\n", cerrors.ErrInvalidConfig},
		{"bad metrics prefix", "metrics_prefix: \"9 lives\"\n", cerrors.ErrInvalidConfig},
		{"negative memory limit", "memory_limit: -1\n", cerrors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, cerrors.IsInvalid(err))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "queue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: loaded\ncapacity: 16\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "loaded", cfg.Name)
	assert.Equal(t, 16, cfg.Capacity)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, cerrors.ErrConfigNotFound)
}

func TestNewFromConfig(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	cfg := Config{Name: "from-config", Capacity: 6, MetricsPrefix: "cfg_queue"}

	q, err := NewFromConfig[string](cfg, registry, nil)
	require.NoError(t, err)
	defer q.Close()

	assert.Equal(t, "from-config", q.Name())
	assert.Equal(t, 6, q.Capacity())
	assert.NotNil(t, q.metrics)
	assert.True(t, registry.Registered("cfg_queue", "queue_size"))

	_, err = NewFromConfig[string](Config{Capacity: -1}, nil, nil)
	assert.ErrorIs(t, err, cerrors.ErrInvalidConfig)

	_, err = NewFromConfig[int64](Config{Capacity: 32, MemoryLimit: 16}, nil, nil)
	assert.ErrorIs(t, err, cerrors.ErrAllocationFailure)
}
