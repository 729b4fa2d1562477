package queue

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/c360/ringqueue/errors"
	"github.com/c360/ringqueue/metric"
)

// Config contains configuration for queue creation.
type Config struct {
	// Name identifies the queue in logs. Defaults to MetricsPrefix or a generated name.
	Name string `json:"name" yaml:"name"`

	// Capacity is the requested capacity; the queue holds Capacity-1 elements.
	Capacity int `json:"capacity" yaml:"capacity"`

	// MetricsPrefix enables Prometheus metrics under this queue label when a registry is given.
	MetricsPrefix string `json:"metrics_prefix" yaml:"metrics_prefix"`

	// MemoryLimit bounds the storage block in bytes. Zero means unbounded.
	MemoryLimit int64 `json:"memory_limit" yaml:"memory_limit"`
}

// DefaultConfig returns a default queue configuration.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Capacity < 0 || c.Capacity > MaxCapacity {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "queue", "Validate",
			fmt.Sprintf("capacity must be in [0, %d], got %d", MaxCapacity, c.Capacity))
	}
	if c.MemoryLimit < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "queue", "Validate",
			fmt.Sprintf("memory_limit must not be negative, got %d", c.MemoryLimit))
	}
	return nil
}

const configSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"name": {"type": "string"},
		"capacity": {"type": "integer", "minimum": 0, "maximum": 100000000},
		"metrics_prefix": {"type": "string", "pattern": "^[a-zA-Z_][a-zA-Z0-9_-]*$"},
		"memory_limit": {"type": "integer", "minimum": 0}
	}
}`

var loadConfigSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(configSchema))
})

// ParseConfig decodes a YAML (or JSON) queue configuration, checks it against
// the configuration schema and applies defaults for missing fields.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrParsingFailed, err),
			"queue", "ParseConfig", "decode yaml")
	}

	schema, err := loadConfigSchema()
	if err != nil {
		return Config{}, errors.WrapFatal(err, "queue", "ParseConfig", "compile config schema")
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Config{}, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err),
			"queue", "ParseConfig", "schema validation")
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return Config{}, errors.WrapInvalid(errors.ErrInvalidConfig, "queue", "ParseConfig",
			strings.Join(problems, "; "))
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrParsingFailed, err),
			"queue", "ParseConfig", "decode yaml")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a queue configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.WrapInvalid(errors.ErrConfigNotFound, "queue", "LoadConfig", path)
		}
		return Config{}, errors.WrapTransient(err, "queue", "LoadConfig", "read "+path)
	}

	return ParseConfig(data)
}

// NewFromConfig creates a queue from cfg. registry may be nil; metrics are
// only exported when both registry and cfg.MetricsPrefix are set.
func NewFromConfig[T any](cfg Config, registry *metric.MetricsRegistry, logger *slog.Logger) (*RingQueue[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return New[T](cfg.Capacity,
		WithName[T](cfg.Name),
		WithLogger[T](logger),
		WithMemoryLimit[T](cfg.MemoryLimit),
		WithMetrics[T](registry, cfg.MetricsPrefix),
	)
}
