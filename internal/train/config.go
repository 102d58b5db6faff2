package train

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/autograd/internal/logging"
	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/internal/optim"
)

// Optimizer names accepted by Config.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Config describes a training run of the demo model error = (x*w - y)^2.
type Config struct {
	Iterations int     `yaml:"iterations"` // Number of training steps (default: 100)
	LR         float32 `yaml:"lr"`         // Learning rate (default: 0.01)
	Optimizer  string  `yaml:"optimizer"`  // "sgd" or "adam" (default: "sgd")
	Momentum   float32 `yaml:"momentum"`   // SGD momentum (default: 0)
	X          float32 `yaml:"x"`          // Input constant (default: 2)
	Y          float32 `yaml:"y"`          // Target constant (default: 8)
	InitialW   float32 `yaml:"initial_w"`  // Starting weight (default: 3)
	LogLevel   string  `yaml:"log_level"`  // debug, info, warn or error (default: info)
}

// DefaultConfig returns the configuration of the reference demo.
func DefaultConfig() Config {
	return Config{
		Iterations: 100,
		LR:         0.01,
		Optimizer:  OptimizerSGD,
		X:          2,
		Y:          8,
		InitialW:   3,
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig, so omitted keys keep
// their defaults. Unknown keys are rejected. The result is validated.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig is LoadConfig for in-memory YAML.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("invalid config: iterations must be >= 0, got %d", c.Iterations)
	}
	if c.LR <= 0 {
		return fmt.Errorf("invalid config: lr must be > 0, got %v", c.LR)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("invalid config: momentum must be in [0, 1), got %v", c.Momentum)
	}
	switch c.Optimizer {
	case OptimizerSGD, OptimizerAdam:
	default:
		return fmt.Errorf("invalid config: unknown optimizer %q", c.Optimizer)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewOptimizer builds the optimizer named by c over params.
func NewOptimizer(c Config, params []*nn.Parameter) (optim.Optimizer, error) {
	switch c.Optimizer {
	case OptimizerSGD:
		return optim.NewSGD(params, optim.SGDConfig{LR: c.LR, Momentum: c.Momentum}), nil
	case OptimizerAdam:
		return optim.NewAdam(params, optim.AdamConfig{LR: c.LR}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", c.Optimizer)
	}
}
