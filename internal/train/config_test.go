package train

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/internal/optim"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestParseConfig_KeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("iterations: 5\noptimizer: adam\n"))
	require.NoError(t, err)

	want := DefaultConfig()
	want.Iterations = 5
	want.Optimizer = OptimizerAdam
	assert.Equal(t, want, cfg)
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"unknown key", "learning_rate: 0.1\n", "decode config"},
		{"bad type", "iterations: many\n", "decode config"},
		{"negative iterations", "iterations: -1\n", "iterations must be >= 0"},
		{"zero lr", "lr: 0\n", "lr must be > 0"},
		{"momentum", "momentum: 1\n", "momentum must be in [0, 1)"},
		{"optimizer", "optimizer: rmsprop\n", `unknown optimizer "rmsprop"`},
		{"log level", "log_level: loud\n", `unknown log level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lr: 0.05\ninitial_w: 1.5\nmomentum: 0.5\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.05), cfg.LR)
	assert.Equal(t, float32(1.5), cfg.InitialW)
	assert.Equal(t, float32(0.5), cfg.Momentum)
	assert.Equal(t, 100, cfg.Iterations)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewOptimizer(t *testing.T) {
	var params []*nn.Parameter

	cfg := DefaultConfig()
	opt, err := NewOptimizer(cfg, params)
	require.NoError(t, err)
	assert.IsType(t, &optim.SGD{}, opt)

	cfg.Optimizer = OptimizerAdam
	opt, err = NewOptimizer(cfg, params)
	require.NoError(t, err)
	assert.IsType(t, &optim.Adam{}, opt)

	cfg.Optimizer = "lbfgs"
	_, err = NewOptimizer(cfg, params)
	assert.EqualError(t, err, `unknown optimizer "lbfgs"`)
}
