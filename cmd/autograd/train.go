package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/born-ml/autograd/internal/logging"
	"github.com/born-ml/autograd/internal/train"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit w in (x*w - y)^2 by gradient descent",
	Long: `Builds error = (x*w - y)^2, derives its gradient graph once and runs a
fixed number of gradient-descent steps, printing the loss and the updated
weight after every step. Values come from --config (YAML) and flags; flags win.`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	f := trainCmd.Flags()
	f.String("config", "", "YAML file with training settings")
	f.Int("iterations", 0, "number of training steps (default 100)")
	f.Float32("lr", 0, "learning rate (default 0.01)")
	f.String("optimizer", "", "optimizer: sgd or adam (default sgd)")
	f.Float32("momentum", 0, "SGD momentum in [0, 1)")
	f.Float32("initial-w", 0, "starting weight (default 3)")
	f.String("log-level", "", "log level: debug, info, warn, error (default info)")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	cfg, err := loadTrainConfig(cmd.Flags())
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

	_, err = train.RunDemo(cfg, cmd.OutOrStdout(), logger)
	return err
}

// loadTrainConfig starts from defaults, applies the config file if given and
// then every flag the user set explicitly.
func loadTrainConfig(f *pflag.FlagSet) (train.Config, error) {
	cfg := train.DefaultConfig()
	if path, _ := f.GetString("config"); path != "" {
		loaded, err := train.LoadConfig(path)
		if err != nil {
			return train.Config{}, err
		}
		cfg = loaded
	}

	if f.Changed("iterations") {
		cfg.Iterations, _ = f.GetInt("iterations")
	}
	if f.Changed("lr") {
		cfg.LR, _ = f.GetFloat32("lr")
	}
	if f.Changed("optimizer") {
		cfg.Optimizer, _ = f.GetString("optimizer")
	}
	if f.Changed("momentum") {
		cfg.Momentum, _ = f.GetFloat32("momentum")
	}
	if f.Changed("initial-w") {
		cfg.InitialW, _ = f.GetFloat32("initial-w")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	return cfg, cfg.Validate()
}
