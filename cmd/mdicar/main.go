package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katagames/mdi/examples/carparts"
	"github.com/katagames/mdi/inject"
)

// options holds the demo parameters after flag/env/config merging.
type options struct {
	BumperHP   int    `mapstructure:"bumper_hp"`
	EngineType int    `mapstructure:"engine_type"`
	Producer   string `mapstructure:"producer"`
	Verbose    bool   `mapstructure:"verbose"`
	ShowErrors bool   `mapstructure:"show_errors"`
}

// newRootCmd builds the mdicar command. It is separate from main so tests
// can execute the command without spawning a process.
func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "mdicar",
		Short:         "Wire and test-drive the demo car",
		Long:          "mdicar wires the car/engine/bumper demo components and constructs a car from the supplied parameters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, cfgFile)
			if err != nil {
				return err
			}
			logger, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runDemo(logger, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (yaml)")
	cmd.Flags().Int("bumper-hp", 95, "bumper hit points")
	cmd.Flags().Int("engine-type", 6, "engine type (cylinder count)")
	cmd.Flags().String("producer", "BMW", "engine producer name")
	cmd.Flags().BoolP("verbose", "v", false, "debug logging")
	cmd.Flags().Bool("show-errors", false, "also demonstrate the failure modes")

	return cmd
}

// loadOptions merges flags, environment, and an optional config file into
// one options value.
func loadOptions(cmd *cobra.Command, cfgFile string) (options, error) {
	v := viper.New()
	v.SetDefault("bumper_hp", 95)
	v.SetDefault("engine_type", 6)
	v.SetDefault("producer", "BMW")

	v.SetEnvPrefix("mdicar")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindPFlag("bumper_hp", cmd.Flags().Lookup("bumper-hp"))
	_ = v.BindPFlag("engine_type", cmd.Flags().Lookup("engine-type"))
	_ = v.BindPFlag("producer", cmd.Flags().Lookup("producer"))
	_ = v.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	_ = v.BindPFlag("show_errors", cmd.Flags().Lookup("show-errors"))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return options{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var opts options
	if err := v.Unmarshal(&opts); err != nil {
		return options{}, fmt.Errorf("parsing config: %w", err)
	}
	return opts, nil
}

// newLogger returns a development logger in verbose mode, a production one
// otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// runDemo wires the demo components, constructs a car, and drives it.
func runDemo(logger *zap.Logger, opts options) error {
	component, err := carparts.DefaultWiring()
	if err != nil {
		return fmt.Errorf("wiring: %w", err)
	}
	logger.Info("car component wired",
		zap.Strings("registered", component.Names()),
		zap.Strings("required", component.Required()))

	car, err := carparts.NewCar(component, carparts.Spec{
		BumperHP:   opts.BumperHP,
		EngineType: opts.EngineType,
		Producer:   opts.Producer,
	})
	if err != nil {
		return fmt.Errorf("constructing car: %w", err)
	}
	logger.Info("car built",
		zap.Int("bumper_hp", car.Bumper().HP),
		zap.Int("engine_type", car.Engine().Type),
		zap.String("producer", car.Engine().Producer))

	for _, line := range car.TestDrive() {
		logger.Info(line)
	}
	logger.Info(car.Engine().Overheat())

	if opts.ShowErrors {
		demonstrateFailures(logger, component)
	}
	return nil
}

// demonstrateFailures walks the library's failure modes so their typed
// errors show up in the log.
func demonstrateFailures(logger *zap.Logger, component *inject.Component) {
	if _, err := carparts.CarBlueprint().New(nil); err != nil {
		logger.Info("constructing the abstract car", zap.Error(err))
	}
	if _, err := inject.Wire(carparts.CarBlueprint(), inject.Bindings{
		"bumper": carparts.NewBumper,
	}); err != nil {
		logger.Info("wiring with missing bindings", zap.Error(err))
	}
	if _, err := component.New(inject.Bundles{"windshield_args": {}}); err != nil {
		logger.Info("constructing with missing bundles", zap.Error(err))
	}
	if _, err := component.New(inject.Bundles{
		"bumper_args":     {"hp": 1},
		"windshield_args": {},
		"engine_args":     {},
		"radio_kwargs":    {},
	}); err != nil {
		logger.Info("constructing with a malformed bundle key", zap.Error(err))
	}
}

// run executes the command and returns an exit code. It exists separately
// from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "mdicar:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
