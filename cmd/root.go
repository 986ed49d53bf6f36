package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/textkit/internal/config"
	"github.com/oshokin/textkit/internal/logger"
)

// ignoreConfigErrorsAnnotation marks commands that run with defaults when the configuration cannot be loaded.
const ignoreConfigErrorsAnnotation = "textkit/ignore-config-errors"

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "textkit",
		Short: "Read and write whole files, convert text case.",
		Long: `textkit is a small CLI around two helpers:
- a content accessor that reads a whole file as text or replaces a file's content;
- a case transformer that converts text to uppercase or lowercase.

Failures are reported as errors by default. Set strict_io to false in the
configuration (or pass --strict-io=false) to get the lenient behaviour,
where an unreadable file reads as empty content.`,
		PersistentPreRun: initConfig,
		SilenceUsage:     true,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootFlags := rootCmd.PersistentFlags()

	rootFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootFlags.String(
		"log-level",
		"",
		"log level: debug, info, warn, error.")

	rootFlags.Bool(
		"strict-io",
		config.DefaultStrictIO,
		"report read and write failures as errors instead of empty content.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	cfg, err := loadEffectiveConfig(cmd, configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	appConfig = cfg

	logger.SetLevel(appConfig.ParsedLogLevel)
}

// loadEffectiveConfig loads the configuration file and applies flag overrides.
// Commands annotated with ignoreConfigErrorsAnnotation start from defaults
// when the file cannot be loaded.
func loadEffectiveConfig(cmd *cobra.Command, configFilename string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configFilename)
	if err != nil {
		if _, ok := cmd.Annotations[ignoreConfigErrorsAnnotation]; !ok {
			return nil, err
		}

		logger.Warnf(cmd.Context(), "Ignoring unreadable configuration, using defaults: %v", err)

		cfg = config.DefaultConfig()
	}

	if err = bindFlagsToConfig(cmd.Flags(), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	return cfg, nil
}

// bindFlagsToConfig overrides configuration values with flags the user set explicitly.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("strict-io"); flag != nil && flag.Changed {
		cfg.StrictIO, _ = flags.GetBool("strict-io")
	}

	if flag := flags.Lookup("mode"); flag != nil && flag.Changed {
		cfg.CaseMode, _ = flags.GetString("mode")
	}

	return config.ValidateConfig(cfg)
}
