package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/dumpable/internal/logging"
	"github.com/aretw0/dumpable/pkg/sink"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment overrides, e.g. DUMPABLE_FORMAT.
const envPrefix = "DUMPABLE"

var rootCmd = &cobra.Command{
	Use:   "dumpable",
	Short: "Dumpable prints cycle-safe debug views of structured data",
	Long: `Dumpable loads YAML or JSON documents, anchors and aliases included, and prints them
the way the dumpable library prints live values: ordered, single-line and safe on cycles.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loggerFromFlags(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Sink configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("format", "", "Sink format: console, slog, yaml or discard")
	rootCmd.PersistentFlags().String("color", "", "Console colors: auto, always or never")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error or off")
}

// loadSinkConfig layers the sink configuration: defaults, then the --config file,
// then DUMPABLE_* environment variables, then --format and --color.
// A missing config file is not an error.
func loadSinkConfig(cmd *cobra.Command) (sink.Config, error) {
	base := sink.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := sink.LoadConfig(path)
		if err != nil {
			return base, fmt.Errorf("read config: %w", err)
		}
		base = cfg
	}

	v := viper.New()
	v.SetDefault("format", base.Format)
	v.SetDefault("color", base.Color)
	v.SetDefault("level", base.Level)
	v.SetDefault("message", base.Message)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, name := range []string{"format", "color"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return base, err
		}
	}

	return sink.DecodeConfig(v.AllSettings())
}

// sinkFromFlags builds the sink the layered configuration selects, writing to w.
func sinkFromFlags(cmd *cobra.Command, w io.Writer) (sink.Sink, error) {
	cfg, err := loadSinkConfig(cmd)
	if err != nil {
		return nil, err
	}
	return sink.FromConfig(cfg, w)
}

func loggerFromFlags(cmd *cobra.Command) error {
	level, _ := cmd.Flags().GetString("log-level")
	logger, err := logging.FromFlag(level)
	if err != nil {
		return err
	}
	cmdLogger = logger
	return nil
}
