package main

import (
	"Social_Network/socialnet/config"
	"fmt"
	"github.com/spf13/cobra"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "socialnet",
		Short:         "Versioned follow graph server and tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (overrides the config file)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json (overrides the config file)")

	rootCmd.AddCommand(newServeCmd(), newSimulateCmd(), newDemoCmd())
	return rootCmd
}

// loadConfig reads the config file named by --config and applies any flags
// that were explicitly set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("grpc-addr") {
		cfg.GRPCAddr, _ = flags.GetString("grpc-addr")
	}
	if flags.Changed("http-addr") {
		cfg.HTTPAddr, _ = flags.GetString("http-addr")
	}
	if flags.Changed("commit-interval") {
		cfg.CommitInterval, _ = flags.GetDuration("commit-interval")
	}
	if flags.Changed("gate") {
		cfg.Gate, _ = flags.GetString("gate")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
