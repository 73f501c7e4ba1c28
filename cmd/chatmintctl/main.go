// Command chatmintctl is the operator CLI for ChatMint Studio. It works
// directly against the configured gallery backend.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"chatmint-studio/config"
	"chatmint-studio/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

const (
	outputTable = "table"
	outputJSON  = "json"
)

// options holds the global flags.
type options struct {
	configPath string
	output     string
	logLevel   string
}

func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func (o *options) logger() zerolog.Logger {
	return logger.NewWithWriter(o.logLevel, os.Stderr)
}

// print writes v as JSON, or calls table for the table format.
func (o *options) print(w io.Writer, v interface{}, table func(io.Writer) error) error {
	switch o.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputTable, "":
		return table(w)
	default:
		return fmt.Errorf("unknown output format %q (use %s or %s)", o.output, outputTable, outputJSON)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "chatmintctl",
		Short: "Operator CLI for ChatMint Studio",
		Long: `chatmintctl inspects and maintains a ChatMint Studio deployment.

It validates wallet addresses, previews ownership splits with the same
rules as the dashboard, manages per-wallet galleries in the configured
storage backend and encrypts the registrar signing key.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./config.yaml or ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable, "Output format: table, json")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level for diagnostics on stderr")

	rootCmd.AddCommand(newAddressCmd(opts))
	rootCmd.AddCommand(newSplitCmd(opts))
	rootCmd.AddCommand(newGalleryCmd(opts))
	rootCmd.AddCommand(newKeyCmd(opts))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
