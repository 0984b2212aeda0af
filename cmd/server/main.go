// Package main is the entry point for the grimoire-api server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimoire-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "grimoire-api",
	Short: "Grimoire spellbook lookup service",
	Long: `Grimoire API loads a spell dataset, normalizes every record and serves
lookup, suggestion, search, listing and random picks over gRPC and HTTP.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&datasetPath, "dataset", "", "Dataset file path (overrides config)")
	flags.StringVar(&datasetSource, "source", "", "Dataset source: file or redis (overrides config)")
	flags.StringVar(&redisEndpoint, "redis", "", "Redis endpoint (overrides config)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (overrides config)")
	flags.BoolVar(&logPretty, "pretty", false, "Human readable console logs")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(spellCmd, suggestCmd, searchCmd, listCmd, randomCmd)
	rootCmd.AddCommand(importSRDCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
