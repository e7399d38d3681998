package main

import (
	"github.com/spf13/cobra"
)

// Build metadata, injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "LLM provider gateway",
	Long: `Prism is a gateway in front of OpenAI-compatible LLM providers.

It validates requests against a compiled-in provider catalog, resolves
credentials from the environment, and relays chat completions to the
selected provider as a Server-Sent Events stream.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (optional)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
