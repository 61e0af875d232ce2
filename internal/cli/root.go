// Package cli implements the callshot-api commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/callshot/internal/config"
)

var (
	envFile    string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "callshot-api",
	Short: "Image-generation API for callshot",
	Long:  "Serves the screenshot generation API and queries a running instance.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&envFile, "env", "e", ".env", "Path to a .env file (ignored if missing)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func loadServerConfig() (config.ServerConfig, error) {
	return config.LoadServerConfig(envFile)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
