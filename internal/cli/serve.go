package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ytget/callshot/internal/server"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		Run:   runServe,
	}
	cmd.Flags().String("host", "", "Listen host (default: $CALLSHOT_HOST or 0.0.0.0)")
	cmd.Flags().Int("port", 0, "Listen port (default: $CALLSHOT_PORT or 34567)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadServerConfig()
	if err != nil {
		exitErr("config", err)
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg); err != nil {
		exitErr("serve", err)
	}
}
