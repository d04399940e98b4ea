package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/unholyblue/bloom/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		conv := newConversation(ctx, cfg, st.EventRepo())
		defer conv.Close()

		srv := api.NewServer(api.Options{
			Conversation: conv,
			Insights:     st.InsightRepo(),
			CORSOrigins:  cfg.Server.CORSOrigins,
		})

		fmt.Fprintf(cmd.ErrOrStderr(), "listening on http://%s (reframe backend: %s)\n", cfg.Server.Addr, cfg.Reframe.Backend)
		if err := srv.Run(ctx, cfg.Server.Addr); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides BLOOM_ADDR and the config file)")
}
