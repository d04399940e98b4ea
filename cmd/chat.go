package cmd

import (
	"github.com/spf13/cobra"

	"github.com/unholyblue/bloom/internal/app"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

// runChat opens the store, builds the pipeline, and launches the TUI.
func runChat(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	conv := newConversation(ctx, cfg, st.EventRepo())
	defer conv.Close()

	return app.Run(ctx, conv)
}
