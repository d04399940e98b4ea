package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unholyblue/bloom/internal/store"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Browse and share community insights",
}

var insightsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		filter := store.InsightFilter{}
		filter.Mood, _ = cmd.Flags().GetString("mood")
		filter.Author, _ = cmd.Flags().GetString("author")
		filter.Limit, _ = cmd.Flags().GetInt("limit")
		if cmd.Flags().Changed("featured") {
			featured, _ := cmd.Flags().GetBool("featured")
			filter.Featured = &featured
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		insights, err := st.InsightRepo().List(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("list insights: %w", err)
		}

		return writeOutput(cmd.OutOrStdout(), format, insights, func(w io.Writer) {
			printInsights(w, insights)
		})
	},
}

var insightsAddCmd = &cobra.Command{
	Use:   "add <content...>",
	Short: "Share an insight",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, _ := cmd.Flags().GetString("mood")
		author, _ := cmd.Flags().GetString("author")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		in, err := st.InsightRepo().Create(cmd.Context(), store.Insight{
			Content: strings.Join(args, " "),
			Mood:    mood,
			Author:  author,
		})
		if err != nil {
			return fmt.Errorf("add insight: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Shared insight", in.ID)
		return nil
	},
}

func init() {
	insightsListCmd.Flags().StringP("format", "f", formatText, "Output format: text, json or yaml")
	insightsListCmd.Flags().String("mood", "", "Only insights with this mood")
	insightsListCmd.Flags().String("author", "", "Only insights by this author")
	insightsListCmd.Flags().Bool("featured", false, "Only featured insights (--featured=false for the rest)")
	insightsListCmd.Flags().IntP("limit", "n", 20, "Number of insights to show")

	insightsAddCmd.Flags().String("mood", "", "Mood tag, e.g. hopeful")
	insightsAddCmd.Flags().String("author", "", "Display name")

	insightsCmd.AddCommand(insightsListCmd)
	insightsCmd.AddCommand(insightsAddCmd)
}

func printInsights(w io.Writer, insights []store.Insight) {
	if len(insights) == 0 {
		fmt.Fprintln(w, "No insights yet.")
		return
	}
	for _, in := range insights {
		meta := in.CreatedAt.Local().Format("2006-01-02")
		if in.Author != "" {
			meta = in.Author + " · " + meta
		}
		if in.Mood != "" {
			meta += " · " + in.Mood
		}
		mark := " "
		if in.Featured {
			mark = tagStyle.Render("★")
		}
		fmt.Fprintf(w, "%s %s\n", mark, in.Content)
		fmt.Fprintf(w, "  %s\n\n", dimStyle.Render(fmt.Sprintf("%s · ♥ %d · %d views", meta, in.Likes, in.Views)))
	}
}
