package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unholyblue/bloom/internal/conversation"
	"github.com/unholyblue/bloom/internal/distortion"
	"github.com/unholyblue/bloom/internal/router"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Detect thinking patterns in a message",
	Long: "Classify a message and show the routing decision. With no arguments the\n" +
		"message is read from stdin. --reframe also runs the reframe generator.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		withReframe, _ := cmd.Flags().GetBool("reframe")

		text, err := readMessage(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		if !withReframe {
			r := distortion.Classify(text)
			out := conversation.Turn{Seq: 1, Text: text, Result: r, Decision: router.Route(r)}
			return writeOutput(cmd.OutOrStdout(), format, out, func(w io.Writer) {
				printTurn(w, out)
			})
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

		conv := newConversation(cmd.Context(), cfg, st.EventRepo())
		defer conv.Close()

		out := conv.Respond(cmd.Context(), text)
		if out.Err != nil {
			fmt.Fprintln(os.Stderr, "warning: reframe unavailable:", out.Err)
		}
		return writeOutput(cmd.OutOrStdout(), format, out, func(w io.Writer) {
			printTurn(w, out.Turn)
			if out.Reframed {
				fmt.Fprintln(w)
				fmt.Fprintln(w, headingStyle.Render("Reframe"))
				fmt.Fprintln(w, out.Reply)
			}
		})
	},
}

func init() {
	classifyCmd.Flags().StringP("format", "f", formatText, "Output format: text, json or yaml")
	classifyCmd.Flags().Bool("reframe", false, "Generate a reframe when the message is routed")
}

// readMessage joins args, or reads all of r when there are none.
func readMessage(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func printTurn(w io.Writer, t conversation.Turn) {
	r, d := t.Result, t.Decision
	if !r.Detected {
		fmt.Fprintln(w, "No thinking patterns detected.")
		return
	}

	fmt.Fprintln(w, headingStyle.Render("Detected"))
	for _, def := range r.Distortions {
		fmt.Fprintf(w, "  %s %s\n", tagStyle.Render(def.Name), dimStyle.Render("("+def.Type+")"))
	}
	fmt.Fprintf(w, "\nConfidence: %.0f%%", r.Confidence*100)
	if d.ShouldReframe {
		fmt.Fprintln(w, "  → reframe")
	} else {
		fmt.Fprintf(w, "  (below %.0f%% reframe threshold)\n", router.ReframeThreshold*100)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, d.Explanation)

	if top := distortion.TopSuggestions(r, distortion.DisplayedSuggestions); len(top) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Questions to consider"))
		for _, q := range top {
			fmt.Fprintln(w, "  • "+q)
		}
	}
}
