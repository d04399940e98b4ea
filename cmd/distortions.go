package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unholyblue/bloom/internal/distortion"
)

var distortionsCmd = &cobra.Command{
	Use:   "distortions [name-or-type]",
	Short: "List thinking patterns or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		w := cmd.OutOrStdout()

		if len(args) == 0 {
			all := distortion.All()
			return writeOutput(w, format, all, func(w io.Writer) {
				for _, d := range all {
					fmt.Fprintf(w, "%-24s %s\n", d.Type, dimStyle.Render(d.Name+": "+d.Description))
				}
			})
		}

		d, ok := distortion.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown distortion %q", args[0])
		}
		return writeOutput(w, format, d, func(w io.Writer) {
			printDefinition(w, *d)
		})
	},
}

func init() {
	distortionsCmd.Flags().StringP("format", "f", formatText, "Output format: text, json or yaml")
}

func printDefinition(w io.Writer, d distortion.Definition) {
	fmt.Fprintln(w, headingStyle.Render(d.Name), dimStyle.Render("("+d.Type+")"))
	fmt.Fprintln(w, d.Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, d.Explanation)
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Questions"))
	for _, q := range d.ReframeQuestions {
		fmt.Fprintln(w, "  • "+q)
	}
	if len(d.Examples) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Examples"))
		for _, ex := range d.Examples {
			fmt.Fprintln(w, "  "+dimStyle.Render("“"+ex+"”"))
		}
	}
}
