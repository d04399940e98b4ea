package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"gopkg.in/yaml.v3"

	"github.com/unholyblue/bloom/internal/ui/theme"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	headingStyle = theme.Title
	tagStyle     = theme.Tag
	dimStyle     = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// writeOutput prints v as JSON or YAML, or calls text for the human
// format.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer)) error {
	switch format {
	case formatText, "":
		text(w)
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}
