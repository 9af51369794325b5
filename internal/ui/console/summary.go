package console

import (
	"fmt"
	"strings"

	"github.com/gopak/minigrep/internal/config"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func casePolicy(cfg config.Config) string {
	if cfg.CaseSensitive {
		return "sensitive"
	}
	return "insensitive (" + config.CaseInsensitiveEnv + " set)"
}

// RenderSummary describes a finished search as a table.
func RenderSummary(cfg config.Config, matches int) string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprint("minigrep") + "\n")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Setting", "Value"})
	tw.AppendRow(table.Row{"Query", fmt.Sprintf("%q", cfg.Query)})
	tw.AppendRow(table.Row{"File", cfg.Filename})
	tw.AppendRow(table.Row{"Case", casePolicy(cfg)})
	tw.AppendRow(table.Row{"Matches", matches})
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
