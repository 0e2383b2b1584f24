package pretty

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/yaklabco/lintdev/pkg/registry"
)

const (
	fixableSymbol   = "+"
	minMessageWidth = 30
	// Width taken by the LINTER, CODE, RULE and FIX columns plus borders.
	fixedColumnsWidth = 70
)

// RenderRulesTable writes every rule of reg as a boxed table sized to width.
func RenderRulesTable(w io.Writer, reg *registry.Registry, colorEnabled bool, width int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"LINTER", "CODE", "RULE", "MESSAGE", "FIX"})

	if colorEnabled {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleLight)
	}

	messageWidth := max(width-fixedColumnsWidth, minMessageWidth)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "LINTER", AutoMerge: true},
		{Name: "MESSAGE", WidthMax: messageWidth, WidthMaxEnforcer: text.WrapSoft},
		{Name: "FIX", Align: text.AlignCenter},
	})

	for _, linter := range reg.Linters() {
		for _, rule := range linter.Rules() {
			code, _ := reg.FullCode(rule)
			message, _ := rule.Message()
			fix := ""
			if rule.Fix.Available() {
				fix = fixableSymbol
			}
			tw.AppendRow(table.Row{linter.Name(), code, rule.ID, message, fix})
		}
	}

	tw.Render()
}
