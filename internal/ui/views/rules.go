package views

import (
	"github.com/pterm/pterm"
)

type RuleItem struct {
	Date string
	ID   string
	Rate string
}

func RenderRules(items []RuleItem) (string, error) {
	tableData := pterm.TableData{
		{"Date", "RuleId", "Rate (%)"},
	}
	for _, item := range items {
		tableData = append(tableData, []string{item.Date, item.ID, item.Rate})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return "", err
	}
	return "Interest rules:\n" + table + "\n", nil
}
