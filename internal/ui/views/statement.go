package views

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

type StatementRowItem struct {
	Date    string
	TxnID   string
	Type    string
	Amount  string
	Balance string
}

// StatementView is a ready-to-print account statement.
type StatementView struct {
	AccountID string
	Rows      []StatementRowItem
}

func RenderStatement(v StatementView) (string, error) {
	tableData := pterm.TableData{
		{"Date", "Txn Id", "Type", "Amount", "Balance"},
	}
	for _, row := range v.Rows {
		amount := row.Amount
		switch row.Type {
		case "W":
			amount = pterm.Red(row.Amount)
		case "I":
			amount = pterm.Green(row.Amount)
		}
		tableData = append(tableData, []string{row.Date, row.TxnID, row.Type, amount, row.Balance})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Account: %s\n", v.AccountID)
	sb.WriteString(table)
	sb.WriteString("\n")
	return sb.String(), nil
}
