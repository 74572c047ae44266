package views

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStatement(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out, err := RenderStatement(StatementView{
		AccountID: "AC001",
		Rows: []StatementRowItem{
			{Date: "20230601", TxnID: "20230601-01", Type: "D", Amount: "150.00", Balance: "250.00"},
			{Date: "20230630", TxnID: "", Type: "I", Amount: "0.39", Balance: "130.39"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Account: AC001")
	assert.Contains(t, out, "Txn Id")
	assert.Contains(t, out, "20230601-01")
	assert.Contains(t, out, "130.39")
}

func TestRenderRules(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out, err := RenderRules([]RuleItem{
		{Date: "20230101", ID: "RULE01", Rate: "1.95"},
		{Date: "20230520", ID: "RULE02", Rate: "1.90"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Interest rules:")
	assert.Contains(t, out, "Rate (%)")
	assert.Contains(t, out, "RULE02")
	assert.Contains(t, out, "1.90")
}
