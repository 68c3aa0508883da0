package commands_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kashmir-carpentry/kcbooks/internal/commands"
	"github.com/kashmir-carpentry/kcbooks/internal/model"
	"github.com/kashmir-carpentry/kcbooks/internal/sheet"
)

const (
	itemsCSV      = "../../testdata/items.csv"
	expensesCSV   = "../../testdata/expenses.csv"
	laborCSV      = "../../testdata/labor.csv"
	attendanceCSV = "../../testdata/attendance.csv"
	materialsCSV  = "../../testdata/materials.csv"
	movementsCSV  = "../../testdata/movements.csv"
)

// runKCBooks executes the CLI in-process against a config path that does not
// exist unless the caller passes its own --config.
func runKCBooks(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "kcbooks.yaml")}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestInvoice_VATAfterRetention(t *testing.T) {
	out, _, err := runKCBooks(t, "invoice", "--items", itemsCSV, "--retention", "10", "--vat-order", "after")
	require.NoError(t, err)

	assert.Contains(t, out, "SUBTOTAL:")
	assert.Contains(t, out, "AED 1,000.00")
	assert.Contains(t, out, "RETENTION (10%):")
	assert.Contains(t, out, "-AED 100.00")
	assert.Contains(t, out, "VAT 5% (After deductions):")
	assert.Contains(t, out, "AED 45.00")
	assert.Contains(t, out, "AED 945.00")
	assert.NotContains(t, out, "DISCOUNT")
	assert.NotContains(t, out, "ADVANCE PAYMENT")
}

func TestInvoice_YAMLOutput(t *testing.T) {
	out, _, err := runKCBooks(t, "-o", "yaml", "invoice", "--items", itemsCSV,
		"--retention", "10", "--vat-order", "before", "--advance", "150",
		"--deduction", "50", "--deduction-label", "Site cleaning")
	require.NoError(t, err)

	var totals model.InvoiceTotals
	require.NoError(t, yaml.Unmarshal([]byte(out), &totals))
	assert.InDelta(t, 1000.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 100.0, totals.Retention, 1e-9)
	assert.InDelta(t, 50.0, totals.VAT, 1e-9)
	assert.InDelta(t, 50.0, totals.CustomDeduction, 1e-9)
	assert.InDelta(t, 150.0, totals.AdvancePayment, 1e-9)
	assert.InDelta(t, 750.0, totals.GrandTotal, 1e-9)
}

func TestInvoice_CustomDeductionLabel(t *testing.T) {
	out, _, err := runKCBooks(t, "invoice", "--items", itemsCSV, "--deduction", "50", "--deduction-label", "Site cleaning")
	require.NoError(t, err)
	assert.Contains(t, out, "SITE CLEANING:")

	out, _, err = runKCBooks(t, "invoice", "--items", itemsCSV, "--deduction", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "CUSTOM DEDUCTION:")
}

func TestInvoice_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "kcbooks.yaml")
	cfgYAML := "invoice:\n  vat_order: before\n  retention:\n    enabled: true\n    kind: amount\n    value: 200\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "invoice", "--items", itemsCSV})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "RETENTION (Fixed):")
	assert.Contains(t, out.String(), "-AED 200.00")
	assert.Contains(t, out.String(), "VAT 5% (Before deductions):")
	assert.Contains(t, out.String(), "AED 850.00")
}

func TestInvoice_RejectsBadInput(t *testing.T) {
	_, _, err := runKCBooks(t, "invoice", "--items", itemsCSV, "--vat-order", "later")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vat_order")

	_, _, err = runKCBooks(t, "invoice", "--items", itemsCSV, "--discount", "5", "--discount-kind", "ratio")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discount.kind")

	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(path, []byte(sheet.ItemsHeader+"\nX,Refund,-1,100\n"), 0o644))
	_, _, err = runKCBooks(t, "invoice", "--items", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "row 1 [quantity]")
}

func TestInvoice_RequiresItems(t *testing.T) {
	_, _, err := runKCBooks(t, "invoice")
	require.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := runKCBooks(t, "-v", "invoice", "--items", itemsCSV)
	require.NoError(t, err)
	assert.NotContains(t, out, "computed invoice totals")
	assert.Contains(t, errOut, "computed invoice totals")
	assert.Contains(t, errOut, "grand_total")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, _, err := runKCBooks(t, "-o", "json", "quote", "--items", itemsCSV)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestQuote(t *testing.T) {
	out, _, err := runKCBooks(t, "quote", "--items", itemsCSV)
	require.NoError(t, err)
	assert.Contains(t, out, "VAT 5%:")
	assert.Contains(t, out, "AED 50.00")
	assert.Contains(t, out, "AED 1,050.00")
}

func TestLPO(t *testing.T) {
	out, _, err := runKCBooks(t, "lpo", "--items", itemsCSV)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Amount:")
	assert.Contains(t, out, "AED 1,000.00")
}

func TestTaxCorporate(t *testing.T) {
	out, _, err := runKCBooks(t, "tax", "corporate", "--income", "475000")
	require.NoError(t, err)
	assert.Contains(t, out, "Taxable Above Threshold:")
	assert.Contains(t, out, "AED 100,000.00")
	assert.Contains(t, out, "AED 9,000.00")

	out, _, err = runKCBooks(t, "-o", "yaml", "tax", "corporate", "--income", "300000")
	require.NoError(t, err)
	var res map[string]float64
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Zero(t, res["corporate_tax"])
	assert.InDelta(t, 375000.0, res["threshold"], 1e-9)
}

func TestTaxLevies(t *testing.T) {
	out, _, err := runKCBooks(t, "tax", "levies", "--amount", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "AED 180.00")
	assert.Contains(t, out, "AED 100.00")
	assert.Contains(t, out, "AED 2,280.00")
}

func TestProject_Loss(t *testing.T) {
	out, _, err := runKCBooks(t, "project", "--revenue", "50000", "--costs", "60000")
	require.NoError(t, err)
	assert.Contains(t, out, "Loss:")
	assert.Contains(t, out, "AED 10,000.00")
	assert.Contains(t, out, "20.00%")
	assert.Contains(t, out, "-AED 10,000.00", "net profit keeps its sign")
}

func TestProject_FromSheets(t *testing.T) {
	out, _, err := runKCBooks(t, "-o", "yaml", "project", "--revenue", "10000",
		"--expenses", expensesCSV, "--labor", laborCSV)
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	costs, ok := res["costs"].(map[string]any)
	require.True(t, ok, "costs should be a mapping: %v", res["costs"])
	assert.InDelta(t, 5000.0, costs["expenses"], 1e-9)
	assert.InDelta(t, 2800.0, costs["labor"], 1e-9)
	assert.InDelta(t, 7800.0, costs["total"], 1e-9)
	assert.Equal(t, true, res["is_profit"])
	assert.InDelta(t, 2200.0, res["profit"], 1e-9)
}

func TestProject_ZeroRevenueMargin(t *testing.T) {
	out, _, err := runKCBooks(t, "-o", "yaml", "project", "--revenue", "0", "--costs", "100")
	require.NoError(t, err)

	var res struct {
		ProfitMargin float64 `yaml:"profit_margin"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.True(t, math.IsInf(res.ProfitMargin, 1), "got %v", res.ProfitMargin)
}

func TestProject_RequiresCosts(t *testing.T) {
	_, _, err := runKCBooks(t, "project", "--revenue", "1000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--costs")
}

func TestReport(t *testing.T) {
	out, _, err := runKCBooks(t, "report", "--revenue", "500000", "--expenses", "50000", "--period", "2025-01")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-01")
	assert.Contains(t, out, "AED 450,000.00")
	assert.Contains(t, out, "AED 25,000.00")
	assert.Contains(t, out, "AED 6,750.00")
	assert.Contains(t, out, "AED 443,250.00")
	assert.Contains(t, out, "Taxable Above Threshold:")
	assert.Contains(t, out, "AED 75,000.00")
}

func TestReport_YAMLLoss(t *testing.T) {
	out, _, err := runKCBooks(t, "-o", "yaml", "report", "--revenue", "50000", "--expenses", "60000", "--period", "2025-Q1")
	require.NoError(t, err)

	var rep model.FinancialReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "2025-Q1", rep.Period)
	assert.InDelta(t, -10000.0, rep.Profit, 1e-9)
	assert.InDelta(t, 2500.0, rep.VAT, 1e-9)
	assert.InDelta(t, -10000.0, rep.NetProfit, 1e-9)
}

func TestPayroll(t *testing.T) {
	out, _, err := runKCBooks(t, "payroll", "--worker", "w1", "--rate", "20", "--attendance", attendanceCSV)
	require.NoError(t, err)
	assert.Contains(t, out, "2025-01")
	assert.Contains(t, out, "AED 310.00")
	assert.Contains(t, out, "2025-02")
	assert.Contains(t, out, "AED 160.00")
}

func TestInventory(t *testing.T) {
	out, _, err := runKCBooks(t, "inventory", "--materials", materialsCSV)
	require.NoError(t, err)
	assert.Contains(t, out, "AED 1,155.00")
	assert.Contains(t, out, "Wood screws")
	assert.Contains(t, out, "Varnish")
	assert.NotContains(t, out, "Plywood")

	out, _, err = runKCBooks(t, "-o", "yaml", "inventory", "--materials", materialsCSV, "--movements", movementsCSV)
	require.NoError(t, err)

	var res struct {
		TotalValue float64 `yaml:"total_value"`
		LowStock   []struct {
			ID string `yaml:"id"`
		} `yaml:"low_stock"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 860.0, res.TotalValue, 1e-9)
	require.Len(t, res.LowStock, 2)
	assert.Equal(t, "m1", res.LowStock[0].ID)
	assert.Equal(t, "m2", res.LowStock[1].ID)
}

func TestVersion(t *testing.T) {
	out, _, err := runKCBooks(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: none")
}

func TestInventory_RejectsBadMovements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movements.csv")
	body := sheet.MovementsHeader + "\nm1,transfer,5,,\nm2,in,-3,,\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, _, err := runKCBooks(t, "inventory", "--materials", materialsCSV, "--movements", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "row 1 [type]")
	assert.Contains(t, err.Error(), "row 2 [quantity]")
	assert.Empty(t, out)
}
