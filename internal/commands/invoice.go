package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kashmir-carpentry/kcbooks/internal/finance"
	"github.com/kashmir-carpentry/kcbooks/internal/model"
	"github.com/kashmir-carpentry/kcbooks/internal/sheet"
)

// controlFlags are the invoice adjustments settable on the command line.
// Any value given overrides, and enables, the kcbooks.yaml default.
type controlFlags struct {
	retention      float64
	retentionKind  string
	discount       float64
	discountKind   string
	advance        float64
	deduction      float64
	deductionLabel string
	vatOrder       string
}

func (f *controlFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64Var(&f.retention, "retention", 0, "retention value (percent or amount, see --retention-kind)")
	fl.StringVar(&f.retentionKind, "retention-kind", "", "retention kind: percentage or amount")
	fl.Float64Var(&f.discount, "discount", 0, "discount value (percent or amount, see --discount-kind)")
	fl.StringVar(&f.discountKind, "discount-kind", "", "discount kind: percentage or amount")
	fl.Float64Var(&f.advance, "advance", 0, "advance payment already received")
	fl.Float64Var(&f.deduction, "deduction", 0, "custom deduction amount")
	fl.StringVar(&f.deductionLabel, "deduction-label", "", "label shown for the custom deduction")
	fl.StringVar(&f.vatOrder, "vat-order", "", "charge VAT before or after deductions")
}

// apply overlays the flags that were set on base.
func (f *controlFlags) apply(cmd *cobra.Command, base model.FinancialControls) model.FinancialControls {
	c := base
	changed := cmd.Flags().Changed

	if changed("retention") {
		c.Retention.Enabled = true
		c.Retention.Value = f.retention
	}
	if changed("retention-kind") {
		c.Retention.Kind = model.DeductionKind(f.retentionKind)
	}
	if changed("discount") {
		c.Discount.Enabled = true
		c.Discount.Value = f.discount
	}
	if changed("discount-kind") {
		c.Discount.Kind = model.DeductionKind(f.discountKind)
	}
	if changed("advance") {
		c.AdvancePayment = model.AdvancePayment{Enabled: true, Amount: f.advance}
	}
	if changed("deduction") {
		c.CustomDeduction.Enabled = true
		c.CustomDeduction.Amount = f.deduction
	}
	if changed("deduction-label") {
		c.CustomDeduction.Label = f.deductionLabel
	}
	if changed("vat-order") {
		c.VATOrder = model.VATOrder(f.vatOrder)
	}
	return c
}

func newInvoiceCommand(opts *rootOptions) *cobra.Command {
	var itemsPath string
	var flags controlFlags

	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Compute invoice totals with retention, discount, VAT and advance payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := readItems(itemsPath)
			if err != nil {
				return err
			}

			controls := flags.apply(cmd, opts.cfg.Invoice.Controls())
			if err := sheet.Join(sheet.ValidateControls(controls)); err != nil {
				return err
			}

			totals := finance.ComputeInvoiceTotals(items, controls)
			opts.log.Debug("computed invoice totals",
				zap.Int("items", len(items)),
				zap.String("vat_order", string(controls.VATOrder)),
				zap.Float64("subtotal", totals.Subtotal),
				zap.Float64("vat", totals.VAT),
				zap.Float64("grand_total", totals.GrandTotal))

			return opts.emit(cmd.OutOrStdout(), totals, opts.invoiceRows(controls, totals))
		},
	}

	cmd.Flags().StringVar(&itemsPath, "items", "", "line-item CSV sheet (required)")
	_ = cmd.MarkFlagRequired("items")
	flags.register(cmd)

	return cmd
}

// invoiceRows lays out the totals the way they appear on a printed invoice.
// Disabled adjustments are omitted.
func (o *rootOptions) invoiceRows(c model.FinancialControls, t model.InvoiceTotals) []row {
	rows := []row{{"SUBTOTAL:", o.money.Format(t.Subtotal)}}

	if c.Retention.Enabled {
		rows = append(rows, row{fmt.Sprintf("RETENTION (%s):", deductionLabel(c.Retention)), o.deducted(t.Retention)})
	}
	if c.Discount.Enabled {
		rows = append(rows, row{fmt.Sprintf("DISCOUNT (%s):", deductionLabel(c.Discount)), o.deducted(t.Discount)})
	}
	if c.CustomDeduction.Enabled {
		label := strings.ToUpper(strings.TrimSpace(c.CustomDeduction.Label))
		if label == "" {
			label = "CUSTOM DEDUCTION"
		}
		rows = append(rows, row{label + ":", o.deducted(t.CustomDeduction)})
	}

	order := "After"
	if c.VATOrder == model.VATBefore {
		order = "Before"
	}
	rows = append(rows, row{fmt.Sprintf("VAT 5%% (%s deductions):", order), o.money.Format(t.VAT)})

	if c.AdvancePayment.Enabled {
		rows = append(rows, row{"ADVANCE PAYMENT:", o.deducted(t.AdvancePayment)})
	}
	return append(rows, row{"GRAND TOTAL:", o.money.Format(t.GrandTotal)})
}

func deductionLabel(d model.Deduction) string {
	if d.Kind == model.DeductionPercentage {
		return fmt.Sprintf("%g%%", d.Value)
	}
	return "Fixed"
}

// readItems loads and validates a line-item sheet.
func readItems(path string) ([]model.LineItem, error) {
	items, err := sheet.ReadItemsFile(path)
	if err != nil {
		return nil, err
	}
	if err := sheet.Join(sheet.ValidateItems(items)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

func newQuoteCommand(opts *rootOptions) *cobra.Command {
	var itemsPath string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute quotation totals (5% VAT, no adjustments)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := readItems(itemsPath)
			if err != nil {
				return err
			}

			totals := finance.QuotationTotals(items)
			opts.log.Debug("computed quotation totals",
				zap.Int("items", len(items)),
				zap.Float64("total", totals.Total))

			return opts.emit(cmd.OutOrStdout(), totals, []row{
				{"SUBTOTAL:", opts.money.Format(totals.Subtotal)},
				{"VAT 5%:", opts.money.Format(totals.VAT)},
				{"TOTAL:", opts.money.Format(totals.Total)},
			})
		},
	}

	cmd.Flags().StringVar(&itemsPath, "items", "", "line-item CSV sheet (required)")
	_ = cmd.MarkFlagRequired("items")
	return cmd
}

func newLPOCommand(opts *rootOptions) *cobra.Command {
	var itemsPath string

	cmd := &cobra.Command{
		Use:   "lpo",
		Short: "Compute a local purchase order total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := readItems(itemsPath)
			if err != nil {
				return err
			}

			total := finance.PurchaseOrderTotal(items)
			opts.log.Debug("computed purchase order total",
				zap.Int("items", len(items)),
				zap.Float64("total", total))

			result := struct {
				Total float64 `yaml:"total"`
			}{total}
			return opts.emit(cmd.OutOrStdout(), result, []row{
				{"Total Amount:", opts.money.Format(total)},
			})
		},
	}

	cmd.Flags().StringVar(&itemsPath, "items", "", "line-item CSV sheet, unit_price is the rate (required)")
	_ = cmd.MarkFlagRequired("items")
	return cmd
}
