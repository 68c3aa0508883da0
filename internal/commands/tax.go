package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kashmir-carpentry/kcbooks/internal/finance"
)

func newTaxCommand(opts *rootOptions) *cobra.Command {
	taxCmd := &cobra.Command{
		Use:   "tax",
		Short: "Tax calculators",
	}
	taxCmd.AddCommand(newCorporateTaxCommand(opts))
	taxCmd.AddCommand(newLeviesCommand(opts))
	return taxCmd
}

type corporateTaxResult struct {
	Income         float64 `yaml:"income"`
	Expenses       float64 `yaml:"expenses"`
	TaxableIncome  float64 `yaml:"taxable_income"`
	Threshold      float64 `yaml:"threshold"`
	AboveThreshold float64 `yaml:"above_threshold"`
	CorporateTax   float64 `yaml:"corporate_tax"`
}

func newCorporateTaxCommand(opts *rootOptions) *cobra.Command {
	var income, expenses float64

	cmd := &cobra.Command{
		Use:   "corporate",
		Short: "Estimate UAE corporate tax (9% above AED 375,000)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			taxable := income - expenses
			res := corporateTaxResult{
				Income:         income,
				Expenses:       expenses,
				TaxableIncome:  taxable,
				Threshold:      finance.CorporateTaxThreshold,
				AboveThreshold: finance.TaxableAboveThreshold(taxable),
				CorporateTax:   finance.UAECorporateTax(income, expenses),
			}
			opts.log.Debug("computed corporate tax",
				zap.Float64("taxable_income", taxable),
				zap.Float64("corporate_tax", res.CorporateTax))

			m := opts.money
			return opts.emit(cmd.OutOrStdout(), res, []row{
				{"Total Income:", m.Format(res.Income)},
				{"Total Expenses:", m.Format(res.Expenses)},
				{"Taxable Income:", m.Format(res.TaxableIncome)},
				{"Threshold:", m.Format(res.Threshold)},
				{"Taxable Above Threshold:", m.Format(res.AboveThreshold)},
				{"Corporate Tax (9%):", m.Format(res.CorporateTax)},
			})
		},
	}

	cmd.Flags().Float64Var(&income, "income", 0, "total income")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "total expenses")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}

func newLeviesCommand(opts *rootOptions) *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "levies",
		Short: "Add cooperative tax (9%) and VAT (5%) to an amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := finance.TotalWithTaxes(amount)
			opts.log.Debug("computed levies", zap.Float64("amount", amount), zap.Float64("total", res.Total))

			m := opts.money
			return opts.emit(cmd.OutOrStdout(), res, []row{
				{"Subtotal:", m.Format(res.Subtotal)},
				{"Cooperative Tax (9%):", m.Format(res.CooperativeTax)},
				{"VAT (5%):", m.Format(res.VAT)},
				{"Total:", m.Format(res.Total)},
			})
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "untaxed amount")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
