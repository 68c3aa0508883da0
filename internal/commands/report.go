package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kashmir-carpentry/kcbooks/internal/finance"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var revenue, expenses float64
	var period string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Financial report for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if period == "" {
				period = time.Now().Format("2006-01")
			}

			rep := finance.GenerateFinancialReport(revenue, expenses, period)
			opts.log.Debug("generated financial report",
				zap.String("period", rep.Period),
				zap.Float64("profit", rep.Profit),
				zap.Float64("net_profit", rep.NetProfit))

			m := opts.money
			rows := []row{
				{"Period:", rep.Period},
				{"Total Revenue:", m.Format(rep.Revenue)},
				{"Total Expenses:", m.Format(rep.Expenses)},
				{"Gross Profit:", m.Format(rep.Profit)},
				{"VAT (5%):", m.Format(rep.VAT)},
				{"Corporate Tax (9%):", m.Format(rep.CorporateTax)},
				{"Net Profit:", m.Format(rep.NetProfit)},
			}
			if rep.CorporateTax > 0 {
				rows = append(rows, row{"Taxable Above Threshold:", m.Format(finance.TaxableAboveThreshold(rep.Profit))})
			}
			return opts.emit(cmd.OutOrStdout(), rep, rows)
		},
	}

	cmd.Flags().Float64Var(&revenue, "revenue", 0, "total revenue for the period")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "total expenses for the period")
	cmd.Flags().StringVar(&period, "period", "", "period label (default: current month, YYYY-MM)")
	_ = cmd.MarkFlagRequired("revenue")

	return cmd
}
