package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kashmir-carpentry/kcbooks/internal/finance"
	"github.com/kashmir-carpentry/kcbooks/internal/model"
	"github.com/kashmir-carpentry/kcbooks/internal/sheet"
)

type projectResult struct {
	Revenue          float64            `yaml:"revenue"`
	Costs            model.ProjectCosts `yaml:"costs"`
	model.ProfitLoss `yaml:",inline"`
}

func newProjectCommand(opts *rootOptions) *cobra.Command {
	var revenue, costs float64
	var expensesPath, laborPath string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project profit or loss, margin and corporate tax",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var pc model.ProjectCosts
			switch {
			case cmd.Flags().Changed("costs"):
				pc = model.ProjectCosts{Expenses: costs, Total: costs}
			case expensesPath != "" || laborPath != "":
				var err error
				pc, err = loadProjectCosts(expensesPath, laborPath)
				if err != nil {
					return err
				}
			default:
				return errors.New("one of --costs, --expenses or --labor is required")
			}

			res := projectResult{
				Revenue:    revenue,
				Costs:      pc,
				ProfitLoss: finance.ProjectProfitLoss(revenue, pc.Total),
			}
			opts.log.Debug("computed project profit/loss",
				zap.Float64("revenue", revenue),
				zap.Float64("costs", pc.Total),
				zap.Bool("is_profit", res.IsProfit),
				zap.Float64("net_profit", res.NetProfit))

			return opts.emit(cmd.OutOrStdout(), res, opts.projectRows(res))
		},
	}

	cmd.Flags().Float64Var(&revenue, "revenue", 0, "project revenue")
	_ = cmd.MarkFlagRequired("revenue")
	cmd.Flags().Float64Var(&costs, "costs", 0, "total project cost")
	cmd.Flags().StringVar(&expensesPath, "expenses", "", "project expense CSV sheet")
	cmd.Flags().StringVar(&laborPath, "labor", "", "project labor CSV sheet")
	cmd.MarkFlagsMutuallyExclusive("costs", "expenses")
	cmd.MarkFlagsMutuallyExclusive("costs", "labor")

	return cmd
}

func loadProjectCosts(expensesPath, laborPath string) (model.ProjectCosts, error) {
	var expenses []model.ProjectExpense
	var labor []model.LaborCost

	if expensesPath != "" {
		var err error
		if expenses, err = sheet.ReadExpensesFile(expensesPath); err != nil {
			return model.ProjectCosts{}, err
		}
		if err := sheet.Join(sheet.ValidateExpenses(expenses)); err != nil {
			return model.ProjectCosts{}, fmt.Errorf("%s: %w", expensesPath, err)
		}
	}
	if laborPath != "" {
		var err error
		if labor, err = sheet.ReadLaborFile(laborPath); err != nil {
			return model.ProjectCosts{}, err
		}
		if err := sheet.Join(sheet.ValidateLabor(labor)); err != nil {
			return model.ProjectCosts{}, fmt.Errorf("%s: %w", laborPath, err)
		}
	}
	return finance.ProjectCosts(expenses, labor), nil
}

func (o *rootOptions) projectRows(res projectResult) []row {
	m := o.money
	direction := "Profit:"
	if !res.IsProfit {
		direction = "Loss:"
	}
	return []row{
		{"Total Revenue:", m.Format(res.Revenue)},
		{"Total Expenses:", m.Format(res.Costs.Expenses)},
		{"Total Labor:", m.Format(res.Costs.Labor)},
		{"Total Costs:", m.Format(res.Costs.Total)},
		{direction, m.Format(res.Profit)},
		{"Margin:", fmt.Sprintf("%.2f%%", res.ProfitMargin)},
		{"Corporate Tax:", m.Format(res.CorporateTax)},
		{"Net Profit:", m.Format(res.NetProfit)},
	}
}
