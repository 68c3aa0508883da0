package finance

import (
	"math"

	"github.com/kashmir-carpentry/kcbooks/internal/model"
)

// ProjectCosts totals a project's expenses and labor.
func ProjectCosts(expenses []model.ProjectExpense, labor []model.LaborCost) model.ProjectCosts {
	var costs model.ProjectCosts
	for _, e := range expenses {
		costs.Expenses += e.Amount
	}
	for _, l := range labor {
		costs.Labor += l.Amount()
	}
	costs.Total = costs.Expenses + costs.Labor
	return costs
}

// ProjectProfitLoss derives profit metrics for one project.
//
// Profit and ProfitMargin are returned as absolute values; IsProfit tells the
// direction. A zero revenue yields an infinite or NaN margin.
func ProjectProfitLoss(revenue, costs float64) model.ProfitLoss {
	profit := revenue - costs
	margin := (profit / revenue) * 100
	tax := UAECorporateTax(revenue, costs)

	return model.ProfitLoss{
		Profit:       math.Abs(profit),
		ProfitMargin: math.Abs(margin),
		IsProfit:     profit >= 0,
		CorporateTax: tax,
		NetProfit:    profit - tax,
	}
}
