package finance

import "github.com/kashmir-carpentry/kcbooks/internal/model"

// GenerateFinancialReport builds a period report. Unlike ProjectProfitLoss the
// profit stays signed, and VAT is charged on revenue alone.
func GenerateFinancialReport(revenue, expenses float64, period string) model.FinancialReport {
	profit := revenue - expenses
	tax := UAECorporateTax(revenue, expenses)

	return model.FinancialReport{
		Period:       period,
		Revenue:      revenue,
		Expenses:     expenses,
		Profit:       profit,
		VAT:          VAT(revenue),
		CorporateTax: tax,
		NetProfit:    profit - tax,
	}
}
