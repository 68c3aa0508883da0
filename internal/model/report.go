package model

// ProfitLoss summarizes a single project.
//
// Profit and ProfitMargin are magnitudes; IsProfit carries the sign.
// NetProfit is signed.
type ProfitLoss struct {
	Profit       float64 `yaml:"profit"`
	ProfitMargin float64 `yaml:"profit_margin"`
	IsProfit     bool    `yaml:"is_profit"`
	CorporateTax float64 `yaml:"corporate_tax"`
	NetProfit    float64 `yaml:"net_profit"`
}

// FinancialReport is a period summary derived from revenue and expenses.
// All figures are signed.
type FinancialReport struct {
	Period       string  `yaml:"period"`
	Revenue      float64 `yaml:"revenue"`
	Expenses     float64 `yaml:"expenses"`
	Profit       float64 `yaml:"profit"`
	VAT          float64 `yaml:"vat"`
	CorporateTax float64 `yaml:"corporate_tax"`
	NetProfit    float64 `yaml:"net_profit"`
}
