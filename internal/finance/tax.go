package finance

import (
	"math"

	"github.com/kashmir-carpentry/kcbooks/internal/model"
)

const (
	// VATRate is the UAE value-added tax rate.
	VATRate = 0.05
	// CorporateTaxRate applies to taxable income above CorporateTaxThreshold.
	CorporateTaxRate = 0.09
	// CorporateTaxThreshold is the AED amount of taxable income taxed at 0%.
	CorporateTaxThreshold = 375000.0
	// CooperativeTaxRate is the flat cooperative levy.
	CooperativeTaxRate = 0.09
)

// VAT returns the VAT charged on amount.
func VAT(amount float64) float64 {
	return amount * VATRate
}

// CooperativeTax returns the cooperative levy on amount.
func CooperativeTax(amount float64) float64 {
	return amount * CooperativeTaxRate
}

// TotalWithTaxes adds both the cooperative levy and VAT to amount, each
// computed on the untaxed amount.
func TotalWithTaxes(amount float64) model.TaxedTotal {
	coop := CooperativeTax(amount)
	vat := VAT(amount)
	return model.TaxedTotal{
		Subtotal:       amount,
		CooperativeTax: coop,
		VAT:            vat,
		Total:          amount + coop + vat,
	}
}

// UAECorporateTax returns the corporate tax owed on income less expenses.
// Taxable income at or below the threshold, including negative income, owes nothing.
func UAECorporateTax(income, expenses float64) float64 {
	taxable := income - expenses
	if taxable <= CorporateTaxThreshold {
		return 0
	}
	return (taxable - CorporateTaxThreshold) * CorporateTaxRate
}

// TaxableAboveThreshold returns the part of profit the corporate tax rate applies to.
func TaxableAboveThreshold(profit float64) float64 {
	return math.Max(0, profit-CorporateTaxThreshold)
}
