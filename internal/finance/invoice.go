package finance

import (
	"math"

	"github.com/kashmir-carpentry/kcbooks/internal/model"
)

// Subtotal returns the sum of the item amounts.
func Subtotal(items []model.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Amount()
	}
	return sum
}

// ComputeInvoiceTotals derives the full invoice breakdown from items and controls.
//
// Retention and discount are both taken from the subtotal and never compound.
// With VATOrder "before" VAT is charged on the subtotal; with any other order
// it is charged on the subtotal less retention, discount and custom deduction.
// The advance payment is offset last and the grand total is floored at zero.
func ComputeInvoiceTotals(items []model.LineItem, controls model.FinancialControls) model.InvoiceTotals {
	subtotal := Subtotal(items)

	retention := deduction(controls.Retention, subtotal)
	discount := deduction(controls.Discount, subtotal)

	var advance, custom float64
	if controls.AdvancePayment.Enabled {
		advance = controls.AdvancePayment.Amount
	}
	if controls.CustomDeduction.Enabled {
		custom = controls.CustomDeduction.Amount
	}

	var vat, working float64
	if controls.VATOrder == model.VATBefore {
		vat = VAT(subtotal)
		working = subtotal + vat - retention - discount - custom
	} else {
		working = subtotal - retention - discount - custom
		vat = VAT(working)
		working += vat
	}

	return model.InvoiceTotals{
		Subtotal:        subtotal,
		Retention:       retention,
		Discount:        discount,
		VAT:             vat,
		AdvancePayment:  advance,
		CustomDeduction: custom,
		GrandTotal:      math.Max(0, working-advance),
	}
}

// deduction evaluates a retention or discount against base.
func deduction(d model.Deduction, base float64) float64 {
	if !d.Enabled {
		return 0
	}
	if d.Kind == model.DeductionPercentage {
		return base * (d.Value / 100)
	}
	return d.Value
}

// QuotationTotals returns the subtotal, VAT and total of a quotation.
func QuotationTotals(items []model.LineItem) model.QuotationTotals {
	subtotal := Subtotal(items)
	vat := VAT(subtotal)
	return model.QuotationTotals{
		Subtotal: subtotal,
		VAT:      vat,
		Total:    subtotal + vat,
	}
}

// PurchaseOrderTotal returns the untaxed total of a local purchase order.
func PurchaseOrderTotal(items []model.LineItem) float64 {
	return Subtotal(items)
}
