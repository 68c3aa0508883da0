package model

// DeductionKind selects how a retention or discount value is applied.
type DeductionKind string

const (
	DeductionPercentage DeductionKind = "percentage"
	DeductionAmount     DeductionKind = "amount" // fixed amount
)

// VATOrder controls whether VAT is charged on the subtotal or on the amount
// left after retention, discount and custom deduction.
type VATOrder string

const (
	VATBefore VATOrder = "before"
	VATAfter  VATOrder = "after"
)

// LineItem is one row on an invoice, quotation or purchase order.
type LineItem struct {
	Code        string
	Description string
	Quantity    float64
	UnitPrice   float64 // "rate" on purchase orders
}

// Amount returns quantity × unit price.
func (i LineItem) Amount() float64 {
	return i.Quantity * i.UnitPrice
}

// Deduction is a retention or discount setting.
type Deduction struct {
	Enabled bool
	Kind    DeductionKind
	Value   float64 // percent (10 = 10%) or fixed amount, depending on Kind
}

// AdvancePayment is an amount already received, offset against the grand total.
type AdvancePayment struct {
	Enabled bool
	Amount  float64
}

// CustomDeduction is a user-labelled fixed deduction. The label is display only.
type CustomDeduction struct {
	Enabled bool
	Label   string
	Amount  float64
}

// FinancialControls are the per-invoice adjustment options.
type FinancialControls struct {
	Retention       Deduction
	Discount        Deduction
	AdvancePayment  AdvancePayment
	CustomDeduction CustomDeduction
	VATOrder        VATOrder
}

// InvoiceTotals is the derived breakdown of an invoice. It is never stored.
type InvoiceTotals struct {
	Subtotal        float64 `yaml:"subtotal"`
	Retention       float64 `yaml:"retention"`
	Discount        float64 `yaml:"discount"`
	VAT             float64 `yaml:"vat"`
	AdvancePayment  float64 `yaml:"advance_payment"`
	CustomDeduction float64 `yaml:"custom_deduction"`
	GrandTotal      float64 `yaml:"grand_total"`
}

// QuotationTotals is the breakdown of a quotation: VAT only, no adjustments.
type QuotationTotals struct {
	Subtotal float64 `yaml:"subtotal"`
	VAT      float64 `yaml:"vat"`
	Total    float64 `yaml:"total"`
}

// TaxedTotal is an amount with cooperative tax and VAT both added on top.
type TaxedTotal struct {
	Subtotal       float64 `yaml:"subtotal"`
	CooperativeTax float64 `yaml:"cooperative_tax"`
	VAT            float64 `yaml:"vat"`
	Total          float64 `yaml:"total"`
}
