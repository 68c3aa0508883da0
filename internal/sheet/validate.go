package sheet

import (
	"fmt"
	"math"
	"strings"

	"github.com/kashmir-carpentry/kcbooks/internal/model"
)

// ValidationError describes one rejected input value.
type ValidationError struct {
	Row         int // 1-based data row, 0 for non-tabular input
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Description)
	}
	return fmt.Sprintf("row %d [%s]: %s", e.Row, e.Field, e.Description)
}

// Join collapses validation errors into a single error, or nil if there are none.
func Join(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, ve := range errs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// checker accumulates errors for amounts that must be finite and non-negative.
type checker struct {
	errs []ValidationError
}

func (c *checker) amount(row int, field string, v float64) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		c.errs = append(c.errs, ValidationError{Row: row, Field: field, Description: "must be a finite number"})
	case v < 0:
		c.errs = append(c.errs, ValidationError{Row: row, Field: field, Description: fmt.Sprintf("must not be negative, got %v", v)})
	}
}

// ValidateItems requires non-negative quantities and unit prices.
func ValidateItems(items []model.LineItem) []ValidationError {
	var c checker
	for i, item := range items {
		c.amount(i+1, "quantity", item.Quantity)
		c.amount(i+1, "unit_price", item.UnitPrice)
	}
	return c.errs
}

// ValidateControls checks the option enums and that every enabled amount is
// non-negative. Percentages above 100 are allowed.
func ValidateControls(ctl model.FinancialControls) []ValidationError {
	var c checker

	deduction := func(name string, d model.Deduction) {
		if !d.Enabled {
			return
		}
		if d.Kind != model.DeductionPercentage && d.Kind != model.DeductionAmount {
			c.errs = append(c.errs, ValidationError{
				Field:       name + ".kind",
				Description: fmt.Sprintf("unknown kind %q (want percentage or amount)", d.Kind),
			})
		}
		c.amount(0, name+".value", d.Value)
	}
	deduction("retention", ctl.Retention)
	deduction("discount", ctl.Discount)

	if ctl.AdvancePayment.Enabled {
		c.amount(0, "advance_payment", ctl.AdvancePayment.Amount)
	}
	if ctl.CustomDeduction.Enabled {
		c.amount(0, "custom_deduction", ctl.CustomDeduction.Amount)
	}

	if ctl.VATOrder != model.VATBefore && ctl.VATOrder != model.VATAfter {
		c.errs = append(c.errs, ValidationError{
			Field:       "vat_order",
			Description: fmt.Sprintf("unknown order %q (want before or after)", ctl.VATOrder),
		})
	}
	return c.errs
}

// ValidateExpenses requires non-negative expense amounts.
func ValidateExpenses(expenses []model.ProjectExpense) []ValidationError {
	var c checker
	for i, e := range expenses {
		c.amount(i+1, "amount", e.Amount)
	}
	return c.errs
}

// ValidateLabor requires non-negative hours and rates.
func ValidateLabor(labor []model.LaborCost) []ValidationError {
	var c checker
	for i, l := range labor {
		c.amount(i+1, "hours", l.Hours)
		c.amount(i+1, "rate", l.Rate)
	}
	return c.errs
}

// ValidateAttendance requires positive hours worked and non-negative overtime.
func ValidateAttendance(records []model.Attendance) []ValidationError {
	var c checker
	for i, a := range records {
		if !(a.HoursWorked > 0) {
			c.errs = append(c.errs, ValidationError{Row: i + 1, Field: "hours_worked", Description: "must be greater than zero"})
		}
		c.amount(i+1, "overtime", a.Overtime)
	}
	return c.errs
}

// ValidateMaterials requires non-negative prices and stock levels.
func ValidateMaterials(materials []model.Material) []ValidationError {
	var c checker
	for i, m := range materials {
		if m.ID == "" {
			c.errs = append(c.errs, ValidationError{Row: i + 1, Field: "id", Description: "must not be empty"})
		}
		c.amount(i+1, "unit_price", m.UnitPrice)
		c.amount(i+1, "quantity", m.Quantity)
		c.amount(i+1, "minimum_stock", m.MinimumStock)
	}
	return c.errs
}

// ValidateMovements requires a material id, an in or out type and a positive
// quantity.
func ValidateMovements(movements []model.StockMovement) []ValidationError {
	var c checker
	for i, m := range movements {
		row := i + 1
		if m.MaterialID == "" {
			c.errs = append(c.errs, ValidationError{Row: row, Field: "material_id", Description: "must not be empty"})
		}
		if m.Type != model.MovementIn && m.Type != model.MovementOut {
			c.errs = append(c.errs, ValidationError{Row: row, Field: "type", Description: fmt.Sprintf("unknown type %q (want in or out)", m.Type)})
		}
		switch {
		case math.IsNaN(m.Quantity) || math.IsInf(m.Quantity, 0):
			c.errs = append(c.errs, ValidationError{Row: row, Field: "quantity", Description: "must be a finite number"})
		case m.Quantity <= 0:
			c.errs = append(c.errs, ValidationError{Row: row, Field: "quantity", Description: fmt.Sprintf("must be greater than zero, got %v", m.Quantity)})
		}
	}
	return c.errs
}
