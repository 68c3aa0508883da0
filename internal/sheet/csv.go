// Package sheet reads the CSV input sheets that feed the calculation engine
// and validates them the way the entry forms would.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kashmir-carpentry/kcbooks/internal/model"
)

// Headers for each sheet kind.
const (
	ItemsHeader      = "code,description,quantity,unit_price"
	ExpensesHeader   = "description,category,amount"
	LaborHeader      = "name,role,hours,rate"
	AttendanceHeader = "worker_id,date,hours_worked,overtime"
	MaterialsHeader  = "id,name,unit,unit_price,quantity,minimum_stock"
	MovementsHeader  = "material_id,type,quantity,date,notes"
)

const dateFormat = "2006-01-02"

const numItemFields = 4

// readRecords reads a CSV whose first row must match header and returns the
// data rows. Each row must have exactly as many fields as header.
func readRecords(r io.Reader, header, kind string) ([][]string, error) {
	want := strings.Split(header, ",")
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(want)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", kind, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !headerMatches(records[0], want) {
		return nil, fmt.Errorf("%s CSV: unexpected header %q (want %q)", kind, strings.Join(records[0], ","), header)
	}
	if len(records) == 1 {
		return nil, nil
	}
	return records[1:], nil
}

// headerMatches compares column names case-insensitively, ignoring a
// leading byte-order mark.
func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		col := strings.TrimSpace(got[i])
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		if strings.ToLower(col) != want[i] {
			return false
		}
	}
	return true
}

// readFile opens path and hands it to read.
func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// parseNumber parses a decimal column. Empty means zero.
func parseNumber(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return d.InexactFloat64(), nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// ReadItems reads a line-item sheet (invoices, quotations, purchase orders).
func ReadItems(r io.Reader) ([]model.LineItem, error) {
	records, err := readRecords(r, ItemsHeader, "items")
	if err != nil {
		return nil, err
	}

	var items []model.LineItem
	for i, rec := range records {
		item, err := UnmarshalItem(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ReadItemsFile reads a line-item sheet from disk.
func ReadItemsFile(path string) ([]model.LineItem, error) {
	return readFile(path, ReadItems)
}

// UnmarshalItem converts a CSV row to a LineItem.
func UnmarshalItem(record []string) (model.LineItem, error) {
	if len(record) != numItemFields {
		return model.LineItem{}, fmt.Errorf("expected %d fields, got %d", numItemFields, len(record))
	}
	qty, err := parseNumber("quantity", record[2])
	if err != nil {
		return model.LineItem{}, err
	}
	price, err := parseNumber("unit_price", record[3])
	if err != nil {
		return model.LineItem{}, err
	}
	return model.LineItem{
		Code:        record[0],
		Description: record[1],
		Quantity:    qty,
		UnitPrice:   price,
	}, nil
}

// WriteItems writes a line-item sheet, including the header.
func WriteItems(w io.Writer, items []model.LineItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(ItemsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, item := range items {
		row := []string{
			item.Code,
			item.Description,
			decimal.NewFromFloat(item.Quantity).String(),
			decimal.NewFromFloat(item.UnitPrice).StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadExpenses reads a project expense sheet.
func ReadExpenses(r io.Reader) ([]model.ProjectExpense, error) {
	records, err := readRecords(r, ExpensesHeader, "expenses")
	if err != nil {
		return nil, err
	}

	var expenses []model.ProjectExpense
	for i, rec := range records {
		amount, err := parseNumber("amount", rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		expenses = append(expenses, model.ProjectExpense{
			Description: rec[0],
			Category:    rec[1],
			Amount:      amount,
		})
	}
	return expenses, nil
}

// ReadExpensesFile reads a project expense sheet from disk.
func ReadExpensesFile(path string) ([]model.ProjectExpense, error) {
	return readFile(path, ReadExpenses)
}

// ReadLabor reads a project labor sheet.
func ReadLabor(r io.Reader) ([]model.LaborCost, error) {
	records, err := readRecords(r, LaborHeader, "labor")
	if err != nil {
		return nil, err
	}

	var labor []model.LaborCost
	for i, rec := range records {
		hours, err := parseNumber("hours", rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rate, err := parseNumber("rate", rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		labor = append(labor, model.LaborCost{
			Name:  rec[0],
			Role:  rec[1],
			Hours: hours,
			Rate:  rate,
		})
	}
	return labor, nil
}

// ReadLaborFile reads a project labor sheet from disk.
func ReadLaborFile(path string) ([]model.LaborCost, error) {
	return readFile(path, ReadLabor)
}

// ReadAttendance reads a timesheet.
func ReadAttendance(r io.Reader) ([]model.Attendance, error) {
	records, err := readRecords(r, AttendanceHeader, "attendance")
	if err != nil {
		return nil, err
	}

	var out []model.Attendance
	for i, rec := range records {
		date, err := parseDate(rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		hours, err := parseNumber("hours_worked", rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		overtime, err := parseNumber("overtime", rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, model.Attendance{
			WorkerID:    rec[0],
			Date:        date,
			HoursWorked: hours,
			Overtime:    overtime,
		})
	}
	return out, nil
}

// ReadAttendanceFile reads a timesheet from disk.
func ReadAttendanceFile(path string) ([]model.Attendance, error) {
	return readFile(path, ReadAttendance)
}

// ReadMaterials reads an inventory sheet.
func ReadMaterials(r io.Reader) ([]model.Material, error) {
	records, err := readRecords(r, MaterialsHeader, "materials")
	if err != nil {
		return nil, err
	}

	var materials []model.Material
	for i, rec := range records {
		m := model.Material{ID: rec[0], Name: rec[1], Unit: rec[2]}
		if m.UnitPrice, err = parseNumber("unit_price", rec[3]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if m.Quantity, err = parseNumber("quantity", rec[4]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if m.MinimumStock, err = parseNumber("minimum_stock", rec[5]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		materials = append(materials, m)
	}
	return materials, nil
}

// ReadMaterialsFile reads an inventory sheet from disk.
func ReadMaterialsFile(path string) ([]model.Material, error) {
	return readFile(path, ReadMaterials)
}

// ReadMovements reads a stock movement sheet.
func ReadMovements(r io.Reader) ([]model.StockMovement, error) {
	records, err := readRecords(r, MovementsHeader, "movements")
	if err != nil {
		return nil, err
	}

	var movements []model.StockMovement
	for i, rec := range records {
		qty, err := parseNumber("quantity", rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		var date time.Time
		if strings.TrimSpace(rec[3]) != "" {
			if date, err = parseDate(rec[3]); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+2, err)
			}
		}
		movements = append(movements, model.StockMovement{
			MaterialID: rec[0],
			Type:       model.MovementType(strings.ToLower(strings.TrimSpace(rec[1]))),
			Quantity:   qty,
			Date:       date,
			Notes:      rec[4],
		})
	}
	return movements, nil
}

// ReadMovementsFile reads a stock movement sheet from disk.
func ReadMovementsFile(path string) ([]model.StockMovement, error) {
	return readFile(path, ReadMovements)
}
