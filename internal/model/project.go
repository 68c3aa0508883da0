package model

import "time"

// ProjectExpense is a non-labor cost booked against a project.
type ProjectExpense struct {
	Description string
	Category    string
	Amount      float64
}

// LaborCost is time spent on a project by one person.
type LaborCost struct {
	Name  string
	Role  string
	Hours float64
	Rate  float64
}

// Amount returns hours × rate.
func (l LaborCost) Amount() float64 {
	return l.Hours * l.Rate
}

// ProjectCosts splits a project's total cost into expenses and labor.
type ProjectCosts struct {
	Expenses float64 `yaml:"expenses"`
	Labor    float64 `yaml:"labor"`
	Total    float64 `yaml:"total"`
}

// Worker is a member of the labor pool.
type Worker struct {
	ID         string
	Name       string
	Role       string
	HourlyRate float64
}

// Attendance is one day of work.
type Attendance struct {
	WorkerID    string
	Date        time.Time
	HoursWorked float64
	Overtime    float64
}

// Salary is the pay owed for some regular and overtime hours in a month.
type Salary struct {
	WorkerID       string  `yaml:"worker_id"`
	Month          string  `yaml:"month"` // "YYYY-MM"
	RegularHours   float64 `yaml:"regular_hours"`
	OvertimeHours  float64 `yaml:"overtime_hours"`
	RegularAmount  float64 `yaml:"regular_amount"`
	OvertimeAmount float64 `yaml:"overtime_amount"`
	TotalAmount    float64 `yaml:"total_amount"`
}

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// Material is an inventory line.
type Material struct {
	ID           string
	Name         string
	Unit         string
	UnitPrice    float64
	Quantity     float64
	MinimumStock float64
}

// Value returns quantity × unit price.
func (m Material) Value() float64 {
	return m.Quantity * m.UnitPrice
}

// StockMovement records material received or consumed.
type StockMovement struct {
	MaterialID string
	Type       MovementType
	Quantity   float64
	Date       time.Time
	Notes      string
}
