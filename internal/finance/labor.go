package finance

import (
	"sort"

	"github.com/kashmir-carpentry/kcbooks/internal/model"
)

// OvertimeMultiplier scales the hourly rate for overtime hours.
const OvertimeMultiplier = 1.5

const monthFormat = "2006-01"

// DailySalary returns the pay for one attendance record.
func DailySalary(w model.Worker, a model.Attendance) model.Salary {
	regular := a.HoursWorked * w.HourlyRate
	overtime := a.Overtime * (w.HourlyRate * OvertimeMultiplier)
	return model.Salary{
		WorkerID:       w.ID,
		Month:          a.Date.Format(monthFormat),
		RegularHours:   a.HoursWorked,
		OvertimeHours:  a.Overtime,
		RegularAmount:  regular,
		OvertimeAmount: overtime,
		TotalAmount:    regular + overtime,
	}
}

// MonthlySalaries sums a worker's daily salaries per month, ordered by month.
// Records belonging to other workers are skipped; an empty WorkerID on a
// record counts as belonging to w.
func MonthlySalaries(w model.Worker, records []model.Attendance) []model.Salary {
	byMonth := make(map[string]*model.Salary)
	for _, a := range records {
		if a.WorkerID != "" && a.WorkerID != w.ID {
			continue
		}
		day := DailySalary(w, a)
		s, ok := byMonth[day.Month]
		if !ok {
			s = &model.Salary{WorkerID: w.ID, Month: day.Month}
			byMonth[day.Month] = s
		}
		s.RegularHours += day.RegularHours
		s.OvertimeHours += day.OvertimeHours
		s.RegularAmount += day.RegularAmount
		s.OvertimeAmount += day.OvertimeAmount
		s.TotalAmount += day.TotalAmount
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	result := make([]model.Salary, len(months))
	for i, m := range months {
		result[i] = *byMonth[m]
	}
	return result
}
