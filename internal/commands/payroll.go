package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kashmir-carpentry/kcbooks/internal/finance"
	"github.com/kashmir-carpentry/kcbooks/internal/model"
	"github.com/kashmir-carpentry/kcbooks/internal/sheet"
)

func newPayrollCommand(opts *rootOptions) *cobra.Command {
	var worker model.Worker
	var attendancePath string

	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Monthly salary for a worker from a timesheet (overtime at 1.5×)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if worker.HourlyRate < 0 {
				return fmt.Errorf("--rate must not be negative, got %v", worker.HourlyRate)
			}

			records, err := sheet.ReadAttendanceFile(attendancePath)
			if err != nil {
				return err
			}
			if err := sheet.Join(sheet.ValidateAttendance(records)); err != nil {
				return fmt.Errorf("%s: %w", attendancePath, err)
			}

			salaries := finance.MonthlySalaries(worker, records)
			opts.log.Debug("computed salaries",
				zap.String("worker", worker.ID),
				zap.Int("records", len(records)),
				zap.Int("months", len(salaries)))

			m := opts.money
			var rows []row
			for _, s := range salaries {
				rows = append(rows,
					row{s.Month, ""},
					row{fmt.Sprintf("  Regular (%gh):", s.RegularHours), m.Format(s.RegularAmount)},
					row{fmt.Sprintf("  Overtime (%gh):", s.OvertimeHours), m.Format(s.OvertimeAmount)},
					row{"  Total:", m.Format(s.TotalAmount)},
				)
			}
			return opts.emit(cmd.OutOrStdout(), salaries, rows)
		},
	}

	cmd.Flags().StringVar(&worker.ID, "worker", "", "worker ID; rows for other workers are skipped")
	cmd.Flags().Float64Var(&worker.HourlyRate, "rate", 0, "hourly rate")
	cmd.Flags().StringVar(&attendancePath, "attendance", "", "attendance CSV sheet (required)")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("attendance")

	return cmd
}
