package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kashmir-carpentry/kcbooks/internal/config"
	"github.com/kashmir-carpentry/kcbooks/internal/model"
	"github.com/kashmir-carpentry/kcbooks/internal/sheet"
)

// workbookDirs are created by init, one per kind of input sheet.
var workbookDirs = []string{
	"invoices",
	"quotations",
	"lpo",
	"projects",
	"labor",
	"inventory",
}

func newInitCommand(opts *rootOptions) *cobra.Command {
	var name string
	var trn string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a new kcbooks workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(opts, absDir, name, trn); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized kcbooks workbook at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&trn, "trn", "", "VAT tax registration number")

	return cmd
}

func runInit(opts *rootOptions, dir, name, trn string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	for _, d := range workbookDirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	cfg.Business.TRN = trn
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Starter line-item sheet so `kcbooks invoice` has something to read.
	f, err := os.Create(filepath.Join(dir, "invoices", "items.csv"))
	if err != nil {
		return fmt.Errorf("creating items sheet: %w", err)
	}

	sample := []model.LineItem{
		{Code: "001", Description: "Supply and install kitchen cabinets", Quantity: 1, UnitPrice: 0},
	}
	if err := sheet.WriteItems(f, sample); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing items sheet: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing items sheet: %w", err)
	}

	opts.log.Info("initialized workbook", zap.String("dir", dir), zap.String("business", name))
	return nil
}
