package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kashmir-carpentry/kcbooks/internal/finance"
	"github.com/kashmir-carpentry/kcbooks/internal/model"
	"github.com/kashmir-carpentry/kcbooks/internal/sheet"
)

type inventoryResult struct {
	Materials  int              `yaml:"materials"`
	TotalValue float64          `yaml:"total_value"`
	LowStock   []lowStockResult `yaml:"low_stock"`
}

type lowStockResult struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Quantity     float64 `yaml:"quantity"`
	MinimumStock float64 `yaml:"minimum_stock"`
}

func newInventoryCommand(opts *rootOptions) *cobra.Command {
	var materialsPath, movementsPath string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Stock value and low-stock materials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			materials, err := sheet.ReadMaterialsFile(materialsPath)
			if err != nil {
				return err
			}
			if err := sheet.Join(sheet.ValidateMaterials(materials)); err != nil {
				return fmt.Errorf("%s: %w", materialsPath, err)
			}

			if movementsPath != "" {
				movements, err := sheet.ReadMovementsFile(movementsPath)
				if err != nil {
					return err
				}
				if err := sheet.Join(sheet.ValidateMovements(movements)); err != nil {
					return fmt.Errorf("%s: %w", movementsPath, err)
				}
				materials = finance.ApplyMovements(materials, movements)
				opts.log.Debug("applied stock movements", zap.Int("movements", len(movements)))
			}

			res := inventoryResult{
				Materials:  len(materials),
				TotalValue: finance.InventoryValue(materials),
				LowStock:   lowStock(finance.LowStock(materials)),
			}
			opts.log.Debug("valued inventory",
				zap.Int("materials", res.Materials),
				zap.Float64("total_value", res.TotalValue),
				zap.Int("low_stock", len(res.LowStock)))

			rows := []row{
				{"Total Materials:", fmt.Sprint(res.Materials)},
				{"Total Value:", opts.money.Format(res.TotalValue)},
				{"Low Stock Items:", fmt.Sprint(len(res.LowStock))},
			}
			for _, l := range res.LowStock {
				rows = append(rows, row{"  " + l.Name, fmt.Sprintf("%g (min %g)", l.Quantity, l.MinimumStock)})
			}
			return opts.emit(cmd.OutOrStdout(), res, rows)
		},
	}

	cmd.Flags().StringVar(&materialsPath, "materials", "", "materials CSV sheet (required)")
	cmd.Flags().StringVar(&movementsPath, "movements", "", "stock movement CSV sheet applied before valuing")
	_ = cmd.MarkFlagRequired("materials")

	return cmd
}

func lowStock(materials []model.Material) []lowStockResult {
	out := make([]lowStockResult, len(materials))
	for i, m := range materials {
		out[i] = lowStockResult{ID: m.ID, Name: m.Name, Quantity: m.Quantity, MinimumStock: m.MinimumStock}
	}
	return out
}
