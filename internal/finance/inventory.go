package finance

import "github.com/kashmir-carpentry/kcbooks/internal/model"

// InventoryValue returns the stock value of all materials.
func InventoryValue(materials []model.Material) float64 {
	var total float64
	for _, m := range materials {
		total += m.Value()
	}
	return total
}

// LowStock returns materials at or below their minimum stock level.
func LowStock(materials []model.Material) []model.Material {
	var low []model.Material
	for _, m := range materials {
		if m.Quantity <= m.MinimumStock {
			low = append(low, m)
		}
	}
	return low
}

// ApplyMovement returns m with the movement's quantity added ("in") or
// subtracted (anything else). Movements for another material, or with a
// non-positive quantity, leave m unchanged.
func ApplyMovement(m model.Material, mv model.StockMovement) model.Material {
	if mv.MaterialID != m.ID || mv.Quantity <= 0 {
		return m
	}
	if mv.Type == model.MovementIn {
		m.Quantity += mv.Quantity
	} else {
		m.Quantity -= mv.Quantity
	}
	return m
}

// ApplyMovements applies every movement to the matching material, in order.
func ApplyMovements(materials []model.Material, movements []model.StockMovement) []model.Material {
	result := make([]model.Material, len(materials))
	copy(result, materials)
	for _, mv := range movements {
		for i := range result {
			result[i] = ApplyMovement(result[i], mv)
		}
	}
	return result
}
