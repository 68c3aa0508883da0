package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineItemAmount(t *testing.T) {
	tests := []struct {
		qty, price float64
		want       float64
	}{
		{2, 150, 300},
		{0, 99.5, 0},
		{1.5, 40, 60},
		{-1, 10, -10},
	}
	for _, tt := range tests {
		item := LineItem{Quantity: tt.qty, UnitPrice: tt.price}
		assert.InDelta(t, tt.want, item.Amount(), 1e-9, "Amount(%v × %v)", tt.qty, tt.price)
	}
}

func TestLaborCostAmount(t *testing.T) {
	l := LaborCost{Name: "Imran", Role: "Carpenter", Hours: 8, Rate: 45}
	assert.InDelta(t, 360.0, l.Amount(), 1e-9)
}

func TestMaterialValue(t *testing.T) {
	m := Material{Name: "Plywood 18mm", Quantity: 12, UnitPrice: 85}
	assert.InDelta(t, 1020.0, m.Value(), 1e-9)
}
