package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kashmir-carpentry/kcbooks/internal/model"
)

func TestProjectProfitLoss_Loss(t *testing.T) {
	got := ProjectProfitLoss(50000, 60000)

	assert.False(t, got.IsProfit)
	assert.InDelta(t, 10000.0, got.Profit, eps, "profit is reported as a magnitude")
	assert.InDelta(t, 20.0, got.ProfitMargin, eps)
	assert.Zero(t, got.CorporateTax)
	assert.InDelta(t, -10000.0, got.NetProfit, eps, "net profit keeps its sign")
}

func TestProjectProfitLoss_ProfitAboveThreshold(t *testing.T) {
	got := ProjectProfitLoss(1000000, 500000)

	assert.True(t, got.IsProfit)
	assert.InDelta(t, 500000.0, got.Profit, eps)
	assert.InDelta(t, 50.0, got.ProfitMargin, eps)
	assert.InDelta(t, 11250.0, got.CorporateTax, 1e-6)
	assert.InDelta(t, 488750.0, got.NetProfit, 1e-6)
}

func TestProjectProfitLoss_BreakEvenIsProfit(t *testing.T) {
	got := ProjectProfitLoss(1000, 1000)
	assert.True(t, got.IsProfit)
	assert.Zero(t, got.Profit)
}

func TestProjectProfitLoss_ZeroRevenue(t *testing.T) {
	got := ProjectProfitLoss(0, 100)
	assert.True(t, math.IsInf(got.ProfitMargin, 1), "margin = |-100/0 × 100|, got %v", got.ProfitMargin)
	assert.False(t, got.IsProfit)

	got = ProjectProfitLoss(0, 0)
	assert.True(t, math.IsNaN(got.ProfitMargin), "margin = 0/0, got %v", got.ProfitMargin)
	assert.True(t, got.IsProfit)
}

func TestProjectCosts(t *testing.T) {
	expenses := []model.ProjectExpense{
		{Description: "Teak veneer", Category: "materials", Amount: 4200},
		{Description: "Truck rental", Category: "transport", Amount: 800},
	}
	labor := []model.LaborCost{
		{Name: "Imran", Role: "Carpenter", Hours: 40, Rate: 45},
		{Name: "Joseph", Role: "Helper", Hours: 40, Rate: 25},
	}

	got := ProjectCosts(expenses, labor)
	assert.InDelta(t, 5000.0, got.Expenses, eps)
	assert.InDelta(t, 2800.0, got.Labor, eps)
	assert.InDelta(t, 7800.0, got.Total, eps)

	assert.Equal(t, model.ProjectCosts{}, ProjectCosts(nil, nil))
}
