package service

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func TestMergeDailyRowsPairsIncomeAndExpense(t *testing.T) {
	rows := []repository.DailySummaryRow{
		{Date: day(t, "2024-03-01"), Type: models.TypeExpense, TotalAmount: decimal.RequireFromString("25.50")},
		{Date: day(t, "2024-03-01"), Type: models.TypeIncome, TotalAmount: decimal.RequireFromString("100.00")},
		{Date: day(t, "2024-03-02"), Type: models.TypeExpense, TotalAmount: decimal.RequireFromString("10.00")},
	}

	merged := MergeDailyRows(rows)
	require.Len(t, merged, 2)

	assert.Equal(t, "2024-03-01", merged[0].Date)
	assert.True(t, merged[0].TotalIncome.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, merged[0].TotalExpense.Equal(decimal.RequireFromString("25.50")))

	assert.Equal(t, "2024-03-02", merged[1].Date)
	assert.True(t, merged[1].TotalIncome.IsZero())
	assert.True(t, merged[1].TotalExpense.Equal(decimal.RequireFromString("10.00")))
}

func TestMergeDailyRowsPreservesDateOrder(t *testing.T) {
	rows := []repository.DailySummaryRow{
		{Date: day(t, "2024-01-05"), Type: models.TypeExpense, TotalAmount: decimal.NewFromInt(1)},
		{Date: day(t, "2024-01-06"), Type: models.TypeExpense, TotalAmount: decimal.NewFromInt(2)},
		{Date: day(t, "2024-01-05"), Type: models.TypeIncome, TotalAmount: decimal.NewFromInt(3)},
		{Date: day(t, "2024-01-07"), Type: models.TypeIncome, TotalAmount: decimal.NewFromInt(4)},
	}

	merged := MergeDailyRows(rows)
	require.Len(t, merged, 3)
	assert.Equal(t, "2024-01-05", merged[0].Date)
	assert.Equal(t, "2024-01-06", merged[1].Date)
	assert.Equal(t, "2024-01-07", merged[2].Date)
}

func TestMergeDailyRowsEmpty(t *testing.T) {
	assert.Empty(t, MergeDailyRows(nil))
}
