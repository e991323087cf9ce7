package dto

import "github.com/shopspring/decimal"

type SummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
	Username     string          `json:"username"`
}

type CategorySummaryResponse struct {
	CategoryName string          `json:"category_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Type         string          `json:"type"` // INCOME or EXPENSE
}

type DailySummaryResponse struct {
	Date         string          `json:"date"` // 2006-01-02
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}
