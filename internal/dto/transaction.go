package dto

import "github.com/shopspring/decimal"

// TransactionRequest creates one transaction. Date uses the 2006-01-02
// layout; when empty the current date is used. CategoryID is optional.
type TransactionRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Date        string          `json:"date,omitempty"`
	Type        string          `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	CategoryID  string          `json:"category_id,omitempty"`
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	CategoryID  string          `json:"category_id,omitempty"`
	ReceiptID   string          `json:"receipt_id,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Page       int                   `json:"page"`
	Size       int                   `json:"size"`
	TotalItems int64                 `json:"total_items"`
}
