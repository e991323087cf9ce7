package models

import (
	"time"

	"github.com/google/uuid"
)

// Receipt is the record of one uploaded receipt file. The extracted
// transactions reference it through Transaction.ReceiptID.
type Receipt struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	FileName         string    `db:"file_name"`
	FileSize         int64     `db:"file_size"`
	ContentType      string    `db:"content_type"`
	FileURL          string    `db:"file_url"`
	TransactionCount int       `db:"transaction_count"`
	CreatedAt        time.Time `db:"created_at"`
}
