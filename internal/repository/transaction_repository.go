package repository

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// CategorySummaryRow is one (category, type) aggregation bucket.
type CategorySummaryRow struct {
	CategoryName string
	TotalAmount  decimal.Decimal
	Type         models.TransactionType
}

// DailySummaryRow is one (date, type) aggregation bucket, ordered by date.
type DailySummaryRow struct {
	Date        time.Time
	Type        models.TransactionType
	TotalAmount decimal.Decimal
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("id", "user_id", "receipt_id", "category_id", "description", "amount", "date", "type", "created_at", "updated_at").
		Values(tx.ID, tx.UserID, tx.ReceiptID, tx.CategoryID, tx.Description, tx.Amount, tx.Date, tx.Type, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUserID returns one page of the user's transactions, newest first,
// optionally restricted to a [start, end] date range.
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int, start, end *time.Time) ([]*models.Transaction, error) {
	query := squirrel.Select("id", "user_id", "receipt_id", "category_id", "description", "amount", "date", "type", "created_at", "updated_at").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	if start != nil && end != nil {
		query = query.Where(squirrel.GtOrEq{"date": *start}).Where(squirrel.LtOrEq{"date": *end})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.ReceiptID, &tx.CategoryID, &tx.Description, &tx.Amount, &tx.Date, &tx.Type, &tx.CreatedAt, &tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

func (r *TransactionRepository) CountByUserID(ctx context.Context, userID uuid.UUID, start, end *time.Time) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	if start != nil && end != nil {
		query = query.Where(squirrel.GtOrEq{"date": *start}).Where(squirrel.LtOrEq{"date": *end})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// SumAmountByType returns the user's total for one transaction type.
// Zero when the user has no transactions of that type.
func (r *TransactionRepository) SumAmountByType(ctx context.Context, userID uuid.UUID, txType models.TransactionType) (decimal.Decimal, error) {
	query := squirrel.Select("COALESCE(SUM(amount), 0)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID, "type": txType}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// SummaryByCategory aggregates the user's transactions per category and
// type. Transactions without a category land in "Uncategorized".
func (r *TransactionRepository) SummaryByCategory(ctx context.Context, userID uuid.UUID) ([]CategorySummaryRow, error) {
	query := squirrel.Select("COALESCE(c.name, 'Uncategorized')", "SUM(t.amount)", "t.type").
		From("transactions t").
		LeftJoin("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.user_id": userID}).
		GroupBy("c.name", "t.type").
		OrderBy("1 ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []CategorySummaryRow
	for rows.Next() {
		var row CategorySummaryRow
		if err := rows.Scan(&row.CategoryName, &row.TotalAmount, &row.Type); err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// DailySummary aggregates the user's transactions per day and type,
// oldest day first.
func (r *TransactionRepository) DailySummary(ctx context.Context, userID uuid.UUID) ([]DailySummaryRow, error) {
	query := squirrel.Select("date", "type", "SUM(amount)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("date", "type").
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []DailySummaryRow
	for rows.Next() {
		var row DailySummaryRow
		if err := rows.Scan(&row.Date, &row.Type, &row.TotalAmount); err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
