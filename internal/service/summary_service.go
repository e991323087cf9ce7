package service

import (
	"context"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SummaryService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewSummaryService(txRepo *repository.TransactionRepository, logger *zap.Logger) *SummaryService {
	return &SummaryService{
		txRepo: txRepo,
		logger: logger,
	}
}

func (s *SummaryService) GetSummary(ctx context.Context, userID uuid.UUID, username string) (*dto.SummaryResponse, error) {
	totalIncome, err := s.txRepo.SumAmountByType(ctx, userID, models.TypeIncome)
	if err != nil {
		return nil, err
	}

	totalExpense, err := s.txRepo.SumAmountByType(ctx, userID, models.TypeExpense)
	if err != nil {
		return nil, err
	}

	return &dto.SummaryResponse{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
		Username:     username,
	}, nil
}

func (s *SummaryService) GetSummaryByCategory(ctx context.Context, userID uuid.UUID) ([]dto.CategorySummaryResponse, error) {
	rows, err := s.txRepo.SummaryByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]dto.CategorySummaryResponse, len(rows))
	for i, row := range rows {
		results[i] = dto.CategorySummaryResponse{
			CategoryName: row.CategoryName,
			TotalAmount:  row.TotalAmount,
			Type:         string(row.Type),
		}
	}

	return results, nil
}

// GetDailySummary merges per-(day, type) buckets into one row per day,
// in first-seen date order.
func (s *SummaryService) GetDailySummary(ctx context.Context, userID uuid.UUID) ([]dto.DailySummaryResponse, error) {
	rows, err := s.txRepo.DailySummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	return MergeDailyRows(rows), nil
}

// MergeDailyRows folds (date, type, total) buckets into daily
// income/expense pairs, preserving the order dates first appear in.
func MergeDailyRows(rows []repository.DailySummaryRow) []dto.DailySummaryResponse {
	index := make(map[string]int)
	var results []dto.DailySummaryResponse

	for _, row := range rows {
		day := row.Date.Format("2006-01-02")
		i, ok := index[day]
		if !ok {
			i = len(results)
			index[day] = i
			results = append(results, dto.DailySummaryResponse{
				Date:         day,
				TotalIncome:  decimal.Zero,
				TotalExpense: decimal.Zero,
			})
		}

		if row.Type == models.TypeIncome {
			results[i].TotalIncome = row.TotalAmount
		} else {
			results[i].TotalExpense = row.TotalAmount
		}
	}

	return results
}
