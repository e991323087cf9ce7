package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrAmountNotPositive   = errors.New("amount must be greater than 0")
	ErrInvalidType         = errors.New("transaction type must be INCOME or EXPENSE")
	ErrInvalidDate         = errors.New("date must use the 2006-01-02 layout")
)

type TransactionService struct {
	txRepo          *repository.TransactionRepository
	categoryService *CategoryService
	logger          *zap.Logger
}

func NewTransactionService(txRepo *repository.TransactionRepository, categoryService *CategoryService, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo:          txRepo,
		categoryService: categoryService,
		logger:          logger,
	}
}

// AddTransaction validates and stores one transaction. A missing date
// defaults to today; an unknown category id is dropped rather than
// failing the whole transaction.
func (s *TransactionService) AddTransaction(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if !req.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	txType := models.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, ErrInvalidType
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: sanitizeUTF8(description),
		Amount:      req.Amount,
		Date:        date,
		Type:        txType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.CategoryID != "" {
		if categoryID, err := uuid.Parse(req.CategoryID); err == nil {
			if _, err := s.categoryService.GetCategory(ctx, categoryID); err == nil {
				tx.CategoryID = &categoryID
			} else {
				s.logger.Warn("Category not found, proceeding without category",
					zap.String("category_id", req.CategoryID),
				)
			}
		} else {
			s.logger.Warn("Invalid category id, proceeding without category",
				zap.String("category_id", req.CategoryID),
			)
		}
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// AddExtracted stores a transaction produced by the receipt pipeline,
// keeping the link to its source receipt.
func (s *TransactionService) AddExtracted(ctx context.Context, userID uuid.UUID, receiptID uuid.UUID, tx *models.Transaction) error {
	now := time.Now()
	tx.ID = uuid.New()
	tx.UserID = userID
	tx.ReceiptID = &receiptID
	tx.CreatedAt = now
	tx.UpdatedAt = now

	return s.txRepo.Create(ctx, tx)
}

func (s *TransactionService) GetTransactions(ctx context.Context, userID uuid.UUID, page, size int, start, end *time.Time) (*dto.TransactionListResponse, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}

	transactions, err := s.txRepo.ListByUserID(ctx, userID, size, page*size, start, end)
	if err != nil {
		return nil, err
	}

	total, err := s.txRepo.CountByUserID(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		items[i] = TransactionToResponse(tx)
	}

	return &dto.TransactionListResponse{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
	}, nil
}

// TransactionToResponse maps a stored transaction to its API shape.
func TransactionToResponse(tx *models.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:          tx.ID.String(),
		Description: tx.Description,
		Amount:      tx.Amount,
		Date:        tx.Date.Format("2006-01-02"),
		Type:        string(tx.Type),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID != nil {
		resp.CategoryID = tx.CategoryID.String()
	}
	if tx.ReceiptID != nil {
		resp.ReceiptID = tx.ReceiptID.String()
	}
	return resp
}
