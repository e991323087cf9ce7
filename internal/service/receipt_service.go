package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/extraction"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReceiptService orchestrates one receipt upload: store the file, run the
// extraction pipeline, assign a default category and persist the
// resulting transactions. Extraction failures never surface as server
// errors; they become unsuccessful upload responses.
type ReceiptService struct {
	parser          *extraction.Parser
	receiptRepo     *repository.ReceiptRepository
	txService       *TransactionService
	categoryService *CategoryService
	uploadDir       string
	logger          *zap.Logger
}

func NewReceiptService(
	parser *extraction.Parser,
	receiptRepo *repository.ReceiptRepository,
	txService *TransactionService,
	categoryService *CategoryService,
	uploadDir string,
	logger *zap.Logger,
) *ReceiptService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &ReceiptService{
		parser:          parser,
		receiptRepo:     receiptRepo,
		txService:       txService,
		categoryService: categoryService,
		uploadDir:       uploadDir,
		logger:          logger,
	}
}

func (s *ReceiptService) UploadReceipt(ctx context.Context, userID uuid.UUID, file io.Reader, fileName, contentType string) (*dto.ReceiptUploadResponse, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) == 0 {
		return failure("File is empty", fileName, contentType), nil
	}

	candidates, err := s.parser.ParseReceipt(ctx, data, contentType)
	if err != nil {
		if errors.Is(err, extraction.ErrUnsupportedFileType) {
			return failure("Unsupported file type: only images and PDFs are supported", fileName, contentType), nil
		}
		s.logger.Error("Receipt text extraction failed", zap.Error(err))
		return failure("Failed to process file: "+err.Error(), fileName, contentType), nil
	}

	if len(candidates) == 0 {
		return failure("No transaction details could be extracted from the receipt", fileName, contentType), nil
	}

	receipt, err := s.storeReceipt(ctx, userID, data, fileName, contentType)
	if err != nil {
		return nil, err
	}

	// Each candidate is persisted on its own; one failing save must not
	// discard the others.
	var created []dto.TransactionResponse
	for _, candidate := range candidates {
		tx, err := s.saveCandidate(ctx, userID, receipt.ID, candidate)
		if err != nil {
			s.logger.Warn("Failed to save extracted transaction",
				zap.String("receipt_id", receipt.ID.String()),
				zap.Error(err),
			)
			continue
		}
		created = append(created, TransactionToResponse(tx))
	}

	if err := s.receiptRepo.UpdateTransactionCount(ctx, receipt.ID, len(created)); err != nil {
		s.logger.Warn("Failed to update receipt transaction count", zap.Error(err))
	}

	if len(created) == 0 {
		return failure("Extracted transactions could not be saved", fileName, contentType), nil
	}

	return &dto.ReceiptUploadResponse{
		Success:            true,
		Message:            fmt.Sprintf("Receipt processed successfully. %d transaction(s) created.", len(created)),
		ParsedTransactions: created,
		OriginalFilename:   fileName,
		FileType:           contentType,
	}, nil
}

func (s *ReceiptService) storeReceipt(ctx context.Context, userID uuid.UUID, data []byte, fileName, contentType string) (*models.Receipt, error) {
	receiptID := uuid.New()
	storedName := receiptID.String() + filepath.Ext(fileName)
	filePath := filepath.Join(s.uploadDir, storedName)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	receipt := &models.Receipt{
		ID:          receiptID,
		UserID:      userID,
		FileName:    fileName,
		FileSize:    int64(len(data)),
		ContentType: contentType,
		FileURL:     "/uploads/" + storedName,
		CreatedAt:   time.Now(),
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to create receipt record: %w", err)
	}

	return receipt, nil
}

func (s *ReceiptService) saveCandidate(ctx context.Context, userID, receiptID uuid.UUID, candidate extraction.Candidate) (*models.Transaction, error) {
	tx := &models.Transaction{
		Description: sanitizeUTF8(candidate.Description),
		Amount:      candidate.Amount,
		Date:        candidate.Date,
		Type:        candidate.Type,
		CategoryID:  candidate.CategoryID,
	}

	if tx.CategoryID == nil {
		category, err := s.categoryService.DefaultForType(ctx, userID, tx.Type)
		if err != nil {
			s.logger.Warn("Failed to resolve default category, proceeding without one", zap.Error(err))
		} else {
			tx.CategoryID = &category.ID
		}
	}

	if err := s.txService.AddExtracted(ctx, userID, receiptID, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// ListReceipts returns the user's upload history, newest first.
func (s *ReceiptService) ListReceipts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Receipt, error) {
	return s.receiptRepo.ListByUserID(ctx, userID, limit, offset)
}

func failure(message, fileName, contentType string) *dto.ReceiptUploadResponse {
	return &dto.ReceiptUploadResponse{
		Success:          false,
		ErrorMessage:     message,
		OriginalFilename: fileName,
		FileType:         contentType,
	}
}
