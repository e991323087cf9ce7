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

var ErrCategoryNameRequired = errors.New("category name is required")

// Default category names assigned to receipt transactions that carry no
// category of their own.
const (
	defaultExpenseCategory = "General"
	defaultIncomeCategory  = "Other Income"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	now := time.Now()
	category := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return categoryToResponse(category), nil
}

func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]*dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = categoryToResponse(c)
	}

	return responses, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// DefaultForType finds the user's default category for a transaction type,
// creating it on first use.
func (s *CategoryService) DefaultForType(ctx context.Context, userID uuid.UUID, txType models.TransactionType) (*models.Category, error) {
	name := defaultExpenseCategory
	if txType == models.TypeIncome {
		name = defaultIncomeCategory
	}

	category, err := s.categoryRepo.GetByName(ctx, userID, name)
	if err == nil {
		return category, nil
	}

	now := time.Now()
	category = &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Default category created",
		zap.String("user_id", userID.String()),
		zap.String("name", name),
	)

	return category, nil
}

func categoryToResponse(c *models.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
