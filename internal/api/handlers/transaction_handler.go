package handlers

import (
	"errors"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService      *service.TransactionService
	receiptService *service.ReceiptService
	logger         *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, receiptService *service.ReceiptService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService:      txService,
		receiptService: receiptService,
		logger:         logger,
	}
}

// AddTransaction godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) AddTransaction(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tx, err := h.txService.AddTransaction(c.Context(), userID, &req)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to add transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add transaction",
		})
	}

	return c.JSON(service.TransactionToResponse(tx))
}

// GetTransactions godoc
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param page query int false "Page" default(0)
// @Param size query int false "Page size" default(10)
// @Param start_date query string false "Range start (2006-01-02)"
// @Param end_date query string false "Range end (2006-01-02)"
// @Security Bearer
// @Success 200 {object} dto.TransactionListResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	var start, end *time.Time
	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start_date must use the 2006-01-02 layout",
			})
		}
		start = &parsed
	}
	if e := c.Query("end_date"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "end_date must use the 2006-01-02 layout",
			})
		}
		end = &parsed
	}

	resp, err := h.txService.GetTransactions(c.Context(), userID, page, size, start, end)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}

	return c.JSON(resp)
}

// UploadReceipt godoc
// @Summary Upload a receipt and auto-create transactions
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt file (image or PDF)"
// @Security Bearer
// @Success 200 {object} dto.ReceiptUploadResponse
// @Failure 400 {object} dto.ReceiptUploadResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions/upload-receipt [post]
func (h *TransactionHandler) UploadReceipt(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	resp, err := h.receiptService.UploadReceipt(c.Context(), userID, src, file.Filename, contentType)
	if err != nil {
		h.logger.Error("Failed to process receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process receipt",
		})
	}

	if !resp.Success {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	return c.JSON(resp)
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrDescriptionRequired) ||
		errors.Is(err, service.ErrAmountNotPositive) ||
		errors.Is(err, service.ErrInvalidType) ||
		errors.Is(err, service.ErrInvalidDate)
}
