package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrUnsupportedFileType is returned before any text acquisition when the
// declared content type is neither an image nor a PDF.
var ErrUnsupportedFileType = errors.New("unsupported file type: only images and PDFs are supported")

// TextExtractor turns raw file bytes into text. Implementations are the
// OCR engine for images and the PDF text extractor.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// Candidate is a tentative, not-yet-persisted transaction extracted from
// one receipt. CategoryID is always nil here; assigning a category is the
// upload service's job.
type Candidate struct {
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Type        models.TransactionType
	CategoryID  *uuid.UUID
}

// Parser is the receipt extraction pipeline: content-type dispatch to a
// text extractor, then pattern-based field extraction over the resulting
// text. Stateless apart from the shared compiled patterns, so one Parser
// serves concurrent requests.
type Parser struct {
	imageExtractor TextExtractor
	pdfExtractor   TextExtractor
	logger         *zap.Logger

	// now supplies the reference date used when no date can be parsed.
	// Swappable in tests to keep extraction deterministic.
	now func() time.Time
}

func NewParser(imageExtractor, pdfExtractor TextExtractor, logger *zap.Logger) *Parser {
	return &Parser{
		imageExtractor: imageExtractor,
		pdfExtractor:   pdfExtractor,
		logger:         logger,
		now:            time.Now,
	}
}

// ParseReceipt extracts at most one transaction candidate from the file.
// An empty slice with a nil error means no transaction was detected; the
// only error outcomes are an unsupported content type and a failing text
// extractor.
func (p *Parser) ParseReceipt(ctx context.Context, data []byte, contentType string) ([]Candidate, error) {
	var (
		text string
		err  error
	)

	switch {
	case strings.HasPrefix(contentType, "image/"):
		text, err = p.imageExtractor.ExtractText(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from image: %w", err)
		}
	case contentType == "application/pdf":
		text, err = p.pdfExtractor.ExtractText(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from PDF: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w (got %q)", ErrUnsupportedFileType, contentType)
	}

	p.logger.Debug("Receipt text acquired",
		zap.String("content_type", contentType),
		zap.Int("text_length", len(text)),
	)

	return p.extract(text), nil
}

// extract builds zero or one candidate from receipt text. The amount is
// the gate: without a positive amount there is nothing worth recording.
func (p *Parser) extract(text string) []Candidate {
	amount := ExtractAmount(text)
	if !amount.IsPositive() {
		return nil
	}

	candidate := Candidate{
		Description: ExtractDescription(text),
		Amount:      amount,
		Date:        ExtractDate(text, p.now()),
		Type:        models.TypeExpense, // receipts record spending
	}

	p.logger.Info("Transaction candidate extracted",
		zap.String("description", candidate.Description),
		zap.String("amount", candidate.Amount.StringFixed(2)),
		zap.Time("date", candidate.Date),
	)

	return []Candidate{candidate}
}
