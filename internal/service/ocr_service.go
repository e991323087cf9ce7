package service

import (
	"context"
	"fmt"
	"strings"

	"fintrack/pkg/config"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

// OCRService extracts text from receipt images with a local tesseract
// engine. It implements extraction.TextExtractor.
type OCRService struct {
	cfg    *config.OCRConfig
	logger *zap.Logger
}

func NewOCRService(cfg *config.OCRConfig, logger *zap.Logger) *OCRService {
	return &OCRService{
		cfg:    cfg,
		logger: logger,
	}
}

// ExtractText runs OCR over image bytes. A tesseract client is not safe
// for concurrent use, so each call gets its own.
func (s *OCRService) ExtractText(ctx context.Context, data []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(s.cfg.Language); err != nil {
		return "", fmt.Errorf("failed to set OCR language: %w", err)
	}
	if s.cfg.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(s.cfg.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata prefix: %w", err)
		}
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	text = strings.TrimSpace(text)
	s.logger.Info("OCR extraction completed",
		zap.String("language", s.cfg.Language),
		zap.Int("text_length", len(text)),
	)

	if text == "" {
		return "", fmt.Errorf("no text extracted from image")
	}

	return text, nil
}

// PDFTextService extracts embedded text from PDF receipts using go-fitz.
// It implements extraction.TextExtractor.
type PDFTextService struct {
	logger *zap.Logger
}

func NewPDFTextService(logger *zap.Logger) *PDFTextService {
	return &PDFTextService{logger: logger}
}

func (s *PDFTextService) ExtractText(ctx context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var textBuilder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}
		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n")
		}
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text found in PDF")
	}

	s.logger.Info("PDF text extracted",
		zap.Int("pages", doc.NumPage()),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}
