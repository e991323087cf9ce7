package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubExtractor struct {
	text  string
	err   error
	calls int
}

func (s *stubExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	s.calls++
	return s.text, s.err
}

func newTestParser(image, pdf TextExtractor) *Parser {
	p := NewParser(image, pdf, zap.NewNop())
	p.now = func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return p
}

const receiptText = "ACME STORE\n03/15/2024\nSubtotal $40.00\nTOTAL: $45.67\n"

func TestParseReceipt_Image(t *testing.T) {
	image := &stubExtractor{text: receiptText}
	pdf := &stubExtractor{}
	p := newTestParser(image, pdf)

	candidates, err := p.ParseReceipt(context.Background(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 1, image.calls)
	assert.Equal(t, 0, pdf.calls)

	c := candidates[0]
	assert.Equal(t, "ACME STORE", c.Description)
	assert.Equal(t, "45.67", c.Amount.StringFixed(2))
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), c.Date)
	assert.Equal(t, models.TypeExpense, c.Type)
	assert.Nil(t, c.CategoryID)
}

func TestParseReceipt_PDF(t *testing.T) {
	image := &stubExtractor{}
	pdf := &stubExtractor{text: receiptText}
	p := newTestParser(image, pdf)

	candidates, err := p.ParseReceipt(context.Background(), []byte("%PDF"), "application/pdf")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 0, image.calls)
	assert.Equal(t, 1, pdf.calls)
}

func TestParseReceipt_UnsupportedContentType(t *testing.T) {
	image := &stubExtractor{text: receiptText}
	pdf := &stubExtractor{text: receiptText}
	p := newTestParser(image, pdf)

	candidates, err := p.ParseReceipt(context.Background(), []byte("hello"), "text/plain")
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
	assert.Nil(t, candidates)

	// Rejected before any text acquisition was attempted.
	assert.Equal(t, 0, image.calls)
	assert.Equal(t, 0, pdf.calls)
}

func TestParseReceipt_ExtractorFailureWrapped(t *testing.T) {
	ocrErr := errors.New("tesseract exploded")
	p := newTestParser(&stubExtractor{err: ocrErr}, &stubExtractor{})

	_, err := p.ParseReceipt(context.Background(), []byte("img"), "image/jpeg")
	assert.ErrorIs(t, err, ocrErr)
}

func TestParseReceipt_NoAmountMeansNoCandidate(t *testing.T) {
	p := newTestParser(&stubExtractor{text: "just words, nothing to charge"}, &stubExtractor{})

	candidates, err := p.ParseReceipt(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestParseReceipt_DateDefaultsToReferenceDate(t *testing.T) {
	p := newTestParser(&stubExtractor{text: "CORNER CAFE\nTOTAL: $9.99"}, &stubExtractor{})

	candidates, err := p.ParseReceipt(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), candidates[0].Date)
}

func TestParseReceipt_Idempotent(t *testing.T) {
	p := newTestParser(&stubExtractor{text: receiptText}, &stubExtractor{})

	first, err := p.ParseReceipt(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	second, err := p.ParseReceipt(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Description, second[0].Description)
	assert.True(t, first[0].Amount.Equal(second[0].Amount))
	assert.Equal(t, first[0].Date, second[0].Date)
}

func TestParseReceipt_AtMostOneCandidate(t *testing.T) {
	// Many amounts and dates still aggregate into a single candidate.
	text := "MEGA MARKET\n01/05/2024\nITEM 3.50\nITEM 7.25\n02/06/2024\nTOTAL: 10.75"
	p := newTestParser(&stubExtractor{text: text}, &stubExtractor{})

	candidates, err := p.ParseReceipt(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}
