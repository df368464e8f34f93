package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardsmith/internal/extract"
)

func TestTextRejectsNonPDFPayload(t *testing.T) {
	svc := extract.NewService()

	_, err := svc.Text([]byte("this is definitely not a pdf document"))
	assert.ErrorIs(t, err, extract.ErrExtractionFailed)
}

func TestTextRejectsEmptyPayload(t *testing.T) {
	svc := extract.NewService()

	_, err := svc.Text(nil)
	assert.ErrorIs(t, err, extract.ErrExtractionFailed)
}

func TestTextRejectsTruncatedPDF(t *testing.T) {
	svc := extract.NewService()

	// A valid header with nothing behind it: the decoder must fail rather
	// than return partial content.
	_, err := svc.Text([]byte("%PDF-1.4\n"))
	assert.ErrorIs(t, err, extract.ErrExtractionFailed)
}
