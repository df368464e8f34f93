// Package extract turns an uploaded PDF payload into cleaned plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"cardsmith/internal/textutil"
)

// ErrExtractionFailed is returned when the PDF decoder cannot parse the
// payload (corrupt or non-PDF input).
var ErrExtractionFailed = errors.New("unable to extract text from document")

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Text decodes a PDF from raw bytes, concatenates per-page text with a
// single separating space between pages, and normalizes the result with
// textutil.Clean. An image-only PDF decodes successfully to an empty (or
// near-empty) string; deciding what to do with that is the caller's concern.
func (s *Service) Text(data []byte) (_ string, err error) {
	// The pdf library panics on some malformed inputs instead of
	// returning an error; fold those into the extraction failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrExtractionFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var pages []string
	for num := 1; num <= reader.NumPage(); num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtractionFailed, num, err)
		}
		pages = append(pages, content)
	}

	return textutil.Clean(strings.Join(pages, " ")), nil
}
