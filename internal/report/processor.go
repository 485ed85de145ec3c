package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/rs/zerolog"
)

var (
	ErrEmptyImage       = errors.New("image is empty")
	ErrNoText           = errors.New("no text found in image")
	ErrUnsupportedImage = errors.New("unsupported image format")
	ErrOCRDisabled      = errors.New("OCR engine is not configured")
)

// OCR extracts text from a grayscale PNG.
type OCR interface {
	ExtractText(ctx context.Context, png []byte) (string, error)
}

// Processor keeps uploaded images in memory only.
type Processor struct {
	ocr        OCR
	simplifier *Simplifier
	logger     *zerolog.Logger
}

func NewProcessor(ocr OCR, simplifier *Simplifier, logger *zerolog.Logger) *Processor {
	return &Processor{
		ocr:        ocr,
		simplifier: simplifier,
		logger:     logger,
	}
}

func (p *Processor) Simplify(text string) models.SimplifiedReport {
	return p.simplifier.Simplify(text)
}

// ExtractText decodes a PNG or JPEG, converts it to grayscale and sends it
// to the OCR engine.
func (p *Processor) ExtractText(ctx context.Context, raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", ErrEmptyImage
	}
	if p.ocr == nil {
		return "", ErrOCRDisabled
	}

	gray, err := Grayscale(raw)
	if err != nil {
		return "", err
	}

	text, err := p.ocr.ExtractText(ctx, gray)
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	text = strings.TrimSpace(text)
	p.logger.Debug().Int("imageBytes", len(raw)).Int("textLength", len(text)).Msg("OCR complete")
	return text, nil
}

// Process runs OCR and then annotates the extracted text.
func (p *Processor) Process(ctx context.Context, raw []byte) (models.SimplifiedReport, error) {
	text, err := p.ExtractText(ctx, raw)
	if err != nil {
		return models.SimplifiedReport{}, err
	}
	if text == "" {
		return models.SimplifiedReport{}, ErrNoText
	}
	return p.simplifier.Simplify(text), nil
}

// Grayscale re-encodes an image as an 8-bit grayscale PNG.
func Grayscale(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyImage
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w: %w", ErrUnsupportedImage, err)
	}

	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("failed to encode grayscale image: %w", err)
	}
	return buf.Bytes(), nil
}
