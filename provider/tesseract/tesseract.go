//go:build ocr

// Package tesseract implements provider.Engine over the Tesseract OCR
// engine via gosseract. It requires Tesseract to be installed on the
// system and the "ocr" build tag. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package tesseract

import (
	"bytes"
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/SuryanshT01/projectSynapse/model"
	"github.com/SuryanshT01/projectSynapse/provider"
)

// minRasterWidth is the width below which page images are upscaled before
// recognition; Tesseract degrades sharply on low-resolution input.
const minRasterWidth = 1024

// Engine wraps a Tesseract client for word-level recognition.
// The engine should be closed when no longer needed to release resources.
type Engine struct {
	client *gosseract.Client
}

// New creates a new OCR engine
func New() (*Engine, error) {
	return &Engine{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition.
// Multiple languages can be passed (e.g., "eng", "fra"). Default is "eng".
func (e *Engine) SetLanguage(langs ...string) error {
	return e.client.SetLanguage(langs...)
}

// Words recognizes a page image and returns word-level results with
// bounding boxes and Tesseract's block/line grouping indices.
func (e *Engine) Words(img image.Image) ([]provider.Word, error) {
	img, upscale := prepare(img)

	var buf bytes.Buffer
	if err := tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Uncompressed}); err != nil {
		return nil, fmt.Errorf("encode page image: %w", err)
	}
	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("set page image: %w", err)
	}

	boxes, err := e.client.GetBoundingBoxesVerbose()
	if err != nil {
		return nil, fmt.Errorf("recognize page: %w", err)
	}

	words := make([]provider.Word, 0, len(boxes))
	for _, b := range boxes {
		if b.Word == "" {
			continue
		}
		words = append(words, provider.Word{
			Text: b.Word,
			BBox: model.NewBBox(
				float64(b.Box.Min.X)/upscale,
				float64(b.Box.Min.Y)/upscale,
				float64(b.Box.Max.X)/upscale,
				float64(b.Box.Max.Y)/upscale,
			),
			Block:      b.BlockNum,
			Line:       b.LineNum,
			Confidence: b.Confidence,
		})
	}
	return words, nil
}

// prepare upscales undersized images and returns the scale factor applied,
// so that reported boxes can be mapped back to source pixels
func prepare(img image.Image) (image.Image, float64) {
	bounds := img.Bounds()
	if bounds.Dx() >= minRasterWidth || bounds.Dx() == 0 {
		return img, 1
	}

	factor := float64(minRasterWidth) / float64(bounds.Dx())
	dst := image.NewGray(image.Rect(0, 0, minRasterWidth,
		int(float64(bounds.Dy())*factor)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst, factor
}
