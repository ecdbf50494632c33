//go:build !ocr

// Package tesseract implements provider.Engine over the Tesseract OCR
// engine via gosseract.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All functions return ErrOCRNotEnabled. To enable OCR, rebuild with the
// "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package tesseract

import (
	"errors"
	"image"

	"github.com/SuryanshT01/projectSynapse/provider"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Engine is a stub OCR engine that returns errors for all operations.
type Engine struct{}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New() (*Engine, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub engine.
// It is safe to call on a nil engine.
func (e *Engine) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (e *Engine) SetLanguage(langs ...string) error {
	return ErrOCRNotEnabled
}

// Words returns an error indicating OCR support is not enabled.
func (e *Engine) Words(img image.Image) ([]provider.Word, error) {
	return nil, ErrOCRNotEnabled
}
