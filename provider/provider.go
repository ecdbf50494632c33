// Package provider turns a paginated document into one ordered list of
// geometric text blocks. It wraps two external collaborators behind small
// interfaces: a page-content source that yields native blocks with span-level
// typography, and an OCR engine used for scanned (image-only) pages.
package provider

import (
	"errors"
	"image"

	"go.uber.org/zap"

	"github.com/SuryanshT01/projectSynapse/model"
)

// ErrRenderUnsupported is returned by PageContent implementations that
// cannot rasterize pages. Scanned pages are skipped in that case.
var ErrRenderUnsupported = errors.New("page rendering not supported")

// PageContent supplies native text blocks and page geometry for a document.
type PageContent interface {
	// NumPages returns the page count
	NumPages() (int, error)

	// Blocks returns the native text blocks of a page (0-based index)
	Blocks(pageIndex int) ([]model.TextBlock, error)

	// PageSize returns the page dimensions in page units
	PageSize(pageIndex int) (width, height float64, err error)

	// Render rasterizes a page at the given resolution, or returns
	// ErrRenderUnsupported
	Render(pageIndex int, dpi float64) (image.Image, error)

	// Close releases any resources held by the source
	Close() error
}

// Word is a single OCR-recognized word with its grouping hints
type Word struct {
	// Text is the recognized word
	Text string

	// BBox is the word's bounding box in raster pixels
	BBox model.BBox

	// Block and Line are the engine's layout grouping indices
	Block int
	Line  int

	// Confidence is the recognition confidence (0-100)
	Confidence float64
}

// Engine performs OCR on a rendered page image
type Engine interface {
	// Words returns word-level text with bounding boxes and block/line
	// grouping hints
	Words(img image.Image) ([]Word, error)
}

// Config holds configuration for block extraction
type Config struct {
	// ScannedBlockThreshold is the native block count below which a page
	// is treated as scanned
	// Default: 3
	ScannedBlockThreshold int

	// RenderDPI is the rasterization resolution for scanned pages
	// Default: 300
	RenderDPI float64

	// OCRFontSize is the placeholder font size assigned to OCR spans,
	// which carry no real typography
	// Default: 10
	OCRFontSize float64

	// OCRFontName is the placeholder font name assigned to OCR spans
	// Default: "ocr"
	OCRFontName string
}

// DefaultConfig returns the default extraction configuration
func DefaultConfig() Config {
	return Config{
		ScannedBlockThreshold: 3,
		RenderDPI:             300,
		OCRFontSize:           10,
		OCRFontName:           "ocr",
	}
}

// Provider extracts the ordered block list for a document. Failures within
// one page are isolated to that page; a page whose OCR fails contributes no
// blocks rather than aborting the document.
type Provider struct {
	content PageContent
	ocr     Engine
	config  Config
	log     *zap.Logger
}

// New creates a provider over a page-content source with default configuration
func New(content PageContent) *Provider {
	return NewWithConfig(content, DefaultConfig())
}

// NewWithConfig creates a provider with custom configuration
func NewWithConfig(content PageContent, config Config) *Provider {
	return &Provider{
		content: content,
		config:  config,
		log:     zap.NewNop(),
	}
}

// SetOCR attaches an OCR engine for scanned pages. Without an engine,
// scanned pages contribute no blocks.
func (p *Provider) SetOCR(engine Engine) {
	p.ocr = engine
}

// SetLogger attaches a logger. The default is a no-op logger.
func (p *Provider) SetLogger(log *zap.Logger) {
	if log != nil {
		p.log = log
	}
}

// NumPages returns the document's page count, or 0 if it cannot be read
func (p *Provider) NumPages() int {
	n, err := p.content.NumPages()
	if err != nil {
		p.log.Error("failed to read page count", zap.Error(err))
		return 0
	}
	return n
}

// ExtractBlocks returns the document's blocks in (page, position) order.
// The returned slice is empty if the page count cannot be determined.
func (p *Provider) ExtractBlocks() []model.TextBlock {
	numPages, err := p.content.NumPages()
	if err != nil {
		p.log.Error("failed to read page count", zap.Error(err))
		return nil
	}

	var all []model.TextBlock
	for i := 0; i < numPages; i++ {
		all = append(all, p.extractPage(i)...)
	}
	return all
}

// extractPage extracts one page's blocks, choosing the native or OCR path
func (p *Provider) extractPage(pageIndex int) []model.TextBlock {
	native, err := p.content.Blocks(pageIndex)
	if err != nil {
		p.log.Warn("failed to read page blocks",
			zap.Int("page", pageIndex), zap.Error(err))
		native = nil
	}
	native = nonEmptyBlocks(native)

	if len(native) >= p.config.ScannedBlockThreshold {
		return native
	}

	// Scanned-page path: rasterize and OCR. OCR failure drops the page.
	if p.ocr == nil {
		return native
	}

	img, err := p.content.Render(pageIndex, p.config.RenderDPI)
	if err != nil {
		if !errors.Is(err, ErrRenderUnsupported) {
			p.log.Warn("failed to render page",
				zap.Int("page", pageIndex), zap.Error(err))
		}
		return native
	}

	words, err := p.ocr.Words(img)
	if err != nil {
		p.log.Warn("OCR failed, skipping page",
			zap.Int("page", pageIndex), zap.Error(err))
		return nil
	}

	width, height, err := p.content.PageSize(pageIndex)
	if err != nil || width <= 0 || height <= 0 {
		// Fall back to raster dimensions in page units
		bounds := img.Bounds()
		scale := p.config.RenderDPI / 72.0
		width = float64(bounds.Dx()) / scale
		height = float64(bounds.Dy()) / scale
	}

	return p.groupWords(words, pageIndex, width, height)
}

// nonEmptyBlocks keeps blocks containing at least one line with
// non-empty text
func nonEmptyBlocks(blocks []model.TextBlock) []model.TextBlock {
	var kept []model.TextBlock
	for _, b := range blocks {
		for _, l := range b.Lines {
			if hasText(l) {
				kept = append(kept, b)
				break
			}
		}
	}
	return kept
}

func hasText(l model.Line) bool {
	for _, s := range l.Spans {
		for _, r := range s.Text {
			if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
				return true
			}
		}
	}
	return false
}
