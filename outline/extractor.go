package outline

import (
	"sort"

	"go.uber.org/zap"

	"github.com/SuryanshT01/projectSynapse/model"
)

// BlockSource yields a document's ordered block list and its page count.
// provider.Provider satisfies this interface.
type BlockSource interface {
	ExtractBlocks() []model.TextBlock

	// NumPages returns the document's page count, or 0 if unknown
	NumPages() int
}

// Config holds per-stage configuration for the extraction pipeline
type Config struct {
	Title      TitleConfig
	Filter     FilterConfig
	Classifier ClassifierConfig
}

// DefaultConfig returns the default pipeline configuration
func DefaultConfig() Config {
	return Config{
		Title:      DefaultTitleConfig(),
		Filter:     DefaultFilterConfig(),
		Classifier: DefaultClassifierConfig(),
	}
}

// Extractor runs the full structure-extraction pipeline over one document.
// Extraction is single-threaded and side-effect-free; independent
// extractors may run concurrently, sharing a read-only Predictor.
//
// No failure escapes Extract: every error mode degrades to a
// smaller-than-ideal outline rather than raising.
type Extractor struct {
	source   BlockSource
	config   Config
	fallback Predictor
	log      *zap.Logger
}

// New creates an extractor with default configuration
func New(source BlockSource) *Extractor {
	return NewWithConfig(source, DefaultConfig())
}

// NewWithConfig creates an extractor with custom configuration
func NewWithConfig(source BlockSource, config Config) *Extractor {
	return &Extractor{
		source: source,
		config: config,
		log:    zap.NewNop(),
	}
}

// SetFallback attaches the statistical fallback classifier. Nil leaves the
// pipeline in heuristics-only mode.
func (e *Extractor) SetFallback(p Predictor) {
	e.fallback = p
}

// SetLogger attaches a logger. The default is a no-op logger.
func (e *Extractor) SetLogger(log *zap.Logger) {
	if log != nil {
		e.log = log
	}
}

// Extract runs the pipeline and returns the document outline. A document
// that yields no blocks produces an empty outline with an empty title.
func (e *Extractor) Extract() *model.Outline {
	blocks := e.source.ExtractBlocks()
	if len(blocks) == 0 {
		e.log.Warn("no blocks extracted, returning empty outline")
		return &model.Outline{Outline: []model.OutlineEntry{}}
	}

	// Trailing pages can legitimately yield no blocks (empty, or scanned
	// with no OCR), so the block list alone undercounts pages; that matters
	// to the pagination-sensitive boilerplate pass.
	numPages := e.source.NumPages()
	for i := range blocks {
		if blocks[i].PageIndex+1 > numPages {
			numPages = blocks[i].PageIndex + 1
		}
	}

	stats := ComputeStats(blocks)

	title := NewTitleExtractorWithConfig(e.config.Title).Find(blocks)

	filtered := NewFilterWithConfig(e.config.Filter).Apply(blocks, numPages, stats)

	classifier := NewClassifierWithConfig(e.config.Classifier)
	classifier.SetFallback(e.fallback)
	headings, content := classifier.Classify(filtered, stats, title)

	headings = Associate(headings, content)
	headings = ValidateHierarchy(headings)

	e.log.Info("extraction complete",
		zap.Int("pages", numPages),
		zap.Int("blocks", len(blocks)),
		zap.Int("headings", len(headings)),
		zap.Bool("title_detected", title != ""))

	return buildOutline(title, headings)
}

// buildOutline produces the final result, sorted by (page, y) with the
// transient y-position stripped
func buildOutline(title string, headings []model.Heading) *model.Outline {
	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].Page != headings[j].Page {
			return headings[i].Page < headings[j].Page
		}
		return headings[i].Y < headings[j].Y
	})

	entries := make([]model.OutlineEntry, len(headings))
	for i, h := range headings {
		entries[i] = model.OutlineEntry{
			Level:   h.Level,
			Text:    h.Text,
			Page:    h.Page,
			Content: h.Content,
		}
	}
	return &model.Outline{Title: title, Outline: entries}
}
