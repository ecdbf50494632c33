package outline

import (
	"regexp"
	"strings"

	"github.com/SuryanshT01/projectSynapse/model"
)

// FilterConfig holds configuration for the boilerplate and tabular filter
type FilterConfig struct {
	// MinPages is the page count below which the header/footer pass is
	// skipped entirely
	// Default: 3
	MinPages int

	// HeaderBand and FooterBand classify a block's vertical position:
	// header if y0 is above HeaderBand of the page height, footer if y0
	// is below FooterBand
	// Defaults: 0.15 and 0.85
	HeaderBand float64
	FooterBand float64

	// MinTextLen and MaxTextLen bound (exclusive) the normalized text
	// length considered for header/footer signatures
	// Defaults: 2 and 80
	MinTextLen int
	MaxTextLen int

	// ProtectFontRatio protects blocks whose average font size exceeds
	// this multiple of the median; large text is never boilerplate
	// Default: 1.2
	ProtectFontRatio float64

	// OccurrenceRatio is the fraction of pages a signature must appear on
	// to be considered boilerplate
	// Default: 0.5
	OccurrenceRatio float64

	// ShortBlockLen is the text length below which the geometric tabular
	// heuristics apply to non-OCR blocks
	// Default: 30
	ShortBlockLen int

	// IndentRatio flags short blocks whose left edge exceeds this
	// fraction of the page width
	// Default: 0.2
	IndentRatio float64

	// DeviationRatio flags short blocks whose left edge deviates from the
	// mean of vertically-adjacent blocks by more than this fraction of
	// the page width
	// Default: 0.1
	DeviationRatio float64

	// AdjacentGapFactor bounds vertical adjacency as a multiple of the
	// document's average inter-line spacing
	// Default: 2
	AdjacentGapFactor float64

	// TightSpacingRatio flags blocks whose internal line spacing is
	// tighter than this fraction of the document average
	// Default: 0.8
	TightSpacingRatio float64

	// FormFieldKeywords are the case-insensitive substrings that, paired
	// with a leading numbering pattern, mark a form-field block
	FormFieldKeywords []string
}

// DefaultFilterConfig returns the default filter configuration
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		MinPages:          3,
		HeaderBand:        0.15,
		FooterBand:        0.85,
		MinTextLen:        2,
		MaxTextLen:        80,
		ProtectFontRatio:  1.2,
		OccurrenceRatio:   0.5,
		ShortBlockLen:     30,
		IndentRatio:       0.2,
		DeviationRatio:    0.1,
		AdjacentGapFactor: 2,
		TightSpacingRatio: 0.8,
		FormFieldKeywords: []string{
			"name", "designation", "pay", "government servant",
			"amount", "signature", "date of", "relationship",
			"s.no", "rs.",
		},
	}
}

var (
	// reNumberedForm matches "<number>. <Capitalized word>" form rows
	reNumberedForm = regexp.MustCompile(`^\d+\.\s+[A-Z][a-z]`)

	// reNumberingPrefix matches any leading numbering pattern
	reNumberingPrefix = regexp.MustCompile(`^\d+(\.\d+)*[.)]?\s`)

	// reDigitRun folds page counters so "Page 3" and "Page 7" share a
	// signature
	reDigitRun = regexp.MustCompile(`\d+`)
)

// Filter removes repeating headers/footers and marks table/form-field
// blocks that would otherwise be misread as headings
type Filter struct {
	config FilterConfig
}

// NewFilter creates a filter with default configuration
func NewFilter() *Filter {
	return &Filter{config: DefaultFilterConfig()}
}

// NewFilterWithConfig creates a filter with custom configuration
func NewFilterWithConfig(config FilterConfig) *Filter {
	return &Filter{config: config}
}

// Apply returns a new block list with boilerplate blocks removed and
// tabular blocks marked. Input blocks are not mutated: tabular marking is
// applied to copies. For documents under MinPages the header/footer pass
// is a no-op.
func (f *Filter) Apply(blocks []model.TextBlock, numPages int, stats model.DocStats) []model.TextBlock {
	kept := blocks
	if numPages >= f.config.MinPages {
		kept = f.removeHeadersFooters(kept, numPages, stats)
	}

	out := make([]model.TextBlock, len(kept))
	for i := range kept {
		out[i] = kept[i]
		out[i].Tabular = f.isTabular(&kept[i], kept, stats)
	}
	return out
}

// signature identifies a repeating header/footer: normalized text plus
// vertical position class
type signature struct {
	text string
	pos  string
}

// removeHeadersFooters drops blocks matching signatures that repeat on at
// least OccurrenceRatio of pages
func (f *Filter) removeHeadersFooters(blocks []model.TextBlock, numPages int, stats model.DocStats) []model.TextBlock {
	pagesBySig := make(map[signature]map[int]bool)
	for i := range blocks {
		sig, ok := f.signatureOf(&blocks[i], stats)
		if !ok {
			continue
		}
		if pagesBySig[sig] == nil {
			pagesBySig[sig] = make(map[int]bool)
		}
		pagesBySig[sig][blocks[i].PageIndex] = true
	}

	boiler := make(map[signature]bool)
	for sig, pages := range pagesBySig {
		if float64(len(pages)) >= f.config.OccurrenceRatio*float64(numPages) {
			boiler[sig] = true
		}
	}
	if len(boiler) == 0 {
		return blocks
	}

	var kept []model.TextBlock
	for i := range blocks {
		sig, ok := f.signatureOf(&blocks[i], stats)
		if ok && boiler[sig] {
			continue
		}
		kept = append(kept, blocks[i])
	}
	return kept
}

// signatureOf computes a block's header/footer signature. Blocks outside
// the header/footer bands, with out-of-range text, pure digits, or
// protected large text do not participate.
func (f *Filter) signatureOf(b *model.TextBlock, stats model.DocStats) (signature, bool) {
	text := strings.ToLower(strings.TrimSpace(NormalizeText(b.Text())))
	if len(text) <= f.config.MinTextLen || len(text) >= f.config.MaxTextLen {
		return signature{}, false
	}
	if isDigits(text) {
		return signature{}, false
	}
	text = reDigitRun.ReplaceAllString(text, "#")
	if stats.MedianFontSize > 0 && b.AverageFontSize() > f.config.ProtectFontRatio*stats.MedianFontSize {
		return signature{}, false
	}

	var pos string
	switch {
	case b.PageHeight > 0 && b.BBox.Y0 < f.config.HeaderBand*b.PageHeight:
		pos = "header"
	case b.PageHeight > 0 && b.BBox.Y0 > f.config.FooterBand*b.PageHeight:
		pos = "footer"
	default:
		return signature{}, false
	}
	return signature{text: text, pos: pos}, true
}

// isTabular applies the table/form-field heuristics to one block
func (f *Filter) isTabular(b *model.TextBlock, all []model.TextBlock, stats model.DocStats) bool {
	text := NormalizeText(b.Text())

	if reNumberedForm.MatchString(text) {
		return true
	}
	if reNumberingPrefix.MatchString(text) && f.hasFormFieldKeyword(text) {
		return true
	}

	if len(text) >= f.config.ShortBlockLen || b.Origin == model.OriginOCR {
		return false
	}

	// Short non-OCR blocks: geometric signals
	if b.PageWidth > 0 && b.BBox.X0 > f.config.IndentRatio*b.PageWidth {
		return true
	}
	if f.deviatesFromNeighbors(b, all, stats) {
		return true
	}
	return f.hasTightLineSpacing(b, stats)
}

func (f *Filter) hasFormFieldKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range f.config.FormFieldKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// deviatesFromNeighbors checks the block's left edge against the mean left
// edge of vertically-adjacent blocks on the same page
func (f *Filter) deviatesFromNeighbors(b *model.TextBlock, all []model.TextBlock, stats model.DocStats) bool {
	if b.PageWidth <= 0 {
		return false
	}
	window := f.config.AdjacentGapFactor * stats.LineSpacing

	sum, n := 0.0, 0
	for i := range all {
		other := &all[i]
		if other == b || other.PageIndex != b.PageIndex {
			continue
		}
		if b.BBox.VerticalGap(other.BBox) <= window {
			sum += other.BBox.X0
			n++
		}
	}
	if n == 0 {
		return false
	}

	dev := b.BBox.X0 - sum/float64(n)
	if dev < 0 {
		dev = -dev
	}
	return dev > f.config.DeviationRatio*b.PageWidth
}

// hasTightLineSpacing checks whether the block's internal line spacing is
// tighter than the document average allows
func (f *Filter) hasTightLineSpacing(b *model.TextBlock, stats model.DocStats) bool {
	if stats.LineSpacing <= 0 {
		return false
	}
	sum, n := 0.0, 0
	for j := 1; j < len(b.Lines); j++ {
		gap := b.Lines[j].BBox.Y0 - b.Lines[j-1].BBox.Y1
		if gap > 0 {
			sum += gap
			n++
		}
	}
	if n == 0 {
		return false
	}
	return sum/float64(n) < f.config.TightSpacingRatio*stats.LineSpacing
}
