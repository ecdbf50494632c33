// Package model defines the geometric text model shared by the block
// provider and the outline pipeline: spans, lines, blocks, document
// statistics, and the extracted outline itself.
package model

import "strings"

// BlockOrigin identifies which provider produced a block. OCR blocks carry
// no reliable typography: their spans hold a placeholder font size and name,
// and classification treats them separately.
type BlockOrigin int

const (
	// OriginNative marks blocks extracted from the page content stream
	OriginNative BlockOrigin = iota

	// OriginOCR marks blocks synthesized from OCR word output
	OriginOCR
)

// String returns a string representation of the block origin
func (o BlockOrigin) String() string {
	if o == OriginOCR {
		return "ocr"
	}
	return "native"
}

// Span is a run of same-styled text within a line
type Span struct {
	// Text is the span content
	Text string

	// FontSize is the font size in page units
	FontSize float64

	// FontName is the font name/style string; boldness is inferred from it
	FontName string

	// BBox is the bounding box of the span
	BBox BBox
}

// IsBold reports whether the span's font name indicates a bold weight
func (s Span) IsBold() bool {
	font := strings.ToLower(s.FontName)
	return strings.Contains(font, "bold") ||
		strings.Contains(font, "black") ||
		strings.Contains(font, "heavy") ||
		strings.Contains(font, "semibold") ||
		strings.Contains(font, "demibold")
}

// Line is an ordered run of spans with its own bounding box
type Line struct {
	// Spans are the styled runs that make up this line (left to right)
	Spans []Span

	// BBox is the bounding box of the line
	BBox BBox
}

// Text returns the concatenated span text of the line
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// TextBlock is one visually contiguous run of lines on one page.
// Blocks are created once by the provider and treated as immutable by the
// pipeline; the Tabular field is a transient annotation set by the filter
// stage and never appears in the final result.
type TextBlock struct {
	// PageIndex is the 0-based page the block appears on
	PageIndex int

	// BBox is the bounding box of the block
	BBox BBox

	// Lines are the block's lines in reading order
	Lines []Line

	// Origin tags the block as native or OCR-derived
	Origin BlockOrigin

	// PageWidth and PageHeight are the dimensions of the containing page,
	// denormalized for convenience
	PageWidth  float64
	PageHeight float64

	// Tabular marks table/form-field blocks (set by the filter stage)
	Tabular bool
}

// Text returns the block's text with lines joined by single spaces
func (b *TextBlock) Text() string {
	parts := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		parts[i] = l.Text()
	}
	return strings.Join(parts, " ")
}

// Spans returns all spans of the block in reading order
func (b *TextBlock) Spans() []Span {
	var spans []Span
	for _, l := range b.Lines {
		spans = append(spans, l.Spans...)
	}
	return spans
}

// AverageFontSize returns the mean span font size, or 0 for an empty block
func (b *TextBlock) AverageFontSize() float64 {
	sum, n := 0.0, 0
	for _, l := range b.Lines {
		for _, s := range l.Spans {
			sum += s.FontSize
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// IsBold reports whether any span in the block is bold
func (b *TextBlock) IsBold() bool {
	for _, l := range b.Lines {
		for _, s := range l.Spans {
			if s.IsBold() {
				return true
			}
		}
	}
	return false
}

// WordCount returns the number of whitespace-separated words in the block
func (b *TextBlock) WordCount() int {
	return len(strings.Fields(b.Text()))
}

// DocStats holds corpus-wide typographic baselines computed once per
// document and read-only afterward.
type DocStats struct {
	// MedianFontSize is the median span font size over native blocks
	MedianFontSize float64

	// LineSpacing is the mean positive gap between consecutive lines
	// within native blocks
	LineSpacing float64
}

// HeadingLevel is the hierarchical level of a detected heading
type HeadingLevel int

const (
	// LevelUnknown marks a heading candidate before leveling
	LevelUnknown HeadingLevel = iota
	LevelH1
	LevelH2
	LevelH3
)

// String returns the level label ("H1".."H3", "H0" before leveling)
func (l HeadingLevel) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "H0"
	}
}

// MarshalJSON serializes the level as its label
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON parses a level label
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	switch strings.Trim(string(data), `"`) {
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	default:
		*l = LevelUnknown
	}
	return nil
}

// Heading is a classified heading moving through the pipeline. Y is the
// vertical position of the source block on its page; it drives ordering and
// content association and is dropped from the final outline.
type Heading struct {
	// Level is the heading level (H1-H3, LevelUnknown before leveling)
	Level HeadingLevel

	// Text is the cleaned heading text
	Text string

	// Page is the 0-based page index the heading appears on
	Page int

	// Y is the top coordinate of the source block (transient)
	Y float64

	// Content is the associated body text (populated by the associator)
	Content string
}

// OutlineEntry is one heading in the final outline, with the transient
// y-position stripped.
type OutlineEntry struct {
	Level   HeadingLevel `json:"level"`
	Text    string       `json:"text"`
	Page    int          `json:"page"`
	Content string       `json:"content"`
}

// Outline is the final result of structure extraction
type Outline struct {
	// Title is the detected document title; empty means no title detected
	Title string `json:"title"`

	// Outline is the ordered heading sequence
	Outline []OutlineEntry `json:"outline"`
}

// HeadingCount returns the number of outline entries
func (o *Outline) HeadingCount() int {
	if o == nil {
		return 0
	}
	return len(o.Outline)
}
