// Package pdfcontent implements provider.PageContent over a PDF file.
// It reads positioned character runs from the content stream and assembles
// them into spans, lines, and blocks in top-left page coordinates.
//
// Rasterization is not supported: scanned-page handling requires an
// external renderer, and Render always returns provider.ErrRenderUnsupported.
package pdfcontent

import (
	"fmt"
	"image"
	"os"
	"sort"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/SuryanshT01/projectSynapse/model"
	"github.com/SuryanshT01/projectSynapse/provider"
)

// Config holds thresholds for assembling character runs into lines and blocks
type Config struct {
	// LineTolerance is the Y-distance tolerance for grouping runs into a
	// line, as a fraction of font size
	// Default: 0.5
	LineTolerance float64

	// WordGapFactor is the horizontal gap, as a fraction of font size,
	// above which a space is inserted between runs
	// Default: 0.3
	WordGapFactor float64

	// BlockGapFactor is the vertical gap, as a multiple of average line
	// height, above which a new block starts
	// Default: 1.5
	BlockGapFactor float64
}

// DefaultConfig returns the default assembly configuration
func DefaultConfig() Config {
	return Config{
		LineTolerance:  0.5,
		WordGapFactor:  0.3,
		BlockGapFactor: 1.5,
	}
}

// Content reads native text blocks from a PDF file
type Content struct {
	file   *os.File
	reader *pdflib.Reader
	config Config
}

// Open opens a PDF file for block extraction
func Open(path string) (*Content, error) {
	return OpenWithConfig(path, DefaultConfig())
}

// OpenWithConfig opens a PDF file with custom assembly configuration
func OpenWithConfig(path string, config Config) (*Content, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Content{file: f, reader: r, config: config}, nil
}

// NumPages returns the page count
func (c *Content) NumPages() (int, error) {
	return c.reader.NumPage(), nil
}

// PageSize returns the page dimensions from the MediaBox
func (c *Content) PageSize(pageIndex int) (float64, float64, error) {
	page := c.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return 0, 0, fmt.Errorf("page %d not found", pageIndex)
	}
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		// US Letter fallback
		return 612, 792, nil
	}
	width := box.Index(2).Float64() - box.Index(0).Float64()
	height := box.Index(3).Float64() - box.Index(1).Float64()
	return width, height, nil
}

// Render always returns provider.ErrRenderUnsupported
func (c *Content) Render(pageIndex int, dpi float64) (image.Image, error) {
	return nil, provider.ErrRenderUnsupported
}

// Close releases the underlying file
func (c *Content) Close() error {
	return c.file.Close()
}

// Blocks returns the native text blocks of a page in top-left coordinates
func (c *Content) Blocks(pageIndex int) (blocks []model.TextBlock, err error) {
	// The underlying parser panics on malformed content streams; contain
	// that to this page.
	defer func() {
		if r := recover(); r != nil {
			blocks = nil
			err = fmt.Errorf("page %d: malformed content: %v", pageIndex, r)
		}
	}()

	page := c.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", pageIndex)
	}

	width, height, err := c.PageSize(pageIndex)
	if err != nil {
		return nil, err
	}

	content := page.Content()
	runs := make([]pdflib.Text, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S != "" {
			runs = append(runs, t)
		}
	}
	if len(runs) == 0 {
		return nil, nil
	}

	lines := c.groupIntoLines(runs, height)
	return c.groupLinesIntoBlocks(lines, pageIndex, width, height), nil
}

// groupIntoLines sorts character runs top to bottom and groups runs on the
// same baseline into lines of spans
func (c *Content) groupIntoLines(runs []pdflib.Text, pageHeight float64) []model.Line {
	sort.SliceStable(runs, func(i, j int) bool {
		yDiff := runs[i].Y - runs[j].Y
		tol := runs[i].FontSize * c.config.LineTolerance
		if yDiff > tol || yDiff < -tol {
			return yDiff > 0 // Higher baseline (PDF coords) first
		}
		return runs[i].X < runs[j].X
	})

	var lines []model.Line
	var current []pdflib.Text

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, c.assembleLine(current, pageHeight))
			current = nil
		}
	}

	for _, run := range runs {
		if len(current) == 0 {
			current = append(current, run)
			continue
		}
		last := current[len(current)-1]
		yDiff := last.Y - run.Y
		if yDiff < 0 {
			yDiff = -yDiff
		}
		if yDiff <= last.FontSize*c.config.LineTolerance {
			current = append(current, run)
		} else {
			flush()
			current = append(current, run)
		}
	}
	flush()

	return lines
}

// assembleLine merges same-styled runs into spans with smart spacing
func (c *Content) assembleLine(runs []pdflib.Text, pageHeight float64) model.Line {
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].X < runs[j].X })

	var line model.Line
	var span *model.Span
	var lastEnd float64

	for i, run := range runs {
		box := runBox(run, pageHeight)
		sameStyle := span != nil &&
			span.FontName == run.Font &&
			span.FontSize == run.FontSize

		gap := run.X - lastEnd
		needsSpace := i > 0 && gap > run.FontSize*c.config.WordGapFactor

		if sameStyle {
			if needsSpace {
				span.Text += " "
			}
			span.Text += run.S
			span.BBox = span.BBox.Union(box)
		} else {
			if span != nil {
				line.Spans = append(line.Spans, *span)
			}
			text := run.S
			if needsSpace {
				text = " " + text
			}
			span = &model.Span{
				Text:     text,
				FontSize: run.FontSize,
				FontName: run.Font,
				BBox:     box,
			}
		}
		lastEnd = run.X + run.W
	}
	if span != nil {
		line.Spans = append(line.Spans, *span)
	}

	if len(line.Spans) > 0 {
		line.BBox = line.Spans[0].BBox
		for _, s := range line.Spans[1:] {
			line.BBox = line.BBox.Union(s.BBox)
		}
	}
	return line
}

// runBox converts a baseline-anchored run to a top-left coordinate box
func runBox(run pdflib.Text, pageHeight float64) model.BBox {
	return model.BBox{
		X0: run.X,
		Y0: pageHeight - run.Y - run.FontSize,
		X1: run.X + run.W,
		Y1: pageHeight - run.Y,
	}
}

// groupLinesIntoBlocks splits the line sequence into blocks wherever the
// vertical gap exceeds the average line height by the block gap factor
func (c *Content) groupLinesIntoBlocks(lines []model.Line, pageIndex int, pageWidth, pageHeight float64) []model.TextBlock {
	if len(lines) == 0 {
		return nil
	}

	avgHeight := 0.0
	for _, l := range lines {
		avgHeight += l.BBox.Height()
	}
	avgHeight /= float64(len(lines))
	if avgHeight <= 0 {
		avgHeight = 12
	}

	var blocks []model.TextBlock
	start := 0
	for i := 1; i <= len(lines); i++ {
		if i < len(lines) {
			gap := lines[i].BBox.Y0 - lines[i-1].BBox.Y1
			if gap <= avgHeight*c.config.BlockGapFactor {
				continue
			}
		}
		group := lines[start:i]
		block := model.TextBlock{
			PageIndex:  pageIndex,
			Lines:      group,
			Origin:     model.OriginNative,
			PageWidth:  pageWidth,
			PageHeight: pageHeight,
			BBox:       group[0].BBox,
		}
		for _, l := range group[1:] {
			block.BBox = block.BBox.Union(l.BBox)
		}
		blocks = append(blocks, block)
		start = i
	}
	return blocks
}
