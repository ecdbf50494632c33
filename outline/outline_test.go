package outline

import (
	"github.com/SuryanshT01/projectSynapse/model"
)

// Shared fixture helpers for the pipeline tests.

// textBlock builds a one-line native block at the given position
func textBlock(page int, y float64, text string, size float64, font string) model.TextBlock {
	width := float64(len(text)) * size * 0.5
	box := model.NewBBox(72, y, 72+width, y+size)
	return model.TextBlock{
		PageIndex: page,
		BBox:      box,
		Lines: []model.Line{{
			Spans: []model.Span{{Text: text, FontSize: size, FontName: font, BBox: box}},
			BBox:  box,
		}},
		Origin:     model.OriginNative,
		PageWidth:  612,
		PageHeight: 792,
	}
}

// bodyBlock builds a plain 12pt body paragraph
func bodyBlock(page int, y float64, text string) model.TextBlock {
	return textBlock(page, y, text, 12, "Times-Roman")
}

// boldBlock builds a bold block at the given size
func boldBlock(page int, y float64, text string, size float64) model.TextBlock {
	return textBlock(page, y, text, size, "Helvetica-Bold")
}

// ocrBlock builds an OCR-origin block covering the given box
func ocrBlock(page int, box model.BBox, text string) model.TextBlock {
	b := model.TextBlock{
		PageIndex: page,
		BBox:      box,
		Lines: []model.Line{{
			Spans: []model.Span{{Text: text, FontSize: 10, FontName: "ocr", BBox: box}},
			BBox:  box,
		}},
		Origin:     model.OriginOCR,
		PageWidth:  612,
		PageHeight: 792,
	}
	return b
}

// atX places a copy of a block at a different left edge
func atX(b model.TextBlock, x0 float64) model.TextBlock {
	shift := x0 - b.BBox.X0
	b.BBox.X0 += shift
	b.BBox.X1 += shift
	for i := range b.Lines {
		b.Lines[i].BBox.X0 += shift
		b.Lines[i].BBox.X1 += shift
		for j := range b.Lines[i].Spans {
			b.Lines[i].Spans[j].BBox.X0 += shift
			b.Lines[i].Spans[j].BBox.X1 += shift
		}
	}
	return b
}

// stubSource is a fixed block source for extractor tests. A zero pages
// field means the count is unknown, as for a source that failed to read it.
type stubSource struct {
	blocks []model.TextBlock
	pages  int
}

func (s *stubSource) ExtractBlocks() []model.TextBlock {
	return s.blocks
}

func (s *stubSource) NumPages() int {
	return s.pages
}

// stubPredictor returns a fixed label for every row
type stubPredictor struct {
	label string
	rows  [][]FeatureVector
}

func (p *stubPredictor) Predict(rows []FeatureVector) []string {
	p.rows = append(p.rows, rows)
	labels := make([]string, len(rows))
	for i := range labels {
		labels[i] = p.label
	}
	return labels
}
