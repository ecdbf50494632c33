package outline

import (
	"testing"

	"github.com/SuryanshT01/projectSynapse/model"
)

func TestMedianFontSizeOdd(t *testing.T) {
	blocks := []model.TextBlock{
		bodyBlock(0, 100, "one"),                   // 12pt
		textBlock(0, 130, "two", 10, "Times"),      // 10pt
		textBlock(0, 160, "three", 24, "Helv-Bold"), // 24pt
	}

	stats := ComputeStats(blocks)
	if stats.MedianFontSize != 12 {
		t.Errorf("MedianFontSize = %v, want 12", stats.MedianFontSize)
	}
}

func TestMedianFontSizeEven(t *testing.T) {
	blocks := []model.TextBlock{
		textBlock(0, 100, "a", 10, "Times"),
		textBlock(0, 130, "b", 14, "Times"),
	}

	stats := ComputeStats(blocks)
	if stats.MedianFontSize != 12 {
		t.Errorf("MedianFontSize = %v, want 12 (mean of middle pair)", stats.MedianFontSize)
	}
}

func TestMedianFontSizeIgnoresOCR(t *testing.T) {
	blocks := []model.TextBlock{
		ocrBlock(0, model.NewBBox(0, 0, 300, 100), "SCANNED TEXT"),
	}

	stats := ComputeStats(blocks)
	if stats.MedianFontSize != defaultFontSize {
		t.Errorf("MedianFontSize = %v, want default %v for OCR-only document",
			stats.MedianFontSize, defaultFontSize)
	}
}

func TestAverageLineSpacing(t *testing.T) {
	line := func(y0, y1 float64) model.Line {
		return model.Line{
			Spans: []model.Span{{Text: "x", FontSize: 12, BBox: model.NewBBox(72, y0, 100, y1)}},
			BBox:  model.NewBBox(72, y0, 100, y1),
		}
	}
	blocks := []model.TextBlock{{
		PageIndex: 0,
		Lines: []model.Line{
			line(100, 112), // gap 4 to next
			line(116, 128), // gap 6 to next
			line(134, 146),
		},
		Origin:     model.OriginNative,
		PageWidth:  612,
		PageHeight: 792,
		BBox:       model.NewBBox(72, 100, 100, 146),
	}}

	stats := ComputeStats(blocks)
	if stats.LineSpacing != 5 {
		t.Errorf("LineSpacing = %v, want 5", stats.LineSpacing)
	}
}

func TestAverageLineSpacingDefault(t *testing.T) {
	blocks := []model.TextBlock{bodyBlock(0, 100, "single line")}

	stats := ComputeStats(blocks)
	if stats.LineSpacing != defaultLineSpacing {
		t.Errorf("LineSpacing = %v, want default %v", stats.LineSpacing, defaultLineSpacing)
	}
}
