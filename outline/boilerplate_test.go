package outline

import (
	"testing"

	"github.com/SuryanshT01/projectSynapse/model"
)

func TestFilterRemovesRepeatingFooters(t *testing.T) {
	stats := model.DocStats{MedianFontSize: 12, LineSpacing: 12}

	var blocks []model.TextBlock
	for page := 0; page < 3; page++ {
		blocks = append(blocks,
			bodyBlock(page, 200, "Some unique paragraph content for this page."),
			textBlock(page, 720, "Confidential - Page "+string(rune('1'+page)), 9, "Times"),
		)
	}

	filtered := NewFilter().Apply(blocks, 3, stats)

	for _, b := range filtered {
		if b.BBox.Y0 == 720 {
			t.Errorf("footer %q survived the filter", b.Text())
		}
	}
	if len(filtered) != 3 {
		t.Errorf("len(filtered) = %d, want 3 body blocks", len(filtered))
	}
}

func TestFilterFoldsPageCounters(t *testing.T) {
	// "Page 1" vs "Page 2" must count as the same footer signature
	f := NewFilter()
	stats := model.DocStats{MedianFontSize: 12}

	a := textBlock(0, 720, "Confidential - Page 1", 9, "Times")
	b := textBlock(1, 720, "Confidential - Page 2", 9, "Times")

	sigA, okA := f.signatureOf(&a, stats)
	sigB, okB := f.signatureOf(&b, stats)
	if !okA || !okB {
		t.Fatal("footer blocks did not produce signatures")
	}
	if sigA != sigB {
		t.Errorf("signatures differ: %v vs %v", sigA, sigB)
	}
}

func TestFilterSkipsShortDocuments(t *testing.T) {
	stats := model.DocStats{MedianFontSize: 12, LineSpacing: 12}

	blocks := []model.TextBlock{
		textBlock(0, 720, "Confidential - Page 1", 9, "Times"),
		textBlock(1, 720, "Confidential - Page 2", 9, "Times"),
	}

	filtered := NewFilter().Apply(blocks, 2, stats)
	if len(filtered) != 2 {
		t.Errorf("len(filtered) = %d, want 2: header/footer pass must not run under 3 pages", len(filtered))
	}
}

func TestFilterProtectsLargeText(t *testing.T) {
	// A big heading repeated near the top of every page keeps its place
	stats := model.DocStats{MedianFontSize: 12, LineSpacing: 12}

	var blocks []model.TextBlock
	for page := 0; page < 4; page++ {
		blocks = append(blocks, boldBlock(page, 60, "Chapter Summary", 20))
	}

	filtered := NewFilter().Apply(blocks, 4, stats)
	if len(filtered) != 4 {
		t.Errorf("len(filtered) = %d, want 4: large text is never boilerplate", len(filtered))
	}
}

func TestFilterMidPageBlocksHaveNoSignature(t *testing.T) {
	f := NewFilter()
	stats := model.DocStats{MedianFontSize: 12}

	b := bodyBlock(0, 400, "Mid-page paragraph text")
	if _, ok := f.signatureOf(&b, stats); ok {
		t.Error("mid-page block produced a header/footer signature")
	}
}

func TestTabularNumberedFormRow(t *testing.T) {
	f := NewFilter()
	stats := model.DocStats{MedianFontSize: 12, LineSpacing: 12}

	b := bodyBlock(0, 200, "1. Name of the Government Servant")
	if !f.isTabular(&b, []model.TextBlock{b}, stats) {
		t.Error("numbered form row not marked tabular")
	}
}

func TestTabularFormFieldKeyword(t *testing.T) {
	f := NewFilter()
	stats := model.DocStats{MedianFontSize: 12, LineSpacing: 12}

	b := bodyBlock(0, 200, "4) date of entering service and designation held")
	if !f.isTabular(&b, []model.TextBlock{b}, stats) {
		t.Error("form-field keyword row not marked tabular")
	}
}

func TestTabularDeepIndent(t *testing.T) {
	f := NewFilter()
	stats := model.DocStats{MedianFontSize: 12, LineSpacing: 12}

	// Short block starting past 20% of the page width
	b := atX(bodyBlock(0, 200, "cell value"), 200)
	if !f.isTabular(&b, []model.TextBlock{b}, stats) {
		t.Error("deeply indented short block not marked tabular")
	}
}

func TestTabularLeftEdgeDeviation(t *testing.T) {
	f := NewFilter()
	stats := model.DocStats{MedianFontSize: 12, LineSpacing: 12}

	neighbors := []model.TextBlock{
		atX(bodyBlock(0, 176, "First list item in an indented column."), 150),
		atX(bodyBlock(0, 224, "Third list item in an indented column."), 150),
	}
	// Far left of the adjacent column, though not past the indent bound
	all := append(neighbors, bodyBlock(0, 200, "stray cell"))

	if !f.isTabular(&all[2], all, stats) {
		t.Error("left-edge deviation not marked tabular")
	}
}

func TestTabularIgnoresLongAndOCRBlocks(t *testing.T) {
	f := NewFilter()
	stats := model.DocStats{MedianFontSize: 12, LineSpacing: 12}

	long := atX(bodyBlock(0, 200, "This sentence is comfortably longer than the short-block bound."), 200)
	if f.isTabular(&long, []model.TextBlock{long}, stats) {
		t.Error("long block marked tabular by geometric heuristics")
	}

	scanned := ocrBlock(0, model.NewBBox(200, 200, 280, 220), "cell value")
	if f.isTabular(&scanned, []model.TextBlock{scanned}, stats) {
		t.Error("OCR block marked tabular by geometric heuristics")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	stats := model.DocStats{MedianFontSize: 12, LineSpacing: 12}

	blocks := []model.TextBlock{bodyBlock(0, 200, "1. Name of the Government Servant")}
	NewFilter().Apply(blocks, 1, stats)

	if blocks[0].Tabular {
		t.Error("Apply mutated the input slice")
	}
}
