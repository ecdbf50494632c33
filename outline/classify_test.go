package outline

import (
	"testing"

	"github.com/SuryanshT01/projectSynapse/model"
)

var testStats = model.DocStats{MedianFontSize: 12, LineSpacing: 12}

func classify(t *testing.T, blocks []model.TextBlock, title string) ([]model.Heading, []model.TextBlock) {
	t.Helper()
	return NewClassifier().Classify(blocks, testStats, title)
}

func TestNumberedHeadingLevels(t *testing.T) {
	tests := []struct {
		text string
		want model.HeadingLevel
	}{
		{"1. Introduction to the System", model.LevelH1},
		{"2.1 Intended Audience", model.LevelH2},
		{"2.1.3 Career Progression Paths", model.LevelH3},
	}

	for _, tt := range tests {
		headings, _ := classify(t, []model.TextBlock{bodyBlock(0, 100, tt.text)}, "")
		if len(headings) != 1 {
			t.Errorf("%q: got %d headings, want 1", tt.text, len(headings))
			continue
		}
		if headings[0].Level != tt.want {
			t.Errorf("%q: level = %v, want %v", tt.text, headings[0].Level, tt.want)
		}
	}
}

func TestNumberedHeadingTextIsCleaned(t *testing.T) {
	headings, _ := classify(t, []model.TextBlock{bodyBlock(0, 100, "2.1 Intended Audience")}, "")
	if len(headings) != 1 {
		t.Fatalf("got %d headings, want 1", len(headings))
	}
	if headings[0].Text != "Intended Audience" {
		t.Errorf("Text = %q, want %q", headings[0].Text, "Intended Audience")
	}
}

func TestNumberedRejectsDeepLevels(t *testing.T) {
	headings, _ := classify(t, []model.TextBlock{bodyBlock(0, 100, "2.1.3.4 Deeply Nested Section Heading")}, "")
	if len(headings) != 0 {
		t.Errorf("level-4 numeral classified as heading: %+v", headings)
	}
}

func TestNumberedRejectsThinLabels(t *testing.T) {
	headings, _ := classify(t, []model.TextBlock{bodyBlock(0, 100, "1. A")}, "")
	if len(headings) != 0 {
		t.Errorf("single-letter label classified as heading: %+v", headings)
	}
}

func TestNumberedSkipsTabularBlocks(t *testing.T) {
	b := bodyBlock(0, 100, "1. Name of the Government Servant")
	b.Tabular = true

	headings, _ := classify(t, []model.TextBlock{b}, "")
	if len(headings) != 0 {
		t.Errorf("tabular block classified as heading: %+v", headings)
	}
}

func TestStyledHeadingLevels(t *testing.T) {
	tests := []struct {
		name  string
		block model.TextBlock
		want  model.HeadingLevel
	}{
		{"large bold H1", boldBlock(0, 100, "System Overview", 18), model.LevelH1},
		{"all caps H1", textBlock(0, 100, "SYSTEM OVERVIEW", 18, "Times"), model.LevelH1},
		{"medium bold H2", boldBlock(0, 100, "Deployment Model", 15.5), model.LevelH2},
		{"small bold H3", boldBlock(0, 100, "Rollback Steps", 14), model.LevelH3},
		{"title case H3", textBlock(0, 100, "Capacity Planning Notes", 14.6, "Times"), model.LevelH3},
	}

	for _, tt := range tests {
		headings, _ := classify(t, []model.TextBlock{tt.block}, "")
		if len(headings) != 1 {
			t.Errorf("%s: got %d headings, want 1", tt.name, len(headings))
			continue
		}
		if headings[0].Level != tt.want {
			t.Errorf("%s: level = %v, want %v", tt.name, headings[0].Level, tt.want)
		}
	}
}

func TestStyledRejections(t *testing.T) {
	tests := []struct {
		name  string
		block model.TextBlock
	}{
		{"body text", bodyBlock(0, 100, "Plain running paragraph text.")},
		{"trailing colon", boldBlock(0, 100, "Important Notice:", 18)},
		{"trailing period", boldBlock(0, 100, "This is a full sentence.", 18)},
		{"dot leaders", boldBlock(0, 100, "Introduction ........ 4", 18)},
		{"toc entry", boldBlock(0, 100, "Overview of the Whole First Chapter 12", 18)},
	}

	for _, tt := range tests {
		headings, _ := classify(t, []model.TextBlock{tt.block}, "")
		if len(headings) != 0 {
			t.Errorf("%s: classified as heading: %+v", tt.name, headings)
		}
	}
}

func TestOCRHeadingNeedsLargeArea(t *testing.T) {
	big := ocrBlock(0, model.NewBBox(50, 50, 550, 200), "HOPE TO SEE YOU THERE")
	headings, _ := classify(t, []model.TextBlock{big}, "")
	if len(headings) != 1 || headings[0].Level != model.LevelH1 {
		t.Fatalf("large OCR block: got %+v, want one H1", headings)
	}

	small := ocrBlock(0, model.NewBBox(50, 50, 250, 80), "HOPE TO SEE YOU THERE")
	headings, _ = classify(t, []model.TextBlock{small}, "")
	if len(headings) != 0 {
		t.Errorf("small OCR block classified as heading: %+v", headings)
	}
}

func TestTitleBlocksExcluded(t *testing.T) {
	title := "Annual Technology Review"
	blocks := []model.TextBlock{
		boldBlock(0, 80, "Annual Technology Review", 28),
		bodyBlock(0, 200, "Opening paragraph of the report body."),
	}

	headings, content := classify(t, blocks, title)
	if len(headings) != 0 {
		t.Errorf("title block classified as heading: %+v", headings)
	}
	if len(content) != 1 {
		t.Fatalf("got %d content blocks, want 1", len(content))
	}
	if content[0].BBox.Y0 != 200 {
		t.Errorf("wrong block kept as content: %+v", content[0])
	}
}

func TestFallbackPromotesUnresolvedBlocks(t *testing.T) {
	pred := &stubPredictor{label: "H2"}
	c := NewClassifier()
	c.SetFallback(pred)

	blocks := []model.TextBlock{bodyBlock(0, 100, "Subtle heading without styling")}
	headings, content := c.Classify(blocks, testStats, "")

	if len(pred.rows) != 1 || len(pred.rows[0]) != 1 {
		t.Fatalf("predictor saw %v calls", pred.rows)
	}
	if len(headings) != 1 || headings[0].Level != model.LevelH2 {
		t.Fatalf("got %+v, want one H2 from fallback", headings)
	}
	if len(content) != 0 {
		t.Errorf("promoted block also kept as content: %+v", content)
	}
}

func TestFallbackBodyLabelKeepsContent(t *testing.T) {
	pred := &stubPredictor{label: "body"}
	c := NewClassifier()
	c.SetFallback(pred)

	blocks := []model.TextBlock{bodyBlock(0, 100, "Plain running paragraph text")}
	headings, content := c.Classify(blocks, testStats, "")

	if len(headings) != 0 {
		t.Errorf("body-labeled block promoted: %+v", headings)
	}
	if len(content) != 1 {
		t.Errorf("got %d content blocks, want 1", len(content))
	}
}

func TestFallbackSkipsMalformedBlocks(t *testing.T) {
	pred := &stubPredictor{label: "H1"}
	c := NewClassifier()
	c.SetFallback(pred)

	malformed := model.TextBlock{PageIndex: 0, Origin: model.OriginNative, PageWidth: 612, PageHeight: 792}
	headings, content := c.Classify([]model.TextBlock{malformed}, testStats, "")

	if len(pred.rows) != 0 {
		t.Errorf("predictor called for malformed block: %v", pred.rows)
	}
	if len(headings) != 0 {
		t.Errorf("malformed block promoted: %+v", headings)
	}
	if len(content) != 1 {
		t.Errorf("malformed block dropped from content, got %d", len(content))
	}
}
