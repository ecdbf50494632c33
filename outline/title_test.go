package outline

import (
	"testing"

	"github.com/SuryanshT01/projectSynapse/model"
)

func TestTitleLargestLineWins(t *testing.T) {
	blocks := []model.TextBlock{
		boldBlock(0, 80, "Annual Technology Review", 28),
		bodyBlock(0, 200, "This report summarizes the year in technology."),
		bodyBlock(0, 230, "It covers hardware, software, and infrastructure."),
	}

	got := NewTitleExtractor().Find(blocks)
	if got != "Annual Technology Review" {
		t.Errorf("Find() = %q, want %q", got, "Annual Technology Review")
	}
}

func TestTitleAbsorbsAdjacentLines(t *testing.T) {
	// Subtitle directly under the main line, close in score and position
	blocks := []model.TextBlock{
		boldBlock(0, 80, "Annual Technology Review", 28),
		boldBlock(0, 115, "Infrastructure Edition", 26),
		bodyBlock(0, 300, "Body paragraph far below the heading area."),
	}

	got := NewTitleExtractor().Find(blocks)
	want := "Annual Technology Review Infrastructure Edition"
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestTitleAbsorbRespectsGap(t *testing.T) {
	// Same scores but the second line is far below the first; the gap
	// window (2.5x the best font size) excludes it
	blocks := []model.TextBlock{
		boldBlock(0, 60, "Annual Technology Review", 28),
		boldBlock(0, 350, "Unrelated Large Callout", 28),
	}

	got := NewTitleExtractor().Find(blocks)
	if got != "Annual Technology Review" {
		t.Errorf("Find() = %q, want %q", got, "Annual Technology Review")
	}
}

func TestTitleSkipsBoilerplateAndDigits(t *testing.T) {
	blocks := []model.TextBlock{
		boldBlock(0, 40, "CONFIDENTIAL", 30),
		boldBlock(0, 70, "Date: 2024-03-01", 30),
		boldBlock(0, 100, "3", 30),
		boldBlock(0, 140, "Quarterly Results", 24),
	}

	got := NewTitleExtractor().Find(blocks)
	if got != "Quarterly Results" {
		t.Errorf("Find() = %q, want %q", got, "Quarterly Results")
	}
}

func TestTitleIgnoresLowerHalfOfPage(t *testing.T) {
	blocks := []model.TextBlock{
		bodyBlock(0, 100, "A plain opening paragraph near the top."),
		boldBlock(0, 500, "Huge Footer Banner", 36),
	}

	got := NewTitleExtractor().Find(blocks)
	if got == "Huge Footer Banner" {
		t.Errorf("Find() picked a line below the title zone: %q", got)
	}
}

func TestTitleRejectsFilenameShaped(t *testing.T) {
	blocks := []model.TextBlock{
		boldBlock(0, 80, "quarterly-results.pdf", 28),
	}

	if got := NewTitleExtractor().Find(blocks); got != "" {
		t.Errorf("Find() = %q, want empty for filename-shaped title", got)
	}
}

func TestTitleEmptyForOCROnlyDocument(t *testing.T) {
	blocks := []model.TextBlock{
		ocrBlock(0, model.NewBBox(50, 50, 550, 300), "SCANNED POSTER"),
	}

	if got := NewTitleExtractor().Find(blocks); got != "" {
		t.Errorf("Find() = %q, want empty for OCR-only document", got)
	}
}

func TestTitleEmptyForNoBlocks(t *testing.T) {
	if got := NewTitleExtractor().Find(nil); got != "" {
		t.Errorf("Find(nil) = %q, want empty", got)
	}
}
