package outline

import (
	"sort"

	"github.com/SuryanshT01/projectSynapse/model"
)

// defaultFontSize is assumed when no native spans carry a size, e.g. a
// fully-scanned document.
const defaultFontSize = 12.0

// defaultLineSpacing is assumed when no positive inter-line gaps exist.
const defaultLineSpacing = 12.0

// ComputeStats computes the corpus-wide typographic baselines used as
// thresholds by later stages. Only native blocks contribute: OCR spans
// carry no real size signal.
func ComputeStats(blocks []model.TextBlock) model.DocStats {
	return model.DocStats{
		MedianFontSize: medianFontSize(blocks),
		LineSpacing:    averageLineSpacing(blocks),
	}
}

// medianFontSize is the sorted-list median of every native span's font size
func medianFontSize(blocks []model.TextBlock) float64 {
	var sizes []float64
	for i := range blocks {
		if blocks[i].Origin == model.OriginOCR {
			continue
		}
		for _, l := range blocks[i].Lines {
			for _, s := range l.Spans {
				if s.FontSize > 0 {
					sizes = append(sizes, s.FontSize)
				}
			}
		}
	}
	if len(sizes) == 0 {
		return defaultFontSize
	}

	sort.Float64s(sizes)
	mid := len(sizes) / 2
	if len(sizes)%2 == 1 {
		return sizes[mid]
	}
	return (sizes[mid-1] + sizes[mid]) / 2
}

// averageLineSpacing is the mean of all positive gaps between consecutive
// line bottoms and tops within native blocks
func averageLineSpacing(blocks []model.TextBlock) float64 {
	sum, n := 0.0, 0
	for i := range blocks {
		if blocks[i].Origin == model.OriginOCR {
			continue
		}
		lines := blocks[i].Lines
		for j := 1; j < len(lines); j++ {
			gap := lines[j].BBox.Y0 - lines[j-1].BBox.Y1
			if gap > 0 {
				sum += gap
				n++
			}
		}
	}
	if n == 0 {
		return defaultLineSpacing
	}
	return sum / float64(n)
}
