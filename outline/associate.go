package outline

import (
	"sort"
	"strings"

	"github.com/SuryanshT01/projectSynapse/model"
)

// Associate assigns body text to the nearest preceding heading. Headings
// are sorted by (page, y); each heading's content window is every block
// strictly after it and strictly before the next heading in reading order.
// A heading with no content keeps an empty content string; it is never
// dropped here.
func Associate(headings []model.Heading, blocks []model.TextBlock) []model.Heading {
	if len(headings) == 0 {
		return headings
	}

	sorted := make([]model.Heading, len(headings))
	copy(sorted, headings)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		return sorted[i].Y < sorted[j].Y
	})

	for i := range sorted {
		var next *model.Heading
		if i+1 < len(sorted) {
			next = &sorted[i+1]
		}

		var parts []string
		for j := range blocks {
			b := &blocks[j]
			if !after(b.PageIndex, b.BBox.Y0, sorted[i].Page, sorted[i].Y) {
				continue
			}
			if next != nil && !after(next.Page, next.Y, b.PageIndex, b.BBox.Y0) {
				continue
			}
			if text := NormalizeText(b.Text()); text != "" {
				parts = append(parts, text)
			}
		}
		sorted[i].Content = strings.Join(parts, "\n")
	}
	return sorted
}

// after reports whether (page, y) lies strictly after (refPage, refY) in
// reading order
func after(page int, y float64, refPage int, refY float64) bool {
	if page != refPage {
		return page > refPage
	}
	return y > refY
}
