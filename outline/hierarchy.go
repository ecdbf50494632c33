package outline

import "github.com/SuryanshT01/projectSynapse/model"

// ValidateHierarchy repairs level skips and caps depth in a single
// left-to-right pass. A heading more than one level deeper than its
// predecessor is demoted to predecessor+1; headings are never promoted.
// The pass is idempotent: validating its own output changes nothing.
func ValidateHierarchy(headings []model.Heading) []model.Heading {
	out := make([]model.Heading, len(headings))
	copy(out, headings)

	last := 0
	for i := range out {
		level := int(out[i].Level)
		if level < 1 {
			level = 1
		}
		if level > 3 {
			level = 3
		}
		if level > last+1 {
			level = last + 1
		}
		out[i].Level = model.HeadingLevel(level)
		last = level
	}
	return out
}
