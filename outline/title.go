package outline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/SuryanshT01/projectSynapse/model"
)

// TitleConfig holds configuration for title extraction
type TitleConfig struct {
	// MaxTop is the distance from the top of the page, in page units,
	// beyond which lines are not title candidates
	// Default: 400
	MaxTop float64

	// HighFontRatio and LowFontRatio are thresholds against the page's
	// maximum font size for the two size-based score tiers
	// Defaults: 0.9 and 0.7
	HighFontRatio float64
	LowFontRatio  float64

	// HighFontScore, LowFontScore, BoldScore, and ShortScore are the
	// additive scores for the corresponding signals
	// Defaults: 5, 2, 2, 1
	HighFontScore int
	LowFontScore  int
	BoldScore     int
	ShortScore    int

	// ShortWordLimit is the word count below which a line earns ShortScore
	// Default: 15
	ShortWordLimit int

	// AbsorbScoreWindow is the score distance from the best candidate
	// within which lines may be absorbed into a multi-line title
	// Default: 2
	AbsorbScoreWindow int

	// AbsorbGapFactor is the multiple of the best candidate's font size
	// within which an absorbed line must vertically follow the last one
	// Default: 2.5
	AbsorbGapFactor float64

	// MinLength is the minimum accepted title length in characters
	// Default: 3
	MinLength int
}

// DefaultTitleConfig returns the default title extraction configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxTop:            400,
		HighFontRatio:     0.9,
		LowFontRatio:      0.7,
		HighFontScore:     5,
		LowFontScore:      2,
		BoldScore:         2,
		ShortScore:        1,
		ShortWordLimit:    15,
		AbsorbScoreWindow: 2,
		AbsorbGapFactor:   2.5,
		MinLength:         3,
	}
}

var (
	// reTitleBoilerplate rejects lines that are page furniture rather
	// than title material
	reTitleBoilerplate = regexp.MustCompile(`(?i)^\s*(date\s*:|page\b|confidential|draft\b|version\s|copyright|©|all rights reserved)`)

	// reFilenameShaped rejects titles that are just the source file name
	reFilenameShaped = regexp.MustCompile(`(?i)^[\w\-. ]+\.(pdf|docx?|txt)$`)
)

// TitleExtractor scores first-page lines and assembles the document title
type TitleExtractor struct {
	config TitleConfig
}

// NewTitleExtractor creates a title extractor with default configuration
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{config: DefaultTitleConfig()}
}

// NewTitleExtractorWithConfig creates a title extractor with custom configuration
func NewTitleExtractorWithConfig(config TitleConfig) *TitleExtractor {
	return &TitleExtractor{config: config}
}

// titleCandidate is one scored first-page line
type titleCandidate struct {
	text     string
	y        float64
	fontSize float64
	score    int
}

// Find returns the document title assembled from the best-scoring
// first-page lines, or "" when no title is detected. An empty title is a
// valid result, not a failure.
func (e *TitleExtractor) Find(blocks []model.TextBlock) string {
	maxFont := pageMaxFontSize(blocks)
	if maxFont <= 0 {
		return ""
	}

	candidates := e.collect(blocks, maxFont)
	if len(candidates) == 0 {
		return ""
	}

	// Best score first; among equal scores prefer the line nearer the top
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].y < candidates[j].y
	})

	best := candidates[0]
	absorbed := []titleCandidate{best}
	last := best
	for _, c := range candidates[1:] {
		if best.score-c.score > e.config.AbsorbScoreWindow {
			break
		}
		gap := c.y - last.y
		if gap < 0 {
			gap = -gap
		}
		if gap < e.config.AbsorbGapFactor*best.fontSize {
			absorbed = append(absorbed, c)
			last = c
		}
	}

	sort.SliceStable(absorbed, func(i, j int) bool {
		return absorbed[i].y < absorbed[j].y
	})

	parts := make([]string, len(absorbed))
	for i, c := range absorbed {
		parts[i] = c.text
	}
	title := strings.Join(parts, " ")

	if len(title) < e.config.MinLength || reFilenameShaped.MatchString(title) {
		return ""
	}
	return title
}

// collect scores every eligible first-page line
func (e *TitleExtractor) collect(blocks []model.TextBlock, maxFont float64) []titleCandidate {
	var candidates []titleCandidate
	for i := range blocks {
		b := &blocks[i]
		if b.PageIndex != 0 || b.Origin != model.OriginNative {
			continue
		}
		for _, line := range b.Lines {
			text := NormalizeText(line.Text())
			if text == "" || isDigits(text) || reTitleBoilerplate.MatchString(text) {
				continue
			}
			if line.BBox.Y0 > e.config.MaxTop {
				continue
			}
			candidates = append(candidates, e.score(line, text, maxFont))
		}
	}
	return candidates
}

// score computes a candidate's additive score
func (e *TitleExtractor) score(line model.Line, text string, maxFont float64) titleCandidate {
	size := lineAverageFontSize(line)
	score := 0
	switch {
	case size >= e.config.HighFontRatio*maxFont:
		score += e.config.HighFontScore
	case size >= e.config.LowFontRatio*maxFont:
		score += e.config.LowFontScore
	}
	for _, s := range line.Spans {
		if s.IsBold() {
			score += e.config.BoldScore
			break
		}
	}
	if len(strings.Fields(text)) < e.config.ShortWordLimit {
		score += e.config.ShortScore
	}
	return titleCandidate{text: text, y: line.BBox.Y0, fontSize: size, score: score}
}

// pageMaxFontSize returns the maximum span font size on page 0
func pageMaxFontSize(blocks []model.TextBlock) float64 {
	max := 0.0
	for i := range blocks {
		if blocks[i].PageIndex != 0 || blocks[i].Origin != model.OriginNative {
			continue
		}
		for _, l := range blocks[i].Lines {
			for _, s := range l.Spans {
				if s.FontSize > max {
					max = s.FontSize
				}
			}
		}
	}
	return max
}

// lineAverageFontSize returns the mean span font size of a line
func lineAverageFontSize(line model.Line) float64 {
	sum, n := 0.0, 0
	for _, s := range line.Spans {
		sum += s.FontSize
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
