package outline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/SuryanshT01/projectSynapse/model"
)

// ClassifierConfig holds configuration for heading classification
type ClassifierConfig struct {
	// TitleOverlapRatio is the fraction of the title's distinct words
	// that, present in a block, excludes it from classification
	// Default: 0.7
	TitleOverlapRatio float64

	// MinLabelWords and MinLabelLen reject numbered matches whose label
	// has too little substance: fewer words than MinLabelWords AND fewer
	// characters than MinLabelLen
	// Defaults: 2 and 15
	MinLabelWords int
	MinLabelLen   int

	// MaxLevel caps the numbered-heading depth
	// Default: 3
	MaxLevel int

	// MaxWords is the exclusive upper bound on styled-heading word count
	// Default: 30
	MaxWords int

	// TOCMaxWords is the word count above which a short block ending in
	// digits is rejected as a table-of-contents entry
	// Default: 5
	TOCMaxWords int

	// H1Ratio and H2Ratio are font-size multiples of the median for
	// bold-or-caps headings; H3BoldRatio and H3TitleRatio are the H3
	// thresholds for bold and title-case text respectively
	// Defaults: 1.4, 1.25, 1.15, 1.2
	H1Ratio      float64
	H2Ratio      float64
	H3BoldRatio  float64
	H3TitleRatio float64

	// OCRLargeArea is the block area, in page units squared, above which
	// an OCR block with few words classifies as H1 (poster-style scans)
	// Default: 50000
	OCRLargeArea float64

	// OCRMaxWords is the exclusive word-count bound for OCR H1 blocks
	// Default: 10
	OCRMaxWords int
}

// DefaultClassifierConfig returns the default classification configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		TitleOverlapRatio: 0.7,
		MinLabelWords:     2,
		MinLabelLen:       15,
		MaxLevel:          3,
		MaxWords:          30,
		TOCMaxWords:       5,
		H1Ratio:           1.4,
		H2Ratio:           1.25,
		H3BoldRatio:       1.15,
		H3TitleRatio:      1.2,
		OCRLargeArea:      50000,
		OCRMaxWords:       10,
	}
}

var (
	// reHierNumber matches a leading hierarchical numeral and its label
	reHierNumber = regexp.MustCompile(`^(\d+(?:\.\d+)*)[.)]?\s+(.+)$`)

	// reDotLeaders matches table-of-contents dotted leaders
	reDotLeaders = regexp.MustCompile(`\.{4,}`)

	reEndsInDigits = regexp.MustCompile(`\d+\s*$`)
)

// rule is one heading heuristic: a pure function returning a level and
// whether it matched. Rules are composed first-match-wins.
type rule func(b *model.TextBlock, text string, stats model.DocStats) (model.HeadingLevel, bool)

// Classifier identifies heading blocks among the filtered blocks
type Classifier struct {
	config   ClassifierConfig
	fallback Predictor
}

// NewClassifier creates a classifier with default configuration and no
// statistical fallback
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultClassifierConfig()}
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{config: config}
}

// SetFallback attaches a statistical fallback used for blocks neither
// heuristic rule resolves. A nil fallback disables the stage.
func (c *Classifier) SetFallback(p Predictor) {
	c.fallback = p
}

// Classify splits the filtered blocks into heading candidates and content
// blocks. Blocks carrying the title text are excluded from both. The
// returned headings are not yet sorted or level-validated.
func (c *Classifier) Classify(blocks []model.TextBlock, stats model.DocStats, title string) ([]model.Heading, []model.TextBlock) {
	titleWords := distinctWords(title)
	rules := []rule{c.numberedRule, c.styledRule}

	var headings []model.Heading
	var content []model.TextBlock
	var unresolved []int // indices into blocks

	for i := range blocks {
		b := &blocks[i]
		text := NormalizeText(b.Text())
		if c.overlapsTitle(text, titleWords) {
			continue
		}

		matched := false
		for _, r := range rules {
			if level, ok := r(b, text, stats); ok {
				headings = append(headings, newHeading(level, text, b))
				matched = true
				break
			}
		}
		if !matched {
			unresolved = append(unresolved, i)
		}
	}

	promoted := c.applyFallback(blocks, unresolved, stats)
	for _, idx := range unresolved {
		if level, ok := promoted[idx]; ok {
			b := &blocks[idx]
			headings = append(headings, newHeading(level, NormalizeText(b.Text()), b))
		} else {
			content = append(content, blocks[idx])
		}
	}

	return headings, content
}

// applyFallback runs the statistical classifier over unresolved blocks and
// returns the block indices it promotes to headings
func (c *Classifier) applyFallback(blocks []model.TextBlock, unresolved []int, stats model.DocStats) map[int]model.HeadingLevel {
	promoted := make(map[int]model.HeadingLevel)
	if c.fallback == nil || len(unresolved) == 0 {
		return promoted
	}

	rows := make([]FeatureVector, 0, len(unresolved))
	valid := make([]int, 0, len(unresolved))
	for _, idx := range unresolved {
		b := &blocks[idx]
		if len(b.Lines) == 0 || b.BBox.IsEmpty() {
			// Malformed block: skipped during feature extraction
			continue
		}
		var prev *model.TextBlock
		if idx > 0 {
			prev = &blocks[idx-1]
		}
		rows = append(rows, Features(b, prev, stats))
		valid = append(valid, idx)
	}
	if len(rows) == 0 {
		return promoted
	}

	labels := c.fallback.Predict(rows)
	for i, label := range labels {
		if i >= len(valid) {
			break
		}
		if level, ok := levelFromLabel(label); ok {
			promoted[valid[i]] = level
		}
	}
	return promoted
}

// newHeading builds a heading candidate from a classified block
func newHeading(level model.HeadingLevel, text string, b *model.TextBlock) model.Heading {
	return model.Heading{
		Level: level,
		Text:  CleanHeadingText(text),
		Page:  b.PageIndex,
		Y:     b.BBox.Y0,
	}
}

// numberedRule matches a leading hierarchical numeral pattern followed by a
// label with enough substance. Tabular blocks are skipped. The level is the
// numeral's dot count plus one, accepted only for levels 1-3.
func (c *Classifier) numberedRule(b *model.TextBlock, text string, stats model.DocStats) (model.HeadingLevel, bool) {
	if b.Tabular {
		return model.LevelUnknown, false
	}
	m := reHierNumber.FindStringSubmatch(text)
	if m == nil {
		return model.LevelUnknown, false
	}

	label := m[2]
	if len(strings.Fields(label)) < c.config.MinLabelWords && len(label) < c.config.MinLabelLen {
		return model.LevelUnknown, false
	}

	level := strings.Count(m[1], ".") + 1
	if level < 1 || level > c.config.MaxLevel {
		return model.LevelUnknown, false
	}
	return model.HeadingLevel(level), true
}

// styledRule classifies by typographic styling. Native blocks compare font
// size against the median with boldness/caps conditions; OCR blocks, which
// carry no typography, classify as H1 only on large area with few words.
func (c *Classifier) styledRule(b *model.TextBlock, text string, stats model.DocStats) (model.HeadingLevel, bool) {
	words := len(strings.Fields(text))
	if words < 1 || words >= c.config.MaxWords {
		return model.LevelUnknown, false
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, ":") || strings.HasSuffix(text, ",") {
		return model.LevelUnknown, false
	}
	if looksLikeTOCEntry(text, words, c.config.TOCMaxWords) {
		return model.LevelUnknown, false
	}

	if b.Origin == model.OriginOCR {
		if b.BBox.Area() > c.config.OCRLargeArea && words < c.config.OCRMaxWords {
			return model.LevelH1, true
		}
		return model.LevelUnknown, false
	}

	median := stats.MedianFontSize
	if median <= 0 {
		median = defaultFontSize
	}
	size := b.AverageFontSize()
	bold := b.IsBold()
	caps := isAllCaps(text)

	switch {
	case size > c.config.H1Ratio*median && (bold || caps):
		return model.LevelH1, true
	case size > c.config.H2Ratio*median && (bold || caps):
		return model.LevelH2, true
	case size > c.config.H3BoldRatio*median && bold:
		return model.LevelH3, true
	case size > c.config.H3TitleRatio*median && isTitleCase(text):
		return model.LevelH3, true
	}
	return model.LevelUnknown, false
}

// looksLikeTOCEntry rejects table-of-contents artifacts: dotted leaders, or
// a short block ending in digits with more than a few words
func looksLikeTOCEntry(text string, words, tocMaxWords int) bool {
	if reDotLeaders.MatchString(text) {
		return true
	}
	return len(text) < 80 && words > tocMaxWords && reEndsInDigits.MatchString(text)
}

// overlapsTitle reports whether a block carries the title text: at least
// TitleOverlapRatio of the title's distinct words present in the block
func (c *Classifier) overlapsTitle(text string, titleWords map[string]bool) bool {
	if len(titleWords) == 0 {
		return false
	}
	blockWords := distinctWords(text)
	hits := 0
	for w := range titleWords {
		if blockWords[w] {
			hits++
		}
	}
	return float64(hits) >= c.config.TitleOverlapRatio*float64(len(titleWords))
}

// distinctWords returns the lowercased distinct word set of a text
func distinctWords(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[strings.Trim(w, ".,:;!?()")] = true
	}
	delete(words, "")
	return words
}

// isAllCaps reports whether text is at least 90% uppercase among letters
func isAllCaps(text string) bool {
	upper, lower := 0, 0
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	if upper+lower < 3 {
		return false
	}
	return lower == 0 || float64(upper)/float64(upper+lower) > 0.9
}

// isTitleCase reports whether most words start with an uppercase letter
func isTitleCase(text string) bool {
	fields := strings.Fields(text)
	letters, capitalized := 0, 0
	for _, w := range fields {
		r := []rune(w)[0]
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			capitalized++
		}
	}
	if letters == 0 {
		return false
	}
	return float64(capitalized)/float64(letters) >= 0.75
}

// levelFromLabel maps a fallback prediction label to a heading level
func levelFromLabel(label string) (model.HeadingLevel, bool) {
	switch label {
	case "H1":
		return model.LevelH1, true
	case "H2":
		return model.LevelH2, true
	case "H3":
		return model.LevelH3, true
	default:
		return model.LevelUnknown, false
	}
}
