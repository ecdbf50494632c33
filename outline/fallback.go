package outline

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/SuryanshT01/projectSynapse/model"
)

// Predictor is the statistical fallback classifier for blocks neither
// heuristic rule resolves. It is an explicitly constructed, injectable
// handle owned by the extractor rather than a process-wide singleton, so
// tests can substitute a stub. Implementations must be read-only after
// construction and safe to share across concurrent extractions.
type Predictor interface {
	// Predict returns one label per row ("H1", "H2", "H3", or a
	// body-text label)
	Predict(rows []FeatureVector) []string
}

// FeatureVector is the fixed-schema numeric description of one block fed
// to the fallback classifier. Field order defines the model's feature
// indices and must not change independently of the trained artifact.
type FeatureVector struct {
	FontRatio    float64 `json:"font_ratio"`
	Bold         float64 `json:"bold"`
	WordCount    float64 `json:"word_count"`
	AllCaps      float64 `json:"all_caps"`
	TitleCase    float64 `json:"title_case"`
	FormField    float64 `json:"form_field"`
	NumberedList float64 `json:"numbered_list"`
	PageNumber   float64 `json:"page_number"`
	XNorm        float64 `json:"x_norm"`
	YNorm        float64 `json:"y_norm"`
	WidthNorm    float64 `json:"width_norm"`
	Height       float64 `json:"height"`
	GapBefore    float64 `json:"gap_before"`
}

// slice returns the vector in feature-index order
func (v FeatureVector) slice() []float64 {
	return []float64{
		v.FontRatio, v.Bold, v.WordCount, v.AllCaps, v.TitleCase,
		v.FormField, v.NumberedList, v.PageNumber,
		v.XNorm, v.YNorm, v.WidthNorm, v.Height, v.GapBefore,
	}
}

var (
	reFormFieldText = regexp.MustCompile(`(?i)\b(name|designation|date of|pay|amount|signature)\b.*:?\s*$`)
	reNumberedItem  = regexp.MustCompile(`^\(?\d+[.)]\s`)
	rePageNumber    = regexp.MustCompile(`(?i)^(page\s+)?\d+(\s+of\s+\d+)?$`)
)

// Features builds the feature vector for one block. prev is the preceding
// block in reading order, or nil for the first.
func Features(b *model.TextBlock, prev *model.TextBlock, stats model.DocStats) FeatureVector {
	text := NormalizeText(b.Text())

	median := stats.MedianFontSize
	if median <= 0 {
		median = defaultFontSize
	}

	v := FeatureVector{
		FontRatio: b.AverageFontSize() / median,
		WordCount: float64(len(strings.Fields(text))),
		Height:    b.BBox.Height(),
	}
	if b.IsBold() {
		v.Bold = 1
	}
	if isAllCaps(text) {
		v.AllCaps = 1
	}
	if isTitleCase(text) {
		v.TitleCase = 1
	}
	if reFormFieldText.MatchString(text) {
		v.FormField = 1
	}
	if reNumberedItem.MatchString(text) {
		v.NumberedList = 1
	}
	if rePageNumber.MatchString(text) {
		v.PageNumber = 1
	}
	if b.PageWidth > 0 {
		v.XNorm = b.BBox.X0 / b.PageWidth
		v.WidthNorm = b.BBox.Width() / b.PageWidth
	}
	if b.PageHeight > 0 {
		v.YNorm = b.BBox.Y0 / b.PageHeight
	}
	if prev != nil && prev.PageIndex == b.PageIndex {
		v.GapBefore = b.BBox.Y0 - prev.BBox.Y1
	}
	return v
}

// treeNode is one node of a serialized decision tree. Leaf nodes carry a
// class-probability distribution; internal nodes split on a feature index.
type treeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
	Leaf      bool      `json:"leaf"`
}

type tree struct {
	Nodes []treeNode `json:"nodes"`
}

// labelEncoder maps class indices to labels
type labelEncoder struct {
	Classes []string `json:"classes"`
}

// TreeModel is a pre-trained decision-tree ensemble loaded from two opaque
// artifact files: the serialized trees and the label encoder. It is
// read-only after load and safe to share across concurrent extractions.
type TreeModel struct {
	trees   []tree
	classes []string
}

// ErrModelUnavailable is returned by LoadModel when the classifier
// artifact cannot be read. Callers treat it as "fallback disabled", not a
// failure.
var ErrModelUnavailable = errors.New("classifier artifact unavailable")

// LoadModel loads the classifier artifact from its two files: the
// serialized trees and the label encoder.
func LoadModel(modelPath, encoderPath string) (*TreeModel, error) {
	modelData, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	encoderData, err := os.ReadFile(encoderPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	var trees []tree
	if err := sonic.Unmarshal(modelData, &trees); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	var encoder labelEncoder
	if err := sonic.Unmarshal(encoderData, &encoder); err != nil {
		return nil, fmt.Errorf("decode label encoder: %w", err)
	}
	if len(trees) == 0 || len(encoder.Classes) == 0 {
		return nil, fmt.Errorf("empty classifier artifact")
	}

	return &TreeModel{trees: trees, classes: encoder.Classes}, nil
}

// Predict returns the majority-probability label for each row, averaging
// leaf distributions across the ensemble
func (m *TreeModel) Predict(rows []FeatureVector) []string {
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = m.predictOne(row.slice())
	}
	return labels
}

func (m *TreeModel) predictOne(features []float64) string {
	probs := make([]float64, len(m.classes))
	for _, t := range m.trees {
		leaf := t.walk(features)
		for j := 0; j < len(probs) && j < len(leaf); j++ {
			probs[j] += leaf[j]
		}
	}

	best := 0
	for j := 1; j < len(probs); j++ {
		if probs[j] > probs[best] {
			best = j
		}
	}
	return m.classes[best]
}

// walk descends from the root to a leaf distribution
func (t tree) walk(features []float64) []float64 {
	idx := 0
	for idx >= 0 && idx < len(t.Nodes) {
		node := t.Nodes[idx]
		if node.Leaf {
			return node.Value
		}
		if node.Feature < 0 || node.Feature >= len(features) {
			return nil
		}
		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
	return nil
}
