// Package chunk turns an extracted outline into retrieval records: each
// section's content is split into overlapping sentence windows carrying the
// document and section metadata a downstream index needs.
package chunk

import (
	"path/filepath"
	"strings"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/google/uuid"

	"github.com/SuryanshT01/projectSynapse/model"
)

// Record is one indexable chunk of section content
type Record struct {
	DocID         string `json:"doc_id"`
	DocName       string `json:"doc_name"`
	DocumentTitle string `json:"document_title"`
	SectionTitle  string `json:"section_title"`
	Page          int    `json:"page"`
	Text          string `json:"chunk_text"`
}

// Config holds configuration for the chunker
type Config struct {
	// Size is the number of sentences per chunk
	// Default: 5
	Size int

	// Overlap is the number of sentences shared between consecutive chunks
	// Default: 1
	Overlap int

	// MinSectionWords skips sections whose content has fewer words
	// Default: 5
	MinSectionWords int
}

// DefaultConfig returns the default chunker configuration
func DefaultConfig() Config {
	return Config{
		Size:            5,
		Overlap:         1,
		MinSectionWords: 5,
	}
}

// Chunker splits outline sections into sentence-window records
type Chunker struct {
	config Config
}

// New creates a chunker with default configuration
func New() *Chunker {
	return &Chunker{config: DefaultConfig()}
}

// NewWithConfig creates a chunker with custom configuration
func NewWithConfig(config Config) *Chunker {
	return &Chunker{config: config}
}

// Chunk produces the records for one document. Every record shares a fresh
// document id. When the extracted title is empty the document name, with its
// extension trimmed, stands in for it. Sections with too little content
// yield no records.
func (c *Chunker) Chunk(docName string, outline *model.Outline) []Record {
	if outline == nil {
		return nil
	}

	docID := uuid.NewString()
	title := outline.Title
	if title == "" {
		title = strings.TrimSuffix(docName, filepath.Ext(docName))
	}

	var records []Record
	for _, section := range outline.Outline {
		if len(strings.Fields(section.Content)) < c.config.MinSectionWords {
			continue
		}
		sectionTitle := section.Text
		if sectionTitle == "" {
			sectionTitle = "Untitled Section"
		}
		for _, text := range c.split(section.Content) {
			records = append(records, Record{
				DocID:         docID,
				DocName:       docName,
				DocumentTitle: title,
				SectionTitle:  sectionTitle,
				Page:          section.Page,
				Text:          text,
			})
		}
	}
	return records
}

// split breaks content into overlapping sentence windows. The final window
// may be shorter than Size; a window covering the last sentence ends the
// sequence.
func (c *Chunker) split(content string) []string {
	sents := splitSentences(content)
	if len(sents) == 0 {
		return nil
	}

	step := c.config.Size - c.config.Overlap
	if step < 1 {
		step = 1
	}

	var chunks []string
	for start := 0; start < len(sents); start += step {
		end := start + c.config.Size
		if end > len(sents) {
			end = len(sents)
		}
		chunks = append(chunks, strings.Join(sents[start:end], " "))
		if end >= len(sents) {
			break
		}
	}
	return chunks
}

// splitSentences segments whitespace-collapsed text into sentences
func splitSentences(content string) []string {
	text := strings.Join(strings.Fields(content), " ")

	var sents []string
	iter := sentences.FromString(text)
	for iter.Next() {
		if s := strings.TrimSpace(iter.Value()); s != "" {
			sents = append(sents, s)
		}
	}
	return sents
}
