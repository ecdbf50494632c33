// Package synapse provides a fluent API for extracting the hierarchical
// structure of PDF documents: the title, an H1-H3 outline, and the body
// text belonging to each heading.
//
// Basic usage:
//
//	result, err := synapse.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	result, err := synapse.Open("scan.pdf").
//	    WithOCR(engine).
//	    WithFallback(model).
//	    Outline()
//
// For advanced use cases the lower-level provider and outline packages are
// also available.
package synapse

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/SuryanshT01/projectSynapse/chunk"
	"github.com/SuryanshT01/projectSynapse/model"
	"github.com/SuryanshT01/projectSynapse/outline"
	"github.com/SuryanshT01/projectSynapse/provider"
	"github.com/SuryanshT01/projectSynapse/provider/pdfcontent"
)

// Job is a fluent extraction configuration for one document. Configure it
// with the With* methods, then call a terminal operation: Outline or
// Records.
type Job struct {
	path     string
	provider provider.Config
	pipeline outline.Config
	chunking chunk.Config
	ocr      provider.Engine
	fallback outline.Predictor
	log      *zap.Logger
}

// Open prepares an extraction job for a PDF file. The file is not touched
// until a terminal operation runs.
//
// Example:
//
//	result, err := synapse.Open("document.pdf").Outline()
func Open(path string) *Job {
	return &Job{
		path:     path,
		provider: provider.DefaultConfig(),
		pipeline: outline.DefaultConfig(),
		chunking: chunk.DefaultConfig(),
		log:      zap.NewNop(),
	}
}

// WithOCR attaches an OCR engine used for pages with no native text
func (j *Job) WithOCR(engine provider.Engine) *Job {
	j.ocr = engine
	return j
}

// WithFallback attaches the statistical fallback classifier
func (j *Job) WithFallback(p outline.Predictor) *Job {
	j.fallback = p
	return j
}

// WithLogger attaches a logger to the provider and the pipeline
func (j *Job) WithLogger(log *zap.Logger) *Job {
	if log != nil {
		j.log = log
	}
	return j
}

// WithProviderConfig overrides the block provider configuration
func (j *Job) WithProviderConfig(config provider.Config) *Job {
	j.provider = config
	return j
}

// WithPipelineConfig overrides the pipeline configuration
func (j *Job) WithPipelineConfig(config outline.Config) *Job {
	j.pipeline = config
	return j
}

// WithChunkConfig overrides the chunker configuration used by Records
func (j *Job) WithChunkConfig(config chunk.Config) *Job {
	j.chunking = config
	return j
}

// Outline runs the extraction pipeline and returns the document outline.
// Only opening the document can fail; extraction itself degrades to a
// smaller outline rather than erroring.
func (j *Job) Outline() (*model.Outline, error) {
	content, err := pdfcontent.Open(j.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", j.path, err)
	}
	defer content.Close()

	prov := provider.NewWithConfig(content, j.provider)
	prov.SetLogger(j.log)
	if j.ocr != nil {
		prov.SetOCR(j.ocr)
	}

	extractor := outline.NewWithConfig(prov, j.pipeline)
	extractor.SetLogger(j.log)
	if j.fallback != nil {
		extractor.SetFallback(j.fallback)
	}

	return extractor.Extract(), nil
}

// Records runs the extraction pipeline and chunks the outline into
// retrieval records. The document name in each record is the file's base
// name.
func (j *Job) Records() ([]chunk.Record, error) {
	result, err := j.Outline()
	if err != nil {
		return nil, err
	}
	return chunk.NewWithConfig(j.chunking).Chunk(filepath.Base(j.path), result), nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts and tests
// where error handling would be cumbersome.
//
// Example:
//
//	result := synapse.Must(synapse.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
