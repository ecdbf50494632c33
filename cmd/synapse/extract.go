package main

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SuryanshT01/projectSynapse"
	"github.com/SuryanshT01/projectSynapse/model"
	"github.com/SuryanshT01/projectSynapse/outline"
	"github.com/SuryanshT01/projectSynapse/provider/tesseract"
)

func extractCmd() *cobra.Command {
	var format string
	var useOCR bool
	var langs []string
	var modelPath string
	var encoderPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "extract <pdf>",
		Short: "Extract a document's title and heading outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			defer log.Sync()

			job, cleanup, err := buildJob(args[0], useOCR, langs, modelPath, encoderPath, log)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := job.Outline()
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return writeJSON(cmd, result)
			case "table":
				writeTable(cmd, result)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want json or table)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json|table")
	cmd.Flags().BoolVar(&useOCR, "ocr", false, "OCR scanned pages (requires a binary built with -tags ocr)")
	cmd.Flags().StringSliceVar(&langs, "lang", nil, "OCR languages, e.g. eng,deu")
	cmd.Flags().StringVar(&modelPath, "model", "", "path to the fallback classifier artifact")
	cmd.Flags().StringVar(&encoderPath, "encoder", "", "path to the fallback label encoder artifact")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress to stderr")
	return cmd
}

// buildJob assembles an extraction job from the shared command flags. The
// returned cleanup releases the OCR engine, if any.
func buildJob(path string, useOCR bool, langs []string, modelPath, encoderPath string, log *zap.Logger) (*synapse.Job, func(), error) {
	job := synapse.Open(path).WithLogger(log)
	cleanup := func() {}

	if useOCR {
		engine, err := tesseract.New()
		if err != nil {
			return nil, nil, err
		}
		if len(langs) > 0 {
			if err := engine.SetLanguage(langs...); err != nil {
				engine.Close()
				return nil, nil, err
			}
		}
		job.WithOCR(engine)
		cleanup = func() { engine.Close() }
	}

	if modelPath != "" && encoderPath != "" {
		fallback, err := outline.LoadModel(modelPath, encoderPath)
		if err != nil {
			// Degrade to heuristics-only extraction
			log.Warn("fallback classifier unavailable", zap.Error(err))
		} else {
			job.WithFallback(fallback)
		}
	}

	return job, cleanup, nil
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func writeJSON(cmd *cobra.Command, v any) error {
	out, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func writeTable(cmd *cobra.Command, result *model.Outline) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetTitle(result.Title)
	t.AppendHeader(table.Row{"Level", "Page", "Heading", "Content"})
	for _, entry := range result.Outline {
		t.AppendRow(table.Row{entry.Level, entry.Page + 1, entry.Text, preview(entry.Content, 60)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// preview truncates content to a single short cell
func preview(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
