package main

import (
	"github.com/spf13/cobra"

	"github.com/SuryanshT01/projectSynapse/chunk"
)

func chunkCmd() *cobra.Command {
	var size int
	var overlap int
	var useOCR bool
	var langs []string
	var modelPath string
	var encoderPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "chunk <pdf>",
		Short: "Extract a document and emit sentence-window retrieval records as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			defer log.Sync()

			job, cleanup, err := buildJob(args[0], useOCR, langs, modelPath, encoderPath, log)
			if err != nil {
				return err
			}
			defer cleanup()

			config := chunk.DefaultConfig()
			config.Size = size
			config.Overlap = overlap
			job.WithChunkConfig(config)

			records, err := job.Records()
			if err != nil {
				return err
			}
			if records == nil {
				records = []chunk.Record{}
			}
			return writeJSON(cmd, records)
		},
	}
	cmd.Flags().IntVar(&size, "size", chunk.DefaultConfig().Size, "sentences per chunk")
	cmd.Flags().IntVar(&overlap, "overlap", chunk.DefaultConfig().Overlap, "sentences shared between consecutive chunks")
	cmd.Flags().BoolVar(&useOCR, "ocr", false, "OCR scanned pages (requires a binary built with -tags ocr)")
	cmd.Flags().StringSliceVar(&langs, "lang", nil, "OCR languages, e.g. eng,deu")
	cmd.Flags().StringVar(&modelPath, "model", "", "path to the fallback classifier artifact")
	cmd.Flags().StringVar(&encoderPath, "encoder", "", "path to the fallback label encoder artifact")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress to stderr")
	return cmd
}
