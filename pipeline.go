package main

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// processFiles runs the locate and classify stages, one file at a time, and
// returns an outcome for every configured name in configured order.
func processFiles(cfg Config, log *zap.SugaredLogger) []FileOutcome {
	inputs, exists := locateFiles(cfg.Files, cfg.StartIndex)
	classifier := NewClassifier(cfg.Vocabulary)

	outcomes := make([]FileOutcome, 0, len(inputs))
	for i, input := range inputs {
		if !exists[i] {
			log.Warnf("File '%s' not found. Skipping.", input.Name)
			outcomes = append(outcomes, FileOutcome{
				Input: input,
				Err:   fmt.Errorf("%w: %s", ErrFileMissing, input.Name),
			})
			continue
		}

		counts, err := classifier.ClassifyFile(input.Name)
		if err != nil {
			log.With("cause", err.Error()).Errorf("File not found: %s", input.Name)
			outcomes = append(outcomes, FileOutcome{Input: input, Err: err})
			continue
		}
		log.Debugf("%s: %d cells, %d buffers", input.Name, counts.Cells, counts.Buffers)
		outcomes = append(outcomes, FileOutcome{
			Input: input,
			Summary: &FileSummary{
				Index:   input.Index,
				Case:    caseName(input.Name),
				Cells:   counts.Cells,
				Buffers: counts.Buffers,
			},
		})
	}
	return outcomes
}

// run executes one full report: classify the configured files, print the table
// to stdout, and persist it. Missing or unreadable inputs never fail the run;
// only writing the outputs can.
func run(cfg Config, stdout io.Writer, log *zap.SugaredLogger) (ResultTable, error) {
	result := buildTable(processFiles(cfg, log))

	if err := renderTable(stdout, result); err != nil {
		return result, fmt.Errorf("error writing report: %w", err)
	}

	if err := writeCSV(cfg.OutputPath, result); err != nil {
		return result, err
	}
	fmt.Fprintln(stdout)
	log.Infof("Results saved to '%s'.", cfg.OutputPath)

	if cfg.PDFPath != "" {
		if err := generatePDF(result, cfg.PDFPath); err != nil {
			return result, err
		}
		log.Infof("PDF saved to '%s'.", cfg.PDFPath)
	}

	if cfg.Clipboard {
		if err := clipboard.WriteAll(printTable(result)); err != nil {
			log.Warnf("could not copy table to clipboard: %v", err)
		} else {
			log.Info("Table copied to clipboard.")
		}
	}

	return result, nil
}
