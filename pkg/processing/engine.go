// Package processing runs blotter files end to end: load, validate,
// execute the pipeline, write the result. Batch mode discovers input
// files by glob and processes each independently.
package processing

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/systemstart/blottertools/pkg/api"
	"github.com/systemstart/blottertools/pkg/csvio"
	"github.com/systemstart/blottertools/pkg/pipeline"
	"github.com/systemstart/blottertools/pkg/steps"
)

// DefaultOutputName is used when no output path is given.
const DefaultOutputName = "blotter-new.csv"

// DefaultOutputPath returns the fallback output location under dir.
func DefaultOutputPath(dir string) string {
	return filepath.Join(dir, DefaultOutputName)
}

// RunFile processes a single blotter: reads inputPath, runs the
// configured pipeline, writes the configured columns to outputPath.
func RunFile(inputPath, outputPath string, cfg *api.Config) error {
	slog.Info("processing blotter", "input", inputPath, "output", outputPath, "eager", cfg.IsEager())

	tbl, err := csvio.Read(inputPath)
	if err != nil {
		return fmt.Errorf("loading blotter: %w", err)
	}
	if err := steps.ValidateInput(tbl); err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	pl, err := steps.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}

	exec, err := pipeline.NewExecutor(tbl, cfg.IsEager())
	if err != nil {
		return fmt.Errorf("creating executor: %w", err)
	}

	if err := pl.Run(exec); err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}

	if err := csvio.Write(outputPath, exec.Table(), cfg.OutputColumns(), cfg.Precision()); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	slog.Info("blotter written", "output", outputPath, "rows", exec.Table().Len())
	return nil
}
