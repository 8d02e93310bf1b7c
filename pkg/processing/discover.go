package processing

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/systemstart/blottertools/pkg/api"
)

// DefaultPattern matches every CSV under the batch root.
const DefaultPattern = "**/*.csv"

// outputSuffix marks files this tool wrote; batch discovery skips them
// so re-running over the same tree does not process its own outputs.
const outputSuffix = "-out.csv"

// DiscoverInputs returns the blotter files under root matching the glob
// pattern, sorted, excluding previously written outputs.
func DiscoverInputs(root, pattern string) ([]string, error) {
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	var inputs []string
	for _, m := range matches {
		if strings.HasSuffix(m, outputSuffix) {
			continue
		}
		info, err := fs.Stat(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		inputs = append(inputs, filepath.Join(root, filepath.FromSlash(m)))
	}
	slices.Sort(inputs)
	return inputs, nil
}

// OutputPath derives the batch output filename for an input blotter.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + outputSuffix
}

// RunBatch discovers blotters under root and processes each one, writing
// results next to their inputs. Failures do not stop the batch; they are
// reported together at the end.
func RunBatch(root, pattern string, cfg *api.Config) error {
	if pattern == "" {
		pattern = DefaultPattern
	}

	inputs, err := DiscoverInputs(root, pattern)
	if err != nil {
		return fmt.Errorf("discovering blotters: %w", err)
	}
	if len(inputs) == 0 {
		slog.Warn("no blotter files found", "dir", root, "pattern", pattern)
		return nil
	}

	slog.Info("discovered blotters", "count", len(inputs))

	var failed []string
	for _, input := range inputs {
		if err := RunFile(input, OutputPath(input), cfg); err != nil {
			slog.Error("blotter failed", "input", input, "error", err)
			failed = append(failed, input)
		} else {
			slog.Info("blotter succeeded", "input", input)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d blotter(s) failed: %v", len(failed), failed)
	}
	return nil
}
