// Package steps provides the blotter transformation steps and a factory
// that builds them from a run configuration. Each step is a plain task
// function adapted by pipeline.NewStep, so the same step runs under both
// the eager and the non-eager discipline.
package steps

import (
	"fmt"
	"strings"

	"github.com/systemstart/blottertools/pkg/api"
	"github.com/systemstart/blottertools/pkg/table"
)

// ValidateInput checks that a freshly loaded blotter carries every
// required column. The ticker column is optional; impute-ticker
// synthesizes it when absent.
func ValidateInput(t *table.Table) error {
	var missing []string
	for _, name := range api.RequiredColumns {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("input is missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
