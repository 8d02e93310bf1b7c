package steps

import (
	"github.com/systemstart/blottertools/pkg/api"
	"github.com/systemstart/blottertools/pkg/pipeline"
	"github.com/systemstart/blottertools/pkg/table"
)

// CreateKeys records the original row order in a rowid column. Later
// steps join their grouped results back to the blotter through it, so
// row identity survives aggregation.
func CreateKeys() pipeline.Step {
	return pipeline.NewStep(api.StepCreateKeys, createKeys)
}

func createKeys(tbl *table.Table, _ pipeline.Executor) (*table.Table, error) {
	ids := make([]any, tbl.Len())
	for i := range ids {
		ids[i] = i
	}
	if err := tbl.SetColumn(api.ColumnRowID, ids); err != nil {
		return nil, err
	}
	return tbl, nil
}
