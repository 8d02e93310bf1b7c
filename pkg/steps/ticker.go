package steps

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/systemstart/blottertools/pkg/api"
	"github.com/systemstart/blottertools/pkg/pipeline"
	"github.com/systemstart/blottertools/pkg/table"
)

// ImputeTicker synthesizes a ticker column when the input has none.
// Returns are aggregated over (date, lkid), so the imputed values only
// need to be distinct per row, not meaningful.
func ImputeTicker() pipeline.Step {
	return pipeline.NewStep(api.StepImputeTicker, imputeTicker)
}

func imputeTicker(tbl *table.Table, _ pipeline.Executor) (*table.Table, error) {
	if tbl.HasColumn(api.ColumnTicker) {
		return tbl, nil
	}

	ids, err := tbl.Column(api.ColumnRowID)
	if err != nil {
		return nil, err
	}
	tickers := make([]any, len(ids))
	for i, id := range ids {
		tickers[i] = fmt.Sprintf("ticker_%s", cast.ToString(id))
	}
	if err := tbl.SetColumn(api.ColumnTicker, tickers); err != nil {
		return nil, err
	}
	return tbl, nil
}
