package steps

import (
	"log/slog"

	"github.com/systemstart/blottertools/pkg/api"
	"github.com/systemstart/blottertools/pkg/pipeline"
	"github.com/systemstart/blottertools/pkg/render"
	"github.com/systemstart/blottertools/pkg/table"
)

// AggregateDaily reduces the blotter to one row per (date, lkid): summed
// pal, exposure and return, first-alphabetical identity columns. Each
// group's first row (by rowid) is kept as the surviving entry; the rows
// that were folded into it are dropped. The result is sorted by
// (lkid, date).
func AggregateDaily() pipeline.Step {
	return pipeline.NewStep(api.StepAggregateDaily, aggregateDaily)
}

func aggregateDaily(tbl *table.Table, _ pipeline.Executor) (*table.Table, error) {
	agg, err := tbl.Aggregate([]string{api.ColumnDate, api.ColumnLKID}, map[string]table.Agg{
		api.ColumnAnalyst:  table.MinValue,
		api.ColumnSector:   table.MinValue,
		api.ColumnPAL:      table.SumDecimal,
		api.ColumnExposure: table.SumDecimal,
		api.ColumnReturn:   table.SumDecimal,
		api.ColumnRowID:    table.FirstValue,
	})
	if err != nil {
		return nil, err
	}

	// Null out the reduced columns first: after the join-back only the
	// groups' representative rows carry values, and every other row is
	// dropped as already contributed.
	tbl.Fill(api.ColumnPAL, nil)
	tbl.Fill(api.ColumnExposure, nil)
	tbl.Fill(api.ColumnReturn, nil)

	if err := tbl.UpdateBy(api.ColumnRowID, agg); err != nil {
		return nil, err
	}
	tbl.DropNullRows()

	if err := tbl.SortBy(api.ColumnLKID, api.ColumnDate); err != nil {
		return nil, err
	}

	slog.Debug("daily blotter", "table", render.Markdown(tbl))
	return tbl, nil
}
