package steps

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/systemstart/blottertools/pkg/api"
	"github.com/systemstart/blottertools/pkg/pipeline"
	"github.com/systemstart/blottertools/pkg/render"
	"github.com/systemstart/blottertools/pkg/table"
)

// OpenLiquidity computes each position's net liquidity at the open of
// day. Per (lkid, ticker) group, same-date collisions collapse into one
// entry (first-alphabetical identity columns, summed pal and exposure);
// end-of-day exposure then carries over as the next calendar day's open.
// A day with no entry on the previous day gets its open imputed as
// exposure - pal. Results land on the representative rows via rowid.
func OpenLiquidity() pipeline.Step {
	return pipeline.NewStep(api.StepOpenLiquidity, openLiquidity)
}

func openLiquidity(tbl *table.Table, exec pipeline.Executor) (*table.Table, error) {
	tbl.Fill(api.ColumnOpenLiq, nil)

	groups, err := exec.GroupBy(api.ColumnLKID, api.ColumnTicker)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		daily, err := g.Table.Aggregate([]string{api.ColumnDate}, map[string]table.Agg{
			api.ColumnRowID:    table.MinValue,
			api.ColumnAnalyst:  table.MinValue,
			api.ColumnSector:   table.MinValue,
			api.ColumnPAL:      table.SumDecimal,
			api.ColumnExposure: table.SumDecimal,
		})
		if err != nil {
			return nil, fmt.Errorf("position %v: %w", g.Key, err)
		}

		open, err := shiftOpenLiquidity(daily)
		if err != nil {
			return nil, fmt.Errorf("position %v: %w", g.Key, err)
		}
		if err := daily.SetColumn(api.ColumnOpenLiq, open); err != nil {
			return nil, err
		}

		if err := tbl.UpdateBy(api.ColumnRowID, daily); err != nil {
			return nil, err
		}
	}

	slog.Debug("open liquidity computed", "table", render.Markdown(tbl))
	return tbl, nil
}

// shiftOpenLiquidity derives the open column for one position's daily
// entries: the previous calendar day's end-of-day exposure when that day
// exists, otherwise exposure - pal for the first day of a run.
func shiftOpenLiquidity(daily *table.Table) ([]any, error) {
	dates, err := daily.Column(api.ColumnDate)
	if err != nil {
		return nil, err
	}
	exposures, err := daily.Column(api.ColumnExposure)
	if err != nil {
		return nil, err
	}
	pals, err := daily.Column(api.ColumnPAL)
	if err != nil {
		return nil, err
	}

	eodByDay := make(map[time.Time]decimal.Decimal, len(dates))
	for i, v := range dates {
		day, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("column %q holds %T, want a parsed date", api.ColumnDate, v)
		}
		eod, err := table.AsDecimal(exposures[i])
		if err != nil {
			return nil, err
		}
		eodByDay[day] = eod
	}

	open := make([]any, len(dates))
	for i, v := range dates {
		day := v.(time.Time)
		if eod, ok := eodByDay[day.AddDate(0, 0, -1)]; ok {
			open[i] = eod
			continue
		}
		exposure, err := table.AsDecimal(exposures[i])
		if err != nil {
			return nil, err
		}
		pal, err := table.AsDecimal(pals[i])
		if err != nil {
			return nil, err
		}
		open[i] = exposure.Sub(pal)
	}
	return open, nil
}
