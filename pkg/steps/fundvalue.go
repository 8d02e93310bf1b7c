package steps

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/systemstart/blottertools/pkg/api"
	"github.com/systemstart/blottertools/pkg/pipeline"
	"github.com/systemstart/blottertools/pkg/render"
	"github.com/systemstart/blottertools/pkg/table"
)

// returnPrecision is the fractional-digit budget for the return
// division, comfortably above the 16 digits kept on output.
const returnPrecision = 28

// FundValue computes each row's return as its pal over the whole fund's
// open liquidity for that day.
func FundValue() pipeline.Step {
	return pipeline.NewStep(api.StepFundValue, fundValue)
}

func fundValue(tbl *table.Table, exec pipeline.Executor) (*table.Table, error) {
	tbl.Fill(api.ColumnReturn, nil)

	groups, err := exec.GroupBy(api.ColumnDate)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		liqs, err := g.Table.Column(api.ColumnOpenLiq)
		if err != nil {
			return nil, err
		}
		totalAny, err := table.SumDecimal(liqs)
		if err != nil {
			return nil, fmt.Errorf("date %v: %w", g.Key[0], err)
		}
		total := totalAny.(decimal.Decimal)
		if total.IsZero() {
			return nil, fmt.Errorf("date %v: total fund open liquidity is zero", g.Key[0])
		}
		slog.Debug("total fund value at open", "date", g.Key[0], "total", total)

		pals, err := g.Table.Column(api.ColumnPAL)
		if err != nil {
			return nil, err
		}
		returns := make([]any, len(pals))
		for i, v := range pals {
			pal, err := table.AsDecimal(v)
			if err != nil {
				return nil, fmt.Errorf("date %v row %d: %w", g.Key[0], i, err)
			}
			returns[i] = pal.DivRound(total, returnPrecision)
		}
		if err := g.Table.SetColumn(api.ColumnReturn, returns); err != nil {
			return nil, err
		}

		if err := tbl.UpdateBy(api.ColumnRowID, g.Table); err != nil {
			return nil, err
		}
	}

	slog.Debug("returns computed", "table", render.Markdown(tbl))
	return tbl, nil
}
