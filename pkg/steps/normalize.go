package steps

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cast"

	"github.com/systemstart/blottertools/pkg/api"
	"github.com/systemstart/blottertools/pkg/pipeline"
	"github.com/systemstart/blottertools/pkg/render"
	"github.com/systemstart/blottertools/pkg/table"
)

// dateLayouts are the accepted year-first date formats.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"20060102",
	"2006-01-02 15:04:05",
}

// Normalize prepares raw cells for arithmetic: renames the Technology
// sector, parses pal and exposure into decimals, and parses dates.
func Normalize() pipeline.Step {
	return pipeline.NewStep(api.StepNormalize, normalize)
}

func normalize(tbl *table.Table, _ pipeline.Executor) (*table.Table, error) {
	sectors, err := tbl.Column(api.ColumnSector)
	if err != nil {
		return nil, err
	}
	for i, v := range sectors {
		if cast.ToString(v) == "Technology" {
			sectors[i] = "Information Technology"
		}
	}

	for _, name := range []string{api.ColumnPAL, api.ColumnExposure} {
		vals, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			d, err := table.AsDecimal(v)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
			}
			vals[i] = d
		}
	}

	dates, err := tbl.Column(api.ColumnDate)
	if err != nil {
		return nil, err
	}
	for i, v := range dates {
		day, err := parseDate(cast.ToString(v))
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", api.ColumnDate, i, err)
		}
		dates[i] = day
	}

	slog.Debug("normalized blotter", "table", render.Markdown(tbl))
	return tbl, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if day, err := time.Parse(layout, s); err == nil {
			return day, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
