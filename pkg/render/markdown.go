// Package render formats tables for human consumption, mainly debug-level
// dumps of the working table between pipeline steps.
package render

import (
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/systemstart/blottertools/pkg/table"
)

const markdownTemplate = `| {{ join " | " .Headers }} |
|{{ range .Headers }} --- |{{ end }}
{{- range .Rows }}
| {{ join " | " . }} |
{{- end }}`

var markdownTmpl = template.Must(
	template.New("markdown").Funcs(sprig.FuncMap()).Parse(markdownTemplate))

// Markdown renders t as a markdown table.
func Markdown(t *table.Table) string {
	headers := t.Columns()
	rows := make([][]string, t.Len())
	for i := range rows {
		row := make([]string, len(headers))
		for j, name := range headers {
			v, _ := t.Value(i, name)
			row[j] = cell(v)
		}
		rows[i] = row
	}

	var b strings.Builder
	err := markdownTmpl.Execute(&b, struct {
		Headers []string
		Rows    [][]string
	}{headers, rows})
	if err != nil {
		return "(table render failed: " + err.Error() + ")"
	}
	return b.String()
}

func cell(v any) string {
	switch cv := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return cv.String()
	case time.Time:
		return cv.Format("2006-01-02")
	default:
		return cast.ToString(cv)
	}
}
