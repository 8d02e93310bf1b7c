package table

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Group is one partition of a table under a set of key columns.
// Table holds copies of the matching rows; mutating it does not affect
// the source table.
type Group struct {
	Key   []any
	Table *Table
}

// GroupBy partitions rows by the given key columns. Groups come back in
// first-seen key order, each with all source columns.
func (t *Table) GroupBy(keys ...string) ([]*Group, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("group requires at least one key column")
	}
	keyCols := make([][]any, len(keys))
	for i, name := range keys {
		vals, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		keyCols[i] = vals
	}

	var order []string
	rowsByKey := make(map[string][]int)
	keysByKey := make(map[string][]any)
	for i := 0; i < t.Len(); i++ {
		parts := make([]string, len(keyCols))
		keyVals := make([]any, len(keyCols))
		for k, vals := range keyCols {
			parts[k] = keyString(vals[i])
			keyVals[k] = vals[i]
		}
		ck := strings.Join(parts, "\x1f")
		if _, seen := rowsByKey[ck]; !seen {
			order = append(order, ck)
			keysByKey[ck] = keyVals
		}
		rowsByKey[ck] = append(rowsByKey[ck], i)
	}

	groups := make([]*Group, 0, len(order))
	for _, ck := range order {
		groups = append(groups, &Group{
			Key:   keysByKey[ck],
			Table: t.takeRows(rowsByKey[ck]),
		})
	}
	return groups, nil
}

func (t *Table) takeRows(rows []int) *Table {
	sub := &Table{
		names: append([]string(nil), t.names...),
		cols:  make(map[string][]any, len(t.cols)),
	}
	for name, vals := range t.cols {
		taken := make([]any, len(rows))
		for i, ri := range rows {
			taken[i] = vals[ri]
		}
		sub.cols[name] = taken
	}
	return sub
}

// Agg reduces one column of a group to a single cell.
type Agg func(values []any) (any, error)

// Aggregate groups by the key columns and reduces every column named in
// aggs to one row per group. Result columns are the keys followed by the
// aggregated columns in source order; groups keep first-seen order.
func (t *Table) Aggregate(keys []string, aggs map[string]Agg) (*Table, error) {
	groups, err := t.GroupBy(keys...)
	if err != nil {
		return nil, err
	}
	for name := range aggs {
		if !t.HasColumn(name) {
			return nil, fmt.Errorf("no column %q", name)
		}
	}

	names := append([]string(nil), keys...)
	for _, name := range t.names {
		if _, ok := aggs[name]; ok && !contains(keys, name) {
			names = append(names, name)
		}
	}

	out := &Table{cols: make(map[string][]any, len(names))}
	out.names = names
	for _, name := range names {
		out.cols[name] = make([]any, len(groups))
	}

	for gi, g := range groups {
		for ki, key := range keys {
			out.cols[key][gi] = g.Key[ki]
		}
		for _, name := range names[len(keys):] {
			vals, _ := g.Table.Column(name)
			agg, err := aggs[name](vals)
			if err != nil {
				return nil, fmt.Errorf("aggregating %q: %w", name, err)
			}
			out.cols[name][gi] = agg
		}
	}
	return out, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// MinValue returns the smallest non-nil value under Compare, or nil when
// every value is nil.
func MinValue(values []any) (any, error) {
	var min any
	for _, v := range values {
		if v == nil {
			continue
		}
		if min == nil || Compare(v, min) < 0 {
			min = v
		}
	}
	return min, nil
}

// FirstValue returns the first value in group order.
func FirstValue(values []any) (any, error) {
	if len(values) == 0 {
		return nil, nil
	}
	return values[0], nil
}

// SumDecimal sums values as decimals, skipping nil cells.
func SumDecimal(values []any) (any, error) {
	sum := decimal.Zero
	for _, v := range values {
		if v == nil {
			continue
		}
		d, err := AsDecimal(v)
		if err != nil {
			return nil, err
		}
		sum = sum.Add(d)
	}
	return sum, nil
}

// AsDecimal coerces a cell to a decimal.
func AsDecimal(v any) (decimal.Decimal, error) {
	switch dv := v.(type) {
	case decimal.Decimal:
		return dv, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(dv))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("parsing decimal %q: %w", dv, err)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(dv)), nil
	case int64:
		return decimal.NewFromInt(dv), nil
	case float64:
		return decimal.NewFromFloat(dv), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot coerce %T to decimal", v)
	}
}
