// Package table implements the in-memory tabular container the pipeline
// operates on: an ordered set of named columns of equal length. Cells are
// untyped; a nil cell means "no value". Column slices returned by Column
// alias the table's storage, which is what allows steps to mutate a table
// in place.
package table

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Column is a named sequence of cell values, used for construction.
type Column struct {
	Name   string
	Values []any
}

// Table is a mutable collection of equal-length named columns.
// Column order is significant and preserved across all operations.
type Table struct {
	names []string
	cols  map[string][]any
}

// New builds a table from columns. All columns must have the same length
// and distinct names.
func New(columns ...Column) (*Table, error) {
	t := &Table{cols: make(map[string][]any, len(columns))}
	for _, c := range columns {
		if _, exists := t.cols[c.Name]; exists {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		if len(t.names) > 0 && len(c.Values) != t.Len() {
			return nil, fmt.Errorf("column %q has %d values, want %d", c.Name, len(c.Values), t.Len())
		}
		t.names = append(t.names, c.Name)
		t.cols[c.Name] = c.Values
	}
	return t, nil
}

// Len returns the row count.
func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.cols[t.names[0]])
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return slices.Clone(t.names)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the named column's values. The returned slice aliases the
// table's storage; writing to it mutates the table.
func (t *Table) Column(name string) ([]any, error) {
	vals, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	return vals, nil
}

// SetColumn adds or replaces a column. The slice is retained, not copied.
// On a table that already has columns the length must match the row count.
func (t *Table) SetColumn(name string, values []any) error {
	if len(t.names) > 0 && len(values) != t.Len() {
		return fmt.Errorf("column %q has %d values, want %d", name, len(values), t.Len())
	}
	if _, exists := t.cols[name]; !exists {
		t.names = append(t.names, name)
	}
	t.cols[name] = values
	return nil
}

// Fill adds or overwrites a column with the same value in every row.
func (t *Table) Fill(name string, value any) {
	vals := make([]any, t.Len())
	for i := range vals {
		vals[i] = value
	}
	// length always matches, SetColumn cannot fail here
	_ = t.SetColumn(name, vals)
}

// Value returns the cell at (row, column).
func (t *Table) Value(row int, column string) (any, error) {
	vals, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= len(vals) {
		return nil, fmt.Errorf("row %d out of range [0,%d)", row, len(vals))
	}
	return vals[row], nil
}

// Clone returns a deep copy: same column order, independent storage.
// Cell values themselves are treated as immutable and copied by value.
func (t *Table) Clone() *Table {
	c := &Table{
		names: slices.Clone(t.names),
		cols:  make(map[string][]any, len(t.cols)),
	}
	for name, vals := range t.cols {
		c.cols[name] = slices.Clone(vals)
	}
	return c
}

// Select returns a new table containing only the given columns, in the
// given order, with copied storage.
func (t *Table) Select(names ...string) (*Table, error) {
	s := &Table{cols: make(map[string][]any, len(names))}
	for _, name := range names {
		vals, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if s.HasColumn(name) {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		s.names = append(s.names, name)
		s.cols[name] = slices.Clone(vals)
	}
	return s, nil
}

// SortBy stably sorts rows in place by the given columns.
func (t *Table) SortBy(columns ...string) error {
	keyCols := make([][]any, len(columns))
	for i, name := range columns {
		vals, err := t.Column(name)
		if err != nil {
			return err
		}
		keyCols[i] = vals
	}

	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := order[a], order[b]
		for _, vals := range keyCols {
			if c := Compare(vals[ra], vals[rb]); c != 0 {
				return c < 0
			}
		}
		return false
	})

	t.reorder(order)
	return nil
}

func (t *Table) reorder(order []int) {
	for name, vals := range t.cols {
		next := make([]any, len(order))
		for i, ri := range order {
			next[i] = vals[ri]
		}
		t.cols[name] = next
	}
}

// DropNullRows removes every row that has a nil cell in any column.
func (t *Table) DropNullRows() {
	var keep []int
	for i := 0; i < t.Len(); i++ {
		ok := true
		for _, name := range t.names {
			if t.cols[name][i] == nil {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, i)
		}
	}
	t.reorder(keep)
}

// UpdateBy overwrites cells of this table from other, matching rows on the
// key column. Every column shared between the two tables (except the key
// itself) is updated; nil cells in other are skipped, leaving the existing
// value in place.
func (t *Table) UpdateBy(key string, other *Table) error {
	keyVals, err := t.Column(key)
	if err != nil {
		return err
	}
	otherKeys, err := other.Column(key)
	if err != nil {
		return fmt.Errorf("update source: %w", err)
	}

	index := make(map[string][]int, len(keyVals))
	for i, v := range keyVals {
		k := keyString(v)
		index[k] = append(index[k], i)
	}

	var shared []string
	for _, name := range other.names {
		if name != key && t.HasColumn(name) {
			shared = append(shared, name)
		}
	}

	for row, kv := range otherKeys {
		targets := index[keyString(kv)]
		for _, name := range shared {
			v := other.cols[name][row]
			if v == nil {
				continue
			}
			for _, ti := range targets {
				t.cols[name][ti] = v
			}
		}
	}
	return nil
}

// Compare orders two cell values. nil sorts first; times, decimals and
// numbers compare natively; everything else falls back to string order.
func Compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}
	if ad, ok := a.(decimal.Decimal); ok {
		if bd, ok := b.(decimal.Decimal); ok {
			return ad.Cmp(bd)
		}
	}
	af, aerr := cast.ToFloat64E(a)
	bf, berr := cast.ToFloat64E(b)
	if aerr == nil && berr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(cast.ToString(a), cast.ToString(b))
}

// keyString folds a cell value into a map key for grouping and joining.
func keyString(v any) string {
	switch kv := v.(type) {
	case nil:
		return "\x00nil"
	case time.Time:
		return kv.Format(time.RFC3339Nano)
	case decimal.Decimal:
		return kv.String()
	default:
		return cast.ToString(v)
	}
}
