package pipeline

import "github.com/systemstart/blottertools/pkg/table"

// Executor is the capability surface a task sees: read access to the
// working table, the active discipline, and grouped delegation. Tasks are
// written against this interface so a different executor implementation
// (for example a partitioned one) can be substituted without changing
// task code.
type Executor interface {
	// Table returns the currently retained table.
	Table() *table.Table
	// Eager reports the mutation discipline fixed at construction.
	Eager() bool
	// GroupBy partitions the retained table without mutating it.
	GroupBy(keys ...string) ([]*table.Group, error)
}

// TableExecutor owns one in-memory table for the duration of a run.
type TableExecutor struct {
	tbl   *table.Table
	eager bool
}

var _ Executor = (*TableExecutor)(nil)

// NewExecutor creates an executor owning tbl. A nil table is rejected
// immediately rather than at first use.
func NewExecutor(tbl *table.Table, eager bool) (*TableExecutor, error) {
	if tbl == nil {
		return nil, ErrNilTable
	}
	return &TableExecutor{tbl: tbl, eager: eager}, nil
}

func (e *TableExecutor) Table() *table.Table { return e.tbl }

func (e *TableExecutor) Eager() bool { return e.eager }

// Replace swaps the retained table. Only the step adapter calls this,
// immediately after a non-eager task returns.
func (e *TableExecutor) Replace(tbl *table.Table) { e.tbl = tbl }

// GroupBy delegates grouped reduction to the retained table. In a
// non-eager run this is the table as of the start of the current step,
// not the task's working copy.
func (e *TableExecutor) GroupBy(keys ...string) ([]*table.Group, error) {
	return e.tbl.GroupBy(keys...)
}
