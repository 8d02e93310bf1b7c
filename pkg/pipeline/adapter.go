package pipeline

import (
	"fmt"

	"github.com/systemstart/blottertools/pkg/table"
)

// TaskFunc is the contract a step author satisfies. Under the eager
// discipline the function must mutate tbl in place and return either tbl
// itself or nil; under the non-eager discipline it must return a non-nil
// table, which may be the copy it was given or a brand-new one. The
// executor gives read and grouped-delegation access either way.
type TaskFunc func(tbl *table.Table, exec Executor) (*table.Table, error)

// Step is a task adapted for execution by a Pipeline.
type Step struct {
	name string
	run  func(exec *TableExecutor) error
}

// Name returns the step's name as used in error attribution.
func (s Step) Name() string { return s.name }

// NewStep adapts fn into a Step. The discipline is read from the executor
// at call time, so the same Step can run under executors of either mode.
func NewStep(name string, fn TaskFunc) Step {
	return Step{
		name: name,
		run: func(exec *TableExecutor) error {
			if exec.Eager() {
				return runEager(name, fn, exec)
			}
			return runIsolated(name, fn, exec)
		},
	}
}

func runEager(name string, fn TaskFunc, exec *TableExecutor) error {
	in := exec.Table()
	out, err := fn(in, exec)
	if err != nil {
		return fmt.Errorf("step %q: %w", name, err)
	}
	// Identity, not content equality: rebinding to an equal table would
	// still desynchronize every other holder of the original handle.
	if out != nil && out != in {
		return fmt.Errorf("step %q: %w: eager task returned a table distinct from its input", name, ErrContractViolation)
	}
	return nil
}

func runIsolated(name string, fn TaskFunc, exec *TableExecutor) error {
	out, err := fn(exec.Table().Clone(), exec)
	if err != nil {
		return fmt.Errorf("step %q: %w", name, err)
	}
	if out == nil {
		return fmt.Errorf("step %q: %w: non-eager task returned no table", name, ErrContractViolation)
	}
	exec.Replace(out)
	return nil
}
