package pipeline

import (
	"log/slog"

	"github.com/google/uuid"
)

// Pipeline is an immutable ordered sequence of steps. It owns no table
// and can be reused across executors and runs.
type Pipeline struct {
	steps []Step
}

// New creates a pipeline running the given steps in order.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: append([]Step(nil), steps...)}
}

// Steps returns the step names in execution order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.name
	}
	return names
}

// Run executes every step in order against exec, threading the retained
// table from one step to the next. The first contract violation or task
// error aborts the run; the executor keeps whatever table the last
// completed step committed. Callers read the result from exec.Table().
func (p *Pipeline) Run(exec *TableExecutor) error {
	runID := uuid.NewString()
	slog.Info("pipeline run starting",
		"run", runID, "steps", len(p.steps), "eager", exec.Eager(), "rows", exec.Table().Len())

	for i, s := range p.steps {
		slog.Info("running step", "run", runID, "position", i, "step", s.name)
		if err := s.run(exec); err != nil {
			slog.Error("step failed", "run", runID, "step", s.name, "error", err)
			return err
		}
	}

	slog.Info("pipeline run finished", "run", runID, "rows", exec.Table().Len())
	return nil
}
