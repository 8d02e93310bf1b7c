// Package pipeline runs ordered table transformations against an executor
// that owns the working table.
//
// A task is a plain function over a table. The adapter produced by NewStep
// makes the same task safe under both execution disciplines: in eager runs
// the task receives the executor's live table and must mutate it in place,
// returning the identical handle or nil; in non-eager runs it receives an
// isolated copy and must hand its result back by returning a table, which
// the adapter commits to the executor. A task whose observed behavior
// contradicts the active discipline fails the run with
// ErrContractViolation rather than silently desynchronizing table state.
package pipeline
