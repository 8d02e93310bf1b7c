package pipeline

import "errors"

var (
	// ErrNilTable is returned when an executor is constructed without a table.
	ErrNilTable = errors.New("executor requires a non-nil table")

	// ErrContractViolation is returned when a task's return behavior does
	// not match the executor's mutation discipline.
	ErrContractViolation = errors.New("mutation contract violation")
)
