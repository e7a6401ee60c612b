package runner

import (
	"github.com/amedcalf/substack-to-epub-gui/internal/model"
)

// Runner defines the interface for the process execution service.
type Runner interface {
	// SetDoneCallback registers the completion callback. It is invoked from
	// the background goroutine; UI callers must marshal onto their own
	// execution context (fyne.Do) inside the callback.
	SetDoneCallback(func(op model.Operation, success bool))

	// Start launches args as an external process. Returns an error without
	// side effects on the active run when one is already in flight.
	Start(op model.Operation, args []string) error

	Status() model.RunStatus
	ActiveOperation() model.Operation
}
