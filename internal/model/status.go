package model

// RunStatus represents the state of the process runner.
type RunStatus string

const (
	// StatusIdle means no external process is active
	StatusIdle RunStatus = "Idle"

	// StatusRunning means an external process is currently executing
	StatusRunning RunStatus = "Running"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsRunning returns true if an external process is active
func (rs RunStatus) IsRunning() bool {
	return rs == StatusRunning
}

// Operation identifies which logical action requested a run, so the UI can
// route to the matching completion dialog.
type Operation string

const (
	// OperationDownload is a newsletter download via sbstck-dl
	OperationDownload Operation = "download"

	// OperationConvert is an ePub conversion via pandoc
	OperationConvert Operation = "convert"
)

// String returns the string representation of Operation
func (op Operation) String() string {
	return string(op)
}
