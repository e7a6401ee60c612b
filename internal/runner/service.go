package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amedcalf/substack-to-epub-gui/internal/command"
	"github.com/amedcalf/substack-to-epub-gui/internal/logview"
	"github.com/amedcalf/substack-to-epub-gui/internal/model"
	"github.com/amedcalf/substack-to-epub-gui/internal/platform"
)

// Log markers and messages
const (
	BannerRune = "─"
	BannerLen  = 60

	SuccessMarker = "✓ Completed successfully (exit code 0)"
	FailurePrefix = "✗ Process exited with code"

	BusyWarning = "[WARNING] A process is already running. Please wait."

	RunIDPrefix = "run-"
)

// Scanner buffer sizing: some tools emit very long single lines.
const maxLineBytes = 1024 * 1024

// Service executes external tool invocations one at a time.
type Service struct {
	mu       sync.Mutex
	status   model.RunStatus
	activeOp model.Operation
	runID    string

	sink   *logview.Sink
	onDone func(op model.Operation, success bool)
}

// NewService creates a process runner publishing output to sink.
func NewService(sink *logview.Sink) *Service {
	return &Service{
		status: model.StatusIdle,
		sink:   sink,
	}
}

// SetDoneCallback sets the completion callback.
func (s *Service) SetDoneCallback(callback func(op model.Operation, success bool)) {
	s.onDone = callback
}

// Status returns the current run state.
func (s *Service) Status() model.RunStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// ActiveOperation returns which operation owns the current run. Meaningful
// only while Status() reports Running.
func (s *Service) ActiveOperation() model.Operation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeOp
}

// Start launches args on a background goroutine. A second start while a run
// is active is rejected with a logged warning; the active run is unaffected.
func (s *Service) Start(op model.Operation, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("empty argument vector")
	}

	s.mu.Lock()
	if s.status.IsRunning() {
		active := s.activeOp
		s.mu.Unlock()
		s.sink.Publish(BusyWarning)
		return fmt.Errorf("a %s run is already active", active)
	}
	s.status = model.StatusRunning
	s.activeOp = op
	s.runID = generateRunID()
	s.mu.Unlock()

	log.Printf("Starting %s run %s: %s", op, s.runID, args[0])

	go s.run(op, args)
	return nil
}

// run executes the process and streams its output. Always returns the service
// to Idle and fires the completion callback, regardless of outcome.
func (s *Service) run(op model.Operation, args []string) {
	success := false
	defer func() {
		s.finish(op, success)
	}()

	banner := strings.Repeat(BannerRune, BannerLen)
	s.sink.Publish("")
	s.sink.Publish(banner)
	s.sink.Publish(" Running: " + command.DisplayString(args))
	s.sink.Publish(banner)
	s.sink.Publish("")

	cmd := exec.Command(args[0], args[1:]...)
	platform.HideConsoleWindow(cmd)

	// Single pipe carries both streams so lines interleave in arrival order.
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.sink.Publish("[ERROR] " + err.Error())
		return
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		s.reportStartFailure(args[0], err)
		return
	}

	// Drain the stream fully before asking for the exit status; Wait closes
	// the pipe.
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		s.sink.Publish(scanner.Text())
	}

	err = cmd.Wait()
	switch {
	case err == nil:
		success = true
		s.sink.Publish("")
		s.sink.Publish(SuccessMarker)
	case isExitError(err):
		s.sink.Publish("")
		s.sink.Publish(fmt.Sprintf("%s %d", FailurePrefix, cmd.ProcessState.ExitCode()))
	default:
		s.sink.Publish("")
		s.sink.Publish("[ERROR] " + err.Error())
	}
}

// reportStartFailure logs a diagnostic for a process that never started.
func (s *Service) reportStartFailure(executable string, err error) {
	// Bare names fail PATH lookup with ErrNotFound; configured absolute
	// paths that point nowhere fail with ErrNotExist.
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		s.sink.Publish("")
		s.sink.Publish("[ERROR] Could not find executable: " + executable)
		s.sink.Publish("  → Check the Settings tab and make sure the path is correct.")
		s.sink.Publish("  → If using sbstck-dl, install it with:  pip install sbstck-dl")
		return
	}

	s.sink.Publish("")
	s.sink.Publish("[ERROR] " + err.Error())
}

// finish returns the service to Idle and notifies the UI.
func (s *Service) finish(op model.Operation, success bool) {
	s.mu.Lock()
	s.status = model.StatusIdle
	callback := s.onDone
	s.mu.Unlock()

	log.Printf("Run finished: op=%s success=%v", op, success)

	if callback != nil {
		callback(op, success)
	}
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// generateRunID generates a unique run ID using UUID v7 for time ordering.
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
