package runner

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/amedcalf/substack-to-epub-gui/internal/logview"
	"github.com/amedcalf/substack-to-epub-gui/internal/model"
)

const doneTimeout = 10 * time.Second

type doneResult struct {
	op      model.Operation
	success bool
}

func newTestService() (*Service, *logview.Sink, chan doneResult) {
	sink := logview.NewSink()
	service := NewService(sink)

	done := make(chan doneResult, 1)
	service.SetDoneCallback(func(op model.Operation, success bool) {
		done <- doneResult{op: op, success: success}
	})

	return service, sink, done
}

func waitDone(t *testing.T, done chan doneResult) doneResult {
	t.Helper()
	select {
	case result := <-done:
		return result
	case <-time.After(doneTimeout):
		t.Fatal("Timed out waiting for completion callback")
		return doneResult{}
	}
}

func drainAll(sink *logview.Sink) string {
	return strings.Join(sink.Drain(), "\n")
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test requires sh")
	}
}

func TestNewService(t *testing.T) {
	service, _, _ := newTestService()

	if service.Status() != model.StatusIdle {
		t.Errorf("New service should be Idle, got %s", service.Status())
	}
}

func TestStart_EmptyArgs(t *testing.T) {
	service, _, _ := newTestService()

	if err := service.Start(model.OperationDownload, nil); err == nil {
		t.Error("Expected error for empty argument vector")
	}
}

func TestRun_Success(t *testing.T) {
	requireShell(t)
	service, sink, done := newTestService()

	err := service.Start(model.OperationDownload, []string{"sh", "-c", "echo hello; echo world 1>&2"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	result := waitDone(t, done)
	if !result.success {
		t.Error("Expected success outcome")
	}
	if result.op != model.OperationDownload {
		t.Errorf("Expected download operation, got %s", result.op)
	}
	if service.Status() != model.StatusIdle {
		t.Errorf("Service should return to Idle, got %s", service.Status())
	}

	output := drainAll(sink)
	if !strings.Contains(output, "hello") {
		t.Errorf("Stdout line missing from sink:\n%s", output)
	}
	if !strings.Contains(output, "world") {
		t.Errorf("Stderr line missing from sink (streams should be combined):\n%s", output)
	}
	if !strings.Contains(output, SuccessMarker) {
		t.Errorf("Success marker missing from sink:\n%s", output)
	}
	if !strings.Contains(output, "Running: sh -c") {
		t.Errorf("Command banner missing from sink:\n%s", output)
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	requireShell(t)
	service, sink, done := newTestService()

	err := service.Start(model.OperationConvert, []string{"sh", "-c", "exit 3"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	result := waitDone(t, done)
	if result.success {
		t.Error("Expected failure outcome for non-zero exit")
	}
	if result.op != model.OperationConvert {
		t.Errorf("Expected convert operation, got %s", result.op)
	}

	output := drainAll(sink)
	if !strings.Contains(output, FailurePrefix+" 3") {
		t.Errorf("Failure marker with exit code missing:\n%s", output)
	}
	if strings.Contains(output, SuccessMarker) {
		t.Error("Success marker must not appear on failure")
	}
}

func TestRun_MissingExecutable(t *testing.T) {
	service, sink, done := newTestService()

	missing := filepath.Join(t.TempDir(), "no-such-tool")
	err := service.Start(model.OperationDownload, []string{missing, "download"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	result := waitDone(t, done)
	if result.success {
		t.Error("Missing executable must be a failure outcome")
	}

	output := drainAll(sink)
	if !strings.Contains(output, "Could not find executable: "+missing) {
		t.Errorf("Missing-executable diagnostic absent:\n%s", output)
	}
	if !strings.Contains(output, "Check the Settings tab") {
		t.Errorf("Remediation hint absent:\n%s", output)
	}
	if service.Status() != model.StatusIdle {
		t.Errorf("Service should return to Idle, got %s", service.Status())
	}
}

func TestStart_SingleFlight(t *testing.T) {
	requireShell(t)
	service, sink, done := newTestService()

	// Hold the runner busy long enough to attempt a second start.
	err := service.Start(model.OperationDownload, []string{"sh", "-c", "sleep 1"})
	if err != nil {
		t.Fatalf("First start failed: %v", err)
	}

	// Second start is rejected and leaves the first run untouched.
	err = service.Start(model.OperationConvert, []string{"sh", "-c", "echo second"})
	if err == nil {
		t.Error("Second start while Running must be rejected")
	}
	if service.ActiveOperation() != model.OperationDownload {
		t.Errorf("Active operation should remain download, got %s", service.ActiveOperation())
	}

	result := waitDone(t, done)
	if result.op != model.OperationDownload || !result.success {
		t.Errorf("Original run should complete successfully, got %+v", result)
	}

	// Exactly one completion: the rejected start never ran.
	select {
	case extra := <-done:
		t.Errorf("Unexpected second completion: %+v", extra)
	case <-time.After(200 * time.Millisecond):
	}

	output := drainAll(sink)
	if !strings.Contains(output, BusyWarning) {
		t.Errorf("Busy warning missing from sink:\n%s", output)
	}
	if strings.Contains(output, "second") {
		t.Error("Rejected command must not produce output")
	}
}

func TestGenerateRunID(t *testing.T) {
	id1 := generateRunID()
	id2 := generateRunID()

	if id1 == id2 {
		t.Error("Expected unique run IDs")
	}
	if !strings.HasPrefix(id1, RunIDPrefix) {
		t.Errorf("Expected ID prefixed with %q, got %s", RunIDPrefix, id1)
	}
}
