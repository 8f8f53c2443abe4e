package main

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bashhack/gitpix/internal/config"
	"github.com/bashhack/gitpix/internal/git"
	"github.com/bashhack/gitpix/internal/grid"
)

// MockCommitter implements the Committer interface for testing
type MockCommitter struct {
	Report        *git.Report
	RunErr        error
	RunCalled     bool
	SummaryCalled bool
	Grid          grid.Grid
}

func (m *MockCommitter) Run(ctx context.Context, g grid.Grid) (*git.Report, error) {
	m.RunCalled = true
	m.Grid = g
	return m.Report, m.RunErr
}

func (m *MockCommitter) PrintSummary(report *git.Report) {
	m.SummaryCalled = true
}

// MockLocker implements the Locker interface for testing
type MockLocker struct {
	AcquireErr    error
	ReleaseErr    error
	AcquireCalled bool
	ReleaseCalled bool
}

func (m *MockLocker) Acquire() error {
	m.AcquireCalled = true
	return m.AcquireErr
}

func (m *MockLocker) Release() error {
	m.ReleaseCalled = true
	return m.ReleaseErr
}

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mu            sync.Mutex
	Messages      []string
	ErrorCalled   bool
	WarningCalled bool
	CloseCalled   bool
}

func (m *MockLogger) record(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Info(format string, args ...interface{}) { m.record(format, args...) }

func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.WarningCalled = true
	m.record(format, args...)
}

func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalled = true
	m.record(format, args...)
}

func (m *MockLogger) InfoToUser(format string, args ...interface{})    { m.record(format, args...) }
func (m *MockLogger) WarningToUser(format string, args ...interface{}) { m.record(format, args...) }
func (m *MockLogger) Success(format string, args ...interface{})       { m.record(format, args...) }
func (m *MockLogger) StatusMessage(format string, args ...interface{}) { m.record(format, args...) }

func (m *MockLogger) Close() error {
	m.CloseCalled = true
	return nil
}

// testNow is a Wednesday; its heatmap starts on Sunday 2024-02-18.
var testNow = time.Date(2025, time.February, 12, 9, 30, 0, 0, time.Local)

type testApp struct {
	*App
	stdout    *lockedBuffer
	stderr    *lockedBuffer
	committer *MockCommitter
	locker    *MockLocker
	logger    *MockLogger
}

// newTestApp creates an App wired to mocks, with git present and the temp
// dir accepted as a repository.
func newTestApp(t *testing.T, modify func(cfg *config.Config)) *testApp {
	t.Helper()

	cfg := config.New()
	cfg.RepoPath = t.TempDir()
	cfg.VersionInfo = config.VersionInfo{Version: "v1.2.3", Commit: "abc123", Date: "2025-02-01"}
	if modify != nil {
		modify(cfg)
	}

	ta := &testApp{
		stdout:    &lockedBuffer{},
		stderr:    &lockedBuffer{},
		committer: &MockCommitter{},
		locker:    &MockLocker{},
		logger:    &MockLogger{},
	}

	ta.App = NewApp(AppOptions{
		Config:       cfg,
		Logger:       ta.logger,
		Locker:       ta.locker,
		Committer:    ta.committer,
		Stdout:       ta.stdout,
		Stderr:       ta.stderr,
		Exit:         func(int) { t.Fatal("unexpected exit") },
		ExecLookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		IsRepository: func(string) (bool, error) { return true, nil },
		Now:          func() time.Time { return testNow },
	})
	return ta
}
