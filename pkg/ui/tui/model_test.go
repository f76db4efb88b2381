package tui

import (
	"errors"
	"testing"
)

func TestModelLifecycle(t *testing.T) {
	m := NewModel("/photos", 3)

	m.StartFile("/photos/a.jpg")
	if m.currentFile != "/photos/a.jpg" {
		t.Errorf("Expected current file to be set, got %q", m.currentFile)
	}

	m.CompleteFile(FileResult{Path: "/photos/a.jpg", OldWidth: 800, OldHeight: 600, NewWidth: 400, NewHeight: 300})
	if m.processed != 1 {
		t.Errorf("Expected 1 processed file, got %d", m.processed)
	}
	if m.currentFile != "" {
		t.Error("Expected current file to be cleared after completion")
	}

	m.FailFile("/photos/b.jpg", errors.New("boom"))
	if m.failed != 1 {
		t.Errorf("Expected 1 failed file, got %d", m.failed)
	}

	if got := m.Percent(); got != 2.0/3.0 {
		t.Errorf("Expected percent 2/3, got %f", got)
	}
}

func TestModelPercentEmptyRun(t *testing.T) {
	m := NewModel("/photos", 0)
	if m.Percent() != 1.0 {
		t.Error("Expected an empty run to report full completion")
	}
}

func TestModelRecentRing(t *testing.T) {
	m := NewModel("/photos", 100)

	for i := 0; i < 20; i++ {
		m.CompleteFile(FileResult{Path: "/photos/x.jpg"})
	}

	if len(m.recent) != m.maxRecent {
		t.Errorf("Expected recent list capped at %d, got %d", m.maxRecent, len(m.recent))
	}
}

func TestModelLogRing(t *testing.T) {
	m := NewModel("/photos", 1)

	for i := 0; i < 60; i++ {
		m.AddLogMessage("INFO", "message")
	}

	if len(m.logMessages) != m.maxLogMessages {
		t.Errorf("Expected log messages capped at %d, got %d", m.maxLogMessages, len(m.logMessages))
	}
}

func TestUpdateHandlesMessages(t *testing.T) {
	m := NewModel("/photos", 0)

	m.Update(TotalMsg{Total: 2})
	if m.totalFiles != 2 {
		t.Errorf("Expected total files 2 after TotalMsg, got %d", m.totalFiles)
	}

	m.Update(FileStartMsg{Path: "/photos/a.jpg"})
	m.Update(FileCompleteMsg{Path: "/photos/a.jpg", OldWidth: 800, OldHeight: 600, NewWidth: 400, NewHeight: 300})

	if m.processed != 1 {
		t.Errorf("Expected 1 processed file after messages, got %d", m.processed)
	}

	// Completion also writes a log line
	if len(m.logMessages) != 1 {
		t.Errorf("Expected 1 log message, got %d", len(m.logMessages))
	}

	m.Update(FileErrorMsg{Path: "/photos/b.jpg", Error: errors.New("bad file")})
	if m.failed != 1 {
		t.Errorf("Expected 1 failed file after messages, got %d", m.failed)
	}
}
