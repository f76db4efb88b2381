package tui

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Message types for the TUI

// FileStartMsg is sent when a file starts resizing
type FileStartMsg struct {
	Path string
}

// FileCompleteMsg is sent when a file has been resized
type FileCompleteMsg struct {
	Path      string
	OldWidth  int
	OldHeight int
	NewWidth  int
	NewHeight int
}

// FileErrorMsg is sent when a file fails
type FileErrorMsg struct {
	Path  string
	Error error
}

// LogMsg is sent to add a log message
type LogMsg struct {
	Level   string
	Message string
}

// TotalMsg is sent once the walk has counted the files to process
type TotalMsg struct {
	Total int
}

// DoneMsg is sent when the whole run has finished
type DoneMsg struct{}

// TickMsg is sent periodically to update the UI
type TickMsg time.Time

// Update handles all messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TickMsg:
		// Regular UI update tick
		return m, tea.Batch(
			tickCmd(),
			m.spinner.Tick,
		)

	case TotalMsg:
		m.mu.Lock()
		m.totalFiles = msg.Total
		m.mu.Unlock()
		return m, nil

	case FileStartMsg:
		m.StartFile(msg.Path)
		return m, nil

	case FileCompleteMsg:
		m.CompleteFile(FileResult{
			Path:      msg.Path,
			OldWidth:  msg.OldWidth,
			OldHeight: msg.OldHeight,
			NewWidth:  msg.NewWidth,
			NewHeight: msg.NewHeight,
		})
		m.AddLogMessage("SUCCESS", "Resized: "+filepath.Base(msg.Path))
		return m, nil

	case FileErrorMsg:
		m.FailFile(msg.Path, msg.Error)
		m.AddLogMessage("ERROR", "Failed: "+filepath.Base(msg.Path)+" - "+msg.Error.Error())
		return m, nil

	case LogMsg:
		m.AddLogMessage(msg.Level, msg.Message)
		return m, nil

	case DoneMsg:
		m.mu.Lock()
		m.done = true
		m.mu.Unlock()
		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "ctrl+l":
		// Clear logs
		m.mu.Lock()
		m.logMessages = []LogMessage{}
		m.mu.Unlock()
		return m, nil
	}

	return m, nil
}

// Commands

// tickCmd returns a command that sends a tick message
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
