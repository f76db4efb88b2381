package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI represents the terminal user interface
type TUI struct {
	program *tea.Program
	model   *Model
}

// NewTUI creates a new TUI instance for a run over totalFiles files
func NewTUI(root string, totalFiles int) *TUI {
	model := NewModel(root, totalFiles)
	program := tea.NewProgram(&model, tea.WithAltScreen())

	return &TUI{
		program: program,
		model:   &model,
	}
}

// Start starts the TUI
func (t *TUI) Start() error {
	go func() {
		// Send initial tick to start the spinner
		time.Sleep(100 * time.Millisecond)
		t.program.Send(TickMsg(time.Now()))
	}()

	_, err := t.program.Run()
	return err
}

// Stop stops the TUI gracefully
func (t *TUI) Stop() {
	t.Send(DoneMsg{})
}

// Send sends a message to the TUI
func (t *TUI) Send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}

// SetTotal tells the TUI how many files the run will process
func (t *TUI) SetTotal(total int) {
	t.Send(TotalMsg{Total: total})
}

// StartFile notifies the TUI that a file is being resized
func (t *TUI) StartFile(path string) {
	t.Send(FileStartMsg{Path: path})
}

// CompleteFile notifies the TUI that a file has been resized
func (t *TUI) CompleteFile(path string, oldWidth, oldHeight, newWidth, newHeight int) {
	t.Send(FileCompleteMsg{
		Path:      path,
		OldWidth:  oldWidth,
		OldHeight: oldHeight,
		NewWidth:  newWidth,
		NewHeight: newHeight,
	})
}

// FailFile notifies the TUI that a file failed
func (t *TUI) FailFile(path string, err error) {
	t.Send(FileErrorMsg{Path: path, Error: err})
}

// Log sends a log message to the TUI
func (t *TUI) Log(level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	t.Send(LogMsg{Level: level, Message: message})
}

// LogInfo logs an info message
func (t *TUI) LogInfo(format string, args ...interface{}) {
	t.Log("INFO", format, args...)
}

// LogSuccess logs a success message
func (t *TUI) LogSuccess(format string, args ...interface{}) {
	t.Log("SUCCESS", format, args...)
}

// LogWarning logs a warning message
func (t *TUI) LogWarning(format string, args ...interface{}) {
	t.Log("WARN", format, args...)
}

// LogError logs an error message
func (t *TUI) LogError(format string, args ...interface{}) {
	t.Log("ERROR", format, args...)
}
