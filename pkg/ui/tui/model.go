package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FileResult records one finished resize for the recent-files panel
type FileResult struct {
	Path      string
	OldWidth  int
	OldHeight int
	NewWidth  int
	NewHeight int
	Failed    bool
	Error     error
}

// LogMessage represents a log entry
type LogMessage struct {
	Time    time.Time
	Level   string
	Message string
	Color   lipgloss.Color
}

// Model represents the TUI model
type Model struct {
	// UI components
	spinner     spinner.Model
	progressBar progress.Model

	// Run state
	root        string
	totalFiles  int
	processed   int
	failed      int
	currentFile string
	recent      []FileResult
	maxRecent   int

	startTime time.Time

	// UI state
	width          int
	height         int
	showHelp       bool
	done           bool
	logMessages    []LogMessage
	maxLogMessages int

	// Mutex for thread safety
	mu sync.RWMutex
}

// NewModel creates a new TUI model for a run over totalFiles files
func NewModel(root string, totalFiles int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentCyan)

	p := progress.New(progress.WithDefaultGradient())
	p.Width = 40

	return Model{
		spinner:        s,
		progressBar:    p,
		root:           root,
		totalFiles:     totalFiles,
		maxRecent:      8,
		startTime:      time.Now(),
		logMessages:    []LogMessage{},
		maxLogMessages: 50,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// StartFile marks a file as being resized
func (m *Model) StartFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.currentFile = path
}

// CompleteFile records a finished resize
func (m *Model) CompleteFile(result FileResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed++
	m.currentFile = ""
	m.pushRecent(result)
}

// FailFile records a failed resize
func (m *Model) FailFile(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failed++
	m.currentFile = ""
	m.pushRecent(FileResult{Path: path, Failed: true, Error: err})
}

// pushRecent appends to the recent-files ring; callers hold the lock
func (m *Model) pushRecent(result FileResult) {
	m.recent = append(m.recent, result)
	if len(m.recent) > m.maxRecent {
		m.recent = m.recent[len(m.recent)-m.maxRecent:]
	}
}

// AddLogMessage adds a log message
func (m *Model) AddLogMessage(level, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	color := dimWhite
	switch level {
	case "ERROR":
		color = accentRed
	case "WARN":
		color = accentOrange
	case "SUCCESS":
		color = accentGreen
	case "INFO":
		color = accentCyan
	}

	m.logMessages = append(m.logMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: message,
		Color:   color,
	})

	// Keep only the last N messages
	if len(m.logMessages) > m.maxLogMessages {
		m.logMessages = m.logMessages[len(m.logMessages)-m.maxLogMessages:]
	}
}

// Percent returns overall completion as a fraction
func (m *Model) Percent() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.totalFiles == 0 {
		return 1.0
	}
	return float64(m.processed+m.failed) / float64(m.totalFiles)
}
