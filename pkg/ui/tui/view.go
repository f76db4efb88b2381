package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View renders the entire TUI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, titleStyle.Render(" DOWNSIZER "))
	sections = append(sections, m.renderStatsPanel())
	sections = append(sections, m.renderProgressPanel())
	sections = append(sections, m.renderRecentPanel())
	sections = append(sections, m.renderLogsPanel())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	} else {
		sections = append(sections, helpStyle.Render("Press ? for help"))
	}

	return baseStyle.Width(m.width).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

// renderStatsPanel renders the run statistics
func (m Model) renderStatsPanel() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	elapsed := time.Since(m.startTime).Round(time.Second)

	var lines []string
	lines = append(lines, panelTitleStyle.Render("RUN"))
	lines = append(lines, fmt.Sprintf("%s %s",
		statLabelStyle.Render("Directory:"),
		statValueStyle.Render(m.root)))
	lines = append(lines, fmt.Sprintf("%s %s  %s %s  %s %s",
		statLabelStyle.Render("Resized:"),
		statValueStyle.Render(fmt.Sprintf("%d/%d", m.processed, m.totalFiles)),
		statLabelStyle.Render("Failed:"),
		statValueStyle.Render(fmt.Sprintf("%d", m.failed)),
		statLabelStyle.Render("Elapsed:"),
		statValueStyle.Render(elapsed.String())))

	return panelStyle.Width(m.width - 2).Render(strings.Join(lines, "\n"))
}

// renderProgressPanel renders the overall progress bar and current file
func (m Model) renderProgressPanel() string {
	percent := m.Percent()

	m.mu.RLock()
	current := m.currentFile
	m.mu.RUnlock()

	var lines []string
	lines = append(lines, m.progressBar.ViewAs(percent))
	if current != "" {
		lines = append(lines, fmt.Sprintf("%s %s",
			m.spinner.View(),
			filepath.Base(current)))
	}

	return panelStyle.Width(m.width - 2).Render(strings.Join(lines, "\n"))
}

// renderRecentPanel renders the last few processed files
func (m Model) renderRecentPanel() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var lines []string
	lines = append(lines, panelTitleStyle.Render("RECENT"))

	if len(m.recent) == 0 {
		lines = append(lines, statLabelStyle.Render("nothing processed yet"))
	}

	for i := len(m.recent) - 1; i >= 0; i-- {
		r := m.recent[i]
		name := filepath.Base(r.Path)
		if r.Failed {
			lines = append(lines, fileFailStyle.Render(
				fmt.Sprintf("✗ %s (%v)", name, r.Error)))
			continue
		}
		lines = append(lines, fileOkStyle.Render(
			fmt.Sprintf("✓ %s %dx%d → %dx%d",
				name, r.OldWidth, r.OldHeight, r.NewWidth, r.NewHeight)))
	}

	return panelStyle.Width(m.width - 2).Render(strings.Join(lines, "\n"))
}

// renderLogsPanel renders the scrolling log messages
func (m Model) renderLogsPanel() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var lines []string
	lines = append(lines, panelTitleStyle.Render("LOG"))

	shown := m.logMessages
	if len(shown) > 6 {
		shown = shown[len(shown)-6:]
	}
	for _, msg := range shown {
		style := lipgloss.NewStyle().Foreground(msg.Color)
		lines = append(lines, style.Render(
			fmt.Sprintf("%s %s", msg.Time.Format("15:04:05"), msg.Message)))
	}

	return panelStyle.Width(m.width - 2).Render(strings.Join(lines, "\n"))
}

// renderHelp renders the keybinding help
func (m Model) renderHelp() string {
	help := []string{
		"q / ctrl+c  quit",
		"ctrl+l      clear logs",
		"?           toggle help",
	}
	return helpStyle.Render(strings.Join(help, "\n"))
}
