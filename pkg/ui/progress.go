package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ProgressDisplay renders a single-line progress bar over a known number
// of files.
type ProgressDisplay struct {
	mu             sync.Mutex
	root           string
	totalFiles     int
	processedCount int
	currentFile    string
	startTime      time.Time
	disabled       bool
}

// NewProgressDisplay creates a progress display for totalFiles files under
// root. A disabled display renders nothing.
func NewProgressDisplay(root string, totalFiles int, disabled bool) *ProgressDisplay {
	return &ProgressDisplay{
		root:       root,
		totalFiles: totalFiles,
		startTime:  time.Now(),
		disabled:   disabled,
	}
}

// StartFile marks the start of one file's resize
func (p *ProgressDisplay) StartFile(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.currentFile = filepath.Base(path)
	if !p.disabled {
		p.printProgress()
	}
}

// CompleteFile marks one file as resized
func (p *ProgressDisplay) CompleteFile(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processedCount++
	p.currentFile = ""
	if !p.disabled {
		p.printProgress()
	}
}

// Complete prints the final summary line
func (p *ProgressDisplay) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disabled {
		return
	}

	elapsed := time.Since(p.startTime)
	fmt.Printf("\n\n%s Downsized %d images under %s\n",
		Green("✓"),
		p.processedCount,
		p.root,
	)
	fmt.Printf("  %s %s (%.1f images/min)\n",
		Dim("•"),
		p.formatDuration(elapsed),
		float64(p.processedCount)/elapsed.Minutes(),
	)
}

// ProcessedCount returns the number of files resized so far
func (p *ProgressDisplay) ProcessedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.processedCount
}

// printProgress prints the single progress line
func (p *ProgressDisplay) printProgress() {
	eta := p.calculateETA()

	// Build progress bar
	progress := 0.0
	if p.totalFiles > 0 {
		progress = float64(p.processedCount) / float64(p.totalFiles)
	}
	barWidth := 20
	filled := int(progress * float64(barWidth))
	bar := strings.Repeat("━", filled) + strings.Repeat("─", barWidth-filled)

	line := fmt.Sprintf("\r%s [%s] %d/%d • %s",
		Cyan("Downsizing"),
		bar,
		p.processedCount,
		p.totalFiles,
		eta,
	)

	if p.currentFile != "" {
		line += fmt.Sprintf(" • %s", p.currentFile)
	}

	// Clear line and print
	fmt.Printf("\r%s\r%s", strings.Repeat(" ", 120), line)
}

// calculateETA estimates time remaining
func (p *ProgressDisplay) calculateETA() string {
	if p.processedCount == 0 {
		return "calculating..."
	}

	remaining := p.totalFiles - p.processedCount
	elapsed := time.Since(p.startTime)
	rate := float64(p.processedCount) / elapsed.Seconds()

	if rate == 0 {
		return "calculating..."
	}

	eta := time.Duration(float64(remaining)/rate) * time.Second
	return p.formatDuration(eta)
}

// formatDuration formats a duration in a human-readable way
func (p *ProgressDisplay) formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
