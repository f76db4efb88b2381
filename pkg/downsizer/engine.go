package downsizer

import (
	"fmt"
	"os"
	"path/filepath"

	"downsizer/pkg/backup"
	"downsizer/pkg/config"
	"downsizer/pkg/logger"
	"downsizer/pkg/resizer"
	"downsizer/pkg/ui"
	"downsizer/pkg/walker"
)

// Engine orchestrates the downsize run: backup, walk, per-file resize.
type Engine struct {
	config  *config.Config
	logger  logger.Logger
	walker  *walker.Walker
	resizer *resizer.Resizer
	copier  *backup.Copier
	tui     ui.TUI
}

// New creates an Engine from the given configuration.
func New(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.GetLogger()

	return &Engine{
		config:  cfg,
		logger:  log,
		walker:  walker.New(cfg.Resize.Extensions),
		resizer: resizer.New(&cfg.Resize, log),
		copier:  backup.New(cfg.Backup.Suffix),
	}, nil
}

// SetTUI sets the terminal UI for the engine
func (e *Engine) SetTUI(tui ui.TUI) {
	e.tui = tui
}

// Run downsizes every matching image file under dir, sequentially. When
// backup is enabled the whole tree is copied aside before the first file
// is touched. The first error aborts the run; files resized before it
// stay resized.
func (e *Engine) Run(dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}

	info, err := os.Stat(absDir)
	if err != nil {
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", absDir)
	}

	e.logger.WithFields(map[string]interface{}{
		"directory":     absDir,
		"max_dimension": e.config.Resize.MaxDimension,
		"in_place":      e.config.Backup.Skip,
	}).Info("Starting downsize run")

	if !e.config.Backup.Skip {
		dst, err := e.copier.Backup(absDir)
		if err != nil {
			return err
		}
		e.logger.WithField("backup", dst).Info("Backup created")
		if e.tui != nil {
			e.tui.LogInfo("Backup created at %s", dst)
		} else if !e.config.Output.Quiet {
			ui.PrintInfo("Backup", dst)
		}
	}

	files, err := e.walker.Walk(absDir)
	if err != nil {
		return err
	}

	e.logger.WithField("count", len(files)).Info("Collected image files")
	if e.tui != nil {
		e.tui.SetTotal(len(files))
		e.tui.LogInfo("Found %d image files", len(files))
	}

	// The plain progress line is silenced in quiet mode and whenever the
	// TUI owns the terminal
	progress := ui.NewProgressDisplay(absDir, len(files),
		e.config.Output.Quiet || e.tui != nil)

	for _, file := range files {
		progress.StartFile(file.Path)
		if e.tui != nil {
			e.tui.StartFile(file.Path)
		}

		result, err := e.resizer.ResizeFile(file.Path)
		if err != nil {
			if e.tui != nil {
				e.tui.FailFile(file.Path, err)
			}
			e.logger.WithError(err).WithField("file", file.Path).Error("Resize failed")
			return err
		}

		progress.CompleteFile(file.Path)
		if e.tui != nil {
			e.tui.CompleteFile(file.Path,
				result.OldWidth, result.OldHeight,
				result.Spec.Width, result.Spec.Height)
		}
	}

	progress.Complete()
	if e.tui != nil {
		e.tui.LogSuccess("Downsized %d images", len(files))
	}

	e.logger.WithField("count", len(files)).Info("Downsize run completed")

	return nil
}
