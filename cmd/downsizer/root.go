package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"downsizer/pkg/config"
	"downsizer/pkg/downsizer"
	"downsizer/pkg/logger"
	"downsizer/pkg/ui"
	"downsizer/pkg/ui/tui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	noColor    bool
	quiet      bool

	// Run flags
	maxDim      int
	jpegQuality int
	inPlace     bool
	useTUI      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "downsizer <directory>",
	Short: "Shrink every image in a directory tree to a maximum dimension",
	Long: `Downsizer recursively finds PNG and JPEG files under a directory and
resizes each one so its longer side matches the requested maximum
dimension, overwriting the file in place.

Before anything is touched the whole tree is copied to a sibling
directory named <directory>_original, so the originals survive the run.
Pass --in-place to skip the backup.

Every image must carry EXIF metadata; the metadata is preserved through
the resize. A file without EXIF aborts the run, leaving that file and
everything after it untouched.`,
	Example: `  # Shrink photos/ to 400px, keeping a photos_original/ backup
  downsizer photos

  # Custom maximum dimension
  downsizer photos --max-dim 800

  # No backup, no output
  downsizer photos -i -q

  # Interactive terminal UI with live progress
  downsizer photos --tui`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	Args:    cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet {
			ui.SetQuietMode(true)
		}
		if noColor {
			ui.SetNoColor(true)
		}

		// The TUI owns the screen; the logo would be overdrawn anyway
		if cmd.Name() != "version" && cmd.Name() != "help" && cmd.Name() != "completion" && !useTUI {
			ui.PrintLogo()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		runDownsize(args[0])
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is .downsizer.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors")

	// Run flags
	rootCmd.Flags().IntVarP(&maxDim, "max-dim", "m", 400, "maximum dimension in pixels for the longer side")
	rootCmd.Flags().IntVar(&jpegQuality, "jpeg-quality", 100, "JPEG encoding quality (1-100)")
	rootCmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "skip the backup copy and overwrite directly")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "use interactive terminal UI with real-time progress")

	// Version template
	rootCmd.SetVersionTemplate(`Downsizer {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runDownsize(dir string) {
	// Build flags map from command line
	flags := make(map[string]interface{})
	if maxDim != 400 {
		flags["max-dim"] = maxDim
	}
	if jpegQuality != 100 {
		flags["jpeg-quality"] = jpegQuality
	}
	if inPlace {
		flags["in-place"] = true
	}
	if quiet {
		flags["quiet"] = true
	}
	if noColor {
		flags["no-color"] = true
	}
	if useTUI {
		flags["tui"] = true
	}
	if logLevel != "error" {
		flags["log-level"] = logLevel
	}

	// Load configuration
	cfg, err := config.Load(configFile, flags)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	// Config file may enable modes the flags did not
	if cfg.Output.Quiet {
		ui.SetQuietMode(true)
	}
	if cfg.Output.NoColor {
		ui.SetNoColor(true)
	}

	// Initialize logger
	logger.Initialize(&cfg.Logging)
	logger.WithField("version", version).Info("Downsizer starting")

	if !cfg.Output.TUI {
		ui.PrintInfo("Target Directory", dir)
		ui.PrintInfo("Max Dimension", fmt.Sprintf("%d px", cfg.Resize.MaxDimension))
		if cfg.Backup.Skip {
			ui.PrintWarning("Running in place, no backup will be made")
		}
	}

	engine, err := downsizer.New(cfg)
	if err != nil {
		ui.PrintError("Failed to initialize", err.Error())
		os.Exit(1)
	}

	if cfg.Output.TUI {
		// File count is only known after the walk; the engine fills it in
		terminal := tui.NewTUI(dir, 0)
		engine.SetTUI(terminal)

		// Run the engine in a goroutine, the TUI owns the main thread
		engineDone := make(chan error, 1)
		go func() {
			engineDone <- engine.Run(dir)
		}()

		tuiDone := make(chan error, 1)
		go func() {
			tuiDone <- terminal.Start()
		}()

		select {
		case err := <-engineDone:
			terminal.Stop()
			<-tuiDone
			if err != nil {
				logger.WithError(err).WithField("directory", dir).Error("Downsize failed")
				ui.PrintError("DOWNSIZE FAILED", err.Error())
				os.Exit(1)
			}
		case err := <-tuiDone:
			if err != nil {
				logger.WithError(err).Error("TUI failed")
				os.Exit(1)
			}
		}

		logger.WithField("directory", dir).Info("Downsize completed successfully")
	} else {
		if err := engine.Run(dir); err != nil {
			logger.WithError(err).WithField("directory", dir).Error("Downsize failed")
			ui.PrintError("DOWNSIZE FAILED", err.Error())
			os.Exit(1)
		}

		logger.WithField("directory", dir).Info("Downsize completed successfully")
		ui.PrintSuccess("All images downsized")
	}
}
