// Package downsizer provides the core functionality for shrinking image trees.
//
// The downsizer package orchestrates the entire run, coordinating between
// the directory walker, the backup copier, and the resizer.
//
// Architecture:
//
// The Engine struct is the main component that:
//   - Copies the target tree to a sibling backup before touching anything
//   - Walks the tree for files with matching image extensions
//   - Resizes each file in place, one at a time, in walk order
//   - Provides progress reporting to the terminal or an attached TUI
//
// Usage:
//
//	cfg := config.DefaultConfig()
//	cfg.Resize.MaxDimension = 800
//
//	engine, err := downsizer.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := engine.Run("photos"); err != nil {
//	    log.Fatal(err)
//	}
//
// Failure model:
//
// The run stops at the first error. Files resized before the failure keep
// their new dimensions; the file that failed is left exactly as it was.
// When backup is enabled the pristine tree is always available next to
// the target directory.
package downsizer
