package ui

// TUI is an interface for terminal user interfaces
type TUI interface {
	SetTotal(total int)
	StartFile(path string)
	CompleteFile(path string, oldWidth, oldHeight, newWidth, newHeight int)
	FailFile(path string, err error)
	LogInfo(format string, args ...interface{})
	LogSuccess(format string, args ...interface{})
	LogWarning(format string, args ...interface{})
	LogError(format string, args ...interface{})
}
