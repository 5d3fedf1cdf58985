package routemap

import "fmt"

var LoggerEnabled = false

// Logger is the minimal logging surface the compiler pipeline reports
// through. Messages are printf-style.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

type defaultLogger struct {
}

func (d *defaultLogger) Debug(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

func (d *defaultLogger) Info(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[INFO] "+format+"\n", args...)
	}
}

func (d *defaultLogger) Error(format string, args ...any) {
	if LoggerEnabled {
		switch t := args[0].(type) {
		case map[string]any:
			fmt.Printf("[ERROR] %s %+v\n", format, t)
		default:
			fmt.Printf("[ERROR] "+format+"\n", args...)
		}
	}
}

func getLogger(lgrs ...Logger) Logger {
	if len(lgrs) > 0 && lgrs[0] != nil {
		return lgrs[0]
	}
	return &defaultLogger{}
}
