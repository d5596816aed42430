package common

import (
	"io"
	"log"
	"os"
)

var GLogger *Logger

// Logger writes user-facing output to the console writer and, when a debug
// writer is given, verbose diagnostics to it.
type Logger struct {
	console *log.Logger
	debug   *log.Logger
}

func NewLogger(consoleWriter io.Writer, debugWriter io.Writer) *Logger {
	if consoleWriter == nil {
		consoleWriter = os.Stdout
	}
	result := &Logger{
		console: log.New(consoleWriter, "", 0),
	}
	if debugWriter != nil {
		result.debug = log.New(debugWriter, "[DEBUG]", log.Lmicroseconds)
	}
	return result
}

func (l *Logger) ConsolePrintf(format string, v ...any) {
	if l.console != nil {
		l.console.Printf(format, v...)
	}
}

func (l *Logger) ConsoleFatal(v ...any) {
	if l.console != nil {
		l.console.Fatal(v...)
	}
}

func (l *Logger) DebugPrintf(format string, v ...any) {
	if l.debug != nil {
		l.debug.Printf(format, v...)
	}
}

func (l *Logger) Close() {
	if l.debug != nil {
		if f, ok := l.debug.Writer().(*os.File); ok {
			f.Close()
		}
	}
}
