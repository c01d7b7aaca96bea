package main

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
}

func isTerminalAttached(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}

// setupLogging points the global logger at out, human readable on a terminal
// and JSON otherwise.
func setupLogging(level string, out *os.File) {
	var w io.Writer = out
	if isTerminalAttached(out) {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	logLevel, ok := logLevelMatches[strings.ToUpper(level)]
	if !ok {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
}
