package debug

import (
	"fmt"
	"log/slog"
	"os"
)

var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}))

// Logger returns the logger used for debug output.
func Logger() *slog.Logger {
	return theLog
}

// SetLogger replaces the logger used for debug output.
func SetLogger(l *slog.Logger) {
	theLog = l
}

func Logf(msg string, args ...any) {
	theLog.Debug(fmt.Sprintf(msg, args...))
}
