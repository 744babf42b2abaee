package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide application logger. Init must run before any
// component writes to it.
var Log = logrus.New()

// Init configures the shared logger. In production entries go to a rotated
// file as JSON; in development they go to stdout in text form.
func Init(appEnv, logFile string) {
	if appEnv == "production" {
		if dir := filepath.Dir(logFile); dir != "." {
			_ = os.MkdirAll(dir, 0o700)
		}

		var out io.Writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		Log.SetOutput(out)
		Log.SetFormatter(&logrus.JSONFormatter{})
		Log.SetLevel(logrus.InfoLevel)
		return
	}

	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log.SetLevel(logrus.DebugLevel)
}
