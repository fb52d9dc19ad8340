package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var std = newStd(os.Stdout)

func newStd(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

// Init configures the process logger. Unknown levels fall back to info.
func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	std.SetLevel(lvl)
	std.Info("logger initialized")
}

// SetOutput redirects log output, mainly for tests and the CLI.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Std exposes the underlying logrus logger for gin and cobra wiring.
func Std() *logrus.Logger {
	return std
}

func Debug(msg string, fields map[string]any) {
	std.WithFields(logrus.Fields(fields)).Debug(msg)
}

func Info(msg string, fields map[string]any) {
	std.WithFields(logrus.Fields(fields)).Info(msg)
}

func Warn(msg string, fields map[string]any) {
	std.WithFields(logrus.Fields(fields)).Warn(msg)
}

func Error(msg string, fields map[string]any) {
	std.WithFields(logrus.Fields(fields)).Error(msg)
}

func Fatal(msg string, fields map[string]any) {
	std.WithFields(logrus.Fields(fields)).Fatal(msg)
}
