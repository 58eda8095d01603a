// Package logger sends logrus output to a size-rotated file so log lines
// never mix with the interactive screen.
package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerConfig struct {
	LogLevel     string
	LogFile      string
	LogFileSize  int // megabytes
	LogFileCount int
	Verbose      bool
}

// InitLogger points the standard logrus logger at the configured file. The
// returned closer releases the file; an empty LogFile discards all output.
func InitLogger(config LoggerConfig) (io.Closer, error) {
	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		return nil, err
	}
	if config.Verbose {
		level = logrus.DebugLevel
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})

	if config.LogFile == "" {
		logrus.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	out := &lumberjack.Logger{
		Filename:   config.LogFile,
		MaxSize:    config.LogFileSize,
		MaxBackups: config.LogFileCount,
		MaxAge:     28, //days
	}
	logrus.SetOutput(out)
	return out, nil
}
