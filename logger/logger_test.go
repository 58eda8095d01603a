package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movieShelf.log")
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	closer, err := InitLogger(LoggerConfig{LogLevel: "INFO", LogFile: path, LogFileSize: 1, LogFileCount: 1})
	require.NoError(t, err)

	logrus.WithField("path", "movies.csv").Info("import finished")
	logrus.Debug("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "import finished")
	assert.Contains(t, string(data), "path=movies.csv")
	assert.NotContains(t, string(data), "hidden")
}

func TestInitLoggerVerbose(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})

	closer, err := InitLogger(LoggerConfig{LogLevel: "warn", Verbose: true})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestInitLoggerBadLevel(t *testing.T) {
	_, err := InitLogger(LoggerConfig{LogLevel: "loud"})
	assert.Error(t, err)
}
