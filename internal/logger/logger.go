package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger instance. It starts as a nop logger: stdout is
// reserved for the segment text and tmux re-runs the binary every render
// tick, so nothing may leak to the console unless explicitly requested.
var Log = zerolog.Nop()

// fileWriter is the rotated file sink, nil until InitWithFile.
var fileWriter *lumberjack.Logger

// FileConfig holds settings for the rotated log file.
type FileConfig struct {
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *FileConfig) GetMaxSizeMB() int {
	if c == nil || c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *FileConfig) GetMaxAgeDays() int {
	if c == nil || c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 2 if not set.
func (c *FileConfig) GetMaxBackups() int {
	if c == nil || c.MaxBackups <= 0 {
		return 2
	}
	return c.MaxBackups
}

// Init configures console logging. With debug false the logger stays a nop;
// with debug true events go to stderr so stdout stays clean for the segment.
func Init(debug bool) {
	if !debug {
		Log = zerolog.Nop()
		return
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	Log = zerolog.New(output).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

// InitWithFile routes all events to a rotated file under dir in addition to
// the console behaviour of Init.
func InitWithFile(debug bool, dir string, cfg *FileConfig) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(dir, "paneline.log"),
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		Compress:   true,
	}

	var output zerolog.LevelWriter
	if debug {
		console := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		output = zerolog.MultiLevelWriter(console, fileWriter)
	} else {
		output = zerolog.MultiLevelWriter(fileWriter)
	}

	Log = zerolog.New(output).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	return nil
}

// GetLogFilePath returns the active log file path, or "" without file logging.
func GetLogFilePath() string {
	if fileWriter == nil {
		return ""
	}
	return fileWriter.Filename
}

// CloseFileWriter flushes and closes the file sink.
func CloseFileWriter() {
	if fileWriter != nil {
		_ = fileWriter.Close()
		fileWriter = nil
	}
}

// Debug starts a debug-level event on the global logger.
func Debug() *zerolog.Event {
	return Log.Debug()
}

// Warn starts a warn-level event on the global logger.
func Warn() *zerolog.Event {
	return Log.Warn()
}
