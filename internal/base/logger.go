// Package base
package base

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/open-hangar/aeroledger/internal/interfaces/global"
)

const logDirectory = "logs"

var (
	debugColor = color.New(color.FgCyan)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	fatalColor = color.New(color.FgRed, color.Bold)
)

type Logger struct {
	mu      sync.Mutex
	debug   bool
	logFile *os.File
}

func NewLogger() *Logger {
	return &Logger{}
}

func (logger *Logger) Init(debug bool) {
	logger.debug = debug

	if err := os.MkdirAll(logDirectory, global.DefaultDirectoryPermission); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "fail to create log directory: %v\n", err)
	} else {
		fileName := filepath.Join(logDirectory, fmt.Sprintf("aeroledger-%s.log", time.Now().Format("20060102")))
		file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "fail to open log file: %v\n", err)
		} else {
			logger.logFile = file
		}
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var writer io.Writer = os.Stdout
	if logger.logFile != nil {
		writer = io.MultiWriter(os.Stdout, logger.logFile)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})))
}

type LoggerShutdownCallback struct {
	logger *Logger
}

func (lc *LoggerShutdownCallback) Invoke(_ context.Context) error {
	if lc.logger.logFile == nil {
		return nil
	}
	return lc.logger.logFile.Close()
}

func (logger *Logger) ShutdownCallback() global.Callable {
	return &LoggerShutdownCallback{logger: logger}
}

func (logger *Logger) write(tag string, tagColor *color.Color, msg string) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	_, _ = fmt.Fprintf(os.Stdout, "%s [%s] %s\n", timestamp, tagColor.Sprint(tag), msg)
	if logger.logFile != nil {
		_, _ = fmt.Fprintf(logger.logFile, "%s [%s] %s\n", timestamp, tag, msg)
	}
}

func (logger *Logger) Debug(msg string, v ...interface{}) {
	if !logger.debug {
		return
	}
	logger.write("DEBUG", debugColor, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) DebugF(msg string, v ...interface{}) {
	if !logger.debug {
		return
	}
	logger.write("DEBUG", debugColor, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Info(msg string, v ...interface{}) {
	logger.write("INFO", infoColor, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) InfoF(msg string, v ...interface{}) {
	logger.write("INFO", infoColor, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Warn(msg string, v ...interface{}) {
	logger.write("WARN", warnColor, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) WarnF(msg string, v ...interface{}) {
	logger.write("WARN", warnColor, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Error(msg string, v ...interface{}) {
	logger.write("ERROR", errorColor, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) ErrorF(msg string, v ...interface{}) {
	logger.write("ERROR", errorColor, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Fatal(msg string, v ...interface{}) {
	logger.write("FATAL", fatalColor, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) FatalF(msg string, v ...interface{}) {
	logger.write("FATAL", fatalColor, fmt.Sprintf(msg, v...))
}
