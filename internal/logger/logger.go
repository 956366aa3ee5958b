package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelSuccess
	LevelError
	LevelFatal
)

var levelNames = map[LogLevel]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarn:    "WARN",
	LevelError:   "ERROR",
	LevelFatal:   "FATAL",
	LevelSuccess: "SUCCESS",
}

var levelColors = map[LogLevel]string{
	LevelDebug:   "\033[36m",   // Cyan
	LevelInfo:    "\033[32m",   // Green
	LevelWarn:    "\033[33m",   // Yellow
	LevelError:   "\033[31m",   // Red
	LevelFatal:   "\033[31;1m", // Bright Red
	LevelSuccess: "\033[32;1m", // Bright Green
}

var levelEmojis = map[LogLevel]string{
	LevelDebug:   "🐛",
	LevelInfo:    "ℹ️",
	LevelWarn:    "⚠️",
	LevelError:   "❌",
	LevelFatal:   "💀",
	LevelSuccess: "✅",
}

// ParseLevel maps a config string to a LogLevel. Unknown values fall
// back to Info so a typo in hostsnap.yml never silences errors.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Logger is the main logger struct
type Logger struct {
	mu         sync.Mutex
	minLevel   LogLevel
	logger     *log.Logger
	display    string
	showCaller bool
}

// New creates a new Logger instance
func New(out io.Writer, display string, flag int, minLevel LogLevel) *Logger {
	return &Logger{
		minLevel: minLevel,
		logger:   log.New(out, "", flag),
		display:  display,
	}
}

// DefaultLogger creates a logger with default settings
func DefaultLogger() *Logger {
	return New(os.Stdout, "", log.Ldate|log.Ltime, LevelInfo)
}

// PackageLogger creates a logger tagged with a package display name,
// e.g. PackageLogger("SCAN", "📁 SCAN").
func PackageLogger(pkgName string, displayName string) *Logger {
	l := DefaultLogger()
	l.display = displayName
	if l.display == "" {
		l.display = pkgName
	}
	register(l)
	return l
}

var (
	registryMu sync.Mutex
	registry   []*Logger
)

func register(l *Logger) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, l)
}

// SetGlobalLevel applies a minimum level to every package logger
// created so far. Commands call this once after config is resolved.
func SetGlobalLevel(level LogLevel) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, l := range registry {
		l.SetLevel(level)
	}
}

// SetGlobalCallerInfo toggles file:line annotations on every package
// logger. Verbose runs turn this on together with the debug level.
func SetGlobalCallerInfo(enable bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, l := range registry {
		l.EnableCallerInfo(enable)
	}
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// SetOutput sets the output destination
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// EnableCallerInfo enables/disables caller information
func (l *Logger) EnableCallerInfo(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.showCaller = enable
}

// Log logs a message at a specific level
func (l *Logger) Log(level LogLevel, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.minLevel {
		return
	}

	var callerInfo string
	if l.showCaller {
		_, file, line, ok := runtime.Caller(2) // 2 levels up the stack
		if ok {
			parts := strings.Split(file, "/")
			if len(parts) > 3 {
				file = strings.Join(parts[len(parts)-3:], "/")
			}
			callerInfo = fmt.Sprintf("%s:%d", file, line)
		}
	}

	levelName := levelNames[level]
	levelColor := levelColors[level]
	levelEmoji := levelEmojis[level]
	resetColor := "\033[0m"

	var pkgDisplay string
	if l.display != "" {
		pkgDisplay = l.display + " "
	}

	formattedMsg := fmt.Sprintf(msg, args...)
	logLine := fmt.Sprintf("%s%s%s %s %s%s",
		levelColor, levelName, resetColor,
		levelEmoji,
		pkgDisplay,
		formattedMsg)

	if callerInfo != "" {
		logLine += fmt.Sprintf(" \033[90m(%s)\033[0m", callerInfo)
	}

	l.logger.Println(logLine)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.Log(LevelDebug, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.Log(LevelInfo, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.Log(LevelWarn, msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.Log(LevelError, msg, args...)
}

// Success logs a success message
func (l *Logger) Success(msg string, args ...interface{}) {
	l.Log(LevelSuccess, msg, args...)
}

// Timed logs the duration of a function execution
func (l *Logger) Timed(label string, fn func()) {
	start := time.Now()
	l.Info("⏳ Starting %s...", label)
	fn()
	l.Info("✅ Completed %s in %v", label, time.Since(start))
}
