package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// Logger логгер с уровнями, пишет в stdout и (опционально) в файл
type Logger struct {
	mu    sync.Mutex
	l     *log.Logger
	level Level
	file  *os.File
}

// New создает логгер. Если filePath пустой, логи пишутся только в stdout.
func New(filePath string, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out  io.Writer = os.Stdout
		file *os.File
	)

	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", filePath, err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	return &Logger{
		l:     log.New(out, "", log.LstdFlags|log.Lmicroseconds),
		level: lvl,
		file:  file,
	}, nil
}

// NewWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWriter(w io.Writer, level Level) *Logger {
	return &Logger{
		l:     log.New(w, "", 0),
		level: level,
	}
}

// ParseLevel разбирает строковое представление уровня
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.write(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.write(LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.write(LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.write(LevelError, format, v...) }

// Fatal логирует ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, format, v...)
	_ = l.Close()
	os.Exit(1)
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) write(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, v...)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.l.Printf("[%s] %s", levelNames[level], msg)
}
