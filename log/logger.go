package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes levelled lines to the terminal and, optionally, a rotated
// log file. A nil *Logger discards everything.
type Logger struct {
	terminal io.Writer
	file     *lumberjack.Logger
	exit     func(int)

	Name  string
	Level LogLevel

	TimeFormat string
	File       string
	NoColor    bool
	JSON       bool
	NoTerminal bool
	Rotation   *LoggerRotation
}

type LoggerRotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type logEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Service   string         `json:"service,omitempty"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

func NewLogger(name string, level LogLevel, file string, noTerminal bool) *Logger {
	l := &Logger{
		Name:       name,
		Level:      level,
		File:       file,
		NoTerminal: noTerminal,
		NoColor:    !IsTerminal(os.Stderr),

		TimeFormat: "2006-01-02 15:04:05",
		Rotation: &LoggerRotation{
			MaxSize:    128,
			MaxBackups: 5,
			MaxAge:     16,
			Compress:   false,
		},
	}

	l.setupWriter()

	return l
}

// NewWriterLogger creates a logger writing uncoloured lines to w only.
func NewWriterLogger(name string, level LogLevel, w io.Writer) *Logger {
	return &Logger{
		terminal:   w,
		Name:       name,
		Level:      level,
		NoColor:    true,
		NoTerminal: true,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

func (l *Logger) setupWriter() {
	if !l.NoTerminal {
		l.terminal = os.Stderr
	}

	if l.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   l.File,
			MaxSize:    l.Rotation.MaxSize,
			MaxBackups: l.Rotation.MaxBackups,
			MaxAge:     l.Rotation.MaxAge,
			Compress:   l.Rotation.Compress,
		}
	}

	if l.terminal == nil && l.file == nil {
		l.terminal = os.Stderr
	}
}

// Close releases the rotated log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Enabled reports whether lines of the given level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return l != nil && level >= l.Level && l.Level != Off
}

func (l *Logger) log(level LogLevel, fields map[string]any, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formattedMsg := fmt.Sprintf(msg, args...)

	if l.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Message:   formattedMsg,
			Fields:    fields,
		}
		if l.Name != "" {
			entry.Service = l.Name
		}

		jsonBytes, _ := json.Marshal(entry)
		l.write(fmt.Sprintf("%s\n", jsonBytes), "")
	} else {
		prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
		if l.Name != "" {
			prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
		}
		for _, key := range sortedKeys(fields) {
			formattedMsg = fmt.Sprintf("%s %s=%v", formattedMsg, key, fields[key])
		}

		line := fmt.Sprintf("%s %s", prefix, formattedMsg)
		colored := ""
		if !l.NoTerminal && !l.NoColor {
			c := Color(level)
			c.EnableColor()
			colored = c.Sprint(line) + "\n"
		}
		l.write(line+"\n", colored)
	}

	if level == Fatal {
		if l.exit != nil {
			l.exit(1)
		} else {
			os.Exit(1)
		}
	}
}

// write sends line to the log file and to the terminal. The terminal receives
// colored instead when it is not empty; the file only ever gets plain lines.
func (l *Logger) write(line, colored string) {
	if l.terminal != nil {
		if colored != "" {
			io.WriteString(l.terminal, colored)
		} else {
			io.WriteString(l.terminal, line)
		}
	}
	if l.file != nil {
		io.WriteString(l.file, line)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, nil, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, nil, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, nil, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, nil, msg, args...)
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.log(Fatal, nil, msg, args...)
}

// Debugw logs msg with structured key/value fields.
func (l *Logger) Debugw(msg string, fields map[string]any) {
	l.log(Debug, fields, "%s", msg)
}

func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return nil
	}

	return &Logger{
		terminal: l.terminal, // Share the same writers
		file:     l.file,
		exit:     l.exit,

		Name:  fmt.Sprintf("%s/%s", l.Name, name),
		Level: l.Level,

		TimeFormat: l.TimeFormat,
		File:       l.File,
		NoColor:    l.NoColor,
		NoTerminal: l.NoTerminal,
		JSON:       l.JSON,
		Rotation:   l.Rotation,
	}
}
