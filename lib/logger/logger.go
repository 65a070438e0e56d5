package logger

import (
	"fmt"
	"log"
	"os"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

var (
	std      = log.New(os.Stderr, "", log.LstdFlags)
	minLevel = InfoLevel
)

var levelPrefixes = map[Level]string{
	DebugLevel: "[DEBUG] ",
	InfoLevel:  "[INFO] ",
	WarnLevel:  "[WARN] ",
	ErrorLevel: "[ERROR] ",
	FatalLevel: "[FATAL] ",
}

func SetLevel(lv Level) {
	minLevel = lv
}

func output(lv Level, msg string) {
	if lv < minLevel {
		return
	}
	std.Print(levelPrefixes[lv] + msg)
	if lv == FatalLevel {
		os.Exit(1)
	}
}

func Debug(v ...any) {
	output(DebugLevel, fmt.Sprint(v...))
}

func Debugf(format string, v ...any) {
	output(DebugLevel, fmt.Sprintf(format, v...))
}

func Info(v ...any) {
	output(InfoLevel, fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	output(InfoLevel, fmt.Sprintf(format, v...))
}

func Warn(v ...any) {
	output(WarnLevel, fmt.Sprint(v...))
}

func Warnf(format string, v ...any) {
	output(WarnLevel, fmt.Sprintf(format, v...))
}

func Error(v ...any) {
	output(ErrorLevel, fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	output(ErrorLevel, fmt.Sprintf(format, v...))
}

func Fatal(v ...any) {
	output(FatalLevel, fmt.Sprint(v...))
}
