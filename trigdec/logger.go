package main

import (
	"os"

	"github.com/charmbracelet/log"
)

type Logger struct {
	InfoLog  *log.Logger
	ErrorLog *log.Logger
}

func NewLogger() Logger {
	infoLog := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
	})
	errorLog := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.ErrorLevel,
	})
	return Logger{InfoLog: infoLog, ErrorLog: errorLog}
}

func (l Logger) Info(message string, module string) {
	l.InfoLog.Info(message, "module", module)
}

func (l Logger) Error(message string) {
	l.ErrorLog.Error(message)
}
