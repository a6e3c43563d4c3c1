// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"
	"time"
)

const RFC3339UsecTz0 = "2006-01-02T15:04:05.000000Z07:00"

// Logger is the leveled logger shared by the pipeline stages.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

const (
	LevelWarn = iota
	LevelInfo
	LevelDebug
)

func LevelPrefix(level int) string {
	return [...]string{"WARN:  ", "INFO:  ", "DEBUG: "}[level]
}

// NopLogger represents a Logger that doesn't do anything.
var NopLogger Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debugf(format string, v ...interface{}) {}
func (nopLogger) Infof(format string, v ...interface{})  {}
func (nopLogger) Warnf(format string, v ...interface{})  {}

// standardLogger writes every message at or below its verbosity to a
// log.Logger.
type standardLogger struct {
	logger    *log.Logger
	verbosity int
}

// utcWriter stamps each line in UTC with constant width and microsecond
// resolution.
type utcWriter struct {
	w io.Writer
}

func (u utcWriter) Write(p []byte) (int, error) {
	return fmt.Fprintf(u.w, "%v %s", time.Now().UTC().Format(RFC3339UsecTz0), p)
}

func newStandardLogger(w io.Writer, verbosity int) *standardLogger {
	return &standardLogger{
		logger:    log.New(utcWriter{w: w}, "", 0),
		verbosity: verbosity,
	}
}

// NewStandardLogger returns a Logger that drops debug messages.
func NewStandardLogger(w io.Writer) Logger {
	return newStandardLogger(w, LevelInfo)
}

// NewVerboseLogger returns a Logger that writes every message.
func NewVerboseLogger(w io.Writer) Logger {
	return newStandardLogger(w, LevelDebug)
}

// NewLogger returns a verbose logger if verbose is set, and a standard one
// otherwise.
func NewLogger(w io.Writer, verbose bool) Logger {
	if verbose {
		return NewVerboseLogger(w)
	}
	return NewStandardLogger(w)
}

func (s *standardLogger) printf(level int, format string, v ...interface{}) {
	if level > s.verbosity {
		return
	}
	s.logger.Printf(LevelPrefix(level)+format, v...)
}

func (s *standardLogger) Debugf(format string, v ...interface{}) { s.printf(LevelDebug, format, v...) }
func (s *standardLogger) Infof(format string, v ...interface{})  { s.printf(LevelInfo, format, v...) }
func (s *standardLogger) Warnf(format string, v ...interface{})  { s.printf(LevelWarn, format, v...) }

// Logfer is a thing that has only a Logf() method, like testing.T or
// testing.B.
type Logfer interface {
	Logf(format string, v ...interface{})
}

// LogfLogger routes every level to a Logfer, so test output carries the
// pipeline logs.
type LogfLogger struct {
	wrapped Logfer
}

func NewLogfLogger(l Logfer) *LogfLogger {
	return &LogfLogger{wrapped: l}
}

func (ll *LogfLogger) Debugf(format string, v ...interface{}) { ll.wrapped.Logf(format, v...) }
func (ll *LogfLogger) Infof(format string, v ...interface{})  { ll.wrapped.Logf(format, v...) }
func (ll *LogfLogger) Warnf(format string, v ...interface{})  { ll.wrapped.Logf(format, v...) }

// BufferLogger keeps info and warning messages, one per line, for tests to
// inspect. Debug messages are dropped.
type BufferLogger struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewBufferLogger returns a new, empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (b *BufferLogger) printf(level int, format string, v ...interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(&b.buf, LevelPrefix(level)+format+"\n", v...)
}

func (b *BufferLogger) Debugf(format string, v ...interface{}) {}
func (b *BufferLogger) Infof(format string, v ...interface{})  { b.printf(LevelInfo, format, v...) }
func (b *BufferLogger) Warnf(format string, v ...interface{})  { b.printf(LevelWarn, format, v...) }

// ReadAll drains the messages logged so far.
func (b *BufferLogger) ReadAll() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return io.ReadAll(&b.buf)
}
