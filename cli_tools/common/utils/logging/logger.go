//  Copyright 2019 Google Inc. All Rights Reserved.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package logging provides the logger used by the migration tool. Entries
// go to the terminal and an optional log file, and can be mirrored to Cloud
// Logging.
package logging

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/logging"
	loggingpb "cloud.google.com/go/logging/apiv2/loggingpb"
	"github.com/google/logger"
	"github.com/google/uuid"
	"github.com/kylelemons/godebug/pretty"
)

// ToolLogger is the logging abstraction used by the migration tool.
type ToolLogger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	// DebugObject pretty prints v under label when debug output is on.
	DebugObject(label string, v interface{})
	RunID() string
	Close() error
}

// cloudSink is the subset of *logging.Logger used for mirroring.
type cloudSink interface {
	Log(e logging.Entry)
	Flush() error
}

// Options configures NewLogger.
type Options struct {
	// Name is the log name locally and in Cloud Logging.
	Name string
	// Debug enables debug entries.
	Debug bool
	// Out receives terminal output. Errors are always written to stderr.
	Out io.Writer
	// LogFile, if set, receives every entry. Close closes it when it is an
	// io.Closer.
	LogFile io.Writer
	// CloudProject enables mirroring to Cloud Logging in that project.
	CloudProject string
}

// LogEntry encapsulates a single log entry.
type LogEntry struct {
	LocalTimestamp string            `json:"localTimestamp"`
	Message        string            `json:"message"`
	RunID          string            `json:"runId"`
	Labels         map[string]string `json:"-"`

	severity logging.Severity
	source   *loggingpb.LogEntrySourceLocation
}

func (e *LogEntry) String() string {
	// INFO: 2006-01-02T15:04:05.999999Z07:00 file.go:82: This is a log message.
	return fmt.Sprintf("%s: %s %s:%d: %s", e.severity, e.LocalTimestamp, e.source.File, e.source.Line, e.Message)
}

// Logger implements ToolLogger.
type Logger struct {
	local *logger.Logger
	out   io.Writer
	debug bool
	runID string
	now   func() time.Time

	mu          sync.Mutex
	cloudClient *logging.Client
	cloud       cloudSink
}

// NewLogger creates a Logger. A failure to reach Cloud Logging is reported
// and mirroring is disabled; it is not fatal.
func NewLogger(ctx context.Context, opts Options) *Logger {
	logFile := opts.LogFile
	if logFile == nil {
		logFile = io.Discard
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	l := &Logger{
		local: logger.Init(opts.Name, false, false, logFile),
		out:   opts.Out,
		debug: opts.Debug,
		runID: uuid.New().String(),
		now:   time.Now,
	}
	if opts.CloudProject == "" {
		return l
	}

	client, err := logging.NewClient(ctx, opts.CloudProject)
	if err != nil {
		l.Warningf("Cloud Logging disabled: %v", err)
		return l
	}
	cl := client.Logger(opts.Name, logging.CommonLabels(map[string]string{"run_id": l.runID}))
	if err := cl.LogSync(ctx, logging.Entry{Severity: logging.Info, Payload: map[string]string{"localTimestamp": l.timestamp(), "message": opts.Name + " started"}}); err != nil {
		// Cloud Logging is not working, so don't continue to try to log.
		client.Close()
		l.Warningf("Cloud Logging disabled: %v", err)
		return l
	}
	l.cloudClient = client
	l.cloud = cl
	return l
}

// RunID returns the id attached to every entry of this run.
func (l *Logger) RunID() string {
	return l.runID
}

// Close flushes and closes the Cloud Logging mirror and the local logger.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var err error
	if l.cloud != nil {
		err = l.cloud.Flush()
	}
	if l.cloudClient != nil {
		if cerr := l.cloudClient.Close(); err == nil {
			err = cerr
		}
	}
	l.cloud, l.cloudClient = nil, nil
	l.local.Close()
	return err
}

func (l *Logger) timestamp() string {
	// RFC3339 with microseconds.
	return l.now().Format("2006-01-02T15:04:05.999999Z07:00")
}

func caller(depth int) *loggingpb.LogEntrySourceLocation {
	// Add 2 to depth to account for this function and the immediate caller.
	depth = depth + 2
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		file = "???"
		line = 0
	}
	fn := ""
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}
	return &loggingpb.LogEntrySourceLocation{File: filepath.Base(file), Line: int64(line), Function: fn}
}

func (l *Logger) log(severity logging.Severity, msg string) {
	e := &LogEntry{
		LocalTimestamp: l.timestamp(),
		Message:        msg,
		RunID:          l.runID,
		severity:       severity,
		source:         caller(1),
	}
	line := strings.TrimSpace(e.String())

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cloud != nil {
		l.cloud.Log(logging.Entry{Severity: severity, SourceLocation: e.source, Payload: e, Labels: e.Labels})
	}
	switch severity {
	case logging.Error:
		// google/logger writes errors to stderr itself.
		l.local.Error(msg)
	case logging.Warning:
		l.local.Warning(msg)
		fmt.Fprintln(l.out, line)
	default:
		l.local.Info(msg)
		fmt.Fprintln(l.out, line)
	}
}

// Debugf logs debug information.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	l.log(logging.Debug, fmt.Sprintf(format, v...))
}

// DebugObject logs a pretty printed v.
func (l *Logger) DebugObject(label string, v interface{}) {
	if !l.debug {
		return
	}
	l.log(logging.Debug, label+":\n"+pretty.Sprint(v))
}

// Infof logs general information.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.log(logging.Info, fmt.Sprintf(format, v...))
}

// Warningf logs warning information.
func (l *Logger) Warningf(format string, v ...interface{}) {
	l.log(logging.Warning, fmt.Sprintf(format, v...))
}

// Errorf logs error information.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.log(logging.Error, fmt.Sprintf(format, v...))
}
