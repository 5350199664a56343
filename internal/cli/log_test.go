package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevelFilter(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info passes at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("network built", "nodes", 3) },
			wantLog: true,
		},
		{
			name:    "debug filtered at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("cache hit", "key", "vis-network.min.js") },
			wantLog: false,
		},
		{
			name:    "debug passes with verbose",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("cache hit", "key", "vis-network.min.js") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgressReportsElapsed(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	time.Sleep(10 * time.Millisecond)
	prog.done("Rendered 3 nodes, 1 edges")

	out := buf.String()
	if !strings.Contains(out, "Rendered 3 nodes, 1 edges") {
		t.Errorf("done() output missing message: %q", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, "ms") {
		t.Errorf("done() output missing elapsed time: %q", out)
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Fatal("loggerFromContext should return the attached logger")
	}

	loggerFromContext(ctx).Info("serving", "addr", "localhost:8080")
	if buf.Len() == 0 {
		t.Error("attached logger should receive output")
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}
