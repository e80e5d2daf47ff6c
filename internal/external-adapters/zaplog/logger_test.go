package zaplog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ochairo/lintgate/internal/domain/interfaces"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var logger interfaces.Logger = Wrap(zap.New(core))

	logger.Info("tool finished", interfaces.F("exit_code", 2), interfaces.F("tool", "flake8"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["exit_code"] != int64(2) {
		t.Errorf("exit_code = %v (%T), want 2", ctx["exit_code"], ctx["exit_code"])
	}
	if ctx["tool"] != "flake8" {
		t.Errorf("tool = %v, want flake8", ctx["tool"])
	}
}

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("resolved tool")
	logger.Info("running")
	logger.Warn("slow")
	if buf.Len() != 0 {
		t.Errorf("non-verbose logger wrote %q, want nothing below error level", buf.String())
	}

	logger.Error("setup failed", interfaces.F("step", "workdir"))
	if !strings.Contains(buf.String(), "setup failed") {
		t.Errorf("error entry missing from output %q", buf.String())
	}
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("resolved tool", interfaces.F("path", "/venv/bin/flake8"))
	_ = logger.Sync()

	out := buf.String()
	if !strings.Contains(out, "resolved tool") || !strings.Contains(out, "/venv/bin/flake8") {
		t.Errorf("verbose output = %q", out)
	}
}
