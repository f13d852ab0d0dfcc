package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFanoutHandlerCollapses(t *testing.T) {
	if _, ok := newFanoutHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newFanoutHandler(nil, inner); h != inner {
		t.Fatal("expected single handler to be returned unwrapped")
	}
}

func TestFanoutHandlerRespectsEachLevel(t *testing.T) {
	var quiet, verbose bytes.Buffer
	h := newFanoutHandler(
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With("run_id", "r1")
	logger.Debug("detail")
	logger.Warn("problem")

	if strings.Contains(quiet.String(), "detail") {
		t.Fatalf("warn handler received debug record: %q", quiet.String())
	}
	if !strings.Contains(quiet.String(), "problem") || !strings.Contains(verbose.String(), "detail") {
		t.Fatalf("records not routed: quiet=%q verbose=%q", quiet.String(), verbose.String())
	}
	if !strings.Contains(verbose.String(), "run_id=r1") {
		t.Fatalf("attributes not propagated: %q", verbose.String())
	}
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("fanout should be enabled when any handler is")
	}
}
