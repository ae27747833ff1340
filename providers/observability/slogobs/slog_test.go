package slogobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/leofalp/emcalc/providers/observability"
)

func newTestObserver(buf *bytes.Buffer, level slog.Level) *Observer {
	return New(WithFormat(FormatJSON), WithLevel(level), WithOutput(buf))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		records = append(records, record)
	}
	return records
}

func TestObserver_StartSpanAndEnd(t *testing.T) {
	var buf bytes.Buffer
	obs := newTestObserver(&buf, slog.LevelDebug)

	ctx, span := obs.StartSpan(context.Background(), observability.SpanToolDispatch,
		observability.String(observability.AttrToolName, "rc_time_constant"),
	)
	if observability.SpanFromContext(ctx) != span {
		t.Fatal("expected span to be stored in the returned context")
	}

	span.SetAttributes(observability.Float64("value", 2.5))
	span.SetStatus(observability.StatusOK, "")
	span.End()

	records := decodeLines(t, &buf)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %s", len(records), buf.String())
	}
	if records[0]["event"] != "span.start" {
		t.Errorf("expected span.start, got %v", records[0]["event"])
	}
	end := records[1]
	if end["event"] != "span.end" {
		t.Errorf("expected span.end, got %v", end["event"])
	}
	if end["span"] != observability.SpanToolDispatch {
		t.Errorf("expected span name, got %v", end["span"])
	}
	if end[observability.AttrToolName] != "rc_time_constant" {
		t.Errorf("expected start attributes on end record, got %v", end)
	}
	if end[observability.AttrStatus] != "ok" {
		t.Errorf("expected status ok, got %v", end[observability.AttrStatus])
	}
	if _, ok := end["duration"]; !ok {
		t.Error("expected duration on end record")
	}
}

func TestObserver_ErrorSpanEndsAtWarn(t *testing.T) {
	var buf bytes.Buffer
	obs := newTestObserver(&buf, slog.LevelWarn)

	_, span := obs.StartSpan(context.Background(), "failing")
	span.RecordError(errors.New("boom"))
	span.SetStatus(observability.StatusError, "boom")
	span.End()

	records := decodeLines(t, &buf)
	if len(records) != 1 {
		t.Fatalf("expected only the warn record, got %d: %s", len(records), buf.String())
	}
	if records[0]["level"] != "WARN" {
		t.Errorf("expected WARN, got %v", records[0]["level"])
	}
	if records[0][observability.AttrError] != "boom" {
		t.Errorf("expected error attribute, got %v", records[0])
	}
	if records[0][observability.AttrStatusDescription] != "boom" {
		t.Errorf("expected status description, got %v", records[0])
	}
}

func TestObserver_RecordNilError(t *testing.T) {
	var buf bytes.Buffer
	obs := newTestObserver(&buf, slog.LevelDebug)

	_, span := obs.StartSpan(context.Background(), "noop")
	buf.Reset()
	span.RecordError(nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output for nil error, got %s", buf.String())
	}
}

func TestObserver_Metrics(t *testing.T) {
	var buf bytes.Buffer
	obs := newTestObserver(&buf, LevelTrace)
	ctx := context.Background()

	counter := obs.Counter(observability.MetricToolCalls)
	if obs.Counter(observability.MetricToolCalls) != counter {
		t.Fatal("expected the same counter for the same name")
	}
	counter.Add(ctx, 1)
	counter.Add(ctx, 2)
	if got := counter.(*slogCounter).Value(); got != 3 {
		t.Errorf("expected counter value 3, got %d", got)
	}

	hist := obs.Histogram(observability.MetricToolDurationMs)
	hist.Record(ctx, 1.5)
	hist.Record(ctx, 2.5)
	count, sum := hist.(*slogHistogram).Snapshot()
	if count != 2 || sum != 4 {
		t.Errorf("expected count 2 and sum 4, got %d and %v", count, sum)
	}

	records := decodeLines(t, &buf)
	if len(records) != 4 {
		t.Fatalf("expected 4 metric records, got %d", len(records))
	}
	if records[1]["value"] != float64(3) {
		t.Errorf("expected running total 3, got %v", records[1]["value"])
	}
	if records[0]["level"] != "TRACE" {
		t.Errorf("expected TRACE level, got %v", records[0]["level"])
	}
}

func TestObserver_MetricsSuppressedAboveTrace(t *testing.T) {
	var buf bytes.Buffer
	obs := newTestObserver(&buf, slog.LevelInfo)

	obs.Counter("c").Add(context.Background(), 1)
	obs.Histogram("h").Record(context.Background(), 1)
	if buf.Len() != 0 {
		t.Errorf("expected no output at INFO, got %s", buf.String())
	}
}

func TestObserver_LogLevels(t *testing.T) {
	var buf bytes.Buffer
	obs := newTestObserver(&buf, slog.LevelInfo)
	ctx := context.Background()

	obs.Debug(ctx, "debug")
	obs.Info(ctx, "info", observability.Int("n", 1))
	obs.Warn(ctx, "warn")
	obs.Error(ctx, "error", observability.Error(errors.New("bad")))

	records := decodeLines(t, &buf)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d: %s", len(records), buf.String())
	}
	want := []string{"info", "warn", "error"}
	for i, msg := range want {
		if records[i]["msg"] != msg {
			t.Errorf("record %d: expected %q, got %v", i, msg, records[i]["msg"])
		}
	}
	if records[2][observability.AttrError] != "bad" {
		t.Errorf("expected error attribute, got %v", records[2])
	}
}

func TestObserver_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := New(WithLogger(logger), WithFormat(FormatJSON))

	if obs.Logger() != logger {
		t.Fatal("expected the provided logger to be used")
	}
	obs.Info(context.Background(), "hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("expected text handler output, got %s", buf.String())
	}
}
