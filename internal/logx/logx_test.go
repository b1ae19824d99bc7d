package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFields_Constructors(t *testing.T) {
	now := time.Now()

	require.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	require.Equal(t, Field{Key: "k", Value: 1}, Int("k", 1))
	require.Equal(t, Field{Key: "k", Value: int64(2)}, Int64("k", int64(2)))
	require.Equal(t, Field{Key: "k", Value: 7.5}, Float64("k", 7.5))
	require.Equal(t, Field{Key: "k", Value: true}, Bool("k", true))
	require.Equal(t, Field{Key: "k", Value: now}, Time("k", now))
	require.Equal(t, Field{Key: "k", Value: time.Second}, Duration("k", time.Second))
	require.Equal(t, Field{Key: "k", Value: struct{ A int }{A: 1}}, Any("k", struct{ A int }{A: 1}))
}

func TestErr(t *testing.T) {
	require.Equal(t, Field{Key: "error", Value: "boom"}, Err(errors.New("boom")))
	require.Equal(t, Field{Key: "error", Value: ""}, Err(nil))
}

func TestNopLogger_NoPanic(t *testing.T) {
	l := Nop()
	l.Debug("d", String("k", "v"))
	l.Info("i", Int("n", 1))
	l.Warn("w")
	l.Error("e", Err(errors.New("x")))

	l2 := l.With(String("x", "y"))
	require.NotNil(t, l2)

	require.NoError(t, l.Sync())
	require.NoError(t, l2.Sync())
}

func newJSONAdapter(buf *bytes.Buffer) Logger {
	return NewSlogAdapter(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var m map[string]any
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestSlogAdapter_WritesFieldsAtEachLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONAdapter(&buf)

	l.Debug("d", String("k", "v"))
	l.Info("i", Int("n", 1))
	l.Warn("w", Bool("ok", false))
	l.Error("e", Err(errors.New("boom")))
	require.NoError(t, l.Sync())

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)
	require.Equal(t, "DEBUG", lines[0]["level"])
	require.Equal(t, "v", lines[0]["k"])
	require.Equal(t, "INFO", lines[1]["level"])
	require.EqualValues(t, 1, lines[1]["n"])
	require.Equal(t, "WARN", lines[2]["level"])
	require.Equal(t, false, lines[2]["ok"])
	require.Equal(t, "ERROR", lines[3]["level"])
	require.Equal(t, "boom", lines[3]["error"])
}

func TestSlogAdapter_WithAttachesFields(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONAdapter(&buf).With(String("component", "pickup"))

	l.Info("advanced", String("status", "assigned"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "pickup", lines[0]["component"])
	require.Equal(t, "assigned", lines[0]["status"])
}

func TestSlogAdapter_SkipsDisabledLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "shown", lines[0]["msg"])
}

func TestSlogAdapter_WithoutFieldsReturnsSameLogger(t *testing.T) {
	l := NewSlogAdapter(nil)
	require.Same(t, l, l.With())
	require.Len(t, toAttrs([]Field{String("a", "b"), Int("n", 1)}), 2)
}
