package audit

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"sirs/internal/score"

	"gopkg.in/natefinch/lumberjack.v2"
)

const timeLayout = "2006-01-02 15:04:05"

// lineHandler is a slog handler writing every record as one JSON object
// with a formatted time and the record attributes at the top level. Level
// and message are omitted.
type lineHandler struct {
	out io.Writer
	mu  *sync.Mutex
}

func newLineHandler(out io.Writer) *lineHandler {
	return &lineHandler{out: out, mu: &sync.Mutex{}}
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, r.NumAttrs()+1)
	attrs["time"] = r.Time.Format(timeLayout)

	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "" && a.Value.Any() != nil {
			attrs[a.Key] = a.Value.Any()
		}
		return true
	})

	data, err := json.Marshal(attrs)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(append(data, '\n'))
	return err
}

// WithAttrs and WithGroup are not needed by the recorder; the handler is
// returned unchanged.
func (h *lineHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *lineHandler) WithGroup(_ string) slog.Handler      { return h }

func (h *lineHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// JSONRecorder writes one JSON line per estimate to a file rotated and
// compressed by lumberjack. It is safe for concurrent use.
type JSONRecorder struct {
	lumberjack *lumberjack.Logger
	logger     *slog.Logger
}

// NewJSONRecorder creates a recorder writing to file, rotating it at
// maxSize megabytes and keeping maxBackups old files.
func NewJSONRecorder(file string, maxSize, maxBackups int) *JSONRecorder {
	out := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}

	return &JSONRecorder{
		lumberjack: out,
		logger:     slog.New(newLineHandler(out)),
	}
}

// Record appends an estimate with its session, profile and breakdown.
func (r *JSONRecorder) Record(session string, profile score.Document, result score.Result) {
	r.logger.Info("",
		"session", session,
		"profile", profile,
		"total", result.Total,
		"breakdown", result.Breakdown,
	)
}

// Close flushes and closes the current file.
func (r *JSONRecorder) Close() error {
	return r.lumberjack.Close()
}
