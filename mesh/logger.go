package mesh

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the mesh package and the packages
// built on it (builder, script). By default nothing is logged.
//
// Operators log at slog.LevelDebug: the operator name, the handles it was
// given and the element counts after the edit. Pass nil to restore the
// silent default.
//
//	mesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logEdit records a completed operator together with the resulting counts.
func (m *Mesh) logEdit(op string, attrs ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs = append(attrs,
		slog.Int("vertices", m.VertexCount()),
		slog.Int("edges", m.EdgeCount()),
		slog.Int("facets", m.FacetCount()),
	)
	l.Debug("mesh: "+op, attrs...)
}
