// Package report delivers unexpected errors to an observability sink.
//
// The core depends on the Reporter interface rather than a global logger so
// tests can substitute a capturing stub.
package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/Jai71/quicknotes/internal/logging"
)

// Reporter records an unexpected error together with a context label and
// optional key/value metadata.
type Reporter interface {
	Report(ctx context.Context, label string, err error, kv ...any)
}

// LogReporter writes reports to a structured logger, attaching a correlation
// id so a user-visible failure can be matched to its log entry.
type LogReporter struct {
	log logging.Logger
}

func New(log logging.Logger) *LogReporter {
	return &LogReporter{log: log}
}

// Report logs err at error level. The returned correlation id is also
// included in the entry under "correlation_id".
func (r *LogReporter) Report(ctx context.Context, label string, err error, kv ...any) {
	args := make([]any, 0, 6+len(kv))
	args = append(args, "context", label, "error", err, "correlation_id", uuid.NewString())
	args = append(args, kv...)
	r.log.Error(ctx, "unhandled error", args...)
}
