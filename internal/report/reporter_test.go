package report

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jai71/quicknotes/internal/logging"
)

func TestLogReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	r := New(log)
	r.Report(context.Background(), "render", errors.New("boom"), "command", "list")

	out := buf.String()
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "context=render")
	require.Contains(t, out, "error=boom")
	require.Contains(t, out, "command=list")
	require.Contains(t, out, "correlation_id=")

	// The correlation id must not be empty.
	idx := strings.Index(out, "correlation_id=")
	rest := out[idx+len("correlation_id="):]
	id := strings.Fields(rest)[0]
	require.NotEmpty(t, id)
}
