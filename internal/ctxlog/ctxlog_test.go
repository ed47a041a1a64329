// SPDX-License-Identifier: MIT

package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/ctxlog"
)

func TestFromContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.New("debug", "text", &buf)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	require.Same(t, logger, ctxlog.FromContext(ctx))
	ctxlog.FromContext(ctx).Debug("hello", "k", 1)
	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "k=1")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}

func TestNewJSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.New("warn", "json", &buf)
	logger.Info("dropped")
	require.Empty(t, buf.String())
	logger.Warn("kept")
	require.Contains(t, buf.String(), `"msg":"kept"`)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ctxlog.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ctxlog.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ctxlog.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ctxlog.ParseLevel("bogus"))
}
