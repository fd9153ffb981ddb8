package mcpadapter

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/malekian/snipemcp/pkg/metrics"
)

// withToolMetrics wraps a tool handler to record Prometheus metrics.
// An error envelope counts as an error outcome even though it is not a
// protocol-level failure.
func withToolMetrics(name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		res, err := next(ctx, req)

		durationMs := float64(time.Since(start).Milliseconds())
		outcome := metrics.OutcomeSuccess
		if err != nil || (res != nil && res.IsError) {
			outcome = metrics.OutcomeError
		}
		metrics.RecordToolCall(name, outcome)
		metrics.ObserveToolCallDuration(name, durationMs)

		return res, err
	}
}
