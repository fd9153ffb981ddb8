// Package mcpadapter declares the MCP tool surface and its handlers.
package mcpadapter

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/malekian/snipemcp/internal/snipeit"
)

// jsonResult renders an envelope map as a single text content block.
func jsonResult(v map[string]any, isError bool) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		// Envelope maps are built locally; a marshal failure is a bug.
		data = []byte(`{"success":false,"error":"internal: failed to encode result"}`)
		isError = true
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(data))},
		IsError: isError,
	}
}

// success renders a {"success":true, ...} envelope.
func success(fields map[string]any) *mcp.CallToolResult {
	fields["success"] = true
	return jsonResult(fields, false)
}

// failure renders a {"success":false, "error":...} envelope. These carry
// the IsError flag but are never protocol-level errors: validation and
// upstream failures stay inside the tool result.
func failure(format string, args ...any) *mcp.CallToolResult {
	return jsonResult(map[string]any{
		"success": false,
		"error":   fmt.Sprintf(format, args...),
	}, true)
}

// upstreamFailure renders an error envelope for a Snipe-IT client error,
// phrasing the message by error kind. noun names the resource acted on
// ("Asset", "Consumable", ...).
func upstreamFailure(noun string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, snipeit.ErrNotConfigured):
		return failure("%v", err)
	case errors.Is(err, snipeit.ErrNotFound):
		return failure("%s not found: %v", noun, err)
	case errors.Is(err, snipeit.ErrAuth):
		return failure("Authentication failed: %v", err)
	case errors.Is(err, snipeit.ErrValidation):
		return failure("Validation error: %v", err)
	default:
		return failure("Snipe-IT error: %v", err)
	}
}
