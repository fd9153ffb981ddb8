package mcpadapter

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// assetLicensesTool declares the asset_licenses tool contract.
func assetLicensesTool() mcp.Tool {
	return mcp.NewTool("asset_licenses",
		mcp.WithDescription("Get all licenses checked out to an asset."),
		mcp.WithNumber("asset_id", mcp.Required(), mcp.Description("Asset ID")),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			ReadOnlyHint:    mcp.ToBoolPtr(true),
			DestructiveHint: mcp.ToBoolPtr(false),
			IdempotentHint:  mcp.ToBoolPtr(true),
		}),
	)
}

// LicensesHandler handles asset_licenses invocations.
type LicensesHandler struct {
	deps Dependencies
}

// NewLicensesHandler creates a new licenses handler.
func NewLicensesHandler(deps Dependencies) *LicensesHandler {
	return &LicensesHandler{deps: deps}
}

type assetLicensesInput struct {
	AssetID int `json:"asset_id"`
}

// HandleAssetLicenses lists the licenses checked out to an asset.
func (h *LicensesHandler) HandleAssetLicenses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in assetLicensesInput
	if err := req.BindArguments(&in); err != nil {
		return failure("invalid arguments: %v", err), nil
	}
	if in.AssetID <= 0 {
		return failure("asset_id is required"), nil
	}

	client, err := h.deps.Inventory(ctx)
	if err != nil {
		return failure("%v", err), nil
	}

	list, err := client.Assets.Licenses(ctx, in.AssetID)
	if err != nil {
		return upstreamFailure("Asset", err), nil
	}

	rows := make([]map[string]any, 0, len(list.Rows))
	for _, l := range list.Rows {
		rows = append(rows, map[string]any{
			"id":    l.ID,
			"name":  l.Name,
			"seats": l.Seats,
		})
	}
	return success(map[string]any{
		"asset_id": in.AssetID,
		"licenses": rows,
	}), nil
}
