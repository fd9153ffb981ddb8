package mcpadapter

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/malekian/snipemcp/internal/snipeit"
)

// assetMaintenanceTool declares the asset_maintenance tool contract.
func assetMaintenanceTool() mcp.Tool {
	return mcp.NewTool("asset_maintenance",
		mcp.WithDescription("Manage maintenance records for assets. "+
			"Currently only create is supported."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("The maintenance operation to perform"),
			mcp.Enum("create"),
		),
		mcp.WithNumber("asset_id", mcp.Required(), mcp.Description("Asset ID")),
		mcp.WithObject("maintenance_data",
			mcp.Required(),
			mcp.Description("Maintenance record data (required for create action)"),
			mcp.Properties(map[string]any{
				"asset_improvement": propString("Type of maintenance/improvement"),
				"supplier_id":       propInteger("Supplier ID"),
				"title":             propString("Maintenance title"),
				"cost":              propNumber("Maintenance cost"),
				"start_date":        propString("Start date (YYYY-MM-DD)"),
				"completion_date":   propString("Completion date (YYYY-MM-DD)"),
				"notes":             propString("Maintenance notes"),
			}),
		),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			ReadOnlyHint:    mcp.ToBoolPtr(false),
			DestructiveHint: mcp.ToBoolPtr(false),
			IdempotentHint:  mcp.ToBoolPtr(false),
		}),
	)
}

// MaintenanceHandler handles asset_maintenance invocations.
type MaintenanceHandler struct {
	deps Dependencies
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(deps Dependencies) *MaintenanceHandler {
	return &MaintenanceHandler{deps: deps}
}

type assetMaintenanceInput struct {
	Action          string                     `json:"action"`
	AssetID         int                        `json:"asset_id"`
	MaintenanceData *snipeit.MaintenanceParams `json:"maintenance_data"`
}

// HandleAssetMaintenance creates maintenance records.
func (h *MaintenanceHandler) HandleAssetMaintenance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in assetMaintenanceInput
	if err := req.BindArguments(&in); err != nil {
		return failure("invalid arguments: %v", err), nil
	}
	if in.Action != "create" {
		return failure("unknown action: %s", in.Action), nil
	}
	if in.AssetID <= 0 {
		return failure("asset_id is required"), nil
	}
	if in.MaintenanceData == nil {
		return failure("maintenance_data is required for create action"), nil
	}
	if in.MaintenanceData.AssetImprovement == "" || in.MaintenanceData.SupplierID == 0 || in.MaintenanceData.Title == "" {
		return failure("asset_improvement, supplier_id, and title are required for maintenance records"), nil
	}

	client, err := h.deps.Inventory(ctx)
	if err != nil {
		return failure("%v", err), nil
	}

	created, err := client.Maintenances.Create(ctx, in.AssetID, *in.MaintenanceData)
	if err != nil {
		return upstreamFailure("Asset", err), nil
	}
	return success(map[string]any{
		"action":      "create",
		"asset_id":    in.AssetID,
		"message":     "Maintenance record created successfully",
		"maintenance": created,
	}), nil
}
