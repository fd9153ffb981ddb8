package mcpadapter

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/malekian/snipemcp/internal/snipeit"
)

// assetOperationsTool declares the asset_operations tool contract.
func assetOperationsTool() mcp.Tool {
	return mcp.NewTool("asset_operations",
		mcp.WithDescription("Perform state operations on assets: "+
			"checkout assigns an asset to a user, location, or another asset; "+
			"checkin returns it to inventory; audit marks it as audited; "+
			"restore recovers a soft-deleted asset."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("The operation to perform on the asset"),
			mcp.Enum("checkout", "checkin", "audit", "restore"),
		),
		mcp.WithNumber("asset_id", mcp.Required(), mcp.Description("Asset ID")),
		mcp.WithObject("checkout_data",
			mcp.Description("Checkout details (required for checkout action)"),
			mcp.Properties(map[string]any{
				"checkout_to_type": propStringEnum("Type of entity to checkout to", []string{"user", "asset", "location"}),
				"assigned_to_id":   propInteger("ID of the user/asset/location"),
				"expected_checkin": propString("Expected checkin date (YYYY-MM-DD)"),
				"checkout_at":      propString("Checkout date (YYYY-MM-DD)"),
				"note":             propString("Checkout notes"),
				"name":             propString("Name for the checkout"),
			}),
		),
		mcp.WithObject("checkin_data",
			mcp.Description("Checkin details (optional for checkin action)"),
			mcp.Properties(map[string]any{
				"note":        propString("Checkin notes"),
				"location_id": propInteger("Location ID to checkin to"),
			}),
		),
		mcp.WithObject("audit_data",
			mcp.Description("Audit details (optional for audit action)"),
			mcp.Properties(map[string]any{
				"location_id":     propInteger("Location ID"),
				"note":            propString("Audit notes"),
				"next_audit_date": propString("Next audit date (YYYY-MM-DD)"),
			}),
		),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			ReadOnlyHint:    mcp.ToBoolPtr(false),
			DestructiveHint: mcp.ToBoolPtr(false),
			IdempotentHint:  mcp.ToBoolPtr(false),
		}),
	)
}

// OperationsHandler handles asset_operations invocations.
type OperationsHandler struct {
	deps Dependencies
}

// NewOperationsHandler creates a new operations handler.
func NewOperationsHandler(deps Dependencies) *OperationsHandler {
	return &OperationsHandler{deps: deps}
}

type assetOperationsInput struct {
	Action       string                  `json:"action"`
	AssetID      int                     `json:"asset_id"`
	CheckoutData *snipeit.CheckoutParams `json:"checkout_data"`
	CheckinData  *snipeit.CheckinParams  `json:"checkin_data"`
	AuditData    *snipeit.AuditParams    `json:"audit_data"`
}

// HandleAssetOperations dispatches checkout, checkin, audit, and restore.
// The asset is fetched first so a missing ID fails before any mutation.
func (h *OperationsHandler) HandleAssetOperations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in assetOperationsInput
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

	asset, err := client.Assets.Get(ctx, in.AssetID)
	if err != nil {
		return upstreamFailure("Asset", err), nil
	}

	switch in.Action {
	case "checkout":
		return h.checkout(ctx, client, asset, in), nil
	case "checkin":
		return h.checkin(ctx, client, asset, in), nil
	case "audit":
		return h.audit(ctx, client, asset, in), nil
	case "restore":
		return h.restore(ctx, client, asset), nil
	default:
		return failure("unknown action: %s", in.Action), nil
	}
}

func (h *OperationsHandler) checkout(ctx context.Context, client *snipeit.Client, asset *snipeit.Asset, in assetOperationsInput) *mcp.CallToolResult {
	if in.CheckoutData == nil {
		return failure("checkout_data is required for checkout action")
	}
	if in.CheckoutData.CheckoutToType == "" || in.CheckoutData.AssignedToID == 0 {
		return failure("checkout_to_type and assigned_to_id are required for checkout action")
	}

	if err := client.Assets.Checkout(ctx, asset.ID, *in.CheckoutData); err != nil {
		return upstreamFailure("Asset", err)
	}

	// Echo post-checkout state; if the re-fetch fails, fall back to the
	// request data so the checkout itself still reports success.
	assetTag := asset.AssetTag
	var assignedTo any = map[string]any{
		"type": in.CheckoutData.CheckoutToType,
		"id":   in.CheckoutData.AssignedToID,
	}
	if updated, err := client.Assets.Get(ctx, asset.ID); err == nil {
		assetTag = updated.AssetTag
		if updated.AssignedTo != nil {
			assignedTo = updated.AssignedTo
		}
	}

	return success(map[string]any{
		"action":   "checkout",
		"asset_id": asset.ID,
		"message": "Asset checked out to " + in.CheckoutData.CheckoutToType +
			" " + strconv.Itoa(in.CheckoutData.AssignedToID),
		"asset": map[string]any{
			"id":          asset.ID,
			"asset_tag":   assetTag,
			"assigned_to": assignedTo,
		},
	})
}

func (h *OperationsHandler) checkin(ctx context.Context, client *snipeit.Client, asset *snipeit.Asset, in assetOperationsInput) *mcp.CallToolResult {
	var params snipeit.CheckinParams
	if in.CheckinData != nil {
		params = *in.CheckinData
	}

	if err := client.Assets.Checkin(ctx, asset.ID, params); err != nil {
		return upstreamFailure("Asset", err)
	}
	return success(map[string]any{
		"action":   "checkin",
		"asset_id": asset.ID,
		"message":  "Asset checked in successfully",
		"asset": map[string]any{
			"id":        asset.ID,
			"asset_tag": asset.AssetTag,
		},
	})
}

func (h *OperationsHandler) audit(ctx context.Context, client *snipeit.Client, asset *snipeit.Asset, in assetOperationsInput) *mcp.CallToolResult {
	var params snipeit.AuditParams
	if in.AuditData != nil {
		params = *in.AuditData
	}

	if err := client.Assets.Audit(ctx, asset.AssetTag, params); err != nil {
		return upstreamFailure("Asset", err)
	}
	return success(map[string]any{
		"action":   "audit",
		"asset_id": asset.ID,
		"message":  "Asset audited successfully",
		"asset": map[string]any{
			"id":        asset.ID,
			"asset_tag": asset.AssetTag,
		},
	})
}

func (h *OperationsHandler) restore(ctx context.Context, client *snipeit.Client, asset *snipeit.Asset) *mcp.CallToolResult {
	if err := client.Assets.Restore(ctx, asset.ID); err != nil {
		return upstreamFailure("Asset", err)
	}
	return success(map[string]any{
		"action":   "restore",
		"asset_id": asset.ID,
		"message":  "Asset restored successfully",
		"asset": map[string]any{
			"id":        asset.ID,
			"asset_tag": asset.AssetTag,
		},
	})
}
