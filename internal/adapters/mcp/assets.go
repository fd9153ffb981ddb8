package mcpadapter

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/malekian/snipemcp/internal/snipeit"
)

// manageAssetsTool declares the manage_assets tool contract.
func manageAssetsTool() mcp.Tool {
	return mcp.NewTool("manage_assets",
		mcp.WithDescription("Manage Snipe-IT assets with CRUD operations. "+
			"create requires asset_data with at least status_id and model_id; "+
			"get retrieves a single asset by asset_id, asset_tag, or serial; "+
			"list supports pagination and filtering; "+
			"update and delete require asset_id."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("The action to perform on assets"),
			mcp.Enum("create", "get", "list", "update", "delete"),
		),
		mcp.WithNumber("asset_id", mcp.Description("Asset ID (required for get, update, delete)")),
		mcp.WithString("asset_tag", mcp.Description("Asset tag (alternative to asset_id for get)")),
		mcp.WithString("serial", mcp.Description("Serial number (alternative to asset_id for get)")),
		mcp.WithObject("asset_data",
			mcp.Description("Asset data (required for create, optional for update)"),
			mcp.Properties(map[string]any{
				"status_id":       propInteger("ID of the status label"),
				"model_id":        propInteger("ID of the asset model"),
				"asset_tag":       propString("Asset tag identifier"),
				"name":            propString("Asset name"),
				"serial":          propString("Serial number"),
				"purchase_date":   propString("Purchase date (YYYY-MM-DD)"),
				"purchase_cost":   propNumber("Purchase cost"),
				"order_number":    propString("Order number"),
				"notes":           propString("Additional notes"),
				"warranty_months": propInteger("Warranty period in months"),
				"location_id":     propInteger("Location ID"),
				"rtd_location_id": propInteger("Default location ID"),
				"supplier_id":     propInteger("Supplier ID"),
				"company_id":      propInteger("Company ID"),
				"requestable":     propBoolean("Whether asset is requestable"),
			}),
		),
		mcp.WithNumber("limit", mcp.Description("Number of results to return (for list action)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip (for list action)")),
		mcp.WithString("search", mcp.Description("Search query (for list action)")),
		mcp.WithString("sort", mcp.Description("Field to sort by (for list action)")),
		mcp.WithString("order",
			mcp.Description("Sort order (for list action)"),
			mcp.Enum("asc", "desc"),
		),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			ReadOnlyHint:    mcp.ToBoolPtr(false),
			DestructiveHint: mcp.ToBoolPtr(true),
			IdempotentHint:  mcp.ToBoolPtr(false),
		}),
	)
}

// AssetsHandler handles manage_assets invocations.
type AssetsHandler struct {
	deps      Dependencies
	listLimit int
}

// NewAssetsHandler creates a new assets handler.
func NewAssetsHandler(deps Dependencies, listLimit int) *AssetsHandler {
	return &AssetsHandler{
		deps:      deps,
		listLimit: listLimit,
	}
}

type manageAssetsInput struct {
	Action    string               `json:"action"`
	AssetID   *int                 `json:"asset_id"`
	AssetTag  string               `json:"asset_tag"`
	Serial    string               `json:"serial"`
	AssetData *snipeit.AssetParams `json:"asset_data"`
	Limit     *int                 `json:"limit"`
	Offset    *int                 `json:"offset"`
	Search    string               `json:"search"`
	Sort      string               `json:"sort"`
	Order     string               `json:"order"`
}

// HandleManageAssets dispatches the manage_assets actions.
func (h *AssetsHandler) HandleManageAssets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in manageAssetsInput
	if err := req.BindArguments(&in); err != nil {
		return failure("invalid arguments: %v", err), nil
	}

	client, err := h.deps.Inventory(ctx)
	if err != nil {
		return failure("%v", err), nil
	}

	switch in.Action {
	case "create":
		return h.create(ctx, client, in), nil
	case "get":
		return h.get(ctx, client, in), nil
	case "list":
		return h.list(ctx, client, in), nil
	case "update":
		return h.update(ctx, client, in), nil
	case "delete":
		return h.delete(ctx, client, in), nil
	default:
		return failure("unknown action: %s", in.Action), nil
	}
}

func (h *AssetsHandler) create(ctx context.Context, client *snipeit.Client, in manageAssetsInput) *mcp.CallToolResult {
	if in.AssetData == nil {
		return failure("asset_data is required for create action")
	}
	if in.AssetData.StatusID == nil || in.AssetData.ModelID == nil {
		return failure("status_id and model_id are required to create an asset")
	}

	asset, err := client.Assets.Create(ctx, *in.AssetData)
	if err != nil {
		return upstreamFailure("Asset", err)
	}
	return success(map[string]any{
		"action": "create",
		"asset": map[string]any{
			"id":        asset.ID,
			"asset_tag": asset.AssetTag,
			"name":      asset.Name,
			"serial":    asset.Serial,
		},
	})
}

func (h *AssetsHandler) get(ctx context.Context, client *snipeit.Client, in manageAssetsInput) *mcp.CallToolResult {
	var (
		asset *snipeit.Asset
		err   error
	)
	switch {
	case in.AssetTag != "":
		asset, err = client.Assets.GetByTag(ctx, in.AssetTag)
	case in.Serial != "":
		asset, err = client.Assets.GetBySerial(ctx, in.Serial)
	case in.AssetID != nil:
		asset, err = client.Assets.Get(ctx, *in.AssetID)
	default:
		return failure("one of asset_id, asset_tag, or serial is required for get action")
	}
	if err != nil {
		return upstreamFailure("Asset", err)
	}
	return success(map[string]any{
		"action": "get",
		"asset":  assetDetails(asset),
	})
}

func (h *AssetsHandler) list(ctx context.Context, client *snipeit.Client, in manageAssetsInput) *mcp.CallToolResult {
	opts := snipeit.ListOptions{
		Limit:  h.listLimit,
		Search: in.Search,
		Sort:   in.Sort,
		Order:  in.Order,
	}
	if in.Limit != nil {
		opts.Limit = *in.Limit
	}
	if in.Offset != nil {
		opts.Offset = *in.Offset
	}
	if opts.Order != "" && opts.Order != "asc" && opts.Order != "desc" {
		return failure("order must be asc or desc")
	}

	list, err := client.Assets.List(ctx, opts)
	if err != nil {
		return upstreamFailure("Asset", err)
	}

	rows := make([]map[string]any, 0, len(list.Rows))
	for _, a := range list.Rows {
		rows = append(rows, map[string]any{
			"id":        a.ID,
			"asset_tag": a.AssetTag,
			"name":      a.Name,
			"serial":    a.Serial,
			"model":     refName(a.Model),
		})
	}
	return success(map[string]any{
		"action": "list",
		"count":  len(rows),
		"assets": rows,
	})
}

func (h *AssetsHandler) update(ctx context.Context, client *snipeit.Client, in manageAssetsInput) *mcp.CallToolResult {
	if in.AssetID == nil {
		return failure("asset_id is required for update action")
	}
	if in.AssetData == nil {
		return failure("asset_data is required for update action")
	}

	asset, err := client.Assets.Update(ctx, *in.AssetID, *in.AssetData)
	if err != nil {
		return upstreamFailure("Asset", err)
	}
	return success(map[string]any{
		"action": "update",
		"asset": map[string]any{
			"id":        asset.ID,
			"asset_tag": asset.AssetTag,
			"name":      asset.Name,
		},
	})
}

func (h *AssetsHandler) delete(ctx context.Context, client *snipeit.Client, in manageAssetsInput) *mcp.CallToolResult {
	if in.AssetID == nil {
		return failure("asset_id is required for delete action")
	}

	if err := client.Assets.Delete(ctx, *in.AssetID); err != nil {
		return upstreamFailure("Asset", err)
	}
	return success(map[string]any{
		"action":   "delete",
		"asset_id": *in.AssetID,
		"message":  "Asset deleted successfully",
	})
}

// assetDetails renders the full asset summary returned by the get action.
func assetDetails(a *snipeit.Asset) map[string]any {
	return map[string]any{
		"id":            a.ID,
		"asset_tag":     a.AssetTag,
		"name":          a.Name,
		"serial":        a.Serial,
		"model":         refName(a.Model),
		"status_label":  refName(a.StatusLabel),
		"category":      refName(a.Category),
		"manufacturer":  refName(a.Manufacturer),
		"supplier":      refName(a.Supplier),
		"notes":         a.Notes,
		"location":      refName(a.Location),
		"assigned_to":   a.AssignedTo,
		"purchase_date": dateValue(a.PurchaseDate),
		"purchase_cost": a.PurchaseCost,
	}
}

func refName(r *snipeit.NamedRef) any {
	if r == nil {
		return nil
	}
	return r.Name
}

func dateValue(d *snipeit.DateValue) any {
	if d == nil {
		return nil
	}
	return d.Date
}
