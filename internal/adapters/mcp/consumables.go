package mcpadapter

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/malekian/snipemcp/internal/snipeit"
)

// manageConsumablesTool declares the manage_consumables tool contract.
func manageConsumablesTool() mcp.Tool {
	return mcp.NewTool("manage_consumables",
		mcp.WithDescription("Manage Snipe-IT consumables with CRUD operations. "+
			"create requires consumable_data with name, qty, and category_id; "+
			"get, update, and delete require consumable_id; "+
			"list supports pagination and filtering."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("The action to perform on consumables"),
			mcp.Enum("create", "get", "list", "update", "delete"),
		),
		mcp.WithNumber("consumable_id", mcp.Description("Consumable ID (required for get, update, delete)")),
		mcp.WithObject("consumable_data",
			mcp.Description("Consumable data (required for create, optional for update)"),
			mcp.Properties(map[string]any{
				"name":            propString("Consumable name"),
				"qty":             propInteger("Quantity"),
				"category_id":     propInteger("Category ID"),
				"company_id":      propInteger("Company ID"),
				"location_id":     propInteger("Location ID"),
				"manufacturer_id": propInteger("Manufacturer ID"),
				"model_number":    propString("Model number"),
				"item_no":         propString("Item number"),
				"order_number":    propString("Order number"),
				"purchase_date":   propString("Purchase date (YYYY-MM-DD)"),
				"purchase_cost":   propNumber("Purchase cost"),
				"min_amt":         propInteger("Minimum quantity threshold"),
				"notes":           propString("Additional notes"),
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

// ConsumablesHandler handles manage_consumables invocations.
type ConsumablesHandler struct {
	deps      Dependencies
	listLimit int
}

// NewConsumablesHandler creates a new consumables handler.
func NewConsumablesHandler(deps Dependencies, listLimit int) *ConsumablesHandler {
	return &ConsumablesHandler{
		deps:      deps,
		listLimit: listLimit,
	}
}

type manageConsumablesInput struct {
	Action         string                    `json:"action"`
	ConsumableID   *int                      `json:"consumable_id"`
	ConsumableData *snipeit.ConsumableParams `json:"consumable_data"`
	Limit          *int                      `json:"limit"`
	Offset         *int                      `json:"offset"`
	Search         string                    `json:"search"`
	Sort           string                    `json:"sort"`
	Order          string                    `json:"order"`
}

// HandleManageConsumables dispatches the manage_consumables actions.
func (h *ConsumablesHandler) HandleManageConsumables(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in manageConsumablesInput
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

func (h *ConsumablesHandler) create(ctx context.Context, client *snipeit.Client, in manageConsumablesInput) *mcp.CallToolResult {
	if in.ConsumableData == nil {
		return failure("consumable_data is required for create action")
	}
	d := in.ConsumableData
	if d.Name == nil || *d.Name == "" || d.Qty == nil || d.CategoryID == nil {
		return failure("name, qty, and category_id are required to create a consumable")
	}

	consumable, err := client.Consumables.Create(ctx, *d)
	if err != nil {
		return upstreamFailure("Consumable", err)
	}
	return success(map[string]any{
		"action": "create",
		"consumable": map[string]any{
			"id":   consumable.ID,
			"name": consumable.Name,
			"qty":  consumable.Qty,
		},
	})
}

func (h *ConsumablesHandler) get(ctx context.Context, client *snipeit.Client, in manageConsumablesInput) *mcp.CallToolResult {
	if in.ConsumableID == nil {
		return failure("consumable_id is required for get action")
	}

	c, err := client.Consumables.Get(ctx, *in.ConsumableID)
	if err != nil {
		return upstreamFailure("Consumable", err)
	}
	return success(map[string]any{
		"action": "get",
		"consumable": map[string]any{
			"id":            c.ID,
			"name":          c.Name,
			"qty":           c.Qty,
			"category":      refName(c.Category),
			"company":       refName(c.Company),
			"location":      refName(c.Location),
			"manufacturer":  refName(c.Manufacturer),
			"model_number":  c.ModelNumber,
			"item_no":       c.ItemNo,
			"order_number":  c.OrderNumber,
			"purchase_date": dateValue(c.PurchaseDate),
			"purchase_cost": c.PurchaseCost,
			"min_amt":       c.MinAmt,
			"remaining":     c.Remaining,
		},
	})
}

func (h *ConsumablesHandler) list(ctx context.Context, client *snipeit.Client, in manageConsumablesInput) *mcp.CallToolResult {
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

	list, err := client.Consumables.List(ctx, opts)
	if err != nil {
		return upstreamFailure("Consumable", err)
	}

	rows := make([]map[string]any, 0, len(list.Rows))
	for _, c := range list.Rows {
		rows = append(rows, map[string]any{
			"id":        c.ID,
			"name":      c.Name,
			"qty":       c.Qty,
			"remaining": c.Remaining,
		})
	}
	return success(map[string]any{
		"action":      "list",
		"count":       len(rows),
		"consumables": rows,
	})
}

func (h *ConsumablesHandler) update(ctx context.Context, client *snipeit.Client, in manageConsumablesInput) *mcp.CallToolResult {
	if in.ConsumableID == nil {
		return failure("consumable_id is required for update action")
	}
	if in.ConsumableData == nil {
		return failure("consumable_data is required for update action")
	}

	c, err := client.Consumables.Update(ctx, *in.ConsumableID, *in.ConsumableData)
	if err != nil {
		return upstreamFailure("Consumable", err)
	}
	return success(map[string]any{
		"action": "update",
		"consumable": map[string]any{
			"id":   c.ID,
			"name": c.Name,
			"qty":  c.Qty,
		},
	})
}

func (h *ConsumablesHandler) delete(ctx context.Context, client *snipeit.Client, in manageConsumablesInput) *mcp.CallToolResult {
	if in.ConsumableID == nil {
		return failure("consumable_id is required for delete action")
	}

	if err := client.Consumables.Delete(ctx, *in.ConsumableID); err != nil {
		return upstreamFailure("Consumable", err)
	}
	return success(map[string]any{
		"action":        "delete",
		"consumable_id": *in.ConsumableID,
		"message":       "Consumable deleted successfully",
	})
}
