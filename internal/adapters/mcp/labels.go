package mcpadapter

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
)

// assetLabelsTool declares the asset_labels tool contract.
func assetLabelsTool() mcp.Tool {
	return mcp.NewTool("asset_labels",
		mcp.WithDescription("Generate printable labels for assets. "+
			"Provide either asset_ids or asset_tags; the label PDF is written "+
			"to save_path."),
		mcp.WithArray("asset_ids",
			mcp.Description("List of asset IDs to generate labels for"),
			mcp.Items(map[string]any{"type": "integer"}),
		),
		mcp.WithArray("asset_tags",
			mcp.Description("List of asset tags to generate labels for"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("save_path", mcp.Description("Path where the PDF labels file should be saved")),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			ReadOnlyHint:    mcp.ToBoolPtr(false),
			DestructiveHint: mcp.ToBoolPtr(false),
			IdempotentHint:  mcp.ToBoolPtr(false),
		}),
	)
}

// LabelsHandler handles asset_labels invocations.
type LabelsHandler struct {
	deps            Dependencies
	defaultSavePath string
}

// NewLabelsHandler creates a new labels handler.
func NewLabelsHandler(deps Dependencies, defaultSavePath string) *LabelsHandler {
	return &LabelsHandler{
		deps:            deps,
		defaultSavePath: defaultSavePath,
	}
}

type assetLabelsInput struct {
	AssetIDs  []int    `json:"asset_ids"`
	AssetTags []string `json:"asset_tags"`
	SavePath  string   `json:"save_path"`
}

// HandleAssetLabels generates a label PDF for the requested assets. When
// IDs are given each asset is resolved first, so a missing ID fails the
// batch before anything is written.
func (h *LabelsHandler) HandleAssetLabels(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in assetLabelsInput
	if err := req.BindArguments(&in); err != nil {
		return failure("invalid arguments: %v", err), nil
	}
	if len(in.AssetIDs) == 0 && len(in.AssetTags) == 0 {
		return failure("either asset_ids or asset_tags must be provided"), nil
	}

	client, err := h.deps.Inventory(ctx)
	if err != nil {
		return failure("%v", err), nil
	}

	tags := in.AssetTags
	if len(in.AssetIDs) > 0 {
		tags = make([]string, 0, len(in.AssetIDs))
		for _, id := range in.AssetIDs {
			asset, err := client.Assets.Get(ctx, id)
			if err != nil {
				return upstreamFailure("Asset", err), nil
			}
			tags = append(tags, asset.AssetTag)
		}
	}

	pdf, err := client.Assets.Labels(ctx, tags)
	if err != nil {
		return upstreamFailure("Asset", err), nil
	}

	savePath := in.SavePath
	if savePath == "" {
		savePath = h.defaultSavePath
	}
	if err := os.WriteFile(savePath, pdf, filePerm); err != nil {
		return failure("failed to save labels to %s: %v", savePath, err), nil
	}

	return success(map[string]any{
		"action":   "generate_labels",
		"saved_to": savePath,
		"message":  "Labels generated and saved to " + savePath,
	}), nil
}
