package mcpadapter

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
)

// filePerm is the mode for files written by the download action.
const filePerm = 0o644

// assetFilesTool declares the asset_files tool contract.
func assetFilesTool() mcp.Tool {
	return mcp.NewTool("asset_files",
		mcp.WithDescription("Manage file attachments for assets: "+
			"upload one or more local files, list attached files, "+
			"download a file to a local path, or delete a file."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("The file operation to perform"),
			mcp.Enum("upload", "list", "download", "delete"),
		),
		mcp.WithNumber("asset_id", mcp.Required(), mcp.Description("Asset ID")),
		mcp.WithArray("file_paths",
			mcp.Description("List of file paths to upload (for upload action)"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("notes", mcp.Description("Notes for uploaded files (for upload action)")),
		mcp.WithNumber("file_id", mcp.Description("File ID (required for download and delete actions)")),
		mcp.WithString("save_path", mcp.Description("Path to save downloaded file (for download action)")),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			ReadOnlyHint:    mcp.ToBoolPtr(false),
			DestructiveHint: mcp.ToBoolPtr(true),
			IdempotentHint:  mcp.ToBoolPtr(false),
		}),
	)
}

// FilesHandler handles asset_files invocations.
type FilesHandler struct {
	deps Dependencies
}

// NewFilesHandler creates a new files handler.
func NewFilesHandler(deps Dependencies) *FilesHandler {
	return &FilesHandler{deps: deps}
}

type assetFilesInput struct {
	Action    string   `json:"action"`
	AssetID   int      `json:"asset_id"`
	FilePaths []string `json:"file_paths"`
	Notes     string   `json:"notes"`
	FileID    *int     `json:"file_id"`
	SavePath  string   `json:"save_path"`
}

// HandleAssetFiles dispatches upload, list, download, and delete.
func (h *FilesHandler) HandleAssetFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in assetFilesInput
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

	switch in.Action {
	case "upload":
		if len(in.FilePaths) == 0 {
			return failure("file_paths is required for upload action"), nil
		}
		if err := client.Assets.UploadFiles(ctx, in.AssetID, in.FilePaths, in.Notes); err != nil {
			return upstreamFailure("Asset or file", err), nil
		}
		return success(map[string]any{
			"action":   "upload",
			"asset_id": in.AssetID,
			"message":  fmt.Sprintf("Uploaded %d file(s) successfully", len(in.FilePaths)),
		}), nil

	case "list":
		list, err := client.Assets.ListFiles(ctx, in.AssetID)
		if err != nil {
			return upstreamFailure("Asset or file", err), nil
		}
		rows := make([]map[string]any, 0, len(list.Rows))
		for _, f := range list.Rows {
			rows = append(rows, map[string]any{
				"id":       f.ID,
				"filename": f.Filename,
				"filesize": f.Filesize,
				"note":     f.Note,
			})
		}
		return success(map[string]any{
			"action":   "list",
			"asset_id": in.AssetID,
			"files":    rows,
		}), nil

	case "download":
		if in.FileID == nil {
			return failure("file_id is required for download action"), nil
		}
		if in.SavePath == "" {
			return failure("save_path is required for download action"), nil
		}
		data, err := client.Assets.DownloadFile(ctx, in.AssetID, *in.FileID)
		if err != nil {
			return upstreamFailure("Asset or file", err), nil
		}
		if err := os.WriteFile(in.SavePath, data, filePerm); err != nil {
			return failure("failed to save file to %s: %v", in.SavePath, err), nil
		}
		return success(map[string]any{
			"action":   "download",
			"asset_id": in.AssetID,
			"file_id":  *in.FileID,
			"saved_to": in.SavePath,
			"message":  "File downloaded to " + in.SavePath,
		}), nil

	case "delete":
		if in.FileID == nil {
			return failure("file_id is required for delete action"), nil
		}
		if err := client.Assets.DeleteFile(ctx, in.AssetID, *in.FileID); err != nil {
			return upstreamFailure("Asset or file", err), nil
		}
		return success(map[string]any{
			"action":   "delete",
			"asset_id": in.AssetID,
			"file_id":  *in.FileID,
			"message":  "File deleted successfully",
		}), nil

	default:
		return failure("unknown action: %s", in.Action), nil
	}
}
