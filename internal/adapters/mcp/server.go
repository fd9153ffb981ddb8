package mcpadapter

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/malekian/snipemcp/internal/snipeit"
)

// Dependencies required by tool handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Inventory returns the upstream client. It fails when credentials
	// are not configured; tools surface that as an error envelope.
	Inventory(ctx context.Context) (*snipeit.Client, error)
}

// Server wires MCP tools for the inventory API.
type Server struct {
	assetsHandler      *AssetsHandler
	operationsHandler  *OperationsHandler
	filesHandler       *FilesHandler
	labelsHandler      *LabelsHandler
	maintenanceHandler *MaintenanceHandler
	licensesHandler    *LicensesHandler
	consumablesHandler *ConsumablesHandler
}

// NewServer creates an API server with all handlers. labelSavePath is the
// default output path for asset_labels; listLimit the default page size.
func NewServer(deps Dependencies, labelSavePath string, listLimit int) *Server {
	return &Server{
		assetsHandler:      NewAssetsHandler(deps, listLimit),
		operationsHandler:  NewOperationsHandler(deps),
		filesHandler:       NewFilesHandler(deps),
		labelsHandler:      NewLabelsHandler(deps, labelSavePath),
		maintenanceHandler: NewMaintenanceHandler(deps),
		licensesHandler:    NewLicensesHandler(deps),
		consumablesHandler: NewConsumablesHandler(deps, listLimit),
	}
}

// Register attaches all tools to the MCP server.
func (s *Server) Register(srv *server.MCPServer) {
	srv.AddTool(manageAssetsTool(), withToolMetrics("manage_assets", s.assetsHandler.HandleManageAssets))
	srv.AddTool(assetOperationsTool(), withToolMetrics("asset_operations", s.operationsHandler.HandleAssetOperations))
	srv.AddTool(assetFilesTool(), withToolMetrics("asset_files", s.filesHandler.HandleAssetFiles))
	srv.AddTool(assetLabelsTool(), withToolMetrics("asset_labels", s.labelsHandler.HandleAssetLabels))
	srv.AddTool(assetMaintenanceTool(), withToolMetrics("asset_maintenance", s.maintenanceHandler.HandleAssetMaintenance))
	srv.AddTool(assetLicensesTool(), withToolMetrics("asset_licenses", s.licensesHandler.HandleAssetLicenses))
	srv.AddTool(manageConsumablesTool(), withToolMetrics("manage_consumables", s.consumablesHandler.HandleManageConsumables))
}
