package snipeit

import (
	"context"
	"net/http"
)

// MaintenanceService covers the /maintenances endpoints.
type MaintenanceService struct {
	client *Client
}

// Create records a maintenance event for an asset. The created record is
// returned as-is, since maintenance payloads vary across Snipe-IT versions.
func (s *MaintenanceService) Create(ctx context.Context, assetID int, params MaintenanceParams) (map[string]any, error) {
	body := map[string]any{
		"asset_id":          assetID,
		"asset_improvement": params.AssetImprovement,
		"supplier_id":       params.SupplierID,
		"title":             params.Title,
	}
	if params.Cost != nil {
		body["cost"] = *params.Cost
	}
	if params.StartDate != "" {
		body["start_date"] = params.StartDate
	}
	if params.CompletionDate != "" {
		body["completion_date"] = params.CompletionDate
	}
	if params.Notes != "" {
		body["notes"] = params.Notes
	}

	var created map[string]any
	u := s.client.endpoint("maintenances")
	if err := s.client.sendJSON(ctx, "maintenances.create", http.MethodPost, u, body, &created); err != nil {
		return nil, err
	}
	return created, nil
}
