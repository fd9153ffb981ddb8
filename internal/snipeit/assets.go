package snipeit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// AssetService covers the /hardware endpoints.
type AssetService struct {
	client *Client
}

// Get retrieves an asset by numeric ID.
func (s *AssetService) Get(ctx context.Context, id int) (*Asset, error) {
	var a Asset
	u := s.client.endpoint("hardware", strconv.Itoa(id))
	if err := s.client.getJSON(ctx, "assets.get", u, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByTag retrieves an asset by its asset tag.
func (s *AssetService) GetByTag(ctx context.Context, tag string) (*Asset, error) {
	var a Asset
	u := s.client.endpoint("hardware", "bytag", tag)
	if err := s.client.getJSON(ctx, "assets.get_by_tag", u, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetBySerial retrieves an asset by serial number.
func (s *AssetService) GetBySerial(ctx context.Context, serial string) (*Asset, error) {
	var a Asset
	u := s.client.endpoint("hardware", "byserial", serial)
	if err := s.client.getJSON(ctx, "assets.get_by_serial", u, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// List retrieves a page of assets.
func (s *AssetService) List(ctx context.Context, opts ListOptions) (*AssetList, error) {
	u := s.client.endpoint("hardware")
	u.RawQuery = listQuery(opts).Encode()
	var list AssetList
	if err := s.client.getJSON(ctx, "assets.list", u, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Create creates an asset and returns the created record.
func (s *AssetService) Create(ctx context.Context, params AssetParams) (*Asset, error) {
	var a Asset
	u := s.client.endpoint("hardware")
	if err := s.client.sendJSON(ctx, "assets.create", http.MethodPost, u, params, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update patches an existing asset and returns the updated record.
func (s *AssetService) Update(ctx context.Context, id int, params AssetParams) (*Asset, error) {
	var a Asset
	u := s.client.endpoint("hardware", strconv.Itoa(id))
	if err := s.client.sendJSON(ctx, "assets.update", http.MethodPatch, u, params, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes an asset.
func (s *AssetService) Delete(ctx context.Context, id int) error {
	u := s.client.endpoint("hardware", strconv.Itoa(id))
	return s.client.sendJSON(ctx, "assets.delete", http.MethodDelete, u, nil, nil)
}

// Checkout assigns an asset to a user, location, or another asset. The
// API keys the assignee by target type, so the params are remapped here.
func (s *AssetService) Checkout(ctx context.Context, id int, params CheckoutParams) error {
	body := map[string]any{
		"checkout_to_type": params.CheckoutToType,
	}
	switch params.CheckoutToType {
	case CheckoutToUser:
		body["assigned_user"] = params.AssignedToID
	case CheckoutToAsset:
		body["assigned_asset"] = params.AssignedToID
	case CheckoutToLocation:
		body["assigned_location"] = params.AssignedToID
	default:
		return fmt.Errorf("%w: unknown checkout_to_type %q", ErrValidation, params.CheckoutToType)
	}
	if params.ExpectedCheckin != "" {
		body["expected_checkin"] = params.ExpectedCheckin
	}
	if params.CheckoutAt != "" {
		body["checkout_at"] = params.CheckoutAt
	}
	if params.Note != "" {
		body["note"] = params.Note
	}
	if params.Name != "" {
		body["name"] = params.Name
	}

	u := s.client.endpoint("hardware", strconv.Itoa(id), "checkout")
	return s.client.sendJSON(ctx, "assets.checkout", http.MethodPost, u, body, nil)
}

// Checkin returns an asset to inventory.
func (s *AssetService) Checkin(ctx context.Context, id int, params CheckinParams) error {
	u := s.client.endpoint("hardware", strconv.Itoa(id), "checkin")
	return s.client.sendJSON(ctx, "assets.checkin", http.MethodPost, u, params, nil)
}

// Audit marks an asset as audited. The audit endpoint is keyed by asset
// tag rather than ID.
func (s *AssetService) Audit(ctx context.Context, tag string, params AuditParams) error {
	body := map[string]any{
		"asset_tag": tag,
	}
	if params.LocationID != 0 {
		body["location_id"] = params.LocationID
	}
	if params.Note != "" {
		body["note"] = params.Note
	}
	if params.NextAuditDate != "" {
		body["next_audit_date"] = params.NextAuditDate
	}

	u := s.client.endpoint("hardware", "audit")
	return s.client.sendJSON(ctx, "assets.audit", http.MethodPost, u, body, nil)
}

// Restore restores a soft-deleted asset.
func (s *AssetService) Restore(ctx context.Context, id int) error {
	u := s.client.endpoint("hardware", strconv.Itoa(id), "restore")
	return s.client.sendJSON(ctx, "assets.restore", http.MethodPost, u, nil, nil)
}

// Licenses lists the licenses checked out to an asset.
func (s *AssetService) Licenses(ctx context.Context, id int) (*LicenseList, error) {
	u := s.client.endpoint("hardware", strconv.Itoa(id), "licenses")
	var list LicenseList
	if err := s.client.getJSON(ctx, "assets.licenses", u, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Labels fetches the printable label PDF for the given asset tags.
func (s *AssetService) Labels(ctx context.Context, tags []string) ([]byte, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: no asset tags", ErrValidation)
	}
	u := s.client.endpoint("hardware", "labels")
	body := map[string]any{"asset_tags": tags}
	encoded, err := jsonBody(body)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, "assets.labels", http.MethodPost, u, "application/json", encoded)
}
