package snipeit

import (
	"context"
	"net/http"
	"strconv"
)

// ConsumableService covers the /consumables endpoints.
type ConsumableService struct {
	client *Client
}

// Get retrieves a consumable by ID.
func (s *ConsumableService) Get(ctx context.Context, id int) (*Consumable, error) {
	var c Consumable
	u := s.client.endpoint("consumables", strconv.Itoa(id))
	if err := s.client.getJSON(ctx, "consumables.get", u, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List retrieves a page of consumables.
func (s *ConsumableService) List(ctx context.Context, opts ListOptions) (*ConsumableList, error) {
	u := s.client.endpoint("consumables")
	u.RawQuery = listQuery(opts).Encode()
	var list ConsumableList
	if err := s.client.getJSON(ctx, "consumables.list", u, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Create creates a consumable and returns the created record.
func (s *ConsumableService) Create(ctx context.Context, params ConsumableParams) (*Consumable, error) {
	var c Consumable
	u := s.client.endpoint("consumables")
	if err := s.client.sendJSON(ctx, "consumables.create", http.MethodPost, u, params, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update patches an existing consumable and returns the updated record.
func (s *ConsumableService) Update(ctx context.Context, id int, params ConsumableParams) (*Consumable, error) {
	var c Consumable
	u := s.client.endpoint("consumables", strconv.Itoa(id))
	if err := s.client.sendJSON(ctx, "consumables.update", http.MethodPatch, u, params, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a consumable.
func (s *ConsumableService) Delete(ctx context.Context, id int) error {
	u := s.client.endpoint("consumables", strconv.Itoa(id))
	return s.client.sendJSON(ctx, "consumables.delete", http.MethodDelete, u, nil, nil)
}
