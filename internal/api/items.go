package api

import (
	"context"
	"fmt"

	"sklad-cli/internal/model"
)

// ItemCreate is the add-item payload.
type ItemCreate struct {
	BoxID       int    `json:"gitterbox_id"`
	TMANumber   string `json:"tma_cislo,omitempty"`
	Project     string `json:"projekt,omitempty"`
	PartName    string `json:"nazev_dilu"`
	Quantity    int    `json:"pocet_kusu"`
	Unit        string `json:"jednotka,omitempty"`
	TrackExpiry bool   `json:"sledovat_expiraci"`
	ExpiryDate  string `json:"expiracni_datum,omitempty"`
	Note        string `json:"poznamka,omitempty"`
}

// ItemUpdate carries only changed fields; pointers distinguish "clear"
// from "leave alone".
type ItemUpdate struct {
	TMANumber   *string `json:"tma_cislo,omitempty"`
	Project     *string `json:"projekt,omitempty"`
	PartName    *string `json:"nazev_dilu,omitempty"`
	Quantity    *int    `json:"pocet_kusu,omitempty"`
	Unit        *string `json:"jednotka,omitempty"`
	TrackExpiry *bool   `json:"sledovat_expiraci,omitempty"`
	ExpiryDate  *string `json:"expiracni_datum,omitempty"`
	Note        *string `json:"poznamka,omitempty"`
}

// CreateItem adds an item to a box.
func (c *Client) CreateItem(ctx context.Context, in ItemCreate) (model.Item, error) {
	var out model.Item
	err := c.post(ctx, "/api/items/", in, &out)
	return out, err
}

// UpdateItem changes an existing item.
func (c *Client) UpdateItem(ctx context.Context, id int, in ItemUpdate) (model.Item, error) {
	var out model.Item
	err := c.put(ctx, fmt.Sprintf("/api/items/%d", id), in, &out)
	return out, err
}

// ExpiringSoon lists items whose expiry falls within daysAhead days.
func (c *Client) ExpiringSoon(ctx context.Context, daysAhead int) ([]model.Item, error) {
	var out []model.Item
	err := c.get(ctx, fmt.Sprintf("/api/items/expiring-soon?days_ahead=%d", daysAhead), &out)
	return out, err
}
