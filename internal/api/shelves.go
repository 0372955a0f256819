package api

import (
	"context"
	"fmt"

	"sklad-cli/internal/model"
)

// ShelfCreate is the admin create-shelf payload. Rows and columns are
// capped at 20 by the server.
type ShelfCreate struct {
	LocationID int    `json:"location_id"`
	Name       string `json:"nazev"`
	Rows       int    `json:"radky"`
	Cols       int    `json:"sloupce"`
	Type       string `json:"typ,omitempty"`
}

// ShelfUpdate changes shelf attributes. Shrinking past occupied
// positions is rejected server-side.
type ShelfUpdate struct {
	Name *string `json:"nazev,omitempty"`
	Rows *int    `json:"radky,omitempty"`
	Cols *int    `json:"sloupce,omitempty"`
	Type *string `json:"typ,omitempty"`
}

// ShelfPositions is GET /api/shelves/{id}/positions: the shelf with
// every position it has.
type ShelfPositions struct {
	Shelf     model.Shelf      `json:"regal"`
	Positions []model.Position `json:"pozice"`
}

// Locations returns all locations with their nested shelves.
func (c *Client) Locations(ctx context.Context) ([]model.Location, error) {
	var out []model.Location
	err := c.get(ctx, "/api/locations", &out)
	return out, err
}

// Shelves lists every shelf across locations.
func (c *Client) Shelves(ctx context.Context) ([]model.Shelf, error) {
	var out []model.Shelf
	err := c.get(ctx, "/api/shelves/", &out)
	return out, err
}

// Positions returns the shelf and all of its positions.
func (c *Client) Positions(ctx context.Context, shelfID int) (ShelfPositions, error) {
	var out ShelfPositions
	err := c.get(ctx, fmt.Sprintf("/api/shelves/%d/positions", shelfID), &out)
	return out, err
}

// Position fetches a single position with its box, if occupied.
func (c *Client) Position(ctx context.Context, id int) (model.Position, error) {
	var out model.Position
	err := c.get(ctx, fmt.Sprintf("/api/positions/%d", id), &out)
	return out, err
}

// CreateShelf adds a shelf; the server generates its positions.
func (c *Client) CreateShelf(ctx context.Context, in ShelfCreate) (model.Shelf, error) {
	var out model.Shelf
	err := c.post(ctx, "/api/shelves/", in, &out)
	return out, err
}

// UpdateShelf changes a shelf.
func (c *Client) UpdateShelf(ctx context.Context, id int, in ShelfUpdate) (model.Shelf, error) {
	var out model.Shelf
	err := c.put(ctx, fmt.Sprintf("/api/shelves/%d", id), in, &out)
	return out, err
}

// DeleteShelf removes an empty shelf. Occupied shelves come back as a
// conflict *Error with the server's explanation.
func (c *Client) DeleteShelf(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/shelves/%d", id), nil, nil)
}
