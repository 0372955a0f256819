package api

import (
	"context"
	"fmt"

	"sklad-cli/internal/model"
)

// BoxCreate is the create-box payload. The number and position come
// from the form's pickers; the server validates both.
type BoxCreate struct {
	Number      int    `json:"cislo_gb"`
	Person      string `json:"zodpovedna_osoba"`
	PositionID  int    `json:"position_id"`
	FillPercent int    `json:"naplnenost_procenta"`
	Note        string `json:"poznamka,omitempty"`
}

// BoxUpdate carries only the editable fields. The box number is
// immutable after creation and deliberately absent.
type BoxUpdate struct {
	Person      string           `json:"zodpovedna_osoba,omitempty"`
	PositionID  int              `json:"position_id,omitempty"`
	FillPercent *int             `json:"naplnenost_procenta,omitempty"`
	Status      *model.BoxStatus `json:"stav,omitempty"`
	Note        *string          `json:"poznamka,omitempty"`
}

// BoxItems is the detail payload: the box plus its items.
type BoxItems struct {
	Box   model.Box    `json:"gitterbox"`
	Items []model.Item `json:"polozky"`
}

// Boxes lists every active Gitterbox.
func (c *Client) Boxes(ctx context.Context) ([]model.Box, error) {
	var out []model.Box
	err := c.get(ctx, "/api/gitterboxes/", &out)
	return out, err
}

// Box fetches one box by its internal id.
func (c *Client) Box(ctx context.Context, id int) (model.Box, error) {
	var out model.Box
	err := c.get(ctx, fmt.Sprintf("/api/gitterboxes/%d", id), &out)
	return out, err
}

// BoxByNumber fetches one box by its printed GB number.
func (c *Client) BoxByNumber(ctx context.Context, number int) (model.Box, error) {
	var out model.Box
	err := c.get(ctx, fmt.Sprintf("/api/gitterboxes/by-number/%d", number), &out)
	return out, err
}

// AvailableNumbers returns the free box-number pool for the create form.
func (c *Client) AvailableNumbers(ctx context.Context) (model.AvailableNumbers, error) {
	var out model.AvailableNumbers
	err := c.get(ctx, "/api/gitterboxes/available-numbers", &out)
	return out, err
}

// BoxWithItems fetches a box together with its item list.
func (c *Client) BoxWithItems(ctx context.Context, id int) (BoxItems, error) {
	var out BoxItems
	err := c.get(ctx, fmt.Sprintf("/api/gitterboxes/%d/items", id), &out)
	return out, err
}

// CreateBox registers a new Gitterbox and returns it as stored.
func (c *Client) CreateBox(ctx context.Context, in BoxCreate) (model.Box, error) {
	var out model.Box
	err := c.post(ctx, "/api/gitterboxes/", in, &out)
	return out, err
}

// UpdateBox changes an existing box. Unset fields stay as they are.
func (c *Client) UpdateBox(ctx context.Context, id int, in BoxUpdate) (model.Box, error) {
	var out model.Box
	err := c.put(ctx, fmt.Sprintf("/api/gitterboxes/%d", id), in, &out)
	return out, err
}

// DeleteBox removes a box without archiving. Archival deletes go
// through ArchiveBox instead.
func (c *Client) DeleteBox(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/gitterboxes/%d", id), nil, nil)
}
