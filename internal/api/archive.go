package api

import (
	"context"
	"fmt"

	"sklad-cli/internal/model"
)

// ArchiveRequest is the unshelving payload: a reason code plus an
// optional free-text note.
type ArchiveRequest struct {
	Reason model.ArchiveReason `json:"duvod"`
	Note   string              `json:"poznamka"`
}

// ArchiveReasons returns the reason-code → label map for the archive
// form's picker.
func (c *Client) ArchiveReasons(ctx context.Context) (map[string]string, error) {
	var out map[string]string
	err := c.get(ctx, "/api/archive/duvody", &out)
	return out, err
}

// ArchiveItem unshelves a single item. The box stays even when this
// was its last item.
func (c *Client) ArchiveItem(ctx context.Context, itemID int, req ArchiveRequest) error {
	return c.delete(ctx, fmt.Sprintf("/api/archive/items/%d", itemID), req, nil)
}

// ArchiveBox unshelves a whole box including its items and frees its
// position.
func (c *Client) ArchiveBox(ctx context.Context, boxID int, req ArchiveRequest) error {
	return c.delete(ctx, fmt.Sprintf("/api/archive/gitterboxes/%d", boxID), req, nil)
}
