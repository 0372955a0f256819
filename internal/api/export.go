package api

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// ExportFormat selects the server-generated document type.
type ExportFormat string

const (
	ExportPDF   ExportFormat = "pdf"
	ExportExcel ExportFormat = "excel"
)

// ExportFilter narrows the exported search results. Zero values are
// omitted from the query string.
type ExportFilter struct {
	Query      string
	LocationID int
	Project    string
	Person     string
	Status     string
}

func (f ExportFilter) values() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("query", f.Query)
	}
	if f.LocationID > 0 {
		v.Set("location_id", strconv.Itoa(f.LocationID))
	}
	if f.Project != "" {
		v.Set("project", f.Project)
	}
	if f.Person != "" {
		v.Set("person", f.Person)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	return v
}

// ExportSearch downloads a server-generated PDF or Excel of the
// filtered search results into path. The document itself is built
// server-side; the client only saves the bytes.
func (c *Client) ExportSearch(ctx context.Context, format ExportFormat, f ExportFilter, path string) error {
	endpoint := fmt.Sprintf("/api/export/search/%s", format)
	if q := f.values().Encode(); q != "" {
		endpoint += "?" + q
	}

	resp, err := c.http.R().
		SetContext(ctx).
		Execute(resty.MethodGet, endpoint)
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}
	if resp.IsError() {
		return &Error{
			Method:     resty.MethodGet,
			Path:       endpoint,
			StatusCode: resp.StatusCode(),
			Message:    extractMessage(resp.Body()),
			Body:       string(resp.Body()),
		}
	}

	if err := os.WriteFile(path, resp.Body(), 0o644); err != nil {
		return fmt.Errorf("write export to %s: %w", path, err)
	}
	return nil
}
