package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sklad-cli/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestBoxesDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/gitterboxes/", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"status": "success",
			"data": []map[string]any{
				{"id": 1, "cislo_gb": 5, "zodpovedna_osoba": "Novák", "naplnenost_procenta": 90},
				{"id": 2, "cislo_gb": 9, "zodpovedna_osoba": "Svoboda", "ma_kriticke_expirace": true},
			},
			"message": "ok",
		})
	}))

	boxes, err := c.Boxes(context.Background())
	require.NoError(t, err)
	require.Len(t, boxes, 2)
	assert.Equal(t, 5, boxes[0].Number)
	assert.Equal(t, "Novák", boxes[0].Person)
	assert.True(t, boxes[1].Critical)
}

func TestBoxDecodesBarePayload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/gitterboxes/7", r.URL.Path)
		writeJSON(t, w, map[string]any{"id": 7, "cislo_gb": 42, "zodpovedna_osoba": "Dvořák"})
	}))

	box, err := c.Box(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 42, box.Number)
}

func TestServerErrorBecomesAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		writeJSON(t, w, map[string]any{"detail": "Regál obsahuje obsazené pozice"})
	}))

	err := c.DeleteShelf(context.Background(), 3)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Regál obsahuje obsazené pozice", apiErr.Message)
	assert.Equal(t, "DELETE", apiErr.Method)
	assert.Contains(t, apiErr.Error(), "409")
}

func TestCreateBoxSendsPayload(t *testing.T) {
	var got BoxCreate
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, map[string]any{
			"status": "success",
			"data":   map[string]any{"id": 11, "cislo_gb": got.Number, "zodpovedna_osoba": got.Person},
		})
	}))

	box, err := c.CreateBox(context.Background(), BoxCreate{
		Number:      12,
		Person:      "Novák",
		PositionID:  34,
		FillPercent: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, got.Number)
	assert.Equal(t, 34, got.PositionID)
	assert.Equal(t, 12, box.Number)
}

func TestUpdateBoxOmitsNumber(t *testing.T) {
	var raw map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		writeJSON(t, w, map[string]any{"id": 11, "cislo_gb": 12})
	}))

	fill := 75
	_, err := c.UpdateBox(context.Background(), 11, BoxUpdate{Person: "Svoboda", FillPercent: &fill})
	require.NoError(t, err)
	assert.NotContains(t, raw, "cislo_gb")
	assert.Equal(t, "Svoboda", raw["zodpovedna_osoba"])
	assert.Equal(t, float64(75), raw["naplnenost_procenta"])
}

func TestPositionsUnwrapsShelfAndList(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shelves/4/positions", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"status": "success",
			"data": map[string]any{
				"regal": map[string]any{"id": 4, "nazev": "A1", "rozmer": "3x4"},
				"pozice": []map[string]any{
					{"id": 1, "nazev": "1-1", "radek": 1, "sloupec": 1,
						"gitterbox": map[string]any{"id": 9, "cislo_gb": 5}},
					{"id": 2, "nazev": "1-2", "radek": 1, "sloupec": 2},
				},
			},
		})
	}))

	sp, err := c.Positions(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "A1", sp.Shelf.Name)
	rows, cols := sp.Shelf.Size()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	require.Len(t, sp.Positions, 2)
	assert.True(t, sp.Positions[0].Occupied())
	assert.False(t, sp.Positions[1].Occupied())
}

func TestArchiveItemSendsReason(t *testing.T) {
	var got ArchiveRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/archive/items/8", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, map[string]any{"status": "success", "message": "vyskladněno"})
	}))

	err := c.ArchiveItem(context.Background(), 8, ArchiveRequest{
		Reason: model.ReasonExpired,
		Note:   "prošlá šarže",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReasonExpired, got.Reason)
	assert.Equal(t, "prošlá šarže", got.Note)
}

func TestAvailableNumbers(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"status": "success",
			"data":   map[string]any{"volna_cisla": []int{1, 3, 8}, "celkem_volnych": 3, "max_cislo": 54},
		})
	}))

	nums, err := c.AvailableNumbers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 8}, nums.Free)
	assert.True(t, nums.Contains(3))
	assert.False(t, nums.Contains(2))
}

func TestExportSearchWritesFile(t *testing.T) {
	body := []byte("%PDF-1.4 fake")
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/export/search/pdf", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(body)
	}))

	path := filepath.Join(t.TempDir(), "out.pdf")
	err := c.ExportSearch(context.Background(), ExportPDF, ExportFilter{Person: "Novák", LocationID: 2}, path)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, written)
	assert.Contains(t, gotQuery, "location_id=2")
	assert.Contains(t, gotQuery, "person=Nov")
}

func TestTransportErrorWraps(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond, nil)
	_, err := c.Statistics(context.Background())
	require.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "transport failures are not server errors")
}

func TestStatisticsDecodesBackendPayload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/statistics", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"status": "success",
			"data": map[string]any{
				"lokace_celkem":       2,
				"regaly_celkem":       5,
				"pozice_celkem":       54,
				"pozice_volne":        12,
				"pozice_obsazene":     42,
				"gitterboxes_aktivni": 42,
				"obsazenost_procenta": 77.8,
			},
			"message": "Statistiky skladu úspěšně načteny",
		})
	}))

	stats, err := c.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 54, stats.TotalPositions)
	assert.Equal(t, 12, stats.FreePositions)
	assert.Equal(t, 42, stats.OccupiedPositions)
	assert.Equal(t, 42, stats.ActiveBoxes)
	assert.InDelta(t, 77.8, stats.OccupancyPercent, 0.001)
}

func TestStorageConfigUnwrapsSummary(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/config/storage", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"status": "success",
			"data": map[string]any{
				"summary": map[string]any{
					"celkem_lokaci": 2,
					"celkem_regalu": 5,
					"celkem_pozic":  54,
					"max_cislo_gb":  54,
				},
				"config": map[string]any{"locations": []any{}},
			},
		})
	}))

	cfg, err := c.StorageConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 54, cfg.Summary.MaxBoxNumber)
	assert.Equal(t, 2, cfg.Summary.TotalLocations)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		writeJSON(t, w, map[string]any{"status": "healthy"})
	}))
	require.NoError(t, c.Health(context.Background()))
}

func TestArchiveReasons(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"status": "success",
			"data": map[string]string{
				"expirace": "Expirace",
				"rozbito":  "Rozbito",
				"chyba":    "Chybné naskladnění",
				"jine":     "Jiné",
			},
		})
	}))

	reasons, err := c.ArchiveReasons(context.Background())
	require.NoError(t, err)
	assert.Len(t, reasons, 4)
	assert.Equal(t, "Rozbito", reasons["rozbito"])
}
