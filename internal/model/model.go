package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BoxStatus is the backend's lifecycle state of a Gitterbox.
type BoxStatus string

const (
	BoxActive BoxStatus = "aktivni"
	BoxFull   BoxStatus = "plny"
)

// StatusCritical is not a stored state: the search UI maps it to the
// critical-expiry flag instead of the stav field.
const StatusCritical = "kriticka"

// ArchiveReason is a reason code for unshelving (vyskladnění).
type ArchiveReason string

const (
	ReasonExpired ArchiveReason = "expirace"
	ReasonBroken  ArchiveReason = "rozbito"
	ReasonMistake ArchiveReason = "chyba"
	ReasonOther   ArchiveReason = "jine"
)

func KnownArchiveReason(r string) bool {
	switch ArchiveReason(r) {
	case ReasonExpired, ReasonBroken, ReasonMistake, ReasonOther:
		return true
	}
	return false
}

type Location struct {
	ID      int     `json:"id"`
	Name    string  `json:"nazev"`
	Shelves []Shelf `json:"regaly,omitempty"`
}

type ShelfStatistics struct {
	TotalPositions      int     `json:"total_positions"`
	OccupiedPositions   int     `json:"occupied_positions"`
	OccupancyPercentage float64 `json:"occupancy_percentage"`
}

type Shelf struct {
	ID         int    `json:"id"`
	LocationID int    `json:"location_id,omitempty"`
	Name       string `json:"nazev"`
	// Dimensions is the compact "RxC" form; some endpoints send only this,
	// others also send Rows/Cols.
	Dimensions string           `json:"rozmer,omitempty"`
	Rows       int              `json:"radky,omitempty"`
	Cols       int              `json:"sloupce,omitempty"`
	Type       string           `json:"typ,omitempty"`
	Statistics *ShelfStatistics `json:"statistics,omitempty"`
}

// Size returns the shelf's rows and columns, parsing the "RxC" string
// when the explicit fields are absent. Unparseable dimensions yield 0,0
// so callers render an empty grid instead of failing.
func (s Shelf) Size() (rows, cols int) {
	if s.Rows > 0 && s.Cols > 0 {
		return s.Rows, s.Cols
	}
	return ParseDimensions(s.Dimensions)
}

// ParseDimensions parses a compact "3x9" shelf size. Both "x" and "X"
// separators appear in backend data.
func ParseDimensions(dim string) (rows, cols int) {
	dim = strings.TrimSpace(dim)
	if dim == "" {
		return 0, 0
	}
	sep := strings.IndexAny(dim, "xX")
	if sep <= 0 || sep == len(dim)-1 {
		return 0, 0
	}
	r, err := strconv.Atoi(strings.TrimSpace(dim[:sep]))
	if err != nil || r <= 0 {
		return 0, 0
	}
	c, err := strconv.Atoi(strings.TrimSpace(dim[sep+1:]))
	if err != nil || c <= 0 {
		return 0, 0
	}
	return r, c
}

type Position struct {
	ID     int    `json:"id"`
	Name   string `json:"nazev"`
	Row    int    `json:"radek"`
	Col    int    `json:"sloupec"`
	Status string `json:"status,omitempty"`
	Shelf  *Shelf `json:"shelf,omitempty"`
	Box    *Box   `json:"gitterbox,omitempty"`
}

func (p Position) Occupied() bool { return p.Box != nil }

// Box is a Gitterbox as the backend serves it. List endpoints flatten
// the placement into Location/ShelfName/Row/Col; detail endpoints may
// omit them.
type Box struct {
	ID          int       `json:"id"`
	Number      int       `json:"cislo_gb"`
	Person      string    `json:"zodpovedna_osoba"`
	PositionID  int       `json:"position_id"`
	Location    string    `json:"lokace,omitempty"`
	ShelfName   string    `json:"regal,omitempty"`
	Row         int       `json:"radek,omitempty"`
	Col         int       `json:"sloupec,omitempty"`
	FillPercent int       `json:"naplnenost_procenta"`
	Note        string    `json:"poznamka,omitempty"`
	ItemCount   int       `json:"pocet_polozek"`
	Critical    bool      `json:"ma_kriticke_expirace"`
	Status      BoxStatus `json:"stav,omitempty"`
}

// DisplayStatus is what the UI shows: the critical-expiry flag wins
// over the stored state.
func (b Box) DisplayStatus() string {
	if b.Critical {
		return StatusCritical
	}
	if b.Status == "" {
		return string(BoxActive)
	}
	return string(b.Status)
}

// Underfilled boxes (<80 %) get hatched in the grid.
func (b Box) Underfilled() bool { return b.FillPercent < 80 }

func (b Box) Label() string {
	return fmt.Sprintf("GB #%d", b.Number)
}

type Item struct {
	ID           int    `json:"id"`
	BoxID        int    `json:"gitterbox_id"`
	TMANumber    string `json:"tma_cislo,omitempty"`
	Project      string `json:"projekt,omitempty"`
	PartName     string `json:"nazev_dilu"`
	Quantity     int    `json:"pocet_kusu"`
	Unit         string `json:"jednotka,omitempty"`
	TrackExpiry  bool   `json:"sledovat_expiraci"`
	ExpiryDate   string `json:"expiracni_datum,omitempty"`
	Note         string `json:"poznamka,omitempty"`
	QuantityText string `json:"popis_mnozstvi,omitempty"`
	DaysToExpiry *int   `json:"dny_do_expirace,omitempty"`
}

// tmaPattern is the fixed serial format: EU-SVA-<6 digits>-25.
var tmaPattern = regexp.MustCompile(`^EU-SVA-[0-9]{6}-25$`)

// ValidTMANumber reports whether s matches the TMA serial format.
// Empty is valid: TMA numbers are optional.
func ValidTMANumber(s string) bool {
	if s == "" {
		return true
	}
	return tmaPattern.MatchString(s)
}

// ComposeTMANumber builds the full serial from the middle six digits,
// mirroring the form that only asks for the variable part.
func ComposeTMANumber(middle string) (string, bool) {
	middle = strings.TrimSpace(middle)
	if middle == "" {
		return "", true
	}
	if len(middle) != 6 {
		return "", false
	}
	for _, r := range middle {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return "EU-SVA-" + middle + "-25", true
}

// TMAMiddle extracts the six-digit part for pre-filling the edit form.
func TMAMiddle(tma string) string {
	if !tmaPattern.MatchString(tma) {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(tma, "EU-SVA-"), "-25")
}

// AvailableNumbers is the server-reported free-number pool for new boxes.
type AvailableNumbers struct {
	Free  []int `json:"volna_cisla"`
	Count int   `json:"celkem_volnych"`
	Max   int   `json:"max_cislo"`
}

func (a AvailableNumbers) Contains(n int) bool {
	for _, f := range a.Free {
		if f == n {
			return true
		}
	}
	return false
}

// Statistics mirrors GET /api/statistics. The backend counts
// positions and active boxes; item and critical-expiry totals are
// derived client-side from the box list.
type Statistics struct {
	TotalLocations    int     `json:"lokace_celkem"`
	TotalShelves      int     `json:"regaly_celkem"`
	TotalPositions    int     `json:"pozice_celkem"`
	FreePositions     int     `json:"pozice_volne"`
	OccupiedPositions int     `json:"pozice_obsazene"`
	ActiveBoxes       int     `json:"gitterboxes_aktivni"`
	OccupancyPercent  float64 `json:"obsazenost_procenta"`
}

// StorageSummary is the configured-layout overview nested under
// GET /api/config/storage.
type StorageSummary struct {
	TotalLocations int `json:"celkem_lokaci"`
	TotalShelves   int `json:"celkem_regalu"`
	TotalPositions int `json:"celkem_pozic"`
	MaxBoxNumber   int `json:"max_cislo_gb"`
}

// StorageConfig mirrors GET /api/config/storage.
type StorageConfig struct {
	Summary StorageSummary `json:"summary"`
}
