// Package grid computes the cell model for a shelf's position grid.
// It is deliberately free of any terminal/rendering concerns so the
// warehouse numbering rules can be tested on their own.
package grid

import (
	"fmt"
	"strings"

	"sklad-cli/internal/model"
)

type CellKind int

const (
	// CellFree is an existing position with no box in it.
	CellFree CellKind = iota
	// CellOccupied is a position holding a box.
	CellOccupied
	// CellHole is a coordinate the server reported no position for.
	CellHole
)

type Cell struct {
	Row  int
	Col  int
	Kind CellKind
	// Position is nil for holes.
	Position *model.Position
	// Box is non-nil iff Kind == CellOccupied.
	Box *model.Box
}

// Underfilled reports whether the cell holds a box below the 80 % fill
// threshold (rendered hatched).
func (c Cell) Underfilled() bool {
	return c.Kind == CellOccupied && c.Box.Underfilled()
}

// Label is the short text shown inside the cell: the box number for
// occupied cells, the coordinate for free ones, a dash for holes.
func (c Cell) Label() string {
	switch c.Kind {
	case CellOccupied:
		return fmt.Sprintf("%d", c.Box.Number)
	case CellFree:
		return fmt.Sprintf("%d-%d", c.Row, c.Col)
	default:
		return "-"
	}
}

// Compute maps a shelf's positions onto a dense rows×cols cell slice.
//
// Rows iterate from rows down to 1 so that position 1-1 lands bottom
// left, matching the physical numbering of the warehouse shelves;
// columns iterate 1..cols. Positions outside the shelf's declared size
// are ignored.
func Compute(shelf model.Shelf, positions []model.Position) []Cell {
	rows, cols := shelf.Size()
	if rows <= 0 || cols <= 0 {
		return nil
	}

	byCoord := make(map[[2]int]*model.Position, len(positions))
	for i := range positions {
		p := &positions[i]
		if p.Row < 1 || p.Row > rows || p.Col < 1 || p.Col > cols {
			continue
		}
		byCoord[[2]int{p.Row, p.Col}] = p
	}

	cells := make([]Cell, 0, rows*cols)
	for r := rows; r >= 1; r-- {
		for c := 1; c <= cols; c++ {
			cell := Cell{Row: r, Col: c, Kind: CellHole}
			if p, ok := byCoord[[2]int{r, c}]; ok {
				cell.Position = p
				if p.Box != nil {
					cell.Kind = CellOccupied
					cell.Box = p.Box
				} else {
					cell.Kind = CellFree
				}
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

// RowSlices regroups Compute's output by display row (top row first).
func RowSlices(cells []Cell, cols int) [][]Cell {
	if cols <= 0 || len(cells) == 0 {
		return nil
	}
	var out [][]Cell
	for i := 0; i < len(cells); i += cols {
		end := i + cols
		if end > len(cells) {
			end = len(cells)
		}
		out = append(out, cells[i:end])
	}
	return out
}

// Occupied counts cells holding a box.
func Occupied(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if c.Kind == CellOccupied {
			n++
		}
	}
	return n
}

// Tooltip builds the hover/detail text for a cell. Pure string
// construction, shared by the grid view and the CLI.
func Tooltip(c Cell) string {
	var b strings.Builder
	switch c.Kind {
	case CellOccupied:
		gb := c.Box
		fmt.Fprintf(&b, "%s\n", gb.Label())
		fmt.Fprintf(&b, "Osoba: %s\n", gb.Person)
		fmt.Fprintf(&b, "Položky: %d\n", gb.ItemCount)
		fmt.Fprintf(&b, "Naplněnost: %d%%", gb.FillPercent)
		if gb.Critical {
			b.WriteString("\n⚠ Kritická expirace")
		}
	case CellFree:
		name := ""
		if c.Position != nil {
			name = c.Position.Name
		}
		if name == "" {
			name = fmt.Sprintf("%d-%d", c.Row, c.Col)
		}
		fmt.Fprintf(&b, "Pozice %s\nVolná", name)
	default:
		b.WriteString("Mimo regál")
	}
	return b.String()
}
