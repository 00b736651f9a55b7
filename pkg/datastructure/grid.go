package datastructure

import (
	"errors"
	"fmt"
	"strings"
)

// Position posisi cell di grid. Col = x, Row = y.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func NewPosition(col, row int) Position {
	return Position{Col: col, Row: row}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// CellState status tiap cell. Cuma Solid yang bikin cell gak bisa dilewati,
// sisanya cuma bookkeeping buat visualisasi.
type CellState uint8

const (
	Normal CellState = iota
	Solid
	Opened
	Closed
	Path
)

var cellStateNames = [...]string{
	Normal: "normal",
	Solid:  "solid",
	Opened: "opened",
	Closed: "closed",
	Path:   "path",
}

var ErrUnknownCellState = errors.New("unknown cell state")

func (s CellState) String() string {
	if int(s) < len(cellStateNames) {
		return cellStateNames[s]
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

func ParseCellState(s string) (CellState, error) {
	for i, name := range cellStateNames {
		if strings.EqualFold(name, s) {
			return CellState(i), nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownCellState, s)
}

func (s CellState) MarshalText() ([]byte, error) {
	if int(s) >= len(cellStateNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCellState, uint8(s))
	}
	return []byte(cellStateNames[s]), nil
}

func (s *CellState) UnmarshalText(text []byte) error {
	st, err := ParseCellState(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Traversable true kalau cell bukan Solid.
func (s CellState) Traversable() bool {
	return s != Solid
}

// CellEvent perubahan status satu cell yang dihasilkan search.
type CellEvent struct {
	Pos   Position  `json:"pos"`
	State CellState `json:"state"`
}

// CellGrid read-only view yang dibutuhkan search engine.
type CellGrid interface {
	RowLength() int
	CellState(p Position) (CellState, bool)
}

var ErrOutOfBounds = errors.New("position out of grid bounds")

// Grid flat array status cell, index = row*rowLength + col. Panjang array
// fixed waktu grid dibuat.
type Grid struct {
	rowLength int
	cells     []CellState
}

// NewGrid bikin grid rowLength x rowLength, semua cell Normal.
func NewGrid(rowLength int) *Grid {
	return &Grid{
		rowLength: rowLength,
		cells:     make([]CellState, rowLength*rowLength),
	}
}

// NewGridFromCells pakai cells apa adanya. Kalau cells lebih pendek dari rowLength²,
// cell yang gak ada dianggap gak bisa dilewati.
func NewGridFromCells(rowLength int, cells []CellState) *Grid {
	return &Grid{
		rowLength: rowLength,
		cells:     cells,
	}
}

func (g *Grid) RowLength() int {
	return g.rowLength
}

func (g *Grid) Len() int {
	return len(g.cells)
}

func (g *Grid) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < g.rowLength && p.Row >= 0 && p.Row < g.rowLength
}

func (g *Grid) Index(p Position) int {
	return p.Row*g.rowLength + p.Col
}

func (g *Grid) PositionAt(idx int) Position {
	return Position{Col: idx % g.rowLength, Row: idx / g.rowLength}
}

// CellState return status cell di p. ok false kalau p di luar grid atau index
// melebihi panjang cells.
func (g *Grid) CellState(p Position) (CellState, bool) {
	if !g.InBounds(p) {
		return Solid, false
	}
	idx := g.Index(p)
	if idx >= len(g.cells) {
		return Solid, false
	}
	return g.cells[idx], true
}

func (g *Grid) SetCellState(p Position, s CellState) error {
	if !g.InBounds(p) || g.Index(p) >= len(g.cells) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	g.cells[g.Index(p)] = s
	return nil
}

// Apply terapkan event hasil search ke grid. Event di luar grid di-skip.
func (g *Grid) Apply(events []CellEvent) {
	for _, ev := range events {
		_ = g.SetCellState(ev.Pos, ev.State)
	}
}

// Toggle Normal -> Solid, Solid -> Normal, status search lain -> Solid.
func (g *Grid) Toggle(p Position) (CellState, error) {
	s, ok := g.CellState(p)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	next := Solid
	if s == Solid {
		next = Normal
	}
	g.cells[g.Index(p)] = next
	return next, nil
}

// Reset semua cell jadi Normal, termasuk Solid.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Normal
	}
}

// ClearSearch hapus jejak search (Opened/Closed/Path), Solid tetap.
func (g *Grid) ClearSearch() {
	for i, s := range g.cells {
		if s != Solid {
			g.cells[i] = Normal
		}
	}
}

func (g *Grid) Cells() []CellState {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return cells
}

func (g *Grid) Clone() *Grid {
	return &Grid{rowLength: g.rowLength, cells: g.Cells()}
}

func (g *Grid) SolidPositions() []Position {
	solids := []Position{}
	for i, s := range g.cells {
		if s == Solid {
			solids = append(solids, g.PositionAt(i))
		}
	}
	return solids
}

func (g *Grid) CountState(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}
