package kv

import (
	"lintang/gridnavigatorx/pkg/datastructure"

	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
)

// GridRecord bentuk grid yang disimpan di pebble.
type GridRecord struct {
	Name      string
	RowLength int
	Cells     []byte
	UpdatedAt int64
}

func NewGridRecord(name string, g *datastructure.Grid, updatedAt int64) GridRecord {
	cells := g.Cells()
	bb := make([]byte, len(cells))
	for i, c := range cells {
		bb[i] = byte(c)
	}
	return GridRecord{
		Name:      name,
		RowLength: g.RowLength(),
		Cells:     bb,
		UpdatedAt: updatedAt,
	}
}

func (r GridRecord) ToGrid() *datastructure.Grid {
	cells := make([]datastructure.CellState, len(r.Cells))
	for i, c := range r.Cells {
		cells[i] = datastructure.CellState(c)
	}
	return datastructure.NewGridFromCells(r.RowLength, cells)
}

// PathRecord hasil shortest path terakhir buat satu pasang start-target di satu grid.
type PathRecord struct {
	Grid          string
	StartCol      int
	StartRow      int
	TargetCol     int
	TargetRow     int
	Polyline      string
	Cost          int
	ExpandedNodes int
	Found         bool
	SolvedAt      int64
}

func (p PathRecord) Start() datastructure.Position {
	return datastructure.NewPosition(p.StartCol, p.StartRow)
}

func (p PathRecord) Target() datastructure.Position {
	return datastructure.NewPosition(p.TargetCol, p.TargetRow)
}

func Encode[T GridRecord | PathRecord](rec T) ([]byte, error) {
	return binary.Marshal(rec)
}

func Decode[T GridRecord | PathRecord](bb []byte) (T, error) {
	var rec T
	err := binary.Unmarshal(bb, &rec)
	return rec, err
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}

// CompressGrid encode + compress.
func CompressGrid(rec GridRecord) ([]byte, error) {
	bb, err := Encode(rec)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func LoadGrid(bbCompressed []byte) (GridRecord, error) {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return GridRecord{}, err
	}
	return Decode[GridRecord](bb)
}
