package concurrent

import "lintang/gridnavigatorx/pkg/datastructure"

// SearchJobItem satu pasang start-target buat batch query.
type SearchJobItem struct {
	ID     int
	Start  datastructure.Position
	Target datastructure.Position
}

// SaveGridJobItem satu grid yang mau disimpan ke kv.
type SaveGridJobItem struct {
	KeyStr    string
	RowLength int
	Cells     []datastructure.CellState
}

type JobI interface {
	SearchJobItem | SaveGridJobItem
}

type JobFunc[T JobI, G any] func(job T) G
