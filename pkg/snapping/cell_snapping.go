package snapping

import (
	"errors"
	"math"
	"sort"

	"lintang/gridnavigatorx/pkg/datastructure"

	"github.com/dhconnelly/rtreego"
)

var tol = 0.0001

var ErrNoTraversableCell = errors.New("grid has no traversable cell")

// CellRect satu cell traversable di rtree.
type CellRect struct {
	Location rtreego.Point
	Pos      datastructure.Position
}

func (c *CellRect) Bounds() rtreego.Rect {
	return c.Location.ToRect(tol)
}

// CellSnapper cari cell traversable terdekat buat start/target yang jatuh di
// cell Solid atau di luar grid. Rtree baru dibangun waktu pertama kali ada
// endpoint yang perlu di-snap. Gak aman dipakai banyak goroutine.
type CellSnapper struct {
	grid datastructure.CellGrid
	tree *rtreego.Rtree
}

func NewCellSnapper(grid datastructure.CellGrid) *CellSnapper {
	return &CellSnapper{grid: grid}
}

func (s *CellSnapper) index() *rtreego.Rtree {
	if s.tree != nil {
		return s.tree
	}
	rowLength := s.grid.RowLength()
	cells := make([]rtreego.Spatial, 0, rowLength*rowLength)
	for row := 0; row < rowLength; row++ {
		for col := 0; col < rowLength; col++ {
			p := datastructure.NewPosition(col, row)
			if st, ok := s.grid.CellState(p); ok && st.Traversable() {
				cells = append(cells, &CellRect{
					Location: rtreego.Point{float64(col), float64(row)},
					Pos:      p,
				})
			}
		}
	}
	s.tree = rtreego.NewTree(2, 25, 50, cells...) // 2 dimension, 25 min entries dan 50 max entries, bulk load
	return s.tree
}

func (s *CellSnapper) Size() int {
	return s.index().Size()
}

// SnapToTraversable return p kalau p traversable. Kalau nggak, cell traversable
// terdekat (euclidean), seri dipecah pakai row lalu col terkecil.
func (s *CellSnapper) SnapToTraversable(p datastructure.Position) (datastructure.Position, error) {
	if st, ok := s.grid.CellState(p); ok && st.Traversable() {
		return p, nil
	}
	tree := s.index()
	if tree.Size() == 0 {
		return p, ErrNoTraversableCell
	}

	want := rtreego.Point{float64(p.Col), float64(p.Row)}
	nearest, ok := tree.NearestNeighbor(want).(*CellRect)
	if !ok {
		return p, ErrNoTraversableCell
	}

	// semua cell sejarak nearest diambil dulu, baru di-tie-break
	best := sqDist(p, nearest.Pos)
	radius := math.Sqrt(float64(best)) + 0.5
	box, err := rtreego.NewRectFromPoints(
		rtreego.Point{want[0] - radius, want[1] - radius},
		rtreego.Point{want[0] + radius, want[1] + radius},
	)
	if err != nil {
		return nearest.Pos, nil
	}

	cells := []datastructure.Position{nearest.Pos}
	for _, obj := range tree.SearchIntersect(box) {
		c, ok := obj.(*CellRect)
		if !ok || sqDist(p, c.Pos) != best {
			continue
		}
		cells = append(cells, c.Pos)
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells[0], nil
}

func sqDist(a, b datastructure.Position) int {
	dx := a.Col - b.Col
	dy := a.Row - b.Row
	return dx*dx + dy*dy
}
