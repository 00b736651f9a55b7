package gridparser

import (
	"lintang/gridnavigatorx/pkg/datastructure"

	"golang.org/x/exp/rand"
)

type GenerateOptions struct {
	Clusters int
	Steps    int
	Density  float64
	Seed     uint64
}

// GenerateWalls bikin obstacle bergerombol pakai random walk. Cell di keep gak
// pernah dijadiin Solid. Seed sama = hasil sama.
func GenerateWalls(rowLength int, opts GenerateOptions, keep ...datastructure.Position) *datastructure.Grid {
	g := datastructure.NewGrid(rowLength)
	if rowLength == 0 {
		return g
	}
	r := rand.New(rand.NewSource(opts.Seed))

	kept := make(map[datastructure.Position]bool, len(keep))
	for _, p := range keep {
		kept[p] = true
	}

	dirs := [...][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for c := 0; c < opts.Clusters; c++ {
		p := datastructure.NewPosition(r.Intn(rowLength), r.Intn(rowLength))
		for s := 0; s < opts.Steps; s++ {
			if r.Float64() < opts.Density && !kept[p] {
				_ = g.SetCellState(p, datastructure.Solid)
			}
			d := dirs[r.Intn(len(dirs))]
			np := datastructure.NewPosition(p.Col+d[0], p.Row+d[1])
			if g.InBounds(np) {
				p = np
			}
		}
	}
	return g
}
