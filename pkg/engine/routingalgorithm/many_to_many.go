package routingalgorithm

import (
	"errors"

	"lintang/gridnavigatorx/pkg/concurrent"
	"lintang/gridnavigatorx/pkg/datastructure"
)

type SPSingleResult struct {
	ID            int
	Source        datastructure.Position
	Dest          datastructure.Position
	Path          []datastructure.Position
	Cost          int
	ExpandedNodes int
	Found         bool
}

// ManyToMany jalanin FindPath buat tiap pasang (sources[i], dests[j]) pakai worker pool.
// Grid cuma dibaca, masing-masing job punya PathFinder sendiri.
type ManyToMany struct {
	grid       datastructure.CellGrid
	numWorkers int
	options    []Option
}

func NewManyToMany(grid datastructure.CellGrid, numWorkers int, options ...Option) *ManyToMany {
	return &ManyToMany{grid: grid, numWorkers: numWorkers, options: options}
}

func (m *ManyToMany) callFindPath(job concurrent.SearchJobItem) SPSingleResult {
	start := NewStartNode(job.Start, job.Target)
	target := NewNode(job.Target, 0, 0)

	res, err := NewPathFinder(m.grid, m.options...).FindPath(start, target)
	sp := SPSingleResult{
		ID:            job.ID,
		Source:        job.Start,
		Dest:          job.Target,
		ExpandedNodes: res.ExpandedNodes,
	}
	if err != nil {
		return sp
	}
	sp.Path = Positions(res.Path)
	sp.Cost = res.Cost()
	sp.Found = true
	return sp
}

// FindPaths hasilnya urut sesuai ID job (index pasangan).
func (m *ManyToMany) FindPaths(pairs [][2]datastructure.Position) []SPSingleResult {
	workers := concurrent.NewWorkerPool[concurrent.SearchJobItem, SPSingleResult](m.numWorkers, len(pairs))
	for i, p := range pairs {
		workers.AddJob(concurrent.SearchJobItem{ID: i, Start: p[0], Target: p[1]})
	}
	workers.Close()

	workers.Start(m.callFindPath)
	workers.Wait()

	results := make([]SPSingleResult, len(pairs))
	for curr := range workers.CollectResults() {
		results[curr.ID] = curr
	}
	return results
}

var ErrEmptyQuery = errors.New("sources and targets must not be empty")

// ManyToManyQuery semua kombinasi sources x dests.
func (m *ManyToMany) ManyToManyQuery(sources, dests []datastructure.Position) (map[datastructure.Position]map[datastructure.Position]SPSingleResult, error) {
	if len(sources) == 0 || len(dests) == 0 {
		return nil, ErrEmptyQuery
	}
	pairs := make([][2]datastructure.Position, 0, len(sources)*len(dests))
	for _, s := range sources {
		for _, d := range dests {
			pairs = append(pairs, [2]datastructure.Position{s, d})
		}
	}

	spMap := make(map[datastructure.Position]map[datastructure.Position]SPSingleResult)
	for _, s := range sources {
		spMap[s] = make(map[datastructure.Position]SPSingleResult)
	}
	for _, res := range m.FindPaths(pairs) {
		spMap[res.Source][res.Dest] = res
	}
	return spMap, nil
}
