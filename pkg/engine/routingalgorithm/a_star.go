package routingalgorithm

import (
	"errors"

	"lintang/gridnavigatorx/pkg/datastructure"
)

var (
	// ErrNoPath open list habis sebelum target ketemu.
	ErrNoPath = errors.New("no path was found at all")
	// ErrNotStarted UpdatePathFinding dipanggil sebelum StartPathFinding.
	ErrNotStarted = errors.New("path finding not started")
)

type SearchState int

const (
	Idle SearchState = iota
	Searching
	Found
	Exhausted
)

func (s SearchState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

func (s SearchState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Connectivity jumlah tetangga yang di-expand per node.
type Connectivity int

const (
	FourConnected  Connectivity = 4
	EightConnected Connectivity = 8
)

func (c Connectivity) Valid() bool {
	return c == FourConnected || c == EightConnected
}

type Options struct {
	FindPathConnectivity Connectivity
	StepConnectivity     Connectivity
}

type Option func(*Options)

// WithConnectivity set connectivity FindPath dan UpdatePathFinding sekaligus.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.FindPathConnectivity = c
		o.StepConnectivity = c
	}
}

func WithFindPathConnectivity(c Connectivity) Option {
	return func(o *Options) { o.FindPathConnectivity = c }
}

func WithStepConnectivity(c Connectivity) Option {
	return func(o *Options) { o.StepConnectivity = c }
}

// Result hasil FindPath.
type Result struct {
	Path          []Node
	Events        []datastructure.CellEvent
	ExpandedNodes int
	Found         bool
}

// Cost akumulasi cost dari start sampai node terakhir path.
func (r Result) Cost() int {
	if len(r.Path) == 0 {
		return 0
	}
	return r.Path[len(r.Path)-1].HCost
}

// PathFinder state satu search. Open list = min-heap + map posisi, closed list =
// arena append-only yang di-index Node.Parent. Satu PathFinder cuma boleh dipakai
// satu caller dalam satu waktu.
type PathFinder struct {
	grid datastructure.CellGrid
	opts Options

	start  Node
	target Node

	open      *MinHeap[datastructure.Position]
	openNodes map[datastructure.Position]Node
	closed    []Node
	closedIdx map[datastructure.Position]int32

	seq       int64
	state     SearchState
	path      []Node
	stepCount int
}

func NewPathFinder(grid datastructure.CellGrid, options ...Option) *PathFinder {
	opts := Options{
		FindPathConnectivity: EightConnected,
		StepConnectivity:     FourConnected,
	}
	for _, o := range options {
		o(&opts)
	}
	if !opts.FindPathConnectivity.Valid() {
		opts.FindPathConnectivity = EightConnected
	}
	if !opts.StepConnectivity.Valid() {
		opts.StepConnectivity = FourConnected
	}

	return &PathFinder{
		grid:      grid,
		opts:      opts,
		open:      NewMinHeap[datastructure.Position](),
		openNodes: make(map[datastructure.Position]Node),
		closedIdx: make(map[datastructure.Position]int32),
	}
}

// StartPathFinding kosongin open & closed, lalu push start ke open.
func (pf *PathFinder) StartPathFinding(start, target Node) {
	pf.open.Clear()
	pf.openNodes = make(map[datastructure.Position]Node)
	pf.closed = pf.closed[:0]
	pf.closedIdx = make(map[datastructure.Position]int32)
	pf.seq = 0
	pf.path = nil
	pf.stepCount = 0

	start.Parent = NoParent
	pf.start = start
	pf.target = target
	pf.push(start)
	pf.state = Searching
}

// FindPath jalanin search sampai target ketemu (8 tetangga default) atau open list
// habis (ErrNoPath). Event status cell dikembalikan di Result, grid gak diubah.
func (pf *PathFinder) FindPath(start, target Node) (Result, error) {
	pf.StartPathFinding(start, target)

	events := []datastructure.CellEvent{}
	for {
		ev, err := pf.step(pf.opts.FindPathConnectivity)
		events = append(events, ev...)
		if err != nil {
			return Result{Events: events, ExpandedNodes: len(pf.closed)}, err
		}
		if pf.state == Found {
			return Result{
				Path:          pf.Path(),
				Events:        events,
				ExpandedNodes: len(pf.closed),
				Found:         true,
			}, nil
		}
	}
}

// UpdatePathFinding satu kali pop-and-expand (4 tetangga default). found true kalau
// target ketemu di step ini atau sebelumnya.
func (pf *PathFinder) UpdatePathFinding() (found bool, events []datastructure.CellEvent, err error) {
	switch pf.state {
	case Idle:
		return false, nil, ErrNotStarted
	case Found:
		return true, nil, nil
	case Exhausted:
		return false, nil, ErrNoPath
	}

	events, err = pf.step(pf.opts.StepConnectivity)
	if err != nil {
		return false, events, err
	}
	return pf.state == Found, events, nil
}

func (pf *PathFinder) step(conn Connectivity) ([]datastructure.CellEvent, error) {
	minItem, err := pf.open.ExtractMin()
	if err != nil {
		pf.state = Exhausted
		return nil, ErrNoPath
	}
	pf.stepCount++

	current := pf.openNodes[minItem.Item]
	delete(pf.openNodes, minItem.Item)
	pf.closed = append(pf.closed, current)
	currentIdx := int32(len(pf.closed) - 1)
	pf.closedIdx[current.Pos] = currentIdx

	events := []datastructure.CellEvent{{Pos: current.Pos, State: datastructure.Closed}}

	if current.Equal(pf.target) {
		pf.path = PathNodes(current, pf.closed)
		for _, n := range pf.path {
			events = append(events, datastructure.CellEvent{Pos: n.Pos, State: datastructure.Path})
		}
		pf.state = Found
		return events, nil
	}

	for _, nb := range pf.neighbours(current, conn) {
		if !nb.IsTraversable(pf.grid) {
			continue
		}
		if _, ok := pf.closedIdx[nb.Pos]; ok {
			continue
		}

		// node yang sudah di open list gak di-update, parent-nya tetap dari penemuan pertama
		if pf.open.Contains(nb.Pos) {
			continue
		}

		nb.Parent = currentIdx
		nb.ComputeCosts(pf.target, pf.closed)
		pf.push(nb)
		events = append(events, datastructure.CellEvent{Pos: nb.Pos, State: datastructure.Opened})
	}

	return events, nil
}

func (pf *PathFinder) neighbours(n Node, conn Connectivity) []Node {
	if conn == FourConnected {
		return n.NeighboursOrthogonal(pf.grid.RowLength())
	}
	return n.Neighbours(pf.grid.RowLength())
}

func (pf *PathFinder) push(n Node) {
	pf.openNodes[n.Pos] = n
	pf.open.Insert(PriorityQueueNode[datastructure.Position]{
		Rank: Rank{F: n.FCost, G: n.GCost, Seq: pf.seq},
		Item: n.Pos,
	})
	pf.seq++
}

func (pf *PathFinder) State() SearchState {
	return pf.state
}

func (pf *PathFinder) Start() Node {
	return pf.start
}

func (pf *PathFinder) Target() Node {
	return pf.target
}

func (pf *PathFinder) Steps() int {
	return pf.stepCount
}

// Open node di open list urut prioritas.
func (pf *PathFinder) Open() []Node {
	items := pf.open.Sorted()
	nodes := make([]Node, len(items))
	for i, it := range items {
		nodes[i] = pf.openNodes[it.Item]
	}
	return nodes
}

// Closed node di closed list urut waktu expand.
func (pf *PathFinder) Closed() []Node {
	nodes := make([]Node, len(pf.closed))
	copy(nodes, pf.closed)
	return nodes
}

func (pf *PathFinder) Path() []Node {
	if pf.path == nil {
		return nil
	}
	path := make([]Node, len(pf.path))
	copy(path, pf.path)
	return path
}
