package routingalgorithm

import (
	"lintang/gridnavigatorx/pkg/datastructure"
	"lintang/gridnavigatorx/pkg/util"
)

// NoParent penanda node tanpa parent (start node).
const NoParent int32 = -1

const (
	straightStepCost = 1
	diagonalStepCost = 14
	heuristicScale   = 10
)

// Node satu cell yang dikunjungi selama satu kali search.
// GCost = estimasi jarak ke target, HCost = akumulasi cost dari start.
// Parent = index ke closed list.
type Node struct {
	Pos    datastructure.Position `json:"pos"`
	Parent int32                  `json:"parent"`
	GCost  int                    `json:"g_cost"`
	HCost  int                    `json:"h_cost"`
	FCost  int                    `json:"f_cost"`
}

func NewNode(pos datastructure.Position, gCost, hCost int) Node {
	return Node{
		Pos:    pos,
		Parent: NoParent,
		GCost:  gCost,
		HCost:  hCost,
		FCost:  gCost + hCost,
	}
}

// NewStartNode start node dengan estimasi awal ke target.
func NewStartNode(pos, target datastructure.Position) Node {
	n := NewNode(pos, 0, 0)
	n.ComputeCosts(NewNode(target, 0, 0), nil)
	return n
}

func (n Node) HasParent() bool {
	return n.Parent != NoParent
}

// Equal cuma bandingin posisi, cost gak ngaruh.
func (n Node) Equal(other Node) bool {
	return n.Pos == other.Pos
}

// ComputeCosts hitung ulang cost node. Harus dipanggil ulang tiap Parent berubah.
func (n *Node) ComputeCosts(target Node, closed []Node) (gCost, hCost, fCost int) {
	hCost = 0
	if n.HasParent() && int(n.Parent) < len(closed) {
		parent := closed[n.Parent]
		if parent.Pos.Col != n.Pos.Col && parent.Pos.Row != n.Pos.Row {
			hCost = parent.HCost + diagonalStepCost
		} else {
			hCost = parent.HCost + straightStepCost
		}
	}
	gCost = util.Chebyshev(n.Pos.Col, n.Pos.Row, target.Pos.Col, target.Pos.Row) * heuristicScale
	fCost = gCost + hCost

	n.GCost = gCost
	n.HCost = hCost
	n.FCost = fCost
	return gCost, hCost, fCost
}

// Neighbours 8 cell di sekitar n yang masih di dalam [0, rowLength).
func (n Node) Neighbours(rowLength int) []Node {
	neighbours := make([]Node, 0, 8)
	for _, dx := range [...]int{-1, 0, 1} {
		for _, dy := range [...]int{-1, 0, 1} {
			if dx == 0 && dy == 0 {
				continue
			}
			if nb, ok := n.shifted(dx, dy, rowLength); ok {
				neighbours = append(neighbours, nb)
			}
		}
	}
	return neighbours
}

// NeighboursOrthogonal 4 cell atas/bawah/kiri/kanan.
func (n Node) NeighboursOrthogonal(rowLength int) []Node {
	neighbours := make([]Node, 0, 4)
	for _, d := range [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if nb, ok := n.shifted(d[0], d[1], rowLength); ok {
			neighbours = append(neighbours, nb)
		}
	}
	return neighbours
}

func (n Node) shifted(dx, dy, rowLength int) (Node, bool) {
	col := n.Pos.Col + dx
	row := n.Pos.Row + dy
	if col < 0 || col >= rowLength || row < 0 || row >= rowLength {
		return Node{}, false
	}
	return NewNode(datastructure.NewPosition(col, row), 0, 0), true
}

// IsTraversable true kalau cell ada di grid dan bukan Solid.
func (n Node) IsTraversable(grid datastructure.CellGrid) bool {
	state, ok := grid.CellState(n.Pos)
	if !ok {
		return false
	}
	return state.Traversable()
}

// PathNodes ikutin parent dari node sampai start, hasilnya urut start -> node.
func PathNodes(node Node, closed []Node) []Node {
	current := node
	path := []Node{current}
	for current.HasParent() && int(current.Parent) < len(closed) {
		current = closed[current.Parent]
		path = append(path, current)
	}

	util.ReverseG(path)
	return path
}

func Positions(nodes []Node) []datastructure.Position {
	ps := make([]datastructure.Position, len(nodes))
	for i, n := range nodes {
		ps[i] = n.Pos
	}
	return ps
}
