package routingalgorithm

import (
	"errors"
	"sort"
)

// Rank urutan prioritas open list: FCost kecil duluan, kalau sama GCost (sisa
// estimasi ke target) kecil duluan, kalau masih sama yang masuk duluan.
type Rank struct {
	F   int
	G   int
	Seq int64
}

func (r Rank) Less(other Rank) bool {
	if r.F != other.F {
		return r.F < other.F
	}
	if r.G != other.G {
		return r.G < other.G
	}
	return r.Seq < other.Seq
}

type PriorityQueueNode[T comparable] struct {
	Rank Rank
	Item T
}

var ErrHeapEmpty = errors.New("heap is empty")

// MinHeap binary heap priorityqueue, pos buat lookup index item di heap.
type MinHeap[T comparable] struct {
	heap []PriorityQueueNode[T]
	pos  map[T]int
}

func NewMinHeap[T comparable]() *MinHeap[T] {
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		pos:  make(map[T]int),
	}
}

func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

func (h *MinHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

func (h *MinHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

func (h *MinHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].Item] = i
	h.pos[h.heap[j].Item] = j
}

// heapifyUp swap sama parent selama rank parent lebih besar. O(logN).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].Rank.Less(h.heap[h.parent(index)].Rank) {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown swap sama child terkecil selama child lebih kecil. O(logN).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.heap[left].Rank.Less(h.heap[smallest].Rank) {
			smallest = left
		}
		if right < len(h.heap) && h.heap[right].Rank.Less(h.heap[smallest].Rank) {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) isEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) Insert(key PriorityQueueNode[T]) {
	h.heap = append(h.heap, key)
	index := h.Size() - 1
	h.pos[key.Item] = index
	h.heapifyUp(index)
}

// ExtractMin pop item dengan rank terkecil. O(logN).
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, ErrHeapEmpty
	}
	root := h.heap[0]
	last := h.Size() - 1
	h.heap[0] = h.heap[last]
	h.pos[h.heap[0].Item] = 0
	h.heap = h.heap[:last]
	delete(h.pos, root.Item)
	if !h.isEmpty() {
		h.heapifyDown(0)
	}
	return root, nil
}

func (h *MinHeap[T]) Contains(item T) bool {
	_, ok := h.pos[item]
	return ok
}

func (h *MinHeap[T]) Clear() {
	h.heap = h.heap[:0]
	h.pos = make(map[T]int)
}

// Sorted semua item urut rank, heap-nya gak diubah.
func (h *MinHeap[T]) Sorted() []PriorityQueueNode[T] {
	items := make([]PriorityQueueNode[T], len(h.heap))
	copy(items, h.heap)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Rank.Less(items[j].Rank)
	})
	return items
}
