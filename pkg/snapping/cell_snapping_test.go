package snapping_test

import (
	"testing"

	"lintang/gridnavigatorx/pkg/datastructure"
	"lintang/gridnavigatorx/pkg/snapping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapToTraversable(t *testing.T) {
	g := datastructure.NewGrid(5)
	for col := 0; col < 5; col++ {
		for row := 0; row < 3; row++ {
			_ = g.SetCellState(datastructure.NewPosition(col, row), datastructure.Solid)
		}
	}
	s := snapping.NewCellSnapper(g)
	assert.Equal(t, 10, s.Size())

	t.Run("cell traversable gak dipindah", func(t *testing.T) {
		p, err := s.SnapToTraversable(datastructure.NewPosition(2, 4))
		require.NoError(t, err)
		assert.Equal(t, datastructure.NewPosition(2, 4), p)
	})

	t.Run("cell solid pindah ke yang terdekat", func(t *testing.T) {
		p, err := s.SnapToTraversable(datastructure.NewPosition(3, 1))
		require.NoError(t, err)
		assert.Equal(t, datastructure.NewPosition(3, 3), p)
	})

	t.Run("di luar grid", func(t *testing.T) {
		p, err := s.SnapToTraversable(datastructure.NewPosition(9, 9))
		require.NoError(t, err)
		assert.Equal(t, datastructure.NewPosition(4, 4), p)
	})

	t.Run("semua cell sejarak dipecah row lalu col", func(t *testing.T) {
		disc := datastructure.NewGrid(21)
		center := datastructure.NewPosition(10, 10)
		for col := 0; col < 21; col++ {
			for row := 0; row < 21; row++ {
				dx, dy := col-10, row-10
				if dx*dx+dy*dy < 25 {
					_ = disc.SetCellState(datastructure.NewPosition(col, row), datastructure.Solid)
				}
			}
		}
		// 12 cell traversable dengan jarak kuadrat 25 dari center
		p, err := snapping.NewCellSnapper(disc).SnapToTraversable(center)
		require.NoError(t, err)
		assert.Equal(t, datastructure.NewPosition(10, 5), p)

		p, err = snapping.NewCellSnapper(disc).SnapToTraversable(datastructure.NewPosition(10, 11))
		require.NoError(t, err)
		assert.Equal(t, datastructure.NewPosition(10, 15), p)
	})

	t.Run("rtree cuma dibangun kalau perlu snap", func(t *testing.T) {
		big := datastructure.NewGrid(256)
		lazy := snapping.NewCellSnapper(big)
		p, err := lazy.SnapToTraversable(datastructure.NewPosition(128, 128))
		require.NoError(t, err)
		assert.Equal(t, datastructure.NewPosition(128, 128), p)
		assert.False(t, lazy.Indexed())

		p, err = lazy.SnapToTraversable(datastructure.NewPosition(600, 0))
		require.NoError(t, err)
		assert.Equal(t, datastructure.NewPosition(255, 0), p)
		assert.True(t, lazy.Indexed())
	})

	t.Run("grid penuh solid", func(t *testing.T) {
		full := datastructure.NewGrid(2)
		for i := 0; i < 4; i++ {
			_ = full.SetCellState(full.PositionAt(i), datastructure.Solid)
		}
		_, err := snapping.NewCellSnapper(full).SnapToTraversable(datastructure.NewPosition(0, 0))
		assert.ErrorIs(t, err, snapping.ErrNoTraversableCell)
	})
}
