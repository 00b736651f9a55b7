package routingalgorithm_test

import (
	"testing"

	"lintang/gridnavigatorx/pkg/datastructure"
	"lintang/gridnavigatorx/pkg/engine/routingalgorithm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManyToMany(t *testing.T) {
	g := gridWithSolids(5, pos(2, 0), pos(2, 1), pos(2, 2))
	// (4,4) ketutup total
	_ = g.SetCellState(pos(3, 4), datastructure.Solid)
	_ = g.SetCellState(pos(3, 3), datastructure.Solid)
	_ = g.SetCellState(pos(4, 3), datastructure.Solid)

	mm := routingalgorithm.NewManyToMany(g, 3)

	t.Run("find paths urut sesuai input", func(t *testing.T) {
		results := mm.FindPaths([][2]datastructure.Position{
			{pos(0, 0), pos(4, 0)},
			{pos(0, 0), pos(4, 4)},
			{pos(1, 1), pos(1, 1)},
		})
		require.Len(t, results, 3)

		assert.True(t, results[0].Found)
		assert.Equal(t, pos(4, 0), results[0].Path[len(results[0].Path)-1])
		assert.NotContains(t, results[0].Path, pos(2, 0))

		assert.False(t, results[1].Found)
		assert.Empty(t, results[1].Path)

		assert.True(t, results[2].Found)
		assert.Equal(t, []datastructure.Position{pos(1, 1)}, results[2].Path)
		assert.Equal(t, 0, results[2].Cost)
	})

	t.Run("many to many query", func(t *testing.T) {
		sp, err := mm.ManyToManyQuery(
			[]datastructure.Position{pos(0, 0), pos(0, 4)},
			[]datastructure.Position{pos(4, 0), pos(1, 2)},
		)
		require.NoError(t, err)
		assert.Len(t, sp, 2)
		for _, dests := range sp {
			assert.Len(t, dests, 2)
			for _, res := range dests {
				assert.True(t, res.Found)
			}
		}
	})

	t.Run("query kosong", func(t *testing.T) {
		_, err := mm.ManyToManyQuery(nil, []datastructure.Position{pos(0, 0)})
		assert.ErrorIs(t, err, routingalgorithm.ErrEmptyQuery)
	})
}
