package gridparser_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lintang/gridnavigatorx/pkg/datastructure"
	"lintang/gridnavigatorx/pkg/gridparser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMap = `
// 3x3 dengan tembok di (1,0)
S#T
...
...
`

func TestParse(t *testing.T) {
	t.Run("map valid", func(t *testing.T) {
		gm, err := gridparser.Parse(strings.NewReader(sampleMap))
		require.NoError(t, err)
		assert.Equal(t, 3, gm.Grid.RowLength())
		require.NotNil(t, gm.Start)
		require.NotNil(t, gm.Target)
		assert.Equal(t, datastructure.NewPosition(0, 0), *gm.Start)
		assert.Equal(t, datastructure.NewPosition(2, 0), *gm.Target)
		assert.Equal(t, []datastructure.Position{datastructure.NewPosition(1, 0)}, gm.Grid.SolidPositions())

		assert.Equal(t, "S#T\n...\n...\n", gridparser.Render(gm.Grid, gm.Start, gm.Target))
	})

	t.Run("map gak persegi", func(t *testing.T) {
		_, err := gridparser.Parse(strings.NewReader("..\n...\n"))
		assert.ErrorIs(t, err, gridparser.ErrNotSquare)
	})

	t.Run("karakter aneh", func(t *testing.T) {
		_, err := gridparser.Parse(strings.NewReader(".?\n..\n"))
		assert.ErrorIs(t, err, gridparser.ErrUnknownCell)
	})

	t.Run("start dobel", func(t *testing.T) {
		_, err := gridparser.Parse(strings.NewReader("SS\n..\n"))
		assert.ErrorIs(t, err, gridparser.ErrDuplicateEnd)
	})

	t.Run("kosong", func(t *testing.T) {
		_, err := gridparser.Parse(strings.NewReader("\n// cuma komentar\n"))
		assert.ErrorIs(t, err, gridparser.ErrEmptyMap)
	})
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleMap), 0o644))

	gm, err := gridparser.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "arena", gm.Name)

	_, err = gridparser.ParseFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestRenderSearchState(t *testing.T) {
	g := datastructure.NewGrid(2)
	g.Apply([]datastructure.CellEvent{
		{Pos: datastructure.NewPosition(0, 0), State: datastructure.Path},
		{Pos: datastructure.NewPosition(1, 0), State: datastructure.Opened},
		{Pos: datastructure.NewPosition(0, 1), State: datastructure.Closed},
		{Pos: datastructure.NewPosition(1, 1), State: datastructure.Solid},
	})
	rendered := gridparser.Render(g, nil, nil)
	assert.Equal(t, "*o\nx#\n", rendered)

	gm, err := gridparser.Parse(strings.NewReader(rendered))
	require.NoError(t, err)
	assert.Equal(t, g.Cells(), gm.Grid.Cells())

	start, target := datastructure.NewPosition(1, 0), datastructure.NewPosition(0, 1)
	withEnds := gridparser.Render(g, &start, &target)
	gm, err = gridparser.Parse(strings.NewReader(withEnds))
	require.NoError(t, err)
	assert.Equal(t, start, *gm.Start)
	assert.Equal(t, target, *gm.Target)
	assert.Equal(t, withEnds, gridparser.Render(gm.Grid, gm.Start, gm.Target))
}

func TestGenerateWalls(t *testing.T) {
	opts := gridparser.GenerateOptions{Clusters: 6, Steps: 40, Density: 0.6, Seed: 42}
	keep := []datastructure.Position{datastructure.NewPosition(0, 0), datastructure.NewPosition(19, 19)}

	a := gridparser.GenerateWalls(20, opts, keep...)
	b := gridparser.GenerateWalls(20, opts, keep...)
	assert.Equal(t, a.Cells(), b.Cells())
	assert.Greater(t, a.CountState(datastructure.Solid), 0)

	for _, p := range keep {
		s, _ := a.CellState(p)
		assert.Equal(t, datastructure.Normal, s)
	}

	empty := gridparser.GenerateWalls(5, gridparser.GenerateOptions{Seed: 1})
	assert.Equal(t, 0, empty.CountState(datastructure.Solid))
}
