package kv_test

import (
	"testing"

	"lintang/gridnavigatorx/pkg/concurrent"
	"lintang/gridnavigatorx/pkg/datastructure"
	"lintang/gridnavigatorx/pkg/kv"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *kv.KVDB {
	t.Helper()
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	kvDB := kv.NewKVDB(db, nil)
	t.Cleanup(func() { _ = kvDB.Close() })
	return kvDB
}

func TestGridStore(t *testing.T) {
	kvDB := newTestKV(t)

	g := datastructure.NewGrid(4)
	require.NoError(t, g.SetCellState(datastructure.NewPosition(1, 2), datastructure.Solid))
	require.NoError(t, g.SetCellState(datastructure.NewPosition(3, 3), datastructure.Path))

	t.Run("save lalu get", func(t *testing.T) {
		require.NoError(t, kvDB.SaveGrid("maze", g))

		got, err := kvDB.GetGrid("maze")
		require.NoError(t, err)
		assert.Equal(t, 4, got.RowLength())
		assert.Equal(t, g.Cells(), got.Cells())
	})

	t.Run("grid gak ada", func(t *testing.T) {
		_, err := kvDB.GetGrid("nope")
		assert.ErrorIs(t, err, kv.ErrGridNotFound)
		assert.ErrorIs(t, kvDB.DeleteGrid("nope"), kv.ErrGridNotFound)
	})

	t.Run("list, path, delete", func(t *testing.T) {
		require.NoError(t, kvDB.SaveGrid("arena", datastructure.NewGrid(2)))
		names, err := kvDB.ListGrids()
		require.NoError(t, err)
		assert.Equal(t, []string{"arena", "maze"}, names)

		rec := kv.PathRecord{
			Grid:      "maze",
			StartCol:  0,
			StartRow:  0,
			TargetCol: 3,
			TargetRow: 0,
			Polyline:  datastructure.RenderPath([]datastructure.Position{{Col: 0, Row: 0}, {Col: 3, Row: 0}}),
			Cost:      3,
			Found:     true,
		}
		require.NoError(t, kvDB.SavePath(rec))
		got, err := kvDB.GetPath("maze", datastructure.NewPosition(0, 0), datastructure.NewPosition(3, 0))
		require.NoError(t, err)
		assert.Equal(t, rec, got)

		require.NoError(t, kvDB.DeleteGrid("maze"))
		_, err = kvDB.GetPath("maze", datastructure.NewPosition(0, 0), datastructure.NewPosition(3, 0))
		assert.ErrorIs(t, err, kv.ErrPathNotFound)

		names, err = kvDB.ListGrids()
		require.NoError(t, err)
		assert.Equal(t, []string{"arena"}, names)
	})
}

func TestCreateGridKV(t *testing.T) {
	kvDB := newTestKV(t)

	items := []concurrent.SaveGridJobItem{
		{KeyStr: "a", RowLength: 2, Cells: []datastructure.CellState{datastructure.Solid, 0, 0, 0}},
		{KeyStr: "b", RowLength: 1, Cells: []datastructure.CellState{datastructure.Normal}},
		{KeyStr: "c", RowLength: 3, Cells: make([]datastructure.CellState, 9)},
	}
	require.NoError(t, kvDB.CreateGridKV(items, 2))

	names, err := kvDB.ListGrids()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)

	a, err := kvDB.GetGrid("a")
	require.NoError(t, err)
	s, _ := a.CellState(datastructure.NewPosition(0, 0))
	assert.Equal(t, datastructure.Solid, s)
}

func TestCompression(t *testing.T) {
	rec := kv.NewGridRecord("big", datastructure.NewGrid(64), 1)
	bb, err := kv.CompressGrid(rec)
	require.NoError(t, err)
	assert.Less(t, len(bb), 64*64)

	got, err := kv.LoadGrid(bb)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}
