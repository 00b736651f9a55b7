package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lintang/gridnavigatorx/pkg/datastructure"
	"lintang/gridnavigatorx/pkg/engine/routingalgorithm"
	"lintang/gridnavigatorx/pkg/gridparser"
	"lintang/gridnavigatorx/pkg/kv"
	"lintang/gridnavigatorx/pkg/server"
	"lintang/gridnavigatorx/pkg/server/rest/service"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(col, row int) datastructure.Position {
	return datastructure.NewPosition(col, row)
}

func newTestService(t *testing.T, sessions *service.SessionStore) *service.NavigationService {
	t.Helper()
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	kvDB := kv.NewKVDB(db, nil)
	t.Cleanup(func() { _ = kvDB.Close() })
	return service.NewNavigationService(kvDB, sessions, 2, nil)
}

func errCode(err error) error {
	var serr *server.Error
	if errors.As(err, &serr) {
		return serr.Code()
	}
	return nil
}

// kolom 2 baris 0..3 tembok, jalan cuma lewat baris 4.
func wallSolids() []datastructure.Position {
	return []datastructure.Position{pos(2, 0), pos(2, 1), pos(2, 2), pos(2, 3)}
}

func TestGridCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	t.Run("create, get, list", func(t *testing.T) {
		g, err := svc.CreateGrid(ctx, service.CreateGridParams{Name: "maze", RowLength: 5, Solids: wallSolids()})
		require.NoError(t, err)
		assert.Equal(t, 4, g.CountState(datastructure.Solid))

		got, err := svc.GetGrid(ctx, "maze")
		require.NoError(t, err)
		assert.Equal(t, g.Cells(), got.Cells())

		names, err := svc.ListGrids(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"maze"}, names)
	})

	t.Run("nama sudah dipakai", func(t *testing.T) {
		_, err := svc.CreateGrid(ctx, service.CreateGridParams{Name: "maze", RowLength: 3})
		assert.Equal(t, server.ErrConflict, errCode(err))
	})

	t.Run("row length gak valid", func(t *testing.T) {
		_, err := svc.CreateGrid(ctx, service.CreateGridParams{Name: "x", RowLength: 0})
		assert.Equal(t, server.ErrBadParamInput, errCode(err))
	})

	t.Run("solid di luar grid", func(t *testing.T) {
		_, err := svc.CreateGrid(ctx, service.CreateGridParams{Name: "y", RowLength: 2, Solids: []datastructure.Position{pos(5, 5)}})
		assert.Equal(t, server.ErrBadParamInput, errCode(err))
	})

	t.Run("random obstacle", func(t *testing.T) {
		g, err := svc.CreateGrid(ctx, service.CreateGridParams{
			Name:      "random",
			RowLength: 20,
			Random:    &gridparser.GenerateOptions{Clusters: 5, Steps: 30, Density: 0.7, Seed: 7},
			Keep:      []datastructure.Position{pos(0, 0)},
		})
		require.NoError(t, err)
		s, _ := g.CellState(pos(0, 0))
		assert.Equal(t, datastructure.Normal, s)
		assert.Greater(t, g.CountState(datastructure.Solid), 0)
	})

	t.Run("grid gak ada", func(t *testing.T) {
		_, err := svc.GetGrid(ctx, "nope")
		assert.Equal(t, server.ErrNotFound, errCode(err))
		assert.Equal(t, server.ErrNotFound, errCode(svc.DeleteGrid(ctx, "nope")))
	})

	t.Run("ensure grid idempotent", func(t *testing.T) {
		require.NoError(t, svc.EnsureGrid(ctx, "demo", 20))
		require.NoError(t, svc.EnsureGrid(ctx, "demo", 20))
		g, err := svc.GetGrid(ctx, "demo")
		require.NoError(t, err)
		assert.Equal(t, 20, g.RowLength())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteGrid(ctx, "demo"))
		_, err := svc.GetGrid(ctx, "demo")
		assert.Equal(t, server.ErrNotFound, errCode(err))
	})
}

func TestEditCells(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	_, err := svc.CreateGrid(ctx, service.CreateGridParams{Name: "g", RowLength: 3})
	require.NoError(t, err)

	t.Run("toggle bolak balik", func(t *testing.T) {
		s, err := svc.ToggleCell(ctx, "g", pos(1, 1))
		require.NoError(t, err)
		assert.Equal(t, datastructure.Solid, s)

		s, err = svc.ToggleCell(ctx, "g", pos(1, 1))
		require.NoError(t, err)
		assert.Equal(t, datastructure.Normal, s)

		_, err = svc.ToggleCell(ctx, "g", pos(3, 0))
		assert.Equal(t, server.ErrBadParamInput, errCode(err))
	})

	t.Run("set cells lalu clear search", func(t *testing.T) {
		g, err := svc.SetCells(ctx, "g", []datastructure.CellEvent{
			{Pos: pos(0, 0), State: datastructure.Solid},
			{Pos: pos(1, 0), State: datastructure.Path},
			{Pos: pos(2, 0), State: datastructure.Closed},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, g.CountState(datastructure.Path))

		g, err = svc.ClearSearch(ctx, "g")
		require.NoError(t, err)
		assert.Equal(t, 1, g.CountState(datastructure.Solid))
		assert.Equal(t, 0, g.CountState(datastructure.Path))
		assert.Equal(t, 0, g.CountState(datastructure.Closed))
	})

	t.Run("reset hapus solid juga", func(t *testing.T) {
		g, err := svc.ResetGrid(ctx, "g")
		require.NoError(t, err)
		assert.Equal(t, 9, g.CountState(datastructure.Normal))

		stored, err := svc.GetGrid(ctx, "g")
		require.NoError(t, err)
		assert.Equal(t, 9, stored.CountState(datastructure.Normal))
	})

	t.Run("render", func(t *testing.T) {
		_, err := svc.ToggleCell(ctx, "g", pos(0, 2))
		require.NoError(t, err)
		m, err := svc.RenderGrid(ctx, "g")
		require.NoError(t, err)
		assert.Equal(t, "...\n...\n#..\n", m)
	})
}

func TestShortestPath(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	_, err := svc.CreateGrid(ctx, service.CreateGridParams{Name: "maze", RowLength: 5, Solids: wallSolids()})
	require.NoError(t, err)

	t.Run("lewat bawah tembok", func(t *testing.T) {
		sp, err := svc.ShortestPath(ctx, "maze", pos(0, 0), pos(4, 0), routingalgorithm.EightConnected)
		require.NoError(t, err)
		require.True(t, sp.Found)
		assert.Equal(t, pos(0, 0), sp.Path[0])
		assert.Equal(t, pos(4, 0), sp.Path[len(sp.Path)-1])
		assert.Contains(t, sp.Path, pos(2, 4))
		assert.NotEmpty(t, sp.Polyline)
		assert.Greater(t, sp.Cost, 0)

		g, err := svc.GetGrid(ctx, "maze")
		require.NoError(t, err)
		assert.Equal(t, len(sp.Path), g.CountState(datastructure.Path))
		assert.Equal(t, 4, g.CountState(datastructure.Solid))

		saved, err := svc.GetSavedPath(ctx, "maze", pos(0, 0), pos(4, 0))
		require.NoError(t, err)
		assert.Equal(t, sp.Path, saved.Path)
		assert.Equal(t, sp.Cost, saved.Cost)
	})

	t.Run("search ulang hapus jejak lama", func(t *testing.T) {
		sp, err := svc.ShortestPath(ctx, "maze", pos(0, 4), pos(1, 4), routingalgorithm.EightConnected)
		require.NoError(t, err)
		assert.Equal(t, []datastructure.Position{pos(0, 4), pos(1, 4)}, sp.Path)

		g, err := svc.GetGrid(ctx, "maze")
		require.NoError(t, err)
		assert.Equal(t, 2, g.CountState(datastructure.Path))
	})

	t.Run("start solid di-snap", func(t *testing.T) {
		sp, err := svc.ShortestPath(ctx, "maze", pos(2, 0), pos(0, 0), routingalgorithm.EightConnected)
		require.NoError(t, err)
		assert.Equal(t, pos(1, 0), sp.Start)
		assert.True(t, sp.Found)
	})

	t.Run("target ketutup", func(t *testing.T) {
		_, err := svc.SetCells(ctx, "maze", []datastructure.CellEvent{
			{Pos: pos(3, 4), State: datastructure.Solid},
			{Pos: pos(3, 3), State: datastructure.Solid},
			{Pos: pos(4, 3), State: datastructure.Solid},
		})
		require.NoError(t, err)

		sp, err := svc.ShortestPath(ctx, "maze", pos(0, 0), pos(4, 4), routingalgorithm.EightConnected)
		require.NoError(t, err)
		assert.False(t, sp.Found)
		assert.Empty(t, sp.Path)
		assert.Greater(t, sp.ExpandedNodes, 0)
	})

	t.Run("path gak pernah disimpan", func(t *testing.T) {
		_, err := svc.GetSavedPath(ctx, "maze", pos(1, 1), pos(0, 1))
		assert.Equal(t, server.ErrNotFound, errCode(err))
	})

	t.Run("batch", func(t *testing.T) {
		res, err := svc.BatchShortestPath(ctx, "maze", [][2]datastructure.Position{
			{pos(0, 0), pos(1, 1)},
			{pos(0, 0), pos(4, 4)},
		}, routingalgorithm.EightConnected)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.True(t, res[0].Found)
		assert.Equal(t, pos(0, 0), res[0].Path[0])
		assert.Equal(t, pos(1, 1), res[0].Path[len(res[0].Path)-1])
		assert.False(t, res[1].Found)

		_, err = svc.BatchShortestPath(ctx, "maze", nil, routingalgorithm.EightConnected)
		assert.Equal(t, server.ErrBadParamInput, errCode(err))
	})
}

func TestBatchShortestPathLargeGrid(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	_, err := svc.CreateGrid(ctx, service.CreateGridParams{Name: "besar", RowLength: 512})
	require.NoError(t, err)

	pairs := make([][2]datastructure.Position, 0, 21)
	for i := 0; i < 20; i++ {
		pairs = append(pairs, [2]datastructure.Position{pos(i*20, i*20), pos(i*20+1, i*20)})
	}
	// satu endpoint di luar grid, snapper dibangun sekali buat semua pasangan
	pairs = append(pairs, [2]datastructure.Position{pos(600, 0), pos(510, 0)})

	done := make(chan struct{})
	var res []routingalgorithm.SPSingleResult
	go func() {
		defer close(done)
		res, err = svc.BatchShortestPath(ctx, "besar", pairs, routingalgorithm.EightConnected)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("batch shortest path terlalu lama")
	}

	require.NoError(t, err)
	require.Len(t, res, 21)
	for i := 0; i < 20; i++ {
		assert.True(t, res[i].Found)
		assert.Equal(t, []datastructure.Position{pos(i*20, i*20), pos(i*20+1, i*20)}, res[i].Path)
	}
	assert.Equal(t, []datastructure.Position{pos(511, 0), pos(510, 0)}, res[20].Path)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	store := service.NewSessionStore(time.Minute)
	svc := newTestService(t, store)
	_, err := svc.CreateGrid(ctx, service.CreateGridParams{Name: "maze", RowLength: 5, Solids: wallSolids()})
	require.NoError(t, err)

	t.Run("step sampai ketemu", func(t *testing.T) {
		snap, err := svc.StartSession(ctx, "maze", pos(0, 0), pos(4, 0), routingalgorithm.FourConnected)
		require.NoError(t, err)
		assert.Equal(t, routingalgorithm.Searching, snap.State)
		assert.Equal(t, []datastructure.Position{pos(0, 0)}, snap.Open)
		assert.Empty(t, snap.Closed)

		res, err := svc.StepSession(ctx, snap.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Taken)
		assert.Equal(t, datastructure.CellEvent{Pos: pos(0, 0), State: datastructure.Closed}, res.Events[0])

		res, err = svc.StepSession(ctx, snap.ID, 1000)
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Equal(t, routingalgorithm.Found, res.State)
		assert.Equal(t, pos(4, 0), res.Path[len(res.Path)-1])
		// 4 tetangga, harus lewat satu-satunya celah di (2,4)
		assert.Contains(t, res.Path, pos(2, 4))
		assert.GreaterOrEqual(t, len(res.Path), 13)

		again, err := svc.StepSession(ctx, snap.ID, 5)
		require.NoError(t, err)
		assert.True(t, again.Found)
		assert.Equal(t, 0, again.Taken)

		got, err := svc.GetSession(ctx, snap.ID)
		require.NoError(t, err)
		assert.Equal(t, res.Path, got.Path)
		assert.Contains(t, got.Map, "S")

		saved, err := svc.GetSavedPath(ctx, "maze", pos(0, 0), pos(4, 0))
		require.NoError(t, err)
		assert.Equal(t, res.Path, saved.Path)

		// grid tersimpan gak ikut berubah
		g, err := svc.GetGrid(ctx, "maze")
		require.NoError(t, err)
		assert.Equal(t, 0, g.CountState(datastructure.Path))

		require.NoError(t, svc.DeleteSession(ctx, snap.ID))
		_, err = svc.GetSession(ctx, snap.ID)
		assert.Equal(t, server.ErrNotFound, errCode(err))
	})

	t.Run("open list habis", func(t *testing.T) {
		snap, err := svc.StartSession(ctx, "maze", pos(0, 0), pos(4, 0), routingalgorithm.FourConnected)
		require.NoError(t, err)
		_, err = svc.ToggleCell(ctx, "maze", pos(2, 4))
		require.NoError(t, err)
		// session pakai salinan grid, toggle setelah start gak ngaruh
		res, err := svc.StepSession(ctx, snap.ID, 1000)
		require.NoError(t, err)
		assert.True(t, res.Found)

		snap, err = svc.StartSession(ctx, "maze", pos(0, 0), pos(4, 0), routingalgorithm.FourConnected)
		require.NoError(t, err)
		res, err = svc.StepSession(ctx, snap.ID, 1000)
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Equal(t, routingalgorithm.Exhausted, res.State)
		assert.Empty(t, res.Path)
	})

	t.Run("step gak valid", func(t *testing.T) {
		_, err := svc.StepSession(ctx, "unknown", 1)
		assert.Equal(t, server.ErrNotFound, errCode(err))
		_, err = svc.StepSession(ctx, "unknown", 0)
		assert.Equal(t, server.ErrBadParamInput, errCode(err))
	})

	t.Run("expire & delete grid", func(t *testing.T) {
		now := time.Now()
		store.SetClock(func() time.Time { return now })
		snap, err := svc.StartSession(ctx, "maze", pos(0, 0), pos(1, 0), routingalgorithm.FourConnected)
		require.NoError(t, err)

		store.SetClock(func() time.Time { return now.Add(2 * time.Minute) })
		assert.GreaterOrEqual(t, store.Expire(), 1)
		_, err = svc.GetSession(ctx, snap.ID)
		assert.Equal(t, server.ErrNotFound, errCode(err))

		_, err = svc.StartSession(ctx, "maze", pos(0, 0), pos(1, 0), routingalgorithm.FourConnected)
		require.NoError(t, err)
		require.NoError(t, svc.DeleteGrid(ctx, "maze"))
		assert.Equal(t, 0, store.Len())
	})
}
