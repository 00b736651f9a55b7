package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"lintang/gridnavigatorx/pkg/datastructure"
	"lintang/gridnavigatorx/pkg/engine/routingalgorithm"
	"lintang/gridnavigatorx/pkg/gridparser"
	"lintang/gridnavigatorx/pkg/kv"
	"lintang/gridnavigatorx/pkg/server"
	"lintang/gridnavigatorx/pkg/snapping"
)

type GridStore interface {
	SaveGrid(name string, g *datastructure.Grid) error
	GetGrid(name string) (*datastructure.Grid, error)
	HasGrid(name string) (bool, error)
	DeleteGrid(name string) error
	ListGrids() ([]string, error)
	SavePath(rec kv.PathRecord) error
	GetPath(grid string, start, target datastructure.Position) (kv.PathRecord, error)
}

type NavigationService struct {
	KV         GridStore
	sessions   *SessionStore
	numWorkers int
	log        *slog.Logger

	// lock per nama grid, read-modify-write grid harus serial.
	locks sync.Map
}

func NewNavigationService(store GridStore, sessions *SessionStore, numWorkers int, logger *slog.Logger) *NavigationService {
	if logger == nil {
		logger = slog.Default()
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &NavigationService{KV: store, sessions: sessions, numWorkers: numWorkers, log: logger}
}

func (uc *NavigationService) lock(name string) func() {
	mu, _ := uc.locks.LoadOrStore(name, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func (uc *NavigationService) loadGrid(name string) (*datastructure.Grid, error) {
	g, err := uc.KV.GetGrid(name)
	if errors.Is(err, kv.ErrGridNotFound) {
		return nil, server.WrapErrorf(err, server.ErrNotFound, "grid %s not found", name)
	}
	if err != nil {
		uc.log.Error("failed to load grid", slog.String("grid", name), slog.String("error", err.Error()))
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	return g, nil
}

func (uc *NavigationService) saveGrid(name string, g *datastructure.Grid) error {
	if err := uc.KV.SaveGrid(name, g); err != nil {
		uc.log.Error("failed to save grid", slog.String("grid", name), slog.String("error", err.Error()))
		return server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	return nil
}

type CreateGridParams struct {
	Name      string
	RowLength int
	Solids    []datastructure.Position
	// Random nil = gak ada obstacle random.
	Random *gridparser.GenerateOptions
	// Keep cell yang gak boleh kena obstacle random.
	Keep []datastructure.Position
}

func (uc *NavigationService) CreateGrid(ctx context.Context, p CreateGridParams) (*datastructure.Grid, error) {
	if p.RowLength < 1 {
		return nil, server.WrapErrorf(nil, server.ErrBadParamInput, "row length must be positive, got %d", p.RowLength)
	}
	unlock := uc.lock(p.Name)
	defer unlock()

	exists, err := uc.KV.HasGrid(p.Name)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	if exists {
		return nil, server.WrapErrorf(nil, server.ErrConflict, "grid %s already exists", p.Name)
	}

	var g *datastructure.Grid
	if p.Random != nil {
		g = gridparser.GenerateWalls(p.RowLength, *p.Random, p.Keep...)
	} else {
		g = datastructure.NewGrid(p.RowLength)
	}
	for _, s := range p.Solids {
		if err := g.SetCellState(s, datastructure.Solid); err != nil {
			return nil, server.WrapErrorf(err, server.ErrBadParamInput, "solid cell %s is outside the grid", s)
		}
	}

	if err := uc.saveGrid(p.Name, g); err != nil {
		return nil, err
	}
	uc.log.Info("grid created", slog.String("grid", p.Name), slog.Int("row_length", p.RowLength),
		slog.Int("solids", g.CountState(datastructure.Solid)))
	return g, nil
}

// EnsureGrid bikin grid kosong kalau belum ada. Dipakai buat grid demo waktu server start.
func (uc *NavigationService) EnsureGrid(ctx context.Context, name string, rowLength int) error {
	exists, err := uc.KV.HasGrid(name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = uc.CreateGrid(ctx, CreateGridParams{Name: name, RowLength: rowLength})
	var serr *server.Error
	if errors.As(err, &serr) && serr.Code() == server.ErrConflict {
		return nil
	}
	return err
}

func (uc *NavigationService) GetGrid(ctx context.Context, name string) (*datastructure.Grid, error) {
	return uc.loadGrid(name)
}

func (uc *NavigationService) ListGrids(ctx context.Context) ([]string, error) {
	names, err := uc.KV.ListGrids()
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	return names, nil
}

func (uc *NavigationService) DeleteGrid(ctx context.Context, name string) error {
	unlock := uc.lock(name)
	defer unlock()

	err := uc.KV.DeleteGrid(name)
	if errors.Is(err, kv.ErrGridNotFound) {
		return server.WrapErrorf(err, server.ErrNotFound, "grid %s not found", name)
	}
	if err != nil {
		return server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	if uc.sessions != nil {
		uc.sessions.DeleteByGrid(name)
	}
	return nil
}

// updateGrid load, ubah, simpan grid dalam satu lock.
func (uc *NavigationService) updateGrid(name string, fn func(g *datastructure.Grid) error) (*datastructure.Grid, error) {
	unlock := uc.lock(name)
	defer unlock()

	g, err := uc.loadGrid(name)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}
	if err := uc.saveGrid(name, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ToggleCell Normal <-> Solid. Cell bekas search (opened/closed/path) jadi Solid.
func (uc *NavigationService) ToggleCell(ctx context.Context, name string, p datastructure.Position) (datastructure.CellState, error) {
	var state datastructure.CellState
	_, err := uc.updateGrid(name, func(g *datastructure.Grid) error {
		s, err := g.Toggle(p)
		if err != nil {
			return server.WrapErrorf(err, server.ErrBadParamInput, "cell %s is outside the grid", p)
		}
		state = s
		return nil
	})
	return state, err
}

func (uc *NavigationService) SetCells(ctx context.Context, name string, cells []datastructure.CellEvent) (*datastructure.Grid, error) {
	return uc.updateGrid(name, func(g *datastructure.Grid) error {
		for _, c := range cells {
			if err := g.SetCellState(c.Pos, c.State); err != nil {
				return server.WrapErrorf(err, server.ErrBadParamInput, "cell %s is outside the grid", c.Pos)
			}
		}
		return nil
	})
}

// ResetGrid semua cell jadi Normal.
func (uc *NavigationService) ResetGrid(ctx context.Context, name string) (*datastructure.Grid, error) {
	return uc.updateGrid(name, func(g *datastructure.Grid) error {
		g.Reset()
		return nil
	})
}

// ClearSearch hapus jejak search, Solid tetap.
func (uc *NavigationService) ClearSearch(ctx context.Context, name string) (*datastructure.Grid, error) {
	return uc.updateGrid(name, func(g *datastructure.Grid) error {
		g.ClearSearch()
		return nil
	})
}

type ShortestPathResult struct {
	Grid          string
	Start         datastructure.Position
	Target        datastructure.Position
	Path          []datastructure.Position
	Polyline      string
	Cost          int
	ExpandedNodes int
	Found         bool
}

// snapEndpoints geser start/target ke cell traversable terdekat kalau Solid atau di luar grid.
// Satu snapper boleh dipakai ulang buat banyak pasangan di grid yang sama.
func (uc *NavigationService) snapEndpoints(snapper *snapping.CellSnapper, start, target datastructure.Position) (datastructure.Position, datastructure.Position, error) {
	s, err := snapper.SnapToTraversable(start)
	if err != nil {
		return start, target, server.WrapErrorf(err, server.ErrBadParamInput, "grid has no traversable cell")
	}
	t, err := snapper.SnapToTraversable(target)
	if err != nil {
		return start, target, server.WrapErrorf(err, server.ErrBadParamInput, "grid has no traversable cell")
	}
	return s, t, nil
}

// ShortestPath jalanin FindPath di grid tersimpan. Jejak search lama dihapus dulu,
// event search baru diterapkan ke grid lalu grid & hasilnya disimpan.
func (uc *NavigationService) ShortestPath(ctx context.Context, name string, start, target datastructure.Position,
	conn routingalgorithm.Connectivity) (ShortestPathResult, error) {
	var sp ShortestPathResult
	_, err := uc.updateGrid(name, func(g *datastructure.Grid) error {
		g.ClearSearch()
		s, t, err := uc.snapEndpoints(snapping.NewCellSnapper(g), start, target)
		if err != nil {
			return err
		}

		pf := routingalgorithm.NewPathFinder(g, routingalgorithm.WithFindPathConnectivity(conn))
		res, err := pf.FindPath(routingalgorithm.NewStartNode(s, t), routingalgorithm.NewNode(t, 0, 0))
		if err != nil && !errors.Is(err, routingalgorithm.ErrNoPath) {
			return server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
		}
		g.Apply(res.Events)

		path := routingalgorithm.Positions(res.Path)
		sp = ShortestPathResult{
			Grid:          name,
			Start:         s,
			Target:        t,
			Path:          path,
			Polyline:      datastructure.RenderPath(path),
			Cost:          res.Cost(),
			ExpandedNodes: res.ExpandedNodes,
			Found:         res.Found,
		}
		return nil
	})
	if err != nil {
		return ShortestPathResult{}, err
	}

	if err := uc.KV.SavePath(pathRecord(sp)); err != nil {
		uc.log.Warn("failed to save path", slog.String("grid", name), slog.String("error", err.Error()))
	}
	uc.log.Debug("shortest path", slog.String("grid", name), slog.String("start", sp.Start.String()),
		slog.String("target", sp.Target.String()), slog.Bool("found", sp.Found), slog.Int("expanded", sp.ExpandedNodes))
	return sp, nil
}

func pathRecord(sp ShortestPathResult) kv.PathRecord {
	return kv.PathRecord{
		Grid:          sp.Grid,
		StartCol:      sp.Start.Col,
		StartRow:      sp.Start.Row,
		TargetCol:     sp.Target.Col,
		TargetRow:     sp.Target.Row,
		Polyline:      sp.Polyline,
		Cost:          sp.Cost,
		ExpandedNodes: sp.ExpandedNodes,
		Found:         sp.Found,
		SolvedAt:      time.Now().Unix(),
	}
}

// GetSavedPath hasil ShortestPath terakhir buat pasangan start-target (setelah snapping).
func (uc *NavigationService) GetSavedPath(ctx context.Context, name string, start, target datastructure.Position) (ShortestPathResult, error) {
	rec, err := uc.KV.GetPath(name, start, target)
	if errors.Is(err, kv.ErrPathNotFound) {
		return ShortestPathResult{}, server.WrapErrorf(err, server.ErrNotFound, "no saved path from %s to %s on grid %s", start, target, name)
	}
	if err != nil {
		return ShortestPathResult{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	path, err := datastructure.DecodePath(rec.Polyline)
	if err != nil {
		return ShortestPathResult{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	return ShortestPathResult{
		Grid:          rec.Grid,
		Start:         rec.Start(),
		Target:        rec.Target(),
		Path:          path,
		Polyline:      rec.Polyline,
		Cost:          rec.Cost,
		ExpandedNodes: rec.ExpandedNodes,
		Found:         rec.Found,
	}, nil
}

// BatchShortestPath semua pasangan diselesaikan paralel di snapshot grid, grid
// tersimpan gak diubah.
func (uc *NavigationService) BatchShortestPath(ctx context.Context, name string, pairs [][2]datastructure.Position,
	conn routingalgorithm.Connectivity) ([]routingalgorithm.SPSingleResult, error) {
	g, err := uc.loadGrid(name)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, server.WrapErrorf(routingalgorithm.ErrEmptyQuery, server.ErrBadParamInput, "pairs must not be empty")
	}

	snapper := snapping.NewCellSnapper(g)
	snapped := make([][2]datastructure.Position, len(pairs))
	for i, p := range pairs {
		s, t, err := uc.snapEndpoints(snapper, p[0], p[1])
		if err != nil {
			return nil, err
		}
		snapped[i] = [2]datastructure.Position{s, t}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mm := routingalgorithm.NewManyToMany(g, uc.numWorkers, routingalgorithm.WithFindPathConnectivity(conn))
	return mm.FindPaths(snapped), nil
}

// RenderGrid gambar grid dalam format text map.
func (uc *NavigationService) RenderGrid(ctx context.Context, name string) (string, error) {
	g, err := uc.loadGrid(name)
	if err != nil {
		return "", err
	}
	return gridparser.Render(g, nil, nil), nil
}
