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
	"lintang/gridnavigatorx/pkg/server"
	"lintang/gridnavigatorx/pkg/snapping"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("search session not found")

// Session satu search bertahap di atas salinan grid. Grid tersimpan gak ikut
// berubah selama session jalan.
type Session struct {
	ID   string
	Grid string

	mu       sync.Mutex
	pf       *routingalgorithm.PathFinder
	grid     *datastructure.Grid
	saved    bool
	lastUsed time.Time
}

// SessionStore session in-memory, yang gak dipakai lebih lama dari ttl dihapus janitor.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// SetClock buat test.
func (s *SessionStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

func (s *SessionStore) add(sess *Session) {
	s.mu.Lock()
	sess.lastUsed = s.now()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
}

func (s *SessionStore) get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if ok {
		sess.lastUsed = s.now()
	}
	return sess, ok
}

func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

func (s *SessionStore) DeleteByGrid(grid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.Grid == grid {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Expire hapus session yang idle lebih dari ttl. ttl <= 0 berarti gak pernah expire.
func (s *SessionStore) Expire() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastUsed) > s.ttl {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunJanitor block sampai ctx selesai.
func (s *SessionStore) RunJanitor(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Expire(); n > 0 && logger != nil {
				logger.Debug("expired search sessions", slog.Int("count", n))
			}
		}
	}
}

type SessionSnapshot struct {
	ID     string
	Grid   string
	Start  datastructure.Position
	Target datastructure.Position
	State  routingalgorithm.SearchState
	Steps  int
	Open   []datastructure.Position
	Closed []datastructure.Position
	Path   []datastructure.Position
	Map    string
}

type StepResult struct {
	ID     string
	Found  bool
	State  routingalgorithm.SearchState
	Events []datastructure.CellEvent
	// Taken jumlah step yang beneran jalan di panggilan ini.
	Taken int
	Steps int
	Path  []datastructure.Position
}

func (sess *Session) snapshot() SessionSnapshot {
	start, target := sess.pf.Start().Pos, sess.pf.Target().Pos
	return SessionSnapshot{
		ID:     sess.ID,
		Grid:   sess.Grid,
		Start:  start,
		Target: target,
		State:  sess.pf.State(),
		Steps:  sess.pf.Steps(),
		Open:   routingalgorithm.Positions(sess.pf.Open()),
		Closed: routingalgorithm.Positions(sess.pf.Closed()),
		Path:   routingalgorithm.Positions(sess.pf.Path()),
		Map:    gridparser.Render(sess.grid, &start, &target),
	}
}

func (uc *NavigationService) getSession(id string) (*Session, error) {
	if uc.sessions == nil {
		return nil, server.WrapErrorf(ErrSessionNotFound, server.ErrNotFound, "search session %s not found", id)
	}
	sess, ok := uc.sessions.get(id)
	if !ok {
		return nil, server.WrapErrorf(ErrSessionNotFound, server.ErrNotFound, "search session %s not found", id)
	}
	return sess, nil
}

// StartSession mulai search bertahap di salinan grid. Jejak search lama di salinan dihapus.
func (uc *NavigationService) StartSession(ctx context.Context, name string, start, target datastructure.Position,
	conn routingalgorithm.Connectivity) (SessionSnapshot, error) {
	if uc.sessions == nil {
		return SessionSnapshot{}, server.WrapErrorf(nil, server.ErrInternalServerError, "search sessions are disabled")
	}
	g, err := uc.loadGrid(name)
	if err != nil {
		return SessionSnapshot{}, err
	}
	g.ClearSearch()

	s, t, err := uc.snapEndpoints(snapping.NewCellSnapper(g), start, target)
	if err != nil {
		return SessionSnapshot{}, err
	}

	pf := routingalgorithm.NewPathFinder(g, routingalgorithm.WithStepConnectivity(conn))
	pf.StartPathFinding(routingalgorithm.NewStartNode(s, t), routingalgorithm.NewNode(t, 0, 0))

	sess := &Session{
		ID:   uuid.NewString(),
		Grid: name,
		pf:   pf,
		grid: g,
	}
	uc.sessions.add(sess)
	uc.log.Debug("search session started", slog.String("session", sess.ID), slog.String("grid", name),
		slog.String("start", s.String()), slog.String("target", t.String()))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// StepSession jalanin sampai n step, berhenti lebih awal kalau target ketemu
// atau open list habis.
func (uc *NavigationService) StepSession(ctx context.Context, id string, n int) (StepResult, error) {
	if n < 1 {
		return StepResult{}, server.WrapErrorf(nil, server.ErrBadParamInput, "steps must be positive, got %d", n)
	}
	sess, err := uc.getSession(id)
	if err != nil {
		return StepResult{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	res := StepResult{ID: id, Events: []datastructure.CellEvent{}}
	for i := 0; i < n; i++ {
		if sess.pf.State() != routingalgorithm.Searching {
			break
		}
		found, events, err := sess.pf.UpdatePathFinding()
		res.Taken++
		sess.grid.Apply(events)
		res.Events = append(res.Events, events...)
		if errors.Is(err, routingalgorithm.ErrNoPath) {
			break
		}
		if err != nil {
			return StepResult{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
		}
		if found {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	res.State = sess.pf.State()
	res.Found = res.State == routingalgorithm.Found
	res.Steps = sess.pf.Steps()
	res.Path = routingalgorithm.Positions(sess.pf.Path())

	if res.State != routingalgorithm.Searching && !sess.saved {
		sess.saved = true
		uc.saveSessionPath(sess)
	}
	return res, nil
}

func (uc *NavigationService) saveSessionPath(sess *Session) {
	path := sess.pf.Path()
	cost := 0
	if len(path) > 0 {
		cost = path[len(path)-1].HCost
	}
	positions := routingalgorithm.Positions(path)
	rec := pathRecord(ShortestPathResult{
		Grid:          sess.Grid,
		Start:         sess.pf.Start().Pos,
		Target:        sess.pf.Target().Pos,
		Path:          positions,
		Polyline:      datastructure.RenderPath(positions),
		Cost:          cost,
		ExpandedNodes: len(sess.pf.Closed()),
		Found:         sess.pf.State() == routingalgorithm.Found,
	})
	if err := uc.KV.SavePath(rec); err != nil {
		uc.log.Warn("failed to save session path", slog.String("session", sess.ID), slog.String("error", err.Error()))
	}
}

func (uc *NavigationService) GetSession(ctx context.Context, id string) (SessionSnapshot, error) {
	sess, err := uc.getSession(id)
	if err != nil {
		return SessionSnapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

func (uc *NavigationService) DeleteSession(ctx context.Context, id string) error {
	if uc.sessions == nil || !uc.sessions.Delete(id) {
		return server.WrapErrorf(ErrSessionNotFound, server.ErrNotFound, "search session %s not found", id)
	}
	return nil
}
