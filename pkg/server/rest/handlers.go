package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lintang/gridnavigatorx/pkg/datastructure"
	"lintang/gridnavigatorx/pkg/engine/routingalgorithm"
	"lintang/gridnavigatorx/pkg/gridparser"
	"lintang/gridnavigatorx/pkg/server"
	"lintang/gridnavigatorx/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	CreateGrid(ctx context.Context, p service.CreateGridParams) (*datastructure.Grid, error)
	GetGrid(ctx context.Context, name string) (*datastructure.Grid, error)
	RenderGrid(ctx context.Context, name string) (string, error)
	ListGrids(ctx context.Context) ([]string, error)
	DeleteGrid(ctx context.Context, name string) error
	ToggleCell(ctx context.Context, name string, p datastructure.Position) (datastructure.CellState, error)
	SetCells(ctx context.Context, name string, cells []datastructure.CellEvent) (*datastructure.Grid, error)
	ResetGrid(ctx context.Context, name string) (*datastructure.Grid, error)
	ClearSearch(ctx context.Context, name string) (*datastructure.Grid, error)

	ShortestPath(ctx context.Context, name string, start, target datastructure.Position, conn routingalgorithm.Connectivity) (service.ShortestPathResult, error)
	GetSavedPath(ctx context.Context, name string, start, target datastructure.Position) (service.ShortestPathResult, error)
	BatchShortestPath(ctx context.Context, name string, pairs [][2]datastructure.Position, conn routingalgorithm.Connectivity) ([]routingalgorithm.SPSingleResult, error)

	StartSession(ctx context.Context, name string, start, target datastructure.Position, conn routingalgorithm.Connectivity) (service.SessionSnapshot, error)
	StepSession(ctx context.Context, id string, n int) (service.StepResult, error)
	GetSession(ctx context.Context, id string) (service.SessionSnapshot, error)
	DeleteSession(ctx context.Context, id string) error
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *metrics) {
	handler := &NavigationHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/grids", func(r chi.Router) {
			r.Get("/", handler.listGrids)
			r.Post("/", handler.createGrid)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", handler.getGrid)
				r.Delete("/", handler.deleteGrid)
				r.Get("/map", handler.renderGrid)
				r.Post("/toggle", handler.toggleCell)
				r.Put("/cells", handler.setCells)
				r.Post("/reset", handler.resetGrid)
				r.Post("/clear", handler.clearSearch)
				r.Post("/shortest-path", handler.shortestPath)
				r.Get("/paths", handler.getSavedPath)
				r.Post("/batch", handler.batchShortestPath)
				r.Post("/sessions", handler.startSession)
			})
		})
		r.Route("/api/sessions/{id}", func(r chi.Router) {
			r.Get("/", handler.getSession)
			r.Post("/step", handler.stepSession)
			r.Delete("/", handler.deleteSession)
		})
		r.Get("/api/hello", handler.Hello)
	})
}

// validateStruct return nil kalau valid, kalau nggak render error validasi yang udah ditranslate.
func validateStruct(data interface{}) render.Renderer {
	validate := validator.New()
	if err := validate.Struct(data); err != nil {
		var vErrs validator.ValidationErrors
		if !errors.As(err, &vErrs) {
			return ErrInvalidRequest(err)
		}
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(vErrs, trans)
		return ErrValidation(err, vv)
	}
	return nil
}

// Cell model info
//
//	@Description	posisi cell di grid, col = x dan row = y
type Cell struct {
	Col *int `json:"col" validate:"required,min=0"`
	Row *int `json:"row" validate:"required,min=0"`
}

func (c Cell) pos() datastructure.Position {
	return datastructure.NewPosition(*c.Col, *c.Row)
}

// GridResponse model info
//
//	@Description	response body grid, cells urut row-major
type GridResponse struct {
	Name      string                    `json:"name"`
	RowLength int                       `json:"row_length"`
	Cells     []datastructure.CellState `json:"cells" swaggertype:"array,string"`
	Solids    int                       `json:"solids"`
	Map       string                    `json:"map"`
}

func NewGridResponse(name string, g *datastructure.Grid) *GridResponse {
	return &GridResponse{
		Name:      name,
		RowLength: g.RowLength(),
		Cells:     g.Cells(),
		Solids:    g.CountState(datastructure.Solid),
		Map:       gridparser.Render(g, nil, nil),
	}
}

// RandomObstacles model info
//
//	@Description	parameter obstacle random (random walk bergerombol)
type RandomObstacles struct {
	Clusters int     `json:"clusters" validate:"min=0,max=1000"`
	Steps    int     `json:"steps" validate:"min=0,max=10000"`
	Density  float64 `json:"density" validate:"gte=0,lte=1"`
	Seed     uint64  `json:"seed"`
}

// CreateGridRequest model info
//
//	@Description	request body buat bikin grid baru
type CreateGridRequest struct {
	Name      string           `json:"name" validate:"required,max=64,excludesall=/:?#"`
	RowLength int              `json:"row_length" validate:"required,min=1,max=1024"`
	Solids    []Cell           `json:"solids" validate:"omitempty,dive"`
	Random    *RandomObstacles `json:"random,omitempty" validate:"omitempty"`
	Keep      []Cell           `json:"keep" validate:"omitempty,dive"`
}

func (s *CreateGridRequest) Bind(r *http.Request) error {
	if s.Name == "" || s.RowLength == 0 {
		return errors.New("invalid request")
	}
	return nil
}

func positions(cells []Cell) []datastructure.Position {
	pp := make([]datastructure.Position, 0, len(cells))
	for _, c := range cells {
		pp = append(pp, c.pos())
	}
	return pp
}

// createGrid
//
//	@Summary		bikin grid baru.
//	@Description	bikin grid persegi baru, bisa sekalian isi cell solid atau obstacle random.
//	@Tags			grids
//	@Param			body	body	CreateGridRequest	true	"request body grid baru"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/grids [post]
//	@Success		201	{object}	GridResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) createGrid(w http.ResponseWriter, r *http.Request) {
	data := &CreateGridRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if rend := validateStruct(*data); rend != nil {
		render.Render(w, r, rend)
		return
	}

	params := service.CreateGridParams{
		Name:      data.Name,
		RowLength: data.RowLength,
		Solids:    positions(data.Solids),
		Keep:      positions(data.Keep),
	}
	if data.Random != nil {
		params.Random = &gridparser.GenerateOptions{
			Clusters: data.Random.Clusters,
			Steps:    data.Random.Steps,
			Density:  data.Random.Density,
			Seed:     data.Random.Seed,
		}
	}

	g, err := h.svc.CreateGrid(r.Context(), params)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, NewGridResponse(data.Name, g))
}

// ListGridsResponse model info
//
//	@Description	nama semua grid yang tersimpan
type ListGridsResponse struct {
	Grids []string `json:"grids"`
}

// listGrids
//
//	@Summary		list semua grid.
//	@Tags			grids
//	@Produce		application/json
//	@Router			/grids [get]
//	@Success		200	{object}	ListGridsResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) listGrids(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.ListGrids(r.Context())
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, ListGridsResponse{Grids: names})
}

// getGrid
//
//	@Summary		ambil satu grid.
//	@Tags			grids
//	@Param			name	path	string	true	"nama grid"
//	@Produce		application/json
//	@Router			/grids/{name} [get]
//	@Success		200	{object}	GridResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) getGrid(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	g, err := h.svc.GetGrid(r.Context(), name)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewGridResponse(name, g))
}

// renderGrid
//
//	@Summary		grid dalam format text map ('.' normal, '#' solid, 'o' opened, 'x' closed, '*' path).
//	@Tags			grids
//	@Param			name	path	string	true	"nama grid"
//	@Produce		text/plain
//	@Router			/grids/{name}/map [get]
//	@Success		200	{string}	string
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) renderGrid(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.RenderGrid(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.PlainText(w, r, m)
}

// deleteGrid
//
//	@Summary		hapus grid beserta path & session-nya.
//	@Tags			grids
//	@Param			name	path	string	true	"nama grid"
//	@Router			/grids/{name} [delete]
//	@Success		204
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) deleteGrid(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGrid(r.Context(), chi.URLParam(r, "name")); err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.NoContent(w, r)
}

// ToggleCellRequest model info
//
//	@Description	request body toggle cell normal <-> solid
type ToggleCellRequest struct {
	Cell
}

func (s *ToggleCellRequest) Bind(r *http.Request) error {
	if s.Col == nil || s.Row == nil {
		return errors.New("invalid request")
	}
	return nil
}

// ToggleCellResponse model info
//
//	@Description	status cell setelah di-toggle
type ToggleCellResponse struct {
	Col   int                     `json:"col"`
	Row   int                     `json:"row"`
	State datastructure.CellState `json:"state" swaggertype:"string"`
}

// toggleCell
//
//	@Summary		toggle satu cell.
//	@Description	cell normal jadi solid, solid jadi normal, cell bekas search jadi solid.
//	@Tags			grids
//	@Param			name	path	string				true	"nama grid"
//	@Param			body	body	ToggleCellRequest	true	"posisi cell"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/grids/{name}/toggle [post]
//	@Success		200	{object}	ToggleCellResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) toggleCell(w http.ResponseWriter, r *http.Request) {
	data := &ToggleCellRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if rend := validateStruct(*data); rend != nil {
		render.Render(w, r, rend)
		return
	}

	p := data.pos()
	state, err := h.svc.ToggleCell(r.Context(), chi.URLParam(r, "name"), p)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, ToggleCellResponse{Col: p.Col, Row: p.Row, State: state})
}

// CellStateUpdate model info
//
//	@Description	status baru buat satu cell
type CellStateUpdate struct {
	Col   *int   `json:"col" validate:"required,min=0"`
	Row   *int   `json:"row" validate:"required,min=0"`
	State string `json:"state" validate:"required,oneof=normal solid opened closed path"`
}

// SetCellsRequest model info
//
//	@Description	request body ubah status banyak cell sekaligus
type SetCellsRequest struct {
	Cells []CellStateUpdate `json:"cells" validate:"required,min=1,dive"`
}

func (s *SetCellsRequest) Bind(r *http.Request) error {
	if len(s.Cells) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// setCells
//
//	@Summary		ubah status banyak cell.
//	@Tags			grids
//	@Param			name	path	string			true	"nama grid"
//	@Param			body	body	SetCellsRequest	true	"cell yang diubah"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/grids/{name}/cells [put]
//	@Success		200	{object}	GridResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) setCells(w http.ResponseWriter, r *http.Request) {
	data := &SetCellsRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if rend := validateStruct(*data); rend != nil {
		render.Render(w, r, rend)
		return
	}

	events := make([]datastructure.CellEvent, 0, len(data.Cells))
	for _, c := range data.Cells {
		state, err := datastructure.ParseCellState(c.State)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		events = append(events, datastructure.CellEvent{Pos: datastructure.NewPosition(*c.Col, *c.Row), State: state})
	}

	name := chi.URLParam(r, "name")
	g, err := h.svc.SetCells(r.Context(), name, events)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewGridResponse(name, g))
}

// resetGrid
//
//	@Summary		semua cell jadi normal, termasuk solid.
//	@Tags			grids
//	@Param			name	path	string	true	"nama grid"
//	@Produce		application/json
//	@Router			/grids/{name}/reset [post]
//	@Success		200	{object}	GridResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) resetGrid(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	g, err := h.svc.ResetGrid(r.Context(), name)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewGridResponse(name, g))
}

// clearSearch
//
//	@Summary		hapus jejak search (opened/closed/path), solid tetap.
//	@Tags			grids
//	@Param			name	path	string	true	"nama grid"
//	@Produce		application/json
//	@Router			/grids/{name}/clear [post]
//	@Success		200	{object}	GridResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) clearSearch(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	g, err := h.svc.ClearSearch(r.Context(), name)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewGridResponse(name, g))
}

// ShortestPathRequest model info
//
//	@Description	request body shortest path antara 2 cell. connectivity 4 atau 8, default 8
type ShortestPathRequest struct {
	Start        Cell `json:"start" validate:"required"`
	Target       Cell `json:"target" validate:"required"`
	Connectivity int  `json:"connectivity" validate:"omitempty,oneof=4 8"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.Start.Col == nil || s.Start.Row == nil || s.Target.Col == nil || s.Target.Row == nil {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathResponse	model info
//
//	@Description	response body shortest path. cost = akumulasi cost langkah (lurus 1, diagonal 14)
type ShortestPathResponse struct {
	Grid          string                   `json:"grid"`
	Start         datastructure.Position   `json:"start"`
	Target        datastructure.Position   `json:"target"`
	Path          string                   `json:"path"`
	Route         []datastructure.Position `json:"route"`
	Cost          int                      `json:"cost"`
	ExpandedNodes int                      `json:"expanded_nodes"`
	Found         bool                     `json:"found"`
	Alg           string                   `json:"algorithm"`
}

func NewShortestPathResponse(sp service.ShortestPathResult) *ShortestPathResponse {
	route := sp.Path
	if route == nil {
		route = []datastructure.Position{}
	}
	return &ShortestPathResponse{
		Grid:          sp.Grid,
		Start:         sp.Start,
		Target:        sp.Target,
		Path:          sp.Polyline,
		Route:         route,
		Cost:          sp.Cost,
		ExpandedNodes: sp.ExpandedNodes,
		Found:         sp.Found,
		Alg:           "A* Algorithm",
	}
}

// shortestPath
//
//	@Summary		shortest path query antara 2 cell di grid.
//	@Description	shortest path query antara 2 cell. Start/target solid atau di luar grid digeser ke cell terdekat yang bisa dilewati. Jejak search disimpan ke grid.
//	@Tags			navigations
//	@Param			name	path	string				true	"nama grid"
//	@Param			body	body	ShortestPathRequest	true	"request body query shortest path antara 2 cell"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/grids/{name}/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if rend := validateStruct(*data); rend != nil {
		render.Render(w, r, rend)
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues("find_path").Inc()
	sp, err := h.svc.ShortestPath(r.Context(), chi.URLParam(r, "name"), data.Start.pos(), data.Target.pos(),
		routingalgorithm.Connectivity(data.Connectivity))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.ExpandedNodes.Observe(float64(sp.ExpandedNodes))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(sp))
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, fmt.Errorf("query param %s is required", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("query param %s must be a non-negative integer", key)
	}
	return n, nil
}

// getSavedPath
//
//	@Summary		ambil hasil shortest path terakhir yang tersimpan.
//	@Tags			navigations
//	@Param			name		path	string	true	"nama grid"
//	@Param			start_col	query	int		true	"col start"
//	@Param			start_row	query	int		true	"row start"
//	@Param			target_col	query	int		true	"col target"
//	@Param			target_row	query	int		true	"row target"
//	@Produce		application/json
//	@Router			/grids/{name}/paths [get]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) getSavedPath(w http.ResponseWriter, r *http.Request) {
	var vals [4]int
	for i, key := range [...]string{"start_col", "start_row", "target_col", "target_row"} {
		v, err := queryInt(r, key)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		vals[i] = v
	}

	sp, err := h.svc.GetSavedPath(r.Context(), chi.URLParam(r, "name"),
		datastructure.NewPosition(vals[0], vals[1]), datastructure.NewPosition(vals[2], vals[3]))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(sp))
}

// SrcTargetPair model info
//
//	@Description	satu pasang start-target
type SrcTargetPair struct {
	Start  Cell `json:"start" validate:"required"`
	Target Cell `json:"target" validate:"required"`
}

// BatchRequest model info
//
//	@Description	request body banyak query shortest path sekaligus di satu grid
type BatchRequest struct {
	Pairs        []SrcTargetPair `json:"pairs" validate:"required,min=1,max=1000,dive"`
	Connectivity int             `json:"connectivity" validate:"omitempty,oneof=4 8"`
}

func (s *BatchRequest) Bind(r *http.Request) error {
	if len(s.Pairs) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// BatchResult model info
//
//	@Description	hasil satu pasang di batch query
type BatchResult struct {
	Start         datastructure.Position   `json:"start"`
	Target        datastructure.Position   `json:"target"`
	Path          string                   `json:"path"`
	Route         []datastructure.Position `json:"route"`
	Cost          int                      `json:"cost"`
	ExpandedNodes int                      `json:"expanded_nodes"`
	Found         bool                     `json:"found"`
}

// BatchResponse model info
//
//	@Description	response body batch query, urut sesuai pairs di request
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

func RenderBatchResponse(res []routingalgorithm.SPSingleResult) *BatchResponse {
	out := make([]BatchResult, 0, len(res))
	for _, sp := range res {
		route := sp.Path
		if route == nil {
			route = []datastructure.Position{}
		}
		out = append(out, BatchResult{
			Start:         sp.Source,
			Target:        sp.Dest,
			Path:          datastructure.RenderPath(route),
			Route:         route,
			Cost:          sp.Cost,
			ExpandedNodes: sp.ExpandedNodes,
			Found:         sp.Found,
		})
	}
	return &BatchResponse{Results: out}
}

// batchShortestPath
//
//	@Summary		banyak shortest path query sekaligus.
//	@Description	semua pasangan diselesaikan paralel pakai worker pool. Grid tersimpan gak diubah.
//	@Tags			navigations
//	@Param			name	path	string			true	"nama grid"
//	@Param			body	body	BatchRequest	true	"pasangan start-target"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/grids/{name}/batch [post]
//	@Success		200	{object}	BatchResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) batchShortestPath(w http.ResponseWriter, r *http.Request) {
	data := &BatchRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if rend := validateStruct(*data); rend != nil {
		render.Render(w, r, rend)
		return
	}

	pairs := make([][2]datastructure.Position, 0, len(data.Pairs))
	for _, p := range data.Pairs {
		pairs = append(pairs, [2]datastructure.Position{p.Start.pos(), p.Target.pos()})
	}

	h.promeMetrics.SPQueryCount.WithLabelValues("batch").Add(float64(len(pairs)))
	res, err := h.svc.BatchShortestPath(r.Context(), chi.URLParam(r, "name"), pairs, routingalgorithm.Connectivity(data.Connectivity))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderBatchResponse(res))
}

// SessionResponse model info
//
//	@Description	snapshot search bertahap. map pakai format text: S start, T target, o opened, x closed, * path
type SessionResponse struct {
	ID     string                   `json:"id"`
	Grid   string                   `json:"grid"`
	Start  datastructure.Position   `json:"start"`
	Target datastructure.Position   `json:"target"`
	State  string                   `json:"state"`
	Steps  int                      `json:"steps"`
	Open   []datastructure.Position `json:"open"`
	Closed []datastructure.Position `json:"closed"`
	Path   []datastructure.Position `json:"path"`
	Map    string                   `json:"map"`
}

func NewSessionResponse(s service.SessionSnapshot) *SessionResponse {
	return &SessionResponse{
		ID:     s.ID,
		Grid:   s.Grid,
		Start:  s.Start,
		Target: s.Target,
		State:  s.State.String(),
		Steps:  s.Steps,
		Open:   s.Open,
		Closed: s.Closed,
		Path:   s.Path,
		Map:    s.Map,
	}
}

// startSession
//
//	@Summary		mulai search bertahap.
//	@Description	mulai search bertahap di salinan grid, default 4 tetangga. Maju pakai /sessions/{id}/step.
//	@Tags			sessions
//	@Param			name	path	string				true	"nama grid"
//	@Param			body	body	ShortestPathRequest	true	"start, target, connectivity"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/grids/{name}/sessions [post]
//	@Success		201	{object}	SessionResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) startSession(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if rend := validateStruct(*data); rend != nil {
		render.Render(w, r, rend)
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues("session").Inc()
	snap, err := h.svc.StartSession(r.Context(), chi.URLParam(r, "name"), data.Start.pos(), data.Target.pos(),
		routingalgorithm.Connectivity(data.Connectivity))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, NewSessionResponse(snap))
}

// StepRequest model info
//
//	@Description	jumlah step maksimal yang dijalanin
type StepRequest struct {
	Steps int `json:"steps" validate:"required,min=1,max=100000"`
}

func (s *StepRequest) Bind(r *http.Request) error {
	if s.Steps == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// CellEventResponse model info
//
//	@Description	perubahan status satu cell
type CellEventResponse struct {
	Col   int    `json:"col"`
	Row   int    `json:"row"`
	State string `json:"state"`
}

// StepResponse model info
//
//	@Description	hasil step search bertahap
type StepResponse struct {
	ID     string                   `json:"id"`
	Found  bool                     `json:"found"`
	State  string                   `json:"state"`
	Taken  int                      `json:"taken"`
	Steps  int                      `json:"steps"`
	Events []CellEventResponse      `json:"events"`
	Path   []datastructure.Position `json:"path"`
}

func NewStepResponse(res service.StepResult) *StepResponse {
	events := make([]CellEventResponse, 0, len(res.Events))
	for _, ev := range res.Events {
		events = append(events, CellEventResponse{Col: ev.Pos.Col, Row: ev.Pos.Row, State: ev.State.String()})
	}
	return &StepResponse{
		ID:     res.ID,
		Found:  res.Found,
		State:  res.State.String(),
		Taken:  res.Taken,
		Steps:  res.Steps,
		Events: events,
		Path:   res.Path,
	}
}

// stepSession
//
//	@Summary		jalanin search bertahap beberapa step.
//	@Description	berhenti lebih awal kalau target ketemu atau open list habis. events = perubahan status cell urut kejadian.
//	@Tags			sessions
//	@Param			id		path	string		true	"id session"
//	@Param			body	body	StepRequest	true	"jumlah step"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/sessions/{id}/step [post]
//	@Success		200	{object}	StepResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) stepSession(w http.ResponseWriter, r *http.Request) {
	data := &StepRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if rend := validateStruct(*data); rend != nil {
		render.Render(w, r, rend)
		return
	}

	res, err := h.svc.StepSession(r.Context(), chi.URLParam(r, "id"), data.Steps)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.StepCount.Add(float64(res.Taken))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewStepResponse(res))
}

// getSession
//
//	@Summary		snapshot search bertahap.
//	@Tags			sessions
//	@Param			id	path	string	true	"id session"
//	@Produce		application/json
//	@Router			/sessions/{id} [get]
//	@Success		200	{object}	SessionResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) getSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewSessionResponse(snap))
}

// deleteSession
//
//	@Summary		hapus session.
//	@Tags			sessions
//	@Param			id	path	string	true	"id session"
//	@Router			/sessions/{id} [delete]
//	@Success		204
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.NoContent(w, r)
}

func (h *NavigationHandler) Hello(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"message": "hello from gridnavigatorx"})
}

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		return ErrInternalServerErrorRend(err)
	}

	statusText := ""
	switch code {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrInternalServerError:
		return http.StatusInternalServerError
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrConflict:
		return http.StatusConflict
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func translateError(validatorErrs validator.ValidationErrors, trans ut.Translator) (errs []error) {
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
