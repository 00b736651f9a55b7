package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lintang/gridnavigatorx/docs"
	"lintang/gridnavigatorx/pkg/config"
	"lintang/gridnavigatorx/pkg/kv"
	"lintang/gridnavigatorx/pkg/server/rest"
	"lintang/gridnavigatorx/pkg/server/rest/service"

	"github.com/andybalholm/brotli"
	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	configFile = flag.String("config", "", "file config yaml, kosong = default")
	listenAddr = flag.String("listenaddr", "", "server listen address, override config")
	dbPath     = flag.String("db", "", "direktori pebble db, override config")
	workers    = flag.Int("workers", 0, "jumlah worker buat batch query, override config")
)

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(level))
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

//	@title			gridnavigatorx lintangbs API
//	@version		1.0
//	@description	A* pathfinding on square grids in go

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	db, err := pebble.Open(cfg.DBPath, &pebble.Options{})
	if err != nil {
		logger.Error("failed to open pebble db", slog.String("path", cfg.DBPath), slog.String("error", err.Error()))
		os.Exit(1)
	}
	kvDB := kv.NewKVDB(db, logger)
	defer kvDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := service.NewSessionStore(cfg.SessionTTL)
	go sessions.RunJanitor(ctx, time.Minute, logger)

	navigatorSvc := service.NewNavigationService(kvDB, sessions, cfg.Workers, logger)
	if cfg.DemoGrid.Name != "" {
		seedDemoGrid(ctx, navigatorSvc, cfg.DemoGrid, logger)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	compressor := middleware.NewCompressor(5, "application/json", "text/plain")
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	r.Use(compressor.Handler)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	docs.SwaggerInfo.Host = cfg.SwaggerHost
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+cfg.SwaggerHost+"/swagger/doc.json"), //The url pointing to API definition
	))

	rest.NavigatorRouter(r, navigatorSvc, m)

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server started", slog.String("addr", cfg.ListenAddr), slog.String("db", cfg.DBPath))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", slog.String("error", err.Error()))
	}
}

// seedDemoGrid bikin grid demo kosong lalu selesaikan start -> target sekali biar ada hasil awal.
func seedDemoGrid(ctx context.Context, svc *service.NavigationService, demo config.DemoGrid, logger *slog.Logger) {
	if err := svc.EnsureGrid(ctx, demo.Name, demo.RowLength); err != nil {
		logger.Warn("failed to create demo grid", slog.String("grid", demo.Name), slog.String("error", err.Error()))
		return
	}
	sp, err := svc.ShortestPath(ctx, demo.Name, demo.Start, demo.Target, 0)
	if err != nil {
		logger.Warn("failed to solve demo grid", slog.String("grid", demo.Name), slog.String("error", err.Error()))
		return
	}
	logger.Info("demo grid ready", slog.String("grid", demo.Name), slog.Bool("found", sp.Found),
		slog.Int("cost", sp.Cost), slog.Int("expanded", sp.ExpandedNodes))
}
