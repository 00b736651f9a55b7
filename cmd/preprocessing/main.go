package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"lintang/gridnavigatorx/pkg/concurrent"
	"lintang/gridnavigatorx/pkg/gridparser"
	"lintang/gridnavigatorx/pkg/kv"

	"github.com/cockroachdb/pebble"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var (
	mapDir  = flag.String("dir", "maps", "direktori file map (.txt), satu file satu grid")
	dbPath  = flag.String("db", "gridnavigatorxDB", "direktori pebble db")
	workers = flag.Int("workers", runtime.NumCPU(), "jumlah worker buat nyimpen grid")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	files, err := filepath.Glob(filepath.Join(*mapDir, "*.txt"))
	if err != nil {
		logger.Error("invalid map dir", slog.String("dir", *mapDir), slog.String("error", err.Error()))
		os.Exit(1)
	}
	sort.Strings(files)
	if len(files) == 0 {
		logger.Warn("no map files found", slog.String("dir", *mapDir))
		return
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2][reset] parsing map files..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	items := make([]concurrent.SaveGridJobItem, 0, len(files))
	for _, f := range files {
		_ = bar.Add(1)
		gm, err := gridparser.ParseFile(f)
		if err != nil {
			logger.Warn("skip map file", slog.String("file", f), slog.String("error", err.Error()))
			continue
		}
		items = append(items, concurrent.SaveGridJobItem{
			KeyStr:    gm.Name,
			RowLength: gm.Grid.RowLength(),
			Cells:     gm.Grid.Cells(),
		})
	}

	db, err := pebble.Open(*dbPath, &pebble.Options{})
	if err != nil {
		logger.Error("failed to open pebble db", slog.String("path", *dbPath), slog.String("error", err.Error()))
		os.Exit(1)
	}
	kvDB := kv.NewKVDB(db, logger)
	defer kvDB.Close()

	if err := kvDB.CreateGridKV(items, *workers); err != nil {
		logger.Error("some grids failed to save", slog.String("error", err.Error()))
		_ = kvDB.Close()
		os.Exit(1)
	}
	logger.Info("grids imported", slog.Int("count", len(items)), slog.String("db", *dbPath))
}
