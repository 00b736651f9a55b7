package kv

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lintang/gridnavigatorx/pkg/concurrent"
	"lintang/gridnavigatorx/pkg/datastructure"

	"github.com/cockroachdb/pebble"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

const (
	gridPrefix = "grid:"
	pathPrefix = "path:"
)

var (
	ErrGridNotFound = errors.New("grid not found")
	ErrPathNotFound = errors.New("path not found")
)

type KVDB struct {
	db  *pebble.DB
	log *slog.Logger
}

func NewKVDB(db *pebble.DB, logger *slog.Logger) *KVDB {
	if logger == nil {
		logger = slog.Default()
	}
	return &KVDB{db: db, log: logger}
}

func gridKey(name string) []byte {
	return []byte(gridPrefix + name)
}

func pathKeyPrefix(grid string) string {
	return pathPrefix + grid + ":"
}

func pathKey(grid string, start, target datastructure.Position) []byte {
	return []byte(fmt.Sprintf("%s%d,%d-%d,%d", pathKeyPrefix(grid), start.Col, start.Row, target.Col, target.Row))
}

// prefixUpperBound key terkecil yang lebih besar dari semua key ber-prefix p.
func prefixUpperBound(p []byte) []byte {
	end := make([]byte, len(p))
	copy(end, p)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func (k *KVDB) SaveGrid(name string, g *datastructure.Grid) error {
	val, err := CompressGrid(NewGridRecord(name, g, time.Now().Unix()))
	if err != nil {
		return fmt.Errorf("compress grid %s: %w", name, err)
	}
	if err := k.db.Set(gridKey(name), val, pebble.Sync); err != nil {
		return fmt.Errorf("save grid %s: %w", name, err)
	}
	return nil
}

func (k *KVDB) GetGrid(name string) (*datastructure.Grid, error) {
	val, closer, err := k.db.Get(gridKey(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrGridNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get grid %s: %w", name, err)
	}
	defer closer.Close()

	rec, err := LoadGrid(val)
	if err != nil {
		return nil, fmt.Errorf("load grid %s: %w", name, err)
	}
	return rec.ToGrid(), nil
}

func (k *KVDB) HasGrid(name string) (bool, error) {
	_, closer, err := k.db.Get(gridKey(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	closer.Close()
	return true, nil
}

// DeleteGrid hapus grid beserta semua path yang tersimpan buat grid itu.
func (k *KVDB) DeleteGrid(name string) error {
	ok, err := k.HasGrid(name)
	if err != nil {
		return err
	}
	if !ok {
		return ErrGridNotFound
	}

	batch := k.db.NewBatch()
	defer batch.Close()
	if err := batch.Delete(gridKey(name), nil); err != nil {
		return err
	}
	prefix := []byte(pathKeyPrefix(name))
	if err := batch.DeleteRange(prefix, prefixUpperBound(prefix), nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

func (k *KVDB) ListGrids() ([]string, error) {
	prefix := []byte(gridPrefix)
	iter, err := k.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	names := []string{}
	for iter.First(); iter.Valid(); iter.Next() {
		names = append(names, strings.TrimPrefix(string(iter.Key()), gridPrefix))
	}
	return names, iter.Error()
}

func (k *KVDB) SavePath(rec PathRecord) error {
	bb, err := Encode(rec)
	if err != nil {
		return err
	}
	return k.db.Set(pathKey(rec.Grid, rec.Start(), rec.Target()), bb, pebble.Sync)
}

func (k *KVDB) GetPath(grid string, start, target datastructure.Position) (PathRecord, error) {
	val, closer, err := k.db.Get(pathKey(grid, start, target))
	if errors.Is(err, pebble.ErrNotFound) {
		return PathRecord{}, ErrPathNotFound
	}
	if err != nil {
		return PathRecord{}, err
	}
	defer closer.Close()
	return Decode[PathRecord](val)
}

// SaveGridJob job func buat worker pool CreateGridKV.
func (k *KVDB) SaveGridJob(item concurrent.SaveGridJobItem) error {
	g := datastructure.NewGridFromCells(item.RowLength, item.Cells)
	if err := k.SaveGrid(item.KeyStr, g); err != nil {
		k.log.Error("failed to save grid", slog.String("grid", item.KeyStr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// CreateGridKV simpan banyak grid sekaligus pakai worker pool, progress ditampilkan di stdout.
func (k *KVDB) CreateGridKV(items []concurrent.SaveGridJobItem, numWorkers int) error {
	bar := progressbar.NewOptions(len(items),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][2/2][reset] saving grid to pebble db..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	workers := concurrent.NewWorkerPool[concurrent.SaveGridJobItem, error](numWorkers, len(items))
	for _, item := range items {
		workers.AddJob(item)
	}
	workers.Close()

	workers.Start(k.SaveGridJob)
	workers.Wait()

	var errs []error
	for err := range workers.CollectResults() {
		_ = bar.Add(1)
		if err != nil {
			errs = append(errs, err)
		}
	}
	fmt.Println("")
	return errors.Join(errs...)
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
