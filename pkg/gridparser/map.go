package gridparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lintang/gridnavigatorx/pkg/datastructure"
)

const (
	normalCell = '.'
	solidCell  = '#'
	startCell  = 'S'
	targetCell = 'T'
	openedCell = 'o'
	closedCell = 'x'
	pathCell   = '*'
)

var (
	ErrEmptyMap     = errors.New("map is empty")
	ErrNotSquare    = errors.New("map is not square")
	ErrUnknownCell  = errors.New("unknown cell character")
	ErrDuplicateEnd = errors.New("start/target marker used more than once")
)

// GridMap hasil parse satu file map. Start/Target nil kalau marker gak ada.
type GridMap struct {
	Name   string
	Grid   *datastructure.Grid
	Start  *datastructure.Position
	Target *datastructure.Position
}

// Parse baca map text: tiap baris satu row, '.' Normal, '#' Solid, 'S' start,
// 'T' target, 'o'/'x'/'*' jejak search (Opened/Closed/Path). Baris kosong & baris diawali "//" di-skip. Jumlah row harus sama
// dengan panjang tiap row.
func Parse(r io.Reader) (GridMap, error) {
	scanner := bufio.NewScanner(r)
	rows := []string{}
	lineNums := []int{}
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, line)
		lineNums = append(lineNums, lineNum)
	}
	if err := scanner.Err(); err != nil {
		return GridMap{}, err
	}
	if len(rows) == 0 {
		return GridMap{}, ErrEmptyMap
	}

	rowLength := len(rows)
	gm := GridMap{Grid: datastructure.NewGrid(rowLength)}
	for rowIdx, line := range rows {
		if len(line) != rowLength {
			return GridMap{}, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNotSquare, lineNums[rowIdx], len(line), rowLength)
		}
		for col, ch := range []byte(line) {
			p := datastructure.NewPosition(col, rowIdx)
			switch ch {
			case normalCell:
			case solidCell:
				_ = gm.Grid.SetCellState(p, datastructure.Solid)
			case openedCell:
				_ = gm.Grid.SetCellState(p, datastructure.Opened)
			case closedCell:
				_ = gm.Grid.SetCellState(p, datastructure.Closed)
			case pathCell:
				_ = gm.Grid.SetCellState(p, datastructure.Path)
			case startCell:
				if gm.Start != nil {
					return GridMap{}, fmt.Errorf("%w: line %d", ErrDuplicateEnd, lineNums[rowIdx])
				}
				gm.Start = &p
			case targetCell:
				if gm.Target != nil {
					return GridMap{}, fmt.Errorf("%w: line %d", ErrDuplicateEnd, lineNums[rowIdx])
				}
				gm.Target = &p
			default:
				return GridMap{}, fmt.Errorf("%w %q at line %d col %d", ErrUnknownCell, ch, lineNums[rowIdx], col)
			}
		}
	}
	return gm, nil
}

// ParseFile nama map = nama file tanpa ekstensi.
func ParseFile(path string) (GridMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return GridMap{}, err
	}
	defer f.Close()

	gm, err := Parse(f)
	if err != nil {
		return GridMap{}, fmt.Errorf("parse %s: %w", path, err)
	}
	gm.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return gm, nil
}

// Render kebalikan Parse, status search ikut digambar ('o' opened, 'x' closed, '*' path).
func Render(g datastructure.CellGrid, start, target *datastructure.Position) string {
	var sb strings.Builder
	rowLength := g.RowLength()
	for row := 0; row < rowLength; row++ {
		for col := 0; col < rowLength; col++ {
			p := datastructure.NewPosition(col, row)
			switch {
			case start != nil && *start == p:
				sb.WriteByte(startCell)
			case target != nil && *target == p:
				sb.WriteByte(targetCell)
			default:
				s, _ := g.CellState(p)
				sb.WriteByte(cellChar(s))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellChar(s datastructure.CellState) byte {
	switch s {
	case datastructure.Solid:
		return solidCell
	case datastructure.Opened:
		return openedCell
	case datastructure.Closed:
		return closedCell
	case datastructure.Path:
		return pathCell
	default:
		return normalCell
	}
}
