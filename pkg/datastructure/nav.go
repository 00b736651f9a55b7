package datastructure

import (
	"github.com/twpayne/go-polyline"
)

// RenderPath encode path jadi polyline string, urutan koordinat [row, col].
func RenderPath(path []Position) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{float64(p.Row), float64(p.Col)})
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePath kebalikan RenderPath.
func DecodePath(s string) ([]Position, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, err
	}
	path := make([]Position, 0, len(coords))
	for _, c := range coords {
		path = append(path, Position{Row: int(c[0] + 0.5), Col: int(c[1] + 0.5)})
	}
	return path, nil
}
