package util

import (
	"golang.org/x/exp/constraints"
)

func ReverseG[T any](arr []T) {
	for i, j := 0, len(arr)-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
}

func AbsG[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Chebyshev max(|dx|, |dy|).
func Chebyshev[T constraints.Signed](ax, ay, bx, by T) T {
	return max(AbsG(bx-ax), AbsG(by-ay))
}


// Manhattan |dx| + |dy|.
func Manhattan[T constraints.Signed](ax, ay, bx, by T) T {
	return AbsG(bx-ax) + AbsG(by-ay)
}
