package util_test

import (
	"testing"

	"lintang/gridnavigatorx/pkg/util"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Run("chebyshev ambil selisih terbesar", func(t *testing.T) {
		assert.Equal(t, 4, util.Chebyshev(0, 0, 4, 1))
		assert.Equal(t, 11, util.Chebyshev(17, 14, 6, 4))
		assert.Equal(t, 0, util.Chebyshev(3, 3, 3, 3))
	})

	t.Run("manhattan jumlah selisih", func(t *testing.T) {
		assert.Equal(t, 5, util.Manhattan(0, 0, 4, 1))
		assert.Equal(t, 21, util.Manhattan(17, 14, 6, 4))
		assert.Equal(t, 1, util.Manhattan(2, 3, 2, 2))
		assert.Equal(t, 0, util.Manhattan(3, 3, 3, 3))
	})
}

func TestReverseG(t *testing.T) {
	arr := []int{1, 2, 3, 4}
	util.ReverseG(arr)
	assert.Equal(t, []int{4, 3, 2, 1}, arr)

	empty := []int{}
	util.ReverseG(empty)
	assert.Empty(t, empty)
}
