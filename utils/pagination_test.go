package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationBounds(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	t.Run("defaults", func(t *testing.T) {
		offset, limit := PaginationBounds(nil, nil)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 20, limit)
	})

	t.Run("explicit values", func(t *testing.T) {
		offset, limit := PaginationBounds(intPtr(40), intPtr(50))
		assert.Equal(t, 40, offset)
		assert.Equal(t, 50, limit)
	})

	t.Run("limit capped", func(t *testing.T) {
		_, limit := PaginationBounds(nil, intPtr(5000))
		assert.Equal(t, 100, limit)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		offset, limit := PaginationBounds(intPtr(-1), intPtr(0))
		assert.Equal(t, 0, offset)
		assert.Equal(t, 20, limit)
	})
}
