package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionSet(t *testing.T) {
	t.Run("toggle round-trip", func(t *testing.T) {
		s := NewSelectionSet()

		assert.True(t, s.Toggle(1))
		assert.True(t, s.Has(1))

		assert.False(t, s.Toggle(1))
		assert.False(t, s.Has(1))
		assert.Zero(t, s.Len())
	})

	t.Run("select is idempotent", func(t *testing.T) {
		s := NewSelectionSet()

		s.Select(1)
		s.Select(1)

		assert.Equal(t, 1, s.Len())
	})

	t.Run("deselect a non-member is a no-op", func(t *testing.T) {
		s := NewSelectionSet()

		s.Deselect(1)
		assert.Zero(t, s.Len())
	})

	t.Run("select-all keeps existing members", func(t *testing.T) {
		s := NewSelectionSet()

		s.Select(5)
		s.SelectAll([]int64{1, 2, 3})

		assert.Equal(t, 4, s.Len())
		assert.Equal(t, []int64{1, 2, 3, 5}, s.IDs())
	})

	t.Run("clear removes every member", func(t *testing.T) {
		s := NewSelectionSet()

		s.SelectAll([]int64{1, 2, 3})
		s.Clear()

		assert.Zero(t, s.Len())
		assert.Empty(t, s.IDs())
	})

	t.Run("IDs are sorted", func(t *testing.T) {
		s := NewSelectionSet()

		s.Select(3)
		s.Select(1)
		s.Select(2)

		assert.Equal(t, []int64{1, 2, 3}, s.IDs())
	})
}
