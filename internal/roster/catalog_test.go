package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := testCatalog()

	t.Run("Find", func(t *testing.T) {
		shift, ok := c.Find(10)
		require.True(t, ok)
		assert.Equal(t, "早班", shift.Name)

		// 查不到不是错误，调用方按"未分配"展示
		_, ok = c.Find(999)
		assert.False(t, ok)
	})

	t.Run("List preserves order and is a copy", func(t *testing.T) {
		shifts := c.List()
		require.Len(t, shifts, 3)
		assert.Equal(t, int64(10), shifts[0].ID)
		assert.Equal(t, int64(30), shifts[2].ID)

		shifts[0] = nil
		again := c.List()
		assert.NotNil(t, again[0])
	})
}
