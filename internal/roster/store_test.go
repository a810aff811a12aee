package roster

import (
	"testing"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	day := calendar.Date{Year: 2024, Month: time.July, Day: 15}

	t.Run("empty cell has no record", func(t *testing.T) {
		store := NewStore()

		_, ok := store.Get(1, day)
		assert.False(t, ok)
		assert.Zero(t, store.Len())
	})

	t.Run("set then get", func(t *testing.T) {
		store := NewStore()
		store.Set(1, day, 10)

		shiftID, ok := store.Get(1, day)
		require.True(t, ok)
		assert.Equal(t, int64(10), shiftID)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("last write wins on the same cell", func(t *testing.T) {
		store := NewStore()
		store.Set(1, day, 10)
		store.Set(1, day, 20)

		shiftID, ok := store.Get(1, day)
		require.True(t, ok)
		assert.Equal(t, int64(20), shiftID)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("ClearShiftID removes the record", func(t *testing.T) {
		store := NewStore()
		store.Set(1, day, 10)
		store.Set(1, day, ClearShiftID)

		_, ok := store.Get(1, day)
		assert.False(t, ok)
		assert.Zero(t, store.Len())
	})

	t.Run("clearing an empty cell is a no-op", func(t *testing.T) {
		store := NewStore()
		store.Set(1, day, ClearShiftID)

		_, ok := store.Get(1, day)
		assert.False(t, ok)
		assert.Zero(t, store.Len())
	})

	t.Run("cells are independent per employee and per day", func(t *testing.T) {
		store := NewStore()
		otherDay := calendar.Date{Year: 2024, Month: time.July, Day: 16}

		store.Set(1, day, 10)
		store.Set(1, otherDay, 20)
		store.Set(2, day, 30)

		store.Set(1, day, ClearShiftID)

		_, ok := store.Get(1, day)
		assert.False(t, ok)

		shiftID, ok := store.Get(1, otherDay)
		require.True(t, ok)
		assert.Equal(t, int64(20), shiftID)

		shiftID, ok = store.Get(2, day)
		require.True(t, ok)
		assert.Equal(t, int64(30), shiftID)
	})
}

func TestStoreEntriesInMonth(t *testing.T) {
	store := NewStore()

	july := calendar.NewMonth(2024, time.July)

	store.Set(2, calendar.Date{Year: 2024, Month: time.July, Day: 3}, 10)
	store.Set(1, calendar.Date{Year: 2024, Month: time.July, Day: 5}, 10)
	store.Set(1, calendar.Date{Year: 2024, Month: time.July, Day: 1}, 20)
	store.Set(1, calendar.Date{Year: 2024, Month: time.June, Day: 28}, 10) // 不属于 7 月

	entries := store.EntriesInMonth(july)
	require.Len(t, entries, 3)

	// 按员工 ID 和日期升序
	assert.Equal(t, int64(1), entries[0].EmployeeID)
	assert.Equal(t, 1, entries[0].Day.Day())
	assert.Equal(t, int64(1), entries[1].EmployeeID)
	assert.Equal(t, 5, entries[1].Day.Day())
	assert.Equal(t, int64(2), entries[2].EmployeeID)
	assert.Equal(t, 3, entries[2].Day.Day())

	// 6 月的记录依然保留
	shiftID, ok := store.Get(1, calendar.Date{Year: 2024, Month: time.June, Day: 28})
	require.True(t, ok)
	assert.Equal(t, int64(10), shiftID)
}
