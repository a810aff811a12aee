package roster

import (
	"testing"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/calendar"
	"github.com/staffio-dev/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog([]*domain.Shift{
		{ID: 10, Name: "早班", StartTime: "09:00", EndTime: "18:00"},
		{ID: 20, Name: "晚班", StartTime: "14:00", EndTime: "22:00"},
		{ID: 30, Name: "夜班", StartTime: "22:00", EndTime: "07:00"},
	})
}

func TestEngineAssign(t *testing.T) {
	day := calendar.Date{Year: 2024, Month: time.July, Day: 15}

	t.Run("assign writes the cell", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog())

		require.NoError(t, engine.Assign(1, day, 10))

		shiftID, ok := store.Get(1, day)
		require.True(t, ok)
		assert.Equal(t, int64(10), shiftID)
	})

	t.Run("assign overwrites a previous assignment", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog())

		require.NoError(t, engine.Assign(1, day, 10))
		require.NoError(t, engine.Assign(1, day, 20))

		shiftID, _ := store.Get(1, day)
		assert.Equal(t, int64(20), shiftID)
	})

	t.Run("ClearShiftID clears the cell", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog())

		require.NoError(t, engine.Assign(1, day, 10))
		require.NoError(t, engine.Assign(1, day, ClearShiftID))

		_, ok := store.Get(1, day)
		assert.False(t, ok)
	})

	t.Run("unknown shift is accepted in the default mode", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog())

		require.NoError(t, engine.Assign(1, day, 999))

		shiftID, ok := store.Get(1, day)
		require.True(t, ok)
		assert.Equal(t, int64(999), shiftID)
	})

	t.Run("strict mode rejects unknown shifts", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog(), WithStrictShiftCheck())

		err := engine.Assign(1, day, 999)
		assert.ErrorIs(t, err, ErrUnknownShift)

		_, ok := store.Get(1, day)
		assert.False(t, ok)
	})

	t.Run("strict mode still allows clearing", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog(), WithStrictShiftCheck())

		require.NoError(t, engine.Assign(1, day, 10))
		require.NoError(t, engine.Assign(1, day, ClearShiftID))

		_, ok := store.Get(1, day)
		assert.False(t, ok)
	})
}

func TestEngineBulkAssign(t *testing.T) {
	july := calendar.NewMonth(2024, time.July)

	t.Run("covers every weekday of the month", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog())

		// 2024 年 7 月有 23 个工作日
		report, err := engine.BulkAssign([]int64{1, 2}, 10, july.Days())
		require.NoError(t, err)

		assert.Equal(t, 46, report.CellsWritten)
		assert.Equal(t, 2, report.EmployeesProcessed)
		assert.Equal(t, 46, store.Len())

		for _, employeeID := range []int64{1, 2} {
			for _, day := range july.Days() {
				shiftID, ok := store.Get(employeeID, calendar.DateOf(day))
				if july.IsWeekOff(day) {
					assert.False(t, ok, "周休日不应被写入: %s", day.Format("2006-01-02"))
				} else {
					require.True(t, ok, "工作日应被写入: %s", day.Format("2006-01-02"))
					assert.Equal(t, int64(10), shiftID)
				}
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog())

		first, err := engine.BulkAssign([]int64{1}, 10, july.Days())
		require.NoError(t, err)

		second, err := engine.BulkAssign([]int64{1}, 10, july.Days())
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 23, store.Len())
	})

	t.Run("overwrites existing assignments", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog())

		monday := calendar.Date{Year: 2024, Month: time.July, Day: 15}
		require.NoError(t, engine.Assign(1, monday, 20))

		_, err := engine.BulkAssign([]int64{1}, 10, july.Days())
		require.NoError(t, err)

		shiftID, _ := store.Get(1, monday)
		assert.Equal(t, int64(10), shiftID)
	})

	t.Run("no shift selected is rejected without writes", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog())

		report, err := engine.BulkAssign([]int64{1, 2}, ClearShiftID, july.Days())
		assert.ErrorIs(t, err, ErrNoShiftSelected)
		assert.Zero(t, report.CellsWritten)
		assert.Zero(t, store.Len())
	})

	t.Run("no employees selected is rejected without writes", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog())

		report, err := engine.BulkAssign(nil, 10, july.Days())
		assert.ErrorIs(t, err, ErrNoEmployeesSelected)
		assert.Zero(t, report.CellsWritten)
		assert.Zero(t, store.Len())
	})

	t.Run("shift check comes after the selection checks", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog(), WithStrictShiftCheck())

		// 两个前置条件都不满足时，报的是班次未选择
		_, err := engine.BulkAssign(nil, ClearShiftID, july.Days())
		assert.ErrorIs(t, err, ErrNoShiftSelected)

		_, err = engine.BulkAssign([]int64{1}, 999, july.Days())
		assert.ErrorIs(t, err, ErrUnknownShift)
		assert.Zero(t, store.Len())
	})

	t.Run("custom week-off days", func(t *testing.T) {
		store := NewStore()
		engine := NewEngine(store, testCatalog(), WithWeekOff(func(t time.Time) bool {
			return t.Weekday() == time.Friday || t.Weekday() == time.Saturday
		}))

		report, err := engine.BulkAssign([]int64{1}, 10, july.Days())
		require.NoError(t, err)

		// 2024 年 7 月有 4 个星期五和 4 个星期六
		assert.Equal(t, 23, report.CellsWritten)

		_, ok := store.Get(1, calendar.Date{Year: 2024, Month: time.July, Day: 5}) // 星期五
		assert.False(t, ok)
		_, ok = store.Get(1, calendar.Date{Year: 2024, Month: time.July, Day: 7}) // 星期日
		assert.True(t, ok)
	})
}
