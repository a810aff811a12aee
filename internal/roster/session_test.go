package roster

import (
	"sync"
	"testing"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *Session {
	return NewSession("test", 100, calendar.NewMonth(2024, time.July), testCatalog())
}

func TestSessionBulkAssign(t *testing.T) {
	t.Run("success clears the selection and the chosen shift", func(t *testing.T) {
		s := testSession()

		s.ToggleEmployee(1)
		s.ToggleEmployee(2)
		s.SelectShift(10)

		report, err := s.BulkAssign()
		require.NoError(t, err)
		assert.Equal(t, 46, report.CellsWritten)
		assert.Equal(t, 2, report.EmployeesProcessed)

		assert.Empty(t, s.SelectedEmployees())
		assert.Equal(t, ClearShiftID, s.SelectedShift())
	})

	t.Run("rejection leaves the selection and the chosen shift intact", func(t *testing.T) {
		s := testSession()

		s.ToggleEmployee(1)

		_, err := s.BulkAssign()
		assert.ErrorIs(t, err, ErrNoShiftSelected)

		assert.Equal(t, []int64{1}, s.SelectedEmployees())

		s.SelectShift(10)
		s.ClearSelection()

		_, err = s.BulkAssign()
		assert.ErrorIs(t, err, ErrNoEmployeesSelected)
		assert.Equal(t, int64(10), s.SelectedShift())
		assert.Empty(t, s.MonthEntries())
	})

	t.Run("uses the month's week-off configuration", func(t *testing.T) {
		month := calendar.NewMonth(2024, time.July, time.Friday, time.Saturday)
		s := NewSession("test", 100, month, testCatalog())

		s.ToggleEmployee(1)
		s.SelectShift(10)

		report, err := s.BulkAssign()
		require.NoError(t, err)
		assert.Equal(t, 23, report.CellsWritten)

		_, ok := s.Assignment(1, calendar.Date{Year: 2024, Month: time.July, Day: 5}) // 星期五
		assert.False(t, ok)
		_, ok = s.Assignment(1, calendar.Date{Year: 2024, Month: time.July, Day: 7}) // 星期日
		assert.True(t, ok)
	})
}

func TestSessionMonthNavigation(t *testing.T) {
	s := testSession()

	julyDay := calendar.Date{Year: 2024, Month: time.July, Day: 15}
	require.NoError(t, s.Assign(1, julyDay, 10))

	// 切换到 8 月再切回来，7 月的记录不受影响
	next := s.NextMonth()
	assert.Equal(t, time.August, next.Month)
	assert.Empty(t, s.MonthEntries())

	prev := s.PrevMonth()
	assert.Equal(t, time.July, prev.Month)

	entries := s.MonthEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].EmployeeID)
	assert.Equal(t, int64(10), entries[0].ShiftID)

	shiftID, ok := s.Assignment(1, julyDay)
	require.True(t, ok)
	assert.Equal(t, int64(10), shiftID)
}

func TestSessionSelection(t *testing.T) {
	s := testSession()

	assert.True(t, s.ToggleEmployee(1))
	assert.False(t, s.ToggleEmployee(1))

	s.SelectAllEmployees([]int64{1, 2, 3})
	assert.Equal(t, []int64{1, 2, 3}, s.SelectedEmployees())

	s.ClearSelection()
	assert.Empty(t, s.SelectedEmployees())
}

func TestSessionConcurrency(t *testing.T) {
	// 并发的单格编辑和批量分配互相串行，跑在 -race 下不应报告数据竞争
	s := testSession()
	s.SelectAllEmployees([]int64{1, 2, 3})
	s.SelectShift(10)

	day := calendar.Date{Year: 2024, Month: time.July, Day: 15}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				_ = s.Assign(1, day, 20)
			} else {
				_, _ = s.BulkAssign()
			}
		}(i)
	}
	wg.Wait()

	// 同一个格子以最后一次写入为准，值必然是其中一个写入者写下的
	shiftID, ok := s.Assignment(1, day)
	require.True(t, ok)
	assert.Contains(t, []int64{10, 20}, shiftID)
}

func TestManager(t *testing.T) {
	m := NewManager()

	s := m.Create(100, calendar.NewMonth(2024, time.July), testCatalog())
	require.NotEmpty(t, s.ID())
	assert.Equal(t, int64(100), s.ManagerID())

	got, ok := m.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)

	m.Delete(s.ID())
	_, ok = m.Get(s.ID())
	assert.False(t, ok)

	// 不存在的会话
	_, ok = m.Get("missing")
	assert.False(t, ok)
}
