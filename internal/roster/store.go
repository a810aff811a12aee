package roster

import (
	"sort"

	"github.com/staffio-dev/roster-manager/backend/internal/calendar"
	"github.com/staffio-dev/roster-manager/backend/internal/domain"
)

// ClearShiftID 是清除格子的哨兵值，Set 收到它时会删除对应的记录
const ClearShiftID int64 = 0

// Store 保存员工 -> 日期 -> 班次的内存映射。
// Store 本身不做任何合法性检查，任何 employeeID 和 shiftID 都可以写入，
// 校验属于调用方的职责
type Store struct {
	entries map[int64]map[calendar.Date]int64
}

func NewStore() *Store {
	return &Store{
		entries: make(map[int64]map[calendar.Date]int64),
	}
}

// Get 返回某位员工某一天被分配的班次，第二个返回值表示该格子是否有记录
func (s *Store) Get(employeeID int64, day calendar.Date) (int64, bool) {
	days, ok := s.entries[employeeID]
	if !ok {
		return 0, false
	}

	shiftID, ok := days[day]
	return shiftID, ok
}

// Set 写入某位员工某一天的班次，同一个格子后写的覆盖先写的。
// shiftID 为 ClearShiftID 时表示清除该格子，这是一个显式操作，
// 清除后的格子和从未分配过的格子不可区分
func (s *Store) Set(employeeID int64, day calendar.Date, shiftID int64) {
	if shiftID == ClearShiftID {
		if days, ok := s.entries[employeeID]; ok {
			delete(days, day)
			if len(days) == 0 {
				delete(s.entries, employeeID)
			}
		}
		return
	}

	days, ok := s.entries[employeeID]
	if !ok {
		days = make(map[calendar.Date]int64)
		s.entries[employeeID] = days
	}

	days[day] = shiftID
}

// Len 返回当前存储的格子总数
func (s *Store) Len() int {
	n := 0
	for _, days := range s.entries {
		n += len(days)
	}

	return n
}

// EntriesInMonth 返回某个月份内的所有记录，按员工 ID 和日期升序排列。
// 其他月份的记录不受月份切换影响，依然保留在 Store 中
func (s *Store) EntriesInMonth(m calendar.Month) []domain.RosterEntry {
	entries := make([]domain.RosterEntry, 0)

	for employeeID, days := range s.entries {
		for day, shiftID := range days {
			if !m.Contains(day) {
				continue
			}
			entries = append(entries, domain.RosterEntry{
				EmployeeID: employeeID,
				Day:        day.Time(),
				ShiftID:    shiftID,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EmployeeID != entries[j].EmployeeID {
			return entries[i].EmployeeID < entries[j].EmployeeID
		}
		return entries[i].Day.Before(entries[j].Day)
	})

	return entries
}
