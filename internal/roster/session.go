package roster

import (
	"sync"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/calendar"
	"github.com/staffio-dev/roster-manager/backend/internal/domain"
)

// Session 是一位经理编辑排班表的会话，持有自己的 Store、勾选集合和月份上下文。
// 所有操作都在同一把互斥锁下执行，因此同一个会话内批量分配和单格编辑
// 互相串行，同一个格子以最后一次写入为准
type Session struct {
	mu sync.Mutex

	id        string
	managerID int64
	month     calendar.Month
	store     *Store
	selection *SelectionSet
	engine    *Engine
	shiftID   int64 // 当前选中的待分配班次，0 表示未选择
}

func NewSession(id string, managerID int64, month calendar.Month, catalog *Catalog, opts ...EngineOption) *Session {
	store := NewStore()

	weekOffDays := month.WeekOffDays
	engineOpts := append([]EngineOption{
		WithWeekOff(func(t time.Time) bool {
			for _, day := range weekOffDays {
				if t.Weekday() == day {
					return true
				}
			}
			return false
		}),
	}, opts...)

	return &Session{
		id:        id,
		managerID: managerID,
		month:     month,
		store:     store,
		selection: NewSelectionSet(),
		engine:    NewEngine(store, catalog, engineOpts...),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) ManagerID() int64 {
	return s.managerID
}

func (s *Session) Month() calendar.Month {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.month
}

// NextMonth 切换到下一个月份，其他月份已有的排班记录不受影响
func (s *Session) NextMonth() calendar.Month {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.month = s.month.Next()
	return s.month
}

func (s *Session) PrevMonth() calendar.Month {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.month = s.month.Prev()
	return s.month
}

// SelectShift 记录当前选中的待分配班次
func (s *Session) SelectShift(shiftID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shiftID = shiftID
}

func (s *Session) SelectedShift() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shiftID
}

// ToggleEmployee 切换某位员工的勾选状态，返回切换后是否处于勾选状态
func (s *Session) ToggleEmployee(employeeID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection.Toggle(employeeID)
}

func (s *Session) SelectAllEmployees(employeeIDs []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.SelectAll(employeeIDs)
}

func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Clear()
}

func (s *Session) SelectedEmployees() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection.IDs()
}

// Assign 分配或清除单个格子（shiftID 为 ClearShiftID 时表示清除）
func (s *Session) Assign(employeeID int64, day calendar.Date, shiftID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Assign(employeeID, day, shiftID)
}

func (s *Session) Assignment(employeeID int64, day calendar.Date) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Get(employeeID, day)
}

// BulkAssign 把当前选中的班次分配给所有勾选员工在当前月份的每个工作日。
// 成功后清空勾选集合并重置选中的班次；被拒绝时两者均保持不变
func (s *Session) BulkAssign() (BulkReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, err := s.engine.BulkAssign(s.selection.IDs(), s.shiftID, s.month.Days())
	if err != nil {
		return BulkReport{}, err
	}

	s.selection.Clear()
	s.shiftID = ClearShiftID

	return report, nil
}

// MonthEntries 返回当前月份的所有排班记录，用于渲染或发布
func (s *Session) MonthEntries() []domain.RosterEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.EntriesInMonth(s.month)
}
