package roster

import (
	"errors"
	"slices"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/calendar"
)

var (
	ErrNoShiftSelected     = errors.New("未选择要分配的班次")
	ErrNoEmployeesSelected = errors.New("未选择任何员工")
	ErrUnknownShift        = errors.New("班次不存在")
)

// BulkReport 是批量分配的执行报告，用于向调用方展示确认信息
type BulkReport struct {
	CellsWritten       int `json:"cellsWritten"`       // 实际写入的格子数
	EmployeesProcessed int `json:"employeesProcessed"` // 处理的员工数
}

// Engine 负责对 Store 执行分配操作，自身不保存任何状态，
// 每次调用都是 (当前 Store, 输入) 到 (新 Store) 的同步变换
type Engine struct {
	store   *Store
	catalog *Catalog
	weekOff func(time.Time) bool
	strict  bool
}

type EngineOption func(*Engine)

// WithWeekOff 替换周休判断，用于支持非周六日休息的地区
func WithWeekOff(fn func(time.Time) bool) EngineOption {
	return func(e *Engine) {
		e.weekOff = fn
	}
}

// WithStrictShiftCheck 开启严格模式：分配目录中不存在的班次会被拒绝。
// 默认为宽容模式，与参考行为保持一致。清除格子（ClearShiftID）在
// 严格模式下依然合法
func WithStrictShiftCheck() EngineOption {
	return func(e *Engine) {
		e.strict = true
	}
}

func NewEngine(store *Store, catalog *Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		store:   store,
		catalog: catalog,
		weekOff: func(t time.Time) bool {
			return slices.Contains(calendar.DefaultWeekOffDays, t.Weekday())
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) checkShift(shiftID int64) error {
	if !e.strict || shiftID == ClearShiftID {
		return nil
	}

	if _, ok := e.catalog.Find(shiftID); !ok {
		return ErrUnknownShift
	}

	return nil
}

// Assign 分配或清除单个格子，同一个格子后写的覆盖先写的
func (e *Engine) Assign(employeeID int64, day calendar.Date, shiftID int64) error {
	if err := e.checkShift(shiftID); err != nil {
		return err
	}

	e.store.Set(employeeID, day, shiftID)
	return nil
}

// BulkAssign 把同一个班次分配给所有选中员工在 days 中的每个工作日，
// 周休日永远不会被写入。两个前置条件按顺序检查，任何一个不满足都会
// 整体拒绝且不产生任何写入；检查通过后逐格写入不会失败
func (e *Engine) BulkAssign(employeeIDs []int64, shiftID int64, days []time.Time) (BulkReport, error) {
	if shiftID == ClearShiftID {
		return BulkReport{}, ErrNoShiftSelected
	}
	if len(employeeIDs) == 0 {
		return BulkReport{}, ErrNoEmployeesSelected
	}
	if err := e.checkShift(shiftID); err != nil {
		return BulkReport{}, err
	}

	report := BulkReport{
		EmployeesProcessed: len(employeeIDs),
	}

	for _, employeeID := range employeeIDs {
		for _, day := range days {
			if e.weekOff(day) {
				continue
			}

			e.store.Set(employeeID, calendar.DateOf(day), shiftID)
			report.CellsWritten++
		}
	}

	return report, nil
}
