package roster

import (
	"github.com/staffio-dev/roster-manager/backend/internal/domain"
)

// Catalog 是可分配班次的只读目录，引擎运行期间不会修改它
type Catalog struct {
	shifts []*domain.Shift
	byID   map[int64]*domain.Shift
}

func NewCatalog(shifts []*domain.Shift) *Catalog {
	c := &Catalog{
		shifts: make([]*domain.Shift, 0, len(shifts)),
		byID:   make(map[int64]*domain.Shift, len(shifts)),
	}

	for _, shift := range shifts {
		c.shifts = append(c.shifts, shift)
		c.byID[shift.ID] = shift
	}

	return c
}

// List 按传入顺序返回所有班次
func (c *Catalog) List() []*domain.Shift {
	shifts := make([]*domain.Shift, len(c.shifts))
	copy(shifts, c.shifts)
	return shifts
}

// Find 按 ID 查找班次。查不到是正常情况（例如格子上残留着已被删除的班次），
// 调用方应当按"未分配"展示，而不是当作错误处理
func (c *Catalog) Find(id int64) (*domain.Shift, bool) {
	shift, ok := c.byID[id]
	return shift, ok
}
