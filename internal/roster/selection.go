package roster

import "sort"

// SelectionSet 记录当前被勾选、等待参与批量操作的员工。
// 任何员工 ID 的子集都是合法状态，成员关系与排班表内容无关
type SelectionSet struct {
	members map[int64]struct{}
}

func NewSelectionSet() *SelectionSet {
	return &SelectionSet{
		members: make(map[int64]struct{}),
	}
}

// Toggle 切换某位员工的勾选状态，返回切换后是否处于勾选状态
func (s *SelectionSet) Toggle(employeeID int64) bool {
	if _, ok := s.members[employeeID]; ok {
		delete(s.members, employeeID)
		return false
	}

	s.members[employeeID] = struct{}{}
	return true
}

func (s *SelectionSet) Select(employeeID int64) {
	s.members[employeeID] = struct{}{}
}

func (s *SelectionSet) Deselect(employeeID int64) {
	delete(s.members, employeeID)
}

// SelectAll 勾选给定的全部员工，已勾选的保持不变
func (s *SelectionSet) SelectAll(employeeIDs []int64) {
	for _, id := range employeeIDs {
		s.members[id] = struct{}{}
	}
}

func (s *SelectionSet) Clear() {
	s.members = make(map[int64]struct{})
}

func (s *SelectionSet) Has(employeeID int64) bool {
	_, ok := s.members[employeeID]
	return ok
}

func (s *SelectionSet) Len() int {
	return len(s.members)
}

// IDs 返回所有被勾选的员工 ID，升序排列
func (s *SelectionSet) IDs() []int64 {
	ids := make([]int64, 0, len(s.members))
	for id := range s.members {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
