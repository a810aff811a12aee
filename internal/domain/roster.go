package domain

import "time"

// RosterEntry 表示某位员工在某一天被分配的班次。
// 同一个员工同一天最多只有一条记录。
type RosterEntry struct {
	EmployeeID int64     `json:"employeeID"`
	Day        time.Time `json:"day"` // 只有日期部分有意义
	ShiftID    int64     `json:"shiftID"`
}

// MonthlyRoster 是一个月份排班表发布后的持久化形式。
type MonthlyRoster struct {
	ID        int64         `json:"id"`
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	ManagerID int64         `json:"managerID"`
	Entries   []RosterEntry `json:"entries"`
	CreatedAt time.Time     `json:"createdAt"`
	Version   int32         `json:"-"`
}
