package domain

import "time"

// Shift 的 StartTime 和 EndTime 均为 "15:04" 格式的墙钟时间。
// EndTime 在数值上允许小于 StartTime，此时表示跨夜班次（例如 22:00-07:00），
// 排班引擎不会对此做任何校验，仅作为展示数据。
type Shift struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	DepartmentID int64     `json:"departmentID"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
