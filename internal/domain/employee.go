package domain

import (
	"time"
)

type Role string

const (
	RoleEmployee      Role = "员工"
	RoleRosterManager Role = "排班经理"
	RoleHRAdmin       Role = "人事管理员"
)

type Employee struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	DepartmentID *int64    `json:"departmentID"` // 为 nil 时表示尚未分配部门
	ManagerID    *int64    `json:"managerID"`    // 为 nil 时表示该员工没有直属经理
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
