package seed

import (
	"log/slog"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/calendar"
	"github.com/staffio-dev/roster-manager/backend/internal/config"
	"github.com/staffio-dev/roster-manager/backend/internal/domain"
	"github.com/staffio-dev/roster-manager/backend/internal/repository"
	"github.com/staffio-dev/roster-manager/backend/internal/roster"
	"github.com/staffio-dev/roster-manager/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var demoShifts = []domain.Shift{
	{Name: "早班", StartTime: "09:00", EndTime: "18:00"},
	{Name: "中班", StartTime: "14:00", EndTime: "22:00"},
	{Name: "夜班", StartTime: "22:00", EndTime: "07:00"}, // 跨夜班次
}

// SeedDemoData 插入一个演示数据集：一个部门、一位排班经理和几名员工、
// 一套班次目录，并用排班引擎生成和发布当前月份的排班表
func SeedDemoData(r *repository.Repository, cfg *config.Config) {
	// 部门
	department := &domain.Department{Name: "客服部"}
	if err := r.CreateDepartment(department); err != nil {
		slog.Error("无法插入部门", "error", err)
		return
	}

	// 排班经理
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Employee.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("无法生成密码哈希", "error", err)
		return
	}

	manager := &domain.Employee{
		Username:     "demo_manager",
		PasswordHash: string(passwordHash),
		FullName:     "演示经理",
		Email:        "demo_manager@" + cfg.Email.UserDomain,
		Role:         domain.RoleRosterManager,
		DepartmentID: &department.ID,
	}
	if err := r.CreateEmployee(manager); err != nil {
		slog.Error("无法插入排班经理", "error", err)
		return
	}

	// 经理名下的员工
	employees := make([]*domain.Employee, 0, 6)
	for i := 0; i < 6; i++ {
		employee, err := utils.GenerateRandomEmployee(cfg.Seed.Employee.Password, cfg.Email.UserDomain, &department.ID, &manager.ID)
		if err != nil {
			slog.Error("无法生成随机员工", "error", err)
			continue
		}
		if err := r.CreateEmployee(employee); err != nil {
			slog.Error("无法插入员工", "error", err)
			continue
		}
		employees = append(employees, employee)
	}

	// 班次目录
	shifts := make([]*domain.Shift, 0, len(demoShifts))
	for _, s := range demoShifts {
		shift := s
		shift.DepartmentID = department.ID
		if err := r.CreateShift(&shift); err != nil {
			slog.Error("无法插入班次", "error", err)
			continue
		}
		shifts = append(shifts, &shift)
	}

	if len(shifts) == 0 || len(employees) == 0 {
		slog.Error("演示数据不完整，跳过排班表生成")
		return
	}

	// 用排班引擎生成当前月份的排班表并发布
	now := time.Now()
	month := calendar.NewMonth(now.Year(), now.Month(), calendar.WeekOffDaysFromInts(cfg.Roster.WeekOffDays)...)

	session := roster.NewSession("seed", manager.ID, month, roster.NewCatalog(shifts))
	for _, employee := range employees {
		session.ToggleEmployee(employee.ID)
	}
	session.SelectShift(shifts[0].ID)

	report, err := session.BulkAssign()
	if err != nil {
		slog.Error("批量排班失败", "error", err)
		return
	}

	monthlyRoster := &domain.MonthlyRoster{
		Year:      month.Year,
		Month:     int(month.Month),
		ManagerID: manager.ID,
		Entries:   session.MonthEntries(),
	}
	if err := r.InsertMonthlyRoster(monthlyRoster); err != nil {
		slog.Error("无法插入排班表", "error", err)
		return
	}

	slog.Info("演示数据插入成功",
		"employees", len(employees),
		"shifts", len(shifts),
		"cells", report.CellsWritten,
	)
}
