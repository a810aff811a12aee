package utils

import (
	"fmt"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/domain"
)

// ValidateShiftTime 检查班次的开始和结束时间是否为合法的 "15:04" 格式。
// 注意这里不检查结束时间是否晚于开始时间，结束时间早于开始时间表示跨夜班次
func ValidateShiftTime(shift *domain.Shift) error {
	if _, err := time.Parse("15:04", shift.StartTime); err != nil {
		return fmt.Errorf("班次 %s 的开始时间格式错误", shift.Name)
	}
	if _, err := time.Parse("15:04", shift.EndTime); err != nil {
		return fmt.Errorf("班次 %s 的结束时间格式错误", shift.Name)
	}

	return nil
}

// ValidateRosterMonth 检查发布排班表时传入的年月是否合法
func ValidateRosterMonth(year int, month int) error {
	if year < 2000 || year > 2200 {
		return fmt.Errorf("年份 %d 不合法", year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("月份 %d 不合法", month)
	}

	return nil
}
