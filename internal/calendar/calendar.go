package calendar

import (
	"fmt"
	"slices"
	"time"
)

// Date 表示一个不带时间部分的日历日，可以直接作为 map 的键使用。
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DefaultWeekOffDays 是默认的周休日（周六和周日）
var DefaultWeekOffDays = []time.Weekday{time.Saturday, time.Sunday}

// WeekOffDaysFromInts 将配置中的数字（0 表示星期日，6 表示星期六）转换为星期，
// 非法的数字会被忽略
func WeekOffDaysFromInts(days []int) []time.Weekday {
	weekdays := make([]time.Weekday, 0, len(days))
	for _, day := range days {
		if day < 0 || day > 6 {
			continue
		}
		weekdays = append(weekdays, time.Weekday(day))
	}

	return weekdays
}

// Month 表示当前展示的月份以及该月份采用的周休安排
type Month struct {
	Year        int
	Month       time.Month
	WeekOffDays []time.Weekday
}

// NewMonth 创建一个月份上下文，不传 weekOffDays 时采用默认的周六和周日
func NewMonth(year int, month time.Month, weekOffDays ...time.Weekday) Month {
	if len(weekOffDays) == 0 {
		weekOffDays = DefaultWeekOffDays
	}

	return Month{
		Year:        year,
		Month:       month,
		WeekOffDays: weekOffDays,
	}
}

func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, -1)
}

// Days 返回该月份的所有日历日，按日期升序排列
func (m Month) Days() []time.Time {
	start := m.Start()
	end := m.End()

	days := make([]time.Time, 0, end.Day())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}

// Weekdays 返回该月份的所有工作日（即去掉周休日之后的日历日）
func (m Month) Weekdays() []time.Time {
	days := m.Days()

	weekdays := make([]time.Time, 0, len(days))
	for _, d := range days {
		if m.IsWeekOff(d) {
			continue
		}
		weekdays = append(weekdays, d)
	}

	return weekdays
}

func (m Month) IsWeekOff(t time.Time) bool {
	return slices.Contains(m.WeekOffDays, t.Weekday())
}

// Contains 判断某一天是否属于该月份
func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

func (m Month) Next() Month {
	next := m.Start().AddDate(0, 1, 0)
	return Month{Year: next.Year(), Month: next.Month(), WeekOffDays: m.WeekOffDays}
}

func (m Month) Prev() Month {
	prev := m.Start().AddDate(0, -1, 0)
	return Month{Year: prev.Year(), Month: prev.Month(), WeekOffDays: m.WeekOffDays}
}
