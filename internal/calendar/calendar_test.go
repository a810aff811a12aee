package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	t.Run("DateOf drops the time-of-day part", func(t *testing.T) {
		d := DateOf(time.Date(2024, time.July, 15, 23, 59, 58, 0, time.FixedZone("CST", 8*3600)))
		assert.Equal(t, Date{Year: 2024, Month: time.July, Day: 15}, d)
	})

	t.Run("Time returns UTC midnight", func(t *testing.T) {
		d := Date{Year: 2024, Month: time.July, Day: 15}
		assert.Equal(t, time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), d.Time())
	})

	t.Run("String format", func(t *testing.T) {
		d := Date{Year: 2024, Month: time.July, Day: 1}
		assert.Equal(t, "2024-07-01", d.String())
	})

	t.Run("Weekday", func(t *testing.T) {
		// 2024-07-15 是星期一
		d := Date{Year: 2024, Month: time.July, Day: 15}
		assert.Equal(t, time.Monday, d.Weekday())
	})
}

func TestMonth(t *testing.T) {
	t.Run("July 2024 has 31 days and 23 weekdays", func(t *testing.T) {
		m := NewMonth(2024, time.July)

		assert.Len(t, m.Days(), 31)
		assert.Len(t, m.Weekdays(), 23)
	})

	t.Run("February in a leap year", func(t *testing.T) {
		m := NewMonth(2024, time.February)
		assert.Len(t, m.Days(), 29)
	})

	t.Run("Weekdays excludes every Saturday and Sunday", func(t *testing.T) {
		m := NewMonth(2024, time.July)

		for _, d := range m.Weekdays() {
			assert.NotEqual(t, time.Saturday, d.Weekday(), "周六不应出现在工作日中: %s", d)
			assert.NotEqual(t, time.Sunday, d.Weekday(), "周日不应出现在工作日中: %s", d)
		}
	})

	t.Run("custom week-off days", func(t *testing.T) {
		// 中东地区常见的周五周六休息
		m := NewMonth(2024, time.July, time.Friday, time.Saturday)

		assert.True(t, m.IsWeekOff(Date{Year: 2024, Month: time.July, Day: 5}.Time()))  // 星期五
		assert.True(t, m.IsWeekOff(Date{Year: 2024, Month: time.July, Day: 6}.Time()))  // 星期六
		assert.False(t, m.IsWeekOff(Date{Year: 2024, Month: time.July, Day: 7}.Time())) // 星期日

		// 2024 年 7 月有 4 个星期五和 4 个星期六
		assert.Len(t, m.Weekdays(), 23)
	})

	t.Run("Contains", func(t *testing.T) {
		m := NewMonth(2024, time.July)

		assert.True(t, m.Contains(Date{Year: 2024, Month: time.July, Day: 1}))
		assert.True(t, m.Contains(Date{Year: 2024, Month: time.July, Day: 31}))
		assert.False(t, m.Contains(Date{Year: 2024, Month: time.June, Day: 30}))
		assert.False(t, m.Contains(Date{Year: 2024, Month: time.August, Day: 1}))
	})

	t.Run("Next wraps December into January", func(t *testing.T) {
		m := NewMonth(2024, time.December)
		next := m.Next()

		assert.Equal(t, 2025, next.Year)
		assert.Equal(t, time.January, next.Month)
		assert.Equal(t, m.WeekOffDays, next.WeekOffDays)
	})

	t.Run("Prev wraps January into December", func(t *testing.T) {
		m := NewMonth(2024, time.January)
		prev := m.Prev()

		assert.Equal(t, 2023, prev.Year)
		assert.Equal(t, time.December, prev.Month)
	})

	t.Run("Next then Prev is the identity", func(t *testing.T) {
		m := NewMonth(2024, time.July)
		assert.Equal(t, m, m.Next().Prev())
	})
}

func TestWeekOffDaysFromInts(t *testing.T) {
	t.Run("default configuration", func(t *testing.T) {
		days := WeekOffDaysFromInts([]int{0, 6})
		assert.ElementsMatch(t, []time.Weekday{time.Sunday, time.Saturday}, days)
	})

	t.Run("out-of-range values are dropped", func(t *testing.T) {
		days := WeekOffDaysFromInts([]int{-1, 5, 7})
		require.Len(t, days, 1)
		assert.Equal(t, time.Friday, days[0])
	})
}
