package analytics

import "time"

// maxStreakLookback 连续学习天数的最大回溯范围
const maxStreakLookback = 365

const dayKeyLayout = "2006-01-02"

// DayKey 日历日键，作为活跃日集合的键
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// CurrentStreak 从 today 起向前逐天回溯，统计连续活跃天数
// today 当天没有活动不中断连续记录，只是不计入
func CurrentStreak(activeDays map[string]bool, today time.Time) int {
	streak := 0
	for i := 0; i < maxStreakLookback; i++ {
		day := today.AddDate(0, 0, -i)
		if activeDays[DayKey(day)] {
			streak++
			continue
		}
		if i > 0 {
			break
		}
		// 今天还没有活动，继续向前看昨天
	}
	return streak
}

// LongestStreak 在给定的每日活跃标记序列中找最长连续活跃段
func LongestStreak(days []bool) int {
	longest, run := 0, 0
	for _, active := range days {
		if active {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// ActivityFlags 把活跃日集合展开为 windowDays 天的标记序列
// 序列从最早一天到 today 从左到右排列
func ActivityFlags(activeDays map[string]bool, today time.Time, windowDays int) []bool {
	flags := make([]bool, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		flags = append(flags, activeDays[DayKey(day)])
	}
	return flags
}
