package analytics

import (
	"course_platform_backend/internal/util"
	"sort"
	"time"
)

// Period 趋势统计周期
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod 校验并解析周期参数
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	default:
		return "", util.ErrInvalidPeriod
	}
}

// Point 单序列时间桶
type Point struct {
	Bucket string
	Count  int
}

// MultiPoint 多序列时间桶，Counts 与传入的序列一一对应
type MultiPoint struct {
	Bucket string
	Counts []int
}

// bucketLayout 各周期的桶键格式
// day 为小时粒度，week/month 为日粒度，year 为月粒度
func bucketLayout(period Period) string {
	switch period {
	case PeriodDay:
		return "2006-01-02T15:00:00"
	case PeriodWeek, PeriodMonth:
		return "2006-01-02"
	default:
		return "2006-01"
	}
}

// advance 按周期的原生步长前进一格
func advance(t time.Time, period Period) time.Time {
	switch period {
	case PeriodDay:
		return t.Add(time.Hour)
	case PeriodWeek:
		return t.AddDate(0, 0, 7)
	case PeriodMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(1, 0, 0)
	}
}

// alignWindow 把窗口起止时间对齐到桶边界
func alignWindow(start, end time.Time, period Period) (time.Time, time.Time) {
	if period == PeriodDay {
		return start.Truncate(time.Hour), end.Truncate(time.Hour)
	}
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	return s, e
}

// bucketStarts 从 start 到 end 逐步铺满所有桶的起点，保证零填充无缺口
func bucketStarts(start, end time.Time, period Period) []time.Time {
	var starts []time.Time
	for t := start; !t.After(end); t = advance(t, period) {
		starts = append(starts, t)
	}
	return starts
}

// bucketIndex 返回事件所属桶的下标，落在窗口外返回 -1
// 事件归入起点不晚于事件时间的最后一个桶
func bucketIndex(starts []time.Time, windowEnd time.Time, ts time.Time) int {
	if len(starts) == 0 || ts.Before(starts[0]) || ts.After(windowEnd) {
		return -1
	}
	// 第一个起点晚于 ts 的桶的前一个
	i := sort.Search(len(starts), func(i int) bool {
		return starts[i].After(ts)
	})
	return i - 1
}

// AggregateTrend 把时间戳事件按周期聚合为有序的时间桶序列
// 窗口内没有事件的桶计数为 0，输出按桶键升序排列
func AggregateTrend(events []time.Time, start, end time.Time, period Period) ([]Point, error) {
	series, err := AggregateTrendSeries([][]time.Time{events}, start, end, period)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(series))
	for i, mp := range series {
		points[i] = Point{Bucket: mp.Bucket, Count: mp.Counts[0]}
	}
	return points, nil
}

// AggregateTrendSeries 多序列版本，所有序列共享同一套时间桶
// 用于报名与完成同图展示等场景
func AggregateTrendSeries(series [][]time.Time, start, end time.Time, period Period) ([]MultiPoint, error) {
	if _, err := ParsePeriod(string(period)); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, util.ErrInvalidDateRange
	}

	start, end = alignWindow(start, end, period)
	starts := bucketStarts(start, end, period)
	// 窗口覆盖到末桶的下一个起点之前
	// 以末桶起点推进而不是 end，end 不落在桶起点时窗口不会多出一个周期
	windowEnd := advance(starts[len(starts)-1], period).Add(-time.Nanosecond)

	layout := bucketLayout(period)
	points := make([]MultiPoint, len(starts))
	for i, t := range starts {
		points[i] = MultiPoint{
			Bucket: t.Format(layout),
			Counts: make([]int, len(series)),
		}
	}

	for si, events := range series {
		for _, ts := range events {
			if idx := bucketIndex(starts, windowEnd, ts); idx >= 0 {
				points[idx].Counts[si]++
			}
		}
	}

	return points, nil
}
