package util

import "errors"

var (
	ErrStudentNotFound  = errors.New("学员不存在")
	ErrCourseNotFound   = errors.New("课程不存在")
	ErrInvalidPeriod    = errors.New("invalid trend period")
	ErrInvalidDateRange = errors.New("invalid date range: end before start")
	ErrInvalidMetric    = errors.New("invalid popularity metric")
)
