package controller

import (
	"course_platform_backend/internal/service"
	"course_platform_backend/internal/util"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
	PopularLimit     int
}

func NewAnalyticsController(analyticsService *service.AnalyticsService, popularLimit int) *AnalyticsController {
	return &AnalyticsController{
		AnalyticsService: analyticsService,
		PopularLimit:     popularLimit,
	}
}

// queryIntDefault 取正整型查询参数，缺省或非法时回落到默认值
func queryIntDefault(ctx *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(ctx.Query(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// reportError 把领域错误映射为响应码
func reportError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrStudentNotFound), errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidPeriod),
		errors.Is(err, util.ErrInvalidDateRange),
		errors.Is(err, util.ErrInvalidMetric):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// parseWindow 解析趋势查询的公共参数
func parseWindow(ctx *gin.Context) (period string, start, end time.Time, ok bool) {
	period = ctx.DefaultQuery("period", "month")

	var err error
	start, err = time.Parse(dateLayout, ctx.Query("start"))
	if err != nil {
		util.BadRequest(ctx, "invalid start date, expected YYYY-MM-DD")
		return "", time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(dateLayout, ctx.Query("end"))
	if err != nil {
		util.BadRequest(ctx, "invalid end date, expected YYYY-MM-DD")
		return "", time.Time{}, time.Time{}, false
	}
	return period, start, end, true
}

// @Summary 报名趋势
// @Description 按时间桶统计报名数，可选按课程过滤
// @Tags 报表
// @Produce json
// @Param period query string false "统计周期 day/week/month/year" default(month)
// @Param start query string true "窗口起点 YYYY-MM-DD"
// @Param end query string true "窗口终点 YYYY-MM-DD"
// @Param course_id query int false "课程 ID"
// @Success 200 {object} util.Response
// @Router /api/reports/trends/enrollments [get]
func (c *AnalyticsController) GetEnrollmentTrend(ctx *gin.Context) {
	period, start, end, ok := parseWindow(ctx)
	if !ok {
		return
	}
	courseID, _ := strconv.Atoi(ctx.DefaultQuery("course_id", "0"))

	trend, err := c.AnalyticsService.GetEnrollmentTrend(uint(courseID), period, start, end)
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, trend)
}

// @Summary 完课趋势
// @Description 按完成时间统计完课数，可选按课程过滤
// @Tags 报表
// @Produce json
// @Param period query string false "统计周期 day/week/month/year" default(month)
// @Param start query string true "窗口起点 YYYY-MM-DD"
// @Param end query string true "窗口终点 YYYY-MM-DD"
// @Param course_id query int false "课程 ID"
// @Success 200 {object} util.Response
// @Router /api/reports/trends/completions [get]
func (c *AnalyticsController) GetCompletionTrend(ctx *gin.Context) {
	period, start, end, ok := parseWindow(ctx)
	if !ok {
		return
	}
	courseID, _ := strconv.Atoi(ctx.DefaultQuery("course_id", "0"))

	trend, err := c.AnalyticsService.GetCompletionTrend(uint(courseID), period, start, end)
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, trend)
}

// @Summary 学习活跃趋势
// @Description 报名与完成双序列趋势
// @Tags 报表
// @Produce json
// @Param period query string false "统计周期 day/week/month/year" default(month)
// @Param start query string true "窗口起点 YYYY-MM-DD"
// @Param end query string true "窗口终点 YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Router /api/reports/trends/activity [get]
func (c *AnalyticsController) GetActivityTrend(ctx *gin.Context) {
	period, start, end, ok := parseWindow(ctx)
	if !ok {
		return
	}

	trend, err := c.AnalyticsService.GetActivityTrend(period, start, end)
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, trend)
}

// @Summary 课程完成率
// @Tags 报表
// @Produce json
// @Param id path int true "课程 ID"
// @Success 200 {object} util.Response
// @Router /api/reports/courses/{id}/completion-rate [get]
func (c *AnalyticsController) GetCourseCompletion(ctx *gin.Context) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	report, err := c.AnalyticsService.GetCourseCompletion(uint(courseID))
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary 课程参与度
// @Tags 报表
// @Produce json
// @Param id path int true "课程 ID"
// @Success 200 {object} util.Response
// @Router /api/reports/courses/{id}/engagement [get]
func (c *AnalyticsController) GetCourseEngagement(ctx *gin.Context) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	report, err := c.AnalyticsService.GetCourseEngagement(uint(courseID))
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary 热门课程排行
// @Tags 报表
// @Produce json
// @Param metric query string false "排序指标 enrollments/completions/watch_time/rating" default(enrollments)
// @Param limit query int false "返回条数，缺省取配置 reports.popular_limit" default(10)
// @Success 200 {object} util.Response
// @Router /api/reports/courses/popular [get]
func (c *AnalyticsController) GetPopularCourses(ctx *gin.Context) {
	metric := ctx.DefaultQuery("metric", "enrollments")
	limit := queryIntDefault(ctx, "limit", c.PopularLimit)

	report, err := c.AnalyticsService.GetPopularCourses(metric, limit)
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
