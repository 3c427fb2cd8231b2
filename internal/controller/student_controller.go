package controller

import (
	"course_platform_backend/internal/service"
	"course_platform_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	InsightService *service.StudentInsightService
}

func NewStudentController(insightService *service.StudentInsightService) *StudentController {
	return &StudentController{InsightService: insightService}
}

func studentIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		util.BadRequest(ctx, "invalid student id")
		return 0, false
	}
	return uint(id), true
}

// @Summary 学员学习进度
// @Tags 学员报表
// @Produce json
// @Param id path int true "学员 ID"
// @Success 200 {object} util.Response
// @Router /api/reports/students/{id}/progress [get]
func (c *StudentController) GetProgress(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	report, err := c.InsightService.GetStudentProgress(studentID)
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary 学员参与度
// @Tags 学员报表
// @Produce json
// @Param id path int true "学员 ID"
// @Param days query int false "统计周期天数" default(30)
// @Success 200 {object} util.Response
// @Router /api/reports/students/{id}/engagement [get]
func (c *StudentController) GetEngagement(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}
	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "30"))

	report, err := c.InsightService.GetStudentEngagement(studentID, days)
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary 学员连续学习天数
// @Tags 学员报表
// @Produce json
// @Param id path int true "学员 ID"
// @Success 200 {object} util.Response
// @Router /api/reports/students/{id}/streak [get]
func (c *StudentController) GetStreak(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	report, err := c.InsightService.GetStudentStreak(studentID)
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
