package controller

import (
	"course_platform_backend/internal/service"
	"course_platform_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// @Summary 学员课程推荐
// @Description 按短期/中期/长期分桶的学习路径推荐
// @Tags 学员报表
// @Produce json
// @Param id path int true "学员 ID"
// @Param max query int false "推荐数量上限" default(8)
// @Success 200 {object} util.Response
// @Router /api/reports/students/{id}/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}
	max, _ := strconv.Atoi(ctx.DefaultQuery("max", "8"))

	list, err := c.RecommendationService.GetRecommendations(studentID, max)
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, list)
}

// @Summary 学员技能差距分析
// @Tags 学员报表
// @Produce json
// @Param id path int true "学员 ID"
// @Success 200 {object} util.Response
// @Router /api/reports/students/{id}/skills-gap [get]
func (c *RecommendationController) GetSkillsGap(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	report, err := c.RecommendationService.GetSkillsGap(studentID)
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
