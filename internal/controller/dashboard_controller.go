package controller

import (
	"course_platform_backend/internal/service"
	"course_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary 管理端总览
// @Description 平台级统计总览，短 TTL 缓存
// @Tags 报表
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/reports/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	report, err := c.DashboardService.GetDashboard(ctx.Request.Context())
	if err != nil {
		reportError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
