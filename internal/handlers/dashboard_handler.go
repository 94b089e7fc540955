package handlers

import (
	"net/http"

	"bidfield/internal/middleware"
	"bidfield/internal/models"
	"bidfield/internal/services"
	"bidfield/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService *services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("", h.GetDashboard)
	}
}

// GetDashboard отдает дашборд в зависимости от роли из токена.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	role, _ := c.Get(contextkeys.RoleKey)
	switch role {
	case models.UserRoleSeller:
		dashboard, err := h.dashboardService.GetSellerDashboard(userID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dashboard)
	default:
		dashboard, err := h.dashboardService.GetBuyerDashboard(userID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dashboard)
	}
}
