package handlers

import (
	"net/http"

	"bidfield/internal/middleware"
	"bidfield/internal/models"
	"bidfield/internal/services"
	"bidfield/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService     *services.ProjectService
	bidService         *services.BidService
	deliverableService *services.DeliverableService
}

func NewProjectHandler(
	base *BaseHandler,
	projectService *services.ProjectService,
	bidService *services.BidService,
	deliverableService *services.DeliverableService,
) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:        base,
		projectService:     projectService,
		bidService:         bidService,
		deliverableService: deliverableService,
	}
}

// RegisterRoutes регистрирует маршруты проектов, ставок и файлов.
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	buyerOnly := middleware.RequireRoles(models.UserRoleBuyer)
	sellerOnly := middleware.RequireRoles(models.UserRoleSeller)

	// Чтение каталога публично, как и карточка проекта
	public := rg.Group("/projects")
	{
		public.GET("", h.ListOpenProjects)
		public.GET("/:id", h.GetProject)
	}

	projects := rg.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	{
		projects.POST("", buyerOnly, h.CreateProject)
		projects.POST("/:id/select-seller", buyerOnly, h.SelectSeller)
		projects.POST("/:id/complete", buyerOnly, h.CompleteProject)

		projects.GET("/:id/bids", h.GetProjectBids)
		projects.POST("/:id/bids", sellerOnly, h.SubmitBid)

		projects.GET("/:id/deliverables", h.GetProjectDeliverables)
		projects.POST("/:id/deliverables", sellerOnly, h.UploadDeliverable)
	}
}

// --- Projects ---

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	req.BuyerID = userID

	response, err := h.projectService.CreateProject(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ProjectHandler) ListOpenProjects(c *gin.Context) {
	projects, err := h.projectService.ListOpenProjects()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetProject(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) SelectSeller(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SelectSellerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	project, err := h.projectService.SelectSeller(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) CompleteProject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.CompleteProject(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// --- Bids ---

func (h *ProjectHandler) SubmitBid(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBidRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	req.SellerID = userID
	req.ProjectID = c.Param("id")

	bid, err := h.bidService.SubmitBid(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bid)
}

func (h *ProjectHandler) GetProjectBids(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bids, err := h.bidService.GetProjectBids(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bids": bids})
}

// --- Deliverables ---

func (h *ProjectHandler) UploadDeliverable(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDeliverableRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	deliverable, err := h.deliverableService.UploadDeliverable(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, deliverable)
}

func (h *ProjectHandler) GetProjectDeliverables(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	deliverables, err := h.deliverableService.GetProjectDeliverables(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deliverables": deliverables})
}
