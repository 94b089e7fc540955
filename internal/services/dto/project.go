package dto

import (
	"time"

	"bidfield/internal/models"
)

// --- Project Requests ---

type CreateProjectRequest struct {
	BuyerID     string `json:"buyer_id" validate:"-"` // Устанавливается сервером
	Title       string `json:"title" validate:"required,min=3,max=150"`
	Description string `json:"description" validate:"required,max=5000"`
	BudgetMin   int    `json:"budget_min" validate:"required,gt=0"`
	BudgetMax   int    `json:"budget_max" validate:"required,gt=0"`
	Deadline    string `json:"deadline" validate:"required"` // RFC3339 или YYYY-MM-DD
}

type SelectSellerRequest struct {
	SellerID string `json:"seller_id" validate:"required,uuid"`
}

// --- Project Responses ---

type ProjectResponse struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	BudgetMin        int                  `json:"budget_min"`
	BudgetMax        int                  `json:"budget_max"`
	Deadline         time.Time            `json:"deadline"`
	Status           models.ProjectStatus `json:"status"`
	BuyerID          string               `json:"buyer_id"`
	SelectedSellerID *string              `json:"selected_seller_id,omitempty"`
	Buyer            *UserSummary         `json:"buyer,omitempty"`
	SelectedSeller   *UserSummary         `json:"selected_seller,omitempty"`
	BidCount         int64                `json:"bid_count"`
	CreatedAt        time.Time            `json:"created_at"`
}

func NewProjectResponse(project *models.Project, bidCount int64) *ProjectResponse {
	resp := &ProjectResponse{
		ID:               project.ID,
		Title:            project.Title,
		Description:      project.Description,
		BudgetMin:        project.BudgetMin,
		BudgetMax:        project.BudgetMax,
		Deadline:         project.Deadline,
		Status:           project.Status,
		BuyerID:          project.BuyerID,
		SelectedSellerID: project.SelectedSellerID,
		BidCount:         bidCount,
		CreatedAt:        project.CreatedAt,
	}
	if project.Buyer.ID != "" {
		resp.Buyer = NewUserSummary(&project.Buyer)
	}
	if project.SelectedSeller != nil {
		resp.SelectedSeller = NewUserSummary(project.SelectedSeller)
	}
	return resp
}
