package dto

import (
	"time"

	"bidfield/internal/models"
)

// --- Bid Requests ---

type CreateBidRequest struct {
	SellerID      string `json:"seller_id" validate:"-"`  // Устанавливается сервером
	ProjectID     string `json:"project_id" validate:"-"` // Берется из пути
	Amount        int    `json:"amount" validate:"required,gt=0"`
	EstimatedDays int    `json:"estimated_days" validate:"required,gt=0"`
	Message       string `json:"message" validate:"required,max=2000"`
}

// --- Bid Responses ---

type BidResponse struct {
	ID            string       `json:"id"`
	Amount        int          `json:"amount"`
	EstimatedDays int          `json:"estimated_days"`
	Message       string       `json:"message"`
	ProjectID     string       `json:"project_id"`
	SellerID      string       `json:"seller_id"`
	Seller        *UserSummary `json:"seller,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// SellerBidResponse - ставка в дашборде продавца вместе с проектом
// и его покупателем.
type SellerBidResponse struct {
	BidResponse
	Project *ProjectResponse `json:"project,omitempty"`
}

func NewBidResponse(bid *models.Bid) *BidResponse {
	resp := &BidResponse{
		ID:            bid.ID,
		Amount:        bid.Amount,
		EstimatedDays: bid.EstimatedDays,
		Message:       bid.Message,
		ProjectID:     bid.ProjectID,
		SellerID:      bid.SellerID,
		CreatedAt:     bid.CreatedAt,
	}
	if bid.Seller.ID != "" {
		resp.Seller = NewUserSummary(&bid.Seller)
	}
	return resp
}

func NewSellerBidResponse(bid *models.Bid) *SellerBidResponse {
	resp := &SellerBidResponse{BidResponse: *NewBidResponse(bid)}
	if bid.Project.ID != "" {
		resp.Project = NewProjectResponse(&bid.Project, 0)
	}
	return resp
}
