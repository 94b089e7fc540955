package dto

import (
	"time"

	"bidfield/internal/models"
)

type CreateDeliverableRequest struct {
	FileName    string  `json:"file_name" validate:"required,max=255"`
	FileURL     string  `json:"file_url" validate:"required,url"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type DeliverableResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	FileURL     string    `json:"file_url"`
	Description *string   `json:"description,omitempty"`
	ProjectID   string    `json:"project_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewDeliverableResponse(d *models.Deliverable) *DeliverableResponse {
	return &DeliverableResponse{
		ID:          d.ID,
		FileName:    d.FileName,
		FileURL:     d.FileURL,
		Description: d.Description,
		ProjectID:   d.ProjectID,
		CreatedAt:   d.CreatedAt,
	}
}
