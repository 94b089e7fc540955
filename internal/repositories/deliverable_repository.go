package repositories

import (
	"bidfield/internal/models"

	"gorm.io/gorm"
)

type DeliverableRepository interface {
	Create(deliverable *models.Deliverable) error
	FindByProject(projectID string) ([]models.Deliverable, error)
}

type DeliverableRepositoryImpl struct {
	db *gorm.DB
}

func NewDeliverableRepository(db *gorm.DB) DeliverableRepository {
	return &DeliverableRepositoryImpl{db: db}
}

func (r *DeliverableRepositoryImpl) Create(deliverable *models.Deliverable) error {
	return r.db.Create(deliverable).Error
}

func (r *DeliverableRepositoryImpl) FindByProject(projectID string) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&deliverables).Error
	return deliverables, err
}
