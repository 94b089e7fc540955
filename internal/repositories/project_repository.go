package repositories

import (
	"errors"
	"time"

	"bidfield/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectStatusConflict возвращается, когда guarded update не прошел:
	// статус проекта уже изменился конкурентным запросом.
	ErrProjectStatusConflict = errors.New("project status conflict")
)

type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id string) (*models.Project, error)
	FindPending() ([]models.Project, error)
	FindByBuyer(buyerID string) ([]models.Project, error)
	FindBySelectedSeller(sellerID string) ([]models.Project, error)
	// SelectSeller атомарно переводит pending -> in_progress и проставляет
	// выбранного продавца. Возвращает ErrProjectStatusConflict, если проект
	// уже не pending.
	SelectSeller(projectID, sellerID string) error
	// Complete атомарно переводит in_progress -> completed.
	Complete(projectID string) error
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Buyer").Preload("SelectedSeller").
		First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindPending() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Buyer").
		Where("status = ?", models.ProjectStatusPending).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) FindByBuyer(buyerID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("SelectedSeller").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) FindBySelectedSeller(sellerID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Buyer").
		Where("selected_seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) SelectSeller(projectID, sellerID string) error {
	result := r.db.Model(&models.Project{}).
		Where("id = ? AND status = ?", projectID, models.ProjectStatusPending).
		Updates(map[string]interface{}{
			"selected_seller_id": sellerID,
			"status":             models.ProjectStatusInProgress,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectStatusConflict
	}
	return nil
}

func (r *ProjectRepositoryImpl) Complete(projectID string) error {
	result := r.db.Model(&models.Project{}).
		Where("id = ? AND status = ?", projectID, models.ProjectStatusInProgress).
		Updates(map[string]interface{}{
			"status":     models.ProjectStatusCompleted,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectStatusConflict
	}
	return nil
}
