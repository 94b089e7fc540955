package repositories

import (
	"errors"

	"bidfield/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBidNotFound      = errors.New("bid not found")
	ErrBidAlreadyExists = errors.New("bid already exists for this seller and project")
)

type BidRepository interface {
	// Create полагается на уникальный индекс (project_id, seller_id):
	// конкурентная вторая ставка того же продавца вернет ErrBidAlreadyExists.
	Create(bid *models.Bid) error
	FindByProjectAndSeller(projectID, sellerID string) (*models.Bid, error)
	FindByProject(projectID string) ([]models.Bid, error)
	FindBySeller(sellerID string) ([]models.Bid, error)
	CountByProjects(projectIDs []string) (map[string]int64, error)
}

type BidRepositoryImpl struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) BidRepository {
	return &BidRepositoryImpl{db: db}
}

func (r *BidRepositoryImpl) Create(bid *models.Bid) error {
	err := r.db.Create(bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrBidAlreadyExists
		}
		return err
	}
	return nil
}

func (r *BidRepositoryImpl) FindByProjectAndSeller(projectID, sellerID string) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.First(&bid, "project_id = ? AND seller_id = ?", projectID, sellerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepositoryImpl) FindByProject(projectID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.Preload("Seller").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepositoryImpl) FindBySeller(sellerID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.Preload("Project").Preload("Project.Buyer").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepositoryImpl) CountByProjects(projectIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	if len(projectIDs) == 0 {
		return counts, nil
	}

	type projectCount struct {
		ProjectID string
		Count     int64
	}

	var rows []projectCount
	err := r.db.Model(&models.Bid{}).
		Select("project_id, COUNT(*) as count").
		Where("project_id IN ?", projectIDs).
		Group("project_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ProjectID] = row.Count
	}
	return counts, nil
}
