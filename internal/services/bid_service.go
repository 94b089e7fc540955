package services

import (
	"errors"

	"bidfield/internal/models"
	"bidfield/internal/repositories"
	"bidfield/internal/services/dto"
	"bidfield/pkg/apperrors"
)

type BidService struct {
	bidRepo             repositories.BidRepository
	projectRepo         repositories.ProjectRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
}

func NewBidService(
	bidRepo repositories.BidRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
) *BidService {
	return &BidService{
		bidRepo:             bidRepo,
		projectRepo:         projectRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// SubmitBid регистрирует ставку продавца по открытому проекту.
// Повторную ставку того же продавца отсекает уникальный индекс в БД,
// так что гонка двух одновременных запросов разрешается без блокировок.
func (s *BidService) SubmitBid(req *dto.CreateBidRequest) (*dto.BidResponse, error) {
	seller, err := s.userRepo.FindByID(req.SellerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.PersistenceError(err)
	}

	if seller.Role != models.UserRoleSeller {
		return nil, apperrors.ErrInsufficientPermissions
	}

	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if project.Status != models.ProjectStatusPending {
		return nil, apperrors.ErrProjectNotPending
	}

	if project.BuyerID == seller.ID {
		return nil, apperrors.ErrInvalidOperation("bid", "Cannot bid on your own project")
	}

	bid := &models.Bid{
		ProjectID:     project.ID,
		SellerID:      seller.ID,
		Amount:        req.Amount,
		EstimatedDays: req.EstimatedDays,
		Message:       req.Message,
	}

	if err := s.bidRepo.Create(bid); err != nil {
		if errors.Is(err, repositories.ErrBidAlreadyExists) {
			return nil, apperrors.ErrBidAlreadyExists
		}
		return nil, apperrors.PersistenceError(err)
	}

	bid.Seller = *seller

	go s.notificationService.NotifyNewBid(&project.Buyer, project, seller.Name, bid.Amount)

	return dto.NewBidResponse(bid), nil
}

// GetProjectBids возвращает все ставки по проекту. Доступно только владельцу:
// продавцы не видят предложения конкурентов.
func (s *BidService) GetProjectBids(projectID, requesterID string) ([]*dto.BidResponse, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if project.BuyerID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	bids, err := s.bidRepo.FindByProject(projectID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]*dto.BidResponse, 0, len(bids))
	for i := range bids {
		responses = append(responses, dto.NewBidResponse(&bids[i]))
	}
	return responses, nil
}
