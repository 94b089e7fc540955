package services

import (
	"errors"

	"bidfield/internal/models"
	"bidfield/internal/repositories"
	"bidfield/internal/services/dto"
	"bidfield/pkg/apperrors"
)

type DashboardService struct {
	projectRepo repositories.ProjectRepository
	bidRepo     repositories.BidRepository
	userRepo    repositories.UserRepository
}

func NewDashboardService(
	projectRepo repositories.ProjectRepository,
	bidRepo repositories.BidRepository,
	userRepo repositories.UserRepository,
) *DashboardService {
	return &DashboardService{
		projectRepo: projectRepo,
		bidRepo:     bidRepo,
		userRepo:    userRepo,
	}
}

// GetBuyerDashboard возвращает все проекты покупателя с числом ставок.
func (s *DashboardService) GetBuyerDashboard(userID string) (*dto.BuyerDashboard, error) {
	if err := s.requireRole(userID, models.UserRoleBuyer); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.FindByBuyer(userID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	ids := make([]string, 0, len(projects))
	for i := range projects {
		ids = append(ids, projects[i].ID)
	}

	counts, err := s.bidRepo.CountByProjects(ids)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, dto.NewProjectResponse(&projects[i], counts[projects[i].ID]))
	}

	return &dto.BuyerDashboard{Projects: responses}, nil
}

// GetSellerDashboard возвращает ставки продавца и проекты,
// где его выбрали исполнителем.
func (s *DashboardService) GetSellerDashboard(userID string) (*dto.SellerDashboard, error) {
	if err := s.requireRole(userID, models.UserRoleSeller); err != nil {
		return nil, err
	}

	bids, err := s.bidRepo.FindBySeller(userID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	bidResponses := make([]*dto.SellerBidResponse, 0, len(bids))
	for i := range bids {
		bidResponses = append(bidResponses, dto.NewSellerBidResponse(&bids[i]))
	}

	selected, err := s.projectRepo.FindBySelectedSeller(userID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	selectedResponses := make([]*dto.ProjectResponse, 0, len(selected))
	for i := range selected {
		selectedResponses = append(selectedResponses, dto.NewProjectResponse(&selected[i], 0))
	}

	return &dto.SellerDashboard{
		Bids:             bidResponses,
		SelectedProjects: selectedResponses,
	}, nil
}

func (s *DashboardService) requireRole(userID string, role models.UserRole) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewUnauthorizedError("User not found")
		}
		return apperrors.PersistenceError(err)
	}
	if user.Role != role {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}
