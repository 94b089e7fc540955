package services

import (
	"errors"
	"time"

	"bidfield/internal/models"
	"bidfield/internal/repositories"
	"bidfield/internal/services/dto"
	"bidfield/pkg/apperrors"
)

type ProjectService struct {
	projectRepo         repositories.ProjectRepository
	bidRepo             repositories.BidRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	bidRepo repositories.BidRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
) *ProjectService {
	return &ProjectService{
		projectRepo:         projectRepo,
		bidRepo:             bidRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// Project Operations

func (s *ProjectService) CreateProject(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	buyer, err := s.findCaller(req.BuyerID)
	if err != nil {
		return nil, err
	}

	if buyer.Role != models.UserRoleBuyer {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.BudgetMax < req.BudgetMin {
		return nil, apperrors.ErrInvalidBudgetRange
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid deadline format, expected RFC3339 or YYYY-MM-DD")
	}
	if !deadline.After(time.Now()) {
		return nil, apperrors.ErrDeadlineInPast
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Deadline:    deadline,
		Status:      models.ProjectStatusPending,
		BuyerID:     buyer.ID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	project.Buyer = *buyer
	return dto.NewProjectResponse(project, 0), nil
}

// ListOpenProjects возвращает все проекты, открытые для ставок,
// новые сверху, с количеством ставок по каждому.
func (s *ProjectService) ListOpenProjects() ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindPending()
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return s.buildProjectResponses(projects)
}

func (s *ProjectService) GetProject(projectID string) (*dto.ProjectResponse, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	counts, err := s.bidRepo.CountByProjects([]string{project.ID})
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return dto.NewProjectResponse(project, counts[project.ID]), nil
}

// SelectSeller переводит проект pending -> in_progress и закрепляет
// исполнителя. Выбранный продавец обязан иметь ставку по проекту.
func (s *ProjectService) SelectSeller(projectID, requesterID string, req *dto.SelectSellerRequest) (*dto.ProjectResponse, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	if project.BuyerID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if project.Status != models.ProjectStatusPending {
		return nil, apperrors.ErrProjectNotPending
	}

	seller, err := s.userRepo.FindByID(req.SellerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrSellerHasNoBid
		}
		return nil, apperrors.PersistenceError(err)
	}

	if seller.Role != models.UserRoleSeller {
		return nil, apperrors.ErrInvalidOperation("project", "Selected user is not a seller")
	}

	if _, err := s.bidRepo.FindByProjectAndSeller(projectID, seller.ID); err != nil {
		if errors.Is(err, repositories.ErrBidNotFound) {
			return nil, apperrors.ErrSellerHasNoBid
		}
		return nil, apperrors.PersistenceError(err)
	}

	if err := s.projectRepo.SelectSeller(projectID, seller.ID); err != nil {
		if errors.Is(err, repositories.ErrProjectStatusConflict) {
			// Конкурентный запрос успел увести проект из pending
			return nil, apperrors.ErrProjectNotPending
		}
		return nil, apperrors.PersistenceError(err)
	}

	project.Status = models.ProjectStatusInProgress
	project.SelectedSellerID = &seller.ID
	project.SelectedSeller = seller

	go s.notificationService.NotifySellerSelected(seller, project, project.Buyer.Name)

	counts, err := s.bidRepo.CountByProjects([]string{project.ID})
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return dto.NewProjectResponse(project, counts[project.ID]), nil
}

// CompleteProject переводит проект in_progress -> completed.
func (s *ProjectService) CompleteProject(projectID, requesterID string) (*dto.ProjectResponse, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	if project.BuyerID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if project.Status != models.ProjectStatusInProgress {
		return nil, apperrors.ErrProjectNotInProgress
	}

	if err := s.projectRepo.Complete(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectStatusConflict) {
			return nil, apperrors.ErrProjectNotInProgress
		}
		return nil, apperrors.PersistenceError(err)
	}

	project.Status = models.ProjectStatusCompleted

	sellerName := ""
	if project.SelectedSeller != nil {
		sellerName = project.SelectedSeller.Name
	}
	go s.notificationService.NotifyProjectCompleted(&project.Buyer, project, sellerName)

	counts, err := s.bidRepo.CountByProjects([]string{project.ID})
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return dto.NewProjectResponse(project, counts[project.ID]), nil
}

// Helper Methods

func (s *ProjectService) findCaller(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.PersistenceError(err)
	}
	return user, nil
}

func (s *ProjectService) findProject(projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return project, nil
}

func (s *ProjectService) buildProjectResponses(projects []models.Project) ([]*dto.ProjectResponse, error) {
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}

	counts, err := s.bidRepo.CountByProjects(ids)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, dto.NewProjectResponse(&projects[i], counts[projects[i].ID]))
	}
	return responses, nil
}

func parseDeadline(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
