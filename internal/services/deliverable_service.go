package services

import (
	"errors"

	"bidfield/internal/models"
	"bidfield/internal/repositories"
	"bidfield/internal/services/dto"
	"bidfield/pkg/apperrors"
)

type DeliverableService struct {
	deliverableRepo repositories.DeliverableRepository
	projectRepo     repositories.ProjectRepository
}

func NewDeliverableService(
	deliverableRepo repositories.DeliverableRepository,
	projectRepo repositories.ProjectRepository,
) *DeliverableService {
	return &DeliverableService{
		deliverableRepo: deliverableRepo,
		projectRepo:     projectRepo,
	}
}

// UploadDeliverable прикрепляет файл к проекту. Разрешено только
// выбранному продавцу и только пока проект в работе.
func (s *DeliverableService) UploadDeliverable(projectID, requesterID string, req *dto.CreateDeliverableRequest) (*dto.DeliverableResponse, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	if project.SelectedSellerID == nil || *project.SelectedSellerID != requesterID {
		return nil, apperrors.ErrNotSelectedSeller
	}

	if project.Status != models.ProjectStatusInProgress {
		return nil, apperrors.ErrProjectNotInProgress
	}

	deliverable := &models.Deliverable{
		ProjectID:   project.ID,
		FileName:    req.FileName,
		FileURL:     req.FileURL,
		Description: req.Description,
	}

	if err := s.deliverableRepo.Create(deliverable); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return dto.NewDeliverableResponse(deliverable), nil
}

// GetProjectDeliverables возвращает файлы проекта. Видят их только
// покупатель и выбранный продавец.
func (s *DeliverableService) GetProjectDeliverables(projectID, requesterID string) ([]*dto.DeliverableResponse, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	isBuyer := project.BuyerID == requesterID
	isSelectedSeller := project.SelectedSellerID != nil && *project.SelectedSellerID == requesterID
	if !isBuyer && !isSelectedSeller {
		return nil, apperrors.ErrInsufficientPermissions
	}

	deliverables, err := s.deliverableRepo.FindByProject(projectID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]*dto.DeliverableResponse, 0, len(deliverables))
	for i := range deliverables {
		responses = append(responses, dto.NewDeliverableResponse(&deliverables[i]))
	}
	return responses, nil
}

func (s *DeliverableService) findProject(projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return project, nil
}
