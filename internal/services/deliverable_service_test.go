package services

import (
	"testing"

	"bidfield/internal/models"
	"bidfield/internal/services/dto"
	"bidfield/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDeliverable(t *testing.T) {
	projects := newFakeProjectRepo()
	deliverables := newFakeDeliverableRepo()
	service := NewDeliverableService(deliverables, projects)

	sellerID := newID()
	buyerID := newID()
	strangerID := newID()

	inProgress := projects.add(&models.Project{
		Status:           models.ProjectStatusInProgress,
		BuyerID:          buyerID,
		SelectedSellerID: &sellerID,
	})
	completed := projects.add(&models.Project{
		Status:           models.ProjectStatusCompleted,
		BuyerID:          buyerID,
		SelectedSellerID: &sellerID,
	})
	pending := projects.add(&models.Project{
		Status:  models.ProjectStatusPending,
		BuyerID: buyerID,
	})

	req := &dto.CreateDeliverableRequest{
		FileName: "result.zip",
		FileURL:  "https://files.test/result.zip",
	}

	t.Run("selected seller uploads", func(t *testing.T) {
		resp, err := service.UploadDeliverable(inProgress.ID, sellerID, req)
		require.NoError(t, err)
		assert.Equal(t, "result.zip", resp.FileName)
		assert.Equal(t, inProgress.ID, resp.ProjectID)
	})

	t.Run("stranger rejected", func(t *testing.T) {
		_, err := service.UploadDeliverable(inProgress.ID, strangerID, req)
		assert.ErrorIs(t, err, apperrors.ErrNotSelectedSeller)
	})

	t.Run("buyer rejected", func(t *testing.T) {
		_, err := service.UploadDeliverable(inProgress.ID, buyerID, req)
		assert.ErrorIs(t, err, apperrors.ErrNotSelectedSeller)
	})

	t.Run("no seller selected yet", func(t *testing.T) {
		_, err := service.UploadDeliverable(pending.ID, sellerID, req)
		assert.ErrorIs(t, err, apperrors.ErrNotSelectedSeller)
	})

	t.Run("completed project rejected", func(t *testing.T) {
		_, err := service.UploadDeliverable(completed.ID, sellerID, req)
		assert.ErrorIs(t, err, apperrors.ErrProjectNotInProgress)
	})
}

func TestGetProjectDeliverables(t *testing.T) {
	projects := newFakeProjectRepo()
	deliverables := newFakeDeliverableRepo()
	service := NewDeliverableService(deliverables, projects)

	sellerID := newID()
	buyerID := newID()
	strangerID := newID()

	project := projects.add(&models.Project{
		Status:           models.ProjectStatusInProgress,
		BuyerID:          buyerID,
		SelectedSellerID: &sellerID,
	})
	require.NoError(t, deliverables.Create(&models.Deliverable{
		ProjectID: project.ID,
		FileName:  "draft.pdf",
		FileURL:   "https://files.test/draft.pdf",
	}))

	t.Run("buyer sees files", func(t *testing.T) {
		files, err := service.GetProjectDeliverables(project.ID, buyerID)
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("selected seller sees files", func(t *testing.T) {
		files, err := service.GetProjectDeliverables(project.ID, sellerID)
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("stranger rejected", func(t *testing.T) {
		_, err := service.GetProjectDeliverables(project.ID, strangerID)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	})
}
