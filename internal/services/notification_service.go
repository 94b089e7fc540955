package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"bidfield/internal/config"
	"bidfield/internal/email"
	"bidfield/internal/logger"
	"bidfield/internal/models"
	"bidfield/internal/repositories"
	"bidfield/pkg/apperrors"

	"gorm.io/datatypes"
)

// NotificationService шлет уведомления о событиях workflow-а.
// Все Notify* методы best-effort: вызываются из сервисов через `go`,
// ошибки логируются и никогда не доходят до вызывающей операции.
type NotificationService interface {
	NotifyNewBid(buyer *models.User, project *models.Project, bidderName string, amount int)
	NotifySellerSelected(seller *models.User, project *models.Project, buyerName string)
	NotifyProjectCompleted(buyer *models.User, project *models.Project, sellerName string)

	GetUserNotifications(userID string, limit int) ([]models.Notification, error)
	GetUnreadCount(userID string) (int64, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
	baseURL          string
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
	cfg *config.Config,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
		baseURL:          cfg.App.BaseURL,
	}
}

// ---------------- Workflow notifications ----------------

func (s *notificationService) NotifyNewBid(buyer *models.User, project *models.Project, bidderName string, amount int) {
	s.persist(buyer.ID, models.NotificationTypeNewBid,
		"New bid received",
		fmt.Sprintf("%s placed a bid of $%d on \"%s\"", bidderName, amount, project.Title),
		map[string]interface{}{"project_id": project.ID, "amount": amount},
	)

	s.send(buyer.Email, "New Bid Received",
		email.NewBidBody(project.Title, bidderName, amount, s.baseURL))
}

func (s *notificationService) NotifySellerSelected(seller *models.User, project *models.Project, buyerName string) {
	s.persist(seller.ID, models.NotificationTypeSellerSelected,
		"You have been selected for a project",
		fmt.Sprintf("%s selected you for \"%s\"", buyerName, project.Title),
		map[string]interface{}{"project_id": project.ID},
	)

	s.send(seller.Email, "You have been selected for a project!",
		email.SellerSelectedBody(project.Title, buyerName, s.baseURL))
}

func (s *notificationService) NotifyProjectCompleted(buyer *models.User, project *models.Project, sellerName string) {
	s.persist(buyer.ID, models.NotificationTypeProjectCompleted,
		"Project completed",
		fmt.Sprintf("\"%s\" has been completed by %s", project.Title, sellerName),
		map[string]interface{}{"project_id": project.ID},
	)

	s.send(buyer.Email, "Project Completed",
		email.ProjectCompletedBody(project.Title, sellerName, s.baseURL))
}

func (s *notificationService) persist(userID string, ntype models.NotificationType, title, message string, data map[string]interface{}) {
	var dataJSON datatypes.JSON
	if data != nil {
		if raw, err := json.Marshal(data); err == nil {
			dataJSON = datatypes.JSON(raw)
		}
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    ntype,
		Title:   title,
		Message: message,
		Data:    dataJSON,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		logger.Error("failed to persist notification", "type", ntype, "user_id", userID, "error", err)
	}
}

func (s *notificationService) send(to, subject, html string) {
	err := s.emailProvider.Send(&email.Message{
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		logger.Error("failed to send notification email", "to", to, "subject", subject, "error", err)
	}
}

// ---------------- Inbox operations ----------------

func (s *notificationService) GetUserNotifications(userID string, limit int) ([]models.Notification, error) {
	return s.notificationRepo.FindByUser(userID, limit)
}

func (s *notificationService) GetUnreadCount(userID string) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

func (s *notificationService) MarkAsRead(userID, notificationID string) error {
	err := s.notificationRepo.MarkAsRead(userID, notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(userID string) error {
	return s.notificationRepo.MarkAllAsRead(userID)
}
