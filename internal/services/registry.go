package services

import (
	"bidfield/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         *AuthService
	ProjectService      *ProjectService
	BidService          *BidService
	DeliverableService  *DeliverableService
	DashboardService    *DashboardService
	NotificationService NotificationService
	EmailService        email.Provider
}
