package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProjectHandler      *ProjectHandler
	DashboardHandler    *DashboardHandler
	NotificationHandler *NotificationHandler
}
