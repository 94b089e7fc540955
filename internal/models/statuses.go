package models

type UserRole string
type ProjectStatus string
type NotificationType string

const (
	UserRoleBuyer  UserRole = "buyer"
	UserRoleSeller UserRole = "seller"

	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"

	NotificationTypeNewBid           NotificationType = "new_bid"
	NotificationTypeSellerSelected   NotificationType = "seller_selected"
	NotificationTypeProjectCompleted NotificationType = "project_completed"
)
