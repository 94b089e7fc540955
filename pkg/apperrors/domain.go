package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок
workflow-а проектов и ставок.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- Projects ---

// ErrProjectNotPending - операция возможна только пока проект открыт для ставок.
var ErrProjectNotPending = New(
	CodeInvalidStatus,
	"project",
	"Operation not allowed for the current project status",
	http.StatusConflict,
)

// ErrProjectNotInProgress - операция возможна только по проекту в работе.
var ErrProjectNotInProgress = New(
	CodeInvalidStatus,
	"project",
	"Project is not in progress",
	http.StatusConflict,
)

var ErrInvalidBudgetRange = New(
	CodeValidationFailed,
	"validation",
	"Maximum budget cannot be less than minimum budget",
	http.StatusBadRequest,
)

var ErrDeadlineInPast = New(
	CodeValidationFailed,
	"validation",
	"Deadline must be in the future",
	http.StatusBadRequest,
)

// --- Bids ---

var ErrBidAlreadyExists = New(
	CodeAlreadyExists,
	"bid",
	"You have already bid on this project",
	http.StatusConflict,
)

// ErrSellerHasNoBid - выбранный продавец не оставлял ставку по проекту.
var ErrSellerHasNoBid = New(
	CodeInvalidOperation,
	"bid",
	"Selected seller has no bid on this project",
	http.StatusBadRequest,
)

// --- Deliverables ---

// ErrNotSelectedSeller - загружать файлы может только выбранный продавец.
var ErrNotSelectedSeller = New(
	CodeForbidden,
	"deliverable",
	"Only the selected seller can upload deliverables",
	http.StatusForbidden,
)
