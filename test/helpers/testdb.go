package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"bidfield/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя с автоматическим хешированием пароля.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", user.Email, err)
	}
}

// CreateAndLoginUser создает пользователя и логинит его через API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password, // Сырой пароль, CreateUser захеширует
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err)
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginBuyer создает покупателя с уникальным email.
func CreateAndLoginBuyer(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("buyer_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Buyer", email, "password123", models.UserRoleBuyer)
}

// CreateAndLoginSeller создает продавца с уникальным email.
func CreateAndLoginSeller(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("seller_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Seller", email, "password123", models.UserRoleSeller)
}

// CreateTestProject создает проект напрямую в БД.
func CreateTestProject(t *testing.T, db *gorm.DB, buyerID string, status models.ProjectStatus) *models.Project {
	project := &models.Project{
		Title:       "Test Project",
		Description: "Test description",
		BudgetMin:   100,
		BudgetMax:   500,
		Deadline:    time.Now().AddDate(0, 1, 0),
		Status:      status,
		BuyerID:     buyerID,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("Не удалось создать тестовый проект: %v", err)
	}
	return project
}

// CreateTestBid создает ставку напрямую в БД.
func CreateTestBid(t *testing.T, db *gorm.DB, projectID, sellerID string) *models.Bid {
	bid := &models.Bid{
		ProjectID:     projectID,
		SellerID:      sellerID,
		Amount:        300,
		EstimatedDays: 14,
		Message:       "I can do this",
	}
	if err := db.Create(bid).Error; err != nil {
		t.Fatalf("Не удалось создать тестовую ставку: %v", err)
	}
	return bid
}
