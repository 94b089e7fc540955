package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"bidfield/internal/models"
	"bidfield/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkflow_FullLifecycle - E2E "золотой путь":
// создание проекта -> ставки -> выбор продавца -> файлы -> завершение.
func TestWorkflow_FullLifecycle(t *testing.T) {
	ts := GetTestServer(t)

	buyerToken, buyer := helpers.CreateAndLoginBuyer(t, ts)
	sellerToken, seller := helpers.CreateAndLoginSeller(t, ts)
	otherSellerToken, _ := helpers.CreateAndLoginSeller(t, ts)

	// 1. Покупатель создает проект
	projectBody := map[string]interface{}{
		"title":       "Landing page redesign",
		"description": "Need a fresh look for our landing page",
		"budget_min":  500,
		"budget_max":  1500,
		"deadline":    time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/projects", buyerToken, projectBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var project struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &project))
	assert.Equal(t, "pending", project.Status)
	assert.NotEmpty(t, project.ID)

	// 2. Два продавца оставляют ставки
	bidBody := map[string]interface{}{
		"amount":         900,
		"estimated_days": 10,
		"message":        "I have done similar redesigns",
	}
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/bids", sellerToken, bidBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	bidBody["amount"] = 1100
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/bids", otherSellerToken, bidBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// 3. Покупатель видит обе ставки
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/projects/"+project.ID+"/bids", buyerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var bidList struct {
		Bids []struct {
			SellerID string `json:"seller_id"`
			Amount   int    `json:"amount"`
		} `json:"bids"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &bidList))
	assert.Len(t, bidList.Bids, 2)

	// Конкурент ставок не видит
	res, _ = ts.SendRequest(t, "GET", "/api/v1/projects/"+project.ID+"/bids", otherSellerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// 4. Покупатель выбирает первого продавца
	selectBody := map[string]interface{}{"seller_id": seller.ID}
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/select-seller", buyerToken, selectBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "in_progress")
	assert.Contains(t, bodyStr, seller.ID)

	// 5. Выбранный продавец загружает файл
	deliverableBody := map[string]interface{}{
		"file_name": "design-v1.fig",
		"file_url":  "https://files.test/design-v1.fig",
	}
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/deliverables", sellerToken, deliverableBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	// Невыбранный продавец загрузить не может
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/deliverables", otherSellerToken, deliverableBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Покупатель видит файлы
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/projects/"+project.ID+"/deliverables", buyerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "design-v1.fig")

	// 6. Покупатель завершает проект
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/complete", buyerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "completed")

	// 7. У участников появились уведомления
	// Уведомления пишутся асинхронно, даем горутинам завершиться
	time.Sleep(500 * time.Millisecond)

	var buyerNotifications int64
	ts.DB.Model(&models.Notification{}).Where("user_id = ?", buyer.ID).Count(&buyerNotifications)
	assert.GreaterOrEqual(t, buyerNotifications, int64(1), "Покупатель должен получить уведомления о ставках и завершении")

	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/notifications", sellerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "seller_selected")
}

// TestWorkflow_DuplicateBidRejected - вторая ставка того же продавца дает 409
func TestWorkflow_DuplicateBidRejected(t *testing.T) {
	ts := GetTestServer(t)

	_, buyer := helpers.CreateAndLoginBuyer(t, ts)
	sellerToken, _ := helpers.CreateAndLoginSeller(t, ts)
	project := helpers.CreateTestProject(t, ts.DB, buyer.ID, models.ProjectStatusPending)

	bidBody := map[string]interface{}{
		"amount":         300,
		"estimated_days": 7,
		"message":        "First bid",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/bids", sellerToken, bidBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	bidBody["amount"] = 250
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/bids", sellerToken, bidBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode, "Ответ: "+bodyStr)

	// В БД осталась ровно одна ставка
	var count int64
	ts.DB.Model(&models.Bid{}).Where("project_id = ?", project.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestWorkflow_BidOnClosedProject - ставка по проекту не в pending дает 409
func TestWorkflow_BidOnClosedProject(t *testing.T) {
	ts := GetTestServer(t)

	_, buyer := helpers.CreateAndLoginBuyer(t, ts)
	sellerToken, _ := helpers.CreateAndLoginSeller(t, ts)
	project := helpers.CreateTestProject(t, ts.DB, buyer.ID, models.ProjectStatusInProgress)

	bidBody := map[string]interface{}{
		"amount":         300,
		"estimated_days": 7,
		"message":        "Too late",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/bids", sellerToken, bidBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

// TestWorkflow_BuyerCannotBid - покупатель не может оставить ставку
func TestWorkflow_BuyerCannotBid(t *testing.T) {
	ts := GetTestServer(t)

	buyerToken, buyer := helpers.CreateAndLoginBuyer(t, ts)
	project := helpers.CreateTestProject(t, ts.DB, buyer.ID, models.ProjectStatusPending)

	bidBody := map[string]interface{}{
		"amount":         300,
		"estimated_days": 7,
		"message":        "I want my own project",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/bids", buyerToken, bidBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestWorkflow_SelectSellerGuards - выбор продавца: чужой проект,
// продавец без ставки, повторный выбор.
func TestWorkflow_SelectSellerGuards(t *testing.T) {
	ts := GetTestServer(t)

	buyerToken, buyer := helpers.CreateAndLoginBuyer(t, ts)
	otherBuyerToken, _ := helpers.CreateAndLoginBuyer(t, ts)
	_, seller := helpers.CreateAndLoginSeller(t, ts)
	_, idleSeller := helpers.CreateAndLoginSeller(t, ts)

	project := helpers.CreateTestProject(t, ts.DB, buyer.ID, models.ProjectStatusPending)
	helpers.CreateTestBid(t, ts.DB, project.ID, seller.ID)

	selectBody := map[string]interface{}{"seller_id": seller.ID}

	// Чужой покупатель - 403
	res, _ := ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/select-seller", otherBuyerToken, selectBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Продавец без ставки - 400
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/select-seller", buyerToken, map[string]interface{}{"seller_id": idleSeller.ID})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Успешный выбор
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/select-seller", buyerToken, selectBody)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Повторный выбор - 409, проект уже не pending
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects/"+project.ID+"/select-seller", buyerToken, selectBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

// TestWorkflow_CompleteGuards - завершение только владельцем и только из in_progress
func TestWorkflow_CompleteGuards(t *testing.T) {
	ts := GetTestServer(t)

	buyerToken, buyer := helpers.CreateAndLoginBuyer(t, ts)
	otherBuyerToken, _ := helpers.CreateAndLoginBuyer(t, ts)

	pending := helpers.CreateTestProject(t, ts.DB, buyer.ID, models.ProjectStatusPending)

	// pending завершить нельзя - 409
	res, _ := ts.SendRequest(t, "POST", "/api/v1/projects/"+pending.ID+"/complete", buyerToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	inProgress := helpers.CreateTestProject(t, ts.DB, buyer.ID, models.ProjectStatusInProgress)

	// Чужой покупатель - 403
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects/"+inProgress.ID+"/complete", otherBuyerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Владелец - 200
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects/"+inProgress.ID+"/complete", buyerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Повторное завершение - 409
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects/"+inProgress.ID+"/complete", buyerToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

// TestWorkflow_CreateProjectValidation - бюджет и дедлайн проверяются до записи
func TestWorkflow_CreateProjectValidation(t *testing.T) {
	ts := GetTestServer(t)

	buyerToken, _ := helpers.CreateAndLoginBuyer(t, ts)
	sellerToken, _ := helpers.CreateAndLoginSeller(t, ts)

	valid := map[string]interface{}{
		"title":       "Valid project",
		"description": "desc",
		"budget_min":  100,
		"budget_max":  500,
		"deadline":    time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
	}

	// budget_max < budget_min - 400
	bad := map[string]interface{}{}
	for k, v := range valid {
		bad[k] = v
	}
	bad["budget_min"] = 500
	bad["budget_max"] = 100
	res, _ := ts.SendRequest(t, "POST", "/api/v1/projects", buyerToken, bad)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Дедлайн в прошлом - 400
	bad = map[string]interface{}{}
	for k, v := range valid {
		bad[k] = v
	}
	bad["deadline"] = "2020-01-01"
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects", buyerToken, bad)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Продавец создать проект не может - 403
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects", sellerToken, valid)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Валидный проект - 201
	res, _ = ts.SendRequest(t, "POST", "/api/v1/projects", buyerToken, valid)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

// TestWorkflow_Dashboards - дашборды собирают данные по роли из токена
func TestWorkflow_Dashboards(t *testing.T) {
	ts := GetTestServer(t)

	buyerToken, buyer := helpers.CreateAndLoginBuyer(t, ts)
	sellerToken, seller := helpers.CreateAndLoginSeller(t, ts)

	project := helpers.CreateTestProject(t, ts.DB, buyer.ID, models.ProjectStatusPending)
	helpers.CreateTestBid(t, ts.DB, project.ID, seller.ID)

	// Дашборд покупателя: его проект и число ставок
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/dashboard", buyerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var buyerDashboard struct {
		Projects []struct {
			ID       string `json:"id"`
			BidCount int64  `json:"bid_count"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &buyerDashboard))
	require.Len(t, buyerDashboard.Projects, 1)
	assert.Equal(t, project.ID, buyerDashboard.Projects[0].ID)
	assert.Equal(t, int64(1), buyerDashboard.Projects[0].BidCount)

	// Дашборд продавца: его ставка с проектом
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/dashboard", sellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, project.ID)
	assert.Contains(t, bodyStr, "\"bids\"")
}

// TestWorkflow_OpenProjectsListing - в списке только pending, новые сверху
func TestWorkflow_OpenProjectsListing(t *testing.T) {
	ts := GetTestServer(t)

	sellerToken, _ := helpers.CreateAndLoginSeller(t, ts)
	_, buyer := helpers.CreateAndLoginBuyer(t, ts)

	pending := helpers.CreateTestProject(t, ts.DB, buyer.ID, models.ProjectStatusPending)
	helpers.CreateTestProject(t, ts.DB, buyer.ID, models.ProjectStatusInProgress)
	helpers.CreateTestProject(t, ts.DB, buyer.ID, models.ProjectStatusCompleted)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/projects", sellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Projects []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list.Projects, 1)
	assert.Equal(t, pending.ID, list.Projects[0].ID)
	assert.Equal(t, "pending", list.Projects[0].Status)
}
