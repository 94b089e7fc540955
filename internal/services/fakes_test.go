package services

import (
	"fmt"
	"sync"

	"bidfield/internal/models"
	"bidfield/internal/repositories"
)

// In-memory фейки репозиториев для юнит-тестов сервисов.

func newID() string {
	idSeq++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", idSeq)
}

var idSeq int

// --- users ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(name, email string, role models.UserRole) *models.User {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Role:         role,
	}
	user.ID = newID()
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	user.ID = newID()
	r.users[user.ID] = user
	return nil
}

// --- projects ---

type fakeProjectRepo struct {
	projects map[string]*models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*models.Project)}
}

func (r *fakeProjectRepo) add(project *models.Project) *models.Project {
	if project.ID == "" {
		project.ID = newID()
	}
	r.projects[project.ID] = project
	return project
}

func (r *fakeProjectRepo) Create(project *models.Project) error {
	project.ID = newID()
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) FindByID(id string) (*models.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) FindPending() ([]models.Project, error) {
	var result []models.Project
	for _, project := range r.projects {
		if project.Status == models.ProjectStatusPending {
			result = append(result, *project)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) FindByBuyer(buyerID string) ([]models.Project, error) {
	var result []models.Project
	for _, project := range r.projects {
		if project.BuyerID == buyerID {
			result = append(result, *project)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) FindBySelectedSeller(sellerID string) ([]models.Project, error) {
	var result []models.Project
	for _, project := range r.projects {
		if project.SelectedSellerID != nil && *project.SelectedSellerID == sellerID {
			result = append(result, *project)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) SelectSeller(projectID, sellerID string) error {
	project, ok := r.projects[projectID]
	if !ok || project.Status != models.ProjectStatusPending {
		return repositories.ErrProjectStatusConflict
	}
	project.Status = models.ProjectStatusInProgress
	project.SelectedSellerID = &sellerID
	return nil
}

func (r *fakeProjectRepo) Complete(projectID string) error {
	project, ok := r.projects[projectID]
	if !ok || project.Status != models.ProjectStatusInProgress {
		return repositories.ErrProjectStatusConflict
	}
	project.Status = models.ProjectStatusCompleted
	return nil
}

// --- bids ---

type fakeBidRepo struct {
	bids []*models.Bid
}

func newFakeBidRepo() *fakeBidRepo {
	return &fakeBidRepo{}
}

func (r *fakeBidRepo) Create(bid *models.Bid) error {
	for _, existing := range r.bids {
		if existing.ProjectID == bid.ProjectID && existing.SellerID == bid.SellerID {
			return repositories.ErrBidAlreadyExists
		}
	}
	bid.ID = newID()
	r.bids = append(r.bids, bid)
	return nil
}

func (r *fakeBidRepo) FindByProjectAndSeller(projectID, sellerID string) (*models.Bid, error) {
	for _, bid := range r.bids {
		if bid.ProjectID == projectID && bid.SellerID == sellerID {
			return bid, nil
		}
	}
	return nil, repositories.ErrBidNotFound
}

func (r *fakeBidRepo) FindByProject(projectID string) ([]models.Bid, error) {
	var result []models.Bid
	for _, bid := range r.bids {
		if bid.ProjectID == projectID {
			result = append(result, *bid)
		}
	}
	return result, nil
}

func (r *fakeBidRepo) FindBySeller(sellerID string) ([]models.Bid, error) {
	var result []models.Bid
	for _, bid := range r.bids {
		if bid.SellerID == sellerID {
			result = append(result, *bid)
		}
	}
	return result, nil
}

func (r *fakeBidRepo) CountByProjects(projectIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, id := range projectIDs {
		for _, bid := range r.bids {
			if bid.ProjectID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

// --- deliverables ---

type fakeDeliverableRepo struct {
	deliverables []*models.Deliverable
}

func newFakeDeliverableRepo() *fakeDeliverableRepo {
	return &fakeDeliverableRepo{}
}

func (r *fakeDeliverableRepo) Create(deliverable *models.Deliverable) error {
	deliverable.ID = newID()
	r.deliverables = append(r.deliverables, deliverable)
	return nil
}

func (r *fakeDeliverableRepo) FindByProject(projectID string) ([]models.Deliverable, error) {
	var result []models.Deliverable
	for _, d := range r.deliverables {
		if d.ProjectID == projectID {
			result = append(result, *d)
		}
	}
	return result, nil
}

// --- notifications ---

// recordingNotifier фиксирует вызовы Notify*. Сервисы зовут их в горутинах,
// поэтому доступ под мьютексом.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{}
}

func (n *recordingNotifier) record(call string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, call)
}

func (n *recordingNotifier) callCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func (n *recordingNotifier) has(call string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, c := range n.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (n *recordingNotifier) NotifyNewBid(buyer *models.User, project *models.Project, bidderName string, amount int) {
	n.record("new_bid:" + buyer.ID)
}

func (n *recordingNotifier) NotifySellerSelected(seller *models.User, project *models.Project, buyerName string) {
	n.record("seller_selected:" + seller.ID)
}

func (n *recordingNotifier) NotifyProjectCompleted(buyer *models.User, project *models.Project, sellerName string) {
	n.record("project_completed:" + buyer.ID)
}

func (n *recordingNotifier) GetUserNotifications(userID string, limit int) ([]models.Notification, error) {
	return nil, nil
}

func (n *recordingNotifier) GetUnreadCount(userID string) (int64, error) {
	return 0, nil
}

func (n *recordingNotifier) MarkAsRead(userID, notificationID string) error {
	return nil
}

func (n *recordingNotifier) MarkAllAsRead(userID string) error {
	return nil
}
