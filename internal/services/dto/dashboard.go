package dto

// BuyerDashboard - проекты покупателя с количеством ставок и
// выбранным продавцом, новые сверху.
type BuyerDashboard struct {
	Projects []*ProjectResponse `json:"projects"`
}

// SellerDashboard - ставки продавца (с проектом и его покупателем)
// плюс проекты, где продавец выбран исполнителем.
type SellerDashboard struct {
	Bids             []*SellerBidResponse `json:"bids"`
	SelectedProjects []*ProjectResponse   `json:"selected_projects"`
}
