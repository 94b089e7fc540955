package models

// Bid is append-only: a seller bids on a project at most once,
// enforced by the composite unique index.
type Bid struct {
	BaseModel
	Amount        int    `gorm:"not null" json:"amount"`
	EstimatedDays int    `gorm:"not null" json:"estimated_days"`
	Message       string `gorm:"not null" json:"message"`
	ProjectID     string `gorm:"type:uuid;not null;uniqueIndex:idx_bids_project_seller" json:"project_id"`
	SellerID      string `gorm:"type:uuid;not null;uniqueIndex:idx_bids_project_seller;index" json:"seller_id"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
	Seller  User    `gorm:"foreignKey:SellerID" json:"-"`
}
