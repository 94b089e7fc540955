package models

import "time"

type Project struct {
	BaseModel
	Title            string        `gorm:"not null" json:"title"`
	Description      string        `gorm:"not null" json:"description"`
	BudgetMin        int           `gorm:"not null" json:"budget_min"`
	BudgetMax        int           `gorm:"not null" json:"budget_max"`
	Deadline         time.Time     `gorm:"not null" json:"deadline"`
	Status           ProjectStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	BuyerID          string        `gorm:"type:uuid;not null;index" json:"buyer_id"`
	SelectedSellerID *string       `gorm:"type:uuid" json:"selected_seller_id"`

	// Relations
	Buyer          User          `gorm:"foreignKey:BuyerID" json:"-"`
	SelectedSeller *User         `gorm:"foreignKey:SelectedSellerID" json:"-"`
	Bids           []Bid         `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Deliverables   []Deliverable `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}
