package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Name         string   `gorm:"not null" json:"name"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	Projects []Project `gorm:"foreignKey:BuyerID" json:"-"`
	Bids     []Bid     `gorm:"foreignKey:SellerID" json:"-"`
}
