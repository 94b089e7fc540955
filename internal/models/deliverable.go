package models

type Deliverable struct {
	BaseModel
	FileName    string  `gorm:"not null" json:"file_name"`
	FileURL     string  `gorm:"not null" json:"file_url"`
	Description *string `json:"description"`
	ProjectID   string  `gorm:"type:uuid;not null;index" json:"project_id"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}
