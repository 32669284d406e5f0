package models

// Site is a client premises containing one or more duty posts
type Site struct {
	BaseModel
	Code     string `json:"code" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
	Name     string `json:"name" gorm:"size:120;not null" validate:"required,max=120"`
	Timezone string `json:"timezone" gorm:"size:64;not null;default:'UTC'"`
	IsActive bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for Site
func (Site) TableName() string {
	return "sites"
}
