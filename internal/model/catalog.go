package model

// Category groups services offered on the marketplace.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:150;not null;uniqueIndex"`
	Slug        string `json:"slug" gorm:"size:150;not null;uniqueIndex"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	Services []Service `json:"services,omitempty" gorm:"foreignKey:CategoryID"`
}

// Service is a concrete service type a job can request (e.g. plumbing).
type Service struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CategoryID  uint   `json:"category_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"size:150;not null"`
	Slug        string `json:"slug" gorm:"size:150;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	Category Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// District is a geographic area jobs are posted in.
type District struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100;not null"`
	CityName string `json:"city_name" gorm:"size:100;not null"`
}
