package model

import "time"

// JobStatus represents the lifecycle state of a job.
type JobStatus string

const (
	JobStatusOpen      JobStatus = "open"
	JobStatusAssigned  JobStatus = "assigned"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Job represents a customer's posted service request.
type Job struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CustomerID  uint      `json:"customer_id" gorm:"not null;index"`
	ServiceID   uint      `json:"service_id" gorm:"not null;index"`
	DistrictID  uint      `json:"district_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Status      JobStatus `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	IsActive    bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Customer Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Service  Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	District District `json:"district,omitempty" gorm:"foreignKey:DistrictID"`
	Offers   []Offer  `json:"offers,omitempty" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Review   *Review  `json:"review,omitempty" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// Customer is the slim user projection embedded in job responses. It maps
// onto the users table and never carries credentials.
type Customer struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TableName maps the Customer projection onto the users table.
func (Customer) TableName() string { return "users" }
