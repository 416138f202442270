package model

import "time"

// Review is a customer's rating of the provider that completed a job.
// The unique index on job_id is the storage backstop for the
// one-review-per-job rule.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	JobID      uint      `json:"job_id" gorm:"uniqueIndex;not null"`
	ProviderID uint      `json:"provider_id" gorm:"not null;index"`
	CustomerID uint      `json:"customer_id" gorm:"not null;index"`
	Rating     int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Job      Job      `json:"-" gorm:"foreignKey:JobID"`
	Provider Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}
