package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferStatus represents the lifecycle state of an offer.
type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "pending"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusRejected  OfferStatus = "rejected"
	OfferStatusWithdrawn OfferStatus = "withdrawn"
)

// Offer represents a provider's bid on a job. The (job_id, provider_id)
// unique index is the storage backstop for the one-offer-per-provider rule.
type Offer struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	JobID      uint            `json:"job_id" gorm:"not null;uniqueIndex:idx_offers_job_provider"`
	ProviderID uint            `json:"provider_id" gorm:"not null;uniqueIndex:idx_offers_job_provider"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Message    string          `json:"message,omitempty" gorm:"type:text"`
	Status     OfferStatus     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relations
	Job      Job      `json:"-" gorm:"foreignKey:JobID"`
	Provider Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}
