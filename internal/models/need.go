package models

import (
	"time"

	"gorm.io/gorm"
)

// Need is an NGO-posted demand signal, distinct from a donation listing.
type Need struct {
	gorm.Model
	NGOID             uint             `gorm:"not null;index" json:"ngo_id"`
	NGO               NGOProfile       `gorm:"foreignKey:NGOID" json:"-"`
	Title             string           `gorm:"not null" json:"title"`
	Description       string           `gorm:"type:text;not null" json:"description"`
	Category          DonationCategory `gorm:"not null" json:"category"`
	QuantityNeeded    int              `gorm:"not null" json:"quantity_needed"`
	FulfilledQuantity int              `gorm:"not null;default:0" json:"fulfilled_quantity"`
	Deadline          *time.Time       `json:"deadline,omitempty"`
	IsEvent           bool             `gorm:"default:false" json:"is_event"`
	EventDate         *time.Time       `json:"event_date,omitempty"`
}

// Progress reports fulfilment as a ratio in [0, 1]. QuantityNeeded is
// validated to be at least 1 on creation, the zero guard is for rows
// that predate that check.
func (n Need) Progress() float64 {
	if n.QuantityNeeded <= 0 {
		return 0
	}
	p := float64(n.FulfilledQuantity) / float64(n.QuantityNeeded)
	if p > 1 {
		return 1
	}
	return p
}
