package models

import (
	"time"

	"gorm.io/gorm"
)

type DonationCategory string

const (
	CategoryFood        DonationCategory = "Food"
	CategoryClothes     DonationCategory = "Clothes"
	CategoryBooks       DonationCategory = "Books"
	CategoryToys        DonationCategory = "Toys"
	CategoryElectronics DonationCategory = "Electronics"
	CategoryOther       DonationCategory = "Other"
)

type DonationStatus string

const (
	DonationAvailable DonationStatus = "Available"
	DonationReserved  DonationStatus = "Reserved"
	DonationCompleted DonationStatus = "Completed"
	DonationExpired   DonationStatus = "Expired"
)

// Donation is the central listing record. Lifecycle columns are only
// written through the conditional updates in DonationRepository, which
// keeps the claim invariants intact: claimed_by is set iff status is
// Reserved or Completed, and a delivery volunteer implies a claimant.
type Donation struct {
	gorm.Model
	DonorID             uint              `gorm:"not null;index" json:"donor_id"`
	Donor               DonorProfile      `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	ItemName            string            `gorm:"not null" json:"item_name"`
	Description         string            `gorm:"type:text" json:"description"`
	Category            DonationCategory  `gorm:"not null;index" json:"category"`
	Quantity            int               `gorm:"not null" json:"quantity"`
	ExpiryDate          *time.Time        `gorm:"index" json:"expiry_date,omitempty"`
	PickupAddress       string            `gorm:"not null" json:"pickup_address"`
	City                string            `gorm:"not null;index" json:"city"`
	State               string            `gorm:"not null" json:"state"`
	PhotoURL            string            `json:"photo_url,omitempty"`
	Status              DonationStatus    `gorm:"not null;default:Available;index" json:"status"`
	ClaimedBy           *uint             `gorm:"column:claimed_by;index" json:"claimed_by,omitempty"`
	Claimant            *NGOProfile       `gorm:"foreignKey:ClaimedBy" json:"claimant,omitempty"`
	ClaimedAt           *time.Time        `json:"claimed_at,omitempty"`
	DeliveryVolunteerID *uint             `gorm:"index" json:"delivery_volunteer_id,omitempty"`
	DeliveryVolunteer   *VolunteerProfile `gorm:"foreignKey:DeliveryVolunteerID" json:"delivery_volunteer,omitempty"`
}
