package models

import (
	"time"
)

type DonorType string

const (
	DonorIndividual DonorType = "Individual"
	DonorRestaurant DonorType = "Restaurant"
	DonorHome       DonorType = "Home"
	DonorRetailer   DonorType = "Retailer"
	DonorCorporate  DonorType = "Corporate"
)

type NGOStatus string

const (
	NGOPending  NGOStatus = "Pending"
	NGOVerified NGOStatus = "Verified"
	NGORejected NGOStatus = "Rejected"
)

type NGOType string

const (
	NGOTrust    NGOType = "Trust"
	NGOSociety  NGOType = "Society"
	NGOSection8 NGOType = "Section 8"
	NGOOther    NGOType = "Other"
)

type VolunteerType string

const (
	VolunteerDelivery VolunteerType = "Delivery"
	VolunteerGeneral  VolunteerType = "General"
)

// Profiles share their primary key with the owning account: one account,
// one profile, same ID.

type DonorProfile struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	DonorType   DonorType `gorm:"not null" json:"donor_type"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `gorm:"not null;index" json:"city"`
	State       string    `gorm:"not null" json:"state"`
	CreatedAt   time.Time `json:"created_at"`
}

type NGOProfile struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	NGOName            string     `gorm:"not null" json:"ngo_name"`
	NGOType            NGOType    `gorm:"not null" json:"ngo_type"`
	RegistrationNumber string     `gorm:"not null" json:"registration_number"`
	IssuingAuthority   string     `gorm:"not null" json:"issuing_authority"`
	YearEstablished    int        `gorm:"not null" json:"year_established"`
	RegisteredAddress  string     `gorm:"not null" json:"registered_address"`
	City               string     `gorm:"not null;index" json:"city"`
	State              string     `gorm:"not null" json:"state"`
	Status             NGOStatus  `gorm:"not null;default:Pending;index" json:"status"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type VolunteerProfile struct {
	ID            uint          `gorm:"primarykey" json:"id"`
	Name          string        `gorm:"not null" json:"name"`
	VolunteerType VolunteerType `gorm:"not null" json:"volunteer_type"`
	PhoneNumber   string        `gorm:"not null" json:"phone_number"`
	Address       string        `json:"address,omitempty"`
	City          string        `gorm:"not null;index" json:"city"`
	State         string        `gorm:"not null" json:"state"`
	Available     bool          `gorm:"default:true" json:"available"`
	CreatedAt     time.Time     `json:"created_at"`
}
