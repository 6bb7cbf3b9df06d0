package models

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	SenderID    uint   `gorm:"not null;index" json:"sender_id"`
	RecipientID uint   `gorm:"not null;index" json:"recipient_id"`
	DonationID  *uint  `gorm:"index" json:"donation_id,omitempty"`
	Body        string `gorm:"type:text;not null" json:"message"`
	Read        bool   `gorm:"default:false" json:"read"`
}

type Review struct {
	gorm.Model
	ReviewerID  uint   `gorm:"not null;index" json:"reviewer_id"`
	ReviewedID  uint   `gorm:"not null;index" json:"reviewed_id"`
	DonationID  *uint  `gorm:"index" json:"donation_id,omitempty"`
	Rating      int    `gorm:"not null" json:"rating"`
	Punctuality *int   `json:"punctuality,omitempty"`
	Honesty     *int   `json:"honesty,omitempty"`
	Cleanliness *int   `json:"cleanliness,omitempty"`
	Helpfulness *int   `json:"helpfulness,omitempty"`
	Comment     string `gorm:"type:text" json:"comment,omitempty"`
}

// ImpactNote records what a completed donation achieved, written by the
// claiming NGO.
type ImpactNote struct {
	gorm.Model
	NGOID             uint     `gorm:"not null;index" json:"ngo_id"`
	DonationID        uint     `gorm:"not null;index" json:"donation_id"`
	Donation          Donation `gorm:"foreignKey:DonationID" json:"-"`
	ImpactDescription string   `gorm:"type:text;not null" json:"impact_description"`
	PeopleHelped      *int     `json:"people_helped,omitempty"`
}
