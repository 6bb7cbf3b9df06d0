package models

import (
	"time"

	"gorm.io/gorm"
)

// Registration satellites for NGO accounts.

type NGOContact struct {
	gorm.Model
	NGOID              uint       `gorm:"not null;index" json:"ngo_id"`
	NGO                NGOProfile `gorm:"foreignKey:NGOID" json:"-"`
	RepresentativeName string     `gorm:"not null" json:"representative_name"`
	Designation        string     `gorm:"not null" json:"designation"`
	Email              string     `gorm:"not null" json:"email"`
	PhoneNumber        string     `gorm:"not null" json:"phone_number"`
}

type NGODocument struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	NGOID        uint       `gorm:"not null;index" json:"ngo_id"`
	NGO          NGOProfile `gorm:"foreignKey:NGOID" json:"-"`
	DocumentType string     `gorm:"not null" json:"document_type"`
	FilePath     string     `gorm:"not null" json:"file_path"`
	Verified     bool       `gorm:"default:false" json:"verified"`
	UploadedAt   time.Time  `gorm:"autoCreateTime" json:"uploaded_at"`
}

type Cause struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type NGOCause struct {
	NGOID            uint   `gorm:"primarykey;autoIncrement:false" json:"ngo_id"`
	CauseID          uint   `gorm:"primarykey;autoIncrement:false" json:"cause_id"`
	Cause            Cause  `gorm:"foreignKey:CauseID" json:"cause,omitempty"`
	OtherDescription string `json:"other_description,omitempty"`
}
