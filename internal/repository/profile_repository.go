package repository

import (
	"errors"

	"github.com/ecoshare/ecoshare/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreateDonorInTx(tx *gorm.DB, profile *models.DonorProfile) error {
	return tx.Create(profile).Error
}

func (r *ProfileRepository) CreateNGOInTx(tx *gorm.DB, profile *models.NGOProfile) error {
	return tx.Create(profile).Error
}

func (r *ProfileRepository) CreateVolunteerInTx(tx *gorm.DB, profile *models.VolunteerProfile) error {
	return tx.Create(profile).Error
}

func (r *ProfileRepository) CreateContactInTx(tx *gorm.DB, contact *models.NGOContact) error {
	return tx.Create(contact).Error
}

// FindOrCreateCauseInTx resolves a cause by name, creating it on first use.
func (r *ProfileRepository) FindOrCreateCauseInTx(tx *gorm.DB, name string) (*models.Cause, error) {
	var cause models.Cause
	err := tx.Where("name = ?", name).First(&cause).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cause = models.Cause{Name: name}
		if err := tx.Create(&cause).Error; err != nil {
			return nil, err
		}
	}
	return &cause, nil
}

func (r *ProfileRepository) CreateNGOCauseInTx(tx *gorm.DB, assoc *models.NGOCause) error {
	return tx.Create(assoc).Error
}

func (r *ProfileRepository) CreateDocument(doc *models.NGODocument) error {
	return r.db.Create(doc).Error
}

func (r *ProfileRepository) FindDocumentsByNGO(ngoID uint) ([]models.NGODocument, error) {
	var docs []models.NGODocument
	err := r.db.Where("ngo_id = ?", ngoID).Order("uploaded_at DESC").Find(&docs).Error
	return docs, err
}

func (r *ProfileRepository) FindDonorByID(id uint) (*models.DonorProfile, error) {
	var profile models.DonorProfile
	err := r.db.First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) FindNGOByID(id uint) (*models.NGOProfile, error) {
	var profile models.NGOProfile
	err := r.db.First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) FindVolunteerByID(id uint) (*models.VolunteerProfile, error) {
	var profile models.VolunteerProfile
	err := r.db.First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) SetVolunteerAvailability(id uint, available bool) (int64, error) {
	res := r.db.Model(&models.VolunteerProfile{}).
		Where("id = ?", id).
		Update("available", available)
	return res.RowsAffected, res.Error
}

func (r *ProfileRepository) FindCausesByNGO(ngoID uint) ([]models.NGOCause, error) {
	var causes []models.NGOCause
	err := r.db.Preload("Cause").Where("ngo_id = ?", ngoID).Find(&causes).Error
	return causes, err
}
