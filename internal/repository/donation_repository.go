package repository

import (
	"errors"
	"time"

	"github.com/ecoshare/ecoshare/internal/models"
	"gorm.io/gorm"
)

// DonationFilter narrows the available-donation feed. Zero values mean
// "no filter". CreatedAfter/CreatedBefore bound created_at when set.
type DonationFilter struct {
	City          string
	Category      models.DonationCategory
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

func (r *DonationRepository) FindByID(id uint) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.
		Preload("Donor").
		Preload("Claimant").
		Preload("DeliveryVolunteer").
		First(&donation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepository) FindAvailable(filter DonationFilter) ([]models.Donation, error) {
	db := r.db.Preload("Donor").Where("status = ?", models.DonationAvailable)

	if filter.City != "" {
		db = db.Where("city = ?", filter.City)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at < ?", *filter.CreatedBefore)
	}

	var donations []models.Donation
	err := db.Order("created_at DESC").Find(&donations).Error
	return donations, err
}

func (r *DonationRepository) FindByDonor(donorID uint) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.
		Preload("Claimant").
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&donations).Error
	return donations, err
}

func (r *DonationRepository) FindClaimedBy(ngoID uint) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.
		Preload("Donor").
		Preload("DeliveryVolunteer").
		Where("claimed_by = ?", ngoID).
		Order("claimed_at DESC").
		Find(&donations).Error
	return donations, err
}

// FindOpenDeliveries lists reserved donations in the given city that
// still need a delivery volunteer.
func (r *DonationRepository) FindOpenDeliveries(city string) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.
		Preload("Donor").
		Preload("Claimant").
		Where("status = ?", models.DonationReserved).
		Where("claimed_by IS NOT NULL").
		Where("delivery_volunteer_id IS NULL").
		Where("city = ?", city).
		Order("updated_at DESC").
		Find(&donations).Error
	return donations, err
}

func (r *DonationRepository) FindAssignedTo(volunteerID uint) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.
		Preload("Donor").
		Preload("Claimant").
		Where("delivery_volunteer_id = ?", volunteerID).
		Order("updated_at DESC").
		Find(&donations).Error
	return donations, err
}

// The lifecycle mutations below are single-statement conditional updates:
// the full precondition travels in the WHERE clause and the caller reads
// RowsAffected to learn whether the transition happened. Two actors racing
// for the same row get exactly one winner from the database.

func (r *DonationRepository) Claim(id, ngoID uint, now time.Time) (int64, error) {
	res := r.db.Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, models.DonationAvailable).
		Updates(map[string]interface{}{
			"status":     models.DonationReserved,
			"claimed_by": ngoID,
			"claimed_at": now,
		})
	return res.RowsAffected, res.Error
}

func (r *DonationRepository) CompleteByNGO(id, ngoID uint) (int64, error) {
	res := r.db.Model(&models.Donation{}).
		Where("id = ? AND status = ? AND claimed_by = ?", id, models.DonationReserved, ngoID).
		Update("status", models.DonationCompleted)
	return res.RowsAffected, res.Error
}

func (r *DonationRepository) AssignVolunteer(id, volunteerID uint, city string) (int64, error) {
	res := r.db.Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, models.DonationReserved).
		Where("claimed_by IS NOT NULL").
		Where("delivery_volunteer_id IS NULL").
		Where("city = ?", city).
		Update("delivery_volunteer_id", volunteerID)
	return res.RowsAffected, res.Error
}

func (r *DonationRepository) CompleteDelivery(id, volunteerID uint) (int64, error) {
	res := r.db.Model(&models.Donation{}).
		Where("id = ? AND status = ? AND delivery_volunteer_id = ?", id, models.DonationReserved, volunteerID).
		Update("status", models.DonationCompleted)
	return res.RowsAffected, res.Error
}

// ExpireDue retires available listings whose expiry date has passed.
// Reserved and completed donations are never expired.
func (r *DonationRepository) ExpireDue(now time.Time) (int64, error) {
	res := r.db.Model(&models.Donation{}).
		Where("status = ?", models.DonationAvailable).
		Where("expiry_date IS NOT NULL AND expiry_date < ?", now).
		Update("status", models.DonationExpired)
	return res.RowsAffected, res.Error
}

func (r *DonationRepository) CountByStatus(status models.DonationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Donation{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *DonationRepository) CountClaimedBy(ngoID uint, since *time.Time) (int64, error) {
	db := r.db.Model(&models.Donation{}).Where("claimed_by = ?", ngoID)
	if since != nil {
		db = db.Where("claimed_at >= ?", *since)
	}
	var count int64
	err := db.Count(&count).Error
	return count, err
}
