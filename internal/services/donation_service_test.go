package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ecoshare/ecoshare/internal/database"
	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

func setupDonationTestDB(t *testing.T) (*gorm.DB, *DonationService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	donationRepo := repository.NewDonationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	donationService := NewDonationService(donationRepo, profileRepo)

	return db, donationService
}

func TestDonationService_Create(t *testing.T) {
	db, donationService := setupDonationTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")

	expiry := time.Now().Add(48 * time.Hour)
	donation, err := donationService.Create(donor.ID, NewDonation{
		ItemName:      "Rice",
		Description:   "10kg cooked rice from an event",
		Category:      models.CategoryFood,
		Quantity:      10,
		ExpiryDate:    &expiry,
		PickupAddress: "5 Market St",
		City:          "Pune",
		State:         "Maharashtra",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.DonationAvailable, donation.Status)
	assert.Nil(t, donation.ClaimedBy)
	assert.Nil(t, donation.ClaimedAt)
	assert.Nil(t, donation.DeliveryVolunteerID)
}

func TestDonationService_CreateInvalidQuantity(t *testing.T) {
	db, donationService := setupDonationTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")

	_, err := donationService.Create(donor.ID, NewDonation{
		ItemName: "Rice",
		Category: models.CategoryFood,
		Quantity: 0,
		City:     "Pune",
		State:    "Maharashtra",
	})
	assert.Equal(t, ErrInvalidQuantity, err)
}

func TestDonationService_CreateExpiryInPast(t *testing.T) {
	db, donationService := setupDonationTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")

	expiry := time.Now().Add(-time.Hour)
	_, err := donationService.Create(donor.ID, NewDonation{
		ItemName:   "Rice",
		Category:   models.CategoryFood,
		Quantity:   5,
		ExpiryDate: &expiry,
		City:       "Pune",
		State:      "Maharashtra",
	})
	assert.Equal(t, ErrExpiryInPast, err)
}

func TestDonationService_CreateUnknownDonor(t *testing.T) {
	_, donationService := setupDonationTestDB(t)

	_, err := donationService.Create(9999, NewDonation{
		ItemName: "Rice",
		Category: models.CategoryFood,
		Quantity: 5,
		City:     "Pune",
		State:    "Maharashtra",
	})
	assert.Equal(t, ErrDonorNotFound, err)
}
