package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ecoshare/ecoshare/internal/database"
	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

func setupRegistrationTestDB(t *testing.T) (*gorm.DB, *RegistrationService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	accountRepo := repository.NewAccountRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	registrationService := NewRegistrationService(accountRepo, profileRepo, db)

	return db, registrationService
}

func TestRegistrationService_RegisterDonor(t *testing.T) {
	db, registrationService := setupRegistrationTestDB(t)

	account, err := registrationService.RegisterDonor(DonorRegistration{
		Email:     "donor@example.com",
		Password:  "secret123",
		Name:      "Asha",
		DonorType: models.DonorRestaurant,
		City:      "Pune",
		State:     "Maharashtra",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleDonor, account.Role)
	assert.NotEqual(t, "secret123", account.PasswordHash)

	var profile models.DonorProfile
	assert.NoError(t, db.First(&profile, account.ID).Error)
	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, models.DonorRestaurant, profile.DonorType)
}

func TestRegistrationService_RegisterNGOCreatesSatelliteRows(t *testing.T) {
	db, registrationService := setupRegistrationTestDB(t)

	account, err := registrationService.RegisterNGO(NGORegistration{
		Email:              "ngo@example.com",
		Password:           "secret123",
		NGOName:            "Helping Hands",
		NGOType:            models.NGOTrust,
		RegistrationNumber: "REG-42",
		IssuingAuthority:   "Charity Commissioner",
		YearEstablished:    2012,
		RegisteredAddress:  "12 Main Rd",
		City:               "Pune",
		State:              "Maharashtra",
		RepresentativeName: "Ravi",
		Designation:        "Director",
		ContactEmail:       "ravi@helpinghands.org",
		ContactPhone:       "9999999999",
		Causes:             []string{"Hunger", "Other"},
		OtherCauseDetail:   "Disaster relief",
	})
	assert.NoError(t, err)

	var profile models.NGOProfile
	assert.NoError(t, db.First(&profile, account.ID).Error)
	assert.Equal(t, models.NGOPending, profile.Status)

	var contact models.NGOContact
	assert.NoError(t, db.Where("ngo_id = ?", account.ID).First(&contact).Error)
	assert.Equal(t, "Ravi", contact.RepresentativeName)

	var assocs []models.NGOCause
	assert.NoError(t, db.Where("ngo_id = ?", account.ID).Find(&assocs).Error)
	assert.Len(t, assocs, 2)

	var other models.Cause
	assert.NoError(t, db.Where("name = ?", "Other").First(&other).Error)
	var otherAssoc models.NGOCause
	assert.NoError(t, db.Where("ngo_id = ? AND cause_id = ?", account.ID, other.ID).First(&otherAssoc).Error)
	assert.Equal(t, "Disaster relief", otherAssoc.OtherDescription)
}

func TestRegistrationService_RegisterVolunteerStartsAvailable(t *testing.T) {
	db, registrationService := setupRegistrationTestDB(t)

	account, err := registrationService.RegisterVolunteer(VolunteerRegistration{
		Email:         "volunteer@example.com",
		Password:      "secret123",
		Name:          "Kiran",
		VolunteerType: models.VolunteerDelivery,
		PhoneNumber:   "8888888888",
		City:          "Pune",
		State:         "Maharashtra",
	})
	assert.NoError(t, err)

	var profile models.VolunteerProfile
	assert.NoError(t, db.First(&profile, account.ID).Error)
	assert.True(t, profile.Available)
}

func TestRegistrationService_DuplicateEmail(t *testing.T) {
	db, registrationService := setupRegistrationTestDB(t)

	_, err := registrationService.RegisterDonor(DonorRegistration{
		Email:     "taken@example.com",
		Password:  "secret123",
		Name:      "First",
		DonorType: models.DonorIndividual,
		City:      "Pune",
		State:     "Maharashtra",
	})
	assert.NoError(t, err)

	_, err = registrationService.RegisterVolunteer(VolunteerRegistration{
		Email:         "taken@example.com",
		Password:      "secret123",
		Name:          "Second",
		VolunteerType: models.VolunteerGeneral,
		PhoneNumber:   "7777777777",
		City:          "Pune",
		State:         "Maharashtra",
	})
	assert.Equal(t, ErrEmailTaken, err)

	var count int64
	assert.NoError(t, db.Model(&models.Account{}).Where("email = ?", "taken@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegistrationService_ProfileFailureRollsBackAccount(t *testing.T) {
	db, registrationService := setupRegistrationTestDB(t)

	// Occupy the profile primary key the next account would take, so
	// the profile insert fails after the account row is written.
	assert.NoError(t, db.Create(&models.DonorProfile{
		ID:        1,
		Name:      "Occupant",
		DonorType: models.DonorIndividual,
		City:      "Pune",
		State:     "Maharashtra",
	}).Error)

	_, err := registrationService.RegisterDonor(DonorRegistration{
		Email:     "donor@example.com",
		Password:  "secret123",
		Name:      "Asha",
		DonorType: models.DonorIndividual,
		City:      "Pune",
		State:     "Maharashtra",
	})
	assert.Error(t, err)

	var count int64
	assert.NoError(t, db.Model(&models.Account{}).Where("email = ?", "donor@example.com").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRegistrationService_SignIn(t *testing.T) {
	_, registrationService := setupRegistrationTestDB(t)

	_, err := registrationService.RegisterDonor(DonorRegistration{
		Email:     "donor@example.com",
		Password:  "secret123",
		Name:      "Asha",
		DonorType: models.DonorIndividual,
		City:      "Pune",
		State:     "Maharashtra",
	})
	assert.NoError(t, err)

	account, err := registrationService.SignIn("donor@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleDonor, account.Role)

	_, err = registrationService.SignIn("donor@example.com", "wrongpass")
	assert.Equal(t, ErrInvalidCredentials, err)

	_, err = registrationService.SignIn("nobody@example.com", "secret123")
	assert.Equal(t, ErrInvalidCredentials, err)
}
