package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ecoshare/ecoshare/internal/database"
	"github.com/ecoshare/ecoshare/internal/repository"
)

func setupVolunteerTestDB(t *testing.T) (*gorm.DB, *VolunteerService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	profileRepo := repository.NewProfileRepository(db)
	volunteerService := NewVolunteerService(profileRepo)

	return db, volunteerService
}

func TestVolunteerService_SetAvailability(t *testing.T) {
	db, volunteerService := setupVolunteerTestDB(t)

	volunteer := seedVolunteer(t, db, "volunteer@example.com", "Pune", true)

	profile, err := volunteerService.SetAvailability(volunteer.ID, false)
	assert.NoError(t, err)
	assert.False(t, profile.Available)

	profile, err = volunteerService.SetAvailability(volunteer.ID, true)
	assert.NoError(t, err)
	assert.True(t, profile.Available)
}

func TestVolunteerService_SetAvailabilityUnknownVolunteer(t *testing.T) {
	_, volunteerService := setupVolunteerTestDB(t)

	_, err := volunteerService.SetAvailability(9999, false)
	assert.Equal(t, ErrVolunteerNotFound, err)
}

func TestVolunteerService_Profile(t *testing.T) {
	db, volunteerService := setupVolunteerTestDB(t)

	volunteer := seedVolunteer(t, db, "volunteer@example.com", "Pune", true)

	profile, err := volunteerService.Profile(volunteer.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Pune", profile.City)

	_, err = volunteerService.Profile(9999)
	assert.Equal(t, ErrVolunteerNotFound, err)
}
