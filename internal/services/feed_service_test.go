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

func setupFeedTestDB(t *testing.T) (*gorm.DB, *FeedService, *LifecycleService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	donationRepo := repository.NewDonationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	feedService := NewFeedService(donationRepo, profileRepo)
	lifecycleService := NewLifecycleService(donationRepo, profileRepo)

	return db, feedService, lifecycleService
}

func TestFeedService_AvailableOnly(t *testing.T) {
	db, feedService, lifecycleService := setupFeedTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")
	ngo := seedNGO(t, db, "ngo@example.com", "Pune", models.NGOVerified)

	open := seedDonation(t, db, donor.ID, "Pune")
	claimed := seedDonation(t, db, donor.ID, "Pune")
	_, err := lifecycleService.Claim(ngo.ID, claimed.ID)
	assert.NoError(t, err)

	feed, err := feedService.Available(FeedQuery{})
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, open.ID, feed[0].ID)
}

func TestFeedService_CityAndCategoryFilters(t *testing.T) {
	db, feedService, _ := setupFeedTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")

	pune := seedDonation(t, db, donor.ID, "Pune")

	mumbai := seedDonation(t, db, donor.ID, "Mumbai")
	assert.NoError(t, db.Model(mumbai).Update("category", models.CategoryBooks).Error)

	feed, err := feedService.Available(FeedQuery{City: "Pune"})
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, pune.ID, feed[0].ID)

	feed, err = feedService.Available(FeedQuery{Category: models.CategoryBooks})
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, mumbai.ID, feed[0].ID)

	feed, err = feedService.Available(FeedQuery{City: "Pune", Category: models.CategoryBooks})
	assert.NoError(t, err)
	assert.Len(t, feed, 0)
}

func TestFeedService_PostedFilter(t *testing.T) {
	db, feedService, _ := setupFeedTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")

	recent := seedDonation(t, db, donor.ID, "Pune")

	old := seedDonation(t, db, donor.ID, "Pune")
	assert.NoError(t, db.Model(old).Update("created_at", time.Now().AddDate(0, 0, -10)).Error)

	feed, err := feedService.Available(FeedQuery{Posted: "week"})
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, recent.ID, feed[0].ID)

	feed, err = feedService.Available(FeedQuery{Posted: "month"})
	assert.NoError(t, err)
	assert.Len(t, feed, 2)

	_, err = feedService.Available(FeedQuery{Posted: "yesterday"})
	assert.Equal(t, ErrInvalidDateBucket, err)
}

func TestFeedService_OpenDeliveriesScopedToCity(t *testing.T) {
	db, feedService, lifecycleService := setupFeedTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")
	ngo := seedNGO(t, db, "ngo@example.com", "Pune", models.NGOVerified)
	punePilot := seedVolunteer(t, db, "pune@example.com", "Pune", true)
	mumbaiPilot := seedVolunteer(t, db, "mumbai@example.com", "Mumbai", true)

	donation := seedDonation(t, db, donor.ID, "Pune")
	_, err := lifecycleService.Claim(ngo.ID, donation.ID)
	assert.NoError(t, err)

	tasks, err := feedService.OpenDeliveries(punePilot.ID)
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)

	tasks, err = feedService.OpenDeliveries(mumbaiPilot.ID)
	assert.NoError(t, err)
	assert.Len(t, tasks, 0)
}

func TestFeedService_OpenDeliveriesExcludesAssigned(t *testing.T) {
	db, feedService, lifecycleService := setupFeedTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")
	ngo := seedNGO(t, db, "ngo@example.com", "Pune", models.NGOVerified)
	volunteer := seedVolunteer(t, db, "volunteer@example.com", "Pune", true)

	donation := seedDonation(t, db, donor.ID, "Pune")
	_, err := lifecycleService.Claim(ngo.ID, donation.ID)
	assert.NoError(t, err)
	_, err = lifecycleService.AcceptDelivery(volunteer.ID, donation.ID)
	assert.NoError(t, err)

	tasks, err := feedService.OpenDeliveries(volunteer.ID)
	assert.NoError(t, err)
	assert.Len(t, tasks, 0)

	assigned, err := feedService.AssignedDeliveries(volunteer.ID)
	assert.NoError(t, err)
	assert.Len(t, assigned, 1)
}

func TestFeedService_Stats(t *testing.T) {
	db, feedService, lifecycleService := setupFeedTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")
	ngo := seedNGO(t, db, "ngo@example.com", "Pune", models.NGOVerified)

	seedDonation(t, db, donor.ID, "Pune")

	claimed := seedDonation(t, db, donor.ID, "Pune")
	_, err := lifecycleService.Claim(ngo.ID, claimed.ID)
	assert.NoError(t, err)

	done := seedDonation(t, db, donor.ID, "Pune")
	_, err = lifecycleService.Claim(ngo.ID, done.ID)
	assert.NoError(t, err)
	_, err = lifecycleService.CompleteByNGO(ngo.ID, done.ID)
	assert.NoError(t, err)

	stats, err := feedService.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), stats.Available)
	assert.Equal(t, int64(1), stats.Reserved)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(0), stats.Expired)
}

func TestFeedService_AnalyticsFor(t *testing.T) {
	db, feedService, lifecycleService := setupFeedTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")
	ngo := seedNGO(t, db, "ngo@example.com", "Pune", models.NGOVerified)
	other := seedNGO(t, db, "other@example.com", "Pune", models.NGOVerified)

	first := seedDonation(t, db, donor.ID, "Pune")
	second := seedDonation(t, db, donor.ID, "Pune")
	theirs := seedDonation(t, db, donor.ID, "Pune")

	_, err := lifecycleService.Claim(ngo.ID, first.ID)
	assert.NoError(t, err)
	_, err = lifecycleService.Claim(ngo.ID, second.ID)
	assert.NoError(t, err)
	_, err = lifecycleService.Claim(other.ID, theirs.ID)
	assert.NoError(t, err)

	analytics, err := feedService.AnalyticsFor(ngo.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), analytics.TotalReceived)
	assert.Equal(t, int64(2), analytics.ThisMonth)
}
