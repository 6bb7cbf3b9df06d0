package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ecoshare/ecoshare/internal/database"
	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

func setupEngagementTestDB(t *testing.T) (*gorm.DB, *EngagementService, *LifecycleService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	engagementRepo := repository.NewEngagementRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	engagementService := NewEngagementService(engagementRepo, donationRepo, accountRepo)
	lifecycleService := NewLifecycleService(donationRepo, profileRepo)

	return db, engagementService, lifecycleService
}

func TestEngagementService_SendMessage(t *testing.T) {
	db, engagementService, _ := setupEngagementTestDB(t)

	donor := seedAccount(t, db, "donor@example.com", models.RoleDonor)
	ngo := seedAccount(t, db, "ngo@example.com", models.RoleNGO)

	message, err := engagementService.SendMessage(donor.ID, ngo.ID, nil, "Pickup after 6pm works")
	assert.NoError(t, err)
	assert.False(t, message.Read)

	inbox, err := engagementService.Inbox(ngo.ID)
	assert.NoError(t, err)
	assert.Len(t, inbox, 1)
	assert.Equal(t, "Pickup after 6pm works", inbox[0].Body)
}

func TestEngagementService_SendMessageToSelf(t *testing.T) {
	db, engagementService, _ := setupEngagementTestDB(t)

	donor := seedAccount(t, db, "donor@example.com", models.RoleDonor)

	_, err := engagementService.SendMessage(donor.ID, donor.ID, nil, "hello me")
	assert.Equal(t, ErrSelfMessage, err)
}

func TestEngagementService_SendMessageUnknownRecipient(t *testing.T) {
	db, engagementService, _ := setupEngagementTestDB(t)

	donor := seedAccount(t, db, "donor@example.com", models.RoleDonor)

	_, err := engagementService.SendMessage(donor.ID, 9999, nil, "anyone there")
	assert.Equal(t, ErrRecipientNotFound, err)
}

func TestEngagementService_MarkRead(t *testing.T) {
	db, engagementService, _ := setupEngagementTestDB(t)

	donor := seedAccount(t, db, "donor@example.com", models.RoleDonor)
	ngo := seedAccount(t, db, "ngo@example.com", models.RoleNGO)

	message, err := engagementService.SendMessage(donor.ID, ngo.ID, nil, "hi")
	assert.NoError(t, err)

	// Only the recipient may mark a message read.
	err = engagementService.MarkRead(donor.ID, message.ID)
	assert.Equal(t, ErrMessageNotFound, err)

	err = engagementService.MarkRead(ngo.ID, message.ID)
	assert.NoError(t, err)

	inbox, err := engagementService.Inbox(ngo.ID)
	assert.NoError(t, err)
	assert.True(t, inbox[0].Read)
}

func TestEngagementService_PostReview(t *testing.T) {
	db, engagementService, _ := setupEngagementTestDB(t)

	donor := seedAccount(t, db, "donor@example.com", models.RoleDonor)
	ngo := seedAccount(t, db, "ngo@example.com", models.RoleNGO)

	punctuality := 5
	review, err := engagementService.PostReview(ngo.ID, NewReview{
		ReviewedID:  donor.ID,
		Rating:      4,
		Punctuality: &punctuality,
		Comment:     "Smooth handover",
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, review.Rating)

	reviews, err := engagementService.ReviewsFor(donor.ID)
	assert.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestEngagementService_PostReviewInvalidRating(t *testing.T) {
	db, engagementService, _ := setupEngagementTestDB(t)

	donor := seedAccount(t, db, "donor@example.com", models.RoleDonor)
	ngo := seedAccount(t, db, "ngo@example.com", models.RoleNGO)

	_, err := engagementService.PostReview(ngo.ID, NewReview{ReviewedID: donor.ID, Rating: 0})
	assert.Equal(t, ErrInvalidRating, err)

	_, err = engagementService.PostReview(ngo.ID, NewReview{ReviewedID: donor.ID, Rating: 6})
	assert.Equal(t, ErrInvalidRating, err)
}

func TestEngagementService_AddImpactNote(t *testing.T) {
	db, engagementService, lifecycleService := setupEngagementTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")
	ngo := seedNGO(t, db, "ngo@example.com", "Pune", models.NGOVerified)
	donation := seedDonation(t, db, donor.ID, "Pune")

	_, err := lifecycleService.Claim(ngo.ID, donation.ID)
	assert.NoError(t, err)

	// Not completed yet.
	_, err = engagementService.AddImpactNote(ngo.ID, donation.ID, "Fed 40 children", nil)
	assert.Equal(t, ErrDonationNotCompleted, err)

	_, err = lifecycleService.CompleteByNGO(ngo.ID, donation.ID)
	assert.NoError(t, err)

	helped := 40
	note, err := engagementService.AddImpactNote(ngo.ID, donation.ID, "Fed 40 children", &helped)
	assert.NoError(t, err)
	assert.Equal(t, 40, *note.PeopleHelped)

	notes, err := engagementService.ImpactNotesFor(ngo.ID)
	assert.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestEngagementService_ImpactNoteByNonClaimant(t *testing.T) {
	db, engagementService, lifecycleService := setupEngagementTestDB(t)

	donor := seedDonor(t, db, "donor@example.com", "Pune")
	claimant := seedNGO(t, db, "claimant@example.com", "Pune", models.NGOVerified)
	other := seedNGO(t, db, "other@example.com", "Pune", models.NGOVerified)
	donation := seedDonation(t, db, donor.ID, "Pune")

	_, err := lifecycleService.Claim(claimant.ID, donation.ID)
	assert.NoError(t, err)
	_, err = lifecycleService.CompleteByNGO(claimant.ID, donation.ID)
	assert.NoError(t, err)

	_, err = engagementService.AddImpactNote(other.ID, donation.ID, "We helped", nil)
	assert.Equal(t, ErrNotClaimant, err)
}
