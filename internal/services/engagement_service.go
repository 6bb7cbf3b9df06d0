package services

import (
	"errors"

	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

var (
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrSelfMessage          = errors.New("cannot message yourself")
	ErrMessageNotFound      = errors.New("message not found")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrDonationNotCompleted = errors.New("donation is not completed")
)

// EngagementService covers the records that surround a donation:
// messages between participants, post-handover reviews, and the impact
// note an NGO writes once a donation is completed.
type EngagementService struct {
	engagementRepo *repository.EngagementRepository
	donationRepo   *repository.DonationRepository
	accountRepo    *repository.AccountRepository
}

func NewEngagementService(
	engagementRepo *repository.EngagementRepository,
	donationRepo *repository.DonationRepository,
	accountRepo *repository.AccountRepository,
) *EngagementService {
	return &EngagementService{
		engagementRepo: engagementRepo,
		donationRepo:   donationRepo,
		accountRepo:    accountRepo,
	}
}

func (s *EngagementService) SendMessage(senderID, recipientID uint, donationID *uint, body string) (*models.Message, error) {
	if senderID == recipientID {
		return nil, ErrSelfMessage
	}

	recipient, err := s.accountRepo.FindByID(recipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		DonationID:  donationID,
		Body:        body,
	}
	if err := s.engagementRepo.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *EngagementService) Inbox(accountID uint) ([]models.Message, error) {
	return s.engagementRepo.FindMessagesFor(accountID)
}

func (s *EngagementService) MarkRead(accountID, messageID uint) error {
	rows, err := s.engagementRepo.MarkMessageRead(messageID, accountID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}

type NewReview struct {
	ReviewedID  uint
	DonationID  *uint
	Rating      int
	Punctuality *int
	Honesty     *int
	Cleanliness *int
	Helpfulness *int
	Comment     string
}

func (s *EngagementService) PostReview(reviewerID uint, input NewReview) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	reviewed, err := s.accountRepo.FindByID(input.ReviewedID)
	if err != nil {
		return nil, err
	}
	if reviewed == nil {
		return nil, ErrRecipientNotFound
	}

	review := &models.Review{
		ReviewerID:  reviewerID,
		ReviewedID:  input.ReviewedID,
		DonationID:  input.DonationID,
		Rating:      input.Rating,
		Punctuality: input.Punctuality,
		Honesty:     input.Honesty,
		Cleanliness: input.Cleanliness,
		Helpfulness: input.Helpfulness,
		Comment:     input.Comment,
	}
	if err := s.engagementRepo.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *EngagementService) ReviewsFor(accountID uint) ([]models.Review, error) {
	return s.engagementRepo.FindReviewsFor(accountID)
}

// AddImpactNote records the outcome of a donation. Only the NGO that
// claimed the donation may write one, and only after completion.
func (s *EngagementService) AddImpactNote(ngoID, donationID uint, description string, peopleHelped *int) (*models.ImpactNote, error) {
	donation, err := s.donationRepo.FindByID(donationID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	if donation.ClaimedBy == nil || *donation.ClaimedBy != ngoID {
		return nil, ErrNotClaimant
	}
	if donation.Status != models.DonationCompleted {
		return nil, ErrDonationNotCompleted
	}

	note := &models.ImpactNote{
		NGOID:             ngoID,
		DonationID:        donationID,
		ImpactDescription: description,
		PeopleHelped:      peopleHelped,
	}
	if err := s.engagementRepo.CreateImpactNote(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *EngagementService) ImpactNotesFor(ngoID uint) ([]models.ImpactNote, error) {
	return s.engagementRepo.FindImpactNotesByNGO(ngoID)
}
