package services

import (
	"errors"
	"time"

	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

var (
	ErrDonorNotFound   = errors.New("donor profile not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrExpiryInPast    = errors.New("expiry date is in the past")
)

type NewDonation struct {
	ItemName      string
	Description   string
	Category      models.DonationCategory
	Quantity      int
	ExpiryDate    *time.Time
	PickupAddress string
	City          string
	State         string
	PhotoURL      string
}

// DonationService creates listings on behalf of donors. Listings are
// born Available with all claim fields null; donors never mutate them
// afterwards.
type DonationService struct {
	donationRepo *repository.DonationRepository
	profileRepo  *repository.ProfileRepository
}

func NewDonationService(donationRepo *repository.DonationRepository, profileRepo *repository.ProfileRepository) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
		profileRepo:  profileRepo,
	}
}

func (s *DonationService) Create(donorID uint, input NewDonation) (*models.Donation, error) {
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if input.ExpiryDate != nil && input.ExpiryDate.Before(time.Now()) {
		return nil, ErrExpiryInPast
	}

	donor, err := s.profileRepo.FindDonorByID(donorID)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	donation := &models.Donation{
		DonorID:       donorID,
		ItemName:      input.ItemName,
		Description:   input.Description,
		Category:      input.Category,
		Quantity:      input.Quantity,
		ExpiryDate:    input.ExpiryDate,
		PickupAddress: input.PickupAddress,
		City:          input.City,
		State:         input.State,
		PhotoURL:      input.PhotoURL,
		Status:        models.DonationAvailable,
	}

	if err := s.donationRepo.Create(donation); err != nil {
		return nil, err
	}

	return donation, nil
}
