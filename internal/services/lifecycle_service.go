package services

import (
	"errors"
	"time"

	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

var (
	ErrDonationNotFound     = errors.New("donation not found")
	ErrNotAvailable         = errors.New("donation is no longer available")
	ErrNotClaimant          = errors.New("donation is not claimed by this NGO")
	ErrNGONotFound          = errors.New("ngo profile not found")
	ErrNGONotVerified       = errors.New("ngo is not verified")
	ErrVolunteerNotFound    = errors.New("volunteer profile not found")
	ErrVolunteerUnavailable = errors.New("volunteer is not available")
	ErrCityMismatch         = errors.New("donation is outside the volunteer's city")
	ErrDeliveryTaken        = errors.New("delivery already has a volunteer")
	ErrNotAssigned          = errors.New("delivery is not assigned to this volunteer")
)

// LifecycleService enforces the legal donation transitions:
//
//	Available -> Reserved   (verified NGO claims)
//	Reserved  -> Completed  (claimant NGO, or assigned volunteer)
//	Available -> Expired    (sweep, past expiry date)
//
// Every transition is one conditional UPDATE in the repository. When zero
// rows are affected the service re-reads the row once, only to translate
// the rejection into a precise error for the caller.
type LifecycleService struct {
	donationRepo *repository.DonationRepository
	profileRepo  *repository.ProfileRepository
}

func NewLifecycleService(donationRepo *repository.DonationRepository, profileRepo *repository.ProfileRepository) *LifecycleService {
	return &LifecycleService{
		donationRepo: donationRepo,
		profileRepo:  profileRepo,
	}
}

// Claim reserves an available donation for the acting NGO and stamps
// claimed_at. Only verified NGOs may claim.
func (s *LifecycleService) Claim(ngoID, donationID uint) (*models.Donation, error) {
	ngo, err := s.profileRepo.FindNGOByID(ngoID)
	if err != nil {
		return nil, err
	}
	if ngo == nil {
		return nil, ErrNGONotFound
	}
	if ngo.Status != models.NGOVerified {
		return nil, ErrNGONotVerified
	}

	rows, err := s.donationRepo.Claim(donationID, ngoID, time.Now())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		donation, err := s.donationRepo.FindByID(donationID)
		if err != nil {
			return nil, err
		}
		if donation == nil {
			return nil, ErrDonationNotFound
		}
		return nil, ErrNotAvailable
	}

	return s.donationRepo.FindByID(donationID)
}

// CompleteByNGO marks a reserved donation as received. Only the NGO that
// claimed it may complete it.
func (s *LifecycleService) CompleteByNGO(ngoID, donationID uint) (*models.Donation, error) {
	rows, err := s.donationRepo.CompleteByNGO(donationID, ngoID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
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
		return nil, ErrNotAvailable
	}

	return s.donationRepo.FindByID(donationID)
}

// AcceptDelivery attaches an available volunteer to a claimed donation in
// the volunteer's own city.
func (s *LifecycleService) AcceptDelivery(volunteerID, donationID uint) (*models.Donation, error) {
	volunteer, err := s.profileRepo.FindVolunteerByID(volunteerID)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, ErrVolunteerNotFound
	}
	if !volunteer.Available {
		return nil, ErrVolunteerUnavailable
	}

	rows, err := s.donationRepo.AssignVolunteer(donationID, volunteerID, volunteer.City)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		donation, err := s.donationRepo.FindByID(donationID)
		if err != nil {
			return nil, err
		}
		if donation == nil {
			return nil, ErrDonationNotFound
		}
		if donation.City != volunteer.City {
			return nil, ErrCityMismatch
		}
		if donation.DeliveryVolunteerID != nil {
			return nil, ErrDeliveryTaken
		}
		return nil, ErrNotAvailable
	}

	return s.donationRepo.FindByID(donationID)
}

// CompleteDelivery marks a reserved donation as delivered by its assigned
// volunteer.
func (s *LifecycleService) CompleteDelivery(volunteerID, donationID uint) (*models.Donation, error) {
	rows, err := s.donationRepo.CompleteDelivery(donationID, volunteerID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		donation, err := s.donationRepo.FindByID(donationID)
		if err != nil {
			return nil, err
		}
		if donation == nil {
			return nil, ErrDonationNotFound
		}
		if donation.DeliveryVolunteerID == nil || *donation.DeliveryVolunteerID != volunteerID {
			return nil, ErrNotAssigned
		}
		return nil, ErrNotAvailable
	}

	return s.donationRepo.FindByID(donationID)
}

// ExpireDue moves past-expiry available listings to Expired and reports
// how many rows were swept.
func (s *LifecycleService) ExpireDue(now time.Time) (int64, error) {
	return s.donationRepo.ExpireDue(now)
}
