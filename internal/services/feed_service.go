package services

import (
	"errors"
	"time"

	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

var (
	ErrInvalidDateBucket = errors.New("invalid date filter")
)

// FeedQuery is the caller-facing filter for the available-donation feed.
// Posted accepts "today", "week" or "month" and maps to a created_at
// range ending now.
type FeedQuery struct {
	City     string
	Category models.DonationCategory
	Posted   string
}

// FeedService produces the read-only, role-appropriate views over the
// donation store. All queries are idempotent.
type FeedService struct {
	donationRepo *repository.DonationRepository
	profileRepo  *repository.ProfileRepository
}

func NewFeedService(donationRepo *repository.DonationRepository, profileRepo *repository.ProfileRepository) *FeedService {
	return &FeedService{
		donationRepo: donationRepo,
		profileRepo:  profileRepo,
	}
}

func (s *FeedService) Available(query FeedQuery) ([]models.Donation, error) {
	filter := repository.DonationFilter{
		City:     query.City,
		Category: query.Category,
	}

	if query.Posted != "" {
		now := time.Now()
		var from time.Time
		switch query.Posted {
		case "today":
			from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		case "week":
			from = now.AddDate(0, 0, -7)
		case "month":
			from = now.AddDate(0, -1, 0)
		default:
			return nil, ErrInvalidDateBucket
		}
		filter.CreatedAfter = &from
	}

	return s.donationRepo.FindAvailable(filter)
}

func (s *FeedService) DonorListings(donorID uint) ([]models.Donation, error) {
	return s.donationRepo.FindByDonor(donorID)
}

func (s *FeedService) ClaimedBy(ngoID uint) ([]models.Donation, error) {
	return s.donationRepo.FindClaimedBy(ngoID)
}

// OpenDeliveries lists claimed donations in the volunteer's city that
// still need a courier. Volunteers outside the city never see them.
func (s *FeedService) OpenDeliveries(volunteerID uint) ([]models.Donation, error) {
	volunteer, err := s.profileRepo.FindVolunteerByID(volunteerID)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, ErrVolunteerNotFound
	}
	return s.donationRepo.FindOpenDeliveries(volunteer.City)
}

func (s *FeedService) AssignedDeliveries(volunteerID uint) ([]models.Donation, error) {
	return s.donationRepo.FindAssignedTo(volunteerID)
}

type PlatformStats struct {
	Available int64 `json:"available"`
	Reserved  int64 `json:"reserved"`
	Completed int64 `json:"completed"`
	Expired   int64 `json:"expired"`
}

func (s *FeedService) Stats() (*PlatformStats, error) {
	stats := &PlatformStats{}
	var err error

	if stats.Available, err = s.donationRepo.CountByStatus(models.DonationAvailable); err != nil {
		return nil, err
	}
	if stats.Reserved, err = s.donationRepo.CountByStatus(models.DonationReserved); err != nil {
		return nil, err
	}
	if stats.Completed, err = s.donationRepo.CountByStatus(models.DonationCompleted); err != nil {
		return nil, err
	}
	if stats.Expired, err = s.donationRepo.CountByStatus(models.DonationExpired); err != nil {
		return nil, err
	}

	return stats, nil
}

// NGOAnalytics summarises an NGO's claim history for its dashboard.
type NGOAnalytics struct {
	TotalReceived int64 `json:"total_received"`
	ThisMonth     int64 `json:"this_month"`
}

func (s *FeedService) AnalyticsFor(ngoID uint) (*NGOAnalytics, error) {
	total, err := s.donationRepo.CountClaimedBy(ngoID, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthly, err := s.donationRepo.CountClaimedBy(ngoID, &monthStart)
	if err != nil {
		return nil, err
	}

	return &NGOAnalytics{
		TotalReceived: total,
		ThisMonth:     monthly,
	}, nil
}
