package services

import (
	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

// VolunteerService owns the one mutable field on a volunteer profile.
type VolunteerService struct {
	profileRepo *repository.ProfileRepository
}

func NewVolunteerService(profileRepo *repository.ProfileRepository) *VolunteerService {
	return &VolunteerService{profileRepo: profileRepo}
}

func (s *VolunteerService) Profile(id uint) (*models.VolunteerProfile, error) {
	profile, err := s.profileRepo.FindVolunteerByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrVolunteerNotFound
	}
	return profile, nil
}

func (s *VolunteerService) SetAvailability(id uint, available bool) (*models.VolunteerProfile, error) {
	rows, err := s.profileRepo.SetVolunteerAvailability(id, available)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrVolunteerNotFound
	}
	return s.profileRepo.FindVolunteerByID(id)
}
