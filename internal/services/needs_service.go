package services

import (
	"errors"
	"time"

	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

var (
	ErrNeedNotFound       = errors.New("need not found")
	ErrFulfilmentTooLarge = errors.New("fulfilment exceeds quantity needed")
)

type NewNeed struct {
	Title          string
	Description    string
	Category       models.DonationCategory
	QuantityNeeded int
	Deadline       *time.Time
	IsEvent        bool
	EventDate      *time.Time
}

type NeedsService struct {
	needRepo    *repository.NeedRepository
	profileRepo *repository.ProfileRepository
}

func NewNeedsService(needRepo *repository.NeedRepository, profileRepo *repository.ProfileRepository) *NeedsService {
	return &NeedsService{
		needRepo:    needRepo,
		profileRepo: profileRepo,
	}
}

func (s *NeedsService) Post(ngoID uint, input NewNeed) (*models.Need, error) {
	if input.QuantityNeeded < 1 {
		return nil, ErrInvalidQuantity
	}

	ngo, err := s.profileRepo.FindNGOByID(ngoID)
	if err != nil {
		return nil, err
	}
	if ngo == nil {
		return nil, ErrNGONotFound
	}

	need := &models.Need{
		NGOID:          ngoID,
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		QuantityNeeded: input.QuantityNeeded,
		Deadline:       input.Deadline,
		IsEvent:        input.IsEvent,
		EventDate:      input.EventDate,
	}

	if err := s.needRepo.Create(need); err != nil {
		return nil, err
	}

	return need, nil
}

func (s *NeedsService) ListForNGO(ngoID uint) ([]models.Need, error) {
	return s.needRepo.FindByNGO(ngoID)
}

// ListAll is the donor-facing view of every posted need.
func (s *NeedsService) ListAll() ([]models.Need, error) {
	return s.needRepo.FindAll()
}

// RecordFulfilment bumps the progress counter on the NGO's own need.
// The increment is applied conditionally so fulfilled_quantity can never
// exceed quantity_needed.
func (s *NeedsService) RecordFulfilment(ngoID, needID uint, qty int) (*models.Need, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	rows, err := s.needRepo.AddFulfilled(needID, ngoID, qty)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		need, err := s.needRepo.FindByID(needID)
		if err != nil {
			return nil, err
		}
		if need == nil || need.NGOID != ngoID {
			return nil, ErrNeedNotFound
		}
		return nil, ErrFulfilmentTooLarge
	}

	return s.needRepo.FindByID(needID)
}
