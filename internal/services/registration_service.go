package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type DonorRegistration struct {
	Email       string
	Password    string
	Name        string
	DonorType   models.DonorType
	PhoneNumber string
	Address     string
	City        string
	State       string
}

type NGORegistration struct {
	Email              string
	Password           string
	NGOName            string
	NGOType            models.NGOType
	RegistrationNumber string
	IssuingAuthority   string
	YearEstablished    int
	RegisteredAddress  string
	City               string
	State              string

	RepresentativeName string
	Designation        string
	ContactEmail       string
	ContactPhone       string

	Causes           []string
	OtherCauseDetail string
}

type VolunteerRegistration struct {
	Email         string
	Password      string
	Name          string
	VolunteerType models.VolunteerType
	PhoneNumber   string
	Address       string
	City          string
	State         string
}

// RegistrationService provisions an account together with its role
// profile (and, for NGOs, contact and cause rows) inside one database
// transaction: a failed profile write rolls the account back instead of
// leaving an orphaned identity.
type RegistrationService struct {
	accountRepo *repository.AccountRepository
	profileRepo *repository.ProfileRepository
	db          *gorm.DB
}

func NewRegistrationService(accountRepo *repository.AccountRepository, profileRepo *repository.ProfileRepository, db *gorm.DB) *RegistrationService {
	return &RegistrationService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		db:          db,
	}
}

func (s *RegistrationService) createAccount(tx *gorm.DB, email, password string, role models.Role) (*models.Account, error) {
	existing, err := s.accountRepo.FindByEmailInTx(tx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.accountRepo.CreateInTx(tx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *RegistrationService) RegisterDonor(reg DonorRegistration) (*models.Account, error) {
	var account *models.Account

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = s.createAccount(tx, reg.Email, reg.Password, models.RoleDonor)
		if err != nil {
			return err
		}

		profile := &models.DonorProfile{
			ID:          account.ID,
			Name:        reg.Name,
			DonorType:   reg.DonorType,
			PhoneNumber: reg.PhoneNumber,
			Address:     reg.Address,
			City:        reg.City,
			State:       reg.State,
		}
		return s.profileRepo.CreateDonorInTx(tx, profile)
	})

	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *RegistrationService) RegisterNGO(reg NGORegistration) (*models.Account, error) {
	var account *models.Account

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = s.createAccount(tx, reg.Email, reg.Password, models.RoleNGO)
		if err != nil {
			return err
		}

		profile := &models.NGOProfile{
			ID:                 account.ID,
			NGOName:            reg.NGOName,
			NGOType:            reg.NGOType,
			RegistrationNumber: reg.RegistrationNumber,
			IssuingAuthority:   reg.IssuingAuthority,
			YearEstablished:    reg.YearEstablished,
			RegisteredAddress:  reg.RegisteredAddress,
			City:               reg.City,
			State:              reg.State,
			Status:             models.NGOPending,
		}
		if err := s.profileRepo.CreateNGOInTx(tx, profile); err != nil {
			return err
		}

		contact := &models.NGOContact{
			NGOID:              account.ID,
			RepresentativeName: reg.RepresentativeName,
			Designation:        reg.Designation,
			Email:              reg.ContactEmail,
			PhoneNumber:        reg.ContactPhone,
		}
		if err := s.profileRepo.CreateContactInTx(tx, contact); err != nil {
			return err
		}

		for _, name := range reg.Causes {
			cause, err := s.profileRepo.FindOrCreateCauseInTx(tx, name)
			if err != nil {
				return err
			}
			assoc := &models.NGOCause{
				NGOID:   account.ID,
				CauseID: cause.ID,
			}
			if name == "Other" {
				assoc.OtherDescription = reg.OtherCauseDetail
			}
			if err := s.profileRepo.CreateNGOCauseInTx(tx, assoc); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *RegistrationService) RegisterVolunteer(reg VolunteerRegistration) (*models.Account, error) {
	var account *models.Account

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = s.createAccount(tx, reg.Email, reg.Password, models.RoleVolunteer)
		if err != nil {
			return err
		}

		profile := &models.VolunteerProfile{
			ID:            account.ID,
			Name:          reg.Name,
			VolunteerType: reg.VolunteerType,
			PhoneNumber:   reg.PhoneNumber,
			Address:       reg.Address,
			City:          reg.City,
			State:         reg.State,
			Available:     true,
		}
		return s.profileRepo.CreateVolunteerInTx(tx, profile)
	})

	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *RegistrationService) SignIn(email, password string) (*models.Account, error) {
	account, err := s.accountRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
