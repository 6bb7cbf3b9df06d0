package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/services"
)

type AuthHandler struct {
	registrationService *services.RegistrationService
	tokenService        *services.TokenService
}

func NewAuthHandler(registrationService *services.RegistrationService, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{
		registrationService: registrationService,
		tokenService:        tokenService,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	Role  models.Role `json:"role"`
	ID    uint        `json:"id"`
}

type RegisterDonorRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name" binding:"required"`
	DonorType   string `json:"donor_type" binding:"required,oneof=Individual Restaurant Home Retailer Corporate"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state" binding:"required"`
}

type RegisterNGORequest struct {
	Email              string   `json:"email" binding:"required,email"`
	Password           string   `json:"password" binding:"required,min=8"`
	NGOName            string   `json:"ngo_name" binding:"required"`
	NGOType            string   `json:"ngo_type" binding:"required,oneof=Trust Society 'Section 8' Other"`
	RegistrationNumber string   `json:"registration_number" binding:"required"`
	IssuingAuthority   string   `json:"issuing_authority" binding:"required"`
	YearEstablished    int      `json:"year_established" binding:"required,gte=1800"`
	RegisteredAddress  string   `json:"registered_address" binding:"required"`
	City               string   `json:"city" binding:"required"`
	State              string   `json:"state" binding:"required"`
	RepresentativeName string   `json:"representative_name" binding:"required"`
	Designation        string   `json:"designation" binding:"required"`
	ContactEmail       string   `json:"contact_email" binding:"required,email"`
	ContactPhone       string   `json:"contact_phone" binding:"required"`
	Causes             []string `json:"causes"`
	OtherCauseDetail   string   `json:"other_cause_detail"`
}

type RegisterVolunteerRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Name          string `json:"name" binding:"required"`
	VolunteerType string `json:"volunteer_type" binding:"required,oneof=Delivery General"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	Address       string `json:"address"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) respondWithToken(c *gin.Context, account *models.Account) {
	token, err := h.tokenService.Generate(account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Token: token,
		Role:  account.Role,
		ID:    account.ID,
	})
}

// RegisterDonor godoc
// @Summary Register a donor account
// @Description Create a donor account and its profile in one transaction
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterDonorRequest true "Donor registration"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register/donor [post]
func (h *AuthHandler) RegisterDonor(c *gin.Context) {
	var req RegisterDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	account, err := h.registrationService.RegisterDonor(services.DonorRegistration{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		DonorType:   models.DonorType(req.DonorType),
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
	})
	if err != nil {
		if err == services.ErrEmailTaken {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	h.respondWithToken(c, account)
}

// RegisterNGO godoc
// @Summary Register an NGO account
// @Description Create an NGO account with profile, contact and causes in one transaction. The NGO starts in Pending verification status.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterNGORequest true "NGO registration"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register/ngo [post]
func (h *AuthHandler) RegisterNGO(c *gin.Context) {
	var req RegisterNGORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	account, err := h.registrationService.RegisterNGO(services.NGORegistration{
		Email:              req.Email,
		Password:           req.Password,
		NGOName:            req.NGOName,
		NGOType:            models.NGOType(req.NGOType),
		RegistrationNumber: req.RegistrationNumber,
		IssuingAuthority:   req.IssuingAuthority,
		YearEstablished:    req.YearEstablished,
		RegisteredAddress:  req.RegisteredAddress,
		City:               req.City,
		State:              req.State,
		RepresentativeName: req.RepresentativeName,
		Designation:        req.Designation,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		Causes:             req.Causes,
		OtherCauseDetail:   req.OtherCauseDetail,
	})
	if err != nil {
		if err == services.ErrEmailTaken {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	h.respondWithToken(c, account)
}

// RegisterVolunteer godoc
// @Summary Register a volunteer account
// @Description Create a volunteer account and its profile in one transaction
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterVolunteerRequest true "Volunteer registration"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register/volunteer [post]
func (h *AuthHandler) RegisterVolunteer(c *gin.Context) {
	var req RegisterVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	account, err := h.registrationService.RegisterVolunteer(services.VolunteerRegistration{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		VolunteerType: models.VolunteerType(req.VolunteerType),
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
	})
	if err != nil {
		if err == services.ErrEmailTaken {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	h.respondWithToken(c, account)
}

// Login godoc
// @Summary Sign in
// @Description Exchange email and password for a session token carrying the role claim
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	account, err := h.registrationService.SignIn(req.Email, req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.tokenService.Generate(account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		Role:  account.Role,
		ID:    account.ID,
	})
}
