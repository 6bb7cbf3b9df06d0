package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecoshare/ecoshare/internal/middleware"
	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/services"
)

type DonationHandler struct {
	donationService *services.DonationService
	feedService     *services.FeedService
}

func NewDonationHandler(donationService *services.DonationService, feedService *services.FeedService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		feedService:     feedService,
	}
}

type CreateDonationRequest struct {
	ItemName      string `json:"item_name" binding:"required"`
	Description   string `json:"description"`
	Category      string `json:"category" binding:"required,oneof=Food Clothes Books Toys Electronics Other"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
	ExpiryDate    string `json:"expiry_date"`
	PickupAddress string `json:"pickup_address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	PhotoURL      string `json:"photo_url"`
}

type DonationResponse struct {
	ID                  uint       `json:"id"`
	ItemName            string     `json:"item_name"`
	Description         string     `json:"description,omitempty"`
	Category            string     `json:"category"`
	Quantity            int        `json:"quantity"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	PickupAddress       string     `json:"pickup_address"`
	City                string     `json:"city"`
	State               string     `json:"state"`
	PhotoURL            string     `json:"photo_url,omitempty"`
	Status              string     `json:"status"`
	DonorName           string     `json:"donor_name,omitempty"`
	DonorType           string     `json:"donor_type,omitempty"`
	ClaimedBy           *uint      `json:"claimed_by,omitempty"`
	ClaimantName        string     `json:"claimant_name,omitempty"`
	ClaimedAt           *time.Time `json:"claimed_at,omitempty"`
	DeliveryVolunteerID *uint      `json:"delivery_volunteer_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func toDonationResponse(donation *models.Donation) *DonationResponse {
	resp := &DonationResponse{
		ID:                  donation.ID,
		ItemName:            donation.ItemName,
		Description:         donation.Description,
		Category:            string(donation.Category),
		Quantity:            donation.Quantity,
		ExpiryDate:          donation.ExpiryDate,
		PickupAddress:       donation.PickupAddress,
		City:                donation.City,
		State:               donation.State,
		PhotoURL:            donation.PhotoURL,
		Status:              string(donation.Status),
		ClaimedBy:           donation.ClaimedBy,
		ClaimedAt:           donation.ClaimedAt,
		DeliveryVolunteerID: donation.DeliveryVolunteerID,
		CreatedAt:           donation.CreatedAt,
	}

	if donation.Donor.ID != 0 {
		resp.DonorName = donation.Donor.Name
		resp.DonorType = string(donation.Donor.DonorType)
	}
	if donation.Claimant != nil {
		resp.ClaimantName = donation.Claimant.NGOName
	}

	return resp
}

func toDonationResponses(donations []models.Donation) []DonationResponse {
	responses := make([]DonationResponse, len(donations))
	for i := range donations {
		responses[i] = *toDonationResponse(&donations[i])
	}
	return responses
}

// Create godoc
// @Summary List an item for donation
// @Description Create a donation listing. It starts Available with no claimant.
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDonationRequest true "Donation details"
// @Success 201 {object} DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /donations [post]
func (h *DonationHandler) Create(c *gin.Context) {
	donorID := middleware.GetAccountID(c)

	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	var expiry *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid expiry_date, expected YYYY-MM-DD"})
			return
		}
		// Listings stay live through the stated day.
		endOfDay := parsed.AddDate(0, 0, 1)
		expiry = &endOfDay
	}

	donation, err := h.donationService.Create(donorID, services.NewDonation{
		ItemName:      req.ItemName,
		Description:   req.Description,
		Category:      models.DonationCategory(req.Category),
		Quantity:      req.Quantity,
		ExpiryDate:    expiry,
		PickupAddress: req.PickupAddress,
		City:          req.City,
		State:         req.State,
		PhotoURL:      req.PhotoURL,
	})
	if err != nil {
		switch err {
		case services.ErrInvalidQuantity:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity must be at least 1"})
		case services.ErrExpiryInPast:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "expiry date is in the past"})
		case services.ErrDonorNotFound:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "donor profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, toDonationResponse(donation))
}

// MyListings godoc
// @Summary List the donor's own donations
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DonationResponse
// @Failure 401 {object} ErrorResponse
// @Router /donations/mine [get]
func (h *DonationHandler) MyListings(c *gin.Context) {
	donorID := middleware.GetAccountID(c)

	donations, err := h.feedService.DonorListings(donorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toDonationResponses(donations))
}

// Feed godoc
// @Summary Browse available donations
// @Description Available listings joined with donor name and type, newest first. Optional city, category and posted (today|week|month) filters.
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param city query string false "Filter by city"
// @Param category query string false "Filter by category"
// @Param posted query string false "Posted within: today, week or month"
// @Success 200 {array} DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /donations/feed [get]
func (h *DonationHandler) Feed(c *gin.Context) {
	query := services.FeedQuery{
		City:     c.Query("city"),
		Category: models.DonationCategory(c.Query("category")),
		Posted:   c.Query("posted"),
	}

	donations, err := h.feedService.Available(query)
	if err != nil {
		if err == services.ErrInvalidDateBucket {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "posted must be today, week or month"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toDonationResponses(donations))
}

// Claimed godoc
// @Summary List donations claimed by the NGO
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DonationResponse
// @Failure 401 {object} ErrorResponse
// @Router /donations/claimed [get]
func (h *DonationHandler) Claimed(c *gin.Context) {
	ngoID := middleware.GetAccountID(c)

	donations, err := h.feedService.ClaimedBy(ngoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toDonationResponses(donations))
}

// Analytics godoc
// @Summary NGO claim analytics
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.NGOAnalytics
// @Failure 401 {object} ErrorResponse
// @Router /ngo/analytics [get]
func (h *DonationHandler) Analytics(c *gin.Context) {
	ngoID := middleware.GetAccountID(c)

	analytics, err := h.feedService.AnalyticsFor(ngoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, analytics)
}
