package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoshare/ecoshare/internal/middleware"
	"github.com/ecoshare/ecoshare/internal/services"
)

type DeliveryHandler struct {
	lifecycleService *services.LifecycleService
	feedService      *services.FeedService
	volunteerService *services.VolunteerService
}

func NewDeliveryHandler(
	lifecycleService *services.LifecycleService,
	feedService *services.FeedService,
	volunteerService *services.VolunteerService,
) *DeliveryHandler {
	return &DeliveryHandler{
		lifecycleService: lifecycleService,
		feedService:      feedService,
		volunteerService: volunteerService,
	}
}

type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// Available godoc
// @Summary Delivery tasks open in the volunteer's city
// @Description Reserved donations without a courier, restricted to the volunteer's own city
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DonationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /deliveries/available [get]
func (h *DeliveryHandler) Available(c *gin.Context) {
	volunteerID := middleware.GetAccountID(c)

	donations, err := h.feedService.OpenDeliveries(volunteerID)
	if err != nil {
		if err == services.ErrVolunteerNotFound {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "volunteer profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toDonationResponses(donations))
}

// Assigned godoc
// @Summary Deliveries assigned to the volunteer
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DonationResponse
// @Failure 401 {object} ErrorResponse
// @Router /deliveries/assigned [get]
func (h *DeliveryHandler) Assigned(c *gin.Context) {
	volunteerID := middleware.GetAccountID(c)

	donations, err := h.feedService.AssignedDeliveries(volunteerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toDonationResponses(donations))
}

// Accept godoc
// @Summary Accept a delivery task
// @Description Attach the volunteer to a claimed donation in their city. Exactly one volunteer can win a given task.
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /deliveries/{id}/accept [post]
func (h *DeliveryHandler) Accept(c *gin.Context) {
	id, ok := donationIDParam(c)
	if !ok {
		return
	}
	volunteerID := middleware.GetAccountID(c)

	donation, err := h.lifecycleService.AcceptDelivery(volunteerID, id)
	if err != nil {
		switch err {
		case services.ErrDonationNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "donation not found"})
		case services.ErrVolunteerNotFound:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "volunteer profile not found"})
		case services.ErrVolunteerUnavailable:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "set yourself available before accepting deliveries"})
		case services.ErrCityMismatch:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "delivery is outside your city"})
		case services.ErrDeliveryTaken:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "delivery already has a volunteer"})
		case services.ErrNotAvailable:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "donation is not awaiting delivery"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toDonationResponse(donation))
}

// Complete godoc
// @Summary Complete an assigned delivery
// @Description Mark a Reserved donation as delivered. Only the assigned volunteer may complete it.
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /deliveries/{id}/complete [post]
func (h *DeliveryHandler) Complete(c *gin.Context) {
	id, ok := donationIDParam(c)
	if !ok {
		return
	}
	volunteerID := middleware.GetAccountID(c)

	donation, err := h.lifecycleService.CompleteDelivery(volunteerID, id)
	if err != nil {
		switch err {
		case services.ErrDonationNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "donation not found"})
		case services.ErrNotAssigned:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "delivery is not assigned to you"})
		case services.ErrNotAvailable:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "donation is not in a completable state"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toDonationResponse(donation))
}

// Profile godoc
// @Summary Get the volunteer's profile
// @Tags volunteer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.VolunteerProfile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /volunteer/profile [get]
func (h *DeliveryHandler) Profile(c *gin.Context) {
	volunteerID := middleware.GetAccountID(c)

	profile, err := h.volunteerService.Profile(volunteerID)
	if err != nil {
		if err == services.ErrVolunteerNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "volunteer profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SetAvailability godoc
// @Summary Toggle delivery availability
// @Tags volunteer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AvailabilityRequest true "Availability"
// @Success 200 {object} models.VolunteerProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /volunteer/availability [put]
func (h *DeliveryHandler) SetAvailability(c *gin.Context) {
	volunteerID := middleware.GetAccountID(c)

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	profile, err := h.volunteerService.SetAvailability(volunteerID, *req.Available)
	if err != nil {
		if err == services.ErrVolunteerNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "volunteer profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
