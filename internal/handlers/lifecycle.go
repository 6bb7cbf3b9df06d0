package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecoshare/ecoshare/internal/middleware"
	"github.com/ecoshare/ecoshare/internal/services"
)

// LifecycleHandler exposes the donation state transitions. Every
// rejection maps a lifecycle sentinel to a 4xx with the record left
// untouched, so the client can refresh and retry.
type LifecycleHandler struct {
	lifecycleService *services.LifecycleService
}

func NewLifecycleHandler(lifecycleService *services.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{lifecycleService: lifecycleService}
}

func donationIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid donation ID"})
		return 0, false
	}
	return uint(id), true
}

// Claim godoc
// @Summary Claim an available donation
// @Description Reserve an Available donation for the acting NGO. Rejected if the donation was already claimed or the NGO is not verified.
// @Tags lifecycle
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /donations/{id}/claim [post]
func (h *LifecycleHandler) Claim(c *gin.Context) {
	id, ok := donationIDParam(c)
	if !ok {
		return
	}
	ngoID := middleware.GetAccountID(c)

	donation, err := h.lifecycleService.Claim(ngoID, id)
	if err != nil {
		switch err {
		case services.ErrDonationNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "donation not found"})
		case services.ErrNotAvailable:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "donation is no longer available"})
		case services.ErrNGONotFound:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "ngo profile not found"})
		case services.ErrNGONotVerified:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "ngo must be verified to claim donations"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toDonationResponse(donation))
}

// Complete godoc
// @Summary Complete a claimed donation
// @Description Mark a Reserved donation as received. Only the claiming NGO may complete it.
// @Tags lifecycle
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /donations/{id}/complete [post]
func (h *LifecycleHandler) Complete(c *gin.Context) {
	id, ok := donationIDParam(c)
	if !ok {
		return
	}
	ngoID := middleware.GetAccountID(c)

	donation, err := h.lifecycleService.CompleteByNGO(ngoID, id)
	if err != nil {
		switch err {
		case services.ErrDonationNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "donation not found"})
		case services.ErrNotClaimant:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "donation is not claimed by this ngo"})
		case services.ErrNotAvailable:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "donation is not in a completable state"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toDonationResponse(donation))
}
