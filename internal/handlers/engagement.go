package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecoshare/ecoshare/internal/middleware"
	"github.com/ecoshare/ecoshare/internal/services"
)

type EngagementHandler struct {
	engagementService *services.EngagementService
}

func NewEngagementHandler(engagementService *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	DonationID  *uint  `json:"donation_id"`
	Message     string `json:"message" binding:"required"`
}

type PostReviewRequest struct {
	ReviewedID  uint   `json:"reviewed_id" binding:"required"`
	DonationID  *uint  `json:"donation_id"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Punctuality *int   `json:"punctuality" binding:"omitempty,min=1,max=5"`
	Honesty     *int   `json:"honesty" binding:"omitempty,min=1,max=5"`
	Cleanliness *int   `json:"cleanliness" binding:"omitempty,min=1,max=5"`
	Helpfulness *int   `json:"helpfulness" binding:"omitempty,min=1,max=5"`
	Comment     string `json:"comment"`
}

type ImpactNoteRequest struct {
	ImpactDescription string `json:"impact_description" binding:"required"`
	PeopleHelped      *int   `json:"people_helped" binding:"omitempty,min=0"`
}

// SendMessage godoc
// @Summary Send a message to another participant
// @Tags engagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendMessageRequest true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages [post]
func (h *EngagementHandler) SendMessage(c *gin.Context) {
	senderID := middleware.GetAccountID(c)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	message, err := h.engagementService.SendMessage(senderID, req.RecipientID, req.DonationID, req.Message)
	if err != nil {
		switch err {
		case services.ErrSelfMessage:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot message yourself"})
		case services.ErrRecipientNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "recipient not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, message)
}

// Inbox godoc
// @Summary List the account's messages
// @Tags engagement
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Message
// @Failure 401 {object} ErrorResponse
// @Router /messages [get]
func (h *EngagementHandler) Inbox(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	messages, err := h.engagementService.Inbox(accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// MarkRead godoc
// @Summary Mark a received message as read
// @Tags engagement
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages/{id}/read [post]
func (h *EngagementHandler) MarkRead(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid message ID"})
		return
	}

	if err := h.engagementService.MarkRead(accountID, uint(id)); err != nil {
		if err == services.ErrMessageNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// PostReview godoc
// @Summary Review another participant after a handover
// @Tags engagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PostReviewRequest true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviews [post]
func (h *EngagementHandler) PostReview(c *gin.Context) {
	reviewerID := middleware.GetAccountID(c)

	var req PostReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	review, err := h.engagementService.PostReview(reviewerID, services.NewReview{
		ReviewedID:  req.ReviewedID,
		DonationID:  req.DonationID,
		Rating:      req.Rating,
		Punctuality: req.Punctuality,
		Honesty:     req.Honesty,
		Cleanliness: req.Cleanliness,
		Helpfulness: req.Helpfulness,
		Comment:     req.Comment,
	})
	if err != nil {
		switch err {
		case services.ErrInvalidRating:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rating must be between 1 and 5"})
		case services.ErrRecipientNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "reviewed account not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ReviewsFor godoc
// @Summary List reviews received by an account
// @Tags engagement
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {array} models.Review
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /reviews/{id} [get]
func (h *EngagementHandler) ReviewsFor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account ID"})
		return
	}

	reviews, err := h.engagementService.ReviewsFor(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// AddImpactNote godoc
// @Summary Record the impact of a completed donation
// @Description Only the NGO that claimed the donation may write an impact note, and only once the donation is Completed.
// @Tags engagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Param request body ImpactNoteRequest true "Impact note"
// @Success 201 {object} models.ImpactNote
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /donations/{id}/impact [post]
func (h *EngagementHandler) AddImpactNote(c *gin.Context) {
	ngoID := middleware.GetAccountID(c)

	id, ok := donationIDParam(c)
	if !ok {
		return
	}

	var req ImpactNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	note, err := h.engagementService.AddImpactNote(ngoID, id, req.ImpactDescription, req.PeopleHelped)
	if err != nil {
		switch err {
		case services.ErrDonationNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "donation not found"})
		case services.ErrNotClaimant:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "donation is not claimed by this ngo"})
		case services.ErrDonationNotCompleted:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "donation is not completed yet"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, note)
}

// ImpactNotes godoc
// @Summary List the NGO's impact notes
// @Tags engagement
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ImpactNote
// @Failure 401 {object} ErrorResponse
// @Router /impact [get]
func (h *EngagementHandler) ImpactNotes(c *gin.Context) {
	ngoID := middleware.GetAccountID(c)

	notes, err := h.engagementService.ImpactNotesFor(ngoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, notes)
}
