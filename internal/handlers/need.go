package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecoshare/ecoshare/internal/middleware"
	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/services"
)

type NeedHandler struct {
	needsService *services.NeedsService
}

func NewNeedHandler(needsService *services.NeedsService) *NeedHandler {
	return &NeedHandler{needsService: needsService}
}

type CreateNeedRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Category       string `json:"category" binding:"required,oneof=Food Clothes Books Toys Electronics Other"`
	QuantityNeeded int    `json:"quantity_needed" binding:"required,min=1"`
	Deadline       string `json:"deadline"`
	IsEvent        bool   `json:"is_event"`
	EventDate      string `json:"event_date"`
}

type FulfilNeedRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type NeedResponse struct {
	ID                uint       `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	QuantityNeeded    int        `json:"quantity_needed"`
	FulfilledQuantity int        `json:"fulfilled_quantity"`
	Progress          float64    `json:"progress"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	IsEvent           bool       `json:"is_event"`
	EventDate         *time.Time `json:"event_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func toNeedResponse(need *models.Need) *NeedResponse {
	return &NeedResponse{
		ID:                need.ID,
		Title:             need.Title,
		Description:       need.Description,
		Category:          string(need.Category),
		QuantityNeeded:    need.QuantityNeeded,
		FulfilledQuantity: need.FulfilledQuantity,
		Progress:          need.Progress(),
		Deadline:          need.Deadline,
		IsEvent:           need.IsEvent,
		EventDate:         need.EventDate,
		CreatedAt:         need.CreatedAt,
	}
}

func parseDateField(c *gin.Context, value, field string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + field + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &parsed, true
}

// Post godoc
// @Summary Post an NGO need
// @Description Publish a demand signal with a quantity target. Fulfilment starts at zero.
// @Tags needs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNeedRequest true "Need details"
// @Success 201 {object} NeedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /needs [post]
func (h *NeedHandler) Post(c *gin.Context) {
	ngoID := middleware.GetAccountID(c)

	var req CreateNeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	deadline, ok := parseDateField(c, req.Deadline, "deadline")
	if !ok {
		return
	}
	eventDate, ok := parseDateField(c, req.EventDate, "event_date")
	if !ok {
		return
	}

	need, err := h.needsService.Post(ngoID, services.NewNeed{
		Title:          req.Title,
		Description:    req.Description,
		Category:       models.DonationCategory(req.Category),
		QuantityNeeded: req.QuantityNeeded,
		Deadline:       deadline,
		IsEvent:        req.IsEvent,
		EventDate:      eventDate,
	})
	if err != nil {
		switch err {
		case services.ErrInvalidQuantity:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity_needed must be at least 1"})
		case services.ErrNGONotFound:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "ngo profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, toNeedResponse(need))
}

// Mine godoc
// @Summary List the NGO's own needs with fulfilment progress
// @Tags needs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} NeedResponse
// @Failure 401 {object} ErrorResponse
// @Router /needs [get]
func (h *NeedHandler) Mine(c *gin.Context) {
	ngoID := middleware.GetAccountID(c)

	needs, err := h.needsService.ListForNGO(ngoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	responses := make([]NeedResponse, len(needs))
	for i := range needs {
		responses[i] = *toNeedResponse(&needs[i])
	}
	c.JSON(http.StatusOK, responses)
}

// Board godoc
// @Summary Browse all posted needs
// @Description The donor-facing needs board across every NGO
// @Tags needs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} NeedResponse
// @Failure 401 {object} ErrorResponse
// @Router /needs/board [get]
func (h *NeedHandler) Board(c *gin.Context) {
	needs, err := h.needsService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	responses := make([]NeedResponse, len(needs))
	for i := range needs {
		responses[i] = *toNeedResponse(&needs[i])
	}
	c.JSON(http.StatusOK, responses)
}

// Fulfil godoc
// @Summary Record fulfilment against a need
// @Description Increment the fulfilled counter on the NGO's own need. The counter never exceeds the quantity needed.
// @Tags needs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Need ID"
// @Param request body FulfilNeedRequest true "Fulfilment quantity"
// @Success 200 {object} NeedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /needs/{id}/fulfill [post]
func (h *NeedHandler) Fulfil(c *gin.Context) {
	ngoID := middleware.GetAccountID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid need ID"})
		return
	}

	var req FulfilNeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	need, err := h.needsService.RecordFulfilment(ngoID, uint(id), req.Quantity)
	if err != nil {
		switch err {
		case services.ErrInvalidQuantity:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity must be at least 1"})
		case services.ErrNeedNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "need not found"})
		case services.ErrFulfilmentTooLarge:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "fulfilment exceeds quantity needed"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toNeedResponse(need))
}
