package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoshare/ecoshare/internal/middleware"
	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
	"github.com/ecoshare/ecoshare/internal/storage"
)

type UploadHandler struct {
	uploader    storage.Uploader
	profileRepo *repository.ProfileRepository
}

func NewUploadHandler(uploader storage.Uploader, profileRepo *repository.ProfileRepository) *UploadHandler {
	return &UploadHandler{
		uploader:    uploader,
		profileRepo: profileRepo,
	}
}

type UploadResponse struct {
	URL string `json:"url"`
}

// Photo godoc
// @Summary Upload a donation photo
// @Description Store an image and return its URL for use in a donation listing
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /uploads/photo [post]
func (h *UploadHandler) Photo(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), file, "donation-photos")
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{URL: url})
}

// Document godoc
// @Summary Upload an NGO verification document
// @Description Store a registration or tax document and record it against the NGO's profile
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document file"
// @Param document_type formData string true "Document type"
// @Success 201 {object} models.NGODocument
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ngo/documents [post]
func (h *UploadHandler) Document(c *gin.Context) {
	ngoID := middleware.GetAccountID(c)

	documentType := c.PostForm("document_type")
	if documentType == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "document_type is required"})
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), file, "ngo-documents")
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	doc := &models.NGODocument{
		NGOID:        ngoID,
		DocumentType: documentType,
		FilePath:     url,
	}
	if err := h.profileRepo.CreateDocument(doc); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// Documents godoc
// @Summary List the NGO's uploaded documents
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.NGODocument
// @Failure 401 {object} ErrorResponse
// @Router /ngo/documents [get]
func (h *UploadHandler) Documents(c *gin.Context) {
	ngoID := middleware.GetAccountID(c)

	docs, err := h.profileRepo.FindDocumentsByNGO(ngoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, docs)
}
