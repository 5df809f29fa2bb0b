package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "nordstudio/internal/errors"
	"nordstudio/internal/response"
	"nordstudio/internal/service"
)

// UploadHandler handles image upload and retrieval endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage godoc
// @Summary Upload a single image
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /upload/image [post]
func (h *UploadHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return respondError(c, apperrors.ErrNoFileUploaded)
	}

	uploaded, err := h.uploadService.StoreImage(c.Request().Context(), file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(uploaded))
}

// UploadImages godoc
// @Summary Upload up to 10 images
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Image files"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /upload/images [post]
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, apperrors.ErrNoFilesUploaded)
	}

	uploaded, err := h.uploadService.StoreImages(c.Request().Context(), form.File["images"])
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(uploaded))
}

// ServeFile godoc
// @Summary Retrieve a stored upload
// @Tags upload
// @Produce octet-stream
// @Param name path string true "Stored filename"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /upload/files/{name} [get]
func (h *UploadHandler) ServeFile(c echo.Context) error {
	path, err := h.uploadService.Resolve(c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.File(path)
}
