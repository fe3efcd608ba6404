package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/api/shared/dto"
	"github.com/indietrack/artist-dashboard/internal/domain"
)

// GetProfile returns the artist profile
func (h *handler) GetProfile(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	profile, err := h.accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, dto.MapProfileToDTO(profile))
}

// UpdateProfile applies profile changes
func (h *handler) UpdateProfile(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	profile, err := h.accounts.UpdateProfile(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, dto.MapProfileToDTO(profile))
}

// SetupProfile completes the profile after registration
func (h *handler) SetupProfile(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	profile, err := h.accounts.SetupProfile(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to set up profile")
		return
	}

	c.JSON(http.StatusOK, dto.MapProfileToDTO(profile))
}

// GetLicenseAgreement returns the license agreement
func (h *handler) GetLicenseAgreement(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	agreement, err := h.accounts.GetLicenseAgreement(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get license agreement")
		return
	}

	c.JSON(http.StatusOK, dto.MapLicenseAgreementToDTO(agreement))
}

// SaveLicenseAgreement creates or replaces the license agreement
func (h *handler) SaveLicenseAgreement(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	var req dto.LicenseAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	agreement, err := h.accounts.SaveLicenseAgreement(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to save license agreement")
		return
	}

	c.JSON(http.StatusOK, dto.MapLicenseAgreementToDTO(agreement))
}

// UploadAsset stores an uploaded image
func (h *handler) UploadAsset(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	kind := domain.AssetKind(c.Param("kind"))
	if !kind.Valid() {
		respondBadRequest(c, "Invalid upload kind", "must be one of cover-art, avatar, signature")
		return
	}

	if h.cfg.MaxUploadSize > 0 {
		// Leave room for the multipart envelope around the file
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadSize+64*1024)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondValidationError(c, "file: is too large")
			return
		}
		respondValidationError(c, "file: is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err, "Failed to read upload", zap.String("filename", header.Filename))
		return
	}
	defer file.Close()

	asset, err := h.accounts.UploadAsset(c.Request.Context(), userID, kind, header.Filename, file)
	if err != nil {
		respondError(c, err, "Failed to upload asset", zap.String("kind", string(kind)))
		return
	}

	c.JSON(http.StatusCreated, dto.MapAssetToDTO(kind, asset))
}
