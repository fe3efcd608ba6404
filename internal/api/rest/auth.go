package rest

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/account"
	"github.com/indietrack/artist-dashboard/internal/api/middleware"
	"github.com/indietrack/artist-dashboard/internal/api/shared/dto"
	"github.com/indietrack/artist-dashboard/internal/logger"
)

// Register creates an account
func (h *handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.accounts.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, dto.MapRegisterResultToDTO(result))
}

// Login exchanges credentials for a session
func (h *handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	session, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.MapLoginToDTO(session))
}

// Logout revokes the current session
func (h *handler) Logout(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	if err := h.accounts.Logout(c.Request.Context(), caller.AccessToken); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckSession reports whether the bearer token is a live session
func (h *handler) CheckSession(c *gin.Context) {
	token := middleware.BearerToken(c)
	user, err := h.accounts.CheckSession(c.Request.Context(), token)
	if err != nil {
		respondError(c, err, "Failed to check session")
		return
	}

	c.JSON(http.StatusOK, dto.MapCheckSessionToDTO(token, user))
}

// ConfirmEmail verifies the emailed token and redirects to the web app
func (h *handler) ConfirmEmail(c *gin.Context) {
	var params ConfirmEmailQueryParams
	if err := c.ShouldBindQuery(&params); err != nil || !params.ValidType() || params.VerificationToken() == "" {
		c.Redirect(http.StatusSeeOther, h.webURL("/auth-error", nil))
		return
	}

	if _, err := h.accounts.VerifyEmail(c.Request.Context(), params.VerificationToken()); err != nil {
		logger.WarnCtx(c.Request.Context(), "Email confirmation failed", zap.Error(err))
		c.Redirect(http.StatusSeeOther, h.webURL("/auth-error", nil))
		return
	}

	c.Redirect(http.StatusSeeOther, h.webURL("/login", url.Values{"verified": {"true"}}))
}

// ResetPassword sends a password recovery email
func (h *handler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.accounts.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "Failed to request password reset")
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Password reset email sent"))
}

// UpdatePassword changes the password of the session user
func (h *handler) UpdatePassword(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.accounts.UpdatePassword(c.Request.Context(), caller, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Password updated"))
}

// DeleteAccount removes the session user and all owned data
func (h *handler) DeleteAccount(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.accounts.DeleteAccount(c.Request.Context(), caller, req.Password); err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Account deleted"))
}

// UpdateNotifications stores the email notification switches
func (h *handler) UpdateNotifications(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	var req dto.UpdateNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	prefs, err := h.accounts.UpdateNotifications(c.Request.Context(), caller, req.ToPreferences())
	if err != nil {
		respondError(c, err, "Failed to update notifications")
		return
	}

	c.JSON(http.StatusOK, dto.MapUpdatedNotificationsToDTO(prefs))
}

// webURL builds an absolute link into the web app
func (h *handler) webURL(path string, query url.Values) string {
	u := strings.TrimRight(h.cfg.PublicURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// callerOf is the authenticated caller, answering 401 when the route lacks session auth
func callerOf(c *gin.Context) (account.Caller, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
	}
	return caller, ok
}

// userIDOf is the authenticated user id, answering 401 when the route lacks session auth
func userIDOf(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		respondUnauthorized(c)
	}
	return id, ok
}
