package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/indietrack/artist-dashboard/internal/activity"
	"github.com/indietrack/artist-dashboard/internal/analytics"
	apierrors "github.com/indietrack/artist-dashboard/internal/api/shared/errors"
)

// ListActivitiesQueryParams holds query parameters for GET /activity
type ListActivitiesQueryParams struct {
	Limit int `form:"limit,default=10"`
}

// Validate validates the query parameters
func (p *ListActivitiesQueryParams) Validate() error {
	if p.Limit < 1 || p.Limit > activity.MaxLimit {
		return apierrors.NewValidationError(fmt.Sprintf("limit must be between 1 and %d", activity.MaxLimit))
	}
	return nil
}

// AnalyticsQueryParams holds query parameters for GET /analytics
type AnalyticsQueryParams struct {
	Months int `form:"months,default=6"`
}

// Validate validates the query parameters
func (p *AnalyticsQueryParams) Validate() error {
	if p.Months < 1 || p.Months > analytics.MaxMonths {
		return apierrors.NewValidationError(fmt.Sprintf("months must be between 1 and %d", analytics.MaxMonths))
	}
	return nil
}

// ConfirmEmailQueryParams holds query parameters for GET /auth/confirm-email
type ConfirmEmailQueryParams struct {
	Token     string `form:"token"`
	TokenHash string `form:"token_hash"`
	Type      string `form:"type"`
}

// VerificationToken returns the token from either query parameter
func (p *ConfirmEmailQueryParams) VerificationToken() string {
	if p.TokenHash != "" {
		return p.TokenHash
	}
	return p.Token
}

// ValidType reports whether the link is an email confirmation link
func (p *ConfirmEmailQueryParams) ValidType() bool {
	switch p.Type {
	case "", "email_confirmation", "signup", "email":
		return true
	}
	return false
}

// ParseListActivitiesQuery parses query parameters for GET /activity
func ParseListActivitiesQuery(c *gin.Context) (*ListActivitiesQueryParams, error) {
	var params ListActivitiesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// ParseAnalyticsQuery parses query parameters for GET /analytics
func ParseAnalyticsQuery(c *gin.Context) (*AnalyticsQueryParams, error) {
	var params AnalyticsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// parseReleaseID reads the :id path parameter
func parseReleaseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid release ID")
		return uuid.Nil, false
	}
	return id, true
}
