package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/indietrack/artist-dashboard/internal/api/shared/errors"
	"github.com/indietrack/artist-dashboard/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{
			name:       "validation",
			err:        domain.NewValidationError("title", "is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name:       "transition",
			err:        &domain.TransitionError{From: domain.ReleaseStatusPublished, To: domain.ReleaseStatusDraft},
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeInvalidTransition,
		},
		{
			name:       "invalid credentials",
			err:        domain.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeInvalidCredentials,
		},
		{
			name:       "email not confirmed",
			err:        domain.ErrEmailNotConfirmed,
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeEmailNotConfirmed,
		},
		{
			name:       "not authorized",
			err:        domain.ErrNotAuthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apierrors.ErrCodeUnauthorized,
		},
		{
			name:       "user not found",
			err:        domain.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   apierrors.ErrCodeUserNotFound,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("release: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   apierrors.ErrCodeNotFound,
		},
		{
			name:       "persistence",
			err:        domain.ErrPersistence,
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierrors.ErrCodeDatabaseError,
		},
		{
			name:       "creation failed",
			err:        domain.ErrCreationFailed,
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierrors.ErrCodeDatabaseError,
		},
		{
			name:       "identity provider",
			err:        domain.ErrIdentityProvider,
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierrors.ErrCodeServiceError,
		},
		{
			name:       "unexpected",
			err:        errors.New("pq: relation \"releases\" does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierrors.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := apierrors.FromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			if status == http.StatusInternalServerError {
				assert.Empty(t, apiErr.Details)
				assert.NotContains(t, apiErr.Message, "pq:")
			}
		})
	}
}

func TestFromError_TransitionDetails(t *testing.T) {
	err := &domain.TransitionError{
		From:    domain.ReleaseStatusRejected,
		To:      domain.ReleaseStatusPublished,
		Allowed: []domain.ReleaseStatus{domain.ReleaseStatusDraft},
	}

	_, apiErr := apierrors.FromError(err)
	assert.Contains(t, apiErr.Details, "rejected")
	assert.Contains(t, apiErr.Details, "allowed: draft")
}

func TestAPIError_Error(t *testing.T) {
	err := apierrors.NewNotFoundError("Release not found", "id", "owner")
	assert.JSONEq(t, `{"code":"not_found","message":"Release not found","details":"id, owner"}`, err.Error())
}
