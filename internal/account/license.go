package account

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

// LicenseAgreementInput holds the license agreement form
type LicenseAgreementInput struct {
	FullName       string
	Address        string
	PassportNumber string
	BankDetails    *string
	SignatureURL   *string
	AgreedToTerms  bool
}

func (s *service) GetLicenseAgreement(ctx context.Context, userID uuid.UUID) (*schema.LicenseAgreement, error) {
	agreement, err := s.store.GetLicenseAgreement(ctx, userID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to get license agreement: %w", err), zap.String("userID", userID.String()))
		return nil, domain.ErrPersistence
	}
	if agreement == nil {
		return nil, domain.ErrNotFound
	}
	return agreement, nil
}

func (s *service) SaveLicenseAgreement(ctx context.Context, userID uuid.UUID, input LicenseAgreementInput) (*schema.LicenseAgreement, error) {
	fullName := strings.TrimSpace(input.FullName)
	address := strings.TrimSpace(input.Address)
	passport := strings.TrimSpace(input.PassportNumber)

	switch {
	case utf8.RuneCountInString(fullName) < 2:
		return nil, domain.NewValidationError("full_name", "must be at least 2 characters")
	case utf8.RuneCountInString(address) < 5:
		return nil, domain.NewValidationError("address", "must be at least 5 characters")
	case utf8.RuneCountInString(passport) < 6:
		return nil, domain.NewValidationError("passport_number", "must be at least 6 characters")
	case !input.AgreedToTerms:
		return nil, domain.NewValidationError("agreed_to_terms", "must be accepted")
	}

	signature := input.SignatureURL
	if signature != nil {
		trimmed := strings.TrimSpace(*signature)
		if trimmed != "" && !validURL(trimmed) {
			return nil, domain.NewValidationError("signature_url", "must be an http(s) URL")
		}
		signature = &trimmed
	}

	saved, err := s.store.UpsertLicenseAgreement(ctx, &schema.LicenseAgreement{
		UserID:         userID,
		FullName:       fullName,
		Address:        address,
		PassportNumber: passport,
		BankDetails:    input.BankDetails,
		SignatureURL:   signature,
		AgreedToTerms:  input.AgreedToTerms,
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to save license agreement: %w", err), zap.String("userID", userID.String()))
		return nil, domain.ErrPersistence
	}

	s.recordActivity(ctx, userID, domain.ActivitySettingsUpdated, "License agreement saved")
	return saved, nil
}
