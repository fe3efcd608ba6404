package schema

import (
	"time"

	"github.com/google/uuid"
)

// LicenseAgreement represents the license_agreements table - the payout identity of an artist, one per user
type LicenseAgreement struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// UserID references the owning profile; unique so saves are upserts
	UserID uuid.UUID `gorm:"column:user_id;not null;type:uuid;uniqueIndex"`
	// FullName is the legal name of the signer
	FullName string `gorm:"column:full_name;not null;type:text"`
	// Address is the postal address of the signer
	Address string `gorm:"column:address;not null;type:text"`
	// PassportNumber is the identity document number
	PassportNumber string `gorm:"column:passport_number;not null;type:text"`
	// BankDetails holds optional payout instructions
	BankDetails *string `gorm:"column:bank_details;type:text"`
	// SignatureURL is the object-storage reference for the signature image
	SignatureURL *string `gorm:"column:signature_url;type:text"`
	// AgreedToTerms records the consent checkbox
	AgreedToTerms bool `gorm:"column:agreed_to_terms;not null;default:false"`
	// CreatedAt is the timestamp of the first save
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last save
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LicenseAgreement model
func (LicenseAgreement) TableName() string {
	return "license_agreements"
}
