package entity

import (
	"errors"
	"net/mail"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ProfileRole tags a profile as either a client or a service provider.
type ProfileRole string

const (
	RoleClient   ProfileRole = "client"
	RoleProvider ProfileRole = "provider"
)

var (
	ErrInvalidPhone = errors.New("invalid phone - expected format: 85992563678")
	ErrInvalidEmail = errors.New("invalid email address")
)

// PhonePattern is the accepted mobile phone format: two-digit area code,
// the literal '9' mobile marker, then eight digits.
var PhonePattern = regexp.MustCompile(`^[0-9]{2}9[0-9]{8}$`)

// Profile is the single person record behind both clients and providers.
// The role is fixed at construction by NewClientProfile/NewProviderProfile;
// there is no other write path for it.
type Profile struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Role      ProfileRole `gorm:"type:profile_role;not null;index" json:"role"`
	Phone     string      `gorm:"type:varchar(11);not null" json:"phone"`
	Email     string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Address   Address     `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

// IsClient checks if the profile is a client
func (p *Profile) IsClient() bool {
	return p.Role == RoleClient
}

// IsProvider checks if the profile is a service provider
func (p *Profile) IsProvider() bool {
	return p.Role == RoleProvider
}

// NewClientProfile builds a client profile. The role is always forced to
// client regardless of caller input.
func NewClientProfile(userID uuid.UUID, phone, email string, address Address) (*Profile, error) {
	return newProfile(userID, RoleClient, phone, email, address)
}

// NewProviderProfile builds a provider profile. The role is always forced
// to provider regardless of caller input.
func NewProviderProfile(userID uuid.UUID, phone, email string, address Address) (*Profile, error) {
	return newProfile(userID, RoleProvider, phone, email, address)
}

func newProfile(userID uuid.UUID, role ProfileRole, phone, email string, address Address) (*Profile, error) {
	if !PhonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	return &Profile{
		UserID:  userID,
		Role:    role,
		Phone:   phone,
		Email:   email,
		Address: address,
	}, nil
}
