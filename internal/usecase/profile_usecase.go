package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mensonones/service-pro-api/internal/converter"
	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/domain/entity"
	"github.com/mensonones/service-pro-api/internal/domain/repository"
	"github.com/mensonones/service-pro-api/pkg/apperr"
)

var (
	ErrProfileNotFound    = apperr.NotFound("profile not found")
	ErrUserNotFound       = apperr.NotFound("user not found")
	ErrUserAlreadyBound   = apperr.Integrity("user already has a profile")
	ErrEmailAlreadyInUse  = apperr.Integrity("email already in use")
	ErrProfileDeleteDenied = apperr.Validation("profile deletion is disabled")
)

// ProfileDeletionEnabled is the management-surface capability flag:
// profiles are administratively protected and cannot be removed here.
const ProfileDeletionEnabled = false

type ProfileUsecase interface {
	CreateClient(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	CreateProvider(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error)
	ListClients(ctx context.Context, page, limit int) ([]dto.ProfileResponse, int64, error)
	ListProviders(ctx context.Context, page, limit int) ([]dto.ProfileResponse, int64, error)
	ListAll(ctx context.Context, page, limit int) ([]dto.ProfileResponse, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewProfileUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) ProfileUsecase {
	return &profileUsecase{
		log:         log,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// CreateClient registers a client profile. Any role supplied by the
// caller is ignored: this endpoint always produces a client.
func (u *profileUsecase) CreateClient(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	return u.create(ctx, req, entity.NewClientProfile)
}

// CreateProvider registers a provider profile. Any role supplied by the
// caller is ignored: this endpoint always produces a provider.
func (u *profileUsecase) CreateProvider(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	return u.create(ctx, req, entity.NewProviderProfile)
}

type profileFactory func(userID uuid.UUID, phone, email string, address entity.Address) (*entity.Profile, error)

func (u *profileUsecase) create(ctx context.Context, req *dto.CreateProfileRequest, build profileFactory) (*dto.ProfileResponse, error) {
	user, err := u.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", req.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// One profile per identity
	existing, err := u.profileRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to check user binding for %s: %+v", req.UserID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyBound
	}

	byEmail, err := u.profileRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email %s: %+v", req.Email, err)
		return nil, err
	}
	if byEmail != nil {
		return nil, ErrEmailAlreadyInUse
	}

	profile, err := build(req.UserID, req.Phone, req.Email, entity.Address{
		Street:       req.Address.Street,
		Neighborhood: req.Address.Neighborhood,
		Number:       req.Address.Number,
		City:         req.Address.City,
		State:        req.Address.State,
		PostalCode:   req.Address.PostalCode,
		Country:      req.Address.Country,
	})
	if err != nil {
		return nil, apperr.ValidationWrap(err)
	}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		u.log.Warnf("Failed to create profile for user %s: %+v", req.UserID, err)
		return nil, err
	}

	profile.User = *user

	u.log.Infof("Profile created: id=%s, user=%s, role=%s", profile.ID, profile.UserID, profile.Role)
	return converter.ProfileToResponse(profile), nil
}

func (u *profileUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find profile %s: %+v", id, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return converter.ProfileToResponse(profile), nil
}

// ListClients returns the role=client projection of the profile table.
func (u *profileUsecase) ListClients(ctx context.Context, page, limit int) ([]dto.ProfileResponse, int64, error) {
	return u.listByRole(ctx, entity.RoleClient, page, limit)
}

// ListProviders returns the role=provider projection of the profile table.
func (u *profileUsecase) ListProviders(ctx context.Context, page, limit int) ([]dto.ProfileResponse, int64, error) {
	return u.listByRole(ctx, entity.RoleProvider, page, limit)
}

// ListAll returns the whole directory, both roles mixed.
func (u *profileUsecase) ListAll(ctx context.Context, page, limit int) ([]dto.ProfileResponse, int64, error) {
	offset := (page - 1) * limit

	profiles, total, err := u.profileRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list profiles: %+v", err)
		return nil, 0, err
	}

	return converter.ProfilesToResponses(profiles), total, nil
}

func (u *profileUsecase) listByRole(ctx context.Context, role entity.ProfileRole, page, limit int) ([]dto.ProfileResponse, int64, error) {
	offset := (page - 1) * limit

	profiles, total, err := u.profileRepo.FindByRole(ctx, role, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list %s profiles: %+v", role, err)
		return nil, 0, err
	}

	return converter.ProfilesToResponses(profiles), total, nil
}

// Delete always refuses while ProfileDeletionEnabled is false.
func (u *profileUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if !ProfileDeletionEnabled {
		return ErrProfileDeleteDenied
	}
	return nil
}
