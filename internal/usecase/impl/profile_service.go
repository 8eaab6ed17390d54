package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "nursehub/internal/delivery/context"
	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/repository"
	"nursehub/internal/usecase"
	"nursehub/internal/util"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// EnsureProfile mirrors the identity-provider profile into the local cache.
func (srv *profileService) EnsureProfile(ctx context.Context, identity *entity.Identity) error {
	if identity == nil || strings.TrimSpace(identity.ID) == "" {
		return domainerrors.ErrIdentityRequired
	}

	profile := entity.ProfileFromIdentity(identity)
	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to upsert profile")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Profile synced",
		slog.String("identity", profile.ID),
		slog.String("email", util.MaskEmail(profile.Email)),
	)

	return nil
}

// GetProfile retrieves the cached profile of an identity.
func (srv *profileService) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
