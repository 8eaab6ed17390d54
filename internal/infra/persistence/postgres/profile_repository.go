package postgres

import (
	"context"

	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/repository"
	"nursehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert writes the latest observed profile values over the cached row.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	profileM := &model.ProfileModel{
		ID:        profile.ID,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		FullName:  profile.FullName,
		Username:  profile.Username,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "full_name", "username", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	return nil
}

func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	return &entity.Profile{
		ID:        profileM.ID,
		Email:     profileM.Email,
		FirstName: profileM.FirstName,
		LastName:  profileM.LastName,
		FullName:  profileM.FullName,
		Username:  profileM.Username,
		CreatedAt: profileM.CreatedAt,
		UpdatedAt: profileM.UpdatedAt,
	}, nil
}
