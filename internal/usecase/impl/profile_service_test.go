package impl

import (
	"context"
	"testing"

	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/repository"
	mockRepo "nursehub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_EnsureProfile_Success(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProfileService(profileRepo, newDiscardLogger())

	ctx := context.Background()

	profileRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.ID == "u1" &&
				p.Email == "jane@example.com" &&
				p.FullName == "Jane Doe" &&
				p.Username == "jdoe"
		})).
		Return(nil)

	err := svc.EnsureProfile(ctx, &entity.Identity{
		ID:        "u1",
		Email:     " Jane@Example.com ",
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "jdoe",
	})

	require.NoError(t, err)
}

func TestProfileService_EnsureProfile_RequiresIdentity(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProfileService(profileRepo, newDiscardLogger())

	assert.ErrorIs(t, svc.EnsureProfile(context.Background(), nil), domainerrors.ErrIdentityRequired)
	assert.ErrorIs(t, svc.EnsureProfile(context.Background(), &entity.Identity{}), domainerrors.ErrIdentityRequired)
}

func TestProfileService_EnsureProfile_RepoError(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProfileService(profileRepo, newDiscardLogger())

	ctx := context.Background()
	profileRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("db error"))

	err := svc.EnsureProfile(ctx, &entity.Identity{ID: "u1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert profile")
}

func TestProfileService_GetProfile(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProfileService(profileRepo, newDiscardLogger())

	ctx := context.Background()
	profileRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.Profile{ID: "u1", Email: "jane@example.com"}, nil)
	profileRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrProfileNotFound)

	profile, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", profile.Email)

	_, err = svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}
