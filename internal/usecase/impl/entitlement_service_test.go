package impl

import (
	"context"
	"testing"
	"time"

	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/repository"
	mockRepo "nursehub/internal/mocks/repository"
	mockService "nursehub/internal/mocks/service"
	"nursehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// entitlementServiceFixtures holds all test dependencies for entitlement service tests.
type entitlementServiceFixtures struct {
	service   *entitlementService
	repo      *mockRepo.MockEntitlementRepository
	publisher *mockService.MockEventPublisher
	metrics   *mockService.MockMetricsRecorder
}

func createTestEntitlementService(t *testing.T) entitlementServiceFixtures {
	repo := mockRepo.NewMockEntitlementRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	svc := NewEntitlementService(EntitlementServiceParams{
		EntitlementRepo: repo,
		Publisher:       publisher,
		Metrics:         metrics,
		Logger:          newDiscardLogger(),
	}).(*entitlementService)
	svc.now = func() time.Time { return testNow }

	return entitlementServiceFixtures{
		service:   svc,
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
	}
}

func TestEntitlementService_CreateOrUpdate_Success(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	entitlementID := uuid.New()

	fx.repo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(e *entity.Entitlement) bool {
			return e.Identity == "u1" &&
				e.ProductKey == entity.ProductQuiz &&
				e.Status == entity.EntitlementActive &&
				*e.CustomerRef == "cus_1" &&
				*e.SubscriptionRef == "sub_1" &&
				e.ExpiresAt == nil
		})).
		Run(func(_ context.Context, e *entity.Entitlement) {
			e.ID = entitlementID
		}).
		Return(nil)
	fx.metrics.EXPECT().ObserveEntitlementChange("granted").Return()
	fx.publisher.EXPECT().
		PublishEntitlementEvent(ctx, mock.MatchedBy(func(event *entity.EntitlementEvent) bool {
			return event.Type == entity.EventEntitlementGranted &&
				event.EntitlementID == entitlementID.String() &&
				event.SubscriptionRef == "sub_1"
		})).
		Return(nil)

	entitlement, err := fx.service.CreateOrUpdate(ctx, &usecase.GrantInput{
		Identity:        "u1",
		ProductKey:      entity.ProductQuiz,
		CustomerRef:     strPtr("cus_1"),
		SubscriptionRef: strPtr("sub_1"),
	})

	require.NoError(t, err)
	assert.Equal(t, entitlementID, entitlement.ID)
	assert.True(t, entitlement.GrantsAccessAt(testNow))
}

func TestEntitlementService_CreateOrUpdate_SecondCallWins(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	type pair struct {
		identity string
		product  entity.ProductKey
	}
	table := map[pair]*entity.Entitlement{}

	fx.repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Entitlement")).
		RunAndReturn(func(_ context.Context, e *entity.Entitlement) error {
			stored := *e
			table[pair{e.Identity, e.ProductKey}] = &stored

			return nil
		}).
		Times(2)
	fx.metrics.EXPECT().ObserveEntitlementChange("granted").Return().Times(2)
	fx.publisher.EXPECT().PublishEntitlementEvent(ctx, mock.Anything).Return(nil).Times(2)

	_, err := fx.service.CreateOrUpdate(ctx, &usecase.GrantInput{
		Identity: "u1", ProductKey: entity.ProductOSCE, CustomerRef: strPtr("cus_first"), SubscriptionRef: strPtr("sub_first"),
	})
	require.NoError(t, err)

	_, err = fx.service.CreateOrUpdate(ctx, &usecase.GrantInput{
		Identity: "u1", ProductKey: entity.ProductOSCE, CustomerRef: strPtr("cus_second"), SubscriptionRef: strPtr("sub_second"),
	})
	require.NoError(t, err)

	require.Len(t, table, 1)
	row := table[pair{"u1", entity.ProductOSCE}]
	assert.Equal(t, "cus_second", *row.CustomerRef)
	assert.Equal(t, "sub_second", *row.SubscriptionRef)
}

func TestEntitlementService_CreateOrUpdate_BlankRefsStoredAsNull(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()

	fx.repo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(e *entity.Entitlement) bool {
			return e.CustomerRef == nil && e.SubscriptionRef == nil
		})).
		Return(nil)
	fx.metrics.EXPECT().ObserveEntitlementChange("granted").Return()
	fx.publisher.EXPECT().PublishEntitlementEvent(ctx, mock.Anything).Return(nil)

	_, err := fx.service.CreateOrUpdate(ctx, &usecase.GrantInput{
		Identity: "u1", ProductKey: entity.ProductHub, CustomerRef: strPtr(""), SubscriptionRef: strPtr("  "),
	})
	require.NoError(t, err)
}

func TestEntitlementService_CreateOrUpdate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.GrantInput
		want  error
	}{
		{name: "nil input", input: nil, want: domainerrors.ErrIdentityRequired},
		{name: "blank identity", input: &usecase.GrantInput{Identity: "  ", ProductKey: entity.ProductQuiz}, want: domainerrors.ErrIdentityRequired},
		{name: "unknown product", input: &usecase.GrantInput{Identity: "u1", ProductKey: "premium"}, want: domainerrors.ErrInvalidProductKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEntitlementService(t)

			_, err := fx.service.CreateOrUpdate(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestEntitlementService_CreateOrUpdate_RepoError(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to upsert entitlement")

	fx.repo.EXPECT().Upsert(ctx, mock.Anything).Return(dbErr)

	entitlement, err := fx.service.CreateOrUpdate(ctx, &usecase.GrantInput{Identity: "u1", ProductKey: entity.ProductQuiz})

	require.Error(t, err)
	assert.Nil(t, entitlement)
	assert.Equal(t, domainerrors.KindUpstream, domainerrors.KindOf(err))
}

func TestEntitlementService_CreateOrUpdate_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()

	fx.repo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
	fx.metrics.EXPECT().ObserveEntitlementChange("granted").Return()
	fx.publisher.EXPECT().PublishEntitlementEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	entitlement, err := fx.service.CreateOrUpdate(ctx, &usecase.GrantInput{Identity: "u1", ProductKey: entity.ProductQuiz})

	require.NoError(t, err)
	assert.NotNil(t, entitlement)
}

func TestEntitlementService_Cancel_Success(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	cancelled := []*entity.Entitlement{{
		ID:              uuid.New(),
		Identity:        "u1",
		ProductKey:      entity.ProductQuiz,
		SubscriptionRef: strPtr("sub_1"),
		Status:          entity.EntitlementCancelled,
	}}

	fx.repo.EXPECT().CancelBySubscriptionRef(ctx, "sub_1").Return(cancelled, nil)
	fx.metrics.EXPECT().ObserveEntitlementChange("cancelled").Return()
	fx.publisher.EXPECT().
		PublishEntitlementEvent(ctx, mock.MatchedBy(func(event *entity.EntitlementEvent) bool {
			return event.Type == entity.EventEntitlementCancelled && event.Identity == "u1"
		})).
		Return(nil)

	require.NoError(t, fx.service.Cancel(ctx, "sub_1"))
}

func TestEntitlementService_Cancel_UnknownSubscriptionIsNoop(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()

	fx.repo.EXPECT().CancelBySubscriptionRef(ctx, "sub_unknown").Return([]*entity.Entitlement{}, nil)

	require.NoError(t, fx.service.Cancel(ctx, "sub_unknown"))
	fx.repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishEntitlementEvent", mock.Anything, mock.Anything)
}

func TestEntitlementService_Cancel_BlankRef(t *testing.T) {
	fx := createTestEntitlementService(t)

	err := fx.service.Cancel(context.Background(), " ")

	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionRefRequired)
}

func TestEntitlementService_Cancel_RepoError(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()

	fx.repo.EXPECT().CancelBySubscriptionRef(ctx, "sub_1").Return(nil, errors.New("db error"))

	err := fx.service.Cancel(ctx, "sub_1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to cancel entitlement")
}

func TestEntitlementService_CheckAccess(t *testing.T) {
	tests := []struct {
		name        string
		entitlement *entity.Entitlement
		repoErr     error
		want        bool
		wantErr     bool
	}{
		{name: "no row", repoErr: repository.ErrEntitlementNotFound, want: false},
		{name: "active lifetime", entitlement: &entity.Entitlement{Status: entity.EntitlementActive}, want: true},
		{
			name:        "active future expiry",
			entitlement: &entity.Entitlement{Status: entity.EntitlementActive, ExpiresAt: timePtr(testNow.Add(time.Hour))},
			want:        true,
		},
		{
			name:        "active but expired",
			entitlement: &entity.Entitlement{Status: entity.EntitlementActive, ExpiresAt: timePtr(testNow.Add(-time.Second))},
			want:        false,
		},
		{
			name:        "expires exactly now",
			entitlement: &entity.Entitlement{Status: entity.EntitlementActive, ExpiresAt: timePtr(testNow)},
			want:        false,
		},
		{name: "cancelled", entitlement: &entity.Entitlement{Status: entity.EntitlementCancelled}, want: false},
		{name: "store failure", repoErr: errors.New("db error"), want: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEntitlementService(t)
			ctx := context.Background()

			fx.repo.EXPECT().FindByIdentityAndProduct(ctx, "u1", entity.ProductQuiz).Return(tt.entitlement, tt.repoErr)

			got, err := fx.service.CheckAccess(ctx, "u1", entity.ProductQuiz)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntitlementService_CheckAccess_SkipsStoreForInvalidInput(t *testing.T) {
	fx := createTestEntitlementService(t)
	ctx := context.Background()

	got, err := fx.service.CheckAccess(ctx, "", entity.ProductQuiz)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = fx.service.CheckAccess(ctx, "u1", "premium")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestEntitlementService_ListActive(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	entitlements := []*entity.Entitlement{
		{Identity: "u1", ProductKey: entity.ProductOSCE, Status: entity.EntitlementActive},
		{Identity: "u1", ProductKey: entity.ProductQuiz, Status: entity.EntitlementCancelled},
		{Identity: "u1", ProductKey: entity.ProductHub, Status: entity.EntitlementActive, ExpiresAt: timePtr(testNow.Add(-time.Hour))},
	}

	fx.repo.EXPECT().FindByIdentity(ctx, "u1").Return(entitlements, nil)

	active, err := fx.service.ListActive(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, entity.ProductOSCE, active[0].ProductKey)
}

func TestEntitlementService_ListActive_RequiresIdentity(t *testing.T) {
	fx := createTestEntitlementService(t)

	_, err := fx.service.ListActive(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
}
