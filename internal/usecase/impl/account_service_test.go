package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
	}

	svc := NewAccountService(AccountServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		Hasher:    fx.hasher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	svc.(*accountService).now = func() time.Time { return testNow }
	fx.service = svc

	return fx
}

func TestAccountService_UpdateAccount_AppliesProfileFields(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	store := entity.NewStore("Shop", "shop@example.com", "hash", entity.StoreProfile{City: "Taipei"}, testNow.Add(-time.Hour))
	name, city, plate := "Better Shop", "Tainan", "ABC-123"

	fx.userRepo.EXPECT().FindByID(ctx, store.ID).Return(store, nil)
	fx.userRepo.EXPECT().Update(ctx, store).Return(nil)

	updated, err := fx.service.UpdateAccount(ctx, store.ID, &usecase.UpdateAccountInput{
		Name:         &name,
		City:         &city,
		VehiclePlate: &plate,
	})

	require.NoError(t, err)
	assert.Equal(t, "Better Shop", updated.Name)
	assert.Equal(t, "Tainan", updated.Store.City)
	assert.Nil(t, updated.DeliveryPartner)
	assert.Equal(t, testNow, updated.UpdatedAt)
}

func TestAccountService_ListUsers_BuildsCriteria(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(c *repository.Criteria) bool {
			return c.Has(repository.FieldLocked) &&
				c.Has(repository.FieldRole) &&
				c.Has(repository.FieldEmail) &&
				!c.Has(repository.FieldName)
		}), entity.PageRequest{Page: 1, Size: 50, Direction: entity.SortDesc}).
		Return([]*entity.User{}, int64(0), nil)

	page, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{
		PageInput: usecase.PageInput{Page: 1, ElementsPerPage: 500},
		Status:    "locked",
		Role:      "store",
		Email:     "Example",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, int64(0), page.TotalElements)
}

func TestAccountService_ListUsers_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.ListUsersInput
		want  error
	}{
		{"bad status", &usecase.ListUsersInput{Status: "sleeping"}, domainerrors.ErrValidationFailed},
		{"bad role", &usecase.ListUsersInput{Role: "pirate"}, domainerrors.ErrValidationFailed},
		{"bad direction", &usecase.ListUsersInput{PageInput: usecase.PageInput{SortBy: "sideways"}}, domainerrors.ErrValidationFailed},
		{"negative page", &usecase.ListUsersInput{PageInput: usecase.PageInput{Page: -1}}, domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)

			_, err := fx.service.ListUsers(context.Background(), tt.input)

			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestAccountService_ListUsers_UnknownSortField(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		List(ctx, mock.Anything, mock.Anything).
		Return(nil, int64(0), errors.Wrap(repository.ErrUnsupportedField, "password"))

	_, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{PageInput: usecase.PageInput{Filter: "password"}})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSortField))
}

func TestAccountService_ChangeAccess(t *testing.T) {
	adminID := uuid.New()
	customer := entity.NewCustomer("Jane", "jane@example.com", "hash", testNow)

	t.Run("admin cannot lock themselves", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.ChangeAccess(context.Background(), adminID, &usecase.ChangeAccessInput{UserID: adminID, Locked: true})

		assert.True(t, errors.Is(err, domainerrors.ErrCannotChangeOwnAccess))
	})

	t.Run("locking revokes sessions", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
		fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)
		fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		fx.userRepo.EXPECT().SetLocked(ctx, customer.ID, true).Return(nil)
		fx.refreshTokenRepo.EXPECT().RevokeUser(ctx, customer.ID).Return(int64(1), nil)

		user, err := fx.service.ChangeAccess(ctx, adminID, &usecase.ChangeAccessInput{UserID: customer.ID, Locked: true})

		require.NoError(t, err)
		assert.True(t, user.Locked)
	})

	t.Run("unlocking keeps sessions", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		fx.userRepo.EXPECT().SetLocked(ctx, customer.ID, false).Return(nil)

		user, err := fx.service.ChangeAccess(ctx, adminID, &usecase.ChangeAccessInput{UserID: customer.ID, Locked: false})

		require.NoError(t, err)
		assert.False(t, user.Locked)
	})
}

func TestAccountService_CreateDeliveryPartner(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Password123!").Return(nil)
	fx.hasher.EXPECT().Hash("Password123!").Return("hash", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "rider@example.com").Return(false, nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	partner, err := fx.service.CreateDeliveryPartner(ctx, &usecase.CreateDeliveryPartnerInput{
		Name:         "Rider",
		Email:        "Rider@example.com",
		Password:     "Password123!",
		VehiclePlate: "XYZ-9",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleDeliveryPartner, partner.Role)
	assert.Equal(t, "XYZ-9", partner.DeliveryPartner.VehiclePlate)
}

func TestAccountService_GetStore_HidesNonStores(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	customer := entity.NewCustomer("Jane", "jane@example.com", "hash", testNow)
	fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	_, err := fx.service.GetStore(ctx, customer.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}
