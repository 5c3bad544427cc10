package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})
	svc.(*authService).now = func() time.Time { return testNow }
	fx.service = svc

	return fx
}

func TestAuthService_Register_Customer(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:        " Jane ",
		Email:       "Jane@Example.com",
		Password:    "Password123!",
		Role:        entity.RoleCustomer,
		PhoneNumber: "0912345678",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "jane@example.com").Return(false, nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Equal(t, "hashed", user.PasswordHash)
	require.NotNil(t, user.Customer)
	assert.Equal(t, "0912345678", user.Customer.PhoneNumber)
	assert.NotNil(t, user.Customer.Cart)
	assert.Nil(t, user.Store)
}

func TestAuthService_Register_Store(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:        "Corner Shop",
		Email:       "shop@example.com",
		Password:    "Password123!",
		Role:        entity.RoleStore,
		Description: "groceries",
		City:        "Taipei",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user.Store)
	assert.Equal(t, "Taipei", user.Store.City)
	assert.Nil(t, user.Customer)
}

func TestAuthService_Register_RejectsOtherRoles(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleDeliveryPartner, "PIRATE"} {
		t.Run(string(role), func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
				Email:    "x@example.com",
				Password: "Password123!",
				Role:     role,
			})

			assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "taken@example.com").Return(true, nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "TAKEN@example.com",
		Password: "Password123!",
		Role:     entity.RoleCustomer,
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_ConcurrentSignUpLosesOnUniqueIndex(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "race@example.com").Return(false, nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrEmailTaken)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "race@example.com",
		Password: "Password123!",
		Role:     entity.RoleCustomer,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "a@example.com",
		Password: "weak",
		Role:     entity.RoleCustomer,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_Login(t *testing.T) {
	user := entity.NewCustomer("Jane", "jane@example.com", "hashed", testNow)

	t.Run("success persists the refresh token hash", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, "CUSTOMER").Return("access", "refresh", nil)
		fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
		fx.refreshTokenRepo.EXPECT().
			Save(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
				return token.UserID == user.ID &&
					token.TokenHash == util.HashToken("refresh") &&
					token.ExpiresAt.Equal(testNow.Add(time.Hour))
			})).
			Return(nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " JANE@example.com", Password: "Password123!"})

		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.Equal(t, user, out.User)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("locked account with correct password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		locked := *user
		locked.Locked = true
		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(&locked, nil)
		fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "Password123!"})

		assert.True(t, errors.Is(err, domainerrors.ErrAccountLocked))
		assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	user := entity.NewStore("Shop", "shop@example.com", "hashed", entity.StoreProfile{}, testNow)
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: util.HashToken("refresh"),
		ExpiresAt: testNow.Add(time.Hour),
	}

	t.Run("issues a new access token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: user.ID}, nil)
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)
		fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
		fx.refreshTokenRepo.EXPECT().FindLive(ctx, stored.TokenHash, testNow).Return(stored, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, "STORE").Return("new-access", "unused", nil)

		out, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", out.AccessToken)
	})

	t.Run("revoked token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: user.ID}, nil)
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)
		fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
		fx.refreshTokenRepo.EXPECT().FindLive(ctx, stored.TokenHash, testNow).Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("locked owner", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		locked := *user
		locked.Locked = true
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: user.ID}, nil)
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)
		fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
		fx.refreshTokenRepo.EXPECT().FindLive(ctx, stored.TokenHash, testNow).Return(stored, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(&locked, nil)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrAccountLocked))
	})

	t.Run("bad signature", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

		_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestAuthService_Logout_IsIdempotent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{}, nil)
	fx.refreshTokenRepo.EXPECT().
		Revoke(ctx, util.HashToken("refresh")).
		Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"}))
}

func TestAuthService_ChangePassword(t *testing.T) {
	user := entity.NewCustomer("Jane", "jane@example.com", "old-hash", testNow)

	t.Run("wrong old password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "old-hash").Return(false)

		err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{OldPassword: "nope", NewPassword: "Password456!"})

		assert.True(t, errors.Is(err, domainerrors.ErrWrongOldPassword))
	})

	t.Run("updates the hash and revokes sessions", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("Password123!", "old-hash").Return(true)
		fx.hasher.EXPECT().ValidatePasswordStrength("Password456!").Return(nil)
		fx.hasher.EXPECT().Hash("Password456!").Return("new-hash", nil)
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
		fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo)
		fx.userRepo.EXPECT().UpdatePassword(ctx, user.ID, "new-hash").Return(nil)
		fx.refreshTokenRepo.EXPECT().RevokeUser(ctx, user.ID).Return(int64(1), nil)

		err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{OldPassword: "Password123!", NewPassword: "Password456!"})

		assert.NoError(t, err)
	})
}

func TestAuthService_CleanupExpiredSessions(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().PurgeExpired(ctx, testNow).Return(int64(7), nil)

	deleted, err := fx.service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}
