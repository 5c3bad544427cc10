package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	pager     pager
	logger    *slog.Logger
	now       func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		pager:     newPager(params.Config),
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// createAccount persists a new account unless its email is taken. The
// pre-check gives the common case a clean error and the unique index settles
// concurrent sign-ups.
func createAccount(ctx context.Context, txManager repository.TransactionManager, user *entity.User) error {
	return txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
}

func (srv *accountService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "find user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *accountService) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.findUser(ctx, userID)
}

// UpdateAccount applies the non-nil fields that fit the account's role.
func (srv *accountService) UpdateAccount(ctx context.Context, userID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	applyAccountUpdate(user, input, now)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "update account")
		}

		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.log(ctx).Debug("Account updated", slog.Any("userID", userID), slog.Any("role", user.Role))

	return user, nil
}

func applyAccountUpdate(user *entity.User, input *usecase.UpdateAccountInput, now time.Time) {
	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	user.UpdatedAt = now

	switch {
	case user.Customer != nil:
		if input.PhoneNumber != nil {
			user.Customer.PhoneNumber = *input.PhoneNumber
		}
		if input.Addresses != nil {
			user.Customer.Addresses = input.Addresses
		}
		user.Customer.UpdatedAt = now
	case user.Store != nil:
		if input.Description != nil {
			user.Store.Description = *input.Description
		}
		if input.Address != nil {
			user.Store.Address = *input.Address
		}
		if input.City != nil {
			user.Store.City = *input.City
		}
		user.Store.UpdatedAt = now
	case user.DeliveryPartner != nil:
		if input.PhoneNumber != nil {
			user.DeliveryPartner.PhoneNumber = *input.PhoneNumber
		}
		if input.VehiclePlate != nil {
			user.DeliveryPartner.VehiclePlate = *input.VehiclePlate
		}
		user.DeliveryPartner.UpdatedAt = now
	}
}

// ListUsers pages accounts for the admin console.
func (srv *accountService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*entity.Page[*entity.User], error) {
	page, err := srv.pager.request(input.PageInput)
	if err != nil {
		return nil, err
	}

	criteria := repository.NewCriteria().
		Contains(repository.FieldName, input.Name).
		Contains(repository.FieldEmail, strings.ToLower(input.Email))

	if isFilterSet(input.Status) {
		status := entity.UserStatusFilter(strings.ToLower(strings.TrimSpace(input.Status)))
		switch status {
		case entity.UserStatusLocked:
			criteria.Equal(repository.FieldLocked, true)
		case entity.UserStatusActive:
			criteria.Equal(repository.FieldLocked, false)
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails("status must be all, locked or active")
		}
	}

	if isFilterSet(input.Role) {
		role := entity.Role(strings.ToUpper(strings.TrimSpace(input.Role)))
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetailsf("unknown role %q", input.Role)
		}
		criteria.Equal(repository.FieldRole, string(role))
	}

	users, total, err := srv.userRepo.List(ctx, criteria, page)
	if err != nil {
		return nil, translateListError(err, "failed to list users")
	}

	return entity.NewPage(users, page, total), nil
}

func (srv *accountService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.findUser(ctx, userID)
}

// ChangeAccess locks or unlocks an account. Locking revokes its sessions;
// access tokens already issued stay valid until they expire.
func (srv *accountService) ChangeAccess(ctx context.Context, adminID uuid.UUID, input *usecase.ChangeAccessInput) (*entity.User, error) {
	if adminID == input.UserID {
		return nil, errors.Wrap(domainerrors.ErrCannotChangeOwnAccess, "change access")
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "change access")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := userRepo.SetLocked(ctx, input.UserID, input.Locked); err != nil {
			return errors.Wrap(err, "failed to change access")
		}
		user.Locked = input.Locked

		if input.Locked {
			if _, err := repoFactory.RefreshTokenRepo().RevokeUser(ctx, input.UserID); err != nil {
				return errors.Wrap(err, "failed to revoke sessions")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute change access transaction")
	}

	srv.log(ctx).Info("Account access changed",
		slog.Any("adminID", adminID),
		slog.Any("userID", input.UserID),
		slog.Bool("locked", input.Locked),
	)

	return user, nil
}

// CreateDeliveryPartner provisions a delivery partner account.
func (srv *accountService) CreateDeliveryPartner(ctx context.Context, input *usecase.CreateDeliveryPartnerInput) (*entity.User, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	partner := entity.NewDeliveryPartner(
		strings.TrimSpace(input.Name),
		util.NormalizeEmail(input.Email),
		hashedPassword,
		entity.DeliveryPartnerProfile{PhoneNumber: input.PhoneNumber, VehiclePlate: input.VehiclePlate},
		srv.now(),
	)

	if err := createAccount(ctx, srv.txManager, partner); err != nil {
		return nil, errors.Wrap(err, "failed to create delivery partner")
	}

	srv.log(ctx).Info("Delivery partner created", slog.Any("userID", partner.ID))

	return partner, nil
}

// GetStore returns an unlocked store account.
func (srv *accountService) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "get store")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}
	if user.Role != entity.RoleStore || user.Locked {
		return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "get store")
	}

	return user, nil
}

// SearchStores pages unlocked stores whose name contains name.
func (srv *accountService) SearchStores(ctx context.Context, name string, pageInput usecase.PageInput) (*entity.Page[*entity.User], error) {
	page, err := srv.pager.request(pageInput)
	if err != nil {
		return nil, err
	}

	criteria := repository.NewCriteria().
		Equal(repository.FieldRole, string(entity.RoleStore)).
		Equal(repository.FieldLocked, false).
		Contains(repository.FieldName, name)

	stores, total, err := srv.userRepo.List(ctx, criteria, page)
	if err != nil {
		return nil, translateListError(err, "failed to search stores")
	}

	return entity.NewPage(stores, page, total), nil
}
