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
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const fallbackMaxItemsPerRequest = 10000

// promotionService implements the PromotionUsecase interface.
type promotionService struct {
	txManager     repository.TransactionManager
	promotionRepo repository.PromotionRepository
	pager         pager
	maxItems      int
	logger        *slog.Logger
	now           func() time.Time
}

// PromotionServiceParams holds dependencies for PromotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PromotionRepo repository.PromotionRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPromotionService is the constructor for promotionService.
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	maxItems := fallbackMaxItemsPerRequest
	if params.Config != nil && params.Config.Promotion != nil && params.Config.Promotion.MaxItemsPerRequest > 0 {
		maxItems = params.Config.Promotion.MaxItemsPerRequest
	}

	return &promotionService{
		txManager:     params.TxManager,
		promotionRepo: params.PromotionRepo,
		pager:         newPager(params.Config),
		maxItems:      maxItems,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *promotionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func wrapSetNotFound(err error, msg string) error {
	if errors.Is(err, repository.ErrPromotionSetNotFound) {
		return errors.Wrap(domainerrors.ErrPromotionSetNotFound, msg)
	}

	return errors.Wrap(err, "failed to "+msg)
}

func validateSet(set *entity.PromotionSet) error {
	switch {
	case !set.HasValidScope():
		return domainerrors.ErrInvalidPromotion.WithDetails("store reference does not match the set kind")
	case strings.TrimSpace(set.Code) == "":
		return domainerrors.ErrValidationFailed.WithDetails("code is required")
	case !set.HasValidPercent():
		return domainerrors.ErrInvalidPromotion.WithDetails("percent must be within (0, 100]")
	case !set.HasValidWindow():
		return domainerrors.ErrInvalidPromotion.WithDetails("expiredAt must be after startAt")
	}

	return nil
}

// validateCount bounds how many items one request may create or remove.
func (srv *promotionService) validateCount(n int) error {
	if n < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}
	if n > srv.maxItems {
		return domainerrors.ErrValidationFailed.WithDetailsf("quantity must be at most %d", srv.maxItems)
	}

	return nil
}

// CreateSet inserts the set and its initial items together.
func (srv *promotionService) CreateSet(ctx context.Context, scope entity.PromotionScope, input *usecase.PromotionSetInput) (*entity.PromotionSet, error) {
	now := srv.now()
	set := &entity.PromotionSet{
		ID:          uuid.New(),
		Kind:        scope.Kind,
		Code:        strings.TrimSpace(input.Code),
		Description: input.Description,
		Percent:     input.Percent,
		StoreID:     scope.StoreID,
		StartAt:     input.StartAt,
		ExpiredAt:   input.ExpiredAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if set.StartAt.IsZero() {
		set.StartAt = now
	}
	if err := validateSet(set); err != nil {
		return nil, err
	}
	if err := srv.validateCount(input.Quantity); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		promotionRepo := repoFactory.PromotionRepo()

		if err := promotionRepo.CreateSet(ctx, set); err != nil {
			return errors.Wrap(err, "failed to create promotion set")
		}

		if err := promotionRepo.AddItems(ctx, entity.NewPromotionItems(set.ID, input.Quantity, now)); err != nil {
			return errors.Wrap(err, "failed to create promotion items")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create promotion set transaction")
	}

	set.QuantityAvailable = int64(input.Quantity)
	set.QuantityTotal = int64(input.Quantity)

	srv.log(ctx).Info("Promotion set created",
		slog.Any("setID", set.ID),
		slog.String("kind", string(set.Kind)),
		slog.Int("quantity", input.Quantity))

	return set, nil
}

// lockScopedSet locks the set and hides sets outside the scope behind not found.
func lockScopedSet(ctx context.Context, promotionRepo repository.PromotionRepository, scope entity.PromotionScope, setID uuid.UUID) (*entity.PromotionSet, error) {
	set, err := promotionRepo.FindSetByIDForUpdate(ctx, setID)
	if err != nil {
		return nil, wrapSetNotFound(err, "lock promotion set")
	}
	if !scope.Covers(set) {
		return nil, errors.Wrap(domainerrors.ErrPromotionSetNotFound, "promotion set outside scope")
	}

	return set, nil
}

// UpdateSet replaces the settings of a set. Items are managed separately.
func (srv *promotionService) UpdateSet(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID, input *usecase.PromotionSetInput) (*entity.PromotionSet, error) {
	var updated *entity.PromotionSet

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		promotionRepo := repoFactory.PromotionRepo()

		set, err := lockScopedSet(ctx, promotionRepo, scope, setID)
		if err != nil {
			return err
		}

		set.Code = strings.TrimSpace(input.Code)
		set.Description = input.Description
		set.Percent = input.Percent
		if !input.StartAt.IsZero() {
			set.StartAt = input.StartAt
		}
		set.ExpiredAt = input.ExpiredAt
		if err := validateSet(set); err != nil {
			return err
		}

		if err := promotionRepo.UpdateSet(ctx, set); err != nil {
			return wrapSetNotFound(err, "update promotion set")
		}

		if updated, err = promotionRepo.FindSetByID(ctx, setID); err != nil {
			return wrapSetNotFound(err, "reload promotion set")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update promotion set transaction")
	}

	return updated, nil
}

func (srv *promotionService) GetSet(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID) (*entity.PromotionSet, error) {
	set, err := srv.promotionRepo.FindSetByID(ctx, setID)
	if err != nil {
		return nil, wrapSetNotFound(err, "find promotion set")
	}
	if !scope.Covers(set) {
		return nil, errors.Wrap(domainerrors.ErrPromotionSetNotFound, "promotion set outside scope")
	}

	return set, nil
}

func (srv *promotionService) ListSets(ctx context.Context, scope entity.PromotionScope, in usecase.PageInput) (*entity.Page[*entity.PromotionSet], error) {
	page, err := srv.pager.request(in)
	if err != nil {
		return nil, err
	}

	criteria := repository.NewCriteria().Equal(repository.FieldKind, string(scope.Kind))
	if scope.StoreID != nil {
		criteria.Equal(repository.FieldStoreID, *scope.StoreID)
	}

	sets, total, err := srv.promotionRepo.ListSets(ctx, criteria, page)
	if err != nil {
		return nil, translateListError(err, "failed to list promotion sets")
	}

	return entity.NewPage(sets, page, total), nil
}

// DeleteSet removes the set with every item, claimed or not.
func (srv *promotionService) DeleteSet(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		promotionRepo := repoFactory.PromotionRepo()

		if _, err := lockScopedSet(ctx, promotionRepo, scope, setID); err != nil {
			return err
		}

		if err := promotionRepo.DeleteSet(ctx, setID); err != nil {
			return wrapSetNotFound(err, "delete promotion set")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete promotion set transaction")
	}

	srv.log(ctx).Info("Promotion set deleted", slog.Any("setID", setID))

	return nil
}

func (srv *promotionService) AddItems(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID, n int) (*entity.PromotionSet, error) {
	if err := srv.validateCount(n); err != nil {
		return nil, err
	}

	var updated *entity.PromotionSet

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		promotionRepo := repoFactory.PromotionRepo()

		if _, err := lockScopedSet(ctx, promotionRepo, scope, setID); err != nil {
			return err
		}

		if err := promotionRepo.AddItems(ctx, entity.NewPromotionItems(setID, n, srv.now())); err != nil {
			return wrapSetNotFound(err, "add promotion items")
		}

		var err error
		if updated, err = promotionRepo.FindSetByID(ctx, setID); err != nil {
			return wrapSetNotFound(err, "reload promotion set")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add promotion items transaction")
	}

	return updated, nil
}

// SubtractItems deletes exactly n available items or fails without deleting any.
func (srv *promotionService) SubtractItems(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID, n int) ([]*entity.PromotionItem, error) {
	if err := srv.validateCount(n); err != nil {
		return nil, err
	}

	var removed []*entity.PromotionItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		promotionRepo := repoFactory.PromotionRepo()

		if _, err := lockScopedSet(ctx, promotionRepo, scope, setID); err != nil {
			return err
		}

		items, err := promotionRepo.LockAvailableItems(ctx, setID, n)
		if err != nil {
			return errors.Wrap(err, "failed to lock available items")
		}
		if len(items) < n {
			return domainerrors.ErrInsufficientInventory.WithDetailsf("requested %d, available %d", n, len(items))
		}

		ids := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}

		deleted, err := promotionRepo.DeleteItems(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to delete promotion items")
		}
		if deleted != int64(n) {
			return domainerrors.ErrInsufficientInventory.WithDetailsf("requested %d, deleted %d", n, deleted)
		}

		removed = items

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute subtract promotion items transaction")
	}

	return removed, nil
}

func (srv *promotionService) ListItems(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID, status entity.PromotionItemStatus, in usecase.PageInput) (*entity.Page[*entity.PromotionItem], error) {
	if status == "" {
		status = entity.PromotionItemStatusAll
	}
	status = entity.PromotionItemStatus(strings.ToLower(string(status)))
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("unknown item status %q", status)
	}

	page, err := srv.pager.request(in)
	if err != nil {
		return nil, err
	}

	if _, err := srv.GetSet(ctx, scope, setID); err != nil {
		return nil, err
	}

	items, total, err := srv.promotionRepo.ListItems(ctx, setID, status, page)
	if err != nil {
		return nil, translateListError(err, "failed to list promotion items")
	}

	return entity.NewPage(items, page, total), nil
}

func (srv *promotionService) DeleteItem(ctx context.Context, scope entity.PromotionScope, itemID uuid.UUID) error {
	item, err := srv.promotionRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrPromotionItemNotFound) {
			return errors.Wrap(domainerrors.ErrPromotionItemNotFound, "find promotion item")
		}

		return errors.Wrap(err, "failed to find promotion item")
	}

	set, err := srv.promotionRepo.FindSetByID(ctx, item.SetID)
	if err != nil {
		return wrapSetNotFound(err, "find promotion set")
	}
	if !scope.Covers(set) {
		return errors.Wrap(domainerrors.ErrPromotionItemNotFound, "promotion item outside scope")
	}

	if err := srv.promotionRepo.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrPromotionItemNotFound) {
			return errors.Wrap(domainerrors.ErrPromotionItemNotFound, "delete promotion item")
		}

		return errors.Wrap(err, "failed to delete promotion item")
	}

	return nil
}

// ListClaimableSets lists sets of the kind that have not expired yet.
func (srv *promotionService) ListClaimableSets(ctx context.Context, kind entity.PromotionKind, in usecase.PageInput) (*entity.Page[*entity.PromotionSet], error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("unknown promotion kind %q", kind)
	}

	page, err := srv.pager.request(in)
	if err != nil {
		return nil, err
	}

	criteria := repository.NewCriteria().
		Equal(repository.FieldKind, string(kind)).
		Between(repository.FieldExpiredAt, srv.now(), time.Time{})

	sets, total, err := srv.promotionRepo.ListSets(ctx, criteria, page)
	if err != nil {
		return nil, translateListError(err, "failed to list claimable sets")
	}

	return entity.NewPage(sets, page, total), nil
}

// Claim hands one available item of an active set to the customer. The
// repository statement guarantees concurrent claimants get distinct items.
func (srv *promotionService) Claim(ctx context.Context, customerID, setID uuid.UUID) (*entity.ClaimedPromotion, error) {
	now := srv.now()

	set, err := srv.promotionRepo.FindSetByID(ctx, setID)
	if err != nil {
		return nil, wrapSetNotFound(err, "find promotion set")
	}
	if !set.IsActive(now) {
		return nil, domainerrors.ErrPromotionNotActive.WithDetailsf("active from %s until %s",
			set.StartAt.Format(time.RFC3339), set.ExpiredAt.Format(time.RFC3339))
	}

	item, err := srv.promotionRepo.ClaimItem(ctx, setID, customerID, now)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoAvailableItem):
			return nil, errors.Wrap(domainerrors.ErrNoAvailableItem, "claim promotion item")
		case errors.Is(err, repository.ErrAlreadyClaimed):
			return nil, errors.Wrap(domainerrors.ErrPromotionAlreadyClaimed, "claim promotion item")
		default:
			return nil, errors.Wrap(err, "failed to claim promotion item")
		}
	}

	if set.QuantityAvailable > 0 {
		set.QuantityAvailable--
	}

	srv.log(ctx).Info("Promotion item claimed",
		slog.Any("setID", setID),
		slog.Any("itemID", item.ID),
		slog.Any("customerID", customerID))

	return &entity.ClaimedPromotion{Item: item, Set: set}, nil
}

func (srv *promotionService) ListCustomerPromotions(ctx context.Context, customerID uuid.UUID, kind *entity.PromotionKind) ([]*entity.ClaimedPromotion, error) {
	if kind != nil && !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("unknown promotion kind %q", *kind)
	}

	claimed, err := srv.promotionRepo.ListHeldByCustomer(ctx, customerID, kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer promotions")
	}

	return claimed, nil
}

func (srv *promotionService) RetireExpired(ctx context.Context) (int64, error) {
	removed, err := srv.promotionRepo.DeleteAvailableItemsOfExpiredSets(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to retire expired promotion items")
	}

	if removed > 0 {
		srv.log(ctx).Info("Retired expired promotion items", slog.Int64("count", removed))
	}

	return removed, nil
}
