package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrPromotionSetNotFound is returned when a promotion set is not found.
	ErrPromotionSetNotFound = errors.New("promotion set not found")
	// ErrPromotionItemNotFound is returned when a promotion item is not found.
	ErrPromotionItemNotFound = errors.New("promotion item not found")
	// ErrNoAvailableItem is returned when a claim finds no unassigned, unused item.
	ErrNoAvailableItem = errors.New("no available promotion item")
	// ErrAlreadyClaimed is returned when the customer already holds an item of the set.
	ErrAlreadyClaimed = errors.New("promotion already claimed by customer")
	// ErrItemUnavailable is returned when an item is not held unused by the customer.
	ErrItemUnavailable = errors.New("promotion item unavailable")
)

// PromotionRepository persists voucher sets, coupon sets and their items.
type PromotionRepository interface {
	CreateSet(ctx context.Context, set *entity.PromotionSet) error

	// FindSetByID loads a set with its available and total item counts.
	FindSetByID(ctx context.Context, id uuid.UUID) (*entity.PromotionSet, error)

	// FindSetByIDForUpdate loads a set and locks its row until the transaction ends.
	FindSetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PromotionSet, error)

	UpdateSet(ctx context.Context, set *entity.PromotionSet) error

	// DeleteSet removes the set and all of its items.
	DeleteSet(ctx context.Context, id uuid.UUID) error

	// ListSets returns one page of sets with counts. Supported fields: kind,
	// storeId, code, percent, expiredAt, createdAt.
	ListSets(ctx context.Context, criteria *Criteria, page entity.PageRequest) ([]*entity.PromotionSet, int64, error)

	// AddItems inserts new items.
	AddItems(ctx context.Context, items []*entity.PromotionItem) error

	// LockAvailableItems locks up to n available items of the set, oldest first,
	// skipping rows other transactions hold.
	LockAvailableItems(ctx context.Context, setID uuid.UUID, n int) ([]*entity.PromotionItem, error)

	// DeleteItems removes items by id and reports how many rows went away.
	DeleteItems(ctx context.Context, ids []uuid.UUID) (int64, error)

	// ClaimItem atomically assigns one available item of the set to the customer.
	ClaimItem(ctx context.Context, setID, customerID uuid.UUID, now time.Time) (*entity.PromotionItem, error)

	// CountHeldBy counts the items of the set assigned to the customer.
	CountHeldBy(ctx context.Context, setID, customerID uuid.UUID) (int64, error)

	// MarkItemUsed redeems an item the customer holds unused.
	MarkItemUsed(ctx context.Context, itemID, customerID uuid.UUID, now time.Time) error

	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.PromotionItem, error)

	// ListItems pages the items of a set filtered by status.
	ListItems(ctx context.Context, setID uuid.UUID, status entity.PromotionItemStatus, page entity.PageRequest) ([]*entity.PromotionItem, int64, error)

	DeleteItem(ctx context.Context, id uuid.UUID) error

	// ListHeldByCustomer returns the unused items a customer holds, optionally of one kind.
	ListHeldByCustomer(ctx context.Context, customerID uuid.UUID, kind *entity.PromotionKind) ([]*entity.ClaimedPromotion, error)

	// DeleteAvailableItemsOfExpiredSets removes unassigned items of sets expired at now.
	DeleteAvailableItemsOfExpiredSets(ctx context.Context, now time.Time) (int64, error)
}
