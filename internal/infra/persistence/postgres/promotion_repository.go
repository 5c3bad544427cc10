package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// promotionItemsSetCustomerIndex is the partial unique index on (set_id, customer_id).
const promotionItemsSetCustomerIndex = "idx_promotion_items_set_customer"

// claimItemSQL assigns the oldest available item of a set in one statement.
// SKIP LOCKED lets concurrent claimers each take a different row; the outer
// predicate re-checks availability after the lock.
const claimItemSQL = `
UPDATE promotion_items
SET customer_id = ?, claimed_at = ?
WHERE id = (
	SELECT id FROM promotion_items
	WHERE set_id = ? AND customer_id IS NULL AND used = false
	ORDER BY created_at, id
	LIMIT 1
	FOR UPDATE SKIP LOCKED
) AND customer_id IS NULL AND used = false
RETURNING *`

var promotionSetColumns = columnMap{
	repository.FieldKind:      "kind",
	repository.FieldStoreID:   "store_id",
	repository.FieldCode:      "code",
	repository.FieldPercent:   "percent",
	repository.FieldExpiredAt: "expired_at",
	repository.FieldCreatedAt: "created_at",
	repository.FieldUpdatedAt: "updated_at",
}

var promotionItemColumns = columnMap{
	repository.FieldCreatedAt: "created_at",
}

// promotionRepository implements the repository.PromotionRepository interface.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{
		db: db,
	}
}

func (repo *promotionRepository) CreateSet(ctx context.Context, set *entity.PromotionSet) error {
	setM := fromPromotionSetDomain(set)

	if err := repo.db.WithContext(ctx).Create(setM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPromotion.WrapMessage("percent must be within (0, 100]")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion set")
	}

	set.CreatedAt = setM.CreatedAt
	set.UpdatedAt = setM.UpdatedAt

	return nil
}

// FindSetByID loads a set and its item counters.
func (repo *promotionRepository) FindSetByID(ctx context.Context, id uuid.UUID) (*entity.PromotionSet, error) {
	var setM model.PromotionSetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&setM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionSetNotFound
		}

		return nil, errors.Wrap(err, "failed to find promotion set")
	}

	set := toPromotionSetDomain(&setM)
	if err := repo.fillCounts(ctx, []*entity.PromotionSet{set}); err != nil {
		return nil, err
	}

	return set, nil
}

// FindSetByIDForUpdate locks the set row on the primary. Counters are not loaded.
func (repo *promotionRepository) FindSetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PromotionSet, error) {
	var setM model.PromotionSetModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&setM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionSetNotFound
		}

		return nil, errors.Wrap(err, "failed to lock promotion set")
	}

	return toPromotionSetDomain(&setM), nil
}

func (repo *promotionRepository) UpdateSet(ctx context.Context, set *entity.PromotionSet) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PromotionSetModel{}).
		Where("id = ?", set.ID).
		Updates(map[string]any{
			"code":        set.Code,
			"description": set.Description,
			"percent":     set.Percent,
			"start_at":    set.StartAt,
			"expired_at":  set.ExpiredAt,
			"updated_at":  now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidPromotion.WrapMessage("percent must be within (0, 100]")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promotion set")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionSetNotFound
	}

	set.UpdatedAt = now

	return nil
}

// DeleteSet removes the items first, then the set. Callers run it inside a transaction.
func (repo *promotionRepository) DeleteSet(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("set_id = ?", id).
		Delete(&model.PromotionItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete promotion items")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PromotionSetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promotion set")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionSetNotFound
	}

	return nil
}

func (repo *promotionRepository) ListSets(ctx context.Context, criteria *repository.Criteria, page entity.PageRequest) ([]*entity.PromotionSet, int64, error) {
	query, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.PromotionSetModel{}), criteria, promotionSetColumns)
	if err != nil {
		return nil, 0, err
	}

	rows, total, err := findPage[model.PromotionSetModel](query, page, promotionSetColumns, repository.FieldCreatedAt)
	if err != nil {
		return nil, 0, err
	}

	sets := make([]*entity.PromotionSet, 0, len(rows))
	for _, setM := range rows {
		sets = append(sets, toPromotionSetDomain(setM))
	}
	if err := repo.fillCounts(ctx, sets); err != nil {
		return nil, 0, err
	}

	return sets, total, nil
}

// fillCounts sets QuantityAvailable (unassigned items) and QuantityTotal.
func (repo *promotionRepository) fillCounts(ctx context.Context, sets []*entity.PromotionSet) error {
	if len(sets) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(sets))
	for _, set := range sets {
		ids = append(ids, set.ID)
	}

	var rows []struct {
		SetID     uuid.UUID
		Available int64
		Total     int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.PromotionItemModel{}).
		Select("set_id, COUNT(*) FILTER (WHERE customer_id IS NULL) AS available, COUNT(*) AS total").
		Where("set_id IN ?", ids).
		Group("set_id").
		Scan(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to count promotion items")
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for i, row := range rows {
		counts[row.SetID] = i
	}
	for _, set := range sets {
		if i, ok := counts[set.ID]; ok {
			set.QuantityAvailable = rows[i].Available
			set.QuantityTotal = rows[i].Total
		}
	}

	return nil
}

func (repo *promotionRepository) AddItems(ctx context.Context, items []*entity.PromotionItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.PromotionItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, fromPromotionItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(itemModels, 500).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPromotionSetNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add promotion items")
	}

	return nil
}

// LockAvailableItems selects up to n available items, oldest first, with
// FOR UPDATE SKIP LOCKED so rows claimed concurrently are passed over.
func (repo *promotionRepository) LockAvailableItems(ctx context.Context, setID uuid.UUID, n int) ([]*entity.PromotionItem, error) {
	var itemModels []*model.PromotionItemModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("set_id = ? AND customer_id IS NULL AND used = ?", setID, false).
		Order("created_at, id").
		Limit(n).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock available items")
	}

	return toPromotionItemsDomain(itemModels), nil
}

func (repo *promotionRepository) DeleteItems(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.PromotionItemModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promotion items")
	}

	return result.RowsAffected, nil
}

// ClaimItem runs the single-statement claim. The partial unique index turns a
// second claim of the same set by one customer into ErrAlreadyClaimed.
func (repo *promotionRepository) ClaimItem(ctx context.Context, setID, customerID uuid.UUID, now time.Time) (*entity.PromotionItem, error) {
	var itemModels []*model.PromotionItemModel

	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Raw(claimItemSQL, customerID, now, setID).
		Scan(&itemModels)
	if result.Error != nil {
		if isUniqueViolationOn(result.Error, promotionItemsSetCustomerIndex) {
			return nil, repository.ErrAlreadyClaimed
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim promotion item")
	}
	if len(itemModels) == 0 {
		return nil, repository.ErrNoAvailableItem
	}

	return toPromotionItemDomain(itemModels[0]), nil
}

func (repo *promotionRepository) CountHeldBy(ctx context.Context, setID, customerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PromotionItemModel{}).
		Where("set_id = ? AND customer_id = ?", setID, customerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count held items")
	}

	return count, nil
}

// MarkItemUsed is a conditional update that must hit exactly one unused item of the customer.
func (repo *promotionRepository) MarkItemUsed(ctx context.Context, itemID, customerID uuid.UUID, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromotionItemModel{}).
		Where("id = ? AND customer_id = ? AND used = ?", itemID, customerID, false).
		Updates(map[string]any{"used": true, "used_at": now})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to redeem promotion item")
	}
	if result.RowsAffected != 1 {
		return repository.ErrItemUnavailable
	}

	return nil
}

func (repo *promotionRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.PromotionItem, error) {
	var itemM model.PromotionItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find promotion item")
	}

	return toPromotionItemDomain(&itemM), nil
}

func (repo *promotionRepository) ListItems(ctx context.Context, setID uuid.UUID, status entity.PromotionItemStatus, page entity.PageRequest) ([]*entity.PromotionItem, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PromotionItemModel{}).Where("set_id = ?", setID)

	switch status {
	case entity.PromotionItemStatusAvailable:
		query = query.Where("customer_id IS NULL AND used = ?", false)
	case entity.PromotionItemStatusClaimed:
		query = query.Where("customer_id IS NOT NULL AND used = ?", false)
	case entity.PromotionItemStatusUsed:
		query = query.Where("used = ?", true)
	}

	rows, total, err := findPage[model.PromotionItemModel](query, page, promotionItemColumns, repository.FieldCreatedAt)
	if err != nil {
		return nil, 0, err
	}

	return toPromotionItemsDomain(rows), total, nil
}

func (repo *promotionRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PromotionItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promotion item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionItemNotFound
	}

	return nil
}

// ListHeldByCustomer joins the unused items of a customer with their sets, newest claim first.
func (repo *promotionRepository) ListHeldByCustomer(ctx context.Context, customerID uuid.UUID, kind *entity.PromotionKind) ([]*entity.ClaimedPromotion, error) {
	var itemModels []*model.PromotionItemModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND used = ?", customerID, false).
		Order("claimed_at DESC, id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list held promotion items")
	}
	if len(itemModels) == 0 {
		return []*entity.ClaimedPromotion{}, nil
	}

	setIDs := make([]uuid.UUID, 0, len(itemModels))
	for _, itemM := range itemModels {
		setIDs = append(setIDs, itemM.SetID)
	}

	setQuery := repo.db.WithContext(ctx).Where("id IN ?", setIDs)
	if kind != nil {
		setQuery = setQuery.Where("kind = ?", string(*kind))
	}

	var setModels []*model.PromotionSetModel
	if err := setQuery.Find(&setModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load promotion sets")
	}

	sets := make(map[uuid.UUID]*entity.PromotionSet, len(setModels))
	for _, setM := range setModels {
		sets[setM.ID] = toPromotionSetDomain(setM)
	}

	claimed := make([]*entity.ClaimedPromotion, 0, len(itemModels))
	for _, itemM := range itemModels {
		set, ok := sets[itemM.SetID]
		if !ok {
			continue
		}
		claimed = append(claimed, &entity.ClaimedPromotion{Item: toPromotionItemDomain(itemM), Set: set})
	}

	return claimed, nil
}

// DeleteAvailableItemsOfExpiredSets retires the unassigned stock of expired sets.
// Claimed items stay so customers keep their history.
func (repo *promotionRepository) DeleteAvailableItemsOfExpiredSets(ctx context.Context, now time.Time) (int64, error) {
	expired := repo.db.WithContext(ctx).
		Model(&model.PromotionSetModel{}).
		Select("id").
		Where("expired_at <= ?", now)

	result := repo.db.WithContext(ctx).
		Where("customer_id IS NULL AND used = ?", false).
		Where("set_id IN (?)", expired).
		Delete(&model.PromotionItemModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to retire expired promotion items")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toPromotionSetDomain(data *model.PromotionSetModel) *entity.PromotionSet {
	if data == nil {
		return nil
	}

	return &entity.PromotionSet{
		ID:          data.ID,
		Kind:        entity.PromotionKind(data.Kind),
		Code:        data.Code,
		Description: data.Description,
		Percent:     data.Percent,
		StoreID:     data.StoreID,
		StartAt:     data.StartAt,
		ExpiredAt:   data.ExpiredAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPromotionSetDomain(data *entity.PromotionSet) *model.PromotionSetModel {
	if data == nil {
		return nil
	}

	return &model.PromotionSetModel{
		ID:          data.ID,
		Kind:        string(data.Kind),
		Code:        data.Code,
		Description: data.Description,
		Percent:     data.Percent,
		StoreID:     data.StoreID,
		StartAt:     data.StartAt,
		ExpiredAt:   data.ExpiredAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toPromotionItemDomain(data *model.PromotionItemModel) *entity.PromotionItem {
	if data == nil {
		return nil
	}

	return &entity.PromotionItem{
		ID:         data.ID,
		SetID:      data.SetID,
		CustomerID: data.CustomerID,
		Used:       data.Used,
		ClaimedAt:  data.ClaimedAt,
		UsedAt:     data.UsedAt,
		CreatedAt:  data.CreatedAt,
	}
}

func toPromotionItemsDomain(rows []*model.PromotionItemModel) []*entity.PromotionItem {
	items := make([]*entity.PromotionItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toPromotionItemDomain(row))
	}

	return items
}

func fromPromotionItemDomain(data *entity.PromotionItem) *model.PromotionItemModel {
	if data == nil {
		return nil
	}

	return &model.PromotionItemModel{
		ID:         data.ID,
		SetID:      data.SetID,
		CustomerID: data.CustomerID,
		Used:       data.Used,
		ClaimedAt:  data.ClaimedAt,
		UsedAt:     data.UsedAt,
		CreatedAt:  data.CreatedAt,
	}
}
