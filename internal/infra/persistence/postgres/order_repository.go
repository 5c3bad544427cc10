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

var orderColumns = columnMap{
	repository.FieldStoreID:      "store_id",
	repository.FieldCustomerID:   "customer_id",
	repository.FieldCustomerName: "customer_name",
	repository.FieldStatus:       "status",
	repository.FieldCode:         "order_code",
	repository.FieldTotal:        "total",
	repository.FieldCreatedAt:    "created_at",
	repository.FieldUpdatedAt:    "updated_at",
}

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// TryCreate inserts the order with ON CONFLICT (order_code) DO NOTHING. No
// inserted row means the code is taken; the items are written only once the
// order row exists.
func (repo *orderRepository) TryCreate(ctx context.Context, order *entity.Order) (bool, error) {
	orderM := fromOrderDomain(order)
	items := orderM.Items
	orderM.Items = nil

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_code"}},
			DoNothing: true,
		}).
		Create(orderM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrValidationFailed.WrapMessage("invalid order reference")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create order")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if len(items) > 0 {
		if err := repo.db.WithContext(ctx).Create(&items).Error; err != nil {
			return false, domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
		}
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return true, nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Preload("Items").Where("id = ?", id))
}

// FindByIDForUpdate locks the order row on the primary. Items are loaded by a
// second query so the lock clause stays on the orders table.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("order_id = ?", id).
		Find(&orderM.Items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindByCode(ctx context.Context, code string) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Preload("Items").Where("order_code = ?", code))
}

func (repo *orderRepository) findOne(query *gorm.DB) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := query.First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, deliveryPartnerID *uuid.UUID, now time.Time) error {
	columns := map[string]any{
		"status":     string(status),
		"updated_at": now,
	}
	if deliveryPartnerID != nil {
		columns["delivery_partner_id"] = *deliveryPartnerID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) List(ctx context.Context, criteria *repository.Criteria, page entity.PageRequest) ([]*entity.Order, int64, error) {
	query, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.OrderModel{}), criteria, orderColumns)
	if err != nil {
		return nil, 0, err
	}

	rows, total, err := findPage[model.OrderModel](query, page, orderColumns, repository.FieldCreatedAt, "Items")
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*entity.Order, 0, len(rows))
	for _, orderM := range rows {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

func (repo *orderRepository) CountByStatus(ctx context.Context, criteria *repository.Criteria) (map[entity.OrderStatus]int64, error) {
	query, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.OrderModel{}), criteria, orderColumns)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := query.
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return &entity.Order{
		ID:                data.ID,
		Code:              data.OrderCode,
		Status:            entity.OrderStatus(data.Status),
		StoreID:           data.StoreID,
		CustomerID:        data.CustomerID,
		CustomerName:      data.CustomerName,
		DeliveryPartnerID: data.DeliveryPartnerID,
		ShippingAddress:   data.ShippingAddress,
		Items:             items,
		Subtotal:          data.Subtotal,
		Discount:          data.Discount,
		Total:             data.Total,
		VoucherItemID:     data.VoucherItemID,
		CouponItemID:      data.CouponItemID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     data.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:                data.ID,
		OrderCode:         data.Code,
		Status:            string(data.Status),
		StoreID:           data.StoreID,
		CustomerID:        data.CustomerID,
		CustomerName:      data.CustomerName,
		DeliveryPartnerID: data.DeliveryPartnerID,
		ShippingAddress:   data.ShippingAddress,
		Items:             items,
		Subtotal:          data.Subtotal,
		Discount:          data.Discount,
		Total:             data.Total,
		VoucherItemID:     data.VoucherItemID,
		CouponItemID:      data.CouponItemID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
