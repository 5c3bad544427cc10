package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const fallbackOrderCodeMaxAttempts = 5

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	qrCodeService   service.QRCodeService
	publisher       service.EventPublisher
	pager           pager
	codeMaxAttempts int
	generateCode    func() (string, error)
	logger          *slog.Logger
	now             func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrderRepo     repository.OrderRepository
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	attempts := fallbackOrderCodeMaxAttempts
	if params.Config != nil && params.Config.Order != nil && params.Config.Order.CodeMaxAttempts > 0 {
		attempts = params.Config.Order.CodeMaxAttempts
	}

	return &orderService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		qrCodeService:   params.QRCodeService,
		publisher:       params.Publisher,
		pager:           newPager(params.Config),
		codeMaxAttempts: attempts,
		generateCode:    entity.NewOrderCode,
		logger:          params.Logger,
		now:             time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder checks stock, redeems promotions and inserts the order in one
// transaction. Any failure leaves stock and promotion items untouched.
func (srv *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	quantities, err := mergeOrderLines(input.Items)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.ShippingAddress) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shippingAddress is required")
	}

	now := srv.now()
	order := &entity.Order{
		ID:              uuid.New(),
		Status:          entity.OrderStatusPending,
		CustomerID:      customerID,
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		VoucherItemID:   input.VoucherItemID,
		CouponItemID:    input.CouponItemID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, err := repoFactory.UserRepo().FindByID(ctx, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "find customer")
			}

			return errors.Wrap(err, "failed to find customer")
		}
		order.CustomerName = customer.Name

		if err := srv.reserveItems(ctx, repoFactory.ProductRepo(), order, quantities); err != nil {
			return err
		}

		voucherPercent, err := srv.redeem(ctx, repoFactory.PromotionRepo(), order, input.VoucherItemID, entity.PromotionKindVoucherSet, now)
		if err != nil {
			return err
		}
		couponPercent, err := srv.redeem(ctx, repoFactory.PromotionRepo(), order, input.CouponItemID, entity.PromotionKindCouponSet, now)
		if err != nil {
			return err
		}
		order.ApplyPricing(voucherPercent, couponPercent)

		return srv.insertWithUniqueCode(ctx, repoFactory.OrderRepo(), order)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create order transaction")
	}

	srv.log(ctx).Info("Order created",
		slog.Any(constants.AttrOrderID, order.ID),
		slog.String("code", order.Code),
		slog.Float64("total", order.Total))

	return order, nil
}

// mergeOrderLines sums quantities per product and keeps the first-seen order.
func mergeOrderLines(lines []usecase.OrderLineInput) ([]usecase.OrderLineInput, error) {
	if len(lines) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("an order needs at least one item")
	}

	merged := make([]usecase.OrderLineInput, 0, len(lines))
	index := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetailsf("quantity of product %s must be positive", line.ProductID)
		}
		if i, ok := index[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}

	return merged, nil
}

// reserveItems decrements stock for every line and snapshots the products
// into order items. All products must belong to one store.
func (srv *orderService) reserveItems(ctx context.Context, productRepo repository.ProductRepository, order *entity.Order, lines []usecase.OrderLineInput) error {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load products")
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	order.Items = make([]*entity.OrderItem, 0, len(lines))
	for i, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return domainerrors.ErrProductNotFound.WithDetailsf("product %s does not exist", line.ProductID)
		}
		if i == 0 {
			order.StoreID = product.StoreID
		} else if product.StoreID != order.StoreID {
			return domainerrors.ErrMixedStoreOrder
		}

		if err := productRepo.DecrementStock(ctx, product.ID, line.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return domainerrors.ErrInsufficientStock.WithDetailsf("product %s has %d left", product.ID, product.Quantity)
			}
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WithDetailsf("product %s does not exist", product.ID)
			}

			return errors.Wrap(err, "failed to decrement stock")
		}

		productID := product.ID
		order.Items = append(order.Items, &entity.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   &productID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    line.Quantity,
		})
	}

	return nil
}

// redeem marks a held promotion item as used and returns its discount
// percentage. A nil itemID redeems nothing.
func (srv *orderService) redeem(ctx context.Context, promotionRepo repository.PromotionRepository, order *entity.Order, itemID *uuid.UUID, kind entity.PromotionKind, now time.Time) (float64, error) {
	if itemID == nil {
		return 0, nil
	}

	item, err := promotionRepo.FindItemByID(ctx, *itemID)
	if err != nil {
		if errors.Is(err, repository.ErrPromotionItemNotFound) {
			return 0, errors.Wrap(domainerrors.ErrPromotionItemNotFound, "find promotion item")
		}

		return 0, errors.Wrap(err, "failed to find promotion item")
	}
	if !item.IsHeldBy(order.CustomerID) {
		return 0, domainerrors.ErrPromotionItemUnavailable
	}

	set, err := promotionRepo.FindSetByID(ctx, item.SetID)
	if err != nil {
		if errors.Is(err, repository.ErrPromotionSetNotFound) {
			return 0, errors.Wrap(domainerrors.ErrPromotionSetNotFound, "find promotion set")
		}

		return 0, errors.Wrap(err, "failed to find promotion set")
	}
	if set.Kind != kind {
		return 0, domainerrors.ErrInvalidPromotion.WithDetailsf("item %s is not a %s item", item.ID, kind)
	}
	if kind == entity.PromotionKindCouponSet && (set.StoreID == nil || *set.StoreID != order.StoreID) {
		return 0, domainerrors.ErrInvalidPromotion.WithDetails("coupon belongs to another store")
	}
	if !set.IsActive(now) {
		return 0, domainerrors.ErrPromotionNotActive
	}

	if err := promotionRepo.MarkItemUsed(ctx, item.ID, order.CustomerID, now); err != nil {
		if errors.Is(err, repository.ErrItemUnavailable) {
			return 0, domainerrors.ErrPromotionItemUnavailable
		}

		return 0, errors.Wrap(err, "failed to redeem promotion item")
	}

	return set.Percent, nil
}

// insertWithUniqueCode draws codes until one inserts without collision.
func (srv *orderService) insertWithUniqueCode(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order) error {
	for attempt := 1; attempt <= srv.codeMaxAttempts; attempt++ {
		code, err := srv.generateCode()
		if err != nil {
			return errors.Wrap(err, "failed to generate order code")
		}
		order.Code = code

		inserted, err := orderRepo.TryCreate(ctx, order)
		if err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		if inserted {
			return nil
		}

		srv.log(ctx).Warn("Order code collision", slog.String("code", code), slog.Int("attempt", attempt))
	}

	return domainerrors.ErrOrderCodeExhausted.WithDetailsf("no unique code after %d attempts", srv.codeMaxAttempts)
}

// UpdateOrderStatus moves the order along its lifecycle, notifies the
// customer in the same transaction and publishes an event after commit.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, storeID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("unknown status %q", input.Status)
	}

	var order *entity.Order
	now := srv.now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		var err error
		order, err = orderRepo.FindByIDForUpdate(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "find order")
			}

			return errors.Wrap(err, "failed to lock order")
		}
		if order.StoreID != storeID {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another store")
		}

		if !order.Status.CanTransitionTo(input.Status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetailsf("%s -> %s", order.Status, input.Status)
		}

		if input.DeliveryPartnerID != nil {
			if err := checkDeliveryPartner(ctx, repoFactory.UserRepo(), *input.DeliveryPartnerID); err != nil {
				return err
			}
			order.DeliveryPartnerID = input.DeliveryPartnerID
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, input.Status, input.DeliveryPartnerID, now); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "update order status")
			}

			return errors.Wrap(err, "failed to update order status")
		}
		order.Status = input.Status
		order.UpdatedAt = now

		orderID := order.ID
		notification := &entity.Notification{
			ID:        uuid.New(),
			UserID:    order.CustomerID,
			OrderID:   &orderID,
			Title:     "Order update",
			Content:   orderStatusMessage(order),
			CreatedAt: now,
		}
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update order status transaction")
	}

	srv.publishStatusChange(ctx, order)

	return order, nil
}

func checkDeliveryPartner(ctx context.Context, userRepo repository.UserRepository, id uuid.UUID) error {
	partner, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotDeliveryPartner.WithDetailsf("account %s does not exist", id)
		}

		return errors.Wrap(err, "failed to find delivery partner")
	}
	if partner.Role != entity.RoleDeliveryPartner {
		return domainerrors.ErrNotDeliveryPartner.WithDetailsf("account %s is a %s", id, partner.Role)
	}

	return nil
}

func orderStatusMessage(order *entity.Order) string {
	return fmt.Sprintf("Your order %s is now %s", order.Code, order.Status)
}

// publishStatusChange is best effort: the status change is already committed.
func (srv *orderService) publishStatusChange(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  service.EventTypeOrderStatusChanged,
		OrderID:    order.ID.String(),
		OrderCode:  order.Code,
		StoreID:    order.StoreID.String(),
		CustomerID: order.CustomerID.String(),
		Status:     string(order.Status),
		OccurredAt: order.UpdatedAt,
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.Any(constants.AttrOrderID, order.ID),
			slog.String(constants.AttrEventType, event.EventType),
			slog.Any("error", err))
	}
}

// orderCriteria translates the shared order filters.
func (srv *orderService) orderCriteria(query *usecase.OrderQuery) (*repository.Criteria, error) {
	from, to, err := dateRange(query.DateRangeInput, srv.now())
	if err != nil {
		return nil, err
	}

	criteria := repository.NewCriteria().Between(repository.FieldCreatedAt, from, to)
	if isFilterSet(query.Status) {
		status := entity.OrderStatus(strings.ToUpper(strings.TrimSpace(query.Status)))
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetailsf("unknown status %q", query.Status)
		}
		criteria.Equal(repository.FieldStatus, string(status))
	}
	criteria.Contains(repository.FieldCustomerName, query.CustomerName)

	return criteria, nil
}

func (srv *orderService) listOrders(ctx context.Context, criteria *repository.Criteria, in usecase.PageInput) (*entity.Page[*entity.Order], error) {
	page, err := srv.pager.request(in)
	if err != nil {
		return nil, err
	}

	orders, total, err := srv.orderRepo.List(ctx, criteria, page)
	if err != nil {
		return nil, translateListError(err, "failed to list orders")
	}

	return entity.NewPage(orders, page, total), nil
}

func (srv *orderService) ListStoreOrders(ctx context.Context, storeID uuid.UUID, query *usecase.OrderQuery) (*entity.Page[*entity.Order], error) {
	criteria, err := srv.orderCriteria(query)
	if err != nil {
		return nil, err
	}
	criteria.Equal(repository.FieldStoreID, storeID)

	return srv.listOrders(ctx, criteria, query.PageInput)
}

// CountStoreOrders reports every status, including those with no orders.
func (srv *orderService) CountStoreOrders(ctx context.Context, storeID uuid.UUID, dates usecase.DateRangeInput) (*entity.OrderCount, error) {
	from, to, err := dateRange(dates, srv.now())
	if err != nil {
		return nil, err
	}

	criteria := repository.NewCriteria().
		Equal(repository.FieldStoreID, storeID).
		Between(repository.FieldCreatedAt, from, to)

	counts, err := srv.orderRepo.CountByStatus(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	result := &entity.OrderCount{ByStatus: make(map[entity.OrderStatus]int64, len(counts))}
	for _, status := range entity.AllOrderStatuses() {
		result.ByStatus[status] = counts[status]
		result.Total += counts[status]
	}

	return result, nil
}

func (srv *orderService) GetStoreOrder(ctx context.Context, storeID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "find order")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.StoreID != storeID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another store")
	}

	return order, nil
}

func (srv *orderService) findByCode(ctx context.Context, code string) (*entity.Order, error) {
	if !entity.IsOrderCode(code) {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "malformed order code")
	}

	order, err := srv.orderRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "find order by code")
		}

		return nil, errors.Wrap(err, "failed to find order by code")
	}

	return order, nil
}

// GetStoreOrderByCode accepts a typed order code or the payload scanned from
// the customer's order QR.
func (srv *orderService) GetStoreOrderByCode(ctx context.Context, storeID uuid.UUID, codeOrPayload string) (*entity.Order, error) {
	code, err := srv.qrCodeService.ParseOrderQR(strings.TrimSpace(codeOrPayload))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "unreadable order code")
	}

	order, err := srv.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if order.StoreID != storeID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another store")
	}

	return order, nil
}

func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, in usecase.PageInput) (*entity.Page[*entity.Order], error) {
	criteria := repository.NewCriteria().Equal(repository.FieldCustomerID, customerID)

	return srv.listOrders(ctx, criteria, in)
}

func (srv *orderService) GetCustomerOrderByCode(ctx context.Context, customerID uuid.UUID, code string) (*entity.Order, error) {
	order, err := srv.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another customer")
	}

	return order, nil
}

func (srv *orderService) GetCustomerOrderQR(ctx context.Context, customerID uuid.UUID, code string) ([]byte, error) {
	order, err := srv.GetCustomerOrderByCode(ctx, customerID, code)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateOrderQR(order.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render order QR code")
	}

	return png, nil
}

func (srv *orderService) ListAllOrders(ctx context.Context, query *usecase.OrderQuery) (*entity.Page[*entity.Order], error) {
	criteria, err := srv.orderCriteria(query)
	if err != nil {
		return nil, err
	}

	return srv.listOrders(ctx, criteria, query.PageInput)
}
