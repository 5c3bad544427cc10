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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service          usecase.OrderUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	orderRepo        *mockRepo.MockOrderRepository
	productRepo      *mockRepo.MockProductRepository
	promotionRepo    *mockRepo.MockPromotionRepository
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	qrCodeService    *mockSvc.MockQRCodeService
	publisher        *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T, codes ...string) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		orderRepo:        mockRepo.NewMockOrderRepository(t),
		productRepo:      mockRepo.NewMockProductRepository(t),
		promotionRepo:    mockRepo.NewMockPromotionRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		qrCodeService:    mockSvc.NewMockQRCodeService(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	svc := NewOrderService(OrderServiceParams{
		TxManager:     fx.txManager,
		OrderRepo:     fx.orderRepo,
		QRCodeService: fx.qrCodeService,
		Publisher:     fx.publisher,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	impl := svc.(*orderService)
	impl.now = func() time.Time { return testNow }
	next := 0
	impl.generateCode = func() (string, error) {
		if next >= len(codes) {
			return "ZZZZZZ", nil
		}
		code := codes[next]
		next++

		return code, nil
	}
	fx.service = svc

	return fx
}

func activeSet(kind entity.PromotionKind, storeID *uuid.UUID, percent float64) *entity.PromotionSet {
	return &entity.PromotionSet{
		ID:        uuid.New(),
		Kind:      kind,
		Code:      "SALE",
		Percent:   percent,
		StoreID:   storeID,
		StartAt:   testNow.Add(-24 * time.Hour),
		ExpiredAt: testNow.Add(24 * time.Hour),
	}
}

func heldItem(setID, customerID uuid.UUID) *entity.PromotionItem {
	return &entity.PromotionItem{ID: uuid.New(), SetID: setID, CustomerID: &customerID}
}

func TestOrderService_CreateOrder_AppliesVoucherThenCoupon(t *testing.T) {
	fx := createTestOrderService(t, "AAAAAA", "BBBBBB")
	ctx := context.Background()

	customer := entity.NewCustomer("Jane", "jane@example.com", "hash", testNow)
	storeID := uuid.New()
	product := &entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Lamp", Price: 100, Quantity: 5}
	voucherSet := activeSet(entity.PromotionKindVoucherSet, nil, 10)
	couponSet := activeSet(entity.PromotionKindCouponSet, &storeID, 20)
	voucher := heldItem(voucherSet.ID, customer.ID)
	coupon := heldItem(couponSet.ID, customer.ID)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().PromotionRepo().Return(fx.promotionRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, product.ID, 3).Return(nil)

	fx.promotionRepo.EXPECT().FindItemByID(ctx, voucher.ID).Return(voucher, nil)
	fx.promotionRepo.EXPECT().FindSetByID(ctx, voucherSet.ID).Return(voucherSet, nil)
	fx.promotionRepo.EXPECT().MarkItemUsed(ctx, voucher.ID, customer.ID, testNow).Return(nil)
	fx.promotionRepo.EXPECT().FindItemByID(ctx, coupon.ID).Return(coupon, nil)
	fx.promotionRepo.EXPECT().FindSetByID(ctx, couponSet.ID).Return(couponSet, nil)
	fx.promotionRepo.EXPECT().MarkItemUsed(ctx, coupon.ID, customer.ID, testNow).Return(nil)

	fx.orderRepo.EXPECT().
		TryCreate(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Code == "AAAAAA" })).
		Return(false, nil).Once()
	fx.orderRepo.EXPECT().
		TryCreate(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Code == "BBBBBB" })).
		Return(true, nil).Once()

	order, err := fx.service.CreateOrder(ctx, customer.ID, &usecase.CreateOrderInput{
		Items: []usecase.OrderLineInput{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: product.ID, Quantity: 2},
		},
		ShippingAddress: "1 Main St",
		VoucherItemID:   &voucher.ID,
		CouponItemID:    &coupon.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", order.Code)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, storeID, order.StoreID)
	assert.Equal(t, "Jane", order.CustomerName)
	assert.Equal(t, 300.0, order.Subtotal)
	assert.Equal(t, 216.0, order.Total)
	assert.Equal(t, 84.0, order.Discount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, "Lamp", order.Items[0].ProductName)
}

// expectOrderPrelude wires the repositories every CreateOrder transaction touches first.
func expectOrderPrelude(fx orderServiceFixtures, customer *entity.User, products ...*entity.Product) {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.userRepo.EXPECT().FindByID(mock.Anything, customer.ID).Return(customer, nil)

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	fx.productRepo.EXPECT().FindByIDs(mock.Anything, ids).Return(products, nil)
}

func TestOrderService_CreateOrder_MixedStores(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	customer := entity.NewCustomer("Jane", "jane@example.com", "hash", testNow)
	first := &entity.Product{ID: uuid.New(), StoreID: uuid.New(), Price: 1, Quantity: 1}
	second := &entity.Product{ID: uuid.New(), StoreID: uuid.New(), Price: 1, Quantity: 1}

	expectOrderPrelude(fx, customer, first, second)
	fx.productRepo.EXPECT().DecrementStock(ctx, first.ID, 1).Return(nil)

	_, err := fx.service.CreateOrder(ctx, customer.ID, &usecase.CreateOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: first.ID, Quantity: 1}, {ProductID: second.ID, Quantity: 1}},
		ShippingAddress: "1 Main St",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrMixedStoreOrder))
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	customer := entity.NewCustomer("Jane", "jane@example.com", "hash", testNow)
	product := &entity.Product{ID: uuid.New(), StoreID: uuid.New(), Price: 1, Quantity: 1}

	expectOrderPrelude(fx, customer, product)
	fx.productRepo.EXPECT().DecrementStock(ctx, product.ID, 2).Return(repository.ErrInsufficientStock)

	_, err := fx.service.CreateOrder(ctx, customer.ID, &usecase.CreateOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 2}},
		ShippingAddress: "1 Main St",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestOrderService_CreateOrder_CouponOfAnotherStore(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	customer := entity.NewCustomer("Jane", "jane@example.com", "hash", testNow)
	product := &entity.Product{ID: uuid.New(), StoreID: uuid.New(), Price: 10, Quantity: 1}
	otherStore := uuid.New()
	couponSet := activeSet(entity.PromotionKindCouponSet, &otherStore, 50)
	coupon := heldItem(couponSet.ID, customer.ID)

	expectOrderPrelude(fx, customer, product)
	fx.factory.EXPECT().PromotionRepo().Return(fx.promotionRepo)
	fx.productRepo.EXPECT().DecrementStock(ctx, product.ID, 1).Return(nil)
	fx.promotionRepo.EXPECT().FindItemByID(ctx, coupon.ID).Return(coupon, nil)
	fx.promotionRepo.EXPECT().FindSetByID(ctx, couponSet.ID).Return(couponSet, nil)

	_, err := fx.service.CreateOrder(ctx, customer.ID, &usecase.CreateOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: "1 Main St",
		CouponItemID:    &coupon.ID,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPromotion))
}

func TestOrderService_CreateOrder_VoucherHeldByAnotherCustomer(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	customer := entity.NewCustomer("Jane", "jane@example.com", "hash", testNow)
	product := &entity.Product{ID: uuid.New(), StoreID: uuid.New(), Price: 10, Quantity: 1}
	voucher := heldItem(uuid.New(), uuid.New())

	expectOrderPrelude(fx, customer, product)
	fx.factory.EXPECT().PromotionRepo().Return(fx.promotionRepo)
	fx.productRepo.EXPECT().DecrementStock(ctx, product.ID, 1).Return(nil)
	fx.promotionRepo.EXPECT().FindItemByID(ctx, voucher.ID).Return(voucher, nil)

	_, err := fx.service.CreateOrder(ctx, customer.ID, &usecase.CreateOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: "1 Main St",
		VoucherItemID:   &voucher.ID,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPromotionItemUnavailable))
}

func TestOrderService_CreateOrder_CodeExhausted(t *testing.T) {
	fx := createTestOrderService(t, "AAAAAA", "BBBBBB", "CCCCCC")
	ctx := context.Background()

	customer := entity.NewCustomer("Jane", "jane@example.com", "hash", testNow)
	product := &entity.Product{ID: uuid.New(), StoreID: uuid.New(), Price: 10, Quantity: 1}

	expectOrderPrelude(fx, customer, product)
	fx.factory.EXPECT().PromotionRepo().Return(fx.promotionRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.productRepo.EXPECT().DecrementStock(ctx, product.ID, 1).Return(nil)
	fx.orderRepo.EXPECT().TryCreate(ctx, mock.Anything).Return(false, nil).Times(3)

	_, err := fx.service.CreateOrder(ctx, customer.ID, &usecase.CreateOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: "1 Main St",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrOrderCodeExhausted))
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CreateOrder(context.Background(), uuid.New(), &usecase.CreateOrderInput{ShippingAddress: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.CreateOrder(context.Background(), uuid.New(), &usecase.CreateOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: uuid.New(), Quantity: 0}},
		ShippingAddress: "x",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func newPendingOrder(storeID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:         uuid.New(),
		Code:       "Ab12Cd",
		Status:     entity.OrderStatusPending,
		StoreID:    storeID,
		CustomerID: uuid.New(),
	}
}

func TestOrderService_UpdateOrderStatus_NotifiesAndPublishes(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	storeID := uuid.New()
	order := newPendingOrder(storeID)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.factory.EXPECT().NotificationRepo().Return(fx.notificationRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusReady, (*uuid.UUID)(nil), testNow).Return(nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == order.CustomerID && *n.OrderID == order.ID
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.EventType == service.EventTypeOrderStatusChanged &&
				e.OrderID == order.ID.String() &&
				e.Status == "READY"
		})).
		Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, storeID, &usecase.UpdateOrderStatusInput{OrderID: order.ID, Status: entity.OrderStatusReady})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, updated.Status)
}

func TestOrderService_UpdateOrderStatus_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	storeID := uuid.New()
	order := newPendingOrder(storeID)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.factory.EXPECT().NotificationRepo().Return(fx.notificationRepo)
	fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusReady, mock.Anything, testNow).Return(nil)
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.UpdateOrderStatus(ctx, storeID, &usecase.UpdateOrderStatusInput{OrderID: order.ID, Status: entity.OrderStatusReady})

	assert.NoError(t, err)
}

func TestOrderService_UpdateOrderStatus_Rejections(t *testing.T) {
	storeID := uuid.New()

	t.Run("order of another store", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newPendingOrder(uuid.New())

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
		fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(ctx, storeID, &usecase.UpdateOrderStatusInput{OrderID: order.ID, Status: entity.OrderStatusReady})

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})

	t.Run("skipping a step", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newPendingOrder(storeID)

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
		fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(ctx, storeID, &usecase.UpdateOrderStatusInput{OrderID: order.ID, Status: entity.OrderStatusDelivered})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	})

	t.Run("repeating the current status", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newPendingOrder(storeID)

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
		fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(ctx, storeID, &usecase.UpdateOrderStatusInput{OrderID: order.ID, Status: entity.OrderStatusPending})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	})

	t.Run("assignee is not a delivery partner", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newPendingOrder(storeID)
		order.Status = entity.OrderStatusReady
		customer := entity.NewCustomer("Jane", "jane@example.com", "hash", testNow)

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
		fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
		fx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

		_, err := fx.service.UpdateOrderStatus(ctx, storeID, &usecase.UpdateOrderStatusInput{
			OrderID:           order.ID,
			Status:            entity.OrderStatusDelivering,
			DeliveryPartnerID: &customer.ID,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrNotDeliveryPartner))
	})
}

func TestOrderService_CountStoreOrders_ReportsEveryStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fx.orderRepo.EXPECT().
		CountByStatus(ctx, mock.MatchedBy(func(c *repository.Criteria) bool {
			return c.Has(repository.FieldStoreID) && c.Has(repository.FieldCreatedAt)
		})).
		Return(map[entity.OrderStatus]int64{entity.OrderStatusPending: 2, entity.OrderStatusDelivered: 1}, nil)

	count, err := fx.service.CountStoreOrders(ctx, storeID, usecase.DateRangeInput{From: "2024-05-01", To: "2024-05-10"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), count.Total)
	assert.Len(t, count.ByStatus, len(entity.AllOrderStatuses()))
	assert.Equal(t, int64(0), count.ByStatus[entity.OrderStatusReady])
}

func TestOrderService_ListStoreOrders_DateRange(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	storeID := uuid.New()

	var captured *repository.Criteria
	fx.orderRepo.EXPECT().
		List(ctx, mock.Anything, mock.Anything).
		Run(func(_ context.Context, c *repository.Criteria, _ entity.PageRequest) { captured = c }).
		Return(nil, int64(0), nil)

	_, err := fx.service.ListStoreOrders(ctx, storeID, &usecase.OrderQuery{
		DateRangeInput: usecase.DateRangeInput{From: "2024-05-01", To: "2024-05-03"},
		Status:         "ready",
	})
	require.NoError(t, err)

	var bounds [2]time.Time
	for _, p := range captured.Predicates() {
		if p.Field == repository.FieldCreatedAt {
			bounds = p.Value.([2]time.Time)
		}
	}
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), bounds[0])
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), bounds[1])
	assert.True(t, captured.Has(repository.FieldStatus))
	assert.True(t, captured.Has(repository.FieldStoreID))

	_, err = fx.service.ListStoreOrders(ctx, storeID, &usecase.OrderQuery{DateRangeInput: usecase.DateRangeInput{From: "May 1st"}})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDate))
}

func TestOrderService_GetCustomerOrderQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newPendingOrder(uuid.New())

	fx.orderRepo.EXPECT().FindByCode(ctx, order.Code).Return(order, nil).Twice()
	fx.qrCodeService.EXPECT().GenerateOrderQR(order.Code).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.GetCustomerOrderQR(ctx, order.CustomerID, order.Code)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = fx.service.GetCustomerOrderQR(ctx, uuid.New(), order.Code)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetStoreOrderByCode_AcceptsScannedPayload(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newPendingOrder(uuid.New())
	payload := `{"order_code":"` + order.Code + `","type":"order"}`

	fx.qrCodeService.EXPECT().ParseOrderQR(payload).Return(order.Code, nil).Twice()
	fx.orderRepo.EXPECT().FindByCode(ctx, order.Code).Return(order, nil).Twice()

	got, err := fx.service.GetStoreOrderByCode(ctx, order.StoreID, " "+payload+" ")
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = fx.service.GetStoreOrderByCode(ctx, uuid.New(), payload)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetStoreOrderByCode_UnreadablePayload(t *testing.T) {
	fx := createTestOrderService(t)

	fx.qrCodeService.EXPECT().ParseOrderQR("{broken").Return("", errors.New("failed to unmarshal QR code data"))

	_, err := fx.service.GetStoreOrderByCode(context.Background(), uuid.New(), "{broken")

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
