package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	pg "marketplace/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RepositoryIntegrationTestSuite runs the repositories against a real
// PostgreSQL so row locking and constraints behave as in production.
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB

	users      repository.UserRepository
	products   repository.ProductRepository
	orders     repository.OrderRepository
	promotions repository.PromotionRepository
	devices    repository.DeviceRepository
	inbox      repository.NotificationRepository
	txManager  repository.TransactionManager
}

func TestRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration tests in short mode")
	}

	suite.Run(t, new(RepositoryIntegrationTestSuite))
}

func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("marketplace"),
		tcpostgres.WithUsername("marketplace"),
		tcpostgres.WithPassword("marketplace"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(pg.Migrate(db))
	s.db = db

	s.users = pg.NewUserRepository(db)
	s.products = pg.NewProductRepository(db)
	s.orders = pg.NewOrderRepository(db)
	s.promotions = pg.NewPromotionRepository(db)
	s.devices = pg.NewDeviceRepository(db)
	s.inbox = pg.NewNotificationRepository(db)
	s.txManager = pg.NewTransactionManager(db)
}

func (s *RepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE TABLE promotion_items, promotion_sets, order_items, orders, products, devices, notifications, users RESTART IDENTITY CASCADE",
	).Error)
}

func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *RepositoryIntegrationTestSuite) createCustomer(n int) *entity.User {
	user := entity.NewCustomer(fmt.Sprintf("Customer %d", n), fmt.Sprintf("customer%d@example.com", n), "hash", time.Now())
	s.Require().NoError(s.users.Create(context.Background(), user))

	return user
}

func (s *RepositoryIntegrationTestSuite) createStore(name string) *entity.User {
	user := entity.NewStore(name, name+"@example.com", "hash", entity.StoreProfile{City: "Hanoi"}, time.Now())
	s.Require().NoError(s.users.Create(context.Background(), user))

	return user
}

func (s *RepositoryIntegrationTestSuite) createProduct(storeID uuid.UUID, name string, category entity.Category, price float64, quantity int) *entity.Product {
	product := &entity.Product{
		ID:       uuid.New(),
		StoreID:  storeID,
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
		Images:   []string{},
	}
	s.Require().NoError(s.products.Create(context.Background(), product))

	return product
}

func (s *RepositoryIntegrationTestSuite) createVoucherSet(items int) *entity.PromotionSet {
	ctx := context.Background()
	now := time.Now()
	set := &entity.PromotionSet{
		ID:        uuid.New(),
		Kind:      entity.PromotionKindVoucherSet,
		Code:      "SALE-" + uuid.NewString()[:8],
		Percent:   10,
		StartAt:   now.Add(-time.Hour),
		ExpiredAt: now.Add(24 * time.Hour),
	}
	s.Require().NoError(s.promotions.CreateSet(ctx, set))
	s.Require().NoError(s.promotions.AddItems(ctx, entity.NewPromotionItems(set.ID, items, now)))

	return set
}

func (s *RepositoryIntegrationTestSuite) TestClaimItem_ConcurrentClaimsNeverOversell() {
	set := s.createVoucherSet(5)

	customers := make([]*entity.User, 12)
	for i := range customers {
		customers[i] = s.createCustomer(i)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		claimed  = map[uuid.UUID]uuid.UUID{}
		soldOut  int
		failures []error
	)
	for _, customer := range customers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item, err := s.promotions.ClaimItem(context.Background(), set.ID, customer.ID, time.Now())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				claimed[item.ID] = customer.ID
			case errors.Is(err, repository.ErrNoAvailableItem):
				soldOut++
			default:
				failures = append(failures, err)
			}
		}()
	}
	wg.Wait()

	s.Empty(failures)
	s.Len(claimed, 5, "every item is claimed exactly once")
	s.Equal(7, soldOut)

	reloaded, err := s.promotions.FindSetByID(context.Background(), set.ID)
	s.Require().NoError(err)
	s.EqualValues(0, reloaded.QuantityAvailable)
	s.EqualValues(5, reloaded.QuantityTotal)
}

func (s *RepositoryIntegrationTestSuite) TestClaimItem_OnePerCustomer() {
	ctx := context.Background()
	set := s.createVoucherSet(3)
	customer := s.createCustomer(1)

	_, err := s.promotions.ClaimItem(ctx, set.ID, customer.ID, time.Now())
	s.Require().NoError(err)

	_, err = s.promotions.ClaimItem(ctx, set.ID, customer.ID, time.Now())
	s.ErrorIs(err, repository.ErrAlreadyClaimed)

	held, err := s.promotions.CountHeldBy(ctx, set.ID, customer.ID)
	s.Require().NoError(err)
	s.EqualValues(1, held)
}

func (s *RepositoryIntegrationTestSuite) TestAddItems_LeavesExistingItemsAlone() {
	ctx := context.Background()
	set := s.createVoucherSet(3)
	customer := s.createCustomer(1)
	claimed, err := s.promotions.ClaimItem(ctx, set.ID, customer.ID, time.Now())
	s.Require().NoError(err)

	before, err := s.promotions.FindSetByID(ctx, set.ID)
	s.Require().NoError(err)
	s.EqualValues(2, before.QuantityAvailable)

	s.Require().NoError(s.promotions.AddItems(ctx, entity.NewPromotionItems(set.ID, 4, time.Now())))

	after, err := s.promotions.FindSetByID(ctx, set.ID)
	s.Require().NoError(err)
	s.EqualValues(before.QuantityAvailable+4, after.QuantityAvailable)
	s.EqualValues(before.QuantityTotal+4, after.QuantityTotal)

	reloaded, err := s.promotions.FindItemByID(ctx, claimed.ID)
	s.Require().NoError(err)
	s.Require().NotNil(reloaded.CustomerID)
	s.Equal(customer.ID, *reloaded.CustomerID)
	s.Require().NotNil(reloaded.ClaimedAt)
	s.True(claimed.ClaimedAt.Equal(*reloaded.ClaimedAt))
	s.False(reloaded.Used)
}

func (s *RepositoryIntegrationTestSuite) TestMarkItemUsed_OnlyOnce() {
	ctx := context.Background()
	set := s.createVoucherSet(1)
	customer := s.createCustomer(1)
	item, err := s.promotions.ClaimItem(ctx, set.ID, customer.ID, time.Now())
	s.Require().NoError(err)

	s.Require().NoError(s.promotions.MarkItemUsed(ctx, item.ID, customer.ID, time.Now()))
	s.ErrorIs(s.promotions.MarkItemUsed(ctx, item.ID, customer.ID, time.Now()), repository.ErrItemUnavailable)

	other := s.createCustomer(2)
	s.ErrorIs(s.promotions.MarkItemUsed(ctx, item.ID, other.ID, time.Now()), repository.ErrItemUnavailable)
}

func (s *RepositoryIntegrationTestSuite) TestLockAvailableItems_ReportsShortfall() {
	ctx := context.Background()
	set := s.createVoucherSet(4)
	customer := s.createCustomer(1)
	_, err := s.promotions.ClaimItem(ctx, set.ID, customer.ID, time.Now())
	s.Require().NoError(err)

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		locked, err := f.PromotionRepo().LockAvailableItems(ctx, set.ID, 10)
		s.Require().NoError(err)
		s.Len(locked, 3, "claimed items are never locked for removal")

		ids := make([]uuid.UUID, 0, len(locked))
		for _, item := range locked {
			s.Nil(item.CustomerID)
			ids = append(ids, item.ID)
		}
		removed, err := f.PromotionRepo().DeleteItems(ctx, ids[:2])
		s.Require().NoError(err)
		s.EqualValues(2, removed)

		return nil
	})
	s.Require().NoError(err)

	reloaded, err := s.promotions.FindSetByID(ctx, set.ID)
	s.Require().NoError(err)
	s.EqualValues(1, reloaded.QuantityAvailable)
	s.EqualValues(2, reloaded.QuantityTotal)
}

func (s *RepositoryIntegrationTestSuite) TestTryCreate_CodeCollision() {
	ctx := context.Background()
	store := s.createStore("corner")
	customer := s.createCustomer(1)
	product := s.createProduct(store.ID, "Tea", entity.CategoryFood, 4.5, 10)

	newOrder := func() *entity.Order {
		id := uuid.New()
		order := &entity.Order{
			ID:              id,
			Code:            "K7Q2ZP",
			Status:          entity.OrderStatusPending,
			StoreID:         store.ID,
			CustomerID:      customer.ID,
			CustomerName:    customer.Name,
			ShippingAddress: "1 Main St",
			Items: []*entity.OrderItem{{
				ID:          uuid.New(),
				OrderID:     id,
				ProductID:   &product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    2,
			}},
		}
		order.ApplyPricing(0, 0)

		return order
	}

	created, err := s.orders.TryCreate(ctx, newOrder())
	s.Require().NoError(err)
	s.True(created)

	created, err = s.orders.TryCreate(ctx, newOrder())
	s.Require().NoError(err)
	s.False(created, "a taken code is reported, not raised")

	found, err := s.orders.FindByCode(ctx, "K7Q2ZP")
	s.Require().NoError(err)
	s.Require().Len(found.Items, 1)
	s.Equal(9.0, found.Total)
}

func (s *RepositoryIntegrationTestSuite) TestDecrementStock_NeverNegative() {
	ctx := context.Background()
	store := s.createStore("corner")
	product := s.createProduct(store.ID, "Tea", entity.CategoryFood, 4.5, 3)

	s.Require().NoError(s.products.DecrementStock(ctx, product.ID, 2))
	s.ErrorIs(s.products.DecrementStock(ctx, product.ID, 2), repository.ErrInsufficientStock)

	reloaded, err := s.products.FindByID(ctx, product.ID)
	s.Require().NoError(err)
	s.Equal(1, reloaded.Quantity)
}

func (s *RepositoryIntegrationTestSuite) TestProductList_Criteria() {
	ctx := context.Background()
	north := s.createStore("north")
	south := s.createStore("south")
	s.createProduct(north.ID, "Green Tea", entity.CategoryFood, 5, 10)
	s.createProduct(north.ID, "Black tea", entity.CategoryFood, 3, 10)
	s.createProduct(north.ID, "Teapot", entity.CategoryHome, 30, 2)
	s.createProduct(south.ID, "Iced Tea", entity.CategoryFood, 2, 10)

	criteria := repository.NewCriteria().
		Contains(repository.FieldName, "TEA").
		Equal(repository.FieldCategory, string(entity.CategoryFood)).
		Equal(repository.FieldStoreID, north.ID)
	page := entity.PageRequest{Page: 0, Size: 1, SortField: repository.FieldPrice, Direction: entity.SortAsc}

	products, total, err := s.products.List(ctx, criteria, page)
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Require().Len(products, 1)
	s.Equal("Black tea", products[0].Name)

	page.Page = 1
	products, _, err = s.products.List(ctx, criteria, page)
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Equal("Green Tea", products[0].Name)
}

func (s *RepositoryIntegrationTestSuite) TestProductList_RejectsUnknownSortField() {
	_, _, err := s.products.List(context.Background(), repository.NewCriteria(),
		entity.PageRequest{Size: 10, SortField: "passwordHash", Direction: entity.SortAsc})

	s.ErrorIs(err, repository.ErrUnsupportedField)
}

func (s *RepositoryIntegrationTestSuite) newDevice(userID uuid.UUID, clientID, token string) *entity.UserDevice {
	now := time.Now()

	return &entity.UserDevice{
		ID:         uuid.New(),
		UserID:     userID,
		DeviceID:   clientID,
		FCMToken:   token,
		Platform:   entity.PlatformAndroid,
		IsActive:   true,
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *RepositoryIntegrationTestSuite) TestDeviceRegister_SameHandsetKeepsOneRow() {
	ctx := context.Background()
	customer := s.createCustomer(1)

	first, err := s.devices.Register(ctx, s.newDevice(customer.ID, "pixel", "tok-1"))
	s.Require().NoError(err)
	s.Require().NoError(s.devices.Deactivate(ctx, first.ID))

	again, err := s.devices.Register(ctx, s.newDevice(customer.ID, "pixel", "tok-2"))
	s.Require().NoError(err)

	s.Equal(first.ID, again.ID)
	s.Equal("tok-2", again.FCMToken)
	s.True(again.IsActive)

	all, err := s.devices.ListByUser(ctx, customer.ID, false)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *RepositoryIntegrationTestSuite) TestDeviceRegister_TokenMovesToNewAccount() {
	ctx := context.Background()
	previous := s.createCustomer(1)
	current := s.createCustomer(2)

	_, err := s.devices.Register(ctx, s.newDevice(previous.ID, "shared-phone", "tok-shared"))
	s.Require().NoError(err)

	_, err = s.devices.Register(ctx, s.newDevice(current.ID, "shared-phone", "tok-shared"))
	s.Require().NoError(err)

	left, err := s.devices.ListByUser(ctx, previous.ID, false)
	s.Require().NoError(err)
	s.Empty(left)

	active, err := s.devices.ListByUser(ctx, current.ID, true)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("tok-shared", active[0].FCMToken)
}

func (s *RepositoryIntegrationTestSuite) TestDeviceDeactivateTokens() {
	ctx := context.Background()
	customer := s.createCustomer(1)

	for i := range 3 {
		_, err := s.devices.Register(ctx, s.newDevice(customer.ID, fmt.Sprintf("d-%d", i), fmt.Sprintf("tok-%d", i)))
		s.Require().NoError(err)
	}

	n, err := s.devices.DeactivateTokens(ctx, []string{"tok-0", "tok-2", "tok-unknown"})
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	active, err := s.devices.ListByUser(ctx, customer.ID, true)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("tok-1", active[0].FCMToken)

	s.ErrorIs(s.devices.Deactivate(ctx, uuid.New()), repository.ErrDeviceNotFound)
}

func (s *RepositoryIntegrationTestSuite) TestNotificationInbox() {
	ctx := context.Background()
	owner := s.createCustomer(1)
	other := s.createCustomer(2)

	base := time.Now().Add(-time.Hour)
	var ids []uuid.UUID
	for i := range 3 {
		n := &entity.Notification{
			ID:        uuid.New(),
			UserID:    owner.ID,
			Title:     "Order update",
			Content:   fmt.Sprintf("update %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.inbox.Create(ctx, n))
		ids = append(ids, n.ID)
	}

	s.ErrorIs(s.inbox.MarkRead(ctx, ids[0], other.ID), repository.ErrNotificationNotFound)
	s.Require().NoError(s.inbox.MarkRead(ctx, ids[0], owner.ID))
	s.Require().NoError(s.inbox.MarkRead(ctx, ids[0], owner.ID))

	unread, err := s.inbox.CountUnread(ctx, owner.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), unread)

	page, total, err := s.inbox.ListByUser(ctx, owner.ID, true, entity.PageRequest{Size: 10})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(page, 2)
	s.Equal(ids[2], page[0].ID)

	updated, err := s.inbox.MarkAllRead(ctx, owner.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), updated)

	unread, err = s.inbox.CountUnread(ctx, owner.ID)
	s.Require().NoError(err)
	s.Zero(unread)
}

func (s *RepositoryIntegrationTestSuite) TestExecute_ReplaysDeadlockVictim() {
	ctx := context.Background()
	calls := 0

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: "40P01", Message: "deadlock detected"}
		}

		return repos.UserRepo().Create(ctx, entity.NewCustomer("Replayed", "replayed@example.com", "hash", time.Now()))
	})

	s.Require().NoError(err)
	s.Equal(2, calls)
}

func (s *RepositoryIntegrationTestSuite) TestExecute_RollsBackOnError() {
	ctx := context.Background()

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.UserRepo().Create(ctx, entity.NewCustomer("Ghost", "ghost@example.com", "hash", time.Now())); err != nil {
			return err
		}

		return errors.New("abort")
	})
	s.Require().EqualError(err, "abort")

	var count int64
	s.Require().NoError(s.db.Table("users").Where("email = ?", "ghost@example.com").Count(&count).Error)
	s.Zero(count)
}
