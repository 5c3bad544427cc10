package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery/api"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	servicemocks "marketplace/internal/mocks/service"
	usecasemocks "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	echo        *echo.Echo
	tokens      *servicemocks.MockTokenService
	authUC      *usecasemocks.MockAuthUsecase
	productUC   *usecasemocks.MockProductUsecase
	orderUC     *usecasemocks.MockOrderUsecase
	promotionUC *usecasemocks.MockPromotionUsecase
	inboxUC     *usecasemocks.MockNotificationUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &testEnv{
		tokens:      servicemocks.NewMockTokenService(t),
		authUC:      usecasemocks.NewMockAuthUsecase(t),
		productUC:   usecasemocks.NewMockProductUsecase(t),
		orderUC:     usecasemocks.NewMockOrderUsecase(t),
		promotionUC: usecasemocks.NewMockPromotionUsecase(t),
		inboxUC:     usecasemocks.NewMockNotificationUsecase(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	env.echo = api.NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: env.authUC, Logger: logger}),
		AccountHandler:      handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: usecasemocks.NewMockAccountUsecase(t), Logger: logger}),
		ProductHandler:      handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: env.productUC, Logger: logger}),
		OrderHandler:        handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: env.orderUC, Logger: logger}),
		PromotionHandler:    handler.NewPromotionHandler(handler.PromotionHandlerParams{PromotionUC: env.promotionUC, Logger: logger}),
		ReviewHandler:       handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: usecasemocks.NewMockReviewUsecase(t), Logger: logger}),
		FeedbackHandler:     handler.NewFeedbackHandler(handler.FeedbackHandlerParams{FeedbackUC: usecasemocks.NewMockFeedbackUsecase(t), Logger: logger}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: usecasemocks.NewMockDeviceUsecase(t), Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: env.inboxUC, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(env.tokens),
	})

	return env
}

// login makes the token "tok-<role>" resolve to userID with role.
func (env *testEnv) login(userID uuid.UUID, role entity.Role) string {
	token := "tok-" + role.String()
	env.tokens.EXPECT().ValidateAccessToken(token).
		Return(&service.Claims{UserID: userID, Role: role.String(), Type: service.TokenTypeAccess}, nil)

	return token
}

func (env *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Status    int             `json:"status"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"requestId"`
}

type errorData struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) (envelope, errorData) {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	var errData errorData
	_ = json.Unmarshal(env.Data, &errData)

	return env, errData
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAuthentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodGet, "/api/customer/orders", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		_, errData := decode(t, rec)
		assert.Equal(t, "MISSING_TOKEN", errData.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/api/customer/orders", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		rec := httptest.NewRecorder()

		env.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		_, errData := decode(t, rec)
		assert.Equal(t, "INVALID_TOKEN", errData.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		env := newTestEnv(t)
		env.tokens.EXPECT().ValidateAccessToken("stale").Return(nil, errors.New("token is expired"))

		rec := env.do(http.MethodGet, "/api/customer/orders", "stale", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		env := newTestEnv(t)
		env.tokens.EXPECT().ValidateAccessToken("odd").
			Return(&service.Claims{UserID: uuid.New(), Role: "ROOT"}, nil)

		rec := env.do(http.MethodGet, "/api/customer/orders", "odd", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.login(uuid.New(), entity.RoleStore)

		rec := env.do(http.MethodGet, "/api/customer/orders", token, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		_, errData := decode(t, rec)
		assert.Equal(t, "FORBIDDEN", errData.Code)
		assert.Empty(t, errData.Details)
	})

	t.Run("delivery partner has no area", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.login(uuid.New(), entity.RoleDeliveryPartner)

		rec := env.do(http.MethodGet, "/api/admin/orders", token, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestErrorEnvelope(t *testing.T) {
	t.Run("client error keeps details", func(t *testing.T) {
		env := newTestEnv(t)
		customerID := uuid.New()
		token := env.login(customerID, entity.RoleCustomer)
		env.orderUC.EXPECT().GetCustomerOrderByCode(mock.Anything, customerID, "ABC123").
			Return(nil, domainerrors.ErrOrderNotFound.WithDetails("no order ABC123"))

		rec := env.do(http.MethodGet, "/api/customer/orders/ABC123", token, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body, errData := decode(t, rec)
		assert.Equal(t, http.StatusNotFound, body.Status)
		assert.Equal(t, "ORDER_NOT_FOUND", errData.Code)
		assert.Equal(t, "no order ABC123", errData.Details)
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("forbidden drops details", func(t *testing.T) {
		env := newTestEnv(t)
		customerID := uuid.New()
		token := env.login(customerID, entity.RoleCustomer)
		env.orderUC.EXPECT().GetCustomerOrderByCode(mock.Anything, customerID, "LOCKED").
			Return(nil, domainerrors.ErrForbidden.WithDetails("internal reason"))

		rec := env.do(http.MethodGet, "/api/customer/orders/LOCKED", token, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		_, errData := decode(t, rec)
		assert.Empty(t, errData.Details)
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		env := newTestEnv(t)
		customerID := uuid.New()
		token := env.login(customerID, entity.RoleCustomer)
		env.orderUC.EXPECT().GetCustomerOrderByCode(mock.Anything, customerID, "BOOM").
			Return(nil, errors.New("pq: connection refused"))

		rec := env.do(http.MethodGet, "/api/customer/orders/BOOM", token, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		_, errData := decode(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", errData.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodGet, "/api/nowhere", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		_, errData := decode(t, rec)
		assert.Equal(t, "ROUTE_NOT_FOUND", errData.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		env := newTestEnv(t)
		large := `{"name":"` + strings.Repeat("x", 2048) + `"}`

		rec := env.do(http.MethodPost, "/api/auth/register", "", large)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestRequestIDIsEchoed(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/nowhere", nil)
	req.Header.Set(echo.HeaderXRequestID, "trace-42")
	rec := httptest.NewRecorder()

	env.echo.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(echo.HeaderXRequestID))
	body, _ := decode(t, rec)
	assert.Equal(t, "trace-42", body.RequestID)
}

func TestRegister(t *testing.T) {
	t.Run("role is upper-cased", func(t *testing.T) {
		env := newTestEnv(t)
		now := time.Now()
		env.authUC.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Role == entity.RoleCustomer && in.Email == "ann@example.com"
		})).Return(entity.NewCustomer("Ann", "ann@example.com", "hash", now), nil)

		rec := env.do(http.MethodPost, "/api/auth/register", "",
			`{"name":"Ann","email":"ann@example.com","password":"Secret#123","role":"customer"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body, _ := decode(t, rec)
		assert.Contains(t, string(body.Data), `"role":"CUSTOMER"`)
		assert.NotContains(t, string(body.Data), "hash")
	})

	t.Run("missing email", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/api/auth/register", "",
			`{"name":"Ann","password":"Secret#123","role":"CUSTOMER"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		_, errData := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", errData.Code)
		assert.Contains(t, errData.Details, "email")
	})

	t.Run("malformed json", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/api/auth/register", "", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		env := newTestEnv(t)
		env.authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyRegistered)

		rec := env.do(http.MethodPost, "/api/auth/register", "",
			`{"name":"Ann","email":"ann@example.com","password":"Secret#123","role":"STORE"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)
	storeID := uuid.New()
	products := []*entity.Product{
		{ID: uuid.New(), StoreID: storeID, Name: "Lamp", Category: entity.CategoryHome, Price: 20, Quantity: 3},
	}
	env.productUC.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(q *usecase.ProductQuery) bool {
		return q.Page == 2 && q.ElementsPerPage == 1 && q.Category == "HOME" && q.StoreID != nil && *q.StoreID == storeID
	})).Return(&entity.Page[*entity.Product]{Content: products, PageNumber: 2, TotalPages: 4, TotalElements: 4}, nil)

	rec := env.do(http.MethodGet, "/api/products?page=2&elementsPerPage=1&category=HOME&storeId="+storeID.String(), "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := decode(t, rec)
	var page struct {
		Content       []map[string]any `json:"content"`
		PageNumber    int              `json:"pageNumber"`
		TotalPages    int              `json:"totalPages"`
		TotalElements int64            `json:"totalElements"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &page))
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 4, page.TotalPages)
	assert.EqualValues(t, 4, page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Lamp", page.Content[0]["name"])
}

func TestListProducts_BadPaging(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/products?page=two", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	t.Run("placed", func(t *testing.T) {
		env := newTestEnv(t)
		customerID := uuid.New()
		productID := uuid.New()
		token := env.login(customerID, entity.RoleCustomer)
		env.orderUC.EXPECT().CreateOrder(mock.Anything, customerID, mock.MatchedBy(func(in *usecase.CreateOrderInput) bool {
			return len(in.Items) == 1 && in.Items[0].ProductID == productID && in.Items[0].Quantity == 2
		})).Return(&entity.Order{ID: uuid.New(), Code: "K7Q2ZP", Status: entity.OrderStatusPending, CustomerID: customerID, Total: 40}, nil)

		rec := env.do(http.MethodPost, "/api/customer/orders", token,
			`{"items":[{"productId":"`+productID.String()+`","quantity":2}],"shippingAddress":"1 Main St"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"orderCode":"K7Q2ZP"`)
	})

	t.Run("empty order", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.login(uuid.New(), entity.RoleCustomer)

		rec := env.do(http.MethodPost, "/api/customer/orders", token, `{"items":[],"shippingAddress":"1 Main St"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.login(uuid.New(), entity.RoleCustomer)

		rec := env.do(http.MethodPost, "/api/customer/orders", token,
			`{"items":[{"productId":"`+uuid.NewString()+`","quantity":0}],"shippingAddress":"1 Main St"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stock shortfall", func(t *testing.T) {
		env := newTestEnv(t)
		customerID := uuid.New()
		token := env.login(customerID, entity.RoleCustomer)
		env.orderUC.EXPECT().CreateOrder(mock.Anything, customerID, mock.Anything).Return(nil, domainerrors.ErrInsufficientStock)

		rec := env.do(http.MethodPost, "/api/customer/orders", token,
			`{"items":[{"productId":"`+uuid.NewString()+`","quantity":9}],"shippingAddress":"1 Main St"}`)

		assert.Equal(t, domainerrors.ErrInsufficientStock.HTTPCode(), rec.Code)
	})
}

func TestOrderQR(t *testing.T) {
	env := newTestEnv(t)
	customerID := uuid.New()
	token := env.login(customerID, entity.RoleCustomer)
	png := []byte{0x89, 'P', 'N', 'G'}
	env.orderUC.EXPECT().GetCustomerOrderQR(mock.Anything, customerID, "K7Q2ZP").Return(png, nil)

	rec := env.do(http.MethodGet, "/api/customer/orders/K7Q2ZP/qr", token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestScanOrder(t *testing.T) {
	t.Run("payload is passed through", func(t *testing.T) {
		env := newTestEnv(t)
		storeID := uuid.New()
		token := env.login(storeID, entity.RoleStore)
		payload := `{"orderId":"0b8a3c1e-8a59-4a53-bd29-2c8a0a0f4f0e","orderCode":"K7Q2ZP"}`
		env.orderUC.EXPECT().GetStoreOrderByCode(mock.Anything, storeID, payload).
			Return(&entity.Order{ID: uuid.New(), Code: "K7Q2ZP", Status: entity.OrderStatusPending}, nil)

		body, err := json.Marshal(map[string]string{"payload": payload})
		require.NoError(t, err)
		rec := env.do(http.MethodPost, "/api/store/scan-order", token, string(body))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"orderCode":"K7Q2ZP"`)
	})

	t.Run("empty payload", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.login(uuid.New(), entity.RoleStore)

		rec := env.do(http.MethodPost, "/api/store/scan-order", token, `{"payload":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("customers cannot scan", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.login(uuid.New(), entity.RoleCustomer)

		rec := env.do(http.MethodPost, "/api/store/scan-order", token, `{"payload":"K7Q2ZP"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestClaimPromotion(t *testing.T) {
	t.Run("claimed", func(t *testing.T) {
		env := newTestEnv(t)
		customerID := uuid.New()
		setID := uuid.New()
		token := env.login(customerID, entity.RoleCustomer)
		now := time.Now()
		env.promotionUC.EXPECT().Claim(mock.Anything, customerID, setID).Return(&entity.ClaimedPromotion{
			Item: &entity.PromotionItem{ID: uuid.New(), SetID: setID, CustomerID: &customerID, ClaimedAt: &now},
			Set:  &entity.PromotionSet{ID: setID, Kind: entity.PromotionKindVoucherSet, Code: "SPRING", Percent: 10},
		}, nil)

		rec := env.do(http.MethodPost, "/api/customer/promotions/"+setID.String()+"/claim", token, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"SPRING"`)
	})

	t.Run("sold out", func(t *testing.T) {
		env := newTestEnv(t)
		customerID := uuid.New()
		setID := uuid.New()
		token := env.login(customerID, entity.RoleCustomer)
		env.promotionUC.EXPECT().Claim(mock.Anything, customerID, setID).Return(nil, domainerrors.ErrNoAvailableItem)

		rec := env.do(http.MethodPost, "/api/customer/promotions/"+setID.String()+"/claim", token, "")

		assert.Equal(t, domainerrors.ErrNoAvailableItem.HTTPCode(), rec.Code)
		_, errData := decode(t, rec)
		assert.Equal(t, domainerrors.ErrNoAvailableItem.ErrorCode(), errData.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.login(uuid.New(), entity.RoleCustomer)

		rec := env.do(http.MethodPost, "/api/customer/promotions/not-a-uuid/claim", token, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPromotionSetScopeFollowsRole(t *testing.T) {
	env := newTestEnv(t)
	storeID := uuid.New()
	token := env.login(storeID, entity.RoleStore)
	env.promotionUC.EXPECT().ListSets(mock.Anything, mock.MatchedBy(func(scope entity.PromotionScope) bool {
		return scope.Kind == entity.PromotionKindCouponSet && scope.StoreID != nil && *scope.StoreID == storeID
	}), mock.Anything).Return(&entity.Page[*entity.PromotionSet]{}, nil)

	rec := env.do(http.MethodGet, "/api/store/coupon-sets", token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPromotionQuantityBounds(t *testing.T) {
	setPath := "/api/store/coupon-sets/" + uuid.New().String()
	validSet := func(quantity string) string {
		return `{"code":"SPRING","percent":10,"quantity":` + quantity + `,"expiredAt":"2030-01-01T00:00:00Z"}`
	}

	tests := []struct {
		name string
		path string
		body string
	}{
		{"add above limit", setPath + "/add", `{"quantity":10001}`},
		{"add huge", setPath + "/add", `{"quantity":4611686018427387904}`},
		{"subtract above limit", setPath + "/subtract", `{"quantity":10001}`},
		{"create without items", "/api/store/coupon-sets", validSet("0")},
		{"create above limit", "/api/store/coupon-sets", validSet("10001")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			token := env.login(uuid.New(), entity.RoleStore)

			rec := env.do(http.MethodPost, tt.path, token, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			_, errData := decode(t, rec)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errData.Code)
		})
	}
}

func TestNotificationInbox(t *testing.T) {
	t.Run("unread filter", func(t *testing.T) {
		env := newTestEnv(t)
		customerID := uuid.New()
		token := env.login(customerID, entity.RoleCustomer)
		env.inboxUC.EXPECT().ListNotifications(mock.Anything, customerID, true, usecase.PageInput{}).
			Return(entity.NewPage([]*entity.Notification{{ID: uuid.New(), Title: "Order update"}}, entity.PageRequest{Size: 10}, 1), nil)

		rec := env.do(http.MethodGet, "/api/customer/notifications?unread=true", token, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalElements":1`)
	})

	t.Run("bad unread flag", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.login(uuid.New(), entity.RoleCustomer)

		rec := env.do(http.MethodGet, "/api/customer/notifications?unread=maybe", token, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unread count", func(t *testing.T) {
		env := newTestEnv(t)
		customerID := uuid.New()
		token := env.login(customerID, entity.RoleCustomer)
		env.inboxUC.EXPECT().CountUnread(mock.Anything, customerID).Return(int64(3), nil)

		rec := env.do(http.MethodGet, "/api/customer/notifications/unread-count", token, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"unread":3`)
	})

	t.Run("read all", func(t *testing.T) {
		env := newTestEnv(t)
		customerID := uuid.New()
		token := env.login(customerID, entity.RoleCustomer)
		env.inboxUC.EXPECT().MarkAllRead(mock.Anything, customerID).Return(int64(2), nil)

		rec := env.do(http.MethodPut, "/api/customer/notifications/read-all", token, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"updated":2`)
	})
}
