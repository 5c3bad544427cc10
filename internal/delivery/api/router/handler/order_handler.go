package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order placement and order reads for every role.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
}

type CreateOrderRequest struct {
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string             `json:"shippingAddress" validate:"required,max=255"`
	VoucherItemID   *uuid.UUID         `json:"voucherItemId"`
	CouponItemID    *uuid.UUID         `json:"couponItemId"`
}

type UpdateOrderStatusRequest struct {
	OrderID           uuid.UUID  `json:"orderId" validate:"required"`
	Status            string     `json:"status" validate:"required,orderstatus"`
	DeliveryPartnerID *uuid.UUID `json:"deliveryPartnerId"`
}

// orderQuery reads status, from, to and customerName on top of paging.
func orderQuery(c echo.Context) (*usecase.OrderQuery, error) {
	page, err := pageQuery(c)
	if err != nil {
		return nil, err
	}

	return &usecase.OrderQuery{
		PageInput:      page,
		DateRangeInput: dateRangeQuery(c),
		Status:         c.QueryParam("status"),
		CustomerName:   c.QueryParam("customerName"),
	}, nil
}

func ordersPage(c echo.Context, orders *entity.Page[*entity.Order]) error {
	return response.OK(c, response.NewPageData(orders, toOrderResponse), "")
}

// CreateOrder handles POST /api/customer/orders.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lines := make([]usecase.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.OrderLineInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), p.UserID, &usecase.CreateOrderInput{
		Items:           lines,
		ShippingAddress: req.ShippingAddress,
		VoucherItemID:   req.VoucherItemID,
		CouponItemID:    req.CouponItemID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toOrderResponse(order), "Order placed")
}

// ListMyOrders handles GET /api/customer/orders.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListCustomerOrders(c.Request().Context(), p.UserID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return ordersPage(c, orders)
}

// GetMyOrderByCode handles GET /api/customer/orders/:orderCode.
func (h *OrderHandler) GetMyOrderByCode(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetCustomerOrderByCode(c.Request().Context(), p.UserID, c.Param("orderCode"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toOrderResponse(order), "")
}

// GetMyOrderQR handles GET /api/customer/orders/:orderCode/qr and answers a PNG.
func (h *OrderHandler) GetMyOrderQR(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	png, err := h.orderUC.GetCustomerOrderQR(c.Request().Context(), p.UserID, c.Param("orderCode"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListStoreOrders handles GET /api/store/orders.
func (h *OrderHandler) ListStoreOrders(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	query, err := orderQuery(c)
	if err != nil {
		return err
	}

	return h.listStoreOrders(c, p.UserID, query)
}

// SearchOrderByCustomerName handles GET /api/store/search-order-by-customer-name/:customerName.
func (h *OrderHandler) SearchOrderByCustomerName(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	query, err := orderQuery(c)
	if err != nil {
		return err
	}
	query.CustomerName = c.Param("customerName")

	return h.listStoreOrders(c, p.UserID, query)
}

func (h *OrderHandler) listStoreOrders(c echo.Context, storeID uuid.UUID, query *usecase.OrderQuery) error {
	orders, err := h.orderUC.ListStoreOrders(c.Request().Context(), storeID, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return ordersPage(c, orders)
}

// CountStoreOrders handles GET /api/store/orders-count.
func (h *OrderHandler) CountStoreOrders(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	count, err := h.orderUC.CountStoreOrders(c.Request().Context(), p.UserID, dateRangeQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &OrderCountResponse{Total: count.Total, ByStatus: count.ByStatus}, "")
}

// GetStoreOrder handles GET /api/store/orders/:orderId.
func (h *OrderHandler) GetStoreOrder(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetStoreOrder(c.Request().Context(), p.UserID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toOrderResponse(order), "")
}

// SearchOrderByCode handles GET /api/store/search-order-by-code/:orderCode.
func (h *OrderHandler) SearchOrderByCode(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetStoreOrderByCode(c.Request().Context(), p.UserID, c.Param("orderCode"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toOrderResponse(order), "")
}

// ScanOrderRequest carries the text read from a customer's order QR.
type ScanOrderRequest struct {
	Payload string `json:"payload" validate:"required,max=512"`
}

// ScanOrder handles POST /api/store/scan-order.
func (h *OrderHandler) ScanOrder(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req ScanOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.GetStoreOrderByCode(c.Request().Context(), p.UserID, req.Payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toOrderResponse(order), "")
}

// UpdateOrderStatus handles PUT /api/store/update-status-order.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), p.UserID, &usecase.UpdateOrderStatusInput{
		OrderID:           req.OrderID,
		Status:            entity.OrderStatus(strings.ToUpper(req.Status)),
		DeliveryPartnerID: req.DeliveryPartnerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toOrderResponse(order), "Order status updated")
}

// ListAllOrders handles GET /api/admin/orders.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	query, err := orderQuery(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListAllOrders(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return ordersPage(c, orders)
}
