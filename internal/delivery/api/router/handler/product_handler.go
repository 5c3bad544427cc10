package handler

import (
	"log/slog"
	"strings"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves catalog, product management and search endpoints.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Category    string   `json:"category" validate:"required,category"`
	Price       float64  `json:"price" validate:"gte=0"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	Images      []string `json:"images" validate:"omitempty,dive,max=2048"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Category    *string  `json:"category" validate:"omitempty,category"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	Images      []string `json:"images" validate:"omitempty,dive,max=2048"`
}

// productQuery reads the catalog filters shared by every listing.
func productQuery(c echo.Context) (*usecase.ProductQuery, error) {
	page, err := pageQuery(c)
	if err != nil {
		return nil, err
	}
	storeID, err := optionalUUIDQuery(c, "storeId")
	if err != nil {
		return nil, err
	}

	return &usecase.ProductQuery{
		PageInput: page,
		Category:  c.QueryParam("category"),
		StoreID:   storeID,
		Keyword:   c.QueryParam("keyword"),
	}, nil
}

func (h *ProductHandler) list(c echo.Context, query *usecase.ProductQuery) error {
	products, err := h.productUC.ListProducts(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(products, toProductResponse), "")
}

// ListProducts handles GET /api/products and GET /api/admin/manage-products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	query, err := productQuery(c)
	if err != nil {
		return err
	}

	return h.list(c, query)
}

// ListStoreProducts handles GET /api/stores/:id/products.
func (h *ProductHandler) ListStoreProducts(c echo.Context) error {
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	query, err := productQuery(c)
	if err != nil {
		return err
	}
	query.StoreID = &storeID

	return h.list(c, query)
}

// ListOwnProducts handles GET /api/store/products.
func (h *ProductHandler) ListOwnProducts(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	query, err := productQuery(c)
	if err != nil {
		return err
	}
	query.StoreID = &p.UserID

	return h.list(c, query)
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toProductDetailResponse(detail), "")
}

// CreateProduct handles POST /api/store/products.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), p.UserID, &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    entity.Category(strings.ToUpper(req.Category)),
		Price:       req.Price,
		Quantity:    req.Quantity,
		Images:      req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toProductResponse(product), "Product created")
}

// UpdateOwnProduct handles PUT /api/store/products/:id.
func (h *ProductHandler) UpdateOwnProduct(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	return h.update(c, &p.UserID)
}

// UpdateAnyProduct handles PUT /api/admin/manage-products/:id.
func (h *ProductHandler) UpdateAnyProduct(c echo.Context) error {
	return h.update(c, nil)
}

func (h *ProductHandler) update(c echo.Context, storeID *uuid.UUID) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Images:      req.Images,
	}
	if req.Category != nil {
		category := entity.Category(strings.ToUpper(*req.Category))
		input.Category = &category
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), storeID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toProductResponse(product), "Product updated")
}

// DeleteOwnProduct handles DELETE /api/store/products/:id.
func (h *ProductHandler) DeleteOwnProduct(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	return h.delete(c, &p.UserID)
}

// DeleteAnyProduct handles DELETE /api/admin/delete-product/:id.
func (h *ProductHandler) DeleteAnyProduct(c echo.Context) error {
	return h.delete(c, nil)
}

func (h *ProductHandler) delete(c echo.Context, storeID *uuid.UUID) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), storeID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Product deleted")
}

// SearchProducts handles GET /api/customer/search?keyword=.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	query, err := productQuery(c)
	if err != nil {
		return err
	}

	products, err := h.productUC.SearchProducts(c.Request().Context(), p.UserID, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(products, toProductResponse), "")
}

// LatestSearches handles GET /api/customer/search/history.
func (h *ProductHandler) LatestSearches(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	history, err := h.productUC.LatestSearches(c.Request().Context(), p.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(history, toSearchHistoryResponse), "")
}

// DeleteSearch handles DELETE /api/customer/search/history/:id.
func (h *ProductHandler) DeleteSearch(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	searchID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteSearch(c.Request().Context(), p.UserID, searchID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Search entry deleted")
}
