package handler

import (
	"log/slog"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves profile, user administration and store directory endpoints.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

type UpdateAccountRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=100"`
	AvatarURL    *string  `json:"avatarUrl" validate:"omitempty,max=2048"`
	PhoneNumber  *string  `json:"phoneNumber" validate:"omitempty,max=32"`
	Addresses    []string `json:"addresses" validate:"omitempty,dive,max=255"`
	Description  *string  `json:"description" validate:"omitempty,max=2000"`
	Address      *string  `json:"address" validate:"omitempty,max=255"`
	City         *string  `json:"city" validate:"omitempty,max=100"`
	VehiclePlate *string  `json:"vehiclePlate" validate:"omitempty,max=32"`
}

type ChangeAccessRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Locked *bool     `json:"locked" validate:"required"`
}

type CreateDeliveryPartnerRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,max=32"`
	VehiclePlate string `json:"vehiclePlate" validate:"required,max=32"`
}

// GetAccount handles GET /api/{role}/account.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	user, err := h.accountUC.GetAccount(c.Request().Context(), p.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponse(user), "")
}

// UpdateAccount handles PUT /api/{role}/account.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req UpdateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.UpdateAccount(c.Request().Context(), p.UserID, &usecase.UpdateAccountInput{
		Name:         req.Name,
		AvatarURL:    req.AvatarURL,
		PhoneNumber:  req.PhoneNumber,
		Addresses:    req.Addresses,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		VehiclePlate: req.VehiclePlate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponse(user), "Account updated successfully")
}

// ListUsers handles GET /api/admin/manage-accounts.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	return h.listUsers(c, "", "")
}

// SearchUserByName handles GET /api/admin/search-user-by-name?name=.
func (h *AccountHandler) SearchUserByName(c echo.Context) error {
	return h.listUsers(c, c.QueryParam("name"), "")
}

// SearchUserByEmail handles GET /api/admin/search-user-by-email?email=.
func (h *AccountHandler) SearchUserByEmail(c echo.Context) error {
	return h.listUsers(c, "", c.QueryParam("email"))
}

func (h *AccountHandler) listUsers(c echo.Context, name, email string) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	users, err := h.accountUC.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		PageInput: page,
		Status:    c.QueryParam("status"),
		Role:      c.QueryParam("role"),
		Name:      name,
		Email:     email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(users, toUserResponse), "")
}

// GetUser handles GET /api/admin/manage-accounts/:id.
func (h *AccountHandler) GetUser(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.accountUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponse(user), "")
}

// ChangeAccess handles PUT /api/admin/manage-accounts.
func (h *AccountHandler) ChangeAccess(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req ChangeAccessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.ChangeAccess(c.Request().Context(), p.UserID, &usecase.ChangeAccessInput{
		UserID: req.UserID,
		Locked: *req.Locked,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Account unlocked"
	if user.Locked {
		message = "Account locked"
	}

	return response.OK(c, toUserResponse(user), message)
}

// CreateDeliveryPartner handles POST /api/admin/app-setting/delivery-partners.
func (h *AccountHandler) CreateDeliveryPartner(c echo.Context) error {
	var req CreateDeliveryPartnerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.CreateDeliveryPartner(c.Request().Context(), &usecase.CreateDeliveryPartnerInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		VehiclePlate: req.VehiclePlate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toUserResponse(user), "Delivery partner created")
}

// GetStore handles GET /api/stores/:id.
func (h *AccountHandler) GetStore(c echo.Context) error {
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	store, err := h.accountUC.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toStoreResponse(store), "")
}

// SearchStores handles GET /api/stores?name=.
func (h *AccountHandler) SearchStores(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	stores, err := h.accountUC.SearchStores(c.Request().Context(), c.QueryParam("name"), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(stores, toStoreResponse), "")
}

// StoreResponse is the public view of a store account.
type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
}

func toStoreResponse(u *entity.User) *StoreResponse {
	resp := &StoreResponse{
		ID:        u.ID,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
	if u.Store != nil {
		resp.Description = u.Store.Description
		resp.Address = u.Store.Address
		resp.City = u.Store.City
	}

	return resp
}
