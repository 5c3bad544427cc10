package handler

import (
	"log/slog"
	"strings"
	"time"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PromotionUC usecase.PromotionUsecase
	Logger      *slog.Logger
}

// PromotionHandler serves voucher sets (admin), coupon sets (store) and
// claiming (customer). The management scope follows the caller's role.
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
	logger      *slog.Logger
}

// NewPromotionHandler is the constructor for PromotionHandler.
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{
		promotionUC: params.PromotionUC,
		logger:      params.Logger,
	}
}

type PromotionSetRequest struct {
	Code        string    `json:"code" validate:"required,max=64"`
	Description string    `json:"description" validate:"max=1000"`
	Percent     float64   `json:"percent" validate:"gt=0,lte=100"`
	Quantity    int       `json:"quantity" validate:"gte=1,lte=10000"`
	StartAt     time.Time `json:"startAt"`
	ExpiredAt   time.Time `json:"expiredAt" validate:"required"`
}

type ItemQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=1,lte=10000"`
}

func (r *PromotionSetRequest) toInput() *usecase.PromotionSetInput {
	return &usecase.PromotionSetInput{
		Code:        r.Code,
		Description: r.Description,
		Percent:     r.Percent,
		Quantity:    r.Quantity,
		StartAt:     r.StartAt,
		ExpiredAt:   r.ExpiredAt,
	}
}

// scope maps the caller to the sets it manages.
func scope(c echo.Context) (entity.PromotionScope, error) {
	p, err := principal(c)
	if err != nil {
		return entity.PromotionScope{}, err
	}

	switch p.Role {
	case entity.RoleAdmin:
		return entity.VoucherScope(), nil
	case entity.RoleStore:
		return entity.CouponScope(p.UserID), nil
	default:
		return entity.PromotionScope{}, domainerrors.ErrForbidden
	}
}

// CreateSet handles POST /api/admin/voucher-sets and POST /api/store/coupon-sets.
func (h *PromotionHandler) CreateSet(c echo.Context) error {
	sc, err := scope(c)
	if err != nil {
		return err
	}

	var req PromotionSetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	set, err := h.promotionUC.CreateSet(c.Request().Context(), sc, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toPromotionSetResponse(set), "Promotion set created")
}

// UpdateSet handles PUT .../voucher-sets/:id and .../coupon-sets/:id.
func (h *PromotionHandler) UpdateSet(c echo.Context) error {
	sc, err := scope(c)
	if err != nil {
		return err
	}
	setID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req PromotionSetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	set, err := h.promotionUC.UpdateSet(c.Request().Context(), sc, setID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toPromotionSetResponse(set), "Promotion set updated")
}

// GetSet handles GET .../voucher-sets/:id and .../coupon-sets/:id.
func (h *PromotionHandler) GetSet(c echo.Context) error {
	sc, err := scope(c)
	if err != nil {
		return err
	}
	setID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	set, err := h.promotionUC.GetSet(c.Request().Context(), sc, setID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toPromotionSetResponse(set), "")
}

// ListSets handles GET .../voucher-sets and .../coupon-sets.
func (h *PromotionHandler) ListSets(c echo.Context) error {
	sc, err := scope(c)
	if err != nil {
		return err
	}
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	sets, err := h.promotionUC.ListSets(c.Request().Context(), sc, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(sets, toPromotionSetResponse), "")
}

// DeleteSet handles DELETE .../voucher-sets/:id and .../coupon-sets/:id.
func (h *PromotionHandler) DeleteSet(c echo.Context) error {
	sc, err := scope(c)
	if err != nil {
		return err
	}
	setID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.promotionUC.DeleteSet(c.Request().Context(), sc, setID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Promotion set deleted")
}

// AddItems handles POST .../:id/add.
func (h *PromotionHandler) AddItems(c echo.Context) error {
	sc, err := scope(c)
	if err != nil {
		return err
	}
	setID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ItemQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	set, err := h.promotionUC.AddItems(c.Request().Context(), sc, setID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toPromotionSetResponse(set), "Items added")
}

// SubtractItems handles POST .../:id/subtract.
func (h *PromotionHandler) SubtractItems(c echo.Context) error {
	sc, err := scope(c)
	if err != nil {
		return err
	}
	setID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ItemQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	removed, err := h.promotionUC.SubtractItems(c.Request().Context(), sc, setID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(removed, toPromotionItemResponse), "Items removed")
}

// ListItems handles GET .../:id/items?status=.
func (h *PromotionHandler) ListItems(c echo.Context) error {
	sc, err := scope(c)
	if err != nil {
		return err
	}
	setID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	status := entity.PromotionItemStatus(c.QueryParam("status"))
	items, err := h.promotionUC.ListItems(c.Request().Context(), sc, setID, status, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(items, toPromotionItemResponse), "")
}

// DeleteItem handles DELETE /api/admin/vouchers/:id and /api/store/coupons/:id.
func (h *PromotionHandler) DeleteItem(c echo.Context) error {
	sc, err := scope(c)
	if err != nil {
		return err
	}
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.promotionUC.DeleteItem(c.Request().Context(), sc, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Item deleted")
}

// kindQuery reads an optional kind filter, defaulting to def.
func kindQuery(c echo.Context, def *entity.PromotionKind) (*entity.PromotionKind, error) {
	raw := strings.ToUpper(c.QueryParam("kind"))
	if raw == "" || strings.EqualFold(raw, "all") {
		return def, nil
	}

	kind := entity.PromotionKind(raw)
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("kind must be VOUCHER_SET or COUPON_SET")
	}

	return &kind, nil
}

// ListClaimableSets handles GET /api/customer/promotions?kind=.
func (h *PromotionHandler) ListClaimableSets(c echo.Context) error {
	voucher := entity.PromotionKindVoucherSet
	kind, err := kindQuery(c, &voucher)
	if err != nil {
		return err
	}
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	sets, err := h.promotionUC.ListClaimableSets(c.Request().Context(), *kind, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(sets, toPromotionSetResponse), "")
}

// Claim handles POST /api/customer/promotions/:id/claim.
func (h *PromotionHandler) Claim(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	setID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	claimed, err := h.promotionUC.Claim(c.Request().Context(), p.UserID, setID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toClaimedPromotionResponse(claimed), "Promotion claimed")
}

// ListMyPromotions handles GET /api/customer/promotions/mine?kind=.
func (h *PromotionHandler) ListMyPromotions(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	kind, err := kindQuery(c, nil)
	if err != nil {
		return err
	}

	claimed, err := h.promotionUC.ListCustomerPromotions(c.Request().Context(), p.UserID, kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(claimed, toClaimedPromotionResponse), "")
}
