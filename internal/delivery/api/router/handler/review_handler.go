package handler

import (
	"log/slog"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves product reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

type ReviewRequest struct {
	Rating  int      `json:"rating" validate:"gte=1,lte=5"`
	Comment string   `json:"comment" validate:"max=2000"`
	Images  []string `json:"images" validate:"omitempty,max=10,dive,max=2048"`
}

type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	ReviewRequest
}

func (r *ReviewRequest) toInput() *usecase.ReviewInput {
	return &usecase.ReviewInput{
		Rating:  r.Rating,
		Comment: r.Comment,
		Images:  r.Images,
	}
}

// CreateReview handles POST /api/customer/reviews.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), p.UserID, req.ProductID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toReviewResponse(review), "Review created")
}

// UpdateReview handles PUT /api/customer/reviews/:id.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), p.UserID, reviewID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toReviewResponse(review), "Review updated")
}

// DeleteMyReview handles DELETE /api/customer/reviews/:id.
func (h *ReviewHandler) DeleteMyReview(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), p.UserID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Review deleted")
}

// DeleteAnyReview handles DELETE /api/admin/reviews/:id.
func (h *ReviewHandler) DeleteAnyReview(c echo.Context) error {
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.DeleteAnyReview(c.Request().Context(), reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Review deleted")
}

// ListMyReviews handles GET /api/customer/reviews.
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListMyReviews(c.Request().Context(), p.UserID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(reviews, toReviewResponse), "")
}

// ListProductReviews handles GET /api/products/:id/reviews.
func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListProductReviews(c.Request().Context(), productID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(reviews, toReviewResponse), "")
}
