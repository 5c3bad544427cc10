package handler

import (
	"log/slog"
	"strings"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
	Logger     *slog.Logger
}

// FeedbackHandler serves feedback submission and admin moderation.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler.
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: params.FeedbackUC,
		logger:     params.Logger,
	}
}

type FeedbackRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required,max=5000"`
}

// Submit handles POST /api/customer/feedbacks and POST /api/store/feedbacks.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req FeedbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	feedback, err := h.feedbackUC.Submit(c.Request().Context(), p.UserID, p.Role, &usecase.FeedbackInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toFeedbackResponse(feedback), "Feedback sent")
}

// List handles GET /api/admin/feedbacks?status=.
func (h *FeedbackHandler) List(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	status := entity.FeedbackStatusFilter(strings.ToLower(c.QueryParam("status")))
	feedbacks, err := h.feedbackUC.List(c.Request().Context(), status, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(feedbacks, toFeedbackResponse), "")
}

// Get handles GET /api/admin/feedbacks/:id.
func (h *FeedbackHandler) Get(c echo.Context) error {
	feedbackID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	feedback, err := h.feedbackUC.Get(c.Request().Context(), feedbackID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toFeedbackResponse(feedback), "")
}

// Resolve handles PUT /api/admin/feedbacks/:id/resolve.
func (h *FeedbackHandler) Resolve(c echo.Context) error {
	feedbackID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	feedback, err := h.feedbackUC.Resolve(c.Request().Context(), feedbackID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toFeedbackResponse(feedback), "Feedback resolved")
}

// Delete handles DELETE /api/admin/feedbacks/:id.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	feedbackID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.feedbackUC.Delete(c.Request().Context(), feedbackID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Feedback deleted")
}
