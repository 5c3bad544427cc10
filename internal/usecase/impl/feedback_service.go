package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	pager        pager
	logger       *slog.Logger
	now          func() time.Time
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: params.FeedbackRepo,
		pager:        newPager(params.Config),
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *feedbackService) Submit(ctx context.Context, authorID uuid.UUID, authorRole entity.Role, input *usecase.FeedbackInput) (*entity.Feedback, error) {
	if authorRole != entity.RoleCustomer && authorRole != entity.RoleStore {
		return nil, domainerrors.ErrForbidden.WithDetails("only customers and stores send feedback")
	}

	feedback := &entity.Feedback{
		ID:         uuid.New(),
		AuthorID:   authorID,
		AuthorRole: authorRole,
		Title:      strings.TrimSpace(input.Title),
		Content:    strings.TrimSpace(input.Content),
		CreatedAt:  srv.now(),
	}
	if feedback.Title == "" || feedback.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and content are required")
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	srv.log(ctx).Info("Feedback submitted", slog.Any("feedbackID", feedback.ID), slog.String("role", string(authorRole)))

	return feedback, nil
}

func (srv *feedbackService) List(ctx context.Context, status entity.FeedbackStatusFilter, in usecase.PageInput) (*entity.Page[*entity.Feedback], error) {
	status = entity.FeedbackStatusFilter(strings.ToLower(strings.TrimSpace(string(status))))
	if status == "" {
		status = entity.FeedbackStatusAll
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("unknown feedback status %q", status)
	}

	page, err := srv.pager.request(in)
	if err != nil {
		return nil, err
	}

	criteria := repository.NewCriteria()
	switch status {
	case entity.FeedbackStatusResolved:
		criteria.Equal(repository.FieldResolved, true)
	case entity.FeedbackStatusUnresolved:
		criteria.Equal(repository.FieldResolved, false)
	}

	feedbacks, total, err := srv.feedbackRepo.List(ctx, criteria, page)
	if err != nil {
		return nil, translateListError(err, "failed to list feedback")
	}

	return entity.NewPage(feedbacks, page, total), nil
}

func (srv *feedbackService) Get(ctx context.Context, feedbackID uuid.UUID) (*entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFeedbackNotFound, "find feedback")
		}

		return nil, errors.Wrap(err, "failed to find feedback")
	}

	return feedback, nil
}

// Resolve keeps the first resolution time when called again.
func (srv *feedbackService) Resolve(ctx context.Context, feedbackID uuid.UUID) (*entity.Feedback, error) {
	feedback, err := srv.Get(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if feedback.Resolved {
		return feedback, nil
	}

	now := srv.now()
	if err := srv.feedbackRepo.MarkResolved(ctx, feedbackID, now); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFeedbackNotFound, "resolve feedback")
		}

		return nil, errors.Wrap(err, "failed to resolve feedback")
	}

	feedback.Resolved = true
	feedback.ResolvedAt = &now

	return feedback, nil
}

func (srv *feedbackService) Delete(ctx context.Context, feedbackID uuid.UUID) error {
	if err := srv.feedbackRepo.Delete(ctx, feedbackID); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return errors.Wrap(domainerrors.ErrFeedbackNotFound, "delete feedback")
		}

		return errors.Wrap(err, "failed to delete feedback")
	}

	return nil
}
