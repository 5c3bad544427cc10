package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFeedbackService(t *testing.T) (usecase.FeedbackUsecase, *mockRepo.MockFeedbackRepository) {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)

	svc := NewFeedbackService(FeedbackServiceParams{
		FeedbackRepo: feedbackRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	svc.(*feedbackService).now = func() time.Time { return testNow }

	return svc, feedbackRepo
}

func TestFeedbackService_Submit(t *testing.T) {
	svc, feedbackRepo := createTestFeedbackService(t)
	ctx := context.Background()
	authorID := uuid.New()

	feedbackRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Feedback")).Return(nil)

	feedback, err := svc.Submit(ctx, authorID, entity.RoleStore, &usecase.FeedbackInput{Title: "Payout", Content: "Late again"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStore, feedback.AuthorRole)
	assert.False(t, feedback.Resolved)

	_, err = svc.Submit(ctx, authorID, entity.RoleAdmin, &usecase.FeedbackInput{Title: "x", Content: "y"})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = svc.Submit(ctx, authorID, entity.RoleCustomer, &usecase.FeedbackInput{Title: " "})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFeedbackService_List_StatusFilter(t *testing.T) {
	tests := []struct {
		status   entity.FeedbackStatusFilter
		resolved any
	}{
		{entity.FeedbackStatusResolved, true},
		{entity.FeedbackStatusUnresolved, false},
		{entity.FeedbackStatusAll, nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			svc, feedbackRepo := createTestFeedbackService(t)
			ctx := context.Background()

			feedbackRepo.EXPECT().
				List(ctx, mock.MatchedBy(func(c *repository.Criteria) bool {
					if tt.resolved == nil {
						return len(c.Predicates()) == 0
					}
					p := c.Predicates()

					return len(p) == 1 && p[0].Field == repository.FieldResolved && p[0].Value == tt.resolved
				}), mock.Anything).
				Return(nil, int64(0), nil)

			_, err := svc.List(ctx, tt.status, usecase.PageInput{})

			require.NoError(t, err)
		})
	}
}

func TestFeedbackService_Resolve_IsIdempotent(t *testing.T) {
	svc, feedbackRepo := createTestFeedbackService(t)
	ctx := context.Background()

	resolvedAt := testNow.Add(-time.Hour)
	done := &entity.Feedback{ID: uuid.New(), Resolved: true, ResolvedAt: &resolvedAt}
	open := &entity.Feedback{ID: uuid.New()}

	feedbackRepo.EXPECT().FindByID(ctx, done.ID).Return(done, nil)
	feedbackRepo.EXPECT().FindByID(ctx, open.ID).Return(open, nil)
	feedbackRepo.EXPECT().MarkResolved(ctx, open.ID, testNow).Return(nil)

	again, err := svc.Resolve(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, resolvedAt, *again.ResolvedAt)

	first, err := svc.Resolve(ctx, open.ID)
	require.NoError(t, err)
	assert.True(t, first.Resolved)
	assert.Equal(t, testNow, *first.ResolvedAt)
}

func TestFeedbackService_Delete_NotFound(t *testing.T) {
	svc, feedbackRepo := createTestFeedbackService(t)
	ctx := context.Background()
	id := uuid.New()

	feedbackRepo.EXPECT().Delete(ctx, id).Return(repository.ErrFeedbackNotFound)

	assert.True(t, errors.Is(svc.Delete(ctx, id), domainerrors.ErrFeedbackNotFound))
}
