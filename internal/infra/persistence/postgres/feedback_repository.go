package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var feedbackColumns = columnMap{
	repository.FieldResolved:  "resolved",
	repository.FieldCreatedAt: "created_at",
}

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

func (repo *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&feedbackM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedbackNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback by id")
	}

	return toFeedbackDomain(&feedbackM), nil
}

func (repo *feedbackRepository) List(ctx context.Context, criteria *repository.Criteria, page entity.PageRequest) ([]*entity.Feedback, int64, error) {
	query, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.FeedbackModel{}), criteria, feedbackColumns)
	if err != nil {
		return nil, 0, err
	}

	rows, total, err := findPage[model.FeedbackModel](query, page, feedbackColumns, repository.FieldCreatedAt)
	if err != nil {
		return nil, 0, err
	}

	feedbacks := make([]*entity.Feedback, 0, len(rows))
	for _, feedbackM := range rows {
		feedbacks = append(feedbacks, toFeedbackDomain(feedbackM))
	}

	return feedbacks, total, nil
}

// MarkResolved only touches unresolved rows, so a repeat keeps the first resolved_at.
func (repo *feedbackRepository) MarkResolved(ctx context.Context, id uuid.UUID, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Where("id = ? AND resolved = ?", id, false).
		Updates(map[string]any{"resolved": true, "resolved_at": now})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to resolve feedback")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check feedback")
	}
	if count == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

func (repo *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FeedbackModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete feedback")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		AuthorRole: entity.Role(data.AuthorRole),
		Title:      data.Title,
		Content:    data.Content,
		Resolved:   data.Resolved,
		ResolvedAt: data.ResolvedAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		AuthorRole: string(data.AuthorRole),
		Title:      data.Title,
		Content:    data.Content,
		Resolved:   data.Resolved,
		ResolvedAt: data.ResolvedAt,
		CreatedAt:  data.CreatedAt,
	}
}
