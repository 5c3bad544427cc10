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

var reviewColumns = columnMap{
	repository.FieldRating:    "rating",
	repository.FieldCreatedAt: "created_at",
	repository.FieldUpdatedAt: "updated_at",
}

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a review. The unique index on (customer_id, product_id)
// catches a concurrent duplicate the use case pre-check missed.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) ExistsByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check review")
	}

	return count > 0, nil
}

func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":     review.Rating,
			"comment":    review.Comment,
			"images":     gormJSON(nonNilStrings(review.Images)),
			"updated_at": now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	review.UpdatedAt = now

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (repo *reviewRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reviews of product")
	}

	return result.RowsAffected, nil
}

func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID, page entity.PageRequest) ([]*entity.Review, int64, error) {
	return repo.list(repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Where("product_id = ?", productID), page)
}

func (repo *reviewRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, page entity.PageRequest) ([]*entity.Review, int64, error) {
	return repo.list(repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Where("customer_id = ?", customerID), page)
}

func (repo *reviewRepository) list(query *gorm.DB, page entity.PageRequest) ([]*entity.Review, int64, error) {
	rows, total, err := findPage[model.ReviewModel](query, page, reviewColumns, repository.FieldCreatedAt)
	if err != nil {
		return nil, 0, err
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for _, reviewM := range rows {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, total, nil
}

// SummarizeByProduct averages the ratings of a product; no reviews gives zeros.
func (repo *reviewRepository) SummarizeByProduct(ctx context.Context, productID uuid.UUID) (entity.RatingSummary, error) {
	var row struct {
		Average float64
		Count   int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&row).Error; err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to summarize ratings")
	}

	return entity.RatingSummary{Average: row.Average, Count: row.Count}, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:           data.ID,
		ProductID:    data.ProductID,
		CustomerID:   data.CustomerID,
		CustomerName: data.CustomerName,
		Rating:       data.Rating,
		Comment:      data.Comment,
		Images:       nonNilStrings(data.Images),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		ProductID:    data.ProductID,
		CustomerID:   data.CustomerID,
		CustomerName: data.CustomerName,
		Rating:       data.Rating,
		Comment:      data.Comment,
		Images:       nonNilStrings(data.Images),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
