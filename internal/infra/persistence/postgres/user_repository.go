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
	"gorm.io/gorm/clause"
)

var userColumns = columnMap{
	repository.FieldName:      "name",
	repository.FieldEmail:     "email",
	repository.FieldRole:      "role",
	repository.FieldLocked:    "locked",
	repository.FieldCreatedAt: "created_at",
	repository.FieldUpdatedAt: "updated_at",
}

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

func (repo *userRepository) withProfiles(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("CustomerProfile.Cart").
		Preload("StoreProfile").
		Preload("DeliveryPartnerProfile")
}

// Create persists a new user together with its role profile. GORM inserts the
// associations in the same statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID, preloading the role profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.withProfiles(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email address, case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.withProfiles(ctx).
		Where("email = LOWER(?)", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = LOWER(?)", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email")
	}

	return count > 0, nil
}

// Update saves the mutable account columns and upserts the profile of the user's role.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.UpdatedAt = time.Now()

	if err := repo.updateColumns(ctx, user.ID, map[string]any{
		"name":       userM.Name,
		"avatar_url": userM.AvatarURL,
		"updated_at": userM.UpdatedAt,
	}); err != nil {
		return err
	}

	var profile any
	switch {
	case userM.CustomerProfile != nil:
		userM.CustomerProfile.UpdatedAt = userM.UpdatedAt
		profile = userM.CustomerProfile
	case userM.StoreProfile != nil:
		userM.StoreProfile.UpdatedAt = userM.UpdatedAt
		profile = userM.StoreProfile
	case userM.DeliveryPartnerProfile != nil:
		userM.DeliveryPartnerProfile.UpdatedAt = userM.UpdatedAt
		profile = userM.DeliveryPartnerProfile
	}
	if profile != nil {
		if err := repo.db.WithContext(ctx).Omit(clause.Associations).Save(profile).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update user profile")
		}
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"password_hash": passwordHash})
}

func (repo *userRepository) SetLocked(ctx context.Context, id uuid.UUID, locked bool) error {
	return repo.updateColumns(ctx, id, map[string]any{"locked": locked})
}

func (repo *userRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	if _, ok := columns["updated_at"]; !ok {
		columns["updated_at"] = time.Now()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns one page of users with their profiles.
func (repo *userRepository) List(ctx context.Context, criteria *repository.Criteria, page entity.PageRequest) ([]*entity.User, int64, error) {
	query, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.UserModel{}), criteria, userColumns)
	if err != nil {
		return nil, 0, err
	}

	rows, total, err := findPage[model.UserModel](query, page, userColumns, repository.FieldCreatedAt,
		"CustomerProfile.Cart", "StoreProfile", "DeliveryPartnerProfile")
	if err != nil {
		return nil, 0, err
	}

	users := make([]*entity.User, 0, len(rows))
	for _, userM := range rows {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		AvatarURL:    data.AvatarURL,
		Role:         entity.Role(data.Role),
		Locked:       data.Locked,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if p := data.CustomerProfile; p != nil {
		addresses := p.Addresses
		if addresses == nil {
			addresses = []string{}
		}
		user.Customer = &entity.CustomerProfile{
			UserID:      p.UserID,
			PhoneNumber: p.PhoneNumber,
			Addresses:   addresses,
			UpdatedAt:   p.UpdatedAt,
		}
		if p.Cart != nil {
			user.Customer.Cart = &entity.Cart{ID: p.Cart.ID, CustomerID: p.Cart.CustomerID, CreatedAt: p.Cart.CreatedAt}
		}
	}
	if p := data.StoreProfile; p != nil {
		user.Store = &entity.StoreProfile{
			UserID:      p.UserID,
			Description: p.Description,
			Address:     p.Address,
			City:        p.City,
			UpdatedAt:   p.UpdatedAt,
		}
	}
	if p := data.DeliveryPartnerProfile; p != nil {
		user.DeliveryPartner = &entity.DeliveryPartnerProfile{
			UserID:       p.UserID,
			PhoneNumber:  p.PhoneNumber,
			VehiclePlate: p.VehiclePlate,
			UpdatedAt:    p.UpdatedAt,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		AvatarURL:    data.AvatarURL,
		Role:         string(data.Role),
		Locked:       data.Locked,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if p := data.Customer; p != nil {
		userM.CustomerProfile = &model.CustomerProfileModel{
			UserID:      data.ID,
			PhoneNumber: p.PhoneNumber,
			Addresses:   p.Addresses,
			UpdatedAt:   p.UpdatedAt,
		}
		if p.Cart != nil {
			userM.CustomerProfile.Cart = &model.CartModel{ID: p.Cart.ID, CustomerID: data.ID, CreatedAt: p.Cart.CreatedAt}
		}
	}
	if p := data.Store; p != nil {
		userM.StoreProfile = &model.StoreProfileModel{
			UserID:      data.ID,
			Description: p.Description,
			Address:     p.Address,
			City:        p.City,
			UpdatedAt:   p.UpdatedAt,
		}
	}
	if p := data.DeliveryPartner; p != nil {
		userM.DeliveryPartnerProfile = &model.DeliveryPartnerProfileModel{
			UserID:       data.ID,
			PhoneNumber:  p.PhoneNumber,
			VehiclePlate: p.VehiclePlate,
			UpdatedAt:    p.UpdatedAt,
		}
	}

	return userM
}
