package repository

import (
	"context"

	"cyber_academy_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return errors.Wrap(r.DB.WithContext(ctx).Create(user).Error, "create user")
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *UserRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where(query, arg).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "count users")
	}
	return count > 0, nil
}

// CompletedModules returns the user's completed set joined with the catalog,
// in the order the modules were completed.
func (r *UserRepository) CompletedModules(ctx context.Context, userID string) ([]model.ModuleRef, error) {
	refs := make([]model.ModuleRef, 0)
	err := r.DB.WithContext(ctx).
		Table("user_module_completions AS c").
		Select("m.id, m.title, m.level, m.points_reward").
		Joins("JOIN modules AS m ON m.id = c.module_id").
		Where("c.user_id = ?", userID).
		Order("c.completed_at ASC").
		Order("m.id ASC").
		Scan(&refs).Error
	if err != nil {
		return nil, errors.Wrap(err, "load completed modules")
	}
	return refs, nil
}

func (r *UserRepository) Badges(ctx context.Context, userID string) ([]string, error) {
	badges := make([]string, 0)
	err := r.DB.WithContext(ctx).
		Model(&model.UserBadge{}).
		Where("user_id = ?", userID).
		Order("awarded_at ASC").
		Order("badge_id ASC").
		Pluck("badge_id", &badges).Error
	if err != nil {
		return nil, errors.Wrap(err, "load badges")
	}
	return badges, nil
}
