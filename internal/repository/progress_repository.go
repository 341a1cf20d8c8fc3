package repository

import (
	"context"
	"time"

	"cyber_academy_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository owns the mutable half of the credential store: points,
// the completed-module set and badges.
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) WithTx(tx *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: tx}
}

// LockUser takes a row lock on the user so that concurrent submissions by the
// same user queue up instead of deadlocking between foreign-key share locks
// and the points update. Call it first inside the transaction.
func (r *ProgressRepository) LockUser(ctx context.Context, userID string) error {
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", userID).
		Take(&model.User{}).Error
	return errors.Wrap(err, "lock user")
}

// AwardCompletion adds moduleID to the user's completed set and, only if
// the row was actually inserted, adds reward to the user's points. The
// insert-or-ignore on the composite key is the membership test, so two
// concurrent callers cannot both see the module as absent. A zero reward
// still records the completion. Must run inside
// a transaction so both statements commit together.
func (r *ProgressRepository) AwardCompletion(ctx context.Context, userID, moduleID string, reward int, at time.Time) (bool, error) {
	db := r.DB.WithContext(ctx)

	completion := &model.UserModuleCompletion{
		UserID:        userID,
		ModuleID:      moduleID,
		PointsAwarded: reward,
		CompletedAt:   at,
	}
	res := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(completion)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "insert completion")
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	// MySQL reports changed rows, so a no-op increment would look like a
	// missing user.
	if reward == 0 {
		return true, nil
	}

	res = db.Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", reward))
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "increment points")
	}
	if res.RowsAffected != 1 {
		return false, errors.Errorf("increment points: user %s not found", userID)
	}
	return true, nil
}

// AwardBadge grants badgeID once. It reports whether the badge is new.
func (r *ProgressRepository) AwardBadge(ctx context.Context, userID, badgeID string, at time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserBadge{UserID: userID, BadgeID: badgeID, AwardedAt: at})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "insert badge")
	}
	return res.RowsAffected > 0, nil
}

// LevelProgress is how much of one difficulty level a user has completed.
type LevelProgress struct {
	Level     model.ModuleLevel
	Total     int64
	Completed int64
}

// Progress summarises the user's completions per level against the catalog.
func (r *ProgressRepository) Progress(ctx context.Context, userID string) ([]LevelProgress, error) {
	type row struct {
		Level model.ModuleLevel
		Count int64
	}

	var totals []row
	err := r.DB.WithContext(ctx).
		Model(&model.Module{}).
		Select("level, COUNT(*) AS count").
		Group("level").
		Scan(&totals).Error
	if err != nil {
		return nil, errors.Wrap(err, "count catalog by level")
	}

	var done []row
	err = r.DB.WithContext(ctx).
		Table("user_module_completions AS c").
		Select("m.level AS level, COUNT(*) AS count").
		Joins("JOIN modules AS m ON m.id = c.module_id").
		Where("c.user_id = ?", userID).
		Group("m.level").
		Scan(&done).Error
	if err != nil {
		return nil, errors.Wrap(err, "count completions by level")
	}

	completed := make(map[model.ModuleLevel]int64, len(done))
	for _, d := range done {
		completed[d.Level] = d.Count
	}

	progress := make([]LevelProgress, 0, len(totals))
	for _, level := range model.Levels {
		for _, t := range totals {
			if t.Level == level {
				progress = append(progress, LevelProgress{Level: level, Total: t.Count, Completed: completed[level]})
			}
		}
	}
	return progress, nil
}
