package repository

import (
	"context"
	"time"

	"cyber_academy_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityRepository is the append-only ledger. It has no update or delete.
type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) WithTx(tx *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: tx}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return errors.Wrap(r.DB.WithContext(ctx).Omit("User", "Module").Create(activity).Error, "append activity")
}

type recentActivityRow struct {
	ID           string
	ModuleID     string
	ActivityType model.ActivityType
	Score        float64
	Result       datatypes.JSON
	SubmittedAt  time.Time
	Title        string
	Level        model.ModuleLevel
}

// RecentByUser returns the newest limit rows for the user, newest first,
// with module title and level attached.
func (r *ActivityRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]model.RecentActivity, error) {
	var rows []recentActivityRow
	err := r.DB.WithContext(ctx).
		Table("activities AS a").
		Select("a.id, a.module_id, a.activity_type, a.score, a.result, a.submitted_at, m.title, m.level").
		Joins("JOIN modules AS m ON m.id = a.module_id").
		Where("a.user_id = ?", userID).
		Order("a.submitted_at DESC").
		Order("a.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "load recent activities")
	}

	activities := make([]model.RecentActivity, len(rows))
	for i, row := range rows {
		activities[i] = model.RecentActivity{
			ID:           row.ID,
			ModuleID:     row.ModuleID,
			Module:       model.ModuleRef{ID: row.ModuleID, Title: row.Title, Level: row.Level},
			ActivityType: row.ActivityType,
			Score:        row.Score,
			Result:       row.Result,
			SubmittedAt:  row.SubmittedAt,
		}
	}
	return activities, nil
}

func (r *ActivityRepository) CountByUserAndModule(ctx context.Context, userID, moduleID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Activity{}).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Count(&count).Error
	return count, errors.Wrap(err, "count activities")
}
