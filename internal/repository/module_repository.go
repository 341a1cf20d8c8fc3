package repository

import (
	"context"

	"cyber_academy_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// levelRank orders modules by difficulty rather than alphabetically.
const levelRank = "CASE level WHEN 'beginner' THEN 0 WHEN 'intermediate' THEN 1 WHEN 'advanced' THEN 2 ELSE 3 END"

var summaryColumns = []string{"id", "title", "level", "description", "points_reward", "display_order"}

type ModuleRepository struct {
	DB *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

func (r *ModuleRepository) catalogOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order(levelRank).Order("display_order ASC").Order("title ASC").Order("id ASC")
}

// List returns the catalog in display order without module content. An
// empty level lists every module.
func (r *ModuleRepository) List(ctx context.Context, level model.ModuleLevel) ([]model.ModuleSummary, error) {
	var modules []model.Module
	query := r.DB.WithContext(ctx).Model(&model.Module{}).Select(summaryColumns)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	if err := r.catalogOrder(query).Find(&modules).Error; err != nil {
		return nil, errors.Wrap(err, "list modules")
	}

	summaries := make([]model.ModuleSummary, len(modules))
	for i := range modules {
		summaries[i] = modules[i].Summary()
	}
	return summaries, nil
}

func (r *ModuleRepository) FindByID(ctx context.Context, id string) (*model.Module, error) {
	var module model.Module
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&module).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *ModuleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Module{}).Count(&count).Error
	return count, errors.Wrap(err, "count modules")
}

func (r *ModuleRepository) Titles(ctx context.Context) (map[string]bool, error) {
	var titles []string
	if err := r.DB.WithContext(ctx).Model(&model.Module{}).Pluck("title", &titles).Error; err != nil {
		return nil, errors.Wrap(err, "load module titles")
	}
	set := make(map[string]bool, len(titles))
	for _, t := range titles {
		set[t] = true
	}
	return set, nil
}

func (r *ModuleRepository) CreateBatch(ctx context.Context, modules []*model.Module) error {
	if len(modules) == 0 {
		return nil
	}
	return errors.Wrap(r.DB.WithContext(ctx).Create(modules).Error, "create modules")
}
