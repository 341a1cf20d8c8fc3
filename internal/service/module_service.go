package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/repository"
	"cyber_academy_backend/internal/util"

	"gorm.io/gorm"
)

type ModuleService struct {
	ModuleRepo *repository.ModuleRepository
}

func NewModuleService(moduleRepo *repository.ModuleRepository) *ModuleService {
	return &ModuleService{ModuleRepo: moduleRepo}
}

// List returns the catalog without content, optionally filtered by level.
func (s *ModuleService) List(ctx context.Context, level string) ([]model.ModuleSummary, error) {
	l := model.ModuleLevel(level)
	if level != "" && !l.Valid() {
		names := make([]string, len(model.Levels))
		for i, lv := range model.Levels {
			names[i] = string(lv)
		}
		return nil, util.NewValidationError(fmt.Sprintf("level must be one of: %s", strings.Join(names, ", ")))
	}
	return s.ModuleRepo.List(ctx, l)
}

func (s *ModuleService) Get(ctx context.Context, id string) (*model.Module, error) {
	if !model.IsUUID(id) {
		return nil, util.ErrModuleNotFound
	}
	module, err := s.ModuleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}
	return module, nil
}
