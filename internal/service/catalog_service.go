package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/repository"
	"cyber_academy_backend/internal/util"
	"cyber_academy_backend/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CatalogDocument is the authored catalog format:
//
//	modules:
//	  - title: Password Hygiene
//	    level: beginner
//	    description: ...
//	    content: ...
//	    pointsReward: 10
//	    order: 1
type CatalogDocument struct {
	Modules []CatalogEntry `yaml:"modules"`
}

type CatalogEntry struct {
	Title        string `yaml:"title"`
	Level        string `yaml:"level"`
	Description  string `yaml:"description"`
	Content      string `yaml:"content"`
	PointsReward *int   `yaml:"pointsReward"`
	Order        int    `yaml:"order"`
}

type ImportResult struct {
	Imported []string `json:"imported"`
	Skipped  []string `json:"skipped"`
}

type CatalogService struct {
	ModuleRepo *repository.ModuleRepository
	Storage    *StorageService
}

func NewCatalogService(moduleRepo *repository.ModuleRepository, storage *StorageService) *CatalogService {
	return &CatalogService{ModuleRepo: moduleRepo, Storage: storage}
}

// ParseCatalog decodes and checks a catalog document without touching the
// store.
func ParseCatalog(r io.Reader) ([]*model.Module, error) {
	var doc CatalogDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, util.NewValidationError("catalog document is empty")
		}
		return nil, util.NewValidationError(fmt.Sprintf("catalog document is not valid YAML: %v", err))
	}

	modules := make([]*model.Module, 0, len(doc.Modules))
	for i, e := range doc.Modules {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			return nil, util.NewValidationError(fmt.Sprintf("module %d: title is required", i+1))
		}
		level := model.ModuleLevel(strings.ToLower(strings.TrimSpace(e.Level)))
		if !level.Valid() {
			return nil, util.NewValidationError(fmt.Sprintf("module %q: level %q is not a difficulty level", title, e.Level))
		}
		if strings.TrimSpace(e.Description) == "" || strings.TrimSpace(e.Content) == "" {
			return nil, util.NewValidationError(fmt.Sprintf("module %q: description and content are required", title))
		}
		reward := model.DefaultPointsReward
		if e.PointsReward != nil {
			reward = *e.PointsReward
		}
		if reward < 0 {
			return nil, util.NewValidationError(fmt.Sprintf("module %q: pointsReward must not be negative", title))
		}

		modules = append(modules, &model.Module{
			Title:        title,
			Level:        level,
			Description:  e.Description,
			Content:      e.Content,
			PointsReward: reward,
			Order:        e.Order,
		})
	}
	return modules, nil
}

// Import loads the catalog document named source from storage. Modules whose
// title is already in the catalog are skipped, so re-running an import is
// harmless.
func (s *CatalogService) Import(ctx context.Context, source string) (*ImportResult, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, util.NewValidationError("source is required")
	}

	rc, err := s.Storage.Open(ctx, source)
	if errors.Is(err, ErrDocumentNotFound) {
		return nil, util.NewNotFoundError(fmt.Sprintf("Catalog source %q could not be opened", source))
	}
	if err != nil {
		return nil, errors.Wrap(err, "open catalog source")
	}
	defer rc.Close()

	modules, err := ParseCatalog(rc)
	if err != nil {
		return nil, err
	}
	return s.ImportModules(ctx, modules)
}

func (s *CatalogService) ImportModules(ctx context.Context, modules []*model.Module) (*ImportResult, error) {
	existing, err := s.ModuleRepo.Titles(ctx)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Imported: []string{}, Skipped: []string{}}
	fresh := make([]*model.Module, 0, len(modules))
	for _, m := range modules {
		if existing[m.Title] {
			result.Skipped = append(result.Skipped, m.Title)
			continue
		}
		existing[m.Title] = true
		fresh = append(fresh, m)
		result.Imported = append(result.Imported, m.Title)
	}

	if err := s.ModuleRepo.CreateBatch(ctx, fresh); err != nil {
		return nil, err
	}

	logger.Log.Info("Catalog imported",
		zap.Int("imported", len(result.Imported)),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// SeedIfEmpty imports source when the catalog has no modules yet.
func (s *CatalogService) SeedIfEmpty(ctx context.Context, source string) error {
	if source == "" {
		return nil
	}
	count, err := s.ModuleRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.Import(ctx, source)
	return err
}
