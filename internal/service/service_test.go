package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cyber_academy_backend/internal/config"
	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/repository"
	"cyber_academy_backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	cfg       *config.Config
	users     *repository.UserRepository
	modules   *repository.ModuleRepository
	ledger    *repository.ActivityRepository
	auth      *AuthService
	activity  *ActivityService
	dashboard *DashboardService
	catalog   *CatalogService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.InitDB(&config.DatabaseConfig{
		Driver:   "sqlite",
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithDB(t, newTestDB(t))
}

// newServerDB connects to the database named by TEST_DATABASE_DRIVER and
// TEST_DATABASE_DSN, skipping the test when they are unset.
func newServerDB(t *testing.T) *gorm.DB {
	t.Helper()

	driver, dsn := os.Getenv("TEST_DATABASE_DRIVER"), os.Getenv("TEST_DATABASE_DSN")
	if driver == "" || dsn == "" {
		t.Skip("TEST_DATABASE_DRIVER and TEST_DATABASE_DSN not set")
	}
	db, err := database.InitDB(&config.DatabaseConfig{
		Driver:       driver,
		DSN:          dsn,
		MaxOpenConns: 16,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newFixtureWithDB(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
	}

	users := repository.NewUserRepository(db)
	modules := repository.NewModuleRepository(db)
	ledger := repository.NewActivityRepository(db)
	progress := repository.NewProgressRepository(db)

	storage, err := NewStorageService(cfg)
	require.NoError(t, err)

	return &fixture{
		db:        db,
		cfg:       cfg,
		users:     users,
		modules:   modules,
		ledger:    ledger,
		auth:      NewAuthService(users, cfg),
		activity:  NewActivityService(db, modules, ledger, progress, NewAchievementService()),
		dashboard: NewDashboardService(users, modules, ledger),
		catalog:   NewCatalogService(modules, storage),
	}
}

func (f *fixture) createModule(t *testing.T, title string, level model.ModuleLevel, order, reward int) *model.Module {
	t.Helper()

	m := &model.Module{
		Title:        title,
		Level:        level,
		Description:  title + " description",
		Content:      title + " content",
		PointsReward: reward,
		Order:        order,
	}
	require.NoError(t, f.db.Create(m).Error)
	return m
}

func (f *fixture) register(t *testing.T, username string) *model.User {
	t.Helper()

	res, err := f.auth.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return res.User
}

func (f *fixture) reload(t *testing.T, user *model.User) *model.User {
	t.Helper()

	fresh, err := f.users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	return fresh
}

func (f *fixture) submit(t *testing.T, user *model.User, module *model.Module) *SubmitActivityResult {
	t.Helper()

	res, err := f.activity.Submit(context.Background(), user, SubmitActivityInput{
		ModuleID:     module.ID,
		ActivityType: model.ActivityQuiz,
	})
	require.NoError(t, err)
	return res
}

// steppedClock returns a clock that advances one second per call.
func steppedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}
