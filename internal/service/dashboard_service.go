package service

import (
	"context"
	"time"

	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/repository"
	"cyber_academy_backend/internal/util"
	"cyber_academy_backend/pkg/tracing"
)

type DashboardService struct {
	UserRepo     *repository.UserRepository
	ModuleRepo   *repository.ModuleRepository
	ActivityRepo *repository.ActivityRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	moduleRepo *repository.ModuleRepository,
	activityRepo *repository.ActivityRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		ModuleRepo:   moduleRepo,
		ActivityRepo: activityRepo,
	}
}

type Dashboard struct {
	User               DashboardUser          `json:"user"`
	Stats              DashboardStats         `json:"stats"`
	RecentActivities   []model.RecentActivity `json:"recentActivities"`
	RecommendedModules []model.ModuleSummary  `json:"recommendedModules"`
}

type DashboardUser struct {
	ID               string            `json:"id"`
	Username         string            `json:"username"`
	Email            string            `json:"email"`
	Role             model.UserRole    `json:"role"`
	Points           int               `json:"points"`
	Badges           []string          `json:"badges"`
	CompletedModules []model.ModuleRef `json:"completedModules"`
	MemberSince      time.Time         `json:"memberSince"`
}

type DashboardStats struct {
	TotalCompleted int    `json:"totalCompleted"`
	TotalModules   int64  `json:"totalModules"`
	TotalPoints    int    `json:"totalPoints"`
	BadgesEarned   int    `json:"badgesEarned"`
	Rank           string `json:"rank"`
}

// GetUserDashboard aggregates the user's progress. Recommendations are
// recomputed on every call.
func (s *DashboardService) GetUserDashboard(ctx context.Context, user *model.User) (dashboard *Dashboard, err error) {
	ctx, span := tracing.StartSpan(ctx, "DashboardService.GetUserDashboard")
	defer func() { tracing.EndSpan(span, err) }()

	completed, err := s.UserRepo.CompletedModules(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	badges, err := s.UserRepo.Badges(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	totalModules, err := s.ModuleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.ActivityRepo.RecentByUser(ctx, user.ID, util.RecentActivityLimit)
	if err != nil {
		return nil, err
	}

	recommended, err := s.GetRecommendations(ctx, completed, util.RecommendationLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		User: DashboardUser{
			ID:               user.ID,
			Username:         user.Username,
			Email:            user.Email,
			Role:             user.Role,
			Points:           user.Points,
			Badges:           badges,
			CompletedModules: completed,
			MemberSince:      user.CreatedAt,
		},
		Stats: DashboardStats{
			TotalCompleted: len(completed),
			TotalModules:   totalModules,
			TotalPoints:    user.Points,
			BadgesEarned:   len(badges),
			Rank:           Rank(user.Points),
		},
		RecentActivities:   recent,
		RecommendedModules: recommended,
	}, nil
}

// GetRecommendations returns the first limit modules in catalog order that
// are not in completed.
func (s *DashboardService) GetRecommendations(ctx context.Context, completed []model.ModuleRef, limit int) ([]model.ModuleSummary, error) {
	done := make(map[string]bool, len(completed))
	for _, m := range completed {
		done[m.ID] = true
	}

	catalog, err := s.ModuleRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	recommended := make([]model.ModuleSummary, 0, limit)
	for _, m := range catalog {
		if len(recommended) == limit {
			break
		}
		if !done[m.ID] {
			recommended = append(recommended, m)
		}
	}
	return recommended, nil
}
