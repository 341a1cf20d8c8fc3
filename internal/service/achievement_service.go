package service

import (
	"context"
	"time"

	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/repository"
	"cyber_academy_backend/pkg/monitoring"
)

const (
	BadgeFirstModule   = "first_module"
	BadgeCyberChampion = "cyber_champion"
)

// GraduateBadge is awarded once every module of level is completed.
func GraduateBadge(level model.ModuleLevel) string {
	return string(level) + "_graduate"
}

// AchievementService grants milestone badges and derives rank titles.
// Badges never change points.
type AchievementService struct{}

func NewAchievementService() *AchievementService {
	return &AchievementService{}
}

// EvaluateBadges runs after a first-time completion, inside the same
// transaction, and returns the badges that were newly granted.
func (s *AchievementService) EvaluateBadges(ctx context.Context, progressRepo *repository.ProgressRepository, userID string, at time.Time) ([]string, error) {
	progress, err := progressRepo.Progress(ctx, userID)
	if err != nil {
		return nil, err
	}

	var completed, total int64
	candidates := make([]string, 0, 4)
	for _, p := range progress {
		completed += p.Completed
		total += p.Total
		if p.Total > 0 && p.Completed >= p.Total {
			candidates = append(candidates, GraduateBadge(p.Level))
		}
	}
	if completed >= 1 {
		candidates = append([]string{BadgeFirstModule}, candidates...)
	}
	if total > 0 && completed >= total {
		candidates = append(candidates, BadgeCyberChampion)
	}

	earned := make([]string, 0)
	for _, badge := range candidates {
		ok, err := progressRepo.AwardBadge(ctx, userID, badge, at)
		if err != nil {
			return nil, err
		}
		if ok {
			earned = append(earned, badge)
		}
	}
	return earned, nil
}

// RecordBadges updates metrics once the awarding transaction has committed.
func (s *AchievementService) RecordBadges(badges []string) {
	for _, b := range badges {
		monitoring.BadgesAwarded.WithLabelValues(b).Inc()
	}
}

type rankTier struct {
	minPoints int
	title     string
}

var rankTiers = []rankTier{
	{300, "Guardian"},
	{150, "Defender"},
	{50, "Analyst"},
	{0, "Recruit"},
}

// Rank returns the title for a point total.
func Rank(points int) string {
	for _, t := range rankTiers {
		if points >= t.minPoints {
			return t.title
		}
	}
	return rankTiers[len(rankTiers)-1].title
}
