package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/repository"
	"cyber_academy_backend/internal/util"
	"cyber_academy_backend/pkg/logger"
	"cyber_academy_backend/pkg/monitoring"
	"cyber_academy_backend/pkg/tracing"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ActivityService struct {
	DB           *gorm.DB
	ModuleRepo   *repository.ModuleRepository
	ActivityRepo *repository.ActivityRepository
	ProgressRepo *repository.ProgressRepository
	Achievements *AchievementService

	now func() time.Time
}

func NewActivityService(
	db *gorm.DB,
	moduleRepo *repository.ModuleRepository,
	activityRepo *repository.ActivityRepository,
	progressRepo *repository.ProgressRepository,
	achievements *AchievementService,
) *ActivityService {
	return &ActivityService{
		DB:           db,
		ModuleRepo:   moduleRepo,
		ActivityRepo: activityRepo,
		ProgressRepo: progressRepo,
		Achievements: achievements,
		now:          time.Now,
	}
}

type SubmitActivityInput struct {
	ModuleID     string
	ActivityType model.ActivityType
	Score        *float64
	Result       json.RawMessage
}

type SubmitActivityResult struct {
	Activity      *model.Activity
	PointsAwarded int
	BadgesEarned  []string
}

func (s *ActivityService) validate(in SubmitActivityInput) (*model.Activity, error) {
	if in.ModuleID == "" || in.ActivityType == "" {
		return nil, util.NewValidationError("moduleId and activityType are required")
	}
	if !in.ActivityType.Valid() {
		return nil, util.NewValidationError("activityType is not a supported activity type")
	}

	activity := &model.Activity{
		ModuleID:     in.ModuleID,
		ActivityType: in.ActivityType,
	}
	if in.Score != nil {
		score := *in.Score
		if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
			return nil, util.NewValidationError("score must be a non-negative number")
		}
		activity.Score = score
	}

	result, err := model.NormalizeResult(in.ActivityType, in.Result)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, util.NewValidationError("result: " + util.ValidationMessage(err))
		}
		return nil, util.NewValidationError(err.Error())
	}
	activity.Result = result
	return activity, nil
}

// Submit appends one ledger row and, on the user's first submission for the
// module, awards the module's points and any milestone badges. All writes
// happen in one transaction.
func (s *ActivityService) Submit(ctx context.Context, user *model.User, in SubmitActivityInput) (result *SubmitActivityResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "ActivityService.Submit",
		attribute.String("user.id", user.ID),
		attribute.String("activity.type", string(in.ActivityType)),
	)
	defer func() { tracing.EndSpan(span, err) }()

	activity, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	if !model.IsUUID(in.ModuleID) {
		return nil, util.ErrModuleNotFound
	}
	module, err := s.ModuleRepo.FindByID(ctx, in.ModuleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	now := s.now()
	activity.UserID = user.ID
	activity.SubmittedAt = now

	result = &SubmitActivityResult{Activity: activity, BadgesEarned: []string{}}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress := s.ProgressRepo.WithTx(tx)
		if err := progress.LockUser(ctx, user.ID); err != nil {
			return err
		}
		if err := s.ActivityRepo.WithTx(tx).Create(ctx, activity); err != nil {
			return err
		}

		awarded, err := progress.AwardCompletion(ctx, user.ID, module.ID, module.PointsReward, now)
		if err != nil {
			return err
		}
		if !awarded {
			return nil
		}
		result.PointsAwarded = module.PointsReward

		badges, err := s.Achievements.EvaluateBadges(ctx, progress, user.ID, now)
		if err != nil {
			return err
		}
		result.BadgesEarned = badges
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.ActivitiesSubmitted.WithLabelValues(string(activity.ActivityType)).Inc()
	if result.PointsAwarded > 0 {
		monitoring.CompletionsAwarded.Inc()
		monitoring.PointsAwarded.Add(float64(result.PointsAwarded))
		s.Achievements.RecordBadges(result.BadgesEarned)

		logger.Log.Info("Module completed",
			zap.String("user_id", user.ID),
			zap.String("module_id", module.ID),
			zap.Int("points", result.PointsAwarded),
			zap.Strings("badges", result.BadgesEarned),
		)
	}
	return result, nil
}
