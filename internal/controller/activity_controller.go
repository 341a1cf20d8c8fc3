package controller

import (
	"encoding/json"

	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/service"
	"cyber_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// SubmitActivityRequest defines model for an activity submission
// swagger:model SubmitActivityRequest
type SubmitActivityRequest struct {
	ModuleID     string          `json:"moduleId" binding:"required"`
	ActivityType string          `json:"activityType" binding:"required,activitytype"`
	Score        *float64        `json:"score" binding:"omitempty,gte=0"`
	Result       json.RawMessage `json:"result" swaggertype:"object"`
}

type SubmitActivityResponse struct {
	Message       string          `json:"message"`
	Activity      *model.Activity `json:"activity"`
	PointsAwarded int             `json:"pointsAwarded"`
	BadgesEarned  []string        `json:"badgesEarned"`
}

// SubmitActivity godoc
// @Summary Submit an activity
// @Description Records an activity. The first submission for a module awards its points.
// @Tags activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitActivityRequest true "Activity"
// @Success 201 {object} SubmitActivityResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse "Module not found"
// @Router /activity/submit [post]
func (c *ActivityController) SubmitActivity(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}

	result, err := c.ActivityService.Submit(ctx.Request.Context(), user, service.SubmitActivityInput{
		ModuleID:     req.ModuleID,
		ActivityType: model.ActivityType(req.ActivityType),
		Score:        req.Score,
		Result:       req.Result,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	message := "Activity recorded"
	if result.PointsAwarded > 0 {
		message = "Activity recorded, module completed"
	}
	util.Created(ctx, SubmitActivityResponse{
		Message:       message,
		Activity:      result.Activity,
		PointsAwarded: result.PointsAwarded,
		BadgesEarned:  result.BadgesEarned,
	})
}
