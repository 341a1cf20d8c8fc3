package controller

import (
	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/service"
	"cyber_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	ModuleService *service.ModuleService
}

func NewModuleController(moduleService *service.ModuleService) *ModuleController {
	return &ModuleController{ModuleService: moduleService}
}

type ModuleListResponse struct {
	Count   int                   `json:"count"`
	Modules []model.ModuleSummary `json:"modules"`
}

type ModuleResponse struct {
	Module *model.Module `json:"module"`
}

// ListModules godoc
// @Summary List modules
// @Description Lists the catalog ordered by difficulty, without module content
// @Tags modules
// @Produce json
// @Param level query string false "beginner, intermediate or advanced"
// @Success 200 {object} ModuleListResponse
// @Failure 400 {object} util.ErrorResponse
// @Router /modules [get]
func (c *ModuleController) ListModules(ctx *gin.Context) {
	modules, err := c.ModuleService.List(ctx.Request.Context(), ctx.Query("level"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, ModuleListResponse{Count: len(modules), Modules: modules})
}

// GetModule godoc
// @Summary Get a module
// @Description Returns one module including its content
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module ID"
// @Success 200 {object} ModuleResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /modules/{id} [get]
func (c *ModuleController) GetModule(ctx *gin.Context) {
	module, err := c.ModuleService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, ModuleResponse{Module: module})
}
