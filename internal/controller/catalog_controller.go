package controller

import (
	"cyber_academy_backend/internal/service"
	"cyber_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

type ImportCatalogRequest struct {
	Source string `json:"source" binding:"required"`
}

type ImportCatalogResponse struct {
	Message string `json:"message"`
	*service.ImportResult
}

// ImportModules godoc
// @Summary Import modules
// @Description Loads a YAML catalog document from storage. Modules whose title already exists are skipped.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ImportCatalogRequest true "Catalog document name"
// @Success 200 {object} ImportCatalogResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /admin/modules/import [post]
func (c *CatalogController) ImportModules(ctx *gin.Context) {
	var req ImportCatalogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}

	result, err := c.CatalogService.Import(ctx.Request.Context(), req.Source)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, ImportCatalogResponse{Message: "Catalog imported", ImportResult: result})
}
