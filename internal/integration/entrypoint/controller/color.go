package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/color3/backend/internal/application/usecase/color"
	"github.com/color3/backend/internal/integration/entrypoint/dto"
)

// ColorController handles color catalogue and classification endpoints.
type ColorController struct {
	listFamiliesUseCase *color.ListFamiliesUseCase
	classifyUseCase     *color.ClassifyColorUseCase
}

// NewColorController creates a new color controller instance.
func NewColorController(
	listFamiliesUseCase *color.ListFamiliesUseCase,
	classifyUseCase *color.ClassifyColorUseCase,
) *ColorController {
	return &ColorController{
		listFamiliesUseCase: listFamiliesUseCase,
		classifyUseCase:     classifyUseCase,
	}
}

// ListFamilies handles GET /colors/families requests.
func (c *ColorController) ListFamilies(ctx *gin.Context) {
	output, err := c.listFamiliesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToColorFamilyListResponse(output))
}

// Classify handles GET /colors/classify?hex= requests.
func (c *ColorController) Classify(ctx *gin.Context) {
	output, err := c.classifyUseCase.Execute(ctx.Request.Context(), color.ClassifyColorInput{
		Hex: ctx.Query("hex"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClassifyColorResponse(output))
}
