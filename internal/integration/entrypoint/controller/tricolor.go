package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tricolorday "github.com/color3/backend/internal/application/usecase/tricolor_day"
	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/integration/entrypoint/dto"
)

// TriColorController handles ad-hoc tri-color day searches.
type TriColorController struct {
	findUseCase *tricolorday.FindTriColorDaysUseCase
}

// NewTriColorController creates a new tri-color controller instance.
func NewTriColorController(findUseCase *tricolorday.FindTriColorDaysUseCase) *TriColorController {
	return &TriColorController{
		findUseCase: findUseCase,
	}
}

// Find handles POST /tricolor-days requests.
func (c *TriColorController) Find(ctx *gin.Context) {
	var req dto.TriColorDaysRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid payload structure",
			Code:    string(domainerror.ErrCodeInvalidPayload),
			Details: err.Error(),
		})
		return
	}

	input := tricolorday.FindTriColorDaysInput{HorizonMonths: req.MonthsAhead}
	var err error
	if input.Months, err = dto.ParseSlotKeys(req.Months, "months"); err != nil {
		handleDomainError(ctx, err)
		return
	}
	if input.DaysOfMonth, err = dto.ParseSlotKeys(req.DaysOfMonth, "days_of_month"); err != nil {
		handleDomainError(ctx, err)
		return
	}
	if input.DaysOfWeek, err = dto.ParseSlotKeys(req.DaysOfWeek, "days_of_week"); err != nil {
		handleDomainError(ctx, err)
		return
	}

	output, err := c.findUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	response := dto.ToTriColorDaysResponse(output.Window, output.Matches)
	response.Mapping = dto.ToMappingResponse(&output.Mapping)
	ctx.JSON(http.StatusOK, response)
}
