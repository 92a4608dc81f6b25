package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/color3/backend/internal/application/usecase/submission"
	tricolorday "github.com/color3/backend/internal/application/usecase/tricolor_day"
	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/integration/entrypoint/dto"
)

// SubmissionController handles submission endpoints.
type SubmissionController struct {
	createUseCase       *submission.CreateSubmissionUseCase
	updateUseCase       *submission.UpdateSubmissionUseCase
	getUseCase          *submission.GetSubmissionUseCase
	triColorDaysUseCase *tricolorday.GetPersonalTriColorDaysUseCase
}

// NewSubmissionController creates a new submission controller instance.
func NewSubmissionController(
	createUseCase *submission.CreateSubmissionUseCase,
	updateUseCase *submission.UpdateSubmissionUseCase,
	getUseCase *submission.GetSubmissionUseCase,
	triColorDaysUseCase *tricolorday.GetPersonalTriColorDaysUseCase,
) *SubmissionController {
	return &SubmissionController{
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		getUseCase:          getUseCase,
		triColorDaysUseCase: triColorDaysUseCase,
	}
}

// Create handles POST /submissions requests.
func (c *SubmissionController) Create(ctx *gin.Context) {
	mapping, ok := c.bindMapping(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), submission.CreateSubmissionInput{
		Mapping: mapping,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSubmissionWriteResponse(output.Submission))
}

// Update handles PUT /submissions/:id requests.
func (c *SubmissionController) Update(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	mapping, ok := c.bindMapping(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), submission.UpdateSubmissionInput{
		SubmissionID: id,
		Mapping:      mapping,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubmissionWriteResponse(output.Submission))
}

// Get handles GET /submissions/:id requests.
func (c *SubmissionController) Get(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), submission.GetSubmissionInput{
		SubmissionID: id,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubmissionResponse(output.Submission))
}

// TriColorDays handles GET /submissions/:id/tricolor-days requests.
func (c *SubmissionController) TriColorDays(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	months, err := monthsQuery(ctx)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	output, err := c.triColorDaysUseCase.Execute(ctx.Request.Context(), tricolorday.GetPersonalTriColorDaysInput{
		SubmissionID:  id,
		HorizonMonths: months,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	response := dto.ToTriColorDaysResponse(output.Window, output.Matches)
	response.SubmissionID = output.SubmissionID.String()
	ctx.JSON(http.StatusOK, response)
}

func (c *SubmissionController) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid submission ID format",
			Code:  string(domainerror.ErrCodeInvalidSubmissionID),
		})
		return uuid.Nil, false
	}
	return id, true
}

func (c *SubmissionController) bindMapping(ctx *gin.Context) (submission.MappingInput, bool) {
	var req dto.SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid payload structure",
			Code:    string(domainerror.ErrCodeInvalidSubmissionPayload),
			Details: err.Error(),
		})
		return submission.MappingInput{}, false
	}

	mapping, err := req.ToMappingInput()
	if err != nil {
		handleDomainError(ctx, err)
		return submission.MappingInput{}, false
	}
	return mapping, true
}
