package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/color3/backend/internal/application/usecase/aggregation"
	"github.com/color3/backend/internal/integration/entrypoint/dto"
)

// AggregateController handles population statistics endpoints.
type AggregateController struct {
	getAggregateUseCase      *aggregation.GetAggregateUseCase
	communityDaysUseCase     *aggregation.GetCommunityTriColorDaysUseCase
	createSnapshotUseCase    *aggregation.CreateSnapshotUseCase
	getLatestSnapshotUseCase *aggregation.GetLatestSnapshotUseCase
}

// NewAggregateController creates a new aggregate controller instance.
func NewAggregateController(
	getAggregateUseCase *aggregation.GetAggregateUseCase,
	communityDaysUseCase *aggregation.GetCommunityTriColorDaysUseCase,
	createSnapshotUseCase *aggregation.CreateSnapshotUseCase,
	getLatestSnapshotUseCase *aggregation.GetLatestSnapshotUseCase,
) *AggregateController {
	return &AggregateController{
		getAggregateUseCase:      getAggregateUseCase,
		communityDaysUseCase:     communityDaysUseCase,
		createSnapshotUseCase:    createSnapshotUseCase,
		getLatestSnapshotUseCase: getLatestSnapshotUseCase,
	}
}

// Get handles GET /aggregate requests.
func (c *AggregateController) Get(ctx *gin.Context) {
	includeConsensus, _ := strconv.ParseBool(ctx.Query("consensus"))

	output, err := c.getAggregateUseCase.Execute(ctx.Request.Context(), aggregation.GetAggregateInput{
		IncludeConsensus: includeConsensus,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	if output.FromCache {
		ctx.Header("X-Cache", "HIT")
	} else {
		ctx.Header("X-Cache", "MISS")
	}
	ctx.JSON(http.StatusOK, dto.ToAggregateResponse(output.Result, output.Consensus))
}

// TriColorDays handles GET /aggregate/tricolor-days requests.
func (c *AggregateController) TriColorDays(ctx *gin.Context) {
	months, err := monthsQuery(ctx)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	output, err := c.communityDaysUseCase.Execute(ctx.Request.Context(), aggregation.GetCommunityTriColorDaysInput{
		HorizonMonths: months,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	response := dto.ToTriColorDaysResponse(output.Window, output.Matches)
	total := output.TotalSubmissions
	response.TotalSubmissions = &total
	response.Mapping = dto.ToMappingResponse(&output.Mapping)
	ctx.JSON(http.StatusOK, response)
}

// CreateSnapshot handles POST /aggregate/snapshots requests.
func (c *AggregateController) CreateSnapshot(ctx *gin.Context) {
	force, _ := strconv.ParseBool(ctx.Query("force"))

	output, err := c.createSnapshotUseCase.Execute(ctx.Request.Context(), aggregation.CreateSnapshotInput{
		Force: force,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	created := output.Created
	ctx.JSON(status, dto.ToSnapshotResponse(output.Snapshot, &created))
}

// LatestSnapshot handles GET /aggregate/snapshots/latest requests.
func (c *AggregateController) LatestSnapshot(ctx *gin.Context) {
	output, err := c.getLatestSnapshotUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSnapshotResponse(output.Snapshot, nil))
}
