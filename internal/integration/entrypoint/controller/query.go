package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domainerror "github.com/color3/backend/internal/domain/error"
)

// monthsQuery reads the optional ?months= horizon. A nil result means use the default.
func monthsQuery(ctx *gin.Context) (*int, error) {
	raw, ok := ctx.GetQuery("months")
	if !ok || raw == "" {
		return nil, nil
	}

	months, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerror.NewTriColorError(
			domainerror.ErrCodeInvalidHorizon,
			"months must be an integer",
			domainerror.ErrInvalidHorizon,
		)
	}
	return &months, nil
}
