package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/validation"
)

func (c *Controller) SearchNotices(ctx echo.Context) error {
	params, err := validation.ParseSearchParams(ctx.QueryParams())
	if err != nil {
		return err
	}

	results, err := c.doffin.SearchNotices(ctx.Request().Context(), params)
	if err != nil {
		return err
	}

	total := 0
	if hits, ok := results["hits"].([]any); ok {
		total = len(hits)
	}

	return ctx.JSON(http.StatusOK, domain.DataResponse{
		Success: true,
		Data:    results,
		Total:   total,
	})
}

func (c *Controller) DownloadNotice(ctx echo.Context) error {
	id := ctx.Param("id")
	if id == "" {
		return constants.NewMissingParameterError("id")
	}

	body, err := c.doffin.Download(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.Blob(http.StatusOK, "application/octet-stream", body)
}
