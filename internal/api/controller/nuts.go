package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/validation"
)

func (c *Controller) GetNUTSStructureByLevel(ctx echo.Context) error {
	level, err := validation.NUTSLevel(ctx.Param("level"))
	if err != nil {
		return err
	}

	structure, err := c.nuts.HierarchyByLevel(ctx.Request().Context(), level)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.StructureResponse{
		Success:   true,
		Structure: structure,
		Total:     len(structure),
	})
}

func (c *Controller) SearchNUTSCodes(ctx echo.Context) error {
	query := validation.SearchStr(ctx.QueryParams().Get("q"))
	if query == "" {
		return constants.NewMissingParameterError("q")
	}

	hits, err := c.nuts.SearchByName(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.DataResponse{
		Success: true,
		Data:    hits,
		Total:   len(hits),
	})
}
