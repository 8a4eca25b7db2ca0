package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/validation"
)

func (c *Controller) GetSTYRKStructureByLevel(ctx echo.Context) error {
	level, err := validation.STYRKLevel(ctx.Param("level"))
	if err != nil {
		return err
	}
	return c.styrkStructure(ctx, level)
}

func (c *Controller) GetProfessionGroups(ctx echo.Context) error {
	groups, err := c.styrk.HierarchyByLevel(ctx.Request().Context(), domain.Level1)
	if err != nil {
		return err
	}

	type response struct {
		Success          bool `json:"success"`
		ProfessionGroups any  `json:"profession_groups"`
		Total            int  `json:"total"`
	}

	return ctx.JSON(http.StatusOK, response{
		Success:          true,
		ProfessionGroups: groups,
		Total:            len(groups),
	})
}

func (c *Controller) GetSubProfessions(ctx echo.Context) error {
	return c.styrkStructure(ctx, domain.Level2)
}

func (c *Controller) GetRoles(ctx echo.Context) error {
	return c.styrkStructure(ctx, domain.Level3)
}

func (c *Controller) GetTitles(ctx echo.Context) error {
	return c.styrkStructure(ctx, domain.Level4)
}

func (c *Controller) styrkStructure(ctx echo.Context, level domain.Level) error {
	structure, err := c.styrk.HierarchyByLevel(ctx.Request().Context(), level)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.StructureResponse{
		Success:   true,
		Structure: structure,
		Total:     len(structure),
	})
}
