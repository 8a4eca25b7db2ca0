package controller

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
)

type cpvCategoryItem struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Controller) GetMainCategories(ctx echo.Context) error {
	categories := c.cpv.MainCategories()

	result := make([]cpvCategoryItem, 0, len(categories))
	for _, cat := range categories {
		desc, _ := c.cpv.Description(cat.Code)
		result = append(result, cpvCategoryItem{
			Code:        cat.Code,
			Name:        cat.Name,
			Description: desc,
		})
	}

	return ctx.JSON(http.StatusOK, domain.DataResponse{
		Success: true,
		Data:    result,
		Total:   len(result),
	})
}

type cpvCodeItem struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (c *Controller) GetCodes(ctx echo.Context) error {
	category := ctx.QueryParams().Get("category")
	search := ctx.QueryParams().Get("search")

	var codes map[int]string
	switch {
	case search != "":
		codes = c.cpv.SearchDescriptions(search)
	case category != "":
		categoryCode, err := strconv.Atoi(category)
		if err != nil {
			return constants.NewInvalidParameterTypeError("category", "integer", category)
		}
		codes = c.cpv.CodesByCategory(categoryCode)
	default:
		codes = c.cpv.AllCodes()
	}

	result := make([]cpvCodeItem, 0, len(codes))
	for code, desc := range codes {
		result = append(result, cpvCodeItem{
			Code:        code,
			Description: desc,
			Category:    c.cpv.CategoryForCode(code),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })

	type response struct {
		Success bool          `json:"success"`
		Data    []cpvCodeItem `json:"data"`
		Total   int           `json:"total"`
		Filters struct {
			Category string `json:"category,omitempty"`
			Search   string `json:"search,omitempty"`
		} `json:"filters"`
	}

	resp := response{Success: true, Data: result, Total: len(result)}
	resp.Filters.Category = category
	resp.Filters.Search = search

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) GetCodeDetails(ctx echo.Context) error {
	raw := ctx.Param("code")
	code, err := strconv.Atoi(raw)
	if err != nil {
		return constants.NewInvalidParameterTypeError("code", "integer", raw)
	}

	detail, err := c.cpv.Describe(code)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.DataResponse{
		Success: true,
		Data:    detail,
	})
}

func (c *Controller) GetCPVStats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.DataResponse{
		Success: true,
		Data:    c.cpv.Statistics(),
	})
}
