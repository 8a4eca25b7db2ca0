package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/michaelekornrud/BouvetRadar/internal/api/controller"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/logger"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(cntrl *controller.Controller) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSonicSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.Logger())
	svc.router.Use(requestID())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOrigins),
		AllowMethods: []string{echo.GET},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	api := svc.router.Group("/api")
	api.GET("/health", cntrl.HealthCheck)

	cpv := api.Group("/cpv")
	cpv.GET("/categories", cntrl.GetMainCategories)
	cpv.GET("/codes", cntrl.GetCodes)
	cpv.GET("/codes/:code", cntrl.GetCodeDetails)
	cpv.GET("/stats", cntrl.GetCPVStats)

	nuts := api.Group("/nuts")
	nuts.GET("/codes/level/:level", cntrl.GetNUTSStructureByLevel)
	nuts.GET("/search", cntrl.SearchNUTSCodes)

	styrk := api.Group("/styrk")
	styrk.GET("/codes/level/:level", cntrl.GetSTYRKStructureByLevel)
	styrk.GET("/profession-groups", cntrl.GetProfessionGroups)
	styrk.GET("/sub-professions", cntrl.GetSubProfessions)
	styrk.GET("/roles", cntrl.GetRoles)
	styrk.GET("/titles", cntrl.GetTitles)

	doffin := api.Group("/doffin")
	doffin.GET("/search", cntrl.SearchNotices)
	doffin.GET("/download/:id", cntrl.DownloadNotice)

	return svc, nil
}
