package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/michaelekornrud/BouvetRadar/internal/api"
	"github.com/michaelekornrud/BouvetRadar/internal/api/controller"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/httpx"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/klass"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/logger"
	"github.com/michaelekornrud/BouvetRadar/internal/service/cpv"
	"github.com/michaelekornrud/BouvetRadar/internal/service/doffin"
	"github.com/michaelekornrud/BouvetRadar/internal/service/ssb"
)

const shutdownTimeout = 10 * time.Second

func initConfig() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	viper.SetDefault(constants.ViperLogLevel, "info")
	viper.SetDefault(constants.ViperServerAddr, ":8080")
	viper.SetDefault(constants.ViperCORSOrigins, []string{"http://localhost:3000"})
	viper.SetDefault(constants.ViperDoffinBaseURL, doffin.DefaultBaseURL)
	viper.SetDefault(constants.ViperDoffinTimeout, httpx.DefaultTimeout)
	viper.SetDefault(constants.ViperKlassBaseURL, klass.DefaultBaseURL)
	viper.SetDefault(constants.ViperKlassTimeout, httpx.DefaultTimeout)
	viper.SetDefault(constants.ViperKlassCacheTTL, klass.DefaultCacheTTL)
	viper.AutomaticEnv()
}

func main() {
	initConfig()
	logger.Init(viper.GetString(constants.ViperLogLevel))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	klassClient := klass.NewClient(
		viper.GetString(constants.ViperKlassBaseURL),
		viper.GetDuration(constants.ViperKlassTimeout),
	)
	cache := klass.NewCache(klassClient, viper.GetDuration(constants.ViperKlassCacheTTL))

	nutsService := ssb.NewNUTSService(cache)
	styrkService := ssb.NewSTYRKService(cache)
	cpvService := cpv.NewService()

	doffinService, err := doffin.NewService(doffin.Config{
		BaseURL: viper.GetString(constants.ViperDoffinBaseURL),
		APIKey:  viper.GetString(constants.ViperDoffinAPIKey),
		Timeout: viper.GetDuration(constants.ViperDoffinTimeout),
	}, nutsService)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	cntrl := controller.NewController(cpvService, nutsService, styrkService, doffinService)
	svc, err := api.NewAPIService(cntrl)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	addr := viper.GetString(constants.ViperServerAddr)
	go svc.Serve(addr)
	logger.Infof(ctx, "listening on %s", addr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}
