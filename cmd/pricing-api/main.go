// README: Entry point; loads config, wires the pricing service and serves the HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"scandicitytaxi/internal/config"
	httptransport "scandicitytaxi/internal/http"
	"scandicitytaxi/internal/logger"
	"scandicitytaxi/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("config load failed")
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log := logger.Logger.With().Str("service", "pricing-api").Logger()
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pricingSvc := pricing.NewService(pricing.Tariff{
		StartFee: cfg.Tariff.StartFee,
		PerKm:    cfg.Tariff.PerKm,
		PerMin:   cfg.Tariff.PerMin,
	}, cfg.Currency, log)

	for _, a := range pricing.AsymmetricRoutes() {
		log.Warn().Str("from", a.From).Str("to", a.To).Int64("price", a.Price).Msg("fixed price has no matching return price")
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Pricing: pricingSvc,
		Log:     log,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().
		Str("addr", cfg.HTTP.Addr).
		Int("cities", len(pricing.Cities())).
		Int("routes", len(pricing.Routes())).
		Msg("pricing api listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("pricing api stopped")
}
