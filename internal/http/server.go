// README: API gateway; registers HTTP routes and delegates to the pricing service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"scandicitytaxi/internal/http/handlers"
	"scandicitytaxi/internal/http/middleware"
	"scandicitytaxi/internal/metrics"
	"scandicitytaxi/internal/modules/pricing"
)

type ServerDeps struct {
	Pricing *pricing.Service
	Log     zerolog.Logger
}

type Server struct {
	pricing *pricing.Service
	log     zerolog.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		pricing: deps.Pricing,
		log:     deps.Log,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(s.log), middleware.Logging(s.log), middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	h := handlers.NewPricingHandler(s.pricing)
	api := r.Group("/api/pricing")
	api.GET("/cities", h.Cities)
	api.GET("/synonyms", h.Synonyms)
	api.GET("/routes", h.Routes)
	api.GET("/resolve", h.Resolve)
	api.GET("/fixed", h.Fixed)
	api.POST("/check", h.Check)
	api.POST("/metered", h.Metered)
	api.POST("/quote", h.Quote)
	return r
}
