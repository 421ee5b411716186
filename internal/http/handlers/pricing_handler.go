// README: Pricing handlers: table listings, city resolution, fixed price check, metered fare and quotes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scandicitytaxi/internal/modules/pricing"
)

type PricingHandler struct {
	pricing *pricing.Service
}

func NewPricingHandler(svc *pricing.Service) *PricingHandler {
	return &PricingHandler{pricing: svc}
}

type checkReq struct {
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
}

type meteredReq struct {
	DistanceKm  *float64 `json:"distance_km" binding:"required"`
	DurationMin *float64 `json:"duration_min" binding:"required"`
}

// Trip values are optional here; the service requires them only when no
// fixed price applies.
type quoteReq struct {
	FromAddress string   `json:"from_address"`
	ToAddress   string   `json:"to_address"`
	DistanceKm  *float64 `json:"distance_km"`
	DurationMin *float64 `json:"duration_min"`
}

func (h *PricingHandler) Cities(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"cities": pricing.Cities()})
}

func (h *PricingHandler) Synonyms(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"synonyms": pricing.Synonyms()})
}

func (h *PricingHandler) Routes(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"routes": pricing.Routes(), "currency": h.pricing.Currency()})
}

func (h *PricingHandler) Resolve(c *gin.Context) {
	address := c.Query("address")
	var city *string
	if v, ok := h.pricing.ResolveCity(c.Request.Context(), address); ok {
		city = &v
	}
	writeJSON(c, http.StatusOK, gin.H{"address": address, "city": city})
}

func (h *PricingHandler) Fixed(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		writeError(c, http.StatusBadRequest, "missing from or to")
		return
	}
	price, err := h.pricing.FixedPrice(c.Request.Context(), from, to)
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"from": from, "to": to, "price": price})
}

func (h *PricingHandler) Check(c *gin.Context) {
	var req checkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(c, http.StatusOK, h.pricing.CheckPrice(c.Request.Context(), req.FromAddress, req.ToAddress))
}

func (h *PricingHandler) Metered(c *gin.Context) {
	var req meteredReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "distance_km and duration_min are required")
		return
	}
	amount, err := h.pricing.Metered(c.Request.Context(), *req.DistanceKm, *req.DurationMin)
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, amount)
}

func (h *PricingHandler) Quote(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	q, err := h.pricing.Quote(c.Request.Context(), pricing.QuoteRequest{
		FromAddress: req.FromAddress,
		ToAddress:   req.ToAddress,
		DistanceKm:  req.DistanceKm,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, q)
}
