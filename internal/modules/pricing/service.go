// README: Pricing service issues quotes: fixed price when one applies, metered fare otherwise.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"scandicitytaxi/internal/metrics"
	"scandicitytaxi/internal/types"
)

var (
	ErrInvalidTrip   = errors.New("distance and duration must be non-negative and within trip limits")
	ErrRouteNotFound = errors.New("no fixed price for route")
)

// Upper bounds for a single metered trip.
const (
	MaxTripKm  = 2000.0
	MaxTripMin = 48 * 60.0
)

type Service struct {
	tariff   Tariff
	currency string
	log      zerolog.Logger
}

func NewService(tariff Tariff, currency string, log zerolog.Logger) *Service {
	if currency == "" {
		currency = types.CurrencySEK
	}
	return &Service{tariff: tariff, currency: currency, log: log}
}

func (s *Service) Tariff() Tariff {
	return s.tariff
}

func (s *Service) Currency() string {
	return s.currency
}

func (s *Service) ResolveCity(ctx context.Context, address string) (string, bool) {
	city, ok := ResolveCity(address)
	metrics.RecordCityResolution(ok)
	if !ok {
		s.log.Debug().Str("address", address).Msg("address did not resolve to a city")
	}
	return city, ok
}

// FixedPrice returns ErrRouteNotFound when the pair has no fixed price.
func (s *Service) FixedPrice(ctx context.Context, from, to string) (types.Money, error) {
	price, ok := FixedPrice(from, to)
	if !ok {
		return types.Money{}, ErrRouteNotFound
	}
	return types.Money{Amount: price, Currency: s.currency}, nil
}

func (s *Service) CheckPrice(ctx context.Context, fromAddress, toAddress string) CheckResult {
	res := CheckPrice(fromAddress, toAddress)
	metrics.RecordCityResolution(res.FromCity != nil)
	metrics.RecordCityResolution(res.ToCity != nil)
	return res
}

// Metered prices a trip with the configured tariff.
func (s *Service) Metered(ctx context.Context, distanceKm, durationMin float64) (types.Money, error) {
	if !validTripValue(distanceKm, MaxTripKm) || !validTripValue(durationMin, MaxTripMin) {
		return types.Money{}, ErrInvalidTrip
	}
	// A configured tariff can still push the total past int64.
	if s.tariff.total(distanceKm, durationMin) >= math.MaxInt64 {
		return types.Money{}, fmt.Errorf("%w: fare out of range", ErrInvalidTrip)
	}
	return types.Money{Amount: s.tariff.Fare(distanceKm, durationMin), Currency: s.currency}, nil
}

// Quote prefers the fixed price between the two addresses and falls back to
// the metered fare. Trip values are only required and validated on fallback.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (Quote, error) {
	check := s.CheckPrice(ctx, req.FromAddress, req.ToAddress)
	q := Quote{FromCity: check.FromCity, ToCity: check.ToCity}

	if check.HasFixedPrice {
		q.Source = SourceFixed
		q.Amount = types.Money{Amount: *check.Price, Currency: s.currency}
	} else {
		if req.DistanceKm == nil || req.DurationMin == nil {
			return Quote{}, fmt.Errorf("%w: distance and duration are required without a fixed price", ErrInvalidTrip)
		}
		amount, err := s.Metered(ctx, *req.DistanceKm, *req.DurationMin)
		if err != nil {
			return Quote{}, err
		}
		q.Source = SourceMetered
		q.Amount = amount
	}

	metrics.RecordQuote(string(q.Source))
	s.log.Debug().
		Str("source", string(q.Source)).
		Int64("amount", q.Amount.Amount).
		Str("from_city", derefOr(q.FromCity, "")).
		Str("to_city", derefOr(q.ToCity, "")).
		Msg("quote issued")
	return q, nil
}

func validTripValue(v, limit float64) bool {
	return v >= 0 && v <= limit
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
