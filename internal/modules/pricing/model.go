// README: Pricing value types: routes, synonyms, tariffs, check results and quotes.
package pricing

import "scandicitytaxi/internal/types"

// Synonym maps an alternate address fragment to a canonical city.
type Synonym struct {
	Fragment string `json:"fragment"`
	City     string `json:"city"`
}

// Route is a single fixed-price entry.
type Route struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Price int64  `json:"price"`
}

// Tariff holds the metered fare components.
type Tariff struct {
	StartFee float64
	PerKm    float64
	PerMin   float64
}

// CheckResult reports whether a fixed price applies between two addresses.
// Nil fields mean the value could not be determined.
type CheckResult struct {
	HasFixedPrice bool    `json:"has_fixed_price"`
	Price         *int64  `json:"price"`
	FromCity      *string `json:"from_city"`
	ToCity        *string `json:"to_city"`
}

type Source string

const (
	SourceFixed   Source = "fixed"
	SourceMetered Source = "metered"
)

// QuoteRequest carries the trip values used for the metered fallback.
// Nil means the caller did not supply them.
type QuoteRequest struct {
	FromAddress string
	ToAddress   string
	DistanceKm  *float64
	DurationMin *float64
}

type Quote struct {
	Source   Source      `json:"source"`
	Amount   types.Money `json:"amount"`
	FromCity *string     `json:"from_city"`
	ToCity   *string     `json:"to_city"`
}

// Asymmetry describes a route whose reverse direction is missing or priced differently.
type Asymmetry struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Price        int64  `json:"price"`
	ReversePrice *int64 `json:"reverse_price"`
}
