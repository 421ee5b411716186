// README: Common money value object used across modules.
package types

// CurrencySEK is the only currency prices are quoted in.
const CurrencySEK = "SEK"

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
