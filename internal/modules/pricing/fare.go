// README: Price check for address pairs and metered fare calculation.
package pricing

import "math"

// CheckPrice resolves both addresses and reports the fixed price between them,
// if any. Cities that resolved are reported even when the other side did not.
func CheckPrice(fromAddress, toAddress string) CheckResult {
	var res CheckResult
	from, fromOK := ResolveCity(fromAddress)
	if fromOK {
		res.FromCity = &from
	}
	to, toOK := ResolveCity(toAddress)
	if toOK {
		res.ToCity = &to
	}
	if !fromOK || !toOK {
		return res
	}
	if price, ok := FixedPrice(from, to); ok {
		res.HasFixedPrice = true
		res.Price = &price
	}
	return res
}

// MeteredFare prices a trip with DefaultTariff. Inputs are not validated.
func MeteredFare(distanceKm, timeMin float64) int64 {
	return DefaultTariff.Fare(distanceKm, timeMin)
}

// Fare returns round(start + km*perKm + min*perMin).
func (t Tariff) Fare(distanceKm, timeMin float64) int64 {
	return int64(math.Round(t.total(distanceKm, timeMin)))
}

func (t Tariff) total(distanceKm, timeMin float64) float64 {
	return t.StartFee + distanceKm*t.PerKm + timeMin*t.PerMin
}
