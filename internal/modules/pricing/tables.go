// README: Static fixed-price tables for the Flen area. Built once, never mutated.
package pricing

import (
	"sort"
	"strings"
)

const routeSep = "|"

// cities is ordered: when an address contains more than one name, the
// earliest entry wins. Longer names must precede names they contain.
var cities = []string{
	"FLEN",
	"SPARREHOLM",
	"HÄLLEFORSNÄS",
	"MALMKÖPING",
	"KATRINEHOLM",
	"STRÄNGNÄS",
	"GNESTA",
	"ESKILSTUNA",
	"NYKÖPING",
	"ARLANDA",
	"SKAVSTA",
	"BROMMA",
	"VÄSTERÅS FLYGPLATS",
	"STOCKHOLM",
	"VÄSTERÅS",
	"NORRKÖPING",
	"SÖDERTÄLJE",
	"ÖREBRO",
}

// synonyms are checked before cities, in this order.
var synonyms = []Synonym{
	{Fragment: "ARLANDA FLYGPLATS", City: "ARLANDA"},
	{Fragment: "STOCKHOLM ARLANDA", City: "ARLANDA"},
	{Fragment: "SKAVSTA FLYGPLATS", City: "SKAVSTA"},
	{Fragment: "STOCKHOLM SKAVSTA", City: "SKAVSTA"},
	{Fragment: "BROMMA FLYGPLATS", City: "BROMMA"},
	{Fragment: "STOCKHOLM BROMMA", City: "BROMMA"},
	{Fragment: "ESKILSTUNA CENTRUM", City: "ESKILSTUNA"},
	{Fragment: "STOCKHOLM CENTRAL", City: "STOCKHOLM"},
	{Fragment: "STOCKHOLM CITY", City: "STOCKHOLM"},
}

// prices is keyed by "FROM|TO" in SEK. Both directions are listed explicitly.
var prices = map[string]int64{
	"FLEN|SPARREHOLM":         429,
	"FLEN|HÄLLEFORSNÄS":       399,
	"FLEN|MALMKÖPING":         449,
	"FLEN|KATRINEHOLM":        699,
	"FLEN|STRÄNGNÄS":          1199,
	"FLEN|GNESTA":             1199,
	"FLEN|ESKILSTUNA":         1299,
	"FLEN|NYKÖPING":           1299,
	"FLEN|ARLANDA":            2499,
	"FLEN|SKAVSTA":            899,
	"FLEN|BROMMA":             2890,
	"FLEN|VÄSTERÅS FLYGPLATS": 2399,
	"FLEN|STOCKHOLM":          2690,
	"FLEN|VÄSTERÅS":           2299,
	"FLEN|NORRKÖPING":         2099,
	"FLEN|SÖDERTÄLJE":         1990,
	"FLEN|ÖREBRO":             2699,

	"SPARREHOLM|FLEN":         429,
	"HÄLLEFORSNÄS|FLEN":       399,
	"MALMKÖPING|FLEN":         449,
	"KATRINEHOLM|FLEN":        699,
	"STRÄNGNÄS|FLEN":          1199,
	"GNESTA|FLEN":             1199,
	"ESKILSTUNA|FLEN":         1299,
	"NYKÖPING|FLEN":           1299,
	"ARLANDA|FLEN":            2499,
	"SKAVSTA|FLEN":            899,
	"BROMMA|FLEN":             2890,
	"VÄSTERÅS FLYGPLATS|FLEN": 2399,
	"STOCKHOLM|FLEN":          2690,
	"VÄSTERÅS|FLEN":           2299,
	"NORRKÖPING|FLEN":         2099,
	"SÖDERTÄLJE|FLEN":         1990,
	"ÖREBRO|FLEN":             2699,
}

// DefaultTariff is the metered fare used when no fixed price applies.
var DefaultTariff = Tariff{
	StartFee: 50,
	PerKm:    14.9,
	PerMin:   9.6,
}

func routeKey(from, to string) string {
	return from + routeSep + to
}

// Cities returns the canonical city names in match-priority order.
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// Synonyms returns the synonym table in match-priority order.
func Synonyms() []Synonym {
	out := make([]Synonym, len(synonyms))
	copy(out, synonyms)
	return out
}

// Prices returns a copy of the price table keyed by "FROM|TO".
func Prices() map[string]int64 {
	out := make(map[string]int64, len(prices))
	for k, v := range prices {
		out[k] = v
	}
	return out
}

// Routes returns the price table as a slice sorted by origin, then destination.
func Routes() []Route {
	out := make([]Route, 0, len(prices))
	for k, v := range prices {
		from, to, _ := strings.Cut(k, routeSep)
		out = append(out, Route{From: from, To: to, Price: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}
