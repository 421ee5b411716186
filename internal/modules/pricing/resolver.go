// README: City resolution from free-text addresses and fixed price lookup by city pair.
package pricing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// normalize composes the input to NFC and upper-cases it with Swedish rules,
// so "västerås" and a decomposed "västerås" both become "VÄSTERÅS".
func normalize(s string) string {
	// cases.Caser keeps state; one per call.
	return cases.Upper(language.Swedish).String(norm.NFC.String(s))
}

// ResolveCity returns the canonical city contained in address. Synonyms are
// tried first, then canonical names, each in table order; the first hit wins.
func ResolveCity(address string) (string, bool) {
	if address == "" {
		return "", false
	}
	normalized := normalize(address)

	for _, syn := range synonyms {
		if strings.Contains(normalized, syn.Fragment) {
			return syn.City, true
		}
	}
	for _, city := range cities {
		if strings.Contains(normalized, city) {
			return city, true
		}
	}
	return "", false
}

// FixedPrice looks up the price between two city names. The names are
// normalized but not checked against the city list.
func FixedPrice(from, to string) (int64, bool) {
	if from == "" || to == "" {
		return 0, false
	}
	price, ok := prices[routeKey(normalize(from), normalize(to))]
	return price, ok
}
