// README: Symmetry audit over the price table.
package pricing

// AsymmetricRoutes lists every route whose reverse direction is missing or
// carries a different price, in Routes order.
func AsymmetricRoutes() []Asymmetry {
	var out []Asymmetry
	for _, r := range Routes() {
		reverse, ok := prices[routeKey(r.To, r.From)]
		switch {
		case !ok:
			out = append(out, Asymmetry{From: r.From, To: r.To, Price: r.Price})
		case reverse != r.Price:
			rp := reverse
			out = append(out, Asymmetry{From: r.From, To: r.To, Price: r.Price, ReversePrice: &rp})
		}
	}
	return out
}
