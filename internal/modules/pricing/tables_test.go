package pricing

import (
	"strings"
	"testing"
)

func TestTables_CitiesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Cities() {
		if seen[c] {
			t.Errorf("duplicate city %q", c)
		}
		seen[c] = true
	}
}

// A name must not be listed before a longer name that contains it.
func TestTables_LongerNamesComeFirst(t *testing.T) {
	list := Cities()
	for i := range list {
		for j := i + 1; j < len(list); j++ {
			if strings.Contains(list[j], list[i]) {
				t.Errorf("%q (index %d) shadows %q (index %d)", list[i], i, list[j], j)
			}
		}
	}

	syns := Synonyms()
	for i := range syns {
		for j := i + 1; j < len(syns); j++ {
			if strings.Contains(syns[j].Fragment, syns[i].Fragment) {
				t.Errorf("synonym %q shadows %q", syns[i].Fragment, syns[j].Fragment)
			}
		}
	}
}

func TestTables_ReferencesAreCanonical(t *testing.T) {
	known := map[string]bool{}
	for _, c := range Cities() {
		known[c] = true
	}
	for _, syn := range Synonyms() {
		if !known[syn.City] {
			t.Errorf("synonym %q maps to unknown city %q", syn.Fragment, syn.City)
		}
	}
	for _, r := range Routes() {
		if !known[r.From] || !known[r.To] {
			t.Errorf("route %s|%s references unknown city", r.From, r.To)
		}
		if r.Price <= 0 {
			t.Errorf("route %s|%s has non-positive price %d", r.From, r.To, r.Price)
		}
	}
}

func TestTables_AccessorsReturnCopies(t *testing.T) {
	c := Cities()
	c[0] = "PARIS"
	if Cities()[0] != "FLEN" {
		t.Error("Cities() exposed the backing slice")
	}

	s := Synonyms()
	s[0].City = "PARIS"
	if Synonyms()[0].City != "ARLANDA" {
		t.Error("Synonyms() exposed the backing slice")
	}

	p := Prices()
	p["FLEN|ARLANDA"] = 1
	delete(p, "FLEN|GNESTA")
	if got, _ := FixedPrice("FLEN", "ARLANDA"); got != 2499 {
		t.Errorf("Prices() exposed the backing map, FLEN|ARLANDA = %d", got)
	}
	if _, ok := FixedPrice("FLEN", "GNESTA"); !ok {
		t.Error("Prices() exposed the backing map, FLEN|GNESTA deleted")
	}
}

func TestRoutes_SortedAndComplete(t *testing.T) {
	routes := Routes()
	if len(routes) != len(Prices()) {
		t.Fatalf("Routes() len = %d, want %d", len(routes), len(Prices()))
	}
	if len(routes) != 34 {
		t.Errorf("expected 34 routes (17 each way), got %d", len(routes))
	}
	for i := 1; i < len(routes); i++ {
		prev, cur := routes[i-1], routes[i]
		if prev.From > cur.From || (prev.From == cur.From && prev.To >= cur.To) {
			t.Errorf("routes out of order at %d: %v then %v", i, prev, cur)
		}
	}
}

func TestAsymmetricRoutes_ShippedDataIsSymmetric(t *testing.T) {
	if got := AsymmetricRoutes(); len(got) != 0 {
		for _, a := range got {
			t.Errorf("asymmetric route %s|%s price %d reverse %v", a.From, a.To, a.Price, a.ReversePrice)
		}
	}
}

func TestAsymmetricRoutes_DetectsDivergence(t *testing.T) {
	orig := prices
	t.Cleanup(func() { prices = orig })

	prices = map[string]int64{
		"FLEN|GNESTA":     1199,
		"GNESTA|FLEN":     1099,
		"FLEN|ARLANDA":    2499,
		"SKAVSTA|ARLANDA": 1500,
		"ARLANDA|SKAVSTA": 1500,
	}

	got := AsymmetricRoutes()
	if len(got) != 3 {
		t.Fatalf("AsymmetricRoutes() = %v, want 3 entries", got)
	}

	if got[0].From != "FLEN" || got[0].To != "ARLANDA" || got[0].ReversePrice != nil {
		t.Errorf("missing reverse not reported first: %+v", got[0])
	}
	if got[1].From != "FLEN" || got[1].To != "GNESTA" || got[1].ReversePrice == nil || *got[1].ReversePrice != 1099 {
		t.Errorf("price mismatch not reported: %+v", got[1])
	}
	if got[2].From != "GNESTA" || got[2].To != "FLEN" || *got[2].ReversePrice != 1199 {
		t.Errorf("mismatch not reported from both sides: %+v", got[2])
	}
}
