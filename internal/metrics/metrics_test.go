package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordQuote(t *testing.T) {
	before := testutil.ToFloat64(quotesTotal.WithLabelValues("fixed"))
	RecordQuote("fixed")
	after := testutil.ToFloat64(quotesTotal.WithLabelValues("fixed"))
	if after-before != 1 {
		t.Errorf("fixed quotes delta = %v, want 1", after-before)
	}
}

func TestRecordCityResolution(t *testing.T) {
	hits := testutil.ToFloat64(cityResolutionsTotal.WithLabelValues("hit"))
	misses := testutil.ToFloat64(cityResolutionsTotal.WithLabelValues("miss"))

	RecordCityResolution(true)
	RecordCityResolution(false)
	RecordCityResolution(false)

	if got := testutil.ToFloat64(cityResolutionsTotal.WithLabelValues("hit")) - hits; got != 1 {
		t.Errorf("hit delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(cityResolutionsTotal.WithLabelValues("miss")) - misses; got != 2 {
		t.Errorf("miss delta = %v, want 2", got)
	}
}

func TestHandlerExposesPricingMetrics(t *testing.T) {
	RecordQuote("metered")
	RecordHTTPRequest(http.MethodGet, "/health", "200", 5*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"pricing_quotes_total", "pricing_http_request_duration_seconds"} {
		if !strings.Contains(body, name) {
			t.Errorf("scrape output missing %s", name)
		}
	}
}

func TestRecordHTTPRequest_DurationCarriesStatus(t *testing.T) {
	RecordHTTPRequest(http.MethodPost, "/api/pricing/quote", "400", 2*time.Millisecond)

	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/pricing/quote", "400")); got < 1 {
		t.Errorf("requests counter = %v, want >= 1", got)
	}

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	want := `pricing_http_request_duration_seconds_count{method="POST",route="/api/pricing/quote",status="400"}`
	if !strings.Contains(rec.Body.String(), want) {
		t.Errorf("scrape output missing %s", want)
	}
}
