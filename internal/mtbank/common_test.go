package mtbank

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/zmsync/go-mtbank-sync/internal/common/httpclient"
	"github.com/zmsync/go-mtbank-sync/internal/common/retry"
	"github.com/zmsync/go-mtbank-sync/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := config.Bank{
		BaseURL:             ts.URL + "/",
		AppVersion:          "2.0.19",
		HTTPTimeout:         5 * time.Second,
		StatementWindowDays: 10,
		StatementGap:        time.Millisecond,
		MaxInFlightRequests: 4,
	}

	wrapper := httpclient.NewRequestWrapper(resty.New().SetCookieJar(nil), nil, "mtbank", "[TEST]")
	return NewClient(cfg, wrapper)
}

func newTestRetryer() retry.Retryer {
	return retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
		MaxRetries:        1,
		MaxBackoffTime:    time.Millisecond,
		BackoffMultiplier: 1.5,
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
