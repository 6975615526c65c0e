package tradingeconomics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

func newTestClient(baseURL string) *Client {
	logger, _ := test.NewNullLogger()
	return NewClient(baseURL, "guest:guest", 5*time.Second, logger)
}

func TestClient_CountryIndicator_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/country/United States/Interest Rate", r.URL.Path)
		assert.Equal(t, "guest:guest", r.URL.Query().Get("c"))
		assert.Equal(t, "json", r.URL.Query().Get("f"))

		rows := []IndicatorRow{
			{
				Country:         "United States",
				Category:        "Interest Rate",
				LatestValue:     float64Ptr(5.5),
				LatestValueDate: "2025-08-01T00:00:00",
				PreviousValue:   float64Ptr(5.25),
				Unit:            "percent",
				Frequency:       "Daily",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(rows))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rows, err := client.CountryIndicator(context.Background(), "United States", "Interest Rate")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "United States", rows[0].Country)
	assert.Equal(t, "Interest Rate", rows[0].Category)
	require.NotNil(t, rows[0].LatestValue)
	assert.Equal(t, 5.5, *rows[0].LatestValue)
	assert.Equal(t, "percent", rows[0].Unit)
}

func TestClient_CountryIndicator_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, err := w.Write([]byte("credentials not valid"))
		require.NoError(t, err)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rows, err := client.CountryIndicator(context.Background(), "Japan", "Inflation Rate")
	require.Error(t, err)
	assert.Nil(t, rows)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "credentials not valid")
}

func TestClient_CountryIndicator_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("<html>maintenance</html>"))
		require.NoError(t, err)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CountryIndicator(context.Background(), "Canada", "GDP Growth Rate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse provider response")
}

func TestClient_AllIndicators_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/country/all", r.URL.Path)

		rows := []IndicatorRow{
			{Country: "Sweden", Category: "Interest Rate"},
			{Country: "Mexico", Category: "Interest Rate"},
		}
		require.NoError(t, json.NewEncoder(w).Encode(rows))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rows, err := client.AllIndicators(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.CountryIndicator(ctx, "Norway", "Unemployment Rate")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIndicatorRow_Unmarshal_NullValues(t *testing.T) {
	payload := `[{"Country":"Brazil","Category":"GDP Growth Rate","LatestValue":null,"PreviousValue":null,"Unit":""}]`

	var rows []IndicatorRow
	require.NoError(t, json.Unmarshal([]byte(payload), &rows))
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].LatestValue)
	assert.Nil(t, rows[0].PreviousValue)
	assert.Equal(t, "Brazil", rows[0].Country)
}
