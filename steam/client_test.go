package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAppList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"applist":{"apps":[{"appid":570,"name":"Dota 2"},{"appid":1145350,"name":"Hades II"}]}}`))
	}))
	defer server.Close()

	client := NewClient("", server.URL)
	apps, err := client.GetAppList(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, int64(570), apps[0].AppID)
	assert.Equal(t, "Hades II", apps[1].Name)
}

func TestGetAppDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1145350", r.URL.Query().Get("appids"))
		w.Write([]byte(`{"1145350":{"success":true,"data":{
			"name":"Hades II",
			"genres":[{"description":"Action"},{"description":"Indie"}],
			"categories":[{"description":"Single-player"}],
			"recommendations":{"total":91234},
			"metacritic":{"score":93},
			"price_overview":{"currency":"USD","initial":2999,"final":2399,"discount_percent":20},
			"release_date":{"date":"24 Sep, 2025"}}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	details, err := client.GetAppDetails(context.Background(), 1145350)
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, "Hades II", details.Name)
	assert.Equal(t, int64(91234), details.Recommendations.Total)
	assert.Equal(t, 93, details.Metacritic.Score)
	require.NotNil(t, details.PriceOverview)
	assert.Equal(t, int64(2399), details.PriceOverview.FinalCents)
	assert.Equal(t, 20, details.PriceOverview.DiscountPercent)
}

func TestGetAppDetailsUnlisted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"99999":{"success":false}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	details, err := client.GetAppDetails(context.Background(), 99999)
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestGetPriceOverviewFreeApp(t *testing.T) {
	// The filtered endpoint returns an empty array for priceless apps.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"570":{"success":true,"data":[]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	price, err := client.GetPriceOverview(context.Background(), 570)
	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestGetPriceOverview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"1145350":{"success":true,"data":{"price_overview":{"currency":"USD","initial":2999,"final":1499,"discount_percent":50}}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	price, err := client.GetPriceOverview(context.Background(), 1145350)
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, int64(1499), price.FinalCents)
}

func TestGetJSONNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.GetAppDetails(context.Background(), 570)
	assert.Error(t, err)
}
