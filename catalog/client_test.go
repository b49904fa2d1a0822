package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Arjun-733/OfferSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offersServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

const validOffer = `{"id":"o1","scope":"product","product_id":"p1","discount_type":"percentage","discount_value":20,"active":true}`

func TestFetchOffersBareArray(t *testing.T) {
	server := offersServer(t, http.StatusOK, `[`+validOffer+`]`)
	client := NewClient(server.URL, time.Second)

	offers, err := client.FetchOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "o1", offers[0].ID)
	assert.Equal(t, models.ScopeProduct, offers[0].Scope)
}

func TestFetchOffersEnvelopeShapes(t *testing.T) {
	for _, body := range []string{
		`{"offers":[` + validOffer + `]}`,
		`{"data":[` + validOffer + `]}`,
	} {
		server := offersServer(t, http.StatusOK, body)
		client := NewClient(server.URL, time.Second)

		offers, err := client.FetchOffers(context.Background())
		require.NoError(t, err)
		require.Len(t, offers, 1)
	}
}

func TestFetchOffersSkipsMalformedRecords(t *testing.T) {
	body := `[` + validOffer + `,{"id":"bad","scope":"category","discount_type":"percentage","discount_value":5}]`
	server := offersServer(t, http.StatusOK, body)
	client := NewClient(server.URL, time.Second)

	offers, err := client.FetchOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "o1", offers[0].ID)
}

func TestFetchOffersUpstreamErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http error status", http.StatusInternalServerError, `{}`},
		{"malformed payload", http.StatusOK, `{"not json`},
		{"no offer list", http.StatusOK, `{"message":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := offersServer(t, tt.status, tt.body)
			client := NewClient(server.URL, time.Second)

			_, err := client.FetchOffers(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestFetchOffersUnreachableUpstream(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/offers", 200*time.Millisecond)
	_, err := client.FetchOffers(context.Background())
	assert.Error(t, err)
}
