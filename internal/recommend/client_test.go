package recommend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Recommendations(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/42/recommendations", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("top_n"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Composting","description":"Organic waste handling","hours":12,"score":0.92},
			{"id":2,"name":"Beekeeping","hours":8,"score":0.71}
		]`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, nil)
	recs, err := client.Recommendations(context.Background(), 42, 3)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Composting", recs[0].Name)
	assert.InDelta(t, 0.92, recs[0].Score, 0.001)
	assert.Equal(t, uint(2), recs[1].ID)
}

func TestClient_Recommendations_ClampsTopN(t *testing.T) {
	t.Parallel()

	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.Query().Get("top_n"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, nil)
	ctx := context.Background()

	_, err := client.Recommendations(ctx, 1, 0)
	require.NoError(t, err)
	_, err = client.Recommendations(ctx, 1, -7)
	require.NoError(t, err)
	_, err = client.Recommendations(ctx, 1, MaxTopN+100)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "1", "20"}, got)
}

func TestClient_Recommendations_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, nil)
	_, err := client.Recommendations(context.Background(), 1, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Recommendations_BadBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, nil)
	_, err := client.Recommendations(context.Background(), 1, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
