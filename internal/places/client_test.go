package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoundingBox(t *testing.T) {
	box := NewBoundingBox(28.6139, 77.2090, 0.03)

	assert.InDelta(t, 77.179, box.MinLon, 0.0001)
	assert.InDelta(t, 28.5839, box.MinLat, 0.0001)
	assert.InDelta(t, 77.239, box.MaxLon, 0.0001)
	assert.InDelta(t, 28.6439, box.MaxLat, 0.0001)
}

func TestBoundingBox_Viewbox(t *testing.T) {
	box := BoundingBox{MinLon: 77.179, MinLat: 28.5839, MaxLon: 77.239, MaxLat: 28.6439}

	assert.Equal(t, "77.179,28.5839,77.239,28.6439", box.viewbox())
}

func TestClient_Search(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotQuery map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			q := r.URL.Query()
			gotQuery = map[string]string{
				"format":  q.Get("format"),
				"amenity": q.Get("amenity"),
				"bounded": q.Get("bounded"),
				"viewbox": q.Get("viewbox"),
				"limit":   q.Get("limit"),
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"display_name": "City Hospital", "lat": "28.6239", "lon": "77.2090"},
				{"display_name": "General Hospital", "lat": "28.6339", "lon": "77.2190"}
			]`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)
		box := NewBoundingBox(28.6139, 77.2090, 0.03)

		results, err := client.Search(context.Background(), "hospital", box, 20)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "City Hospital", results[0].DisplayName)
		assert.Equal(t, "28.6239", results[0].Lat)
		assert.Equal(t, "77.2090", results[0].Lon)

		assert.Equal(t, "json", gotQuery["format"])
		assert.Equal(t, "hospital", gotQuery["amenity"])
		assert.Equal(t, "1", gotQuery["bounded"])
		assert.Equal(t, box.viewbox(), gotQuery["viewbox"])
		assert.Equal(t, "20", gotQuery["limit"])
	})

	t.Run("empty result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)

		results, err := client.Search(context.Background(), "hospital", BoundingBox{}, 20)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)

		results, err := client.Search(context.Background(), "hospital", BoundingBox{}, 20)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
		assert.Nil(t, results)
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)

		results, err := client.Search(context.Background(), "hospital", BoundingBox{}, 20)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode search response")
		assert.Nil(t, results)
	})

	t.Run("server unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(server.URL, time.Second)

		results, err := client.Search(context.Background(), "hospital", BoundingBox{}, 20)

		assert.Error(t, err)
		assert.Nil(t, results)
	})
}
