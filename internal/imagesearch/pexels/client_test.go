package pexels

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchImage(t *testing.T) {
	tests := []struct {
		name        string
		handler     func(t *testing.T, w http.ResponseWriter, r *http.Request)
		want        string
		wantErr     bool
		wantNoImage bool
	}{
		{
			name: "first photo is returned",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/search", r.URL.Path)
				assert.Equal(t, "test-key", r.Header.Get("Authorization"))
				assert.Equal(t, "passport", r.URL.Query().Get("query"))
				assert.Equal(t, "1", r.URL.Query().Get("per_page"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"total_results": 2, "page": 1, "per_page": 1, "photos": [
					{"id": 1, "src": {"medium": "https://images.pexels.com/photos/1/medium.jpg"}}
				]}`))
			},
			want: "https://images.pexels.com/photos/1/medium.jpg",
		},
		{
			name: "no photos",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"total_results": 0, "photos": []}`))
			},
			wantErr:     true,
			wantNoImage: true,
		},
		{
			name: "unauthorized",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.handler(t, w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-key", 5*time.Second)
			got, err := client.SearchImage(context.Background(), "passport")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantNoImage, errors.Is(err, ErrNoImage))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
