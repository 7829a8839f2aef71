package distance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight-compare/internal/models"
)

func TestDistanceKm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("origin"); got != "400001" {
			t.Errorf("origin = %q", got)
		}
		w.Write([]byte(`{"routes":[{"distance_km":1412.5}]}`))
	}))
	defer srv.Close()

	km, err := NewClient(srv.URL, "test-key").DistanceKm(context.Background(), "400001", "110001")
	if err != nil {
		t.Fatalf("DistanceKm: %v", err)
	}
	if km != 1412.5 {
		t.Errorf("km = %v, want 1412.5", km)
	}
}

func TestDistanceKmNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k").DistanceKm(context.Background(), "400001", "999999")
	if !errors.Is(err, models.ErrRouteNotFound) {
		t.Errorf("err = %v, want ErrRouteNotFound", err)
	}
}

func TestDistanceKmServerErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k").DistanceKm(context.Background(), "400001", "110001")
	if !errors.Is(err, models.ErrProviderUnavailable) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}
}
