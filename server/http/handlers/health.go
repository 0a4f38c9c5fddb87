package handlers

import (
	"net/http"

	"github.com/goccy/go-json"

	"dogbreed-service/internal/breeds/catalog"
)

type healthResponse struct {
	Status string `json:"status"`
	Breeds int    `json:"breeds"`
}

// Health reports liveness and the size of the served catalog. An empty catalog is still "ok".
func Health(catalogs *catalog.Holder) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", Breeds: catalogs.Current().Len()})
	}
}
