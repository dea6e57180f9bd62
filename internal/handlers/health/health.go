package health

import (
	"encoding/json"
	"log"
	"net/http"
)

// Handler reports that the instance is serving.
func Handler(instance string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]string{
			"status":   "ok",
			"instance": instance,
		})
		if err != nil {
			log.Printf("WARN: write health response: %v", err)
		}
	}
}
