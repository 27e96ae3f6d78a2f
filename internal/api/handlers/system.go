package handlers

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/dvloznov/savings-projector/internal/api/middleware"
)

// performanceTimeLayout adds milliseconds to the wire timestamp format.
const performanceTimeLayout = "2006-01-02 15:04:05.000"

// Performance handles GET /blackrock/challenge/v1/performance.
// Reports process diagnostics: heap in use and live goroutines.
func Performance(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"time":       time.Now().Format(performanceTimeLayout),
		"memory":     fmt.Sprintf("%.2f MB", float64(m.HeapInuse)/1024/1024),
		"goroutines": runtime.NumGoroutine(),
	})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
