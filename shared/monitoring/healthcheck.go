package monitoring

import (
	"fmt"
	"net/http"
)

// RegisterHealthHandlers mounts /health and /status on the given mux so
// the monitor shares the API server's port.
func RegisterHealthHandlers(mux *http.ServeMux, monitor *Monitor) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if monitor.IsHealthy() {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "OK - %s", monitor.StatusSummary())
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "Service unhealthy - %s", monitor.StatusSummary())
	})

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "%s", monitor.StatusSummary())
	})
}
