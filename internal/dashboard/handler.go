package dashboard

import (
	"encoding/json"
	"log"
	"net/http"

	"cohera-backend/internal/auth"
)

type Handler struct {
	agg *Aggregator
}

func NewHandler(agg *Aggregator) *Handler {
	return &Handler{agg: agg}
}

// GetDashboard returns role-scoped dashboard statistics
// @Summary Dashboard data
// @Description Returns identity display fields and role-scoped counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardData "Dashboard payload"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Aggregation failure"
// @Router /dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		auth.Unauthenticated(w)
		return
	}

	data, err := h.agg.Build(r.Context(), sess)
	if err != nil {
		log.Printf("ERROR build dashboard: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Failed to load dashboard."})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}
