// Package whatif exposes the delivery-time calculator via
// GET /api/whatif.
package whatif

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kilianp07/planboard/core/planner"
	"github.com/kilianp07/planboard/core/whatif"
)

// NewHandler serves GET /api/whatif?tasks=&avg_hours=&capacity=.
func NewHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		est, err := parseQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := whatif.EstimateDelivery(est)
		if err != nil {
			var iie planner.InvalidInputError
			if errors.As(err, &iie) {
				http.Error(w, iie.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func parseQuery(r *http.Request) (whatif.Estimate, error) {
	var est whatif.Estimate
	q := r.URL.Query()
	tasks, err := strconv.Atoi(q.Get("tasks"))
	if err != nil {
		return est, errors.New("tasks must be an integer")
	}
	avg, err := strconv.ParseFloat(q.Get("avg_hours"), 64)
	if err != nil {
		return est, errors.New("avg_hours must be a number")
	}
	capacity, err := strconv.ParseFloat(q.Get("capacity"), 64)
	if err != nil {
		return est, errors.New("capacity must be a number")
	}
	est.TaskCount = tasks
	est.AvgHoursPerTask = avg
	est.CapacityHours = capacity
	return est, nil
}
