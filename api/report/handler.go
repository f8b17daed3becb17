// Package report exposes the production KPI report. Rows live in a
// session store: PUT replaces them, GET computes the report over the
// current set.
package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	coremetrics "github.com/kilianp07/planboard/core/metrics"
	"github.com/kilianp07/planboard/core/report"
	"github.com/kilianp07/planboard/internal/eventbus"
)

// NewHandler serves GET /api/report and PUT /api/report/rows on the same
// handler, dispatching on method.
func NewHandler(store report.Store, bus *eventbus.Bus[coremetrics.ReportRun]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			serveReport(w, store, bus)
		case http.MethodPut:
			replaceRows(w, r, store)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}

func serveReport(w http.ResponseWriter, store report.Store, bus *eventbus.Bus[coremetrics.ReportRun]) {
	rep, err := report.Compute(store.List())
	if err != nil {
		if errors.Is(err, report.ErrNoRows) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if bus != nil {
		bus.Publish(coremetrics.ReportRun{
			Rows:       len(rep.Lines),
			Attainment: rep.Summary.Attainment,
			Time:       time.Now(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func replaceRows(w http.ResponseWriter, r *http.Request, store report.Store) {
	var rows []report.Row
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	store.Replace(rows)
	w.WriteHeader(http.StatusNoContent)
}
