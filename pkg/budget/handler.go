package budget

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type CategoryStatusDTO struct {
	CategoryId  int     `json:"categoryId"`
	Name        string  `json:"name"`
	Spent       float64 `json:"spent"`
	Limit       float64 `json:"limit"`
	Percentage  float64 `json:"percentage"`
	Status      string  `json:"status"`
	Depth       int     `json:"depth"`
	HasChildren bool    `json:"hasChildren"`
	Faulted     bool    `json:"faulted,omitempty"`
}

type CsvRenderer interface {
	RenderStatus(statuses []CategoryStatus) (string, error)
}

type Handler struct {
	service  Service
	renderer CsvRenderer
}

func NewHandler(service Service, renderer CsvRenderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// GetStatus answers GET /api/budget/status?from=YYYY-MM-DD&to=YYYY-MM-DD.
// The window is half-open: transactions on the "to" date are excluded.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	from, to, err := parsePeriod(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	statuses, err := h.service.GetStatus(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]CategoryStatusDTO, 0, len(statuses))
	for _, s := range statuses {
		dtos = append(dtos, CategoryStatusDTO{
			CategoryId:  s.CategoryId,
			Name:        s.Name,
			Spent:       s.Spent.Float(),
			Limit:       s.Limit.Float(),
			Percentage:  s.Percentage,
			Status:      string(s.Status),
			Depth:       s.Depth,
			HasChildren: s.HasChildren,
			Faulted:     s.Faulted,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetStatusCsv answers GET /api/budget/status/csv with a downloadable report
// for the same period.
func (h *Handler) GetStatusCsv(w http.ResponseWriter, r *http.Request) {
	from, to, err := parsePeriod(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	statuses, err := h.service.GetStatus(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rendered, err := h.renderer.RenderStatus(statuses)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := "budget_" + from.Format(dateLayout) + "_" + to.Format(dateLayout) + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rendered)); err != nil {
		log.Errorf("Error writing csv response: %v", err)
	}
}

func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()
	from, err := time.Parse(dateLayout, query.Get("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(dateLayout, query.Get("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
