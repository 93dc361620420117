package workunit

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/centavo/centavo/pkg/money"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type WorkUnitDTO struct {
	Id             int     `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	EstimatedHours float64 `json:"estimatedHours"`
	CategoryId     *int    `json:"categoryId,omitempty"`
	AccountId      *int    `json:"accountId,omitempty"`
}

type DayAllocationDTO struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	units, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]WorkUnitDTO, 0, len(units))
	for _, u := range units {
		dtos = append(dtos, toDTO(u))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new work unit")
	w.Header().Set("Content-Type", "application/json")

	var dto WorkUnitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.EstimatedHours <= 0 {
		http.Error(w, "estimatedHours must be positive", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), fromDTO(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id64, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var dto WorkUnitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == 0 || dto.Id != int(id64) {
		http.Error(w, "Invalid work unit id in request body", http.StatusBadRequest)
		return
	}
	if dto.EstimatedHours <= 0 {
		http.Error(w, "estimatedHours must be positive", http.StatusBadRequest)
		return
	}

	ok, err := h.service.Update(r.Context(), fromDTO(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Work unit not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id64, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.service.Delete(r.Context(), int(id64))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Work unit not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetAllocations answers GET /api/workunit/{id}/allocations with the unit's
// estimated hours spread over days. Query parameters: start (required,
// YYYY-MM-DD), hoursPerDay (required, positive), skipWeekends (optional).
func (h *Handler) GetAllocations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id64, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	start, err := time.Parse(dateLayout, query.Get("start"))
	if err != nil {
		http.Error(w, "start must be a date in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}
	hoursPerDay, err := strconv.ParseFloat(query.Get("hoursPerDay"), 64)
	if err != nil || hoursPerDay <= 0 {
		http.Error(w, "hoursPerDay must be a positive number", http.StatusBadRequest)
		return
	}
	skipWeekends := query.Get("skipWeekends") == "true"

	allocations, err := h.service.Allocations(r.Context(), int(id64), hoursToDuration(hoursPerDay), skipWeekends, start)
	if err != nil {
		if errors.Is(err, ErrWorkUnitNotFound) {
			http.Error(w, "Work unit not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]DayAllocationDTO, 0, len(allocations))
	for _, a := range allocations {
		dtos = append(dtos, DayAllocationDTO{
			Date:  a.Date.Format(dateLayout),
			Hours: a.Hours.Hours(),
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toDTO(w WorkUnit) WorkUnitDTO {
	return WorkUnitDTO{
		Id:             w.Id,
		Name:           w.Name,
		Price:          w.Price.Float(),
		EstimatedHours: w.EstimatedHours.Hours(),
		CategoryId:     w.CategoryId,
		AccountId:      w.AccountId,
	}
}

func fromDTO(dto WorkUnitDTO) WorkUnit {
	return WorkUnit{
		Id:             dto.Id,
		Name:           dto.Name,
		Price:          money.FromFloat(dto.Price),
		EstimatedHours: hoursToDuration(dto.EstimatedHours),
		CategoryId:     dto.CategoryId,
		AccountId:      dto.AccountId,
	}
}

// hoursToDuration converts fractional hours, rounded to whole minutes.
func hoursToDuration(hours float64) time.Duration {
	return time.Duration(math.Round(hours*60)) * time.Minute
}
