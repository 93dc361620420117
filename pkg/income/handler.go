package income

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/centavo/centavo/pkg/money"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type SourceDTO struct {
	Id         int     `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	PayDay     int     `json:"payDay"`
	CategoryId *int    `json:"categoryId,omitempty"`
	AccountId  *int    `json:"accountId,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sources, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]SourceDTO, 0, len(sources))
	for _, s := range sources {
		dtos = append(dtos, toDTO(s))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new income source")
	w.Header().Set("Content-Type", "application/json")

	var dto SourceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.PayDay < 1 || dto.PayDay > 31 {
		http.Error(w, "payDay must be between 1 and 31", http.StatusBadRequest)
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
	var dto SourceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == 0 || dto.Id != int(id64) {
		http.Error(w, "Invalid income source id in request body", http.StatusBadRequest)
		return
	}
	if dto.PayDay < 1 || dto.PayDay > 31 {
		http.Error(w, "payDay must be between 1 and 31", http.StatusBadRequest)
		return
	}

	ok, err := h.service.Update(r.Context(), fromDTO(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Income source not found", http.StatusNotFound)
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
		http.Error(w, "Income source not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDTO(s Source) SourceDTO {
	return SourceDTO{
		Id:         s.Id,
		Name:       s.Name,
		Amount:     s.Amount.Float(),
		PayDay:     s.PayDay,
		CategoryId: s.CategoryId,
		AccountId:  s.AccountId,
	}
}

func fromDTO(dto SourceDTO) Source {
	return Source{
		Id:         dto.Id,
		Name:       dto.Name,
		Amount:     money.FromFloat(dto.Amount),
		PayDay:     dto.PayDay,
		CategoryId: dto.CategoryId,
		AccountId:  dto.AccountId,
	}
}
