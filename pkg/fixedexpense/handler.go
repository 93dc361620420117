package fixedexpense

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/centavo/centavo/pkg/money"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type FixedExpenseDTO struct {
	Id          int     `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDay      int     `json:"dueDay"`
	AutoCreate  bool    `json:"autoCreate"`
	CategoryId  *int    `json:"categoryId,omitempty"`
	AccountId   *int    `json:"accountId,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	expenses, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]FixedExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		dtos = append(dtos, toDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new fixed expense")
	w.Header().Set("Content-Type", "application/json")

	var dto FixedExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.DueDay < 1 || dto.DueDay > 31 {
		http.Error(w, "dueDay must be between 1 and 31", http.StatusBadRequest)
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
	var dto FixedExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == 0 || dto.Id != int(id64) {
		http.Error(w, "Invalid fixed expense id in request body", http.StatusBadRequest)
		return
	}
	if dto.DueDay < 1 || dto.DueDay > 31 {
		http.Error(w, "dueDay must be between 1 and 31", http.StatusBadRequest)
		return
	}

	ok, err := h.service.Update(r.Context(), fromDTO(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Fixed expense not found", http.StatusNotFound)
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
		http.Error(w, "Fixed expense not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDTO(e FixedExpense) FixedExpenseDTO {
	return FixedExpenseDTO{
		Id:          e.Id,
		Description: e.Description,
		Amount:      e.Amount.Float(),
		DueDay:      e.DueDay,
		AutoCreate:  e.AutoCreate,
		CategoryId:  e.CategoryId,
		AccountId:   e.AccountId,
	}
}

func fromDTO(dto FixedExpenseDTO) FixedExpense {
	return FixedExpense{
		Id:          dto.Id,
		Description: dto.Description,
		Amount:      money.FromFloat(dto.Amount),
		DueDay:      dto.DueDay,
		AutoCreate:  dto.AutoCreate,
		CategoryId:  dto.CategoryId,
		AccountId:   dto.AccountId,
	}
}
