package debt

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/centavo/centavo/pkg/money"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type DebtDTO struct {
	Id                   int     `json:"id"`
	Name                 string  `json:"name"`
	InstallmentsTotal    int     `json:"installmentsTotal"`
	InstallmentsPaid     int     `json:"installmentsPaid"`
	FirstInstallmentDate *string `json:"firstInstallmentDate,omitempty"`
	DueDay               int     `json:"dueDay"`
	MinimumPayment       float64 `json:"minimumPayment"`
	CategoryId           *int    `json:"categoryId,omitempty"`
	AccountId            *int    `json:"accountId,omitempty"`
}

type InstallmentDTO struct {
	Number  int    `json:"number"`
	DueDate string `json:"dueDate"`
	Status  string `json:"status"`
}

type ScheduleDTO struct {
	Installments []InstallmentDTO `json:"installments"`
	Inconsistent bool             `json:"inconsistent,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	debts, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]DebtDTO, 0, len(debts))
	for _, d := range debts {
		dtos = append(dtos, toDTO(d))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new debt")
	w.Header().Set("Content-Type", "application/json")

	var dto DebtDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d, err := fromDTO(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.InstallmentsTotal < 1 {
		http.Error(w, "installmentsTotal must be at least 1", http.StatusBadRequest)
		return
	}
	if dto.DueDay < 1 || dto.DueDay > 31 {
		http.Error(w, "dueDay must be between 1 and 31", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), d)
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
	var dto DebtDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == 0 || dto.Id != int(id64) {
		http.Error(w, "Invalid debt id in request body", http.StatusBadRequest)
		return
	}
	if dto.DueDay < 1 || dto.DueDay > 31 {
		http.Error(w, "dueDay must be between 1 and 31", http.StatusBadRequest)
		return
	}
	d, err := fromDTO(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.service.Update(r.Context(), d)
	if err != nil {
		if errors.Is(err, ErrInvalidInstallments) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Debt not found", http.StatusNotFound)
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
		http.Error(w, "Debt not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetInstallments(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id64, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	installments, inconsistent, err := h.service.GetSchedule(r.Context(), int(id64))
	if err != nil {
		if errors.Is(err, ErrDebtNotFound) {
			http.Error(w, "Debt not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toScheduleDTO(installments, inconsistent)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) ToggleInstallment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	id64, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	number64, err := strconv.ParseInt(vars["number"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	installments, err := h.service.ToggleInstallment(r.Context(), int(id64), int(number64))
	if err != nil {
		switch {
		case errors.Is(err, ErrDebtNotFound):
			http.Error(w, "Debt not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidInstallment):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toScheduleDTO(installments, false)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toScheduleDTO(installments []Installment, inconsistent bool) ScheduleDTO {
	dtos := make([]InstallmentDTO, 0, len(installments))
	for _, i := range installments {
		dtos = append(dtos, InstallmentDTO{
			Number:  i.Number,
			DueDate: i.DueDate.Format(dateLayout),
			Status:  string(i.Status),
		})
	}
	return ScheduleDTO{Installments: dtos, Inconsistent: inconsistent}
}

func toDTO(d Debt) DebtDTO {
	dto := DebtDTO{
		Id:                d.Id,
		Name:              d.Name,
		InstallmentsTotal: d.InstallmentsTotal,
		InstallmentsPaid:  d.InstallmentsPaid,
		DueDay:            d.DueDay,
		MinimumPayment:    d.MinimumPayment.Float(),
		CategoryId:        d.CategoryId,
		AccountId:         d.AccountId,
	}
	if d.FirstInstallmentDate != nil {
		formatted := d.FirstInstallmentDate.Format(dateLayout)
		dto.FirstInstallmentDate = &formatted
	}
	return dto
}

func fromDTO(dto DebtDTO) (Debt, error) {
	d := Debt{
		Id:                dto.Id,
		Name:              dto.Name,
		InstallmentsTotal: dto.InstallmentsTotal,
		InstallmentsPaid:  dto.InstallmentsPaid,
		DueDay:            dto.DueDay,
		MinimumPayment:    money.FromFloat(dto.MinimumPayment),
		CategoryId:        dto.CategoryId,
		AccountId:         dto.AccountId,
	}
	if dto.FirstInstallmentDate != nil {
		parsed, err := time.Parse(dateLayout, *dto.FirstInstallmentDate)
		if err != nil {
			return Debt{}, err
		}
		d.FirstInstallmentDate = &parsed
	}
	return d, nil
}
