package category

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/centavo/centavo/pkg/money"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CategoryDTO struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color,omitempty"`
	Type        string  `json:"type"`
	BudgetLimit float64 `json:"budgetLimit"`
	ParentId    *int    `json:"parentId,omitempty"`
}

type NodeDTO struct {
	CategoryDTO
	HasChildren bool      `json:"hasChildren"`
	Children    []NodeDTO `json:"children,omitempty"`
}

type limitUpdateDTO struct {
	BudgetLimit float64 `json:"budgetLimit"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	categories, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, categoryToDTO(c))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetTree(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	forest, err := h.service.GetTree(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]NodeDTO, 0, len(forest))
	for _, n := range forest {
		dtos = append(dtos, nodeToDTO(n))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new category")
	w.Header().Set("Content-Type", "application/json")

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), dtoToCategory(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(categoryToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := pathId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == 0 || dto.Id != id {
		http.Error(w, "Invalid category id in request body", http.StatusBadRequest)
		return
	}

	ok, err := h.service.Update(r.Context(), dtoToCategory(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpdateLimit handles the leaf-only budget limit update. A category that
// currently has children responds with 409.
func (h *Handler) UpdateLimit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := pathId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var dto limitUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.BudgetLimit < 0 {
		http.Error(w, "budgetLimit must not be negative", http.StatusBadRequest)
		return
	}

	err = h.service.UpdateLimit(r.Context(), id, money.FromFloat(dto.BudgetLimit))
	if err != nil {
		if errors.Is(err, ErrParentLimitReadOnly) {
			http.Error(w, "the limit of a category with children is derived and read-only", http.StatusConflict)
			return
		}
		if errors.Is(err, ErrCategoryNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := pathId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathId(r *http.Request) (int, error) {
	id64, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return int(id64), err
}

func categoryToDTO(c Category) CategoryDTO {
	return CategoryDTO{
		Id:          c.Id,
		Name:        c.Name,
		Color:       c.Color,
		Type:        string(c.Type),
		BudgetLimit: c.BudgetLimit.Float(),
		ParentId:    c.ParentId,
	}
}

func dtoToCategory(dto CategoryDTO) Category {
	return Category{
		Id:          dto.Id,
		Name:        dto.Name,
		Color:       dto.Color,
		Type:        Type(dto.Type),
		BudgetLimit: money.FromFloat(dto.BudgetLimit),
		ParentId:    dto.ParentId,
	}
}

func nodeToDTO(n *Node) NodeDTO {
	dto := NodeDTO{
		CategoryDTO: categoryToDTO(n.Category),
		HasChildren: n.HasChildren(),
	}
	for _, child := range n.Children {
		dto.Children = append(dto.Children, nodeToDTO(child))
	}
	return dto
}
