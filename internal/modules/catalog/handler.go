package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fliphawk/flipship-backend/internal/modules/sourcing"
)

// Handler exposes the catalog HTTP endpoints.
type Handler struct {
	service      Service
	validate     *validator.Validate
	requireAdmin func(http.Handler) http.Handler
}

// NewHandler wires the catalog routes. requireAdmin guards the mutating
// endpoints; pass a pass-through middleware to run the API open.
func NewHandler(service Service, requireAdmin func(http.Handler) http.Handler) *Handler {
	return &Handler{
		service:      service,
		validate:     validator.New(),
		requireAdmin: requireAdmin,
	}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Get("/featured", h.featuredProducts)
		r.Get("/{id}", h.getProduct)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/", h.createProduct)
			r.Post("/bulk", h.bulkCreate)
			r.Post("/{id}/metrics", h.updateMetric)
		})
	})
}

type listResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	category := q.Get("category")
	status := q.Get("status")

	products, pagination := h.service.ListProducts(page, limit, category, status)
	respond(w, http.StatusOK, listResponse{Products: products, Pagination: pagination}, "products retrieved")
}

func (h *Handler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	respond(w, http.StatusOK, h.service.FeaturedProducts(limit), "featured products retrieved")
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respond(w, http.StatusOK, p, "product retrieved")
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var opp sourcing.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&opp); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(opp); err != nil {
		respondError(w, http.StatusBadRequest, "invalid opportunity: "+err.Error())
		return
	}
	p, err := h.service.CreateProduct(r.Context(), opp)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	respond(w, http.StatusCreated, p, "product created successfully")
}

type bulkCreateRequest struct {
	Opportunities []sourcing.Opportunity `json:"opportunities" validate:"min=1,dive"`
}

func (h *Handler) bulkCreate(w http.ResponseWriter, r *http.Request) {
	var req bulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "at least one opportunity required")
		return
	}
	result := h.service.BulkCreate(r.Context(), req.Opportunities)
	respond(w, http.StatusOK, result, "bulk creation completed")
}

type metricRequest struct {
	Metric string  `json:"metric" validate:"required"`
	Delta  float64 `json:"delta"`
}

func (h *Handler) updateMetric(w http.ResponseWriter, r *http.Request) {
	var req metricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "metric name required")
		return
	}
	if req.Delta == 0 {
		req.Delta = 1
	}

	p, err := h.service.RecordMetric(r.Context(), chi.URLParam(r, "id"), strings.ToLower(req.Metric), req.Delta)
	switch err {
	case nil:
		respond(w, http.StatusOK, p, "metric updated")
	case ErrNotFound:
		respondError(w, http.StatusNotFound, "product not found")
	case ErrUnknownMetric:
		respondError(w, http.StatusBadRequest, "unknown metric: "+req.Metric)
	default:
		respondError(w, http.StatusInternalServerError, "failed to update metric")
	}
}

// envelope is the JSON wrapper shared by all API responses.
type envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func respond(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Status: "success", Data: data, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Status: "error", Message: message})
}
