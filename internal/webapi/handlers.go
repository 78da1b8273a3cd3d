// Package webapi implements the JSON API behind the catalog dashboard.
package webapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/psinghania/packadvisor/internal/profile"
	"github.com/psinghania/packadvisor/internal/recommend"
	"github.com/psinghania/packadvisor/internal/reporting"
)

// Version is set at build time or defaults to dev.
var Version = "0.3.0"

// Handlers holds the HTTP handler methods for the web API.
type Handlers struct {
	store  CatalogStore
	engine *recommend.Engine
}

// NewHandlers creates a new Handlers with the given store.
func NewHandlers(store CatalogStore) *Handlers {
	return &Handlers{store: store, engine: recommend.NewEngine()}
}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// HandleMaterials returns all materials, optionally filtered by material type
// via the type query param.
func (h *Handlers) HandleMaterials(w http.ResponseWriter, r *http.Request) {
	cat, err := h.store.Catalog()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	typeFilter := strings.ToLower(r.URL.Query().Get("type"))

	materials := make([]MaterialSummary, 0, len(cat.Materials))
	for _, name := range cat.MaterialNames() {
		m := cat.Materials[name]
		if typeFilter != "" && strings.ToLower(m.MaterialType) != typeFilter {
			continue
		}
		materials = append(materials, MaterialSummary{
			Name:          name,
			DisplayName:   strings.ReplaceAll(name, "_", " "),
			MaterialType:  m.MaterialType,
			CostCategory:  m.Characteristics.CostCategory,
			OxygenBarrier: m.Characteristics.OxygenBarrier,
			Recyclable:    m.Sustainability.Recyclable,
		})
	}
	writeJSON(w, http.StatusOK, materials)
}

// HandleProducts returns all products. The q query param does a
// case-insensitive substring match on the name; category filters exactly.
func (h *Handlers) HandleProducts(w http.ResponseWriter, r *http.Request) {
	cat, err := h.store.Catalog()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	query := strings.ToLower(r.URL.Query().Get("q"))
	category := r.URL.Query().Get("category")

	products := make([]ProductSummary, 0, len(cat.Products))
	for _, name := range cat.ProductNames() {
		p := cat.Products[name]
		if query != "" && !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		if category != "" && p.BasicInfo.Category != category {
			continue
		}
		products = append(products, ProductSummary{
			Name:        name,
			Category:    p.BasicInfo.Category,
			Subcategory: p.BasicInfo.Subcategory,
			Primary:     p.Packaging.Primary,
			CreatedDate: p.CreatedDate,
		})
	}
	writeJSON(w, http.StatusOK, products)
}

// HandleRecommend infers a profile for the posted product and returns ranked
// material recommendations.
func (h *Handlers) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.ProductName) == "" {
		writeError(w, http.StatusBadRequest, "product_name is required")
		return
	}

	budget := profile.BudgetStandard
	if req.Budget != "" {
		var err error
		if budget, err = profile.ParseBudget(req.Budget); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	shelfLife := profile.ShelfMonths
	if req.ShelfLife != "" {
		var err error
		if shelfLife, err = profile.ParseShelfLife(req.ShelfLife); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	cat, err := h.store.Catalog()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	p := profile.Infer(req.ProductName, req.Purpose, budget, shelfLife, cat)
	recs, err := h.engine.Recommend(p, cat)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if req.Top > 0 {
		recs = recommend.Top(recs, req.Top)
	}

	writeJSON(w, http.StatusOK, RecommendResponse{
		ProductName:     req.ProductName,
		Profile:         p.AsMap(),
		Recommendations: recs,
	})
}

// HandleReport renders the HTML recommendation report for a stored product.
func (h *Handlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("product")
	if name == "" {
		writeError(w, http.StatusBadRequest, "product name is required")
		return
	}

	cat, err := h.store.Catalog()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	prod, ok := cat.Products[name]
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	p, err := profile.FromMap(prod.AttributeProfile)
	if err != nil || len(prod.AttributeProfile) == 0 {
		p = profile.Infer(name, "", profile.BudgetStandard, profile.ShelfMonths, cat)
	}

	recs, err := h.engine.Recommend(p, cat)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	html, err := reporting.Report{
		ProductName: name,
		Profile:     p,
		Results:     recs,
	}.HTML()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html)) //nolint:errcheck
}

// HandleSummary returns aggregate catalog metrics.
func (h *Handlers) HandleSummary(w http.ResponseWriter, _ *http.Request) {
	cat, err := h.store.Catalog()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := SummaryResponse{
		TotalProducts:     len(cat.Products),
		TotalMaterials:    len(cat.Materials),
		TotalRules:        len(cat.Rules),
		CostCategories:    map[string]int{},
		ProductCategories: map[string]int{},
	}
	for _, m := range cat.Materials {
		if m.Sustainability.Recyclable {
			resp.RecyclableMaterials++
		}
		if c := m.Characteristics.CostCategory; c != "" {
			resp.CostCategories[c]++
		}
	}
	for _, p := range cat.Products {
		if c := p.BasicInfo.Category; c != "" {
			resp.ProductCategories[c]++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// RegisterRoutes registers all web API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, store CatalogStore) {
	h := NewHandlers(store)
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("GET /api/materials", h.HandleMaterials)
	mux.HandleFunc("GET /api/products", h.HandleProducts)
	mux.HandleFunc("POST /api/recommend", h.HandleRecommend)
	mux.HandleFunc("GET /api/report/{product}", h.HandleReport)
	mux.HandleFunc("GET /api/summary", h.HandleSummary)
}

// CORSMiddleware wraps a handler with CORS headers.
// If allowedOrigins is empty, no CORS header is set (same-origin only).
// Otherwise, the request Origin is checked against the allowed list.
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) > 0 && origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
