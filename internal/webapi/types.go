package webapi

import "github.com/psinghania/packadvisor/internal/recommend"

// MaterialSummary is the API response for a single material in the list.
type MaterialSummary struct {
	Name          string `json:"name"`
	DisplayName   string `json:"displayName"`
	MaterialType  string `json:"materialType"`
	CostCategory  string `json:"costCategory"`
	OxygenBarrier string `json:"oxygenBarrier"`
	Recyclable    bool   `json:"recyclable"`
}

// ProductSummary is the API response for a single product in the list.
type ProductSummary struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Primary     []string `json:"primaryPackaging"`
	CreatedDate string   `json:"createdDate,omitempty"`
}

// RecommendRequest is the body of a recommendation query.
type RecommendRequest struct {
	ProductName string `json:"product_name"`
	Purpose     string `json:"purpose,omitempty"`
	Budget      string `json:"budget,omitempty"`
	ShelfLife   string `json:"shelf_life,omitempty"`
	Top         int    `json:"top,omitempty"`
}

// RecommendResponse carries the ranked results plus the profile they were
// scored against.
type RecommendResponse struct {
	ProductName     string                    `json:"productName"`
	Profile         map[string]any            `json:"profile"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// SummaryResponse is the aggregate catalog KPI response.
type SummaryResponse struct {
	TotalProducts       int            `json:"totalProducts"`
	TotalMaterials      int            `json:"totalMaterials"`
	TotalRules          int            `json:"totalRules"`
	RecyclableMaterials int            `json:"recyclableMaterials"`
	CostCategories      map[string]int `json:"costCategories"`
	ProductCategories   map[string]int `json:"productCategories"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is returned for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
