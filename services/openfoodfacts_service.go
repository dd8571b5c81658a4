package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client for the Open Food Facts product database. No API key, but a
// descriptive User-Agent is expected.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: "https://world.openfoodfacts.org/api/v2/product",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Product information for a scanned barcode.
type ProductInfo struct {
	Barcode  string `json:"barcode"`
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type offProductResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string `json:"product_name"`
		GenericName string `json:"generic_name"`
		Brands      string `json:"brands"`
		Categories  string `json:"categories"`
		ImageURL    string `json:"image_url"`
	} `json:"product"`
}

// LookupProduct fetches product info by barcode. A barcode that is simply
// not in the database returns (nil, nil) — the caller falls back to manual
// entry, that is not a failure.
func (s *OpenFoodFactsService) LookupProduct(barcode string) (*ProductInfo, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, fmt.Errorf("%w: barcode is required", ErrValidation)
	}

	u := fmt.Sprintf("%s/%s.json", s.baseURL, barcode)
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create product lookup request: %w", err)
	}
	req.Header.Set("User-Agent", "SnapShelf/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: open food facts: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading open food facts response: %v", ErrTransport, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: open food facts error %d: %s", ErrTransport, resp.StatusCode, string(body))
	}

	var pr offProductResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("%w: parsing open food facts JSON: %v", ErrTransport, err)
	}
	if pr.Status != 1 {
		return nil, nil
	}

	name := pr.Product.ProductName
	if name == "" {
		name = pr.Product.GenericName
	}
	if name == "" {
		return nil, nil
	}

	return &ProductInfo{
		Barcode:  barcode,
		Name:     name,
		Brand:    firstCSV(pr.Product.Brands),
		Category: mapOFFCategory(pr.Product.Categories),
		ImageURL: pr.Product.ImageURL,
	}, nil
}

func firstCSV(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// mapOFFCategory squeezes the free-form Open Food Facts category list into
// our closed vocabulary. Unmatched products become "Other".
func mapOFFCategory(categories string) string {
	lower := strings.ToLower(categories)
	switch {
	case strings.Contains(lower, "fruit"):
		return "Fruits"
	case strings.Contains(lower, "vegetable"):
		return "Vegetables"
	case strings.Contains(lower, "dairies"), strings.Contains(lower, "dairy"),
		strings.Contains(lower, "milk"), strings.Contains(lower, "cheese"),
		strings.Contains(lower, "yogurt"), strings.Contains(lower, "egg"):
		return "Dairy"
	case strings.Contains(lower, "meat"), strings.Contains(lower, "poultry"):
		return "Meat"
	case strings.Contains(lower, "fish"), strings.Contains(lower, "seafood"):
		return "Fish"
	case strings.Contains(lower, "bread"), strings.Contains(lower, "cereal"),
		strings.Contains(lower, "pasta"), strings.Contains(lower, "rice"):
		return "Grains"
	case strings.Contains(lower, "snack"), strings.Contains(lower, "biscuit"),
		strings.Contains(lower, "chocolate"), strings.Contains(lower, "cookie"):
		return "Snacks"
	case strings.Contains(lower, "beverage"), strings.Contains(lower, "drink"),
		strings.Contains(lower, "juice"), strings.Contains(lower, "water"):
		return "Beverages"
	case strings.Contains(lower, "frozen"), strings.Contains(lower, "ice cream"):
		return "Frozen"
	case strings.Contains(lower, "sauce"), strings.Contains(lower, "condiment"),
		strings.Contains(lower, "spice"):
		return "Condiments"
	default:
		return "Other"
	}
}
