package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/omorros/SnapShelf/config"
	"github.com/omorros/SnapShelf/models"

	"gorm.io/gorm"
)

// RecipeService assembles recipe requests from the inventory snapshot and
// calls the external generation service. The core only builds the request and
// parses the reply; recipe intelligence lives upstream.
type RecipeService struct {
	client *http.Client
	token  string
	model  string
	inv    *InventoryService
}

func NewRecipeService(inv *InventoryService) *RecipeService {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &RecipeService{
		client: &http.Client{Timeout: 60 * time.Second},
		token:  os.Getenv("OPENAI_API_KEY"),
		model:  model,
		inv:    inv,
	}
}

type RecipeIngredient struct {
	Name            string `json:"name"`
	Quantity        string `json:"quantity"`
	FromInventory   bool   `json:"from_inventory"`
	IsExpiringSoon  bool   `json:"is_expiring_soon,omitempty"`
	DaysUntilExpiry *int   `json:"days_until_expiry,omitempty"`
}

type Recipe struct {
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	CookingTimeMinutes int                `json:"cooking_time_minutes"`
	Servings           int                `json:"servings"`
	Difficulty         string             `json:"difficulty"`
	Reason             string             `json:"recommendation_reason"`
	Ingredients        []RecipeIngredient `json:"ingredients"`
	Instructions       []string           `json:"instructions"`
	Tips               string             `json:"tips,omitempty"`
}

type RecipeGenerationResult struct {
	Recipes            []Recipe `json:"recipes"`
	IngredientsUsed    []string `json:"ingredients_used"`
	IngredientsMissing []string `json:"ingredients_missing"`
}

type GenerationRequest struct {
	Mode           string   `json:"mode"`            // "auto" | "manual"
	SelectedNames  []string `json:"selected_names"`  // manual mode only
	MaxRecipes     int      `json:"max_recipes"`     // 1–5, default 3
	TimePreference string   `json:"time_preference"` // "quick" | "normal" | "any"
	Servings       int      `json:"servings"`        // 1–6, default 2
}

func normalizeGenerationRequest(req *GenerationRequest) error {
	if req.MaxRecipes == 0 {
		req.MaxRecipes = 3
	}
	if req.MaxRecipes < 1 || req.MaxRecipes > 5 {
		return fmt.Errorf("%w: max_recipes must be between 1 and 5", ErrValidation)
	}
	if req.Servings == 0 {
		req.Servings = 2
	}
	if req.Servings < 1 || req.Servings > 6 {
		return fmt.Errorf("%w: servings must be between 1 and 6", ErrValidation)
	}
	switch req.TimePreference {
	case "":
		req.TimePreference = "any"
	case "quick", "normal", "any":
	default:
		return fmt.Errorf("%w: unknown time preference %q", ErrValidation, req.TimePreference)
	}
	return nil
}

// GenerateRecipes snapshots the ingredient selection for the requested mode
// and asks the generator for suggestions.
func (r *RecipeService) GenerateRecipes(userID uint, req GenerationRequest) (*RecipeGenerationResult, error) {
	if r.token == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY not set", ErrTransport)
	}
	if err := normalizeGenerationRequest(&req); err != nil {
		return nil, err
	}

	items, err := r.inv.ListItems(userID)
	if err != nil {
		return nil, err
	}
	selection, err := SelectForGeneration(items, req.Mode, req.SelectedNames, time.Now())
	if err != nil {
		return nil, err
	}
	if len(selection) == 0 {
		return nil, fmt.Errorf("%w: no ingredients available for recipe generation", ErrPrecondition)
	}

	prompt := buildRecipePrompt(selection, req, time.Now())
	return r.callGenerator(prompt)
}

// Ingredient line sent to the generator, with expiry urgency spelled out so
// the model can rank by waste reduction.
type promptIngredient struct {
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit,omitempty"`
	ExpiryDate      string  `json:"expiry_date,omitempty"`
	DaysUntilExpiry *int    `json:"days_until_expiry,omitempty"`
}

func buildRecipePrompt(selection []IngredientSelection, req GenerationRequest, today time.Time) string {
	lines := make([]promptIngredient, 0, len(selection))
	for _, s := range selection {
		pi := promptIngredient{Name: s.Name, Quantity: s.Quantity, Unit: s.Unit, ExpiryDate: s.ExpiryDate}
		if exp, err := time.Parse("2006-01-02", s.ExpiryDate); err == nil {
			days := DaysUntilExpiry(exp, today)
			pi.DaysUntilExpiry = &days
		}
		lines = append(lines, pi)
	}
	ingredientsJSON, _ := json.Marshal(lines)

	var sb strings.Builder
	sb.WriteString("You are the recipe engine for a fridge-tracking app focused on reducing food waste.\n")
	sb.WriteString("Recommend practical recipes that use food before it expires; prioritize the ingredients closest to expiry and prefer recipes combining several expiring items.\n\n")
	if req.Mode == ModeManual {
		sb.WriteString("MODE: manual. Use ONLY the listed ingredients from the user's inventory, plus basic pantry staples (salt, pepper, oil, butter, garlic, onion, common spices). Do not add other inventory items.\n")
	} else {
		sb.WriteString("MODE: auto. The listed ingredients are the ones closest to expiry; build recipes around them. Basic pantry staples may be assumed.\n")
	}
	fmt.Fprintf(&sb, "TIME PREFERENCE: %s (quick = under 30 minutes, normal = 30-60 minutes).\n", req.TimePreference)
	fmt.Fprintf(&sb, "TARGET SERVINGS: %d.\n\n", req.Servings)
	fmt.Fprintf(&sb, "INGREDIENTS:\n%s\n\n", ingredientsJSON)
	fmt.Fprintf(&sb, "Return EXACTLY %d recipes as a JSON object:\n", req.MaxRecipes)
	sb.WriteString(`{"recipes":[{"title":"...","description":"...","cooking_time_minutes":30,"servings":2,"difficulty":"easy|medium|hard","recommendation_reason":"...","ingredients":[{"name":"...","quantity":"2 cups","from_inventory":true,"is_expiring_soon":true,"days_until_expiry":2}],"instructions":["..."],"tips":"... or null"}],"ingredients_used":["..."],"ingredients_missing":["..."]}`)
	sb.WriteString("\nThe recommendation_reason must explain the waste-reduction impact. Do not ask follow-up questions.")
	return sb.String()
}

func (r *RecipeService) callGenerator(prompt string) (*RecipeGenerationResult, error) {
	body := map[string]any{
		"model": r.model,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0.4,
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest("POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: recipe generator: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading generator response: %v", ErrTransport, err)
	}

	// Non-200 => surface the exact upstream error body
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%w: generator error (%d): %s", ErrTransport, resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: generator error (%d): %s", ErrTransport, resp.StatusCode, string(respBytes))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("%w: decoding generator response: %v", ErrTransport, err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return nil, fmt.Errorf("%w: empty response from generator", ErrTransport)
	}

	var result RecipeGenerationResult
	if err := json.Unmarshal([]byte(out.Choices[0].Message.Content), &result); err != nil {
		preview := out.Choices[0].Message.Content
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return nil, fmt.Errorf("%w: parsing recipes: %v | body: %s", ErrTransport, err, preview)
	}
	if len(result.Recipes) == 0 {
		return nil, fmt.Errorf("%w: generator returned no recipes", ErrTransport)
	}
	return &result, nil
}

// --- saved recipes ---

type SaveRecipeRequest struct {
	Recipe
}

type SavedRecipeView struct {
	ID                 uint               `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	CookingTimeMinutes int                `json:"cooking_time_minutes"`
	Servings           int                `json:"servings"`
	Difficulty         string             `json:"difficulty"`
	Ingredients        []RecipeIngredient `json:"ingredients"`
	Instructions       []string           `json:"instructions"`
	Tips               string             `json:"tips,omitempty"`
	Reason             string             `json:"recommendation_reason,omitempty"`
	SavedAt            time.Time          `json:"saved_at"`
}

func (r *RecipeService) SaveRecipe(userID uint, req SaveRecipeRequest) (*SavedRecipeView, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	var existing models.SavedRecipe
	err := config.DB.Where("user_id = ? AND title = ?", userID, req.Title).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: recipe %q already saved", ErrValidation, req.Title)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ingredients, _ := json.Marshal(req.Ingredients)
	instructions, _ := json.Marshal(req.Instructions)
	saved := &models.SavedRecipe{
		UserID:             userID,
		Title:              req.Title,
		Description:        req.Description,
		CookingTimeMinutes: req.CookingTimeMinutes,
		Servings:           req.Servings,
		Difficulty:         req.Difficulty,
		Ingredients:        string(ingredients),
		Instructions:       string(instructions),
		Tips:               req.Tips,
		Reason:             req.Reason,
		SavedAt:            time.Now(),
	}
	if err := config.DB.Create(saved).Error; err != nil {
		return nil, err
	}
	return savedRecipeView(saved), nil
}

func (r *RecipeService) ListSavedRecipes(userID uint) ([]SavedRecipeView, error) {
	var recipes []models.SavedRecipe
	err := config.DB.
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	out := make([]SavedRecipeView, 0, len(recipes))
	for i := range recipes {
		out = append(out, *savedRecipeView(&recipes[i]))
	}
	return out, nil
}

func (r *RecipeService) DeleteSavedRecipe(userID, recipeID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", recipeID, userID).Delete(&models.SavedRecipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: saved recipe %d", ErrNotFound, recipeID)
	}
	return nil
}

func savedRecipeView(s *models.SavedRecipe) *SavedRecipeView {
	var ingredients []RecipeIngredient
	var instructions []string
	_ = json.Unmarshal([]byte(s.Ingredients), &ingredients)
	_ = json.Unmarshal([]byte(s.Instructions), &instructions)
	return &SavedRecipeView{
		ID:                 s.ID,
		Title:              s.Title,
		Description:        s.Description,
		CookingTimeMinutes: s.CookingTimeMinutes,
		Servings:           s.Servings,
		Difficulty:         s.Difficulty,
		Ingredients:        ingredients,
		Instructions:       instructions,
		Tips:               s.Tips,
		Reason:             s.Reason,
		SavedAt:            s.SavedAt,
	}
}
