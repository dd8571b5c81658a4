package services

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeGenerationRequestAppliesDefaults(t *testing.T) {
	t.Parallel()
	req := GenerationRequest{}
	if err := normalizeGenerationRequest(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.MaxRecipes != 3 || req.Servings != 2 || req.TimePreference != "any" {
		t.Fatalf("unexpected defaults: %+v", req)
	}
}

func TestNormalizeGenerationRequestRejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()
	req := GenerationRequest{MaxRecipes: 9}
	if err := normalizeGenerationRequest(&req); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure for max_recipes=9, got %v", err)
	}
	req = GenerationRequest{Servings: 12}
	if err := normalizeGenerationRequest(&req); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure for servings=12, got %v", err)
	}
	req = GenerationRequest{TimePreference: "leisurely"}
	if err := normalizeGenerationRequest(&req); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure for unknown time preference, got %v", err)
	}
}

func TestBuildRecipePromptCarriesModeAndIngredients(t *testing.T) {
	t.Parallel()
	selection := []IngredientSelection{
		{Name: "Chicken", Quantity: 0.5, Unit: "kg", ExpiryDate: "2024-01-09"},
		{Name: "Spinach", Quantity: 1, Unit: "pack", ExpiryDate: "2024-01-10"},
	}
	req := GenerationRequest{Mode: ModeManual, MaxRecipes: 2, TimePreference: "quick", Servings: 4}
	if err := normalizeGenerationRequest(&req); err != nil {
		t.Fatalf("normalize: %v", err)
	}

	prompt := buildRecipePrompt(selection, req, date("2024-01-08"))
	if !strings.Contains(prompt, "MODE: manual") {
		t.Fatalf("prompt missing manual mode instructions:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Chicken") || !strings.Contains(prompt, "Spinach") {
		t.Fatalf("prompt missing ingredients:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"days_until_expiry":1`) {
		t.Fatalf("prompt missing day counts:\n%s", prompt)
	}
	if !strings.Contains(prompt, "EXACTLY 2 recipes") {
		t.Fatalf("prompt missing recipe count:\n%s", prompt)
	}
}
