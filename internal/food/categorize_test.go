package food

import (
	"testing"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
)

func TestSuggestCategoryExactMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"milk", model.CategoryDairy},
		{"eggs", model.CategoryDairy},
		{"spinach", model.CategoryVegetables},
		{"apple", model.CategoryFruits},
		{"chicken", model.CategoryMeats},
		{"bread", model.CategoryGrains},
		{"coffee", model.CategoryBeverages},
	}
	for _, tt := range tests {
		got := SuggestCategory(tt.input)
		if got != tt.want {
			t.Errorf("SuggestCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSuggestCategorySubstringMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"chicken breast", model.CategoryMeats},
		{"boneless chicken thighs", model.CategoryMeats},
		{"whole wheat bread", model.CategoryGrains},
		{"sourdough loaf", model.CategoryGrains},
		{"greek yogurt cups", model.CategoryDairy},
		{"fresh orange juice", model.CategoryBeverages},
		{"frozen blueberries", model.CategoryFruits},
		{"red bell pepper", model.CategoryVegetables},
	}
	for _, tt := range tests {
		got := SuggestCategory(tt.input)
		if got != tt.want {
			t.Errorf("SuggestCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSuggestCategoryPlantMilks(t *testing.T) {
	// Plant milks are beverages, not dairy, so their entries must win
	// over the bare "milk" keyword.
	for _, input := range []string{"oat milk", "almond milk", "soy milk"} {
		if got := SuggestCategory(input); got != model.CategoryBeverages {
			t.Errorf("SuggestCategory(%q) = %q, want %q", input, got, model.CategoryBeverages)
		}
	}
}

func TestSuggestCategoryFallback(t *testing.T) {
	for _, input := range []string{"", "   ", "mystery leftovers", "aluminum foil"} {
		if got := SuggestCategory(input); got != model.CategoryOther {
			t.Errorf("SuggestCategory(%q) = %q, want %q", input, got, model.CategoryOther)
		}
	}
}

func TestSuggestCategoryCaseInsensitive(t *testing.T) {
	if got := SuggestCategory("  MILK "); got != model.CategoryDairy {
		t.Errorf("SuggestCategory(\"  MILK \") = %q, want %q", got, model.CategoryDairy)
	}
}
