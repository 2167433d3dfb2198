package food

import (
	"strings"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
)

// SuggestCategory returns the likely category for the given item name.
// It performs case-insensitive matching: exact match first, then substring
// match. Falls back to "other" if no match is found.
func SuggestCategory(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return model.CategoryOther
	}

	// Phase 1: exact match
	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	// Phase 2: substring match (ordered longer/more-specific first)
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return model.CategoryOther
}

var exactMatch = map[string]string{
	// Dairy
	"milk":       model.CategoryDairy,
	"butter":     model.CategoryDairy,
	"cheese":     model.CategoryDairy,
	"yogurt":     model.CategoryDairy,
	"yoghurt":    model.CategoryDairy,
	"cream":      model.CategoryDairy,
	"sour cream": model.CategoryDairy,
	"eggs":       model.CategoryDairy,
	"egg":        model.CategoryDairy,
	"kefir":      model.CategoryDairy,

	// Vegetables
	"tomato":      model.CategoryVegetables,
	"tomatoes":    model.CategoryVegetables,
	"potato":      model.CategoryVegetables,
	"potatoes":    model.CategoryVegetables,
	"onion":       model.CategoryVegetables,
	"onions":      model.CategoryVegetables,
	"garlic":      model.CategoryVegetables,
	"lettuce":     model.CategoryVegetables,
	"spinach":     model.CategoryVegetables,
	"kale":        model.CategoryVegetables,
	"broccoli":    model.CategoryVegetables,
	"carrot":      model.CategoryVegetables,
	"carrots":     model.CategoryVegetables,
	"celery":      model.CategoryVegetables,
	"cucumber":    model.CategoryVegetables,
	"cucumbers":   model.CategoryVegetables,
	"peppers":     model.CategoryVegetables,
	"mushrooms":   model.CategoryVegetables,
	"corn":        model.CategoryVegetables,
	"zucchini":    model.CategoryVegetables,
	"asparagus":   model.CategoryVegetables,
	"green beans": model.CategoryVegetables,
	"cabbage":     model.CategoryVegetables,

	// Fruits
	"apple":        model.CategoryFruits,
	"apples":       model.CategoryFruits,
	"banana":       model.CategoryFruits,
	"bananas":      model.CategoryFruits,
	"orange":       model.CategoryFruits,
	"oranges":      model.CategoryFruits,
	"lemon":        model.CategoryFruits,
	"lemons":       model.CategoryFruits,
	"lime":         model.CategoryFruits,
	"limes":        model.CategoryFruits,
	"avocado":      model.CategoryFruits,
	"avocados":     model.CategoryFruits,
	"grapes":       model.CategoryFruits,
	"strawberries": model.CategoryFruits,
	"blueberries":  model.CategoryFruits,
	"raspberries":  model.CategoryFruits,
	"watermelon":   model.CategoryFruits,
	"pineapple":    model.CategoryFruits,
	"mango":        model.CategoryFruits,
	"peach":        model.CategoryFruits,
	"peaches":      model.CategoryFruits,
	"pear":         model.CategoryFruits,
	"pears":        model.CategoryFruits,
	"kiwi":         model.CategoryFruits,

	// Meats
	"chicken":  model.CategoryMeats,
	"beef":     model.CategoryMeats,
	"pork":     model.CategoryMeats,
	"bacon":    model.CategoryMeats,
	"ham":      model.CategoryMeats,
	"turkey":   model.CategoryMeats,
	"salmon":   model.CategoryMeats,
	"tuna":     model.CategoryMeats,
	"shrimp":   model.CategoryMeats,
	"sausage":  model.CategoryMeats,
	"sausages": model.CategoryMeats,
	"steak":    model.CategoryMeats,

	// Grains
	"bread":     model.CategoryGrains,
	"rice":      model.CategoryGrains,
	"pasta":     model.CategoryGrains,
	"oats":      model.CategoryGrains,
	"oatmeal":   model.CategoryGrains,
	"flour":     model.CategoryGrains,
	"cereal":    model.CategoryGrains,
	"tortillas": model.CategoryGrains,
	"bagels":    model.CategoryGrains,
	"noodles":   model.CategoryGrains,
	"quinoa":    model.CategoryGrains,

	// Beverages
	"juice":    model.CategoryBeverages,
	"coffee":   model.CategoryBeverages,
	"tea":      model.CategoryBeverages,
	"soda":     model.CategoryBeverages,
	"water":    model.CategoryBeverages,
	"beer":     model.CategoryBeverages,
	"wine":     model.CategoryBeverages,
	"kombucha": model.CategoryBeverages,
}

var substringMatches = []struct {
	keyword  string
	category string
}{
	{"orange juice", model.CategoryBeverages},
	{"apple juice", model.CategoryBeverages},
	{"sparkling water", model.CategoryBeverages},
	{"almond milk", model.CategoryBeverages},
	{"oat milk", model.CategoryBeverages},
	{"soy milk", model.CategoryBeverages},
	{"cottage cheese", model.CategoryDairy},
	{"cream cheese", model.CategoryDairy},
	{"ground beef", model.CategoryMeats},
	{"chicken breast", model.CategoryMeats},
	{"chicken thigh", model.CategoryMeats},
	{"whole wheat", model.CategoryGrains},
	{"sourdough", model.CategoryGrains},
	{"milk", model.CategoryDairy},
	{"cheese", model.CategoryDairy},
	{"yogurt", model.CategoryDairy},
	{"berr", model.CategoryFruits},
	{"melon", model.CategoryFruits},
	{"grape", model.CategoryFruits},
	{"pepper", model.CategoryVegetables},
	{"mushroom", model.CategoryVegetables},
	{"salad", model.CategoryVegetables},
	{"chicken", model.CategoryMeats},
	{"beef", model.CategoryMeats},
	{"fish", model.CategoryMeats},
	{"bread", model.CategoryGrains},
	{"pasta", model.CategoryGrains},
	{"rice", model.CategoryGrains},
	{"juice", model.CategoryBeverages},
	{"tea", model.CategoryBeverages},
	{"coffee", model.CategoryBeverages},
	{"soda", model.CategoryBeverages},
}
