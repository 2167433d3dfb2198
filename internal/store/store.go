// Package store defines the item repositories and their interchangeable
// backends: an in-process map, a JSON-file persisted map, and SQLite.
// Core logic (classifier, poller, handlers) depends only on the
// interfaces; the backend is picked at composition time.
package store

import (
	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
)

// FoodItemStore owns the fridge inventory. Lists are ordered by ascending
// expiration date, ties broken by insertion order. GetByID and Update
// return (nil, nil) when the id does not exist; Delete reports whether a
// record existed; MarkNotified on an absent id is a silent no-op.
type FoodItemStore interface {
	List() ([]model.FoodItem, error)
	ListByCategory(category string) ([]model.FoodItem, error)
	ListExpiringWithin(days int) ([]model.FoodItem, error)
	GetByID(id int64) (*model.FoodItem, error)
	Create(in model.InsertFoodItem) (*model.FoodItem, error)
	Update(id int64, patch model.FoodItemPatch) (*model.FoodItem, error)
	Delete(id int64) (bool, error)
	MarkNotified(id int64) error
}

// ShoppingListStore owns the shopping list, ordered by insertion.
// Not-found conventions match FoodItemStore.
type ShoppingListStore interface {
	List() ([]model.ShoppingListItem, error)
	GetByID(id int64) (*model.ShoppingListItem, error)
	Create(in model.InsertShoppingListItem) (*model.ShoppingListItem, error)
	Update(id int64, patch model.ShoppingListItemPatch) (*model.ShoppingListItem, error)
	Delete(id int64) (bool, error)
	ToggleCompleted(id int64) (*model.ShoppingListItem, error)
	ClearCompleted() (int64, error)
}
