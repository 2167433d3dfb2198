package store

import (
	"sort"
	"sync"
	"time"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/expiration"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
)

// MemoryFoodStore keeps food items in a map keyed by id with a
// monotonically increasing counter. Deleted ids are never reused.
type MemoryFoodStore struct {
	mu     sync.Mutex
	items  map[int64]model.FoodItem
	nextID int64
}

func NewMemoryFoodStore() *MemoryFoodStore {
	return &MemoryFoodStore{items: make(map[int64]model.FoodItem), nextID: 1}
}

func (s *MemoryFoodStore) List() ([]model.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collectFoodItems(s.items, nil), nil
}

func (s *MemoryFoodStore) ListByCategory(category string) ([]model.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collectFoodItems(s.items, func(it model.FoodItem) bool {
		return it.Category == category
	}), nil
}

func (s *MemoryFoodStore) ListExpiringWithin(days int) ([]model.FoodItem, error) {
	today := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	return collectFoodItems(s.items, func(it model.FoodItem) bool {
		return expiration.WithinWindow(it.ExpirationDate, today, days)
	}), nil
}

func (s *MemoryFoodStore) GetByID(id int64) (*model.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (s *MemoryFoodStore) Create(in model.InsertFoodItem) (*model.FoodItem, error) {
	exp, verr := in.Validate()
	if verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := model.FoodItem{
		ID:             s.nextID,
		Name:           in.Name,
		Category:       in.Category,
		Quantity:       *in.Quantity,
		Unit:           in.Unit,
		CustomUnit:     in.CustomUnit,
		ExpirationDate: exp,
		Notes:          in.Notes,
		CreatedAt:      time.Now().UTC(),
	}
	s.items[item.ID] = item
	s.nextID++
	return &item, nil
}

func (s *MemoryFoodStore) Update(id int64, patch model.FoodItemPatch) (*model.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	merged := existing
	if verr := patch.Apply(&merged); verr != nil {
		return nil, verr
	}
	s.items[id] = merged
	return &merged, nil
}

func (s *MemoryFoodStore) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *MemoryFoodStore) MarkNotified(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[id]; ok {
		it.Notified = true
		s.items[id] = it
	}
	return nil
}

// MemoryShoppingStore keeps shopping entries in a map keyed by id, listed
// in insertion order.
type MemoryShoppingStore struct {
	mu     sync.Mutex
	items  map[int64]model.ShoppingListItem
	nextID int64
}

func NewMemoryShoppingStore() *MemoryShoppingStore {
	return &MemoryShoppingStore{items: make(map[int64]model.ShoppingListItem), nextID: 1}
}

func (s *MemoryShoppingStore) List() ([]model.ShoppingListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collectShoppingItems(s.items), nil
}

func (s *MemoryShoppingStore) GetByID(id int64) (*model.ShoppingListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (s *MemoryShoppingStore) Create(in model.InsertShoppingListItem) (*model.ShoppingListItem, error) {
	if verr := in.Validate(); verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := model.ShoppingListItem{
		ID:         s.nextID,
		Name:       in.Name,
		Category:   in.Category,
		Quantity:   *in.Quantity,
		Unit:       in.Unit,
		CustomUnit: in.CustomUnit,
		CreatedAt:  time.Now().UTC(),
	}
	s.items[item.ID] = item
	s.nextID++
	return &item, nil
}

func (s *MemoryShoppingStore) Update(id int64, patch model.ShoppingListItemPatch) (*model.ShoppingListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	merged := existing
	if verr := patch.Apply(&merged); verr != nil {
		return nil, verr
	}
	s.items[id] = merged
	return &merged, nil
}

func (s *MemoryShoppingStore) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *MemoryShoppingStore) ToggleCompleted(id int64) (*model.ShoppingListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	it.Completed = !it.Completed
	s.items[id] = it
	return &it, nil
}

func (s *MemoryShoppingStore) ClearCompleted() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cleared int64
	for id, it := range s.items {
		if it.Completed {
			delete(s.items, id)
			cleared++
		}
	}
	return cleared, nil
}

// collectFoodItems filters and sorts map values by ascending expiration
// date, ties broken by id (insertion order).
func collectFoodItems(m map[int64]model.FoodItem, keep func(model.FoodItem) bool) []model.FoodItem {
	items := make([]model.FoodItem, 0, len(m))
	for _, it := range m {
		if keep == nil || keep(it) {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ExpirationDate.Equal(items[j].ExpirationDate) {
			return items[i].ID < items[j].ID
		}
		return items[i].ExpirationDate.Before(items[j].ExpirationDate)
	})
	return items
}

func collectShoppingItems(m map[int64]model.ShoppingListItem) []model.ShoppingListItem {
	items := make([]model.ShoppingListItem, 0, len(m))
	for _, it := range m {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
