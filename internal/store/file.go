package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/expiration"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
)

// Fixed collection file names inside the data directory.
const (
	foodItemsFile    = "food_items.json"
	shoppingListFile = "shopping_list.json"
)

// FileFoodStore persists the food item collection as a JSON array on
// disk. Every mutation rewrites the file through a temp-file rename, and
// only commits to memory once the write succeeded, so a failed write
// never leaves a half-applied record. The id counter is recovered at
// startup as max(existing ids)+1.
type FileFoodStore struct {
	mu     sync.Mutex
	path   string
	items  map[int64]model.FoodItem
	nextID int64
}

func NewFileFoodStore(dataDir string) (*FileFoodStore, error) {
	s := &FileFoodStore{
		path:   filepath.Join(dataDir, foodItemsFile),
		items:  make(map[int64]model.FoodItem),
		nextID: 1,
	}

	var records []model.FoodItem
	if err := loadCollection(s.path, &records); err != nil {
		return nil, fmt.Errorf("load food items: %w", err)
	}
	for _, it := range records {
		s.items[it.ID] = it
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	return s, nil
}

func (s *FileFoodStore) List() ([]model.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collectFoodItems(s.items, nil), nil
}

func (s *FileFoodStore) ListByCategory(category string) ([]model.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collectFoodItems(s.items, func(it model.FoodItem) bool {
		return it.Category == category
	}), nil
}

func (s *FileFoodStore) ListExpiringWithin(days int) ([]model.FoodItem, error) {
	today := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	return collectFoodItems(s.items, func(it model.FoodItem) bool {
		return expiration.WithinWindow(it.ExpirationDate, today, days)
	}), nil
}

func (s *FileFoodStore) GetByID(id int64) (*model.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (s *FileFoodStore) Create(in model.InsertFoodItem) (*model.FoodItem, error) {
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

	next := maps.Clone(s.items)
	next[item.ID] = item
	if err := s.commit(next); err != nil {
		return nil, err
	}
	s.nextID++
	return &item, nil
}

func (s *FileFoodStore) Update(id int64, patch model.FoodItemPatch) (*model.FoodItem, error) {
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

	next := maps.Clone(s.items)
	next[id] = merged
	if err := s.commit(next); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *FileFoodStore) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	next := maps.Clone(s.items)
	delete(next, id)
	if err := s.commit(next); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileFoodStore) MarkNotified(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return nil
	}
	it.Notified = true
	next := maps.Clone(s.items)
	next[id] = it
	return s.commit(next)
}

func (s *FileFoodStore) commit(next map[int64]model.FoodItem) error {
	if err := writeCollection(s.path, collectFoodItems(next, nil)); err != nil {
		return fmt.Errorf("persist food items: %w", err)
	}
	s.items = next
	return nil
}

// FileShoppingStore is the JSON-file backend for the shopping list, with
// the same persist-then-commit discipline as FileFoodStore.
type FileShoppingStore struct {
	mu     sync.Mutex
	path   string
	items  map[int64]model.ShoppingListItem
	nextID int64
}

func NewFileShoppingStore(dataDir string) (*FileShoppingStore, error) {
	s := &FileShoppingStore{
		path:   filepath.Join(dataDir, shoppingListFile),
		items:  make(map[int64]model.ShoppingListItem),
		nextID: 1,
	}

	var records []model.ShoppingListItem
	if err := loadCollection(s.path, &records); err != nil {
		return nil, fmt.Errorf("load shopping list: %w", err)
	}
	for _, it := range records {
		s.items[it.ID] = it
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	return s, nil
}

func (s *FileShoppingStore) List() ([]model.ShoppingListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collectShoppingItems(s.items), nil
}

func (s *FileShoppingStore) GetByID(id int64) (*model.ShoppingListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (s *FileShoppingStore) Create(in model.InsertShoppingListItem) (*model.ShoppingListItem, error) {
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

	next := maps.Clone(s.items)
	next[item.ID] = item
	if err := s.commit(next); err != nil {
		return nil, err
	}
	s.nextID++
	return &item, nil
}

func (s *FileShoppingStore) Update(id int64, patch model.ShoppingListItemPatch) (*model.ShoppingListItem, error) {
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

	next := maps.Clone(s.items)
	next[id] = merged
	if err := s.commit(next); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *FileShoppingStore) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	next := maps.Clone(s.items)
	delete(next, id)
	if err := s.commit(next); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileShoppingStore) ToggleCompleted(id int64) (*model.ShoppingListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	it.Completed = !it.Completed

	next := maps.Clone(s.items)
	next[id] = it
	if err := s.commit(next); err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *FileShoppingStore) ClearCompleted() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.items)
	var cleared int64
	for id, it := range next {
		if it.Completed {
			delete(next, id)
			cleared++
		}
	}
	if cleared == 0 {
		return 0, nil
	}
	if err := s.commit(next); err != nil {
		return 0, err
	}
	return cleared, nil
}

func (s *FileShoppingStore) commit(next map[int64]model.ShoppingListItem) error {
	if err := writeCollection(s.path, collectShoppingItems(next)); err != nil {
		return fmt.Errorf("persist shopping list: %w", err)
	}
	s.items = next
	return nil
}

// loadCollection reads a JSON array file into dst. A missing file is an
// empty collection, not an error.
func loadCollection(path string, dst any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// writeCollection writes a JSON array file atomically via temp + rename.
func writeCollection(path string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
