package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
)

// FoodStore is the SQLite backend for food items.
type FoodStore struct {
	db *sql.DB
}

func NewFoodStore(db *sql.DB) *FoodStore {
	return &FoodStore{db: db}
}

func scanFoodItem(scanner interface{ Scan(...any) error }) (*model.FoodItem, error) {
	var item model.FoodItem
	var notified int

	err := scanner.Scan(
		&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit,
		&item.CustomUnit, &item.ExpirationDate, &item.Notes, &item.CreatedAt,
		&notified,
	)
	if err != nil {
		return nil, err
	}

	item.Notified = notified != 0
	return &item, nil
}

const foodItemCols = `id, name, category, quantity, unit, custom_unit, expiration_date, notes, created_at, notified`

func (s *FoodStore) List() ([]model.FoodItem, error) {
	return s.queryItems(`SELECT ` + foodItemCols + ` FROM food_items ORDER BY expiration_date ASC, id ASC`)
}

func (s *FoodStore) ListByCategory(category string) ([]model.FoodItem, error) {
	return s.queryItems(
		`SELECT `+foodItemCols+` FROM food_items WHERE category = ? ORDER BY expiration_date ASC, id ASC`,
		category,
	)
}

func (s *FoodStore) ListExpiringWithin(days int) ([]model.FoodItem, error) {
	today := startOfDayUTC(time.Now())
	upper := today.AddDate(0, 0, days)
	return s.queryItems(
		`SELECT `+foodItemCols+` FROM food_items WHERE expiration_date >= ? AND expiration_date <= ? ORDER BY expiration_date ASC, id ASC`,
		today, upper,
	)
}

func (s *FoodStore) queryItems(query string, args ...any) ([]model.FoodItem, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	defer rows.Close()

	var items []model.FoodItem
	for rows.Next() {
		item, err := scanFoodItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *FoodStore) GetByID(id int64) (*model.FoodItem, error) {
	row := s.db.QueryRow(`SELECT `+foodItemCols+` FROM food_items WHERE id = ?`, id)
	item, err := scanFoodItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get food item: %w", err)
	}
	return item, nil
}

func (s *FoodStore) Create(in model.InsertFoodItem) (*model.FoodItem, error) {
	exp, verr := in.Validate()
	if verr != nil {
		return nil, verr
	}

	result, err := s.db.Exec(
		`INSERT INTO food_items (name, category, quantity, unit, custom_unit, expiration_date, notes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.Category, *in.Quantity, in.Unit, in.CustomUnit, exp, in.Notes, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert food item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *FoodStore) Update(id int64, patch model.FoodItemPatch) (*model.FoodItem, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	merged := *existing
	if verr := patch.Apply(&merged); verr != nil {
		return nil, verr
	}

	_, err = s.db.Exec(
		`UPDATE food_items SET name = ?, category = ?, quantity = ?, unit = ?, custom_unit = ?, expiration_date = ?, notes = ? WHERE id = ?`,
		merged.Name, merged.Category, merged.Quantity, merged.Unit, merged.CustomUnit, merged.ExpirationDate, merged.Notes, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update food item: %w", err)
	}
	return s.GetByID(id)
}

func (s *FoodStore) Delete(id int64) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM food_items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete food item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func (s *FoodStore) MarkNotified(id int64) error {
	_, err := s.db.Exec(`UPDATE food_items SET notified = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	return nil
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
