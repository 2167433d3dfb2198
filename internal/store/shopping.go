package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
)

// ShoppingStore is the SQLite backend for the shopping list.
type ShoppingStore struct {
	db *sql.DB
}

func NewShoppingStore(db *sql.DB) *ShoppingStore {
	return &ShoppingStore{db: db}
}

func scanShoppingItem(scanner interface{ Scan(...any) error }) (*model.ShoppingListItem, error) {
	var item model.ShoppingListItem
	var completed int

	err := scanner.Scan(
		&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit,
		&item.CustomUnit, &completed, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Completed = completed != 0
	return &item, nil
}

const shoppingItemCols = `id, name, category, quantity, unit, custom_unit, completed, created_at`

func (s *ShoppingStore) List() ([]model.ShoppingListItem, error) {
	rows, err := s.db.Query(`SELECT ` + shoppingItemCols + ` FROM shopping_list_items ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}
	defer rows.Close()

	var items []model.ShoppingListItem
	for rows.Next() {
		item, err := scanShoppingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *ShoppingStore) GetByID(id int64) (*model.ShoppingListItem, error) {
	row := s.db.QueryRow(`SELECT `+shoppingItemCols+` FROM shopping_list_items WHERE id = ?`, id)
	item, err := scanShoppingItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get shopping item: %w", err)
	}
	return item, nil
}

func (s *ShoppingStore) Create(in model.InsertShoppingListItem) (*model.ShoppingListItem, error) {
	if verr := in.Validate(); verr != nil {
		return nil, verr
	}

	result, err := s.db.Exec(
		`INSERT INTO shopping_list_items (name, category, quantity, unit, custom_unit, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		in.Name, in.Category, *in.Quantity, in.Unit, in.CustomUnit, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert shopping item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *ShoppingStore) Update(id int64, patch model.ShoppingListItemPatch) (*model.ShoppingListItem, error) {
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
		`UPDATE shopping_list_items SET name = ?, category = ?, quantity = ?, unit = ?, custom_unit = ? WHERE id = ?`,
		merged.Name, merged.Category, merged.Quantity, merged.Unit, merged.CustomUnit, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update shopping item: %w", err)
	}
	return s.GetByID(id)
}

func (s *ShoppingStore) Delete(id int64) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM shopping_list_items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete shopping item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func (s *ShoppingStore) ToggleCompleted(id int64) (*model.ShoppingListItem, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	_, err = s.db.Exec(`UPDATE shopping_list_items SET completed = NOT completed WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("toggle completed: %w", err)
	}
	return s.GetByID(id)
}

func (s *ShoppingStore) ClearCompleted() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM shopping_list_items WHERE completed = 1`)
	if err != nil {
		return 0, fmt.Errorf("clear completed: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}
