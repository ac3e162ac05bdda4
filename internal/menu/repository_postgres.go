package menu

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listMenuQuery = `
		SELECT menu_id, name, price, image, category, description
		FROM menu
		ORDER BY menu_id
	`
	getMenuByIDQuery = `
		SELECT menu_id, name, price, image, category, description
		FROM menu
		WHERE menu_id = $1
	`
	insertMenuQuery = `
		INSERT INTO menu (menu_id, name, price, image, category, description)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	truncateMenuQuery = `DELETE FROM menu`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Item {
	rows, err := r.db.Query(listMenuQuery)
	if err != nil {
		// fallback to the built-in menu when the table is missing
		return DefaultMenu()
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Image, &it.Category, &it.Description); err != nil {
			continue
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		// empty table behaves like a missing one
		return DefaultMenu()
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Item, error) {
	var it Item
	err := r.db.QueryRow(getMenuByIDQuery, id).Scan(&it.ID, &it.Name, &it.Price, &it.Image, &it.Category, &it.Description)
	if err == sql.ErrNoRows {
		return Item{}, ErrNotFound
	}
	if err != nil {
		// table missing; look up the built-in menu instead
		for _, d := range DefaultMenu() {
			if d.ID == id {
				return d, nil
			}
		}
		return Item{}, ErrNotFound
	}
	return it, nil
}

// Reset replaces the stored menu inside a single transaction so readers never
// observe a half-loaded catalog.
func (r *PostgresRepository) Reset(items []Item) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(truncateMenuQuery); err != nil {
		tx.Rollback()
		return err
	}
	for _, it := range items {
		if _, err := tx.Exec(insertMenuQuery, it.ID, it.Name, it.Price, it.Image, it.Category, it.Description); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
