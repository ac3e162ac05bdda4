package menu

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresList_FallbackToDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// simulate the menu table missing
	mock.ExpectQuery("FROM menu").WillReturnError(errors.New("no such table"))

	items := repo.List()
	if len(items) != len(DefaultMenu()) {
		t.Fatalf("expected built-in menu fallback, got %d items", len(items))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresList_EmptyTableFallsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"menu_id", "name", "price", "image", "category", "description"})
	mock.ExpectQuery("FROM menu").WillReturnRows(rows)

	items := repo.List()
	if len(items) != len(DefaultMenu()) {
		t.Fatalf("empty table should serve the built-in menu, got %d items", len(items))
	}
}

func TestPostgresList_Rows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"menu_id", "name", "price", "image", "category", "description"}).
		AddRow(1, "A", 10.0, "/a.png", "Main", "d").
		AddRow(2, "B", 20.0, "/b.png", "Drinks", "d2")
	mock.ExpectQuery("FROM menu").WillReturnRows(rows)

	items := repo.List()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1].Name != "B" || items[1].Price != 20 {
		t.Fatalf("unexpected item %+v", items[1])
	}
}

func TestPostgresGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"menu_id", "name", "price", "image", "category", "description"}).
		AddRow(9, "Z", 99.0, "/z.png", "Main", "d")
	mock.ExpectQuery("WHERE menu_id").WithArgs(9).WillReturnRows(rows)

	item, err := repo.GetByID(9)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if item.Name != "Z" {
		t.Fatalf("unexpected item name %q", item.Name)
	}
}

func TestPostgresGetByID_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"menu_id", "name", "price", "image", "category", "description"})
	mock.ExpectQuery("WHERE menu_id").WithArgs(404).WillReturnRows(rows)

	if _, err := repo.GetByID(404); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresReset(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM menu").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO menu").WithArgs(1, "A", 10.0, "/a.png", "Main", "d").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Reset([]Item{{ID: 1, Name: "A", Price: 10, Image: "/a.png", Category: "Main", Description: "d"}})
	if err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
