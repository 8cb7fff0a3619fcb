package database

import (
	"fmt"
	"strings"
	"time"
)

// Author is one author row. The birth place columns are optional and stored
// as NULL when absent.
type Author struct {
	ID           int64
	Name         string
	BirthDate    time.Time
	BirthCity    *string
	BirthState   *string
	BirthCountry *string
	Description  string
}

// NewAuthor validates the fields and builds an author ready to save.
func NewAuthor(name string, birthDate time.Time, city, state, country *string, description string) (*Author, error) {
	a := &Author{
		Name:         name,
		BirthDate:    birthDate,
		BirthCity:    city,
		BirthState:   state,
		BirthCountry: country,
		Description:  description,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the field shapes without touching the database.
func (a *Author) Validate() error {
	if a.ID < 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if a.BirthDate.IsZero() {
		return ErrInvalidBirthDate
	}
	return nil
}

// Save inserts the author and writes the server-assigned id back onto it.
func (a *Author) Save(db *DB) error {
	if err := a.Validate(); err != nil {
		return err
	}

	result, err := db.Exec(`
		INSERT INTO author (name, birth_date, birth_city, birth_state, birth_country, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.Name, a.BirthDate, a.BirthCity, a.BirthState, a.BirthCountry, a.Description)
	if err != nil {
		return fmt.Errorf("failed to save author: %w", err)
	}

	a.ID = result.LastInsertID
	return nil
}

// FetchAuthorByName returns the bio rows for authors whose name matches the
// LIKE pattern, unaliased: name, birth_date, birth_city, birth_state,
// birth_country, description.
func FetchAuthorByName(db *DB, name string) ([]Row, error) {
	rows, err := db.Query(`
	SELECT a.name, a.birth_date, a.birth_city, a.birth_state, a.birth_country, a.description
	FROM author a
	WHERE a.name LIKE ?
	ORDER BY a.id_author ASC`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch author bio: %w", err)
	}
	return rows, nil
}
